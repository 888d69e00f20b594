package dto

// UserForm campos del formulario de alta/edición de cuenta.
type UserForm struct {
	Name            string
	Profile         string // motorista, filial
	Document        string
	FullAddress     string
	Email           string
	Password        string
	ConfirmPassword string
}
