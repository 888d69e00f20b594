package entity

// Perfiles válidos para User.
const (
	ProfileMotorista = "motorista" // conductor que ejecuta las entregas
	ProfileFilial    = "filial"    // usuario de sucursal
)

// User representa una cuenta del sistema. El nombre del usuario con perfil
// motorista viaja en el campo motorista de las subidas de prueba fotográfica.
type User struct {
	ID          int
	Name        string
	Profile     string // motorista, filial
	Document    string
	FullAddress string
	Email       string
	Status      bool // activo/inactivo
}

// ValidProfile indica si el perfil es uno de los aceptados por el sistema.
func ValidProfile(p string) bool {
	return p == ProfileMotorista || p == ProfileFilial
}
