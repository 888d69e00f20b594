package dto

// TransferForm estado del formulario de registro de movimiento tal como lo
// entrega la interfaz: los selectores y el campo cantidad son strings y se
// coaccionan a entero dentro del caso de uso antes de validar.
type TransferForm struct {
	Origin       string // id de filial de origen
	Destination  string // id de filial de destino
	ProductID    string
	Quantity     string
	Observations string
}
