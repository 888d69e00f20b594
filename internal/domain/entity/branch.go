package entity

// Branch representa una filial: ubicación física que guarda stock y actúa
// como origen o destino de un movimiento. Dato de referencia inmutable,
// provisto por el servicio de catálogo.
type Branch struct {
	ID        int
	Name      string
	Latitude  float64 // 0 cuando el catálogo no entrega coordenadas
	Longitude float64
}
