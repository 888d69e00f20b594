package entity

// Photo es la prueba fotográfica capturada en una frontera de transición
// (inicio o entrega). El servidor la exige para aceptar el cambio de estado.
type Photo struct {
	Name    string // nombre de archivo para el multipart, ej. entrega.jpg
	MIME    string // image/jpeg, image/png
	Content []byte
}
