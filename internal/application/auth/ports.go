package auth

// SessionStore almacén clave-valor del dispositivo para la sesión. Solo dos
// valores sobreviven entre ejecuciones: userName y userProfile; se borran en
// logout. No hay más estado durable del lado cliente.
type SessionStore interface {
	Save(name, profile string) error
	Load() (name, profile string, err error)
	Clear() error
}
