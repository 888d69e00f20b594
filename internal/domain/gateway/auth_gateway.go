package gateway

import "context"

// LoginResult identidad devuelta por el servidor tras autenticar. No hay
// token: el contrato remoto solo entrega nombre y perfil.
type LoginResult struct {
	Name    string
	Profile string
}

// AuthGateway puerto de salida para autenticación contra el servicio remoto.
type AuthGateway interface {
	// Login devuelve domain.ErrInvalidCredentials ante un 401.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
