package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/movilog-app/internal/domain"
	"github.com/jhoicas/movilog-app/internal/domain/gateway"
)

// UseCase casos de uso de autenticación: login contra el servicio remoto y
// sesión persistida en el dispositivo.
type UseCase struct {
	authGW gateway.AuthGateway
	store  SessionStore

	mu      sync.Mutex
	name    string
	profile string
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(authGW gateway.AuthGateway, store SessionStore) *UseCase {
	return &UseCase{authGW: authGW, store: store}
}

// Login verifica email/password contra el servidor; con 200 persiste
// userName y userProfile en el almacén del dispositivo. Un 401 llega como
// domain.ErrInvalidCredentials desde el gateway.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*gateway.LoginResult, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email y contraseña son obligatorios", domain.ErrInvalidInput)
	}
	res, err := uc.authGW.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := uc.store.Save(res.Name, res.Profile); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	uc.mu.Lock()
	uc.name = res.Name
	uc.profile = res.Profile
	uc.mu.Unlock()
	return res, nil
}

// Restore recarga la sesión persistida al arrancar la aplicación. Sin sesión
// previa no es un error: deja los campos vacíos.
func (uc *UseCase) Restore() error {
	name, profile, err := uc.store.Load()
	if err != nil {
		return err
	}
	uc.mu.Lock()
	uc.name = name
	uc.profile = profile
	uc.mu.Unlock()
	return nil
}

// Logout limpia la sesión del dispositivo y la memoria.
func (uc *UseCase) Logout() error {
	if err := uc.store.Clear(); err != nil {
		return err
	}
	uc.mu.Lock()
	uc.name = ""
	uc.profile = ""
	uc.mu.Unlock()
	return nil
}

// LoggedIn indica si hay sesión activa.
func (uc *UseCase) LoggedIn() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.name != ""
}

// UserName devuelve el nombre de la sesión activa (campo motorista de las
// subidas de prueba). Implementa movements.SessionReader.
func (uc *UseCase) UserName() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.name
}

// UserProfile devuelve el perfil de la sesión activa.
func (uc *UseCase) UserProfile() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.profile
}
