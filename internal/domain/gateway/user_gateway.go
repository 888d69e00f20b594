package gateway

import (
	"context"

	"github.com/jhoicas/movilog-app/internal/domain/entity"
)

// UserInput campos de alta/edición de una cuenta.
type UserInput struct {
	Name        string
	Profile     string // motorista, filial
	Document    string
	FullAddress string
	Email       string
	Password    string
}

// UserGateway puerto de salida para la gestión de cuentas.
type UserGateway interface {
	List(ctx context.Context) ([]entity.User, error)
	Register(ctx context.Context, in UserInput) (*entity.User, error)
	Update(ctx context.Context, id int, in UserInput) (*entity.User, error)
	// ToggleStatus alterna activo/inactivo y devuelve el estado resultante.
	ToggleStatus(ctx context.Context, id int) (bool, error)
}
