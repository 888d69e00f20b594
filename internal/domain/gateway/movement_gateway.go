package gateway

import (
	"context"

	"github.com/jhoicas/movilog-app/internal/domain/entity"
)

// CreateMovementInput payload de creación de un movimiento. Los cuatro
// campos numéricos viajan como enteros JSON (contrato del servidor), nunca
// como strings del formulario.
type CreateMovementInput struct {
	OriginBranchID      int
	DestinationBranchID int
	ProductID           int
	Quantity            int
	Observations        string
}

// MovementGateway puerto de salida hacia el servicio de movimientos.
//
// StartTransit y FinishTransit suben la prueba fotográfica como multipart
// {file, motorista}; solo un 200 del servidor hace efectiva la transición.
type MovementGateway interface {
	List(ctx context.Context) ([]entity.Movement, error)
	Create(ctx context.Context, in CreateMovementInput) (*entity.Movement, error)
	StartTransit(ctx context.Context, id int, photo entity.Photo, motorista string) (*entity.Movement, error)
	FinishTransit(ctx context.Context, id int, photo entity.Photo, motorista string) (*entity.Movement, error)
}
