package transfer

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jhoicas/movilog-app/internal/application/catalog"
	"github.com/jhoicas/movilog-app/internal/application/dto"
	"github.com/jhoicas/movilog-app/internal/domain"
	"github.com/jhoicas/movilog-app/internal/domain/entity"
	"github.com/jhoicas/movilog-app/internal/domain/gateway"
)

// UseCase valida y envía el formulario de registro de movimiento.
//
// Las precondiciones (origen != destino, cantidad <= stock disponible) se
// verifican contra el snapshot del catálogo antes de emitir cualquier
// petición; un fallo local nunca llega a la red.
type UseCase struct {
	catalog    *catalog.UseCase
	movementGW gateway.MovementGateway
}

// NewUseCase construye el caso de uso de traslado.
func NewUseCase(cat *catalog.UseCase, movementGW gateway.MovementGateway) *UseCase {
	return &UseCase{catalog: cat, movementGW: movementGW}
}

// Submit coacciona los campos del formulario a enteros, aplica las
// precondiciones y, solo si todas pasan, emite exactamente un POST de
// creación. No muta estado local: el movimiento nuevo aparece en el
// siguiente refresh del registro.
//
// Si el stock del producto no se puede resolver en la filial de origen se
// falla cerrado con ErrUnresolvedStock (el chequeo nunca se salta).
func (uc *UseCase) Submit(ctx context.Context, form dto.TransferForm) (*entity.Movement, error) {
	origin, err := parseID(form.Origin, "filial de origen")
	if err != nil {
		return nil, err
	}
	destination, err := parseID(form.Destination, "filial de destino")
	if err != nil {
		return nil, err
	}
	productID, err := parseID(form.ProductID, "producto")
	if err != nil {
		return nil, err
	}
	quantity, err := strconv.Atoi(form.Quantity)
	if err != nil || quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser un entero mayor que cero", domain.ErrInvalidInput)
	}

	if origin == destination {
		return nil, domain.ErrInvalidRoute
	}

	available, ok := uc.catalog.AvailableQuantity(origin, productID)
	if !ok {
		return nil, domain.ErrUnresolvedStock
	}
	if quantity > available {
		return nil, domain.ErrInsufficientStock
	}

	return uc.movementGW.Create(ctx, gateway.CreateMovementInput{
		OriginBranchID:      origin,
		DestinationBranchID: destination,
		ProductID:           productID,
		Quantity:            quantity,
		Observations:        form.Observations,
	})
}

func parseID(s, field string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, field)
	}
	return id, nil
}
