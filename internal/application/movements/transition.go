package movements

import (
	"context"
	"fmt"

	"github.com/jhoicas/movilog-app/internal/domain"
	"github.com/jhoicas/movilog-app/internal/domain/entity"
	"github.com/jhoicas/movilog-app/internal/domain/gateway"
)

// TransitionController conduce el ciclo de vida de un movimiento:
// created -> in_transit -> completed, sin saltos ni reversas, con completed
// terminal. Cada transición exige una captura fotográfica aceptada por el
// servidor; ninguna transición se observa localmente sin upload con 200.
type TransitionController struct {
	registry   *Registry
	movementGW gateway.MovementGateway
	camera     Camera
	session    SessionReader
}

// NewTransitionController construye el controlador de transiciones.
func NewTransitionController(registry *Registry, movementGW gateway.MovementGateway, camera Camera, session SessionReader) *TransitionController {
	return &TransitionController{
		registry:   registry,
		movementGW: movementGW,
		camera:     camera,
		session:    session,
	}
}

// Start ejecuta created -> in_transit: captura la foto de inicio y la sube
// al endpoint de arranque. Ante permiso denegado, captura cancelada o fallo
// del upload el movimiento queda intacto en created.
func (c *TransitionController) Start(ctx context.Context, id int) (*entity.Movement, error) {
	return c.transition(ctx, id,
		func(m entity.Movement) bool { return m.CanStart() },
		c.movementGW.StartTransit,
		entity.StatusInTransit,
	)
}

// Finish ejecuta in_transit -> completed con el mismo protocolo, fotografiando
// la entrega y subiéndola al endpoint de cierre.
func (c *TransitionController) Finish(ctx context.Context, id int) (*entity.Movement, error) {
	return c.transition(ctx, id,
		func(m entity.Movement) bool { return m.CanFinish() },
		c.movementGW.FinishTransit,
		entity.StatusCompleted,
	)
}

type submitFn func(ctx context.Context, id int, photo entity.Photo, motorista string) (*entity.Movement, error)

func (c *TransitionController) transition(ctx context.Context, id int, allowed func(entity.Movement) bool, submit submitFn, target entity.Status) (*entity.Movement, error) {
	current, err := c.registry.Get(id)
	if err != nil {
		return nil, err
	}
	if !allowed(current) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, target)
	}

	// La captura bloquea hasta que el usuario completa o cancela.
	capture, err := c.camera.CapturePhoto(ctx)
	if err != nil {
		return nil, err
	}
	switch capture.Outcome {
	case CaptureGranted:
		// sigue el flujo
	case CaptureDenied:
		return nil, domain.ErrCameraPermission
	case CaptureCancelled:
		// aborto silencioso: la interfaz no alerta en este caso
		return nil, domain.ErrCaptureCancelled
	default:
		return nil, fmt.Errorf("%w: resultado de captura desconocido %q", domain.ErrInvalidInput, capture.Outcome)
	}

	updated, err := submit(ctx, id, *capture.Photo, c.session.UserName())
	if err != nil {
		// sin estado parcial: el movimiento sigue como estaba
		return nil, err
	}

	// El servidor puede devolver el movimiento completo o solo confirmar;
	// en ambos casos el estado local debe reflejar la transición de inmediato.
	if updated == nil {
		current.Status = target
		updated = &current
	}
	c.registry.apply(*updated)
	return updated, nil
}
