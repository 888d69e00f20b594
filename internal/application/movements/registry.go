package movements

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jhoicas/movilog-app/internal/domain"
	"github.com/jhoicas/movilog-app/internal/domain/entity"
	"github.com/jhoicas/movilog-app/internal/domain/gateway"
)

// Registry mantiene la vista cliente de la lista de movimientos: re-fetch
// completo en cada refresh (orden definido por el servidor) y parche local
// inmediato tras una transición exitosa.
//
// Cada Refresh emite un token de época; una respuesta que llega con un token
// viejo (el usuario navegó y disparó otro refresh, o invalidó la vista) se
// descarta sin tocar el snapshot. No hay cancelación de la petición en
// vuelo, solo el guard del lado del estado.
type Registry struct {
	movementGW gateway.MovementGateway

	mu        sync.Mutex
	movements []entity.Movement
	epoch     uuid.UUID
}

// NewRegistry construye el registro de movimientos.
func NewRegistry(movementGW gateway.MovementGateway) *Registry {
	return &Registry{movementGW: movementGW}
}

// Refresh trae la lista completa del servidor y reemplaza el snapshot si la
// época sigue vigente. Devuelve la lista obtenida.
func (r *Registry) Refresh(ctx context.Context) ([]entity.Movement, error) {
	r.mu.Lock()
	epoch := uuid.New()
	r.epoch = epoch
	r.mu.Unlock()

	list, err := r.movementGW.List(ctx)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.epoch == epoch {
		r.movements = make([]entity.Movement, len(list))
		copy(r.movements, list)
	}
	return list, nil
}

// Invalidate avanza la época: la pantalla se desmontó y cualquier respuesta
// tardía del refresh en vuelo debe tratarse como no-op.
func (r *Registry) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.epoch = uuid.New()
}

// List devuelve una copia del snapshot actual.
func (r *Registry) List() []entity.Movement {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Movement, len(r.movements))
	copy(out, r.movements)
	return out
}

// Get busca un movimiento por id en el snapshot actual.
func (r *Registry) Get(id int) (entity.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return entity.Movement{}, domain.ErrNotFound
}

// apply refleja en el snapshot el movimiento devuelto por el servidor tras
// una transición con 200. Solo se llama con upload exitoso.
func (r *Registry) apply(updated entity.Movement) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, m := range r.movements {
		if m.ID == updated.ID {
			r.movements[i] = updated
			return
		}
	}
}
