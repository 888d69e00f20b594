package entity

import "time"

// Status es el estado canónico del ciclo de vida de un movimiento.
// Los literales del wire varían entre revisiones del servidor
// ("created", "em transito", "Em Trânsito", "Coleta finalizada"); el
// adaptador REST los normaliza a estos tres valores al leer.
type Status string

const (
	StatusCreated   Status = "created"
	StatusInTransit Status = "in_transit"
	StatusCompleted Status = "completed"
)

// HistoryEntry es una entrada del historial producido por el servidor en
// cada transición. Secuencia append-only, de la más antigua a la más nueva.
type HistoryEntry struct {
	Description string
	Timestamp   time.Time
}

// Movement representa un traslado de una cantidad de un producto entre dos
// filiales. Existe solo en el servidor; el cliente mantiene una vista
// transitoria y refrescable.
//
// Invariantes: Origin.ID != Destination.ID; Quantity > 0 y, al crearse,
// Quantity <= stock en la filial de origen según el snapshot del catálogo.
type Movement struct {
	ID           int
	Origin       Branch
	Destination  Branch
	ProductID    int
	ProductName  string
	Quantity     int
	Status       Status
	History      []HistoryEntry
	Observations string // texto libre fijado al crear, no se renegocia
}

// CanStart indica si el movimiento admite la transición created -> in_transit.
func (m Movement) CanStart() bool {
	return m.Status == StatusCreated
}

// CanFinish indica si el movimiento admite la transición in_transit -> completed.
func (m Movement) CanFinish() bool {
	return m.Status == StatusInTransit
}

// IsFinal indica si el movimiento alcanzó el estado terminal: completed no
// ofrece más acciones.
func (m Movement) IsFinal() bool {
	return m.Status == StatusCompleted
}
