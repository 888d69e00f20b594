package rest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/movilog-app/internal/domain/entity"
	"github.com/jhoicas/movilog-app/internal/domain/gateway"
)

// MovementGateway implementa gateway.MovementGateway contra el servicio
// remoto. Tolera las dos formas de respuesta observadas en las revisiones
// del servidor: anidada en portugués (origem/destino/produto/historico) y
// plana en inglés, y normaliza los literales de estado del wire.
type MovementGateway struct {
	client *Client
}

// NewMovementGateway construye el gateway de movimientos.
func NewMovementGateway(client *Client) *MovementGateway {
	return &MovementGateway{client: client}
}

// ── DTOs del wire ─────────────────────────────────────────────────────────────

type branchRefDTO struct {
	ID        int     `json:"id"`
	Nome      string  `json:"nome"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (d *branchRefDTO) toEntity() entity.Branch {
	if d == nil {
		return entity.Branch{}
	}
	name := d.Nome
	if name == "" {
		name = d.Name
	}
	return entity.Branch{ID: d.ID, Name: name, Latitude: d.Latitude, Longitude: d.Longitude}
}

type productRefDTO struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
	Name string `json:"name"`
}

type historyDTO struct {
	Descricao   string `json:"descricao"`
	Description string `json:"description"`
	Data        string `json:"data"`
	Timestamp   string `json:"timestamp"`
}

type movementDTO struct {
	ID int `json:"id"`

	// forma anidada (portugués / inglés)
	Origem  *branchRefDTO  `json:"origem"`
	Destino *branchRefDTO  `json:"destino"`
	Produto *productRefDTO `json:"produto"`
	Origin  *branchRefDTO  `json:"origin"`
	Dest    *branchRefDTO  `json:"destination"`
	Product *productRefDTO `json:"product"`

	// forma plana
	OriginBranchID      int `json:"originBranchId"`
	DestinationBranchID int `json:"destinationBranchId"`
	ProductID           int `json:"productId"`

	Quantidade  int    `json:"quantidade"`
	Quantity    int    `json:"quantity"`
	Status      string `json:"status"`
	Observacoes string `json:"observacoes"`
	Observation string `json:"observations"`

	Historico []historyDTO `json:"historico"`
	History   []historyDTO `json:"history"`
}

func (d movementDTO) toEntity() entity.Movement {
	m := entity.Movement{
		ID:     d.ID,
		Status: normalizeStatus(d.Status),
	}

	switch {
	case d.Origem != nil || d.Destino != nil:
		m.Origin = d.Origem.toEntity()
		m.Destination = d.Destino.toEntity()
	case d.Origin != nil || d.Dest != nil:
		m.Origin = d.Origin.toEntity()
		m.Destination = d.Dest.toEntity()
	default:
		m.Origin = entity.Branch{ID: d.OriginBranchID}
		m.Destination = entity.Branch{ID: d.DestinationBranchID}
	}

	switch {
	case d.Produto != nil:
		m.ProductID = d.Produto.ID
		m.ProductName = d.Produto.Nome
	case d.Product != nil:
		m.ProductID = d.Product.ID
		m.ProductName = firstNonEmpty(d.Product.Name, d.Product.Nome)
	default:
		m.ProductID = d.ProductID
	}

	m.Quantity = d.Quantity
	if m.Quantity == 0 {
		m.Quantity = d.Quantidade
	}
	m.Observations = firstNonEmpty(d.Observation, d.Observacoes)

	wire := d.Historico
	if len(wire) == 0 {
		wire = d.History
	}
	for _, h := range wire {
		m.History = append(m.History, entity.HistoryEntry{
			Description: firstNonEmpty(h.Descricao, h.Description),
			Timestamp:   parseWireTime(firstNonEmpty(h.Data, h.Timestamp)),
		})
	}
	return m
}

// normalizeStatus mapea los literales del wire (con variantes de idioma,
// mayúsculas y acentos entre revisiones) al estado canónico del cliente.
func normalizeStatus(raw string) entity.Status {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, r := range [][2]string{{"á", "a"}, {"â", "a"}, {"ã", "a"}, {"é", "e"}, {"ê", "e"}, {"í", "i"}, {"ó", "o"}, {"ô", "o"}, {"ú", "u"}} {
		s = strings.ReplaceAll(s, r[0], r[1])
	}
	switch s {
	case "created", "criada", "creado":
		return entity.StatusCreated
	case "em transito", "en transito", "in transit", "in_transit":
		return entity.StatusInTransit
	case "coleta finalizada", "completed", "completada", "finalizada", "entregue":
		return entity.StatusCompleted
	}
	return entity.Status(s)
}

var wireTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseWireTime(raw string) time.Time {
	for _, layout := range wireTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// ── Operaciones ───────────────────────────────────────────────────────────────

// createMovementBody cuerpo del POST /movements; los campos numéricos son
// enteros JSON (contrato del servidor).
type createMovementBody struct {
	OriginBranchID      int    `json:"originBranchId"`
	DestinationBranchID int    `json:"destinationBranchId"`
	ProductID           int    `json:"productId"`
	Quantity            int    `json:"quantity"`
	Observations        string `json:"observations"`
}

// List trae la lista completa de movimientos (orden del servidor).
func (g *MovementGateway) List(ctx context.Context) ([]entity.Movement, error) {
	var raw []movementDTO
	if err := g.client.getJSON(ctx, "/movements", &raw); err != nil {
		return nil, err
	}
	out := make([]entity.Movement, 0, len(raw))
	for _, d := range raw {
		out = append(out, d.toEntity())
	}
	return out, nil
}

// Create registra el movimiento y devuelve la entidad creada por el servidor.
func (g *MovementGateway) Create(ctx context.Context, in gateway.CreateMovementInput) (*entity.Movement, error) {
	body := createMovementBody{
		OriginBranchID:      in.OriginBranchID,
		DestinationBranchID: in.DestinationBranchID,
		ProductID:           in.ProductID,
		Quantity:            in.Quantity,
		Observations:        in.Observations,
	}
	var raw movementDTO
	if err := g.client.sendJSON(ctx, "POST", "/movements", body, &raw); err != nil {
		return nil, err
	}
	m := raw.toEntity()
	return &m, nil
}

// StartTransit sube la foto de inicio a PUT /movements/{id}/start.
func (g *MovementGateway) StartTransit(ctx context.Context, id int, photo entity.Photo, motorista string) (*entity.Movement, error) {
	return g.submitTransition(ctx, fmt.Sprintf("/movements/%d/start", id), photo, motorista)
}

// FinishTransit sube la foto de entrega a PUT /movements/{id}/end.
func (g *MovementGateway) FinishTransit(ctx context.Context, id int, photo entity.Photo, motorista string) (*entity.Movement, error) {
	return g.submitTransition(ctx, fmt.Sprintf("/movements/%d/end", id), photo, motorista)
}

func (g *MovementGateway) submitTransition(ctx context.Context, path string, photo entity.Photo, motorista string) (*entity.Movement, error) {
	var raw movementDTO
	if err := g.client.putMultipart(ctx, path, photo, motorista, &raw); err != nil {
		return nil, err
	}
	if raw.ID == 0 {
		// el servidor confirmó sin cuerpo útil; el llamador parchea el estado
		return nil, nil
	}
	m := raw.toEntity()
	return &m, nil
}
