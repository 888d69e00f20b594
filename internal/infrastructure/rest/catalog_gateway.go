package rest

import (
	"context"

	"github.com/jhoicas/movilog-app/internal/domain/entity"
)

// CatalogGateway implementa gateway.CatalogGateway contra los endpoints de
// opciones del servicio de catálogo.
type CatalogGateway struct {
	client *Client
}

// NewCatalogGateway construye el gateway de catálogo.
func NewCatalogGateway(client *Client) *CatalogGateway {
	return &CatalogGateway{client: client}
}

type branchDTO struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Nome      string  `json:"nome"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type productLineDTO struct {
	BranchID    int    `json:"branch_id"`
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	BranchName  string `json:"branch_name"`
}

// ListBranches trae las filiales de GET /branches/options.
func (g *CatalogGateway) ListBranches(ctx context.Context) ([]entity.Branch, error) {
	var raw []branchDTO
	if err := g.client.getJSON(ctx, "/branches/options", &raw); err != nil {
		return nil, err
	}
	out := make([]entity.Branch, 0, len(raw))
	for _, b := range raw {
		out = append(out, entity.Branch{
			ID:        b.ID,
			Name:      firstNonEmpty(b.Name, b.Nome),
			Latitude:  b.Latitude,
			Longitude: b.Longitude,
		})
	}
	return out, nil
}

// ListProducts trae las líneas de stock por filial de GET /products/options.
func (g *CatalogGateway) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var raw []productLineDTO
	if err := g.client.getJSON(ctx, "/products/options", &raw); err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(raw))
	for _, p := range raw {
		out = append(out, entity.Product{
			BranchID:    p.BranchID,
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Quantity:    p.Quantity,
			BranchName:  p.BranchName,
		})
	}
	return out, nil
}
