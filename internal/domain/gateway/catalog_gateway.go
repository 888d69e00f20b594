package gateway

import (
	"context"

	"github.com/jhoicas/movilog-app/internal/domain/entity"
)

// CatalogGateway puerto de salida hacia el servicio de catálogo.
// La implementación concreta usa REST; para tests se inyecta un fake.
type CatalogGateway interface {
	// ListBranches devuelve las filiales disponibles como origen/destino.
	ListBranches(ctx context.Context) ([]entity.Branch, error)
	// ListProducts devuelve las líneas de stock por filial.
	ListProducts(ctx context.Context) ([]entity.Product, error)
}
