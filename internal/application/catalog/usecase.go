package catalog

import (
	"context"
	"sync"

	"github.com/jhoicas/movilog-app/internal/domain/entity"
	"github.com/jhoicas/movilog-app/internal/domain/gateway"
)

// UseCase mantiene el catálogo de filiales y líneas de stock que alimenta el
// formulario de traslado. Read-through: se carga una vez por montaje de
// formulario, sin refresco incremental.
//
// Las vistas derivadas (ProductsAtBranch, AvailableQuantity) son puras y se
// memoizan sobre el par (origen, generación de productos) para no recalcular
// el filtro en cada consulta del formulario.
type UseCase struct {
	catalogGW gateway.CatalogGateway

	mu       sync.Mutex
	branches []entity.Branch
	products []entity.Product

	// memoización del filtro por filial de origen
	productsGen  int
	memoOriginID int
	memoGen      int
	memoFiltered []entity.Product
}

// NewUseCase construye el caso de uso de catálogo.
func NewUseCase(catalogGW gateway.CatalogGateway) *UseCase {
	return &UseCase{catalogGW: catalogGW, memoGen: -1}
}

// LoadOptions trae filiales y productos del servicio de catálogo. Un fallo
// no es fatal: lo que sí se pudo cargar queda disponible y el formulario
// sigue usable con listas vacías; el llamador decide si muestra un aviso.
// Devuelve el primer error encontrado.
func (uc *UseCase) LoadOptions(ctx context.Context) error {
	var firstErr error

	branches, err := uc.catalogGW.ListBranches(ctx)
	if err != nil {
		firstErr = err
	}
	products, err := uc.catalogGW.ListProducts(ctx)
	if err != nil && firstErr == nil {
		firstErr = err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if branches != nil {
		uc.branches = branches
	}
	if products != nil {
		uc.products = products
		uc.productsGen++
	}
	return firstErr
}

// Branches devuelve una copia del snapshot de filiales.
func (uc *UseCase) Branches() []entity.Branch {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]entity.Branch, len(uc.branches))
	copy(out, uc.branches)
	return out
}

// Products devuelve una copia del snapshot completo de líneas de stock.
func (uc *UseCase) Products() []entity.Product {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]entity.Product, len(uc.products))
	copy(out, uc.products)
	return out
}

// Branch busca una filial por id en el snapshot actual.
func (uc *UseCase) Branch(id int) (entity.Branch, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for _, b := range uc.branches {
		if b.ID == id {
			return b, true
		}
	}
	return entity.Branch{}, false
}

// ProductsAtBranch devuelve las líneas de stock de la filial de origen.
// Recalcula solo cuando cambia el origen o la generación de productos.
func (uc *UseCase) ProductsAtBranch(originID int) []entity.Product {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.productsAtBranchLocked(originID)
}

func (uc *UseCase) productsAtBranchLocked(originID int) []entity.Product {
	if uc.memoGen == uc.productsGen && uc.memoOriginID == originID {
		return uc.memoFiltered
	}
	filtered := make([]entity.Product, 0, len(uc.products))
	for _, p := range uc.products {
		if p.BranchID == originID {
			filtered = append(filtered, p)
		}
	}
	uc.memoOriginID = originID
	uc.memoGen = uc.productsGen
	uc.memoFiltered = filtered
	return filtered
}

// AvailableQuantity devuelve la existencia del producto en la filial de
// origen según el snapshot. ok=false significa desconocido/no encontrado,
// que es distinto de cero.
func (uc *UseCase) AvailableQuantity(originID, productID int) (int, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for _, p := range uc.productsAtBranchLocked(originID) {
		if p.ProductID == productID {
			return p.Quantity, true
		}
	}
	return 0, false
}
