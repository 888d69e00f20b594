package entity

// Product representa la línea de stock de un producto en una filial concreta
// (una fila por par producto-filial). Quantity es la existencia actual según
// el servidor; el cliente solo lee un snapshot al montar el formulario y
// nunca la muta localmente.
type Product struct {
	BranchID    int
	ProductID   int
	ProductName string
	Quantity    int // siempre >= 0
	BranchName  string
}
