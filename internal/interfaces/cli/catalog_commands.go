package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newProductsCmd(deps Deps) *cobra.Command {
	var branchID int

	cmd := &cobra.Command{
		Use:   "productos",
		Short: "Lista el stock por filial",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			// carga read-through; un fallo degrada a listas vacías
			if err := deps.Catalog.LoadOptions(cmd.Context()); err != nil {
				deps.Log.Warn().Err(err).Msg("carga parcial del catálogo")
				fmt.Fprintln(out, "Aviso: no fue posible cargar todas las opciones.")
			}

			products := deps.Catalog.Products()
			if branchID > 0 {
				products = deps.Catalog.ProductsAtBranch(branchID)
			}
			if len(products) == 0 {
				fmt.Fprintln(out, "Sin productos para mostrar.")
				return nil
			}
			for _, p := range products {
				fmt.Fprintf(out, "%s  producto=%s  filial=%s  disponible=%s\n",
					p.ProductName, strconv.Itoa(p.ProductID), p.BranchName, strconv.Itoa(p.Quantity))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&branchID, "filial", 0, "filtra por filial de origen")
	return cmd
}
