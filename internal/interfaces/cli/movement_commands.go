package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/movilog-app/internal/application/dto"
	"github.com/jhoicas/movilog-app/internal/domain"
	"github.com/jhoicas/movilog-app/internal/domain/entity"
	"github.com/jhoicas/movilog-app/internal/domain/geo"
)

func newMovementsCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "movimientos",
		Short: "Lista los movimientos con su estado e historial",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			list, err := deps.Registry.Refresh(cmd.Context())
			if err != nil {
				return report(out, err)
			}
			if len(list) == 0 {
				fmt.Fprintln(out, "Ninguna movimentación encontrada.")
				return nil
			}
			for _, m := range list {
				printMovement(out, m)
			}
			return nil
		},
	}
}

func printMovement(out io.Writer, m entity.Movement) {
	fmt.Fprintf(out, "#%d  %s  %d unidades\n", m.ID, m.ProductName, m.Quantity)
	fmt.Fprintf(out, "    Origen: %s  Destino: %s\n", m.Origin.Name, m.Destination.Name)
	fmt.Fprintf(out, "    Estado: %s\n", m.Status)

	// distancia en línea recta, solo cuando el catálogo entrega coordenadas
	if (m.Origin.Latitude != 0 || m.Origin.Longitude != 0) &&
		(m.Destination.Latitude != 0 || m.Destination.Longitude != 0) {
		d := geo.HaversineDistance(m.Origin.Latitude, m.Origin.Longitude,
			m.Destination.Latitude, m.Destination.Longitude)
		fmt.Fprintf(out, "    Distancia: %s\n", geo.FormatKm(d))
	}

	for _, h := range m.History {
		fmt.Fprintf(out, "    - %s (%s)\n", h.Description, h.Timestamp.Format("02/01/2006 15:04"))
	}
	switch {
	case m.CanStart():
		fmt.Fprintln(out, "    Acción disponible: iniciar")
	case m.CanFinish():
		fmt.Fprintln(out, "    Acción disponible: finalizar")
	}
}

func newCreateMovementCmd(deps Deps) *cobra.Command {
	var form dto.TransferForm

	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Registra un movimiento entre filiales",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			// snapshot del catálogo al montar el formulario
			if err := deps.Catalog.LoadOptions(cmd.Context()); err != nil {
				deps.Log.Warn().Err(err).Msg("carga parcial del catálogo")
				fmt.Fprintln(out, "Aviso: no fue posible cargar todas las opciones.")
			}

			if _, err := deps.Transfer.Submit(cmd.Context(), form); err != nil {
				return report(out, err)
			}
			fmt.Fprintln(out, "Movimentación registrada con éxito.")
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Origin, "origen", "", "id de la filial de origen")
	cmd.Flags().StringVar(&form.Destination, "destino", "", "id de la filial de destino")
	cmd.Flags().StringVar(&form.ProductID, "producto", "", "id del producto")
	cmd.Flags().StringVar(&form.Quantity, "cantidad", "", "cantidad a trasladar")
	cmd.Flags().StringVar(&form.Observations, "obs", "", "observaciones")
	_ = cmd.MarkFlagRequired("origen")
	_ = cmd.MarkFlagRequired("destino")
	_ = cmd.MarkFlagRequired("producto")
	_ = cmd.MarkFlagRequired("cantidad")
	return cmd
}

func newStartCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "iniciar <id>",
		Short: "Inicia la entrega de un movimiento (requiere foto)",
		Args:  cobra.ExactArgs(1),
		RunE:  transitionRunE(deps, "Em Trânsito", true),
	}
}

func newFinishCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "finalizar <id>",
		Short: "Finaliza la entrega de un movimiento (requiere foto)",
		Args:  cobra.ExactArgs(1),
		RunE:  transitionRunE(deps, "Coleta finalizada", false),
	}
}

func transitionRunE(deps Deps, label string, start bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return report(out, fmt.Errorf("%w: id de movimiento", domain.ErrInvalidInput))
		}
		if !deps.Auth.LoggedIn() {
			return report(out, fmt.Errorf("%w: inicia sesión para registrar entregas", domain.ErrNoSession))
		}

		// la vista de acciones opera sobre el snapshot vigente
		if _, err := deps.Registry.Refresh(cmd.Context()); err != nil {
			return report(out, err)
		}

		run := deps.Transition.Finish
		if start {
			run = deps.Transition.Start
		}
		if _, err := run(cmd.Context(), id); err != nil {
			return report(out, err)
		}
		fmt.Fprintf(out, "Estado alterado a %s.\n", label)
		return nil
	}
}
