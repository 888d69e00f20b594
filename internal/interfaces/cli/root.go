// Package cli es la capa de interfaz del cliente: comandos cobra que cubren
// las pantallas de la operación (login, catálogo, movimientos, cuentas).
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jhoicas/movilog-app/internal/application/auth"
	"github.com/jhoicas/movilog-app/internal/application/catalog"
	"github.com/jhoicas/movilog-app/internal/application/movements"
	"github.com/jhoicas/movilog-app/internal/application/transfer"
	"github.com/jhoicas/movilog-app/internal/application/users"
	"github.com/jhoicas/movilog-app/internal/domain"
	"github.com/jhoicas/movilog-app/pkg/logger"
)

// Deps casos de uso que consume la interfaz, inyectados desde main.
type Deps struct {
	Log        *logger.Logger
	Auth       *auth.UseCase
	Catalog    *catalog.UseCase
	Transfer   *transfer.UseCase
	Registry   *movements.Registry
	Transition *movements.TransitionController
	Users      *users.UseCase
}

// NewRootCmd arma el árbol de comandos de la aplicación.
func NewRootCmd(deps Deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "movilog",
		Short:         "Cliente de movimientos de stock entre filiales",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newLoginCmd(deps),
		newLogoutCmd(deps),
		newProductsCmd(deps),
		newMovementsCmd(deps),
		newCreateMovementCmd(deps),
		newStartCmd(deps),
		newFinishCmd(deps),
		newUsersCmd(deps),
	)
	return rootCmd
}

// report traduce un error de dominio al mensaje de alerta del usuario y lo
// escribe en la salida del comando. La captura cancelada aborta en silencio.
// Devuelve el error original para el código de salida, salvo en el caso
// silencioso.
func report(out io.Writer, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrCaptureCancelled):
		return nil
	case errors.Is(err, domain.ErrCameraPermission):
		fmt.Fprintln(out, "Permiso necesario: permite el acceso a la cámara para continuar.")
	case errors.Is(err, domain.ErrInvalidRoute):
		fmt.Fprintln(out, "Error: la filial de origen y destino deben ser diferentes.")
	case errors.Is(err, domain.ErrInsufficientStock):
		fmt.Fprintln(out, "Error: stock insuficiente para este movimiento.")
	case errors.Is(err, domain.ErrUnresolvedStock):
		fmt.Fprintln(out, "Error: el producto no está disponible en la filial de origen.")
	case errors.Is(err, domain.ErrInvalidCredentials):
		fmt.Fprintln(out, "Error: credenciales inválidas.")
	case errors.Is(err, domain.ErrPasswordMismatch):
		fmt.Fprintln(out, "Error: las contraseñas no coinciden.")
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrNoSession):
		fmt.Fprintf(out, "Error: %v\n", err)
	default:
		// transporte o rechazo del servidor: alerta genérica, sin reintento
		fmt.Fprintln(out, "Error: no fue posible completar la operación.")
	}
	return err
}
