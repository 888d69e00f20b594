package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/movilog-app/internal/application/dto"
	"github.com/jhoicas/movilog-app/internal/domain"
)

func newUsersCmd(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usuarios",
		Short: "Gestión de cuentas (motorista/filial)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			list, err := deps.Users.List(cmd.Context())
			if err != nil {
				return report(out, err)
			}
			for _, u := range list {
				estado := "inactivo"
				if u.Status {
					estado = "activo"
				}
				fmt.Fprintf(out, "#%d  %s  perfil=%s  %s\n", u.ID, u.Name, u.Profile, estado)
			}
			return nil
		},
	}
	cmd.AddCommand(newUserCreateCmd(deps), newUserUpdateCmd(deps), newUserToggleCmd(deps))
	return cmd
}

func userFormFlags(cmd *cobra.Command, form *dto.UserForm) {
	cmd.Flags().StringVar(&form.Name, "nombre", "", "nombre completo")
	cmd.Flags().StringVar(&form.Profile, "perfil", "", "motorista o filial")
	cmd.Flags().StringVar(&form.Document, "documento", "", "documento de identidad")
	cmd.Flags().StringVar(&form.FullAddress, "direccion", "", "dirección completa")
	cmd.Flags().StringVar(&form.Email, "email", "", "email de la cuenta")
	cmd.Flags().StringVar(&form.Password, "password", "", "contraseña")
	cmd.Flags().StringVar(&form.ConfirmPassword, "confirmar", "", "confirmación de contraseña")
}

func newUserCreateCmd(deps Deps) *cobra.Command {
	var form dto.UserForm
	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Registra una cuenta nueva",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			u, err := deps.Users.Register(cmd.Context(), form)
			if err != nil {
				return report(out, err)
			}
			fmt.Fprintf(out, "Usuario #%d registrado.\n", u.ID)
			return nil
		},
	}
	userFormFlags(cmd, &form)
	return cmd
}

func newUserUpdateCmd(deps Deps) *cobra.Command {
	var form dto.UserForm
	cmd := &cobra.Command{
		Use:   "editar <id>",
		Short: "Edita una cuenta existente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return report(out, fmt.Errorf("%w: id de usuario", domain.ErrInvalidInput))
			}
			if _, err := deps.Users.Update(cmd.Context(), id, form); err != nil {
				return report(out, err)
			}
			fmt.Fprintln(out, "Usuario actualizado.")
			return nil
		},
	}
	userFormFlags(cmd, &form)
	return cmd
}

func newUserToggleCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "alternar <id>",
		Short: "Alterna el estado activo/inactivo de una cuenta",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return report(out, fmt.Errorf("%w: id de usuario", domain.ErrInvalidInput))
			}
			status, err := deps.Users.ToggleStatus(cmd.Context(), id)
			if err != nil {
				return report(out, err)
			}
			if status {
				fmt.Fprintln(out, "Usuario activado.")
			} else {
				fmt.Fprintln(out, "Usuario desactivado.")
			}
			return nil
		},
	}
}
