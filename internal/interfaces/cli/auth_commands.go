package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(deps Deps) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Inicia sesión contra el servicio remoto",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := deps.Auth.Login(cmd.Context(), email, password)
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bienvenido, %s (%s)\n", res.Name, res.Profile)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email de la cuenta")
	cmd.Flags().StringVar(&password, "password", "", "contraseña")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cierra la sesión y borra los datos del dispositivo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps.Auth.Logout(); err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sesión cerrada.")
			return nil
		},
	}
}
