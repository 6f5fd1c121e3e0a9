package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/edpay/internal/cli/formatter"
	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/alexanderramin/edpay/internal/service"
	"github.com/spf13/cobra"
)

func newSignInCmd(app *App) *cobra.Command {
	role := roleValue(domain.RoleAdmin)
	var email, password string

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in as an admin or a mentor",
		Long: "Sign in as an admin or a mentor. Prompts for anything missing when run\n" +
			"in a terminal. Demo accounts: admin@edpay.com, or any email containing\n" +
			"\"mentor\", both with password \"password\".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (email == "" || password == "") && app.interactive() {
				r := string(role)
				if err := signInForm(&r, &email, &password).Run(); err != nil {
					return err
				}
				role = roleValue(r)
			}

			id, err := app.Auth.SignIn(cmd.Context(), domain.Role(role), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s %s\n", id.Email, formatter.RoleBadge(id.Role))
			return nil
		},
	}

	cmd.Flags().Var(&role, "role", "Role to sign in as (admin or mentor)")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")

	return cmd
}

func newSignOutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.SignOut(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newWhoAmICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show who is signed in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.Auth.Current(cmd.Context())
			if errors.Is(err, service.ErrNotSignedIn) {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderKV([][2]string{
				{"Email", id.Email},
				{"Role", formatter.RoleBadge(id.Role)},
				{"Since", formatter.HumanTimestamp(id.SignedInAt, app.now())},
			}))
			return nil
		},
	}
}
