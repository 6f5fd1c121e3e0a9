package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/edpay/internal/cli/formatter"
	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/spf13/cobra"
)

func newMentorCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mentor",
		Short: "Manage mentors",
	}

	cmd.AddCommand(
		newMentorListCmd(app),
		newMentorAddCmd(app),
	)

	return cmd
}

func newMentorListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List mentors",
		Args:    cobra.NoArgs,
		PreRunE: requireSignedIn(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			mentors, err := app.Mentors.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(mentors) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No mentors found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Mentors", formatter.FormatMentorTable(mentors)))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}

func newMentorAddCmd(app *App) *cobra.Command {
	var id, name, email string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a mentor",
		Long: "Add a mentor. Without flags the next placeholder mentor is created\n" +
			"(mentor-N, \"New Mentor N\", mentorN@example.com).",
		Args:    cobra.NoArgs,
		PreRunE: requireAdmin(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var m *domain.Mentor
			if id == "" && name == "" && email == "" {
				next, err := app.Mentors.AddNext(ctx)
				if err != nil {
					return err
				}
				m = next
			} else {
				m = &domain.Mentor{
					ID:    strings.TrimSpace(id),
					Name:  strings.TrimSpace(name),
					Email: strings.TrimSpace(email),
				}
				if err := app.Mentors.Create(ctx, m); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added mentor %s (%s)\n", m.Name, m.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Mentor ID")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.MarkFlagsRequiredTogether("id", "name")

	return cmd
}
