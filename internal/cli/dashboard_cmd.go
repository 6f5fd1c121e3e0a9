package cli

import (
	"fmt"

	"github.com/alexanderramin/edpay/internal/cli/formatter"
	"github.com/alexanderramin/edpay/internal/contract"
	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Summary views for admins and mentors",
	}

	cmd.AddCommand(
		newAdminDashboardCmd(app),
		newMentorDashboardCmd(app),
	)

	return cmd
}

func newAdminDashboardCmd(app *App) *cobra.Command {
	dateRange := newRangeValue(domain.RangeLast30)

	cmd := &cobra.Command{
		Use:     "admin",
		Short:   "Sessions and payouts across all mentors",
		Args:    cobra.NoArgs,
		PreRunE: requireAdmin(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			req := contract.NewAdminDashboardRequest()
			req.Range = dateRange.Range()
			req.Now = &now

			resp, err := app.Dashboard.Admin(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAdminDashboard(resp))
			return nil
		},
	}

	cmd.Flags().Var(dateRange, "range", "Date range: last7, last15, last30 or all")

	return cmd
}

func newMentorDashboardCmd(app *App) *cobra.Command {
	var mentorFlag string

	cmd := &cobra.Command{
		Use:   "mentor",
		Short: "Sessions, receipts and payouts for one mentor",
		Long: "Sessions, receipts and payouts for one mentor. Mentors always see\n" +
			"their own dashboard; admins choose one with --mentor.",
		Args:    cobra.NoArgs,
		PreRunE: requireSignedIn(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			mentorID, err := scopedMentorID(ctx, app, mentorFlag)
			if err != nil {
				return err
			}
			if mentorID == "" {
				mentorID = fallbackMentorID
			}

			resp, err := app.Dashboard.Mentor(ctx, mentorID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMentorDashboard(resp, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&mentorFlag, "mentor", "", "Mentor ID (admins only)")

	return cmd
}
