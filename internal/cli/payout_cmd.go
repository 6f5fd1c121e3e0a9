package cli

import (
	"fmt"

	"github.com/alexanderramin/edpay/internal/cli/formatter"
	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/alexanderramin/edpay/internal/payout"
	"github.com/spf13/cobra"
)

func newPayoutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payout",
		Short: "Payout calculations",
	}
	cmd.AddCommand(newPayoutCalcCmd(app))
	return cmd
}

func newPayoutCalcCmd(app *App) *cobra.Command {
	var mentorFlag string
	var charges chargeList

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Preview a mentor's payout without generating a receipt",
		Long: "Preview a mentor's payout. The platform fee is taken from the base\n" +
			"amount, GST from what remains, then each --charge is subtracted.",
		Args:    cobra.NoArgs,
		PreRunE: requireSignedIn(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			mentorID, err := scopedMentorID(ctx, app, mentorFlag)
			if err != nil {
				return err
			}
			if mentorID, err = pickMentor(ctx, app, mentorID); err != nil {
				return err
			}

			rates := app.Rates
			if rates == nil {
				rates = payout.DefaultConfig()
			}
			fee, err := percentFlag(cmd.Flags(), "fee", domain.Float64FromPtrWithDefault(0, rates.PlatformFeePercentage))
			if err != nil {
				return err
			}
			gst, err := percentFlag(cmd.Flags(), "gst", domain.Float64FromPtrWithDefault(0, rates.GSTPercentage))
			if err != nil {
				return err
			}
			cfg := payout.NewConfig(fee, gst, charges...)

			preview, err := app.Receipts.Preview(ctx, mentorID, cfg)
			if err != nil {
				return err
			}

			title := fmt.Sprintf("%s · %d sessions", preview.Mentor.Name, len(preview.Sessions))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBreakdown(title, preview.Breakdown, cfg))
			return nil
		},
	}

	cmd.Flags().StringVar(&mentorFlag, "mentor", "", "Mentor ID")
	cmd.Flags().Float64("fee", payout.DefaultPlatformFeePercentage, "Platform fee percentage")
	cmd.Flags().Float64("gst", payout.DefaultGSTPercentage, "GST percentage")
	cmd.Flags().Var(&charges, "charge", "Additional deduction as name=amount (repeatable)")

	return cmd
}
