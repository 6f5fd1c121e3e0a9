package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/edpay/internal/cli/formatter"
	"github.com/alexanderramin/edpay/internal/contract"
	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/spf13/cobra"
)

func newReceiptCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receipt",
		Short: "Generate and view payout receipts",
	}

	cmd.AddCommand(
		newReceiptGenerateCmd(app),
		newReceiptListCmd(app),
		newReceiptShowCmd(app),
	)

	return cmd
}

func newReceiptGenerateCmd(app *App) *cobra.Command {
	var mentorFlag string
	var charges chargeList

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a receipt covering all of a mentor's sessions",
		Long: "Generate a receipt covering all of a mentor's sessions. The payout is\n" +
			"calculated at the configured rates unless --amount is given.",
		Args:    cobra.NoArgs,
		PreRunE: requireAdmin(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			mentorID, err := pickMentor(ctx, app, mentorFlag)
			if err != nil {
				return err
			}
			amount, err := intFlagPtr(cmd.Flags(), "amount")
			if err != nil {
				return err
			}

			receipt, err := app.Receipts.Generate(ctx, contract.GenerateReceiptRequest{
				MentorID: mentorID,
				Amount:   amount,
				Charges:  charges,
			})
			if err != nil {
				return err
			}

			index, err := sessionIndex(ctx, app, receipt.Sessions)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatReceipt(receipt, index))
			fmt.Fprintf(cmd.OutOrStdout(), "Receipt generated for %s\n", receipt.MentorName)
			return nil
		},
	}

	cmd.Flags().StringVar(&mentorFlag, "mentor", "", "Mentor ID")
	cmd.Flags().Int("amount", 0, "Use this total instead of calculating one")
	cmd.Flags().Var(&charges, "charge", "Additional deduction as name=amount (repeatable)")

	return cmd
}

// pickMentor returns the flag value, or asks for a mentor in a terminal.
// An empty result is left for the service to reject.
func pickMentor(ctx context.Context, app *App, flag string) (string, error) {
	if flag != "" || !app.interactive() {
		return flag, nil
	}
	mentors, err := app.Mentors.List(ctx)
	if err != nil || len(mentors) == 0 {
		return flag, err
	}
	var picked string
	if err := selectMentorForm(mentors, &picked).Run(); err != nil {
		return "", err
	}
	return picked, nil
}

func newReceiptListCmd(app *App) *cobra.Command {
	var mentorFlag string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List receipts",
		Args:    cobra.NoArgs,
		PreRunE: requireSignedIn(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			mentorID, err := scopedMentorID(ctx, app, mentorFlag)
			if err != nil {
				return err
			}

			var receipts []*domain.Receipt
			if mentorID != "" {
				receipts, err = app.Receipts.ListByMentor(ctx, mentorID)
			} else {
				receipts, err = app.Receipts.List(ctx)
			}
			if err != nil {
				return err
			}

			if len(receipts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No receipts found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Receipts", formatter.FormatReceiptTable(receipts)))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&mentorFlag, "mentor", "", "Only this mentor's receipts")

	return cmd
}

func newReceiptShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "show ID",
		Short:   "Show a receipt",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireSignedIn(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			receipt, err := resolveReceiptID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if id := identityFrom(ctx); id != nil && id.Role == domain.RoleMentor {
				own, err := mentorForIdentity(ctx, app, id)
				if err != nil {
					return err
				}
				if receipt.MentorID != own {
					return fmt.Errorf("receipt %s belongs to another mentor", args[0])
				}
			}

			index, err := sessionIndex(ctx, app, receipt.Sessions)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatReceipt(receipt, index))
			return nil
		},
	}
}
