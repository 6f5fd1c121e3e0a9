package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/edpay/internal/cli/formatter"
	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage mentor sessions",
	}

	cmd.AddCommand(
		newSessionAddCmd(app),
		newSessionListCmd(app),
		newSessionRemoveCmd(app),
	)

	return cmd
}

func newSessionAddCmd(app *App) *cobra.Command {
	in := sessionInput{
		Type:     domain.DefaultSessionType,
		Duration: strconv.Itoa(domain.DefaultDuration),
		Rate:     strconv.Itoa(domain.DefaultRatePerHour),
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a session",
		Long: "Add a session for a mentor. In a terminal, running without --mentor\n" +
			"opens a form.",
		Args:    cobra.NoArgs,
		PreRunE: requireAdmin(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if in.MentorID == "" && app.interactive() {
				mentors, err := app.Mentors.List(ctx)
				if err != nil {
					return err
				}
				if in.Date == "" {
					in.Date = app.now().Local().Format("2006-01-02T15:04")
				}
				if err := sessionForm(mentors, &in).Run(); err != nil {
					return err
				}
			}

			s, err := in.toSession()
			if err != nil {
				return err
			}
			if err := app.Sessions.Add(ctx, s); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s for %s (%s)\n",
				formatter.FormatDuration(s.Duration), s.Type, s.MentorName, s.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.MentorID, "mentor", "", "Mentor ID")
	cmd.Flags().StringVar(&in.Date, "date", "", "Session date, ISO-8601 (default now)")
	cmd.Flags().StringVar(&in.Type, "type", in.Type, "Session type")
	cmd.Flags().StringVar(&in.Duration, "duration", in.Duration, "Duration in minutes")
	cmd.Flags().StringVar(&in.Rate, "rate", in.Rate, "Rate per hour")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var mentorFlag string
	dateRange := newRangeValue(domain.RangeAll)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List sessions",
		Args:    cobra.NoArgs,
		PreRunE: requireSignedIn(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			mentorID, err := scopedMentorID(ctx, app, mentorFlag)
			if err != nil {
				return err
			}

			var sessions []*domain.Session
			if mentorID != "" {
				sessions, err = app.Sessions.ListByMentor(ctx, mentorID)
			} else {
				sessions, err = app.Sessions.ListInRange(ctx, dateRange.Range(), app.now())
			}
			if err != nil {
				return err
			}
			if mentorID != "" && dateRange.Range() != domain.RangeAll {
				sessions = inRange(sessions, dateRange.Range(), app)
			}

			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions found.")
				return nil
			}

			title := "Sessions · " + dateRange.Range().String()
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox(title, strings.TrimRight(formatter.FormatSessionTable(sessions), "\n")))
			return nil
		},
	}

	cmd.Flags().StringVar(&mentorFlag, "mentor", "", "Only this mentor's sessions")
	cmd.Flags().Var(dateRange, "range", "Date range: last7, last15, last30 or all")

	return cmd
}

func inRange(sessions []*domain.Session, r domain.DateRange, app *App) []*domain.Session {
	now := app.now()
	out := make([]*domain.Session, 0, len(sessions))
	for _, s := range sessions {
		if r.Contains(*s, now) {
			out = append(out, s)
		}
	}
	return out
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove ID",
		Short:   "Remove a session",
		Long:    "Remove a session. Receipts that already cover it are not changed.",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireAdmin(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := resolveSessionID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if !yes && app.interactive() {
				confirmed := false
				if err := confirmForm("Delete session "+id+"?", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if err := app.Sessions.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed session %s\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
