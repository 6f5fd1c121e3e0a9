package cli

import (
	"time"

	"github.com/alexanderramin/edpay/internal/payout"
	"github.com/alexanderramin/edpay/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Mentors   service.MentorService
	Sessions  service.SessionService
	Receipts  service.ReceiptService
	Dashboard service.DashboardService
	Auth      service.AuthService

	// Rates are the configured deduction rates; nil means the defaults.
	Rates          *payout.Config
	ChatReplyDelay time.Duration
	Clock          payout.Clock
	Logger         *zap.Logger

	// IsInteractive reports whether prompts and the chat panel may take over
	// the terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	return payout.ClockOrSystem(a.Clock).Now()
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// NewRootCmd creates the top-level "edpay" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "edpay",
		Short:         "Mentor session tracking and payout receipts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSignInCmd(app),
		newSignOutCmd(app),
		newWhoAmICmd(app),
		newMentorCmd(app),
		newSessionCmd(app),
		newImportCmd(app),
		newExportCmd(app),
		newReceiptCmd(app),
		newPayoutCmd(app),
		newDashboardCmd(app),
		newChatCmd(app),
	)

	return root
}
