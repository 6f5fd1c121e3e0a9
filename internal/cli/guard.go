package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/alexanderramin/edpay/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type identityKey struct{}

// requireRole returns a PreRunE that rejects the command unless someone is
// signed in with one of roles. No roles admits any signed-in user. The
// identity is stored on the command context for the RunE.
func requireRole(app *App, roles ...domain.Role) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		id, err := app.Auth.Require(ctx, roles...)
		if err != nil {
			if errors.Is(err, service.ErrNotSignedIn) {
				return fmt.Errorf("%w: run 'edpay signin' first", err)
			}
			return err
		}
		app.logger().Debug("authorized",
			zap.String("command", cmd.CommandPath()),
			zap.String("role", string(id.Role)))
		cmd.SetContext(context.WithValue(ctx, identityKey{}, id))
		return nil
	}
}

func requireAdmin(app *App) func(*cobra.Command, []string) error {
	return requireRole(app, domain.RoleAdmin)
}

func requireSignedIn(app *App) func(*cobra.Command, []string) error {
	return requireRole(app)
}

// identityFrom returns the identity stored by requireRole.
func identityFrom(ctx context.Context) *domain.Identity {
	id, _ := ctx.Value(identityKey{}).(*domain.Identity)
	return id
}

// mentorForIdentity resolves the mentor record a mentor sign-in acts as: the
// mentor whose email matches, else mentor-1.
func mentorForIdentity(ctx context.Context, app *App, id *domain.Identity) (string, error) {
	mentors, err := app.Mentors.List(ctx)
	if err != nil {
		return "", err
	}
	if id != nil {
		for _, m := range mentors {
			if strings.EqualFold(m.Email, id.Email) {
				return m.ID, nil
			}
		}
	}
	return fallbackMentorID, nil
}

const fallbackMentorID = "mentor-1"

// scopedMentorID decides which mentor a read command shows. Mentors always
// see themselves; admins see the requested mentor, if any.
func scopedMentorID(ctx context.Context, app *App, requested string) (string, error) {
	id := identityFrom(ctx)
	if id != nil && id.Role == domain.RoleMentor {
		return mentorForIdentity(ctx, app, id)
	}
	return strings.TrimSpace(requested), nil
}
