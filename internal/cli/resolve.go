package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/alexanderramin/edpay/internal/repository"
)

// resolveSessionID accepts a full session ID or a unique prefix of one, as
// shown in the truncated ID column of session tables.
func resolveSessionID(ctx context.Context, app *App, input string) (string, error) {
	sessions, err := app.Sessions.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(sessions))
	for _, s := range sessions {
		ids = append(ids, s.ID)
	}
	return matchID("session", input, ids)
}

// resolveReceiptID accepts a full receipt ID or a unique prefix of one.
func resolveReceiptID(ctx context.Context, app *App, input string) (*domain.Receipt, error) {
	receipts, err := app.Receipts.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(receipts))
	for _, r := range receipts {
		ids = append(ids, r.ID)
	}
	id, err := matchID("receipt", input, ids)
	if err != nil {
		return nil, err
	}
	return app.Receipts.GetByID(ctx, id)
}

func matchID(kind, input string, ids []string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%s id is required", kind)
	}
	var matches []string
	for _, id := range ids {
		if id == input {
			return id, nil
		}
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s %s: %w", kind, input, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

// sessionIndex loads the sessions a receipt covers that still exist.
func sessionIndex(ctx context.Context, app *App, ids []string) (map[string]*domain.Session, error) {
	index := make(map[string]*domain.Session, len(ids))
	all, err := app.Sessions.List(ctx)
	if err != nil {
		return nil, err
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	for _, s := range all {
		if wanted[s.ID] {
			index[s.ID] = s
		}
	}
	return index, nil
}
