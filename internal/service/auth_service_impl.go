package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/edpay/internal/auth"
	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/alexanderramin/edpay/internal/payout"
	"github.com/alexanderramin/edpay/internal/repository"
)

type authService struct {
	state    repository.AuthStateRepo
	clock    payout.Clock
	observer UseCaseObserver
}

func NewAuthService(state repository.AuthStateRepo, clock payout.Clock, observers ...UseCaseObserver) AuthService {
	return &authService{
		state:    state,
		clock:    payout.ClockOrSystem(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *authService) SignIn(ctx context.Context, role domain.Role, email, password string) (id *domain.Identity, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "sign-in", startedAt, &err, map[string]any{"role": string(role)})
	}()

	email = strings.TrimSpace(email)
	if err := auth.Authenticate(role, email, password); err != nil {
		return nil, err
	}

	id = &domain.Identity{Role: role, Email: email, SignedInAt: s.clock.Now()}
	if err := s.state.Save(ctx, id); err != nil {
		return nil, err
	}
	return id, nil
}

func (s *authService) SignOut(ctx context.Context) error {
	return s.state.Clear(ctx)
}

func (s *authService) Current(ctx context.Context) (*domain.Identity, error) {
	id, err := s.state.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotSignedIn
	}
	return id, err
}

func (s *authService) Require(ctx context.Context, roles ...domain.Role) (*domain.Identity, error) {
	id, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if len(roles) > 0 && !slices.Contains(roles, id.Role) {
		return nil, fmt.Errorf("%w: requires %s role, signed in as %s", ErrForbidden, joinRoles(roles), id.Role)
	}
	return id, nil
}

func joinRoles(roles []domain.Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, " or ")
}
