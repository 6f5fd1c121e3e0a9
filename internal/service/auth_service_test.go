package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/edpay/internal/auth"
	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignIn_PersistsIdentity(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.authState, env.clock, env.observer)
	ctx := context.Background()

	id, err := svc.SignIn(ctx, domain.RoleAdmin, " admin@edpay.com ", "password")
	require.NoError(t, err)
	assert.Equal(t, "admin@edpay.com", id.Email)

	cur, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, cur.Role)
	assert.Equal(t, testNow, cur.SignedInAt)

	ev := env.observer.last(t)
	assert.Equal(t, "sign-in", ev.Name)
	assert.Equal(t, "admin", ev.Fields["role"])
}

func TestSignIn_BadCredentialsKeepPreviousUser(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.authState, env.clock, env.observer)
	ctx := context.Background()

	_, err := svc.SignIn(ctx, domain.RoleMentor, "jane.mentor@example.com", "password")
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, domain.RoleAdmin, "admin@edpay.com", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.False(t, env.observer.last(t).Success)

	cur, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMentor, cur.Role)
}

func TestRequire(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.authState, env.clock)
	ctx := context.Background()

	_, err := svc.Require(ctx)
	assert.ErrorIs(t, err, ErrNotSignedIn)

	_, err = svc.SignIn(ctx, domain.RoleMentor, "mentor@example.com", "password")
	require.NoError(t, err)

	_, err = svc.Require(ctx)
	assert.NoError(t, err, "no roles means any signed-in user")

	_, err = svc.Require(ctx, domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, err.Error(), "requires admin role")

	id, err := svc.Require(ctx, domain.RoleAdmin, domain.RoleMentor)
	require.NoError(t, err)
	assert.Equal(t, "mentor@example.com", id.Email)
}

func TestSignOut(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.authState, env.clock)
	ctx := context.Background()

	_, err := svc.SignIn(ctx, domain.RoleAdmin, "admin@edpay.com", "password")
	require.NoError(t, err)
	require.NoError(t, svc.SignOut(ctx))

	_, err = svc.Current(ctx)
	assert.ErrorIs(t, err, ErrNotSignedIn)
}
