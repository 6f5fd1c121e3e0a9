// Package auth checks sign-in credentials against the fixed demo accounts.
// There is no user store, hashing or session token; the resolved role is
// simply remembered by the caller.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/edpay/internal/domain"
)

const (
	AdminEmail   = "admin@edpay.com"
	DemoPassword = "password"
)

var (
	ErrMissingCredentials = errors.New("please provide both email and password")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownRole        = errors.New("unknown role")
)

// Authenticate verifies email and password for the requested role.
// Admins must use AdminEmail; any email containing "mentor" signs in as a
// mentor. Both use DemoPassword.
func Authenticate(role domain.Role, email, password string) error {
	if email == "" || password == "" {
		return ErrMissingCredentials
	}

	switch role {
	case domain.RoleAdmin:
		if email == AdminEmail && password == DemoPassword {
			return nil
		}
		return fmt.Errorf("admin: %w", ErrInvalidCredentials)
	case domain.RoleMentor:
		if strings.Contains(email, "mentor") && password == DemoPassword {
			return nil
		}
		return fmt.Errorf("mentor: %w", ErrInvalidCredentials)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
}
