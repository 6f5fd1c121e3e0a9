package domain

import "time"

// Identity is the signed-in user of this installation.
type Identity struct {
	Role       Role
	Email      string
	SignedInAt time.Time
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
