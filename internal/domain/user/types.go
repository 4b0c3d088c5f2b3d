package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

// Role is the claim supplied by the external identity provider. The service
// trusts it as given; it never derives roles itself.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Principal is the already-authenticated actor every core operation receives
// explicitly. Authorization decisions happen at the usecase boundary from this
// value, never from client-supplied flags.
type Principal struct {
	ID   uuid.UUID
	Role Role
}

func NewPrincipal(id uuid.UUID, role Role) Principal {
	return Principal{ID: id, Role: role}
}

func (p Principal) IsAdmin() bool {
	return p.Role.IsAdmin()
}

// CanActOn reports whether the principal may read or mutate a record owned by
// ownerID. Admins may act on anything.
func (p Principal) CanActOn(ownerID uuid.UUID) bool {
	return p.IsAdmin() || p.ID == ownerID
}
