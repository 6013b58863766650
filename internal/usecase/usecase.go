// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"forthecos/internal/domain/entity"

	"github.com/google/uuid"
)

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID uuid.UUID
	Roles  entity.Roles
}

// IsAdmin reports whether the caller carries the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Roles.Contains(entity.RoleAdmin)
}

// ID returns the caller's user id, or nil for guests.
func (p *Principal) ID() *uuid.UUID {
	if p == nil {
		return nil
	}
	id := p.UserID

	return &id
}
