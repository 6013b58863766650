// Package repository declares the persistence contracts the studio use cases
// depend on. Implementations live under infra/persistence.
package repository

import (
	"context"

	"forthecos/internal/domain/entity"
	"forthecos/internal/errors"
)

var (
	ErrAuthNotFound = errors.New("authentication method not found")
	// ErrDuplicateAuth is returned when an email credential already exists.
	ErrDuplicateAuth = errors.New("authentication method already exists")
)

// AuthRepository stores login credentials keyed by provider and provider user id.
// Email sign-in uses entity.ProviderTypeEmail with the email as the id.
type AuthRepository interface {
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
	FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error)
}
