package repository

import (
	"context"

	"forthecos/internal/domain/entity"
	"forthecos/internal/errors"
)

var (
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrRefreshTokenExpired is returned by lookups of a stored but lapsed session.
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
)

// RefreshTokenRepository stores login sessions. Only the token digest is
// persisted, never the raw token handed to the client.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)
	// DeleteRefreshTokenByHash ends one session. ErrRefreshTokenNotFound when already gone.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error
	// DeleteExpiredRefreshTokens purges lapsed sessions and reports how many were removed.
	DeleteExpiredRefreshTokens(ctx context.Context) (int64, error)
}
