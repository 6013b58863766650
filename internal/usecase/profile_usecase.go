package usecase

import (
	"context"

	"forthecos/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the editable profile fields. Nil fields are left unchanged.
type UpdateProfileInput struct {
	DisplayName *string
	Socials     *entity.SocialLinks
}

// PublicProfileOutput is a creator page: the public profile and public artifacts.
type PublicProfileOutput struct {
	Profile     *entity.PublicProfile
	Socials     entity.SocialLinks
	Generations []*entity.Generation
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)
	GetPublic(ctx context.Context, userID uuid.UUID, viewer *Principal) (*PublicProfileOutput, error)
	Update(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.UserProfile, error)
	UploadAvatar(ctx context.Context, userID uuid.UUID, input UploadInput) (*entity.UserProfile, error)
}
