package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "forthecos/internal/delivery/context"
	"forthecos/internal/domain/constants"
	"forthecos/internal/domain/entity"
	domainerrors "forthecos/internal/domain/errors"
	"forthecos/internal/domain/repository"
	"forthecos/internal/domain/service"
	"forthecos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxDisplayNameLength = 64

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo       repository.UserRepository
	profileRepo    repository.ProfileRepository
	generationRepo repository.GenerationRepository
	storage        service.ObjectStorage
	logger         *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	ProfileRepo    repository.ProfileRepository
	GenerationRepo repository.GenerationRepository
	Storage        service.ObjectStorage
	Logger         *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:       params.UserRepo,
		profileRepo:    params.ProfileRepo,
		generationRepo: params.GenerationRepo,
		storage:        params.Storage,
		logger:         params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the caller's profile, creating it from the account when it is missing.
func (srv *profileService) Get(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Any("userID", userID))

	profile, err := srv.profileRepo.Get(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	displayName, _, _ := strings.Cut(user.Email, "@")
	profile = &entity.UserProfile{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: displayName,
		CreatedAt:   time.Now(),
	}
	if err := srv.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create missing profile")
	}
	srv.log(ctx).Info("Created missing profile", slog.Any("userID", userID))

	return profile, nil
}

// GetPublic returns a creator page with only public artifacts.
func (srv *profileService) GetPublic(ctx context.Context, userID uuid.UUID, viewer *usecase.Principal) (*usecase.PublicProfileOutput, error) {
	profile, err := srv.profileRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	generations, err := srv.generationRepo.ListPublicByOwner(ctx, userID, viewer.ID())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public generations")
	}

	return &usecase.PublicProfileOutput{
		Profile:     profile.Public(),
		Socials:     profile.Socials,
		Generations: generations,
	}, nil
}

// Update changes the display name and social links.
func (srv *profileService) Update(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.UserProfile, error) {
	profile, err := srv.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		name := strings.TrimSpace(*input.DisplayName)
		if name == "" || len([]rune(name)) > maxDisplayNameLength {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "display name must be 1 to 64 characters")
		}
		profile.DisplayName = name
	}
	if input.Socials != nil {
		profile.Socials = trimSocials(*input.Socials)
	}

	if err := srv.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}
	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID))

	return profile, nil
}

// UploadAvatar stores the image under avatars/ and points the profile at it.
func (srv *profileService) UploadAvatar(ctx context.Context, userID uuid.UUID, input usecase.UploadInput) (*entity.UserProfile, error) {
	if len(input.Data) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "avatar image is required")
	}

	profile, err := srv.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	url, err := srv.storage.Upload(ctx, constants.StoragePrefixAvatars, input.Data, input.ContentType)
	if err != nil {
		srv.log(ctx).Error("Failed to upload avatar", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	profile.AvatarURL = url
	if err := srv.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update avatar")
	}

	return profile, nil
}

func trimSocials(in entity.SocialLinks) entity.SocialLinks {
	return entity.SocialLinks{
		Instagram: strings.TrimSpace(in.Instagram),
		Twitter:   strings.TrimSpace(in.Twitter),
		Discord:   strings.TrimSpace(in.Discord),
		Website:   strings.TrimSpace(in.Website),
	}
}
