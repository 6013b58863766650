package impl

import (
	"context"
	"testing"
	"time"

	"forthecos/internal/domain/entity"
	domainerrors "forthecos/internal/domain/errors"
	"forthecos/internal/domain/repository"
	"forthecos/internal/domain/service"
	mockRepo "forthecos/internal/mocks/repository"
	mockSvc "forthecos/internal/mocks/service"
	"forthecos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          usecase.AuthUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv := NewAuthService(AuthServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	return authServiceFixtures{
		service:          srv,
		txManager:        txManager,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func (f authServiceFixtures) expectTokens() {
	f.tokenService.EXPECT().GenerateTokens(mock.AnythingOfType("uuid.UUID"), mock.Anything).Return("access", "refresh", nil)
	f.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	f.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)
	f.refreshTokenRepo.EXPECT().CreateRefreshToken(mock.Anything, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{Email: "  Cosplayer@Example.com ", Password: "Password123!"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	var createdProfile *entity.UserProfile
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "cosplayer@example.com").
				Return(nil, repository.ErrAuthNotFound)
			mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(_ context.Context, auth *entity.Authentication) {
					assert.Equal(t, "hashed_password", auth.PasswordHash)
				}).
				Return(nil)
			mockProfileRepo.EXPECT().
				Upsert(ctx, mock.AnythingOfType("*entity.UserProfile")).
				Run(func(_ context.Context, profile *entity.UserProfile) {
					createdProfile = profile
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)
	fx.expectTokens()

	output, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, "cosplayer@example.com", output.User.Email)
	assert.False(t, output.User.IsAdmin())
	require.NotNil(t, createdProfile)
	assert.Equal(t, output.User.ID, createdProfile.ID)
	assert.Equal(t, "cosplayer", createdProfile.DisplayName)
}

func TestAuthService_SignUp_AdminEmailGetsAdminRole(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{Email: "boss@example.com", Password: "Password123!", DisplayName: "Boss"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockAuthRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).Return(nil, repository.ErrAuthNotFound)
			mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
			mockAuthRepo.EXPECT().CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).Return(nil)
			mockProfileRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.UserProfile")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)
	fx.expectTokens()

	output, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	assert.True(t, output.User.IsAdmin())
	assert.Equal(t, "Boss", output.User.Profile.DisplayName)
}

func TestAuthService_SignUp_ShortPassword(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{Email: "a@b.c", Password: "short"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_SignUp_AlreadyExists(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{Email: "taken@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.SignUp(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{Email: "fan@example.com", Password: "Password123!"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)

			return fn(mockFactory)
		})
	fx.hasher.EXPECT().Check(input.Password, "hashed").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Email: input.Email, Roles: entity.Roles{entity.RoleUser}}, nil)
	fx.expectTokens()

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_Login_PromotesConfiguredAdmin(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{Email: "boss@example.com", Password: "Password123!"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)

			return fn(mockFactory)
		})
	fx.hasher.EXPECT().Check(input.Password, "hashed").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Email: input.Email, Roles: entity.Roles{entity.RoleUser}}, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.IsAdmin() })).
		Return(nil).
		Once()
	fx.expectTokens()

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.True(t, output.User.IsAdmin())
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "fan@example.com", Password: "wrong"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed"}, nil)

			return fn(mockFactory)
		})
	fx.hasher.EXPECT().Check(input.Password, "hashed").Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "ghost@example.com", Password: "Password123!"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
			mockAuthRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).Return(nil, repository.ErrAuthNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.Login(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_RefreshToken(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		setup   func(fx authServiceFixtures)
		wantErr error
	}{
		{
			name: "success",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("rt").Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
				fx.tokenService.EXPECT().HashToken("rt").Return("rt-hash")
				fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "rt-hash").Return(&entity.RefreshToken{UserID: userID}, nil)
				fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
				fx.tokenService.EXPECT().GenerateTokens(userID, mock.Anything).Return("new-access", "ignored", nil)
			},
		},
		{
			name: "access token rejected",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("rt").Return(&service.Claims{UserID: userID, Type: "access"}, nil)
			},
			wantErr: domainerrors.ErrRefreshTokenInvalid,
		},
		{
			name: "revoked token",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("rt").Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
				fx.tokenService.EXPECT().HashToken("rt").Return("rt-hash")
				fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "rt-hash").Return(nil, repository.ErrRefreshTokenNotFound)
			},
			wantErr: domainerrors.ErrRefreshTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			output, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "rt"})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, output)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "new-access", output.AccessToken)
		})
	}
}

func TestAuthService_Logout_MissingTokenIsNotAnError(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().ValidateToken("rt").Return(nil, errors.New("expired"))
	fx.tokenService.EXPECT().HashToken("rt").Return("rt-hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(mock.Anything, "rt-hash").Return(repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: "rt"})

	assert.NoError(t, err)
}

func TestAuthService_CurrentUser_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	userID := uuid.New()
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.CurrentUser(context.Background(), userID)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_PurgeExpiredSessions(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.refreshTokenRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(int64(3), nil).Once()

	removed, err := fx.service.PurgeExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestAuthService_PurgeExpiredSessions_Error(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.refreshTokenRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(int64(0), errors.New("db down")).Once()

	_, err := fx.service.PurgeExpiredSessions(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "purge expired sessions")
}
