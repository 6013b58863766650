package impl

import (
	"context"
	"testing"
	"time"

	"forthecos/internal/domain/constants"
	"forthecos/internal/domain/entity"
	domainerrors "forthecos/internal/domain/errors"
	"forthecos/internal/domain/service"
	"forthecos/internal/domain/studio"
	"forthecos/internal/infra/cache"
	mockSvc "forthecos/internal/mocks/service"
	mockUsecase "forthecos/internal/mocks/usecase"
	"forthecos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type studioServiceFixtures struct {
	service     *studioService
	store       service.SessionStore
	storage     *mockSvc.MockObjectStorage
	compositor  *mockSvc.MockCompositor
	generators  *mockSvc.MockImageGeneratorProvider
	generator   *mockSvc.MockImageGenerator
	settings    *mockUsecase.MockSettingsUsecase
	generations *mockUsecase.MockGenerationUsecase
	orders      *mockUsecase.MockOrderUsecase
	apiLogs     *mockUsecase.MockAPILogUsecase
	metrics     *mockSvc.MockMetrics
}

func createTestStudioService(t *testing.T) studioServiceFixtures {
	fx := studioServiceFixtures{
		store:       cache.NewMemoryStore(time.Hour),
		storage:     mockSvc.NewMockObjectStorage(t),
		compositor:  mockSvc.NewMockCompositor(t),
		generators:  mockSvc.NewMockImageGeneratorProvider(t),
		generator:   mockSvc.NewMockImageGenerator(t),
		settings:    mockUsecase.NewMockSettingsUsecase(t),
		generations: mockUsecase.NewMockGenerationUsecase(t),
		orders:      mockUsecase.NewMockOrderUsecase(t),
		apiLogs:     mockUsecase.NewMockAPILogUsecase(t),
		metrics:     mockSvc.NewMockMetrics(t),
	}
	srv := NewStudioService(StudioServiceParams{
		Store:       fx.store,
		Storage:     fx.storage,
		Compositor:  fx.compositor,
		Generators:  fx.generators,
		Settings:    fx.settings,
		Generations: fx.generations,
		Orders:      fx.orders,
		APILogs:     fx.apiLogs,
		Metrics:     fx.metrics,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
	fx.service = srv.(*studioService)

	return fx
}

// putSession stores a session prepared by build and returns a reference to it.
func (f studioServiceFixtures) putSession(t *testing.T, viewer *usecase.Principal, build func(s *studio.Session)) usecase.SessionRef {
	t.Helper()

	s := studio.NewSession(uuid.NewString(), viewer.ID())
	if build != nil {
		build(s)
	}
	require.NoError(t, f.store.Put(context.Background(), s))

	return usecase.SessionRef{ID: s.ID, Viewer: viewer}
}

func readyToProcess(t *testing.T) func(s *studio.Session) {
	return func(s *studio.Session) {
		s.Step = studio.StepStudio
		require.NoError(t, s.SetSourceImage("https://cdn.example.com/sources/me.jpg"))
		require.NoError(t, s.SelectCategory("fantasy"))
		require.NoError(t, s.SelectSubcategory("fantasy-elves"))
	}
}

func onResult(t *testing.T) func(s *studio.Session) {
	return func(s *studio.Session) {
		readyToProcess(t)(s)
		require.NoError(t, s.BeginProcessing())
		require.NoError(t, s.CompleteProcessing("https://cdn.example.com/results/r.png", entity.DefaultAdminSettings()))
	}
}

func TestStudioService_Start(t *testing.T) {
	fx := createTestStudioService(t)
	ctx := context.Background()

	guest, err := fx.service.Start(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, studio.StepHome, guest.Step)

	viewer := userPrincipal()
	signedIn, err := fx.service.Start(ctx, &viewer)
	require.NoError(t, err)
	assert.Equal(t, studio.StepStudio, signedIn.Step)

	stored, err := fx.store.Get(ctx, signedIn.ID)
	require.NoError(t, err)
	assert.Equal(t, viewer.UserID, *stored.UserID)
}

func TestStudioService_Get_UnknownOrForeignSession(t *testing.T) {
	fx := createTestStudioService(t)
	ctx := context.Background()

	_, err := fx.service.Get(ctx, usecase.SessionRef{ID: "missing"})
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)

	owner := userPrincipal()
	ref := fx.putSession(t, &owner, nil)

	stranger := userPrincipal()
	_, err = fx.service.Get(ctx, usecase.SessionRef{ID: ref.ID, Viewer: &stranger})
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestStudioService_Get_FollowsSignInAndOut(t *testing.T) {
	fx := createTestStudioService(t)
	ctx := context.Background()

	ref := fx.putSession(t, nil, nil)
	viewer := userPrincipal()

	snap, err := fx.service.Get(ctx, usecase.SessionRef{ID: ref.ID, Viewer: &viewer})
	require.NoError(t, err)
	require.NotNil(t, snap.UserID)
	assert.Equal(t, viewer.UserID, *snap.UserID)

	snap, err = fx.service.Get(ctx, usecase.SessionRef{ID: ref.ID})
	require.NoError(t, err)
	assert.Nil(t, snap.UserID)
}

func TestStudioService_Upload(t *testing.T) {
	fx := createTestStudioService(t)
	ctx := context.Background()
	viewer := userPrincipal()
	ref := fx.putSession(t, &viewer, nil)

	_, err := fx.service.Upload(ctx, ref, usecase.UploadInput{})
	assert.ErrorIs(t, err, domainerrors.ErrSourceImageRequired)

	data := []byte("\x89PNG\r\n\x1a\nrest")
	fx.storage.EXPECT().Upload(ctx, constants.StoragePrefixSources, data, "image/png").Return("https://cdn.example.com/sources/1.png", nil)

	snap, err := fx.service.Upload(ctx, ref, usecase.UploadInput{Data: data})

	require.NoError(t, err)
	assert.Equal(t, studio.StepCategorySelect, snap.Step)
	assert.Equal(t, "https://cdn.example.com/sources/1.png", snap.SourceImage)
}

func TestStudioService_Process_Success(t *testing.T) {
	fx := createTestStudioService(t)
	ctx := context.Background()
	viewer := userPrincipal()
	ref := fx.putSession(t, &viewer, readyToProcess(t))

	settings := entity.DefaultAdminSettings()
	source := []byte("\xff\xd8\xff\xe0source")

	fx.settings.EXPECT().Get().Return(settings)
	fx.generators.EXPECT().Generator(settings).Return(fx.generator, nil)
	fx.storage.EXPECT().Fetch(ctx, "https://cdn.example.com/sources/me.jpg").Return(source, nil)
	fx.generator.EXPECT().
		Generate(ctx, mock.MatchedBy(func(req service.GenerateRequest) bool {
			return req.MIMEType == "image/jpeg" && req.Category == "Fantasy" && req.Subcategory == "Elven Enclaves"
		})).
		Return(&service.GeneratedImage{Data: []byte("out"), MIMEType: "image/png", Model: "gemini-test"}, nil)
	fx.storage.EXPECT().Upload(ctx, constants.StoragePrefixResults, []byte("out"), "image/png").Return("https://cdn.example.com/results/out.png", nil)
	fx.metrics.EXPECT().ObserveGeneration(service.OutcomeSuccess, mock.AnythingOfType("time.Duration")).Return()
	fx.apiLogs.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(l *entity.APILog) bool {
			return l.Status == entity.APILogStatusSuccess && l.Cost == 0.04 && l.Model == "gemini-test" && l.UserSession == ref.ID
		})).
		Return(nil)

	snap, err := fx.service.Process(ctx, ref)

	require.NoError(t, err)
	assert.Equal(t, studio.StepResult, snap.Step)
	assert.Equal(t, "https://cdn.example.com/results/out.png", snap.Draft.ResultImage)
	assert.Equal(t, "THE LEGENDARY Elven Enclaves", snap.Draft.Name)
}

func TestStudioService_Process_SafetyBlocked(t *testing.T) {
	fx := createTestStudioService(t)
	ctx := context.Background()
	ref := fx.putSession(t, nil, readyToProcess(t))

	settings := entity.DefaultAdminSettings()
	fx.settings.EXPECT().Get().Return(settings)
	fx.generators.EXPECT().Generator(settings).Return(fx.generator, nil)
	fx.storage.EXPECT().Fetch(ctx, mock.Anything).Return([]byte("img"), nil)
	fx.generator.EXPECT().Generate(ctx, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrSafetyBlocked))
	fx.metrics.EXPECT().ObserveGeneration(service.OutcomeBlocked, mock.Anything).Return()
	fx.apiLogs.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(l *entity.APILog) bool {
			return l.Status == entity.APILogStatusBlocked && l.Cost == 0
		})).
		Return(nil)

	snap, err := fx.service.Process(ctx, ref)

	assert.ErrorIs(t, err, domainerrors.ErrSafetyBlocked)
	require.NotNil(t, snap)
	assert.Equal(t, studio.StepStudio, snap.Step)
	assert.Equal(t, domainerrors.ErrSafetyBlocked.Message(), snap.Error)
	assert.Equal(t, "https://cdn.example.com/sources/me.jpg", snap.SourceImage)
}

func TestStudioService_Process_BackendError(t *testing.T) {
	fx := createTestStudioService(t)
	ctx := context.Background()
	ref := fx.putSession(t, nil, readyToProcess(t))

	settings := entity.DefaultAdminSettings()
	fx.settings.EXPECT().Get().Return(settings)
	fx.generators.EXPECT().Generator(settings).Return(fx.generator, nil)
	fx.storage.EXPECT().Fetch(ctx, mock.Anything).Return([]byte("img"), nil)
	fx.generator.EXPECT().Generate(ctx, mock.Anything).Return(nil, errors.New("503 upstream"))
	fx.metrics.EXPECT().ObserveGeneration(service.OutcomeFailed, mock.Anything).Return()
	fx.apiLogs.EXPECT().Record(mock.Anything, mock.Anything).Return(nil)

	snap, err := fx.service.Process(ctx, ref)

	assert.ErrorIs(t, err, domainerrors.ErrGenerationFailed)
	assert.Equal(t, studio.StepStudio, snap.Step)
	assert.Equal(t, "503 upstream", snap.Error)
}

func TestStudioService_Process_Preconditions(t *testing.T) {
	fx := createTestStudioService(t)
	ref := fx.putSession(t, nil, nil)

	_, err := fx.service.Process(context.Background(), ref)

	assert.ErrorIs(t, err, domainerrors.ErrSourceImageRequired)
}

func TestStudioService_UpdateTransform(t *testing.T) {
	fx := createTestStudioService(t)
	ctx := context.Background()
	viewer := userPrincipal()
	ref := fx.putSession(t, &viewer, onResult(t))

	snap, err := fx.service.UpdateTransform(ctx, ref, usecase.TransformInput{Surface: entity.SurfaceRaw, Op: usecase.TransformFlipH})
	require.NoError(t, err)
	assert.True(t, snap.Transforms.Get(entity.SurfaceRaw).FlipH)
	assert.False(t, snap.Transforms.Get(entity.SurfaceComic).FlipH)

	snap, err = fx.service.UpdateTransform(ctx, ref, usecase.TransformInput{Surface: entity.SurfaceRaw, Op: usecase.TransformReset})
	require.NoError(t, err)
	assert.Equal(t, entity.IdentityTransform(), snap.Transforms.Get(entity.SurfaceRaw))

	_, err = fx.service.UpdateTransform(ctx, ref, usecase.TransformInput{Op: "spin"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStudioService_Save(t *testing.T) {
	fx := createTestStudioService(t)
	ctx := context.Background()
	viewer := userPrincipal()
	ref := fx.putSession(t, &viewer, onResult(t))
	public := true

	var saved *entity.Generation
	fx.generations.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Generation")).
		Run(func(_ context.Context, gen *entity.Generation) { saved = gen }).
		Return(nil)
	fx.metrics.EXPECT().IncSave("public").Return()
	fx.generations.EXPECT().ListMine(ctx, viewer).Return([]*entity.Generation{{ID: uuid.New()}}, nil)
	fx.generations.EXPECT().Feed(ctx, &viewer).Return([]*entity.Generation{{ID: uuid.New()}}, nil)

	out, err := fx.service.Save(ctx, ref, usecase.SaveInput{IsPublic: &public})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, viewer.UserID, saved.UserID)
	assert.True(t, saved.IsPublic)
	assert.Equal(t, saved.ID, out.GenerationID)
	assert.Len(t, out.Gallery, 1)
	assert.Len(t, out.Feed, 1)
	require.NotNil(t, out.Session)
	assert.False(t, out.Session.Saving)
	require.NotNil(t, out.Session.EditingID)
	assert.Equal(t, saved.ID, *out.Session.EditingID)
}

func TestStudioService_Save_Guest(t *testing.T) {
	fx := createTestStudioService(t)
	ref := fx.putSession(t, nil, onResult(t))

	_, err := fx.service.Save(context.Background(), ref, usecase.SaveInput{})

	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
}

func TestStudioService_Save_InProgress(t *testing.T) {
	fx := createTestStudioService(t)
	ctx := context.Background()
	viewer := userPrincipal()
	ref := fx.putSession(t, &viewer, onResult(t))

	unlock, err := fx.store.TryLock(ctx, saveLockPrefix+ref.ID, time.Minute)
	require.NoError(t, err)
	defer unlock()

	_, err = fx.service.Save(ctx, ref, usecase.SaveInput{})

	assert.ErrorIs(t, err, domainerrors.ErrSaveInProgress)
}

func TestStudioService_Save_FailureClearsBusyFlag(t *testing.T) {
	fx := createTestStudioService(t)
	ctx := context.Background()
	viewer := userPrincipal()
	ref := fx.putSession(t, &viewer, onResult(t))

	fx.generations.EXPECT().Save(ctx, mock.Anything).Return(errors.New("db down"))

	_, err := fx.service.Save(ctx, ref, usecase.SaveInput{})
	require.Error(t, err)

	stored, err := fx.store.Get(ctx, ref.ID)
	require.NoError(t, err)
	assert.False(t, stored.Saving)
	assert.Nil(t, stored.EditingID)
}

func TestStudioService_Save_StaleBusyFlag(t *testing.T) {
	fx := createTestStudioService(t)
	ctx := context.Background()
	viewer := userPrincipal()
	ref := fx.putSession(t, &viewer, func(s *studio.Session) {
		onResult(t)(s)
		s.Saving = true
	})

	fx.generations.EXPECT().Save(ctx, mock.Anything).Return(nil)
	fx.metrics.EXPECT().IncSave("private").Return()
	fx.generations.EXPECT().ListMine(ctx, viewer).Return(nil, nil)

	out, err := fx.service.Save(ctx, ref, usecase.SaveInput{})

	require.NoError(t, err)
	assert.False(t, out.Session.Saving)
}

func TestStudioService_Save_PublicFromCheckout(t *testing.T) {
	fx := createTestStudioService(t)
	ctx := context.Background()
	viewer := userPrincipal()
	ref := fx.putSession(t, &viewer, onCheckout(t, uuid.New()))
	public := true

	fx.generations.EXPECT().
		Save(ctx, mock.MatchedBy(func(gen *entity.Generation) bool { return gen.IsPublic })).
		Return(nil)
	fx.metrics.EXPECT().IncSave("public").Return()
	fx.generations.EXPECT().ListMine(ctx, viewer).Return(nil, nil)
	fx.generations.EXPECT().Feed(ctx, &viewer).Return(nil, nil)

	out, err := fx.service.Save(ctx, ref, usecase.SaveInput{IsPublic: &public})

	require.NoError(t, err)
	assert.Equal(t, studio.StepCheckout, out.Session.Step)
	assert.True(t, out.Session.IsPublic)
}

func TestStudioService_Edit_OwnerOnly(t *testing.T) {
	fx := createTestStudioService(t)
	ctx := context.Background()
	admin := adminPrincipal()
	ref := fx.putSession(t, &admin, nil)
	id := uuid.New()

	fx.generations.EXPECT().Get(ctx, id, &admin).Return(&entity.Generation{ID: id, UserID: uuid.New()}, nil)

	_, err := fx.service.Edit(ctx, ref, id)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestStudioService_Render_RequiresResult(t *testing.T) {
	fx := createTestStudioService(t)
	ref := fx.putSession(t, nil, readyToProcess(t))

	_, err := fx.service.Render(context.Background(), ref, usecase.RenderInput{})

	assert.ErrorIs(t, err, domainerrors.ErrResultRequired)
}

func TestStudioService_Render_UsesFlipStateOnDisplay(t *testing.T) {
	fx := createTestStudioService(t)
	ctx := context.Background()
	ref := fx.putSession(t, nil, func(s *studio.Session) {
		onResult(t)(s)
		require.NoError(t, s.SetPresentation(entity.PresentationCard))
		s.FlipCard()
	})

	fx.storage.EXPECT().Fetch(ctx, "https://cdn.example.com/results/r.png").Return([]byte("img"), nil)
	fx.compositor.EXPECT().
		Compose(ctx, mock.MatchedBy(func(req service.ComposeRequest) bool {
			return req.Surface == entity.SurfaceCardFront && req.Flipped && !req.Export && req.Overlay.Name == "THE LEGENDARY Elven Enclaves"
		})).
		Return([]byte("png"), nil)

	png, err := fx.service.Render(ctx, ref, usecase.RenderInput{})

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestStudioService_Checkout(t *testing.T) {
	fx := createTestStudioService(t)
	ctx := context.Background()
	viewer := userPrincipal()
	ref := fx.putSession(t, &viewer, func(s *studio.Session) {
		onResult(t)(s)
		require.NoError(t, s.SetPresentation(entity.PresentationComic))
	})
	order := &entity.PhysicalOrder{ID: uuid.New(), UserID: viewer.UserID, Status: entity.OrderStatusPending}

	fx.storage.EXPECT().Fetch(ctx, "https://cdn.example.com/results/r.png").Return([]byte("img"), nil)
	fx.orders.EXPECT().
		Checkout(ctx, mock.MatchedBy(func(in usecase.CheckoutInput) bool {
			return in.Item == entity.ItemComicPrint && in.UserID == viewer.UserID
		})).
		Return(&usecase.CheckoutOutput{Order: order, RedirectURL: "https://pay.example.com/comic?custom=x"}, nil)
	fx.orders.EXPECT().Watch(ctx, viewer, order.ID).Return(&usecase.OrderStatusOutput{Order: order, Watching: true}, nil)

	out, err := fx.service.Checkout(ctx, ref)

	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/comic?custom=x", out.RedirectURL)
	require.NotNil(t, out.Session)
	assert.Equal(t, studio.StepCheckout, out.Session.Step)
	assert.Equal(t, order.ID, *out.Session.CheckoutOrderID)
}

func TestStudioService_Checkout_RawResultRejected(t *testing.T) {
	fx := createTestStudioService(t)
	viewer := userPrincipal()
	ref := fx.putSession(t, &viewer, onResult(t))

	_, err := fx.service.Checkout(context.Background(), ref)

	assert.ErrorIs(t, err, domainerrors.ErrStylizedResultRequired)
}

func onCheckout(t *testing.T, orderID uuid.UUID) func(s *studio.Session) {
	return func(s *studio.Session) {
		onResult(t)(s)
		require.NoError(t, s.SetPresentation(entity.PresentationComic))
		s.AttachOrder(orderID)
	}
}

func TestStudioService_LeavingCheckoutStopsOrderWatch(t *testing.T) {
	tests := []struct {
		name  string
		leave func(fx studioServiceFixtures, ref usecase.SessionRef) (*studio.Snapshot, error)
		want  studio.Step
	}{
		{
			name: "back to result",
			leave: func(fx studioServiceFixtures, ref usecase.SessionRef) (*studio.Snapshot, error) {
				return fx.service.Back(context.Background(), ref)
			},
			want: studio.StepResult,
		},
		{
			name: "navigate to gallery",
			leave: func(fx studioServiceFixtures, ref usecase.SessionRef) (*studio.Snapshot, error) {
				return fx.service.Navigate(context.Background(), ref, usecase.NavigateInput{Step: studio.StepGallery})
			},
			want: studio.StepGallery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestStudioService(t)
			viewer := userPrincipal()
			orderID := uuid.New()
			ref := fx.putSession(t, &viewer, onCheckout(t, orderID))

			fx.orders.EXPECT().CancelWatch(mock.Anything, usecase.Principal{UserID: viewer.UserID}, orderID).Return(nil).Once()

			snap, err := tt.leave(fx, ref)

			require.NoError(t, err)
			assert.Equal(t, tt.want, snap.Step)
			assert.Nil(t, snap.CheckoutOrderID)
		})
	}
}

func TestStudioService_StayingOnCheckoutKeepsOrderWatch(t *testing.T) {
	fx := createTestStudioService(t)
	viewer := userPrincipal()
	ref := fx.putSession(t, &viewer, onCheckout(t, uuid.New()))

	snap, err := fx.service.Get(context.Background(), ref)

	require.NoError(t, err)
	assert.Equal(t, studio.StepCheckout, snap.Step)
	fx.orders.AssertNotCalled(t, "CancelWatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestStudioService_LeavingCheckout_CancelFailureIsLogged(t *testing.T) {
	fx := createTestStudioService(t)
	viewer := userPrincipal()
	ref := fx.putSession(t, &viewer, onCheckout(t, uuid.New()))

	fx.orders.EXPECT().CancelWatch(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("db down"))

	snap, err := fx.service.Back(context.Background(), ref)

	require.NoError(t, err)
	assert.Equal(t, studio.StepResult, snap.Step)
}
