package impl

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"forthecos/config"
	deliverycontext "forthecos/internal/delivery/context"
	"forthecos/internal/domain/constants"
	"forthecos/internal/domain/entity"
	domainerrors "forthecos/internal/domain/errors"
	"forthecos/internal/domain/service"
	"forthecos/internal/domain/studio"
	"forthecos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	sessionLockWait = 5 * time.Second
	saveLockPrefix  = "save:"
)

type studioService struct {
	store        service.SessionStore
	storage      service.ObjectStorage
	compositor   service.Compositor
	generators   service.ImageGeneratorProvider
	settings     usecase.SettingsUsecase
	generations  usecase.GenerationUsecase
	orders       usecase.OrderUsecase
	apiLogs      usecase.APILogUsecase
	metrics      service.Metrics
	saveLockTTL  time.Duration
	costPerImage float64
	defaultModel string
	now          func() time.Time
	newID        func() string
	logger       *slog.Logger
}

// StudioServiceParams holds dependencies for StudioService, injected by Fx.
type StudioServiceParams struct {
	fx.In

	Store       service.SessionStore
	Storage     service.ObjectStorage
	Compositor  service.Compositor
	Generators  service.ImageGeneratorProvider
	Settings    usecase.SettingsUsecase
	Generations usecase.GenerationUsecase
	Orders      usecase.OrderUsecase
	APILogs     usecase.APILogUsecase
	Metrics     service.Metrics
	Config      *config.Config
	Logger      *slog.Logger
}

// NewStudioService creates the studio orchestrator.
func NewStudioService(params StudioServiceParams) usecase.StudioUsecase {
	return &studioService{
		store:        params.Store,
		storage:      params.Storage,
		compositor:   params.Compositor,
		generators:   params.Generators,
		settings:     params.Settings,
		generations:  params.Generations,
		orders:       params.Orders,
		apiLogs:      params.APILogs,
		metrics:      params.Metrics,
		saveLockTTL:  params.Config.Studio.SaveLockTTL,
		costPerImage: params.Config.ImageGen.CostPerImage,
		defaultModel: params.Config.ImageGen.Model,
		now:          time.Now,
		newID:        uuid.NewString,
		logger:       params.Logger,
	}
}

func (srv *studioService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Start opens a new session for the caller.
func (srv *studioService) Start(ctx context.Context, viewer *usecase.Principal) (*studio.Snapshot, error) {
	session := studio.NewSession(srv.newID(), viewer.ID())
	if err := srv.store.Put(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store studio session")
	}
	srv.log(ctx).Debug("Studio session started", slog.String("sessionID", session.ID), slog.Bool("guest", session.IsGuest()))

	snap := session.Snapshot()

	return &snap, nil
}

func (srv *studioService) Get(ctx context.Context, ref usecase.SessionRef) (*studio.Snapshot, error) {
	return srv.mutate(ctx, ref, func(*studio.Session) error { return nil })
}

func (srv *studioService) Navigate(ctx context.Context, ref usecase.SessionRef, input usecase.NavigateInput) (*studio.Snapshot, error) {
	return srv.mutate(ctx, ref, func(s *studio.Session) error {
		return s.Navigate(input.Step, input.Target)
	})
}

func (srv *studioService) Back(ctx context.Context, ref usecase.SessionRef) (*studio.Snapshot, error) {
	return srv.mutate(ctx, ref, func(s *studio.Session) error {
		s.Back()

		return nil
	})
}

// Upload stores the photo under sources/ and opens the category picker.
func (srv *studioService) Upload(ctx context.Context, ref usecase.SessionRef, input usecase.UploadInput) (*studio.Snapshot, error) {
	if len(input.Data) == 0 {
		return nil, errors.WithStack(domainerrors.ErrSourceImageRequired)
	}
	if _, err := srv.Get(ctx, ref); err != nil {
		return nil, err
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(input.Data)
	}
	url, err := srv.storage.Upload(ctx, constants.StoragePrefixSources, input.Data, contentType)
	if err != nil {
		srv.log(ctx).Error("Failed to upload source image", slog.String("sessionID", ref.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	return srv.mutate(ctx, ref, func(s *studio.Session) error {
		return s.SetSourceImage(url)
	})
}

func (srv *studioService) SelectCategory(ctx context.Context, ref usecase.SessionRef, categoryID string) (*studio.Snapshot, error) {
	return srv.mutate(ctx, ref, func(s *studio.Session) error {
		return s.SelectCategory(categoryID)
	})
}

func (srv *studioService) SelectSubcategory(ctx context.Context, ref usecase.SessionRef, subcategoryID string) (*studio.Snapshot, error) {
	return srv.mutate(ctx, ref, func(s *studio.Session) error {
		return s.SelectSubcategory(subcategoryID)
	})
}

func (srv *studioService) SetPrompt(ctx context.Context, ref usecase.SessionRef, prompt string) (*studio.Snapshot, error) {
	return srv.mutate(ctx, ref, func(s *studio.Session) error {
		s.SetCustomPrompt(prompt)

		return nil
	})
}

func (srv *studioService) SetStyleIntensity(ctx context.Context, ref usecase.SessionRef, intensity int) (*studio.Snapshot, error) {
	return srv.mutate(ctx, ref, func(s *studio.Session) error {
		s.SetStyleIntensity(intensity)

		return nil
	})
}

// Process enters PROCESSING under the session lock, runs the generation
// without holding it, then lands on RESULT or back on the retry point.
func (srv *studioService) Process(ctx context.Context, ref usecase.SessionRef) (*studio.Snapshot, error) {
	var job studio.Session
	if _, err := srv.mutate(ctx, ref, func(s *studio.Session) error {
		if err := s.BeginProcessing(); err != nil {
			return err
		}
		job = *s

		return nil
	}); err != nil {
		return nil, err
	}

	started := srv.now()
	settings := srv.settings.Get()
	imageURL, model, genErr := srv.generate(ctx, &job, settings)
	outcome := generationOutcome(genErr)
	srv.metrics.ObserveGeneration(outcome, srv.now().Sub(started))

	// The call has been paid for; record it and settle the session even if the client went away.
	finishCtx := context.WithoutCancel(ctx)
	srv.recordCall(finishCtx, &job, model, outcome)

	snap, err := srv.mutate(finishCtx, ref, func(s *studio.Session) error {
		if s.Step != studio.StepProcessing {
			srv.log(ctx).Warn("Session left processing before generation finished", slog.String("sessionID", s.ID), slog.String("step", string(s.Step)))

			return nil
		}
		if genErr != nil {
			s.FailProcessing(failureMessage(genErr))

			return nil
		}

		return s.CompleteProcessing(imageURL, settings)
	})
	if err != nil {
		return nil, err
	}

	if genErr != nil {
		srv.log(ctx).Warn("Generation failed", slog.String("sessionID", ref.ID), slog.String("outcome", outcome), slog.Any("error", genErr))

		return snap, genErr
	}
	srv.log(ctx).Info("Generation completed", slog.String("sessionID", ref.ID), slog.String("model", model))

	return snap, nil
}

func (srv *studioService) generate(ctx context.Context, job *studio.Session, settings entity.AdminSettings) (url, model string, err error) {
	model = settings.GenerationModel
	if model == "" {
		model = srv.defaultModel
	}

	generator, err := srv.generators.Generator(settings)
	if err != nil {
		return "", model, err
	}

	source, err := srv.storage.Fetch(ctx, job.SourceImage)
	if err != nil {
		return "", model, errors.Wrap(domainerrors.ErrUploadFailed, "failed to read the source image: "+err.Error())
	}

	cat, _ := job.Category()
	result, err := generator.Generate(ctx, service.GenerateRequest{
		Source:         source,
		MIMEType:       http.DetectContentType(source),
		Category:       cat.Name,
		Subcategory:    job.SubcategoryName(),
		CustomPrompt:   job.CustomPrompt,
		StyleIntensity: job.StyleIntensity,
	})
	if err != nil {
		if _, ok := asAppError(err); ok {
			return "", model, err
		}

		return "", model, errors.Wrap(domainerrors.ErrGenerationFailed.WithDetails(err.Error()), "generation call failed")
	}
	if result.Model != "" {
		model = result.Model
	}

	url, err = srv.storage.Upload(ctx, constants.StoragePrefixResults, result.Data, result.MIMEType)
	if err != nil {
		return "", model, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	return url, model, nil
}

func (srv *studioService) recordCall(ctx context.Context, job *studio.Session, model, outcome string) {
	cost := 0.0
	if outcome == service.OutcomeSuccess {
		cost = srv.costPerImage
	}
	cat, _ := job.Category()

	entry := &entity.APILog{
		UserID:      job.UserID,
		UserSession: job.ID,
		Model:       model,
		Category:    cat.Name,
		Subcategory: job.SubcategoryName(),
		Cost:        cost,
		Status:      outcome,
	}
	if err := srv.apiLogs.Record(ctx, entry); err != nil {
		srv.log(ctx).Error("Failed to record api log", slog.String("sessionID", job.ID), slog.Any("error", err))
	}
}

func (srv *studioService) UpdateTransform(ctx context.Context, ref usecase.SessionRef, input usecase.TransformInput) (*studio.Snapshot, error) {
	return srv.mutate(ctx, ref, func(s *studio.Session) error {
		return applyTransform(s, input)
	})
}

func applyTransform(s *studio.Session, in usecase.TransformInput) error {
	var fn func(entity.Transform, entity.ScaleBounds) entity.Transform

	switch in.Op {
	case usecase.TransformSelect:
		return s.SetActiveSurface(in.Surface)
	case usecase.TransformReset:
		return s.ResetTransform(in.Surface)
	case usecase.TransformSetScale:
		fn = func(t entity.Transform, b entity.ScaleBounds) entity.Transform { return t.WithScale(in.Scale, b) }
	case usecase.TransformSetOffset:
		fn = func(t entity.Transform, _ entity.ScaleBounds) entity.Transform { return t.WithOffset(in.X, in.Y) }
	case usecase.TransformPan:
		fn = func(t entity.Transform, _ entity.ScaleBounds) entity.Transform {
			return t.Pan(in.DX, in.DY, in.ViewportW, in.ViewportH)
		}
	case usecase.TransformZoom:
		fn = func(t entity.Transform, b entity.ScaleBounds) entity.Transform { return t.Zoom(in.DY, b) }
	case usecase.TransformFlipH:
		fn = func(t entity.Transform, _ entity.ScaleBounds) entity.Transform { return t.ToggleFlipH() }
	case usecase.TransformFlipV:
		fn = func(t entity.Transform, _ entity.ScaleBounds) entity.Transform { return t.ToggleFlipV() }
	default:
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown transform op %q", in.Op)
	}

	return s.UpdateTransform(in.Surface, fn)
}

func (srv *studioService) UpdateDraft(ctx context.Context, ref usecase.SessionRef, edit studio.DraftEdit) (*studio.Snapshot, error) {
	return srv.mutate(ctx, ref, func(s *studio.Session) error {
		return s.ApplyDraftEdit(edit)
	})
}

// Edit reopens one of the caller's saved artifacts on the result screen.
func (srv *studioService) Edit(ctx context.Context, ref usecase.SessionRef, generationID uuid.UUID) (*studio.Snapshot, error) {
	if ref.Viewer == nil {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}

	gen, err := srv.generations.Get(ctx, generationID, ref.Viewer)
	if err != nil {
		return nil, err
	}
	if !gen.OwnedBy(ref.Viewer.UserID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the owner can edit this artifact")
	}

	return srv.mutate(ctx, ref, func(s *studio.Session) error {
		s.EditExisting(gen)

		return nil
	})
}

// Save persists the draft. A second save on the same session while one is
// running is rejected with ErrSaveInProgress.
func (srv *studioService) Save(ctx context.Context, ref usecase.SessionRef, input usecase.SaveInput) (out *usecase.SaveOutput, err error) {
	if ref.Viewer == nil {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}

	unlock, err := srv.store.TryLock(ctx, saveLockPrefix+ref.ID, srv.saveLockTTL)
	if err != nil {
		if errors.Is(err, service.ErrLockHeld) {
			return nil, errors.WithStack(domainerrors.ErrSaveInProgress)
		}

		return nil, errors.Wrap(err, "failed to take save lock")
	}
	defer unlock()

	var gen *entity.Generation
	if _, err := srv.mutate(ctx, ref, func(s *studio.Session) error {
		if err := s.BeginSave(); err != nil {
			return err
		}
		if input.IsPublic != nil {
			s.IsPublic = *input.IsPublic
		}

		id := uuid.New()
		if s.EditingID != nil {
			id = *s.EditingID
		}
		gen = s.ToGeneration(id, srv.now())

		return nil
	}); err != nil {
		return nil, err
	}

	var savedID *uuid.UUID
	defer func() {
		// The busy flag is cleared whatever happens to the request.
		snap, endErr := srv.mutate(context.WithoutCancel(ctx), ref, func(s *studio.Session) error {
			s.EndSave(savedID)

			return nil
		})
		if endErr != nil {
			srv.log(ctx).Error("Failed to clear save flag", slog.String("sessionID", ref.ID), slog.Any("error", endErr))
			if err == nil {
				out, err = nil, endErr
			}

			return
		}
		if out != nil {
			out.Session = snap
		}
	}()

	if err := srv.generations.Save(ctx, gen); err != nil {
		return nil, err
	}
	savedID = &gen.ID
	srv.metrics.IncSave(visibilityLabel(gen.IsPublic))

	gallery, err := srv.generations.ListMine(ctx, *ref.Viewer)
	if err != nil {
		return nil, err
	}
	out = &usecase.SaveOutput{GenerationID: gen.ID, Gallery: gallery}

	if gen.IsPublic {
		feed, err := srv.generations.Feed(ctx, ref.Viewer)
		if err != nil {
			return nil, err
		}
		out.Feed = feed
	}

	return out, nil
}

// Render rasterizes one surface of the current result.
func (srv *studioService) Render(ctx context.Context, ref usecase.SessionRef, input usecase.RenderInput) ([]byte, error) {
	snap, err := srv.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	if snap.Draft.ResultImage == "" {
		return nil, errors.WithStack(domainerrors.ErrResultRequired)
	}

	surface := input.Surface
	if surface == "" {
		surface = snap.ActiveSurface
	}
	if !surface.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown surface %q", surface)
	}

	source, err := srv.storage.Fetch(ctx, snap.Draft.ResultImage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read result image")
	}

	png, err := srv.compositor.Compose(ctx, service.ComposeRequest{
		Source:     source,
		Surface:    surface,
		Transforms: snap.Transforms,
		Overlay:    overlayFor(&snap.Session, srv.now()),
		Flipped:    snap.CardFlipped,
		Export:     input.Export,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render %s", surface)
	}

	return png, nil
}

// Checkout turns the styled result into a pending order and starts watching it.
func (srv *studioService) Checkout(ctx context.Context, ref usecase.SessionRef) (*usecase.CheckoutOutput, error) {
	if ref.Viewer == nil {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}

	var (
		item entity.ItemType
		job  studio.Session
	)
	if _, err := srv.mutate(ctx, ref, func(s *studio.Session) error {
		var err error
		item, err = s.BeginCheckout()
		job = s.Snapshot().Session

		return err
	}); err != nil {
		return nil, err
	}

	source, err := srv.storage.Fetch(ctx, job.Draft.ResultImage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read result image")
	}

	out, err := srv.orders.Checkout(ctx, usecase.CheckoutInput{
		UserID:     ref.Viewer.UserID,
		Item:       item,
		Source:     source,
		Transforms: job.Transforms,
		Overlay:    overlayFor(&job, srv.now()),
	})
	if err != nil {
		return nil, err
	}

	snap, err := srv.mutate(ctx, ref, func(s *studio.Session) error {
		s.AttachOrder(out.Order.ID)

		return nil
	})
	if err != nil {
		return nil, err
	}
	out.Session = snap

	if _, err := srv.orders.Watch(ctx, *ref.Viewer, out.Order.ID); err != nil {
		srv.log(ctx).Warn("Failed to start order watch", slog.Any("orderID", out.Order.ID), slog.Any("error", err))
	}

	return out, nil
}

// mutate runs fn on the stored session under its lock and stores the result.
// fn must leave the session untouched when it returns an error.
func (srv *studioService) mutate(ctx context.Context, ref usecase.SessionRef, fn func(*studio.Session) error) (*studio.Snapshot, error) {
	unlock, err := srv.store.Lock(ctx, ref.ID, sessionLockWait)
	if err != nil {
		if errors.Is(err, service.ErrLockHeld) {
			return nil, errors.Wrap(domainerrors.ErrConflict, "studio session is busy")
		}

		return nil, errors.Wrap(err, "failed to lock studio session")
	}
	defer unlock()

	session, err := srv.store.Get(ctx, ref.ID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return nil, errors.WithStack(domainerrors.ErrSessionNotFound)
		}

		return nil, errors.Wrap(err, "failed to load studio session")
	}
	owner, watched := copyUUID(session.UserID), copyUUID(session.CheckoutOrderID)
	if err := syncIdentity(session, ref.Viewer); err != nil {
		return nil, err
	}

	if err := fn(session); err != nil {
		return nil, err
	}

	if err := srv.store.Put(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store studio session")
	}
	snap := session.Snapshot()

	if watched != nil && owner != nil && !sameUUID(watched, session.CheckoutOrderID) {
		srv.releaseWatch(ctx, *owner, *watched)
	}

	return &snap, nil
}

// releaseWatch stops the poller of an order whose checkout screen the session left.
func (srv *studioService) releaseWatch(ctx context.Context, owner, orderID uuid.UUID) {
	err := srv.orders.CancelWatch(context.WithoutCancel(ctx), usecase.Principal{UserID: owner}, orderID)
	if err != nil {
		srv.log(ctx).Warn("Failed to stop order watch", slog.Any("orderID", orderID), slog.Any("error", err))
	}
}

func copyUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	cp := *id

	return &cp
}

func sameUUID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

// syncIdentity follows sign-in and sign-out of the caller. A session owned by
// someone else is reported as missing.
func syncIdentity(s *studio.Session, viewer *usecase.Principal) error {
	switch {
	case viewer == nil && s.UserID != nil:
		s.SignedOut()
	case viewer != nil && s.UserID == nil:
		s.SignedIn(viewer.UserID)
	case viewer != nil && *s.UserID != viewer.UserID:
		return errors.WithStack(domainerrors.ErrSessionNotFound)
	}

	return nil
}

func overlayFor(s *studio.Session, now time.Time) service.Overlay {
	return service.Overlay{
		Name:        s.Draft.Name,
		Category:    s.Draft.CategoryName,
		Subcategory: s.Draft.Subcategory,
		StatusText:  s.Draft.StatusText,
		Description: s.Draft.Description,
		Stats:       s.Draft.Stats,
		Layout:      s.ComicLayout,
		Date:        now,
	}
}

func generationOutcome(err error) string {
	switch {
	case err == nil:
		return service.OutcomeSuccess
	case errors.Is(err, domainerrors.ErrSafetyBlocked):
		return service.OutcomeBlocked
	default:
		return service.OutcomeFailed
	}
}

// failureMessage is what the retry screen shows.
func failureMessage(err error) string {
	if appErr, ok := asAppError(err); ok {
		if details := appErr.Details(); details != "" && !errors.Is(err, domainerrors.ErrSafetyBlocked) {
			return details
		}

		return appErr.Message()
	}

	return err.Error()
}

func asAppError(err error) (domainerrors.AppError, bool) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

func visibilityLabel(public bool) string {
	if public {
		return "public"
	}

	return "private"
}
