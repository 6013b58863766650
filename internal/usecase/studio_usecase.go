package usecase

import (
	"context"

	"forthecos/internal/domain/entity"
	"forthecos/internal/domain/studio"

	"github.com/google/uuid"
)

// SessionRef addresses a studio session on behalf of a caller. Viewer is nil for guests.
type SessionRef struct {
	ID     string
	Viewer *Principal
}

// NavigateInput asks for a top-level screen. Target is the profile to open on VIEW_PROFILE.
type NavigateInput struct {
	Step   studio.Step
	Target *uuid.UUID
}

// UploadInput is one captured or imported photo.
type UploadInput struct {
	Data        []byte
	ContentType string
}

// TransformOp names a framing edit.
type TransformOp string

const (
	TransformSelect    TransformOp = "select"
	TransformSetScale  TransformOp = "set_scale"
	TransformSetOffset TransformOp = "set_offset"
	TransformPan       TransformOp = "pan"
	TransformZoom      TransformOp = "zoom"
	TransformFlipH     TransformOp = "flip_h"
	TransformFlipV     TransformOp = "flip_v"
	TransformReset     TransformOp = "reset"
)

// TransformInput edits the framing of one surface, the active one when Surface is empty.
type TransformInput struct {
	Surface   entity.Surface
	Op        TransformOp
	Scale     float64
	X         float64
	Y         float64
	DX        float64
	DY        float64
	ViewportW float64
	ViewportH float64
}

// SaveInput optionally overrides the draft visibility before saving.
type SaveInput struct {
	IsPublic *bool
}

// SaveOutput is the persisted artifact with the refreshed listings.
type SaveOutput struct {
	GenerationID uuid.UUID
	Session      *studio.Snapshot
	Gallery      []*entity.Generation
	// Feed is filled only when the artifact was saved public.
	Feed []*entity.Generation
}

// RenderInput picks the surface to rasterize. Export renders exactly that
// surface; otherwise a card shows the face selected by the flip state.
type RenderInput struct {
	Surface entity.Surface
	Export  bool
}

// StudioUsecase drives the studio screens for one session at a time.
type StudioUsecase interface {
	Start(ctx context.Context, viewer *Principal) (*studio.Snapshot, error)
	Get(ctx context.Context, ref SessionRef) (*studio.Snapshot, error)
	Navigate(ctx context.Context, ref SessionRef, input NavigateInput) (*studio.Snapshot, error)
	Back(ctx context.Context, ref SessionRef) (*studio.Snapshot, error)
	Upload(ctx context.Context, ref SessionRef, input UploadInput) (*studio.Snapshot, error)
	SelectCategory(ctx context.Context, ref SessionRef, categoryID string) (*studio.Snapshot, error)
	SelectSubcategory(ctx context.Context, ref SessionRef, subcategoryID string) (*studio.Snapshot, error)
	SetPrompt(ctx context.Context, ref SessionRef, prompt string) (*studio.Snapshot, error)
	SetStyleIntensity(ctx context.Context, ref SessionRef, intensity int) (*studio.Snapshot, error)
	// Process runs the generation. On failure the returned snapshot shows the retry point and the error is non-nil.
	Process(ctx context.Context, ref SessionRef) (*studio.Snapshot, error)
	UpdateTransform(ctx context.Context, ref SessionRef, input TransformInput) (*studio.Snapshot, error)
	UpdateDraft(ctx context.Context, ref SessionRef, edit studio.DraftEdit) (*studio.Snapshot, error)
	Edit(ctx context.Context, ref SessionRef, generationID uuid.UUID) (*studio.Snapshot, error)
	Save(ctx context.Context, ref SessionRef, input SaveInput) (*SaveOutput, error)
	Render(ctx context.Context, ref SessionRef, input RenderInput) ([]byte, error)
	Checkout(ctx context.Context, ref SessionRef) (*CheckoutOutput, error)
}
