package service

import (
	"context"
	"time"

	"forthecos/internal/domain/entity"
)

// Overlay holds the text and layout drawn over a framed image.
type Overlay struct {
	Name        string
	Category    string
	Subcategory string
	StatusText  string
	Description string
	Stats       entity.Stats
	Layout      entity.ComicLayout
	Date        time.Time
}

// ComposeRequest asks for one rendered surface.
type ComposeRequest struct {
	Source     []byte
	Surface    entity.Surface
	Transforms entity.Transforms
	Overlay    Overlay

	// Flipped selects the visible card face on the display path.
	Flipped bool
	// Export renders exactly Surface, neutral regardless of Flipped.
	Export bool
}

// Compositor renders framed surfaces to PNG.
type Compositor interface {
	Compose(ctx context.Context, req ComposeRequest) ([]byte, error)
}
