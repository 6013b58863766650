package service

import (
	"context"

	"forthecos/internal/domain/entity"
	"forthecos/internal/errors"
)

// ErrNoImage is returned when the backend answered without an inline image.
var ErrNoImage = errors.New("generation returned no image")

// GenerateRequest carries everything the backend needs to restyle a photo.
type GenerateRequest struct {
	Source         []byte
	MIMEType       string
	Category       string
	Subcategory    string
	CustomPrompt   string
	StyleIntensity int
}

// GeneratedImage is the backend's output.
type GeneratedImage struct {
	Data     []byte
	MIMEType string
	Model    string
}

// ImageGenerator restyles a source photo into a themed scene.
type ImageGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (*GeneratedImage, error)
}

// ImageGeneratorProvider hands out generators for the credentials currently in effect.
type ImageGeneratorProvider interface {
	// Generator resolves credentials from settings first, then from configuration.
	Generator(settings entity.AdminSettings) (ImageGenerator, error)
	// Invalidate drops any memoized client.
	Invalidate()
}
