// Package render composes framed studio surfaces (raw, comic cover and
// trading card faces) and encodes them to PNG.
package render

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"log/slog"

	"forthecos/internal/domain/entity"
	"forthecos/internal/domain/service"
	"forthecos/internal/errors"

	"github.com/disintegration/imaging"

	// WebP sources are accepted alongside the formats imaging registers.
	_ "golang.org/x/image/webp"
)

// Raw surface geometry, 3:4.
const (
	RawWidth  = 900
	RawHeight = 1200
)

type compositor struct {
	logger *slog.Logger
}

// NewCompositor creates the PNG compositor.
func NewCompositor(logger *slog.Logger) service.Compositor {
	return &compositor{logger: logger}
}

// Compose renders one surface. The display path shows whichever card face is
// flipped up; the export path renders exactly the requested face.
func (c *compositor) Compose(ctx context.Context, req service.ComposeRequest) ([]byte, error) {
	src, err := DecodeImage(req.Source)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	var out *image.NRGBA
	switch req.Surface {
	case entity.SurfaceComic:
		out = RenderComic(src, req.Transforms.Get(entity.SurfaceComic), req.Overlay)
	case entity.SurfaceCardFront, entity.SurfaceCardBack:
		if req.Export {
			out = ExportCardFace(req.Surface, src, req.Transforms, req.Overlay)
		} else {
			out = RenderCard(src,
				req.Transforms.Get(entity.SurfaceCardFront),
				req.Transforms.Get(entity.SurfaceCardBack),
				req.Overlay, req.Flipped)
		}
	case entity.SurfaceRaw, "":
		out = RenderTransformed(src, req.Transforms.Get(entity.SurfaceRaw), RawWidth, RawHeight)
	default:
		return nil, errors.Errorf("unknown surface %q", req.Surface)
	}

	data, err := EncodePNG(out)
	if err != nil {
		return nil, err
	}

	c.logger.DebugContext(ctx, "Surface composed",
		slog.String("surface", string(req.Surface)),
		slog.Bool("export", req.Export),
		slog.Int("bytes", len(data)),
	)

	return data, nil
}

// DecodeImage decodes a source payload honoring EXIF orientation. An empty
// payload decodes to nil, which renders as a blank viewport.
func DecodeImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode source image")
	}

	return img, nil
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "failed to encode png")
	}

	return buf.Bytes(), nil
}
