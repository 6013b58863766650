package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"forthecos/internal/domain/entity"
	"forthecos/internal/domain/service"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red    = color.NRGBA{R: 0xff, A: 0xff}
	green  = color.NRGBA{G: 0xff, A: 0xff}
	blue   = color.NRGBA{B: 0xff, A: 0xff}
	yellow = color.NRGBA{R: 0xff, G: 0xff, A: 0xff}
	black  = color.NRGBA{A: 0xff}
)

// quadrants returns a 3:4 image: red top-left, green top-right, blue bottom-left, yellow bottom-right.
func quadrants() *image.NRGBA {
	img := imaging.New(90, 120, black)
	for y := range 120 {
		for x := range 90 {
			c := red
			switch {
			case x >= 45 && y < 60:
				c = green
			case x < 45 && y >= 60:
				c = blue
			case x >= 45 && y >= 60:
				c = yellow
			}
			img.SetNRGBA(x, y, c)
		}
	}

	return img
}

func quadrantsPNG(t *testing.T) []byte {
	t.Helper()
	data, err := EncodePNG(quadrants())
	require.NoError(t, err)

	return data
}

func TestRenderTransformed_Identity(t *testing.T) {
	out := RenderTransformed(quadrants(), entity.IdentityTransform(), RawWidth, RawHeight)

	require.Equal(t, image.Rect(0, 0, RawWidth, RawHeight), out.Bounds())
	assert.Equal(t, red, out.NRGBAAt(225, 300))
	assert.Equal(t, green, out.NRGBAAt(675, 300))
	assert.Equal(t, blue, out.NRGBAAt(225, 900))
	assert.Equal(t, yellow, out.NRGBAAt(675, 900))
}

func TestRenderTransformed_FlipH(t *testing.T) {
	tr := entity.IdentityTransform().ToggleFlipH()
	out := RenderTransformed(quadrants(), tr, RawWidth, RawHeight)

	assert.Equal(t, green, out.NRGBAAt(225, 300))
	assert.Equal(t, red, out.NRGBAAt(675, 300))
}

func TestRenderTransformed_FlipV(t *testing.T) {
	tr := entity.IdentityTransform().ToggleFlipV()
	out := RenderTransformed(quadrants(), tr, RawWidth, RawHeight)

	assert.Equal(t, blue, out.NRGBAAt(225, 300))
	assert.Equal(t, red, out.NRGBAAt(225, 900))
}

func TestRenderTransformed_OffsetIsPercentOfViewport(t *testing.T) {
	tr := entity.IdentityTransform().WithOffset(50, 0)
	out := RenderTransformed(quadrants(), tr, RawWidth, RawHeight)

	assert.Equal(t, black, out.NRGBAAt(100, 300))
	assert.Equal(t, red, out.NRGBAAt(700, 300))
}

func TestRenderTransformed_ScaleAboutCentre(t *testing.T) {
	tr := entity.IdentityTransform()
	tr.Scale = 2
	out := RenderTransformed(quadrants(), tr, RawWidth, RawHeight)

	assert.Equal(t, red, out.NRGBAAt(100, 100))
	assert.Equal(t, yellow, out.NRGBAAt(800, 1100))
}

func TestRenderTransformed_OffscreenAndNil(t *testing.T) {
	tr := entity.IdentityTransform().WithOffset(100, 100)
	tr.Scale = 0.1
	out := RenderTransformed(quadrants(), tr, 300, 400)
	assert.Equal(t, black, out.NRGBAAt(10, 10))

	blank := RenderTransformed(nil, entity.IdentityTransform(), 30, 40)
	assert.Equal(t, image.Rect(0, 0, 30, 40), blank.Bounds())
}

func TestClampTitle(t *testing.T) {
	assert.Equal(t, "Elven Enclaves", ClampTitle("Elven Enclaves"))
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWX", ClampTitle("ABCDEFGHIJKLMNOPQRSTUVWX"))
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTU...", ClampTitle("ABCDEFGHIJKLMNOPQRSTUVWXY"))
	assert.Equal(t, strings.Repeat("é", 21)+"...", ClampTitle(strings.Repeat("é", 26)))
}

func TestComicTitle(t *testing.T) {
	assert.Equal(t, "My Name", ComicTitle("My Name", "Fantasy", "Waterfalls"))
	assert.Equal(t, "Fantasy", ComicTitle("", "Fantasy", entity.AutoDetect))
	assert.Equal(t, "Waterfalls", ComicTitle(" ", "Fantasy", "Waterfalls"))
}

func TestBadgeDate(t *testing.T) {
	month, year := badgeDate(time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "MAR", month)
	assert.Equal(t, "2025", year)
}

func TestCompose_EverySurfaceWithEmptyOverlay(t *testing.T) {
	c := NewCompositor(slog.New(slog.NewTextHandler(io.Discard, nil)))
	src := quadrantsPNG(t)

	tests := []struct {
		surface entity.Surface
		bounds  image.Rectangle
	}{
		{entity.SurfaceRaw, image.Rect(0, 0, RawWidth, RawHeight)},
		{entity.SurfaceComic, image.Rect(0, 0, ComicWidth, ComicHeight)},
		{entity.SurfaceCardFront, image.Rect(0, 0, CardWidth, CardHeight)},
		{entity.SurfaceCardBack, image.Rect(0, 0, CardWidth, CardHeight)},
	}

	for _, tt := range tests {
		t.Run(string(tt.surface), func(t *testing.T) {
			data, err := c.Compose(context.Background(), service.ComposeRequest{
				Source:  src,
				Surface: tt.surface,
				Export:  true,
			})
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, tt.bounds, img.Bounds())
		})
	}
}

func TestCompose_DisplayFollowsFlipExportDoesNot(t *testing.T) {
	c := NewCompositor(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()
	overlay := service.Overlay{
		Name:        "THE LEGENDARY Waterfalls",
		Category:    "Fantasy",
		Subcategory: "Waterfalls",
		StatusText:  "Premium Collector",
		Description: "A long description that needs to wrap across several lines on the back of the card.",
		Stats:       entity.DefaultStats(),
		Layout:      entity.DefaultComicLayout(),
		Date:        time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	base := service.ComposeRequest{
		Source:     quadrantsPNG(t),
		Transforms: entity.IdentityTransforms(),
		Overlay:    overlay,
	}

	displayFlipped := base
	displayFlipped.Surface = entity.SurfaceCardFront
	displayFlipped.Flipped = true
	shown, err := c.Compose(ctx, displayFlipped)
	require.NoError(t, err)

	exportBack := base
	exportBack.Surface = entity.SurfaceCardBack
	exportBack.Export = true
	back, err := c.Compose(ctx, exportBack)
	require.NoError(t, err)

	exportFront := base
	exportFront.Surface = entity.SurfaceCardFront
	exportFront.Export = true
	exportFront.Flipped = true
	front, err := c.Compose(ctx, exportFront)
	require.NoError(t, err)

	assert.Equal(t, back, shown)
	assert.NotEqual(t, back, front)
}

func TestCardFaces_FillMissingTextAndStats(t *testing.T) {
	src := quadrants()
	partial := service.Overlay{Name: "X"}
	filled := service.Overlay{
		Name:        "X",
		StatusText:  entity.DefaultCardStatusText,
		Description: entity.DefaultCardDescription,
		Stats:       entity.DefaultStats(),
	}

	assert.Equal(t,
		RenderCardFront(src, entity.IdentityTransform(), filled).Pix,
		RenderCardFront(src, entity.IdentityTransform(), partial).Pix,
	)
	assert.Equal(t,
		RenderCardBack(src, entity.IdentityTransform(), filled).Pix,
		RenderCardBack(src, entity.IdentityTransform(), partial).Pix,
	)
}

func TestWithCardDefaults_KeepsProvidedValues(t *testing.T) {
	ov := withCardDefaults(service.Overlay{
		StatusText:  "Rookie",
		Description: "Custom",
		Stats:       entity.Stats{Strength: 2},
	})

	assert.Equal(t, "Rookie", ov.StatusText)
	assert.Equal(t, "Custom", ov.Description)
	assert.Equal(t, entity.Stats{Strength: 2}, ov.Stats)
}

func TestCompose_RejectsUndecodableSource(t *testing.T) {
	c := NewCompositor(slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := c.Compose(context.Background(), service.ComposeRequest{
		Source:  []byte("not an image"),
		Surface: entity.SurfaceRaw,
	})
	assert.Error(t, err)
}

func TestWrapText(t *testing.T) {
	face := newFace(styleRegular, 20)
	defer face.Close()

	lines := wrapText(face, "one two three four five six seven eight nine ten", 80, 2)
	require.Len(t, lines, 2)
	assert.LessOrEqual(t, textWidth(face, lines[1]), 80)
	assert.Nil(t, wrapText(face, "   ", 80, 2))
}
