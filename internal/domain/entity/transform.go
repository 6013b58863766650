package entity

import (
	"fmt"
	"strconv"
)

// Surface identifies an independently framed render target.
type Surface string

const (
	SurfaceRaw       Surface = "raw"
	SurfaceComic     Surface = "comic"
	SurfaceCardFront Surface = "card_front"
	SurfaceCardBack  Surface = "card_back"
)

// Surfaces lists every surface in a stable order.
func Surfaces() []Surface {
	return []Surface{SurfaceRaw, SurfaceComic, SurfaceCardFront, SurfaceCardBack}
}

// IsValid reports whether s names a known surface.
func (s Surface) IsValid() bool {
	switch s {
	case SurfaceRaw, SurfaceComic, SurfaceCardFront, SurfaceCardBack:
		return true
	default:
		return false
	}
}

// ScaleBounds is the inclusive range a surface's scale may take.
type ScaleBounds struct {
	Min float64
	Max float64
}

// Clamp limits v to the bounds.
func (b ScaleBounds) Clamp(v float64) float64 {
	return min(max(v, b.Min), b.Max)
}

// Bounds returns the slider range for the surface.
func (s Surface) Bounds() ScaleBounds {
	if s == SurfaceComic {
		return ScaleBounds{Min: 0.5, Max: 2}
	}

	return ScaleBounds{Min: 0.1, Max: 10}
}

// AspectRatio returns the viewport width:height for the surface.
func (s Surface) AspectRatio() (w, h int) {
	if s == SurfaceComic {
		return 2, 3
	}

	return 3, 4
}

const (
	maxOffsetPercent = 100
	zoomPerPixel     = 0.01
)

// Offset is a pan offset in percent of the un-scaled viewport.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Transform is the pan/zoom/flip framing of an image inside a fixed-aspect viewport.
type Transform struct {
	Scale  float64 `json:"scale"`
	Offset Offset  `json:"offset"`
	FlipH  bool    `json:"flip_h"`
	FlipV  bool    `json:"flip_v"`
}

// IdentityTransform returns the neutral framing.
func IdentityTransform() Transform {
	return Transform{Scale: 1}
}

// IsIdentity reports whether t equals the neutral framing.
func (t Transform) IsIdentity() bool {
	return t == IdentityTransform()
}

// SignedScale returns the horizontal and vertical scale factors with flips folded into the sign.
func (t Transform) SignedScale() (sx, sy float64) {
	sx, sy = t.Scale, t.Scale
	if t.FlipH {
		sx = -sx
	}
	if t.FlipV {
		sy = -sy
	}

	return sx, sy
}

// CSS renders the transform as a CSS transform value. Translation comes first
// and is relative to the un-scaled viewport; scaling is applied about the centre.
func (t Transform) CSS() string {
	sx, sy := t.SignedScale()

	return fmt.Sprintf("translate(%s%%, %s%%) scale(%s, %s)",
		formatNumber(t.Offset.X), formatNumber(t.Offset.Y), formatNumber(sx), formatNumber(sy))
}

// WithScale sets an absolute scale clamped to bounds.
func (t Transform) WithScale(v float64, bounds ScaleBounds) Transform {
	t.Scale = bounds.Clamp(v)

	return t
}

// Pan shifts the offset by a pointer drag of (dx, dy) pixels over a viewport of w×h pixels.
func (t Transform) Pan(dx, dy, viewportW, viewportH float64) Transform {
	if viewportW <= 0 || viewportH <= 0 {
		return t
	}
	t.Offset.X = clampOffset(t.Offset.X + dx/viewportW*100)
	t.Offset.Y = clampOffset(t.Offset.Y + dy/viewportH*100)

	return t
}

// WithOffset sets an absolute offset in percent.
func (t Transform) WithOffset(x, y float64) Transform {
	t.Offset = Offset{X: clampOffset(x), Y: clampOffset(y)}

	return t
}

// Zoom maps a vertical drag of dy pixels to a scale change. Dragging up zooms in.
func (t Transform) Zoom(dy float64, bounds ScaleBounds) Transform {
	t.Scale = bounds.Clamp(t.Scale - dy*zoomPerPixel)

	return t
}

// ToggleFlipH mirrors the image horizontally.
func (t Transform) ToggleFlipH() Transform {
	t.FlipH = !t.FlipH

	return t
}

// ToggleFlipV mirrors the image vertically.
func (t Transform) ToggleFlipV() Transform {
	t.FlipV = !t.FlipV

	return t
}

// Normalize repairs a decoded transform so Scale is positive and inside bounds.
func (t Transform) Normalize(bounds ScaleBounds) Transform {
	if t.Scale <= 0 {
		t.Scale = 1
	}
	t.Scale = bounds.Clamp(t.Scale)
	t.Offset = Offset{X: clampOffset(t.Offset.X), Y: clampOffset(t.Offset.Y)}

	return t
}

// Transforms holds one framing per surface.
type Transforms map[Surface]Transform

// IdentityTransforms returns identity framings for every surface.
func IdentityTransforms() Transforms {
	out := make(Transforms, len(Surfaces()))
	for _, s := range Surfaces() {
		out[s] = IdentityTransform()
	}

	return out
}

// Get returns the framing for s, or identity when unset.
func (ts Transforms) Get(s Surface) Transform {
	if t, ok := ts[s]; ok {
		return t
	}

	return IdentityTransform()
}

// Clone copies the map so callers can mutate one surface in isolation.
func (ts Transforms) Clone() Transforms {
	out := make(Transforms, len(ts))
	for k, v := range ts {
		out[k] = v
	}

	return out
}

func clampOffset(v float64) float64 {
	return min(max(v, -maxOffsetPercent), maxOffsetPercent)
}

func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
