package render

import (
	"image"
	"image/color"
	"math"

	"forthecos/internal/domain/entity"

	"github.com/disintegration/imaging"
)

// RenderTransformed frames src in a w×h viewport the way the CSS transform
// translate(X%, Y%) scale(sx, sy) would: the image covers the viewport, is
// scaled about the centre with flips folded into the sign, then shifted by a
// percentage of the un-scaled viewport. Only the visible region is resampled.
func RenderTransformed(src image.Image, t entity.Transform, w, h int) *image.NRGBA {
	canvas := imaging.New(w, h, color.NRGBA{A: 0xff})
	if src == nil || src.Bounds().Empty() {
		return canvas
	}

	fitted := imaging.Fill(src, w, h, imaging.Center, imaging.Linear)
	if t.FlipH {
		fitted = imaging.FlipH(fitted)
	}
	if t.FlipV {
		fitted = imaging.FlipV(fitted)
	}

	scale := math.Abs(t.Scale)
	if scale == 0 {
		scale = 1
	}

	fw, fh := float64(w), float64(h)
	sw, sh := fw*scale, fh*scale
	x0 := (fw-sw)/2 + t.Offset.X/100*fw
	y0 := (fh-sh)/2 + t.Offset.Y/100*fh

	vx0, vy0 := math.Max(0, x0), math.Max(0, y0)
	vx1, vy1 := math.Min(fw, x0+sw), math.Min(fh, y0+sh)
	dw, dh := int(math.Round(vx1-vx0)), int(math.Round(vy1-vy0))
	if dw <= 0 || dh <= 0 {
		return canvas
	}

	crop := image.Rect(
		int(math.Floor((vx0-x0)/scale)),
		int(math.Floor((vy0-y0)/scale)),
		int(math.Ceil((vx1-x0)/scale)),
		int(math.Ceil((vy1-y0)/scale)),
	)
	visible := imaging.Resize(imaging.Crop(fitted, crop), dw, dh, imaging.Linear)

	return imaging.Paste(canvas, visible, image.Pt(int(math.Round(vx0)), int(math.Round(vy0))))
}
