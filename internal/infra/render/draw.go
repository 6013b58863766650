package render

import (
	"image"
	"image/color"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const ellipsis = "..."

// Palette shared by the frames.
//
//nolint:gochecknoglobals
var (
	colorBlack     = color.NRGBA{A: 0xff}
	colorWhite     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorComicRed  = color.NRGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff}
	colorBlue      = color.NRGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}
	colorLightBlue = color.NRGBA{R: 0x60, G: 0xa5, B: 0xfa, A: 0xff}
	colorYellow    = color.NRGBA{R: 0xea, G: 0xb3, B: 0x08, A: 0xff}
	colorCardBack  = color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xff}
	colorZinc900   = color.NRGBA{R: 0x18, G: 0x18, B: 0x1b, A: 0xff}
	colorZinc800   = color.NRGBA{R: 0x27, G: 0x27, B: 0x2a, A: 0xff}
	colorZinc400   = color.NRGBA{R: 0xa1, G: 0xa1, B: 0xaa, A: 0xff}
	colorZinc500   = color.NRGBA{R: 0x71, G: 0x71, B: 0x7a, A: 0xff}
	colorFaint     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x33}
)

func fillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}

func strokeRect(dst draw.Image, r image.Rectangle, width int, c color.Color) {
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), c)
	fillRect(dst, image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), c)
}

func fillCircle(dst draw.Image, center image.Point, radius int, c color.Color) {
	src := image.NewUniform(c)
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				p := center.Add(image.Pt(dx, dy))
				draw.Draw(dst, image.Rect(p.X, p.Y, p.X+1, p.Y+1), src, image.Point{}, draw.Over)
			}
		}
	}
}

// verticalFade darkens r from alphaTop at its top edge to alphaBottom at its bottom edge.
func verticalFade(dst draw.Image, r image.Rectangle, alphaTop, alphaBottom uint8) {
	height := r.Dy()
	if height <= 0 {
		return
	}
	for y := range height {
		a := int(alphaTop) + (int(alphaBottom)-int(alphaTop))*y/height
		fillRect(dst, image.Rect(r.Min.X, r.Min.Y+y, r.Max.X, r.Min.Y+y+1), color.NRGBA{A: uint8(a)})
	}
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func lineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}

// drawText draws s with its baseline at y.
func drawText(dst draw.Image, face font.Face, s string, x, y int, c color.Color) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: face, Dot: fixed.P(x, y)}
	d.DrawString(s)
}

func drawTextCentered(dst draw.Image, face font.Face, s string, cx, y int, c color.Color) {
	drawText(dst, face, s, cx-textWidth(face, s)/2, y, c)
}

func drawTextRight(dst draw.Image, face font.Face, s string, right, y int, c color.Color) {
	drawText(dst, face, s, right-textWidth(face, s), y, c)
}

// fitText shortens s with an ellipsis until it fits maxWidth.
func fitText(face font.Face, s string, maxWidth int) string {
	if textWidth(face, s) <= maxWidth {
		return s
	}

	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		candidate := strings.TrimSpace(string(runes[:n])) + ellipsis
		if textWidth(face, candidate) <= maxWidth {
			return candidate
		}
	}

	return ellipsis
}

// wrapText breaks s into at most maxLines lines of maxWidth, ellipsizing the last one.
func wrapText(face font.Face, s string, maxWidth, maxLines int) []string {
	words := strings.Fields(s)
	if len(words) == 0 || maxLines <= 0 {
		return nil
	}

	var lines []string
	current := ""
	for i, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if textWidth(face, candidate) <= maxWidth || current == "" {
			current = candidate

			continue
		}

		lines = append(lines, current)
		current = word
		if len(lines) == maxLines-1 {
			current = strings.Join(words[i:], " ")

			break
		}
	}
	lines = append(lines, fitText(face, current, maxWidth))

	return lines
}

// ClampTitle keeps comic titles to 24 runes, cutting longer ones to 21 plus an ellipsis.
func ClampTitle(title string) string {
	const limit, keep = 24, 21
	if utf8.RuneCountInString(title) <= limit {
		return title
	}

	return string([]rune(title)[:keep]) + ellipsis
}
