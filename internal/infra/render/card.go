package render

import (
	"image"
	"image/color"
	"strconv"
	"strings"

	"forthecos/internal/domain/entity"
	"forthecos/internal/domain/service"

	"github.com/disintegration/imaging"
)

// Trading card geometry, 3:4.
const (
	CardWidth  = 900
	CardHeight = 1200

	cardBorder  = 10
	cardPadding = 36
)

// CardFooter is the fixed imprint on the card back.
//
//nolint:gochecknoglobals
var CardFooter = []string{
	"©2024 FOR THE COS ENTERTAINMENT",
	"PROCESSED BY GEMINI-AI NEURAL MAPPING",
	"AUTHENTICITY: VERIFIED [CLASS-S]",
}

//nolint:gochecknoglobals
var statColors = []color.NRGBA{
	{R: 0xef, G: 0x44, B: 0x44, A: 0xff},
	{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff},
	{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff},
	{R: 0xec, G: 0x48, B: 0x99, A: 0xff},
}

// RenderCard is the display path: it returns whichever face is showing.
func RenderCard(src image.Image, front, back entity.Transform, ov service.Overlay, flipped bool) *image.NRGBA {
	if flipped {
		return RenderCardBack(src, back, ov)
	}

	return RenderCardFront(src, front, ov)
}

// ExportCardFace renders the requested face head-on, ignoring the display flip state.
func ExportCardFace(face entity.Surface, src image.Image, ts entity.Transforms, ov service.Overlay) *image.NRGBA {
	if face == entity.SurfaceCardBack {
		return RenderCardBack(src, ts.Get(entity.SurfaceCardBack), ov)
	}

	return RenderCardFront(src, ts.Get(entity.SurfaceCardFront), ov)
}

// withCardDefaults fills the optional card text and stats left empty on a partial draft.
func withCardDefaults(ov service.Overlay) service.Overlay {
	if strings.TrimSpace(ov.StatusText) == "" {
		ov.StatusText = entity.DefaultCardStatusText
	}
	if strings.TrimSpace(ov.Description) == "" {
		ov.Description = entity.DefaultCardDescription
	}
	if ov.Stats == (entity.Stats{}) {
		ov.Stats = entity.DefaultStats()
	}

	return ov
}

// RenderCardFront draws the name, universe line and status ribbon over the framed image.
func RenderCardFront(src image.Image, t entity.Transform, ov service.Overlay) *image.NRGBA {
	ov = withCardDefaults(ov)
	canvas := RenderTransformed(src, t, CardWidth, CardHeight)

	verticalFade(canvas, image.Rect(0, 0, CardWidth, 300), 0xe6, 0)

	nameFace := newFace(styleBoldItalic, 60)
	defer nameFace.Close()
	smallFace := newFace(styleBold, 20)
	defer smallFace.Close()
	statusFace := newFace(styleBoldItalic, 24)
	defer statusFace.Close()

	baseline := cardPadding + nameFace.Metrics().Ascent.Ceil() + 20
	for _, line := range wrapText(nameFace, strings.ToUpper(ov.Name), CardWidth-2*cardPadding-40, 2) {
		drawTextCentered(canvas, nameFace, line, CardWidth/2+2, baseline+3, colorBlack)
		drawTextCentered(canvas, nameFace, line, CardWidth/2, baseline, colorWhite)
		baseline += lineHeight(nameFace) * 11 / 10
	}

	if ov.Category != "" {
		universe := strings.ToUpper(ov.Category) + " UNIVERSE"
		w := textWidth(smallFace, universe)
		x := (CardWidth-w)/2 + 20
		fillRect(canvas, image.Rect(x-44, baseline-8, x-14, baseline-4), colorBlue)
		drawText(canvas, smallFace, universe, x, baseline, colorLightBlue)
	}

	status := strings.ToUpper(strings.TrimSpace(ov.StatusText))
	ribbonW := max(240, textWidth(statusFace, status)+64)
	ribbon := image.Rect(CardWidth-ribbonW, CardHeight-72-52, CardWidth, CardHeight-72)
	fillRect(canvas, ribbon, colorBlue)
	drawTextCentered(canvas, statusFace, status, ribbon.Min.X+ribbonW/2, ribbon.Max.Y-16, colorWhite)

	strokeRect(canvas, canvas.Bounds(), cardBorder, colorBlue)

	return canvas
}

// RenderCardBack draws the profile side: header, portrait, stat bars, description and footer.
func RenderCardBack(src image.Image, t entity.Transform, ov service.Overlay) *image.NRGBA {
	ov = withCardDefaults(ov)
	canvas := imaging.New(CardWidth, CardHeight, colorCardBack)
	left, right := cardPadding, CardWidth-cardPadding

	title := newFace(styleBoldItalic, 44)
	defer title.Close()
	label := newFace(styleBold, 16)
	defer label.Close()
	body := newFace(styleRegular, 20)
	defer body.Close()
	mono := newFace(styleMono, 13)
	defer mono.Close()

	// Header.
	drawText(canvas, title, fitText(title, strings.ToUpper(ov.Name), right-left-120), left, 80, colorWhite)
	drawText(canvas, label, "CLASSIFICATION: LEGENDARY", left, 112, colorBlue)
	fillCircle(canvas, image.Pt(right-40, 72), 40, colorBlue)
	fillCircle(canvas, image.Pt(right-40, 72), 35, colorZinc900)
	drawTextCentered(canvas, title, "01", right-40, 88, colorBlue)
	fillRect(canvas, image.Rect(left, 136, right, 138), colorZinc800)

	// Portrait.
	portrait := image.Rect(left, 160, right, 620)
	framed := RenderTransformed(src, t, portrait.Dx(), portrait.Dy())
	framed = imaging.AdjustSaturation(framed, -40)
	canvas = imaging.Paste(canvas, framed, portrait.Min)
	verticalFade(canvas, image.Rect(portrait.Min.X, portrait.Max.Y-160, portrait.Max.X, portrait.Max.Y), 0, 0xcc)
	strokeRect(canvas, portrait, 3, colorZinc800)
	drawText(canvas, label, "COSPLAY IDENTITY: CONFIRMED", portrait.Min.X+16, portrait.Max.Y-16, colorLightBlue)

	// Stats.
	panel := image.Rect(left, 648, right, 900)
	fillRect(canvas, panel, colorZinc900)
	strokeRect(canvas, panel, 2, colorZinc800)
	drawText(canvas, label, "POWER GRID", panel.Min.X+20, panel.Min.Y+34, colorYellow)

	barLeft, barRight := panel.Min.X+200, panel.Max.X-60
	for i, stat := range ov.Stats.Clamp().Entries() {
		y := panel.Min.Y + 80 + i*44
		drawText(canvas, label, strings.ToUpper(stat.Label), panel.Min.X+20, y+6, colorWhite)
		fillRect(canvas, image.Rect(barLeft, y-4, barRight, y+4), colorZinc800)
		filled := barLeft + (barRight-barLeft)*stat.Value/entity.StatMax
		fillRect(canvas, image.Rect(barLeft, y-4, filled, y+4), statColors[i%len(statColors)])
		fillCircle(canvas, image.Pt(filled, y), 7, statColors[i%len(statColors)])
		drawTextRight(canvas, label, strconv.Itoa(stat.Value), panel.Max.X-20, y+6, colorZinc400)
	}

	// Description.
	baseline := 950
	for _, line := range wrapText(body, ov.Description, right-left, 4) {
		drawText(canvas, body, line, left, baseline, colorZinc400)
		baseline += lineHeight(body) + 4
	}

	// Footer.
	fillRect(canvas, image.Rect(left, 1070, right, 1072), colorZinc800)
	logo := image.Rect(left, 1090, left+72, 1162)
	fillRect(canvas, logo, colorZinc900)
	strokeRect(canvas, logo, 2, colorZinc800)
	drawTextCentered(canvas, label, "FTC", logo.Min.X+36, logo.Min.Y+44, colorWhite)
	for i, line := range CardFooter {
		drawText(canvas, mono, line, logo.Max.X+20, logo.Min.Y+20+i*22, colorZinc500)
	}
	drawTextRight(canvas, title, "FOR THE COS", right, logo.Max.Y-8, colorFaint)

	strokeRect(canvas, canvas.Bounds(), cardBorder, colorZinc800)

	return canvas
}
