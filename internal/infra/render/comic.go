package render

import (
	"image"
	"strings"
	"time"

	"forthecos/internal/domain/entity"
	"forthecos/internal/domain/service"
)

// Comic cover geometry, 2:3.
const (
	ComicWidth  = 800
	ComicHeight = 1200

	comicBorder       = 12
	comicTitleTop     = 64
	comicTitlePadding = 176
	comicBadgeWidth   = 160
	comicBadgeHeight  = 176
	comicLogoSize     = 160
	comicLogoMargin   = 32
)

// ComicTitle picks the cover title: the custom name, else the category for
// auto-detect, else the subcategory.
func ComicTitle(name, category, subcategory string) string {
	if strings.TrimSpace(name) != "" {
		return name
	}
	if subcategory == "" || subcategory == entity.AutoDetect {
		return category
	}

	return subcategory
}

// RenderComic draws the comic cover frame over the framed image.
func RenderComic(src image.Image, t entity.Transform, ov service.Overlay) *image.NRGBA {
	canvas := RenderTransformed(src, t, ComicWidth, ComicHeight)

	drawComicTitle(canvas, ov)
	if ov.Layout.ShowBadge {
		drawComicBadge(canvas, ov)
	}
	if ov.Layout.ShowLogo {
		drawComicLogo(canvas)
	}

	strokeRect(canvas, canvas.Bounds(), comicBorder, colorBlack)

	return canvas
}

func drawComicTitle(dst *image.NRGBA, ov service.Overlay) {
	title := strings.ToUpper(ClampTitle(ComicTitle(ov.Name, ov.Category, ov.Subcategory)))
	if title == "" {
		return
	}

	face := newFace(styleBoldItalic, 72)
	defer face.Close()

	dx := int(ov.Layout.TitleOffset.X / 100 * ComicWidth)
	dy := int(ov.Layout.TitleOffset.Y / 100 * ComicHeight)
	maxWidth := ComicWidth - 2*comicTitlePadding
	cx := ComicWidth/2 + dx
	baseline := comicTitleTop + face.Metrics().Ascent.Ceil() + dy
	step := lineHeight(face) * 85 / 100

	for _, line := range wrapText(face, title, maxWidth, 2) {
		drawTextCentered(dst, face, line, cx+8, baseline+8, colorBlack)
		drawTextCentered(dst, face, line, cx+4, baseline+4, colorWhite)
		drawTextCentered(dst, face, line, cx, baseline, colorComicRed)
		baseline += step
	}
}

func drawComicBadge(dst *image.NRGBA, ov service.Overlay) {
	const edge = 8

	box := image.Rect(0, 0, comicBadgeWidth, comicBadgeHeight)
	fillRect(dst, box, colorWhite)
	fillRect(dst, image.Rect(box.Max.X-edge, 0, box.Max.X, box.Max.Y), colorBlack)
	fillRect(dst, image.Rect(0, box.Max.Y-edge, box.Max.X, box.Max.Y), colorBlack)

	inner := comicBadgeWidth - edge
	cx := inner / 2

	small := newFace(styleBold, 18)
	defer small.Close()
	price := newFace(styleBold, 56)
	defer price.Close()
	date := newFace(styleBold, 16)
	defer date.Close()

	category := fitText(small, strings.ToUpper(ov.Category), inner-12)
	drawTextCentered(dst, small, category, cx, 30, colorBlack)
	fillRect(dst, image.Rect(6, 38, inner-6, 40), colorBlack)
	drawTextCentered(dst, price, "25¢", cx, 100, colorBlack)

	month, year := badgeDate(ov.Date)
	drawTextCentered(dst, date, month, cx, 130, colorBlack)
	drawTextCentered(dst, date, year, cx, 150, colorBlack)
}

// badgeDate formats the cover date as uppercase month and year.
func badgeDate(at time.Time) (string, string) {
	if at.IsZero() {
		at = time.Now()
	}

	return strings.ToUpper(at.Format("Jan")), at.Format("2006")
}

func drawComicLogo(dst *image.NRGBA) {
	const edge = 8

	box := image.Rect(comicLogoMargin, ComicHeight-comicLogoMargin-comicLogoSize, comicLogoMargin+comicLogoSize, ComicHeight-comicLogoMargin)
	fillRect(dst, box, colorWhite)
	strokeRect(dst, box, edge, colorBlack)

	face := newFace(styleBoldItalic, 34)
	defer face.Close()

	cx := box.Min.X + comicLogoSize/2
	drawTextCentered(dst, face, "FOR THE", cx, box.Min.Y+68, colorBlack)
	drawTextCentered(dst, face, "COS", cx, box.Min.Y+112, colorComicRed)
}
