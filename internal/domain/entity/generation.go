package entity

import (
	"time"

	"github.com/google/uuid"
)

// PresentationType selects how a generation is framed.
type PresentationType string

const (
	PresentationRaw   PresentationType = "raw"
	PresentationComic PresentationType = "comic"
	PresentationCard  PresentationType = "card"
)

// IsValid reports whether p is a known presentation type.
func (p PresentationType) IsValid() bool {
	switch p {
	case PresentationRaw, PresentationComic, PresentationCard:
		return true
	default:
		return false
	}
}

// Surfaces returns the surfaces whose framing is meaningful for the presentation type.
func (p PresentationType) Surfaces() []Surface {
	switch p {
	case PresentationComic:
		return []Surface{SurfaceComic}
	case PresentationCard:
		return []Surface{SurfaceCardFront, SurfaceCardBack}
	default:
		return []Surface{SurfaceRaw}
	}
}

const (
	StatMin = 1
	StatMax = 7
)

// Stats is the four-value stat block printed on the back of a card.
type Stats struct {
	Strength     int `json:"strength"`
	Intelligence int `json:"intelligence"`
	Agility      int `json:"agility"`
	Speed        int `json:"speed"`
}

// DefaultStats is the stat block assigned to fresh results.
func DefaultStats() Stats {
	return Stats{Strength: 5, Intelligence: 6, Agility: 4, Speed: 5}
}

// Clamp limits every stat to [StatMin, StatMax].
func (s Stats) Clamp() Stats {
	return Stats{
		Strength:     clampStat(s.Strength),
		Intelligence: clampStat(s.Intelligence),
		Agility:      clampStat(s.Agility),
		Speed:        clampStat(s.Speed),
	}
}

// StatEntry is a labelled stat value.
type StatEntry struct {
	Label string
	Value int
}

// Entries returns the stats in print order.
func (s Stats) Entries() []StatEntry {
	return []StatEntry{
		{Label: "Strength", Value: s.Strength},
		{Label: "Intelligence", Value: s.Intelligence},
		{Label: "Agility", Value: s.Agility},
		{Label: "Speed", Value: s.Speed},
	}
}

func clampStat(v int) int {
	return min(max(v, StatMin), StatMax)
}

// ComicLayout holds the comic-frame overlay placement.
type ComicLayout struct {
	TitleOffset Offset `json:"title_offset"`
	ShowBadge   bool   `json:"show_badge"`
	ShowLogo    bool   `json:"show_logo"`
}

// DefaultComicLayout shows both badge and logo with the title in place.
func DefaultComicLayout() ComicLayout {
	return ComicLayout{ShowBadge: true, ShowLogo: true}
}

// Generation is one persisted styled-photo artifact.
type Generation struct {
	ID             uuid.UUID        `json:"id"`
	UserID         uuid.UUID        `json:"user_id"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	ImageURL       string           `json:"image"`
	Name           string           `json:"name"`
	Category       string           `json:"category"`
	Subcategory    string           `json:"subcategory,omitempty"`
	Type           PresentationType `json:"type"`
	Stats          *Stats           `json:"stats,omitempty"`
	Description    string           `json:"description,omitempty"`
	CardStatusText string           `json:"card_status_text,omitempty"`
	SourceImageURL string           `json:"original_source_image,omitempty"`
	Transforms     Transforms       `json:"transforms"`
	ComicLayout    ComicLayout      `json:"comic_layout"`
	IsPublic       bool             `json:"is_public"`

	// Derived on read.
	LikeCount    int            `json:"like_count"`
	UserHasLiked bool           `json:"user_has_liked"`
	Profile      *PublicProfile `json:"user_profile,omitempty"`
}

// MeaningfulTransforms keeps only the framings relevant to the presentation type.
func (g *Generation) MeaningfulTransforms() Transforms {
	out := make(Transforms)
	for _, s := range g.Type.Surfaces() {
		out[s] = g.Transforms.Get(s)
	}

	return out
}

// OwnedBy reports whether userID owns the generation.
func (g *Generation) OwnedBy(userID uuid.UUID) bool {
	return g != nil && g.UserID == userID
}

// ApplyLikeToggle returns view with the viewer's like flipped and the count
// adjusted, as the client should show it before the write is confirmed.
func ApplyLikeToggle(view Generation) Generation {
	if view.UserHasLiked {
		view.UserHasLiked = false
		view.LikeCount = max(view.LikeCount-1, 0)
	} else {
		view.UserHasLiked = true
		view.LikeCount++
	}

	return view
}

// Like marks that a user liked a generation.
type Like struct {
	UserID       uuid.UUID `json:"user_id"`
	GenerationID uuid.UUID `json:"generation_id"`
	CreatedAt    time.Time `json:"created_at"`
}
