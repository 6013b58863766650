package studio

import (
	"strings"
	"time"

	"forthecos/internal/domain/entity"
	domainerrors "forthecos/internal/domain/errors"
	"forthecos/internal/errors"

	"github.com/google/uuid"
)

const (
	// DefaultStyleIntensity sits between the painterly and realistic bands.
	DefaultStyleIntensity = 50
	maxStyleIntensity     = 100
)

// Draft is the in-progress result being edited on the RESULT screen.
type Draft struct {
	ResultImage  string                  `json:"result_image,omitempty"`
	Name         string                  `json:"name"`
	Description  string                  `json:"description"`
	StatusText   string                  `json:"status_text"`
	Stats        entity.Stats            `json:"stats"`
	Presentation entity.PresentationType `json:"presentation"`
	CategoryName string                  `json:"category_name"`
	Subcategory  string                  `json:"subcategory_name,omitempty"`
}

// Session is one client's studio state. Every mutating method validates
// first and leaves the session untouched when it returns an error.
type Session struct {
	ID              string             `json:"id"`
	UserID          *uuid.UUID         `json:"user_id,omitempty"`
	Step            Step               `json:"step"`
	SourceImage     string             `json:"source_image,omitempty"`
	CategoryID      string             `json:"category_id,omitempty"`
	SubcategoryID   string             `json:"subcategory_id,omitempty"`
	CustomPrompt    string             `json:"custom_prompt,omitempty"`
	StyleIntensity  int                `json:"style_intensity"`
	Draft           Draft              `json:"draft"`
	Transforms      entity.Transforms  `json:"transforms"`
	ActiveSurface   entity.Surface     `json:"active_surface"`
	CardFlipped     bool               `json:"card_flipped"`
	ComicLayout     entity.ComicLayout `json:"comic_layout"`
	IsPublic        bool               `json:"is_public"`
	EditingID       *uuid.UUID         `json:"editing_id,omitempty"`
	TargetProfileID *uuid.UUID         `json:"target_profile_id,omitempty"`
	CheckoutOrderID *uuid.UUID         `json:"checkout_order_id,omitempty"`
	Saving          bool               `json:"saving"`
	Error           string             `json:"error,omitempty"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// DraftEdit is a partial update of the result draft. Nil fields are left unchanged.
type DraftEdit struct {
	Name         *string                  `json:"name,omitempty"`
	Description  *string                  `json:"description,omitempty"`
	StatusText   *string                  `json:"status_text,omitempty"`
	Stats        *entity.Stats            `json:"stats,omitempty"`
	Presentation *entity.PresentationType `json:"presentation,omitempty"`
	ComicLayout  *entity.ComicLayout      `json:"comic_layout,omitempty"`
	IsPublic     *bool                    `json:"is_public,omitempty"`
	FlipCard     bool                     `json:"flip_card,omitempty"`
}

// Snapshot is a detached copy of a session together with its view, safe to encode.
type Snapshot struct {
	Session
	View View `json:"view"`
}

// NewSession starts a session on the studio when signed in, otherwise on the landing page.
func NewSession(id string, userID *uuid.UUID) *Session {
	step := StepHome
	if userID != nil {
		step = StepStudio
	}

	return &Session{
		ID:             id,
		UserID:         userID,
		Step:           step,
		StyleIntensity: DefaultStyleIntensity,
		Transforms:     entity.IdentityTransforms(),
		ActiveSurface:  entity.SurfaceRaw,
		ComicLayout:    entity.DefaultComicLayout(),
		Draft:          Draft{Presentation: entity.PresentationRaw, Stats: entity.DefaultStats()},
		UpdatedAt:      time.Now(),
	}
}

// IsGuest reports whether nobody is signed in on this session.
func (s *Session) IsGuest() bool {
	return s.UserID == nil
}

// Category resolves the selected category from the catalog.
func (s *Session) Category() (entity.Category, bool) {
	if s.CategoryID == "" {
		return entity.Category{}, false
	}

	return entity.FindCategory(s.CategoryID)
}

// Subcategory resolves the selected subcategory, if any.
func (s *Session) Subcategory() (entity.Subcategory, bool) {
	cat, ok := s.Category()
	if !ok || s.SubcategoryID == "" {
		return entity.Subcategory{}, false
	}

	return cat.FindSubcategory(s.SubcategoryID)
}

// SubcategoryName returns the selected subcategory name or the auto-detect fallback.
func (s *Session) SubcategoryName() string {
	if sub, ok := s.Subcategory(); ok {
		return sub.Name
	}

	return entity.AutoDetect
}

// View returns the descriptor for the current step.
func (s *Session) View() View {
	return ViewFor(s.Step)
}

// Snapshot copies the session so later mutations do not leak into the result.
func (s *Session) Snapshot() Snapshot {
	cp := *s
	cp.UserID = copyID(s.UserID)
	cp.EditingID = copyID(s.EditingID)
	cp.TargetProfileID = copyID(s.TargetProfileID)
	cp.CheckoutOrderID = copyID(s.CheckoutOrderID)
	cp.Transforms = s.Transforms.Clone()

	return Snapshot{Session: cp, View: s.View()}
}

// SignedIn attaches a user. Auth screens move on to the studio.
func (s *Session) SignedIn(userID uuid.UUID) {
	s.UserID = &userID
	if s.Step == StepLogin || s.Step == StepSignup || s.Step == StepHome {
		s.Step = StepStudio
	}
	s.touch()
}

// SignedOut drops the user and any draft that depended on it.
func (s *Session) SignedOut() {
	s.UserID = nil
	s.EditingID = nil
	s.CheckoutOrderID = nil
	s.Saving = false
	s.Step = StepHome
	s.touch()
}

// Navigate moves to a top-level screen. Screens that need an account send guests to LOGIN.
func (s *Session) Navigate(step Step, target *uuid.UUID) error {
	switch step {
	case StepHome, StepCommunity, StepStudio, StepUpload, StepLogin, StepSignup:
	case StepGallery, StepProfile:
		if s.IsGuest() {
			step = StepLogin
		}
	case StepViewProfile:
		if target == nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, "profile id is required")
		}
		s.TargetProfileID = target
	default:
		return errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot navigate to %s", step)
	}

	s.Step = step
	s.CheckoutOrderID = nil
	s.Error = ""
	s.touch()

	return nil
}

// Back moves to the parent of the current screen.
func (s *Session) Back() Step {
	switch s.Step {
	case StepGallery, StepProfile, StepViewProfile, StepCommunity:
		if s.IsGuest() {
			s.Step = StepHome
		} else {
			s.Step = StepStudio
		}
	case StepResult:
		if cat, ok := s.Category(); ok && cat.IsCustom {
			s.Step = StepCustomPrompt
		} else {
			s.Step = StepSubcategorySelect
		}
	case StepCheckout:
		s.CheckoutOrderID = nil
		s.Step = StepResult
	default:
		if parent, ok := parents[s.Step]; ok {
			s.Step = parent
		}
	}
	s.touch()

	return s.Step
}

// SetSourceImage records the captured photo and opens the category picker.
func (s *Session) SetSourceImage(url string) error {
	if strings.TrimSpace(url) == "" {
		return errors.WithStack(domainerrors.ErrSourceImageRequired)
	}
	if !s.beforeProcessing() {
		return errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot upload on %s", s.Step)
	}

	s.SourceImage = url
	s.Error = ""
	s.Step = StepCategorySelect
	s.touch()

	return nil
}

// SelectCategory keeps the category and opens the subcategory picker, or the
// prompt entry screen for the free-text theme.
func (s *Session) SelectCategory(categoryID string) error {
	cat, ok := entity.FindCategory(categoryID)
	if !ok {
		return errors.Wrapf(domainerrors.ErrCategoryRequired, "unknown category %q", categoryID)
	}
	if !s.beforeProcessing() {
		return errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot pick a category on %s", s.Step)
	}

	s.CategoryID = cat.ID
	s.SubcategoryID = ""
	s.Error = ""
	if cat.IsCustom {
		s.Step = StepCustomPrompt
	} else {
		s.Step = StepSubcategorySelect
	}
	s.touch()

	return nil
}

// SelectSubcategory marks a subcategory of the current category.
func (s *Session) SelectSubcategory(subcategoryID string) error {
	cat, ok := s.Category()
	if !ok {
		return errors.WithStack(domainerrors.ErrCategoryRequired)
	}
	sub, ok := cat.FindSubcategory(subcategoryID)
	if !ok {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown subcategory %q", subcategoryID)
	}
	if s.Step != StepSubcategorySelect {
		return errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot pick a subcategory on %s", s.Step)
	}

	s.SubcategoryID = sub.ID
	s.touch()

	return nil
}

// SetCustomPrompt stores the free-text scene description.
func (s *Session) SetCustomPrompt(prompt string) {
	s.CustomPrompt = prompt
	s.touch()
}

// SetStyleIntensity stores the style slider value clamped to [0, 100].
func (s *Session) SetStyleIntensity(v int) {
	s.StyleIntensity = min(max(v, 0), maxStyleIntensity)
	s.touch()
}

// ValidateProcessing checks the preconditions for a generation call.
func (s *Session) ValidateProcessing() error {
	if s.SourceImage == "" {
		return errors.WithStack(domainerrors.ErrSourceImageRequired)
	}
	cat, ok := s.Category()
	if !ok {
		return errors.WithStack(domainerrors.ErrCategoryRequired)
	}
	if cat.IsCustom && strings.TrimSpace(s.CustomPrompt) == "" {
		return errors.WithStack(domainerrors.ErrCustomPromptRequired)
	}
	if s.Step != StepSubcategorySelect && s.Step != StepCustomPrompt {
		return errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot start processing on %s", s.Step)
	}

	return nil
}

// BeginProcessing enters PROCESSING once preconditions hold.
func (s *Session) BeginProcessing() error {
	if err := s.ValidateProcessing(); err != nil {
		return err
	}

	s.Step = StepProcessing
	s.Error = ""
	s.touch()

	return nil
}

// CompleteProcessing fills the result screen with a fresh draft built from the admin defaults.
func (s *Session) CompleteProcessing(imageURL string, settings entity.AdminSettings) error {
	if s.Step != StepProcessing {
		return errors.Wrapf(domainerrors.ErrInvalidTransition, "no generation in progress on %s", s.Step)
	}

	cat, _ := s.Category()
	subName := s.SubcategoryName()
	s.Draft = Draft{
		ResultImage:  imageURL,
		Name:         strings.TrimSpace(settings.DefaultTitle + " " + subName),
		Description:  settings.DefaultDescription,
		StatusText:   settings.DefaultStatusText,
		Stats:        entity.DefaultStats(),
		Presentation: entity.PresentationRaw,
		CategoryName: cat.Name,
		Subcategory:  subName,
	}
	s.Transforms = entity.IdentityTransforms()
	s.ActiveSurface = entity.SurfaceRaw
	s.CardFlipped = false
	s.ComicLayout = entity.DefaultComicLayout()
	s.IsPublic = false
	s.EditingID = nil
	s.CheckoutOrderID = nil
	s.Error = ""
	s.Step = StepResult
	s.touch()

	return nil
}

// FailProcessing records a generation failure and returns to the upload retry point.
func (s *Session) FailProcessing(message string) {
	s.Error = message
	s.Step = StepStudio
	s.touch()
}

// EditExisting reopens a saved generation on the result screen. A later save overwrites it.
func (s *Session) EditExisting(gen *entity.Generation) {
	stats := entity.DefaultStats()
	if gen.Stats != nil {
		stats = gen.Stats.Clamp()
	}
	presentation := gen.Type
	if !presentation.IsValid() {
		presentation = entity.PresentationRaw
	}

	s.Draft = Draft{
		ResultImage:  gen.ImageURL,
		Name:         gen.Name,
		Description:  gen.Description,
		StatusText:   gen.CardStatusText,
		Stats:        stats,
		Presentation: presentation,
		CategoryName: gen.Category,
		Subcategory:  gen.Subcategory,
	}
	s.CategoryID = categoryIDByName(gen.Category)
	s.SubcategoryID = ""
	s.SourceImage = gen.SourceImageURL
	s.Transforms = entity.IdentityTransforms()
	for surface, t := range gen.Transforms {
		if surface.IsValid() {
			s.Transforms[surface] = t.Normalize(surface.Bounds())
		}
	}
	s.ActiveSurface = presentation.Surfaces()[0]
	s.CardFlipped = false
	s.ComicLayout = gen.ComicLayout
	s.IsPublic = gen.IsPublic
	id := gen.ID
	s.EditingID = &id
	s.CheckoutOrderID = nil
	s.Error = ""
	s.Step = StepResult
	s.touch()
}

// SetPresentation switches between raw, comic and card styling.
func (s *Session) SetPresentation(p entity.PresentationType) error {
	if !p.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown presentation %q", p)
	}
	if s.Step != StepResult {
		return errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot restyle on %s", s.Step)
	}

	s.Draft.Presentation = p
	if !s.surfaceFits(s.ActiveSurface) {
		s.ActiveSurface = p.Surfaces()[0]
	}
	s.touch()

	return nil
}

// SetActiveSurface picks the surface that transform edits apply to.
func (s *Session) SetActiveSurface(surface entity.Surface) error {
	if !surface.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown surface %q", surface)
	}

	s.ActiveSurface = surface
	s.touch()

	return nil
}

// UpdateTransform applies fn to the framing of one surface only.
func (s *Session) UpdateTransform(surface entity.Surface, fn func(entity.Transform, entity.ScaleBounds) entity.Transform) error {
	if surface == "" {
		surface = s.ActiveSurface
	}
	if !surface.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown surface %q", surface)
	}
	if s.Step != StepResult {
		return errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot reframe on %s", s.Step)
	}

	if s.Transforms == nil {
		s.Transforms = entity.IdentityTransforms()
	}
	s.Transforms[surface] = fn(s.Transforms.Get(surface), surface.Bounds())
	s.touch()

	return nil
}

// ResetTransform restores identity on one surface only.
func (s *Session) ResetTransform(surface entity.Surface) error {
	return s.UpdateTransform(surface, func(entity.Transform, entity.ScaleBounds) entity.Transform {
		return entity.IdentityTransform()
	})
}

// FlipCard toggles which card face is shown.
func (s *Session) FlipCard() bool {
	s.CardFlipped = !s.CardFlipped
	s.touch()

	return s.CardFlipped
}

// SetStats stores the stat block clamped to its bounds.
func (s *Session) SetStats(stats entity.Stats) {
	s.Draft.Stats = stats.Clamp()
	s.touch()
}

// ApplyDraftEdit updates the result draft. Nothing changes when any field is rejected.
func (s *Session) ApplyDraftEdit(edit DraftEdit) error {
	if s.Step != StepResult {
		return errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot edit the draft on %s", s.Step)
	}
	if edit.Presentation != nil && !edit.Presentation.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown presentation %q", *edit.Presentation)
	}

	if edit.Name != nil {
		s.Draft.Name = strings.TrimSpace(*edit.Name)
	}
	if edit.Description != nil {
		s.Draft.Description = *edit.Description
	}
	if edit.StatusText != nil {
		s.Draft.StatusText = *edit.StatusText
	}
	if edit.Stats != nil {
		s.SetStats(*edit.Stats)
	}
	if edit.Presentation != nil {
		if err := s.SetPresentation(*edit.Presentation); err != nil {
			return err
		}
	}
	if edit.ComicLayout != nil {
		s.ComicLayout = *edit.ComicLayout
	}
	if edit.IsPublic != nil {
		s.IsPublic = *edit.IsPublic
	}
	if edit.FlipCard {
		s.FlipCard()
	}
	s.touch()

	return nil
}

// BeginSave marks a save as in flight. It refuses guests and empty results.
// Concurrent saves are excluded by the store's save lock, not by Saving.
func (s *Session) BeginSave() error {
	if s.IsGuest() {
		return errors.WithStack(domainerrors.ErrAuthRequired)
	}
	if s.Draft.ResultImage == "" {
		return errors.WithStack(domainerrors.ErrResultRequired)
	}

	s.Saving = true
	s.touch()

	return nil
}

// EndSave clears the busy flag; on success later saves overwrite id.
func (s *Session) EndSave(id *uuid.UUID) {
	s.Saving = false
	if id != nil {
		saved := *id
		s.EditingID = &saved
	}
	s.touch()
}

// ToGeneration builds the artifact persisted by a save.
func (s *Session) ToGeneration(id uuid.UUID, now time.Time) *entity.Generation {
	gen := &entity.Generation{
		ID:             id,
		CreatedAt:      now,
		UpdatedAt:      now,
		ImageURL:       s.Draft.ResultImage,
		Name:           s.Draft.Name,
		Category:       s.Draft.CategoryName,
		Subcategory:    s.Draft.Subcategory,
		Type:           s.Draft.Presentation,
		Description:    s.Draft.Description,
		CardStatusText: s.Draft.StatusText,
		SourceImageURL: s.SourceImage,
		ComicLayout:    s.ComicLayout,
		IsPublic:       s.IsPublic,
	}
	if s.UserID != nil {
		gen.UserID = *s.UserID
	}
	if gen.Type == entity.PresentationCard {
		stats := s.Draft.Stats.Clamp()
		gen.Stats = &stats
	}
	gen.Transforms = s.Transforms.Clone()
	gen.Transforms = gen.MeaningfulTransforms()

	return gen
}

// CheckoutItem returns the product matching the styled result.
func (s *Session) CheckoutItem() (entity.ItemType, error) {
	switch s.Draft.Presentation {
	case entity.PresentationComic:
		return entity.ItemComicPrint, nil
	case entity.PresentationCard:
		return entity.ItemCardSet, nil
	default:
		return "", errors.WithStack(domainerrors.ErrStylizedResultRequired)
	}
}

// BeginCheckout validates that a styled result exists and a user is signed in.
func (s *Session) BeginCheckout() (entity.ItemType, error) {
	if s.IsGuest() {
		return "", errors.WithStack(domainerrors.ErrAuthRequired)
	}
	if s.Step != StepResult && s.Step != StepCheckout {
		return "", errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot check out on %s", s.Step)
	}

	return s.CheckoutItem()
}

// AttachOrder enters CHECKOUT tracking the given order.
func (s *Session) AttachOrder(orderID uuid.UUID) {
	s.CheckoutOrderID = &orderID
	s.Step = StepCheckout
	s.touch()
}

func (s *Session) beforeProcessing() bool {
	switch s.Step {
	case StepStudio, StepUpload, StepCategorySelect, StepSubcategorySelect, StepCustomPrompt, StepResult:
		return true
	default:
		return false
	}
}

func (s *Session) surfaceFits(surface entity.Surface) bool {
	for _, fit := range s.Draft.Presentation.Surfaces() {
		if fit == surface {
			return true
		}
	}

	return false
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now()
}

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id

	return &v
}

func categoryIDByName(name string) string {
	for _, c := range entity.Categories() {
		if strings.EqualFold(c.Name, name) {
			return c.ID
		}
	}

	return ""
}
