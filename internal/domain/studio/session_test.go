package studio

import (
	"testing"
	"time"

	"forthecos/internal/domain/entity"
	domainerrors "forthecos/internal/domain/errors"
	"forthecos/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedInSession(t *testing.T) *Session {
	t.Helper()
	userID := uuid.New()

	return NewSession("s-1", &userID)
}

func resultSession(t *testing.T) *Session {
	t.Helper()
	s := signedInSession(t)
	require.NoError(t, s.SetSourceImage("https://cdn.example.com/source.jpg"))
	require.NoError(t, s.SelectCategory("fantasy"))
	require.NoError(t, s.SelectSubcategory("fantasy-elves"))
	require.NoError(t, s.BeginProcessing())
	require.NoError(t, s.CompleteProcessing("https://cdn.example.com/result.png", entity.DefaultAdminSettings()))

	return s
}

func TestNewSession_StartStep(t *testing.T) {
	guest := NewSession("guest", nil)
	assert.Equal(t, StepHome, guest.Step)
	assert.True(t, guest.IsGuest())
	assert.Equal(t, DefaultStyleIntensity, guest.StyleIntensity)

	user := signedInSession(t)
	assert.Equal(t, StepStudio, user.Step)
	assert.False(t, user.IsGuest())
}

func TestSession_SelectCategory(t *testing.T) {
	tests := []struct {
		name       string
		categoryID string
		want       Step
	}{
		{name: "catalog category opens subcategories", categoryID: "fantasy", want: StepSubcategorySelect},
		{name: "custom category opens prompt entry", categoryID: "custom", want: StepCustomPrompt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := signedInSession(t)
			require.NoError(t, s.SetSourceImage("https://cdn.example.com/source.jpg"))
			assert.Equal(t, StepCategorySelect, s.Step)

			require.NoError(t, s.SelectCategory(tt.categoryID))
			assert.Equal(t, tt.want, s.Step)
			assert.Equal(t, tt.categoryID, s.CategoryID)
		})
	}
}

func TestSession_SelectCategory_Unknown(t *testing.T) {
	s := signedInSession(t)
	require.NoError(t, s.SetSourceImage("https://cdn.example.com/source.jpg"))

	err := s.SelectCategory("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryRequired))
	assert.Equal(t, StepCategorySelect, s.Step)
}

func TestSession_BeginProcessing_Preconditions(t *testing.T) {
	t.Run("missing image", func(t *testing.T) {
		s := signedInSession(t)
		s.CategoryID = "fantasy"
		s.Step = StepSubcategorySelect

		err := s.BeginProcessing()
		assert.True(t, errors.Is(err, domainerrors.ErrSourceImageRequired))
		assert.Equal(t, StepSubcategorySelect, s.Step)
	})

	t.Run("missing category", func(t *testing.T) {
		s := signedInSession(t)
		require.NoError(t, s.SetSourceImage("https://cdn.example.com/source.jpg"))

		err := s.BeginProcessing()
		assert.True(t, errors.Is(err, domainerrors.ErrCategoryRequired))
		assert.Equal(t, StepCategorySelect, s.Step)
	})

	t.Run("custom without prompt", func(t *testing.T) {
		s := signedInSession(t)
		require.NoError(t, s.SetSourceImage("https://cdn.example.com/source.jpg"))
		require.NoError(t, s.SelectCategory("custom"))
		s.SetCustomPrompt("   ")

		err := s.BeginProcessing()
		assert.True(t, errors.Is(err, domainerrors.ErrCustomPromptRequired))
		assert.Equal(t, StepCustomPrompt, s.Step)
	})

	t.Run("custom with prompt", func(t *testing.T) {
		s := signedInSession(t)
		require.NoError(t, s.SetSourceImage("https://cdn.example.com/source.jpg"))
		require.NoError(t, s.SelectCategory("custom"))
		s.SetCustomPrompt("a neon rooftop in the rain")

		require.NoError(t, s.BeginProcessing())
		assert.Equal(t, StepProcessing, s.Step)
		assert.True(t, s.View().Busy)
	})
}

func TestSession_CompleteProcessing(t *testing.T) {
	s := signedInSession(t)
	require.NoError(t, s.SetSourceImage("https://cdn.example.com/source.jpg"))
	require.NoError(t, s.SelectCategory("fantasy"))
	require.NoError(t, s.SelectSubcategory("fantasy-elves"))
	require.NoError(t, s.BeginProcessing())

	s.Transforms[entity.SurfaceComic] = entity.IdentityTransform().WithScale(1.5, entity.SurfaceComic.Bounds())

	require.NoError(t, s.CompleteProcessing("https://cdn.example.com/result.png", entity.DefaultAdminSettings()))

	assert.Equal(t, StepResult, s.Step)
	assert.Equal(t, "THE LEGENDARY Elven Enclaves", s.Draft.Name)
	assert.Equal(t, "Fantasy", s.Draft.CategoryName)
	assert.Equal(t, entity.PresentationRaw, s.Draft.Presentation)
	assert.Equal(t, entity.DefaultStats(), s.Draft.Stats)
	for _, surface := range entity.Surfaces() {
		assert.True(t, s.Transforms.Get(surface).IsIdentity(), surface)
	}
}

func TestSession_CompleteProcessing_AutoDetectName(t *testing.T) {
	s := signedInSession(t)
	require.NoError(t, s.SetSourceImage("https://cdn.example.com/source.jpg"))
	require.NoError(t, s.SelectCategory("fantasy"))
	require.NoError(t, s.BeginProcessing())
	require.NoError(t, s.CompleteProcessing("https://cdn.example.com/result.png", entity.DefaultAdminSettings()))

	assert.Equal(t, "THE LEGENDARY Auto Detect", s.Draft.Name)
}

func TestSession_CompleteProcessing_WrongStep(t *testing.T) {
	s := signedInSession(t)

	err := s.CompleteProcessing("https://cdn.example.com/result.png", entity.DefaultAdminSettings())
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
	assert.Equal(t, StepStudio, s.Step)
}

func TestSession_FailProcessing(t *testing.T) {
	s := signedInSession(t)
	require.NoError(t, s.SetSourceImage("https://cdn.example.com/source.jpg"))
	require.NoError(t, s.SelectCategory("nature"))
	require.NoError(t, s.BeginProcessing())

	s.FailProcessing("blocked")
	assert.Equal(t, StepStudio, s.Step)
	assert.Equal(t, "blocked", s.Error)
	assert.Equal(t, "https://cdn.example.com/source.jpg", s.SourceImage)
}

func TestSession_Back(t *testing.T) {
	tests := []struct {
		name   string
		from   Step
		guest  bool
		custom bool
		want   Step
	}{
		{name: "category to studio", from: StepCategorySelect, want: StepStudio},
		{name: "subcategory to category", from: StepSubcategorySelect, want: StepCategorySelect},
		{name: "prompt to category", from: StepCustomPrompt, want: StepCategorySelect},
		{name: "result to subcategory", from: StepResult, want: StepSubcategorySelect},
		{name: "custom result to prompt", from: StepResult, custom: true, want: StepCustomPrompt},
		{name: "checkout to result", from: StepCheckout, want: StepResult},
		{name: "gallery signed in", from: StepGallery, want: StepStudio},
		{name: "community guest", from: StepCommunity, guest: true, want: StepHome},
		{name: "view profile signed in", from: StepViewProfile, want: StepStudio},
		{name: "login to home", from: StepLogin, guest: true, want: StepHome},
		{name: "home stays", from: StepHome, guest: true, want: StepHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s *Session
			if tt.guest {
				s = NewSession("guest", nil)
			} else {
				s = signedInSession(t)
			}
			if tt.custom {
				s.CategoryID = "custom"
			}
			s.Step = tt.from

			assert.Equal(t, tt.want, s.Back())
			assert.Equal(t, tt.want, s.Step)
		})
	}
}

func TestSession_Navigate(t *testing.T) {
	guest := NewSession("guest", nil)
	require.NoError(t, guest.Navigate(StepGallery, nil))
	assert.Equal(t, StepLogin, guest.Step)

	user := signedInSession(t)
	require.NoError(t, user.Navigate(StepGallery, nil))
	assert.Equal(t, StepGallery, user.Step)

	err := user.Navigate(StepResult, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
	assert.Equal(t, StepGallery, user.Step)

	err = user.Navigate(StepViewProfile, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	target := uuid.New()
	require.NoError(t, user.Navigate(StepViewProfile, &target))
	assert.Equal(t, &target, user.TargetProfileID)
}

func TestSession_LeavingCheckoutDropsOrder(t *testing.T) {
	s := resultSession(t)
	s.AttachOrder(uuid.New())
	require.NoError(t, s.Navigate(StepCommunity, nil))
	assert.Nil(t, s.CheckoutOrderID)

	s = resultSession(t)
	s.AttachOrder(uuid.New())
	assert.Equal(t, StepResult, s.Back())
	assert.Nil(t, s.CheckoutOrderID)
}

func TestSession_SignedInAndOut(t *testing.T) {
	s := NewSession("s", nil)
	s.Step = StepLogin

	s.SignedIn(uuid.New())
	assert.Equal(t, StepStudio, s.Step)

	s.SignedOut()
	assert.Equal(t, StepHome, s.Step)
	assert.True(t, s.IsGuest())
}

func TestSession_UpdateTransform_IsolatedPerSurface(t *testing.T) {
	s := resultSession(t)

	err := s.UpdateTransform(entity.SurfaceComic, func(tr entity.Transform, b entity.ScaleBounds) entity.Transform {
		return tr.WithScale(1.8, b).ToggleFlipH()
	})
	require.NoError(t, err)

	assert.InDelta(t, 1.8, s.Transforms.Get(entity.SurfaceComic).Scale, 1e-9)
	assert.True(t, s.Transforms.Get(entity.SurfaceComic).FlipH)
	assert.True(t, s.Transforms.Get(entity.SurfaceCardFront).IsIdentity())
	assert.True(t, s.Transforms.Get(entity.SurfaceRaw).IsIdentity())

	require.NoError(t, s.ResetTransform(entity.SurfaceComic))
	assert.True(t, s.Transforms.Get(entity.SurfaceComic).IsIdentity())
}

func TestSession_SaveGuard(t *testing.T) {
	s := resultSession(t)

	require.NoError(t, s.BeginSave())
	assert.True(t, s.Saving)
	// A stale flag from an interrupted save does not block the next one.
	require.NoError(t, s.BeginSave())

	id := uuid.New()
	s.EndSave(&id)
	assert.False(t, s.Saving)
	require.NotNil(t, s.EditingID)
	assert.Equal(t, id, *s.EditingID)

	require.NoError(t, s.BeginSave())
}

func TestSession_SaveGuard_Guest(t *testing.T) {
	s := resultSession(t)
	s.UserID = nil

	err := s.BeginSave()
	assert.True(t, errors.Is(err, domainerrors.ErrAuthRequired))
	assert.False(t, s.Saving)
}

func TestSession_ToGeneration(t *testing.T) {
	s := resultSession(t)
	require.NoError(t, s.SetPresentation(entity.PresentationCard))
	s.SetStats(entity.Stats{Strength: 9, Intelligence: 0, Agility: 3, Speed: 7})
	require.NoError(t, s.UpdateTransform(entity.SurfaceCardBack, func(tr entity.Transform, _ entity.ScaleBounds) entity.Transform {
		return tr.ToggleFlipV()
	}))

	id := uuid.New()
	gen := s.ToGeneration(id, time.Now())

	assert.Equal(t, id, gen.ID)
	assert.Equal(t, *s.UserID, gen.UserID)
	assert.Equal(t, entity.PresentationCard, gen.Type)
	require.NotNil(t, gen.Stats)
	assert.Equal(t, entity.Stats{Strength: 7, Intelligence: 1, Agility: 3, Speed: 7}, *gen.Stats)
	assert.Len(t, gen.Transforms, 2)
	assert.True(t, gen.Transforms.Get(entity.SurfaceCardBack).FlipV)
	assert.Equal(t, "https://cdn.example.com/source.jpg", gen.SourceImageURL)
}

func TestSession_Checkout(t *testing.T) {
	s := resultSession(t)

	_, err := s.BeginCheckout()
	assert.True(t, errors.Is(err, domainerrors.ErrStylizedResultRequired))

	require.NoError(t, s.SetPresentation(entity.PresentationComic))
	item, err := s.BeginCheckout()
	require.NoError(t, err)
	assert.Equal(t, entity.ItemComicPrint, item)

	require.NoError(t, s.SetPresentation(entity.PresentationCard))
	item, err = s.BeginCheckout()
	require.NoError(t, err)
	assert.Equal(t, entity.ItemCardSet, item)

	orderID := uuid.New()
	s.AttachOrder(orderID)
	assert.Equal(t, StepCheckout, s.Step)

	s.UserID = nil
	_, err = s.BeginCheckout()
	assert.True(t, errors.Is(err, domainerrors.ErrAuthRequired))
}

func TestSession_EditExisting(t *testing.T) {
	s := signedInSession(t)
	stats := entity.Stats{Strength: 2, Intelligence: 3, Agility: 4, Speed: 5}
	gen := &entity.Generation{
		ID:       uuid.New(),
		UserID:   *s.UserID,
		ImageURL: "https://cdn.example.com/saved.png",
		Name:     "Saved",
		Category: "Fantasy",
		Type:     entity.PresentationCard,
		Stats:    &stats,
		Transforms: entity.Transforms{
			entity.SurfaceCardFront: {Scale: 20, Offset: entity.Offset{X: 300}},
		},
	}

	s.EditExisting(gen)

	assert.Equal(t, StepResult, s.Step)
	require.NotNil(t, s.EditingID)
	assert.Equal(t, gen.ID, *s.EditingID)
	assert.Equal(t, "fantasy", s.CategoryID)
	assert.Equal(t, entity.SurfaceCardFront, s.ActiveSurface)
	assert.Equal(t, stats, s.Draft.Stats)
	front := s.Transforms.Get(entity.SurfaceCardFront)
	assert.InDelta(t, 10.0, front.Scale, 1e-9)
	assert.InDelta(t, 100.0, front.Offset.X, 1e-9)
	assert.True(t, s.Transforms.Get(entity.SurfaceComic).IsIdentity())
}

func TestViewFor_ReturnsCopy(t *testing.T) {
	v := ViewFor(StepResult)
	v.Actions[0] = "mutated"

	assert.Equal(t, ActionTransform, ViewFor(StepResult).Actions[0])
	assert.Equal(t, StepHome, ViewFor("UNKNOWN").Step)
}

func TestSession_ApplyDraftEdit(t *testing.T) {
	s := resultSession(t)
	name := "  Elf Queen "
	card := entity.PresentationCard
	public := true

	require.NoError(t, s.ApplyDraftEdit(DraftEdit{
		Name:         &name,
		Stats:        &entity.Stats{Strength: 12, Intelligence: 0, Agility: 3, Speed: 7},
		Presentation: &card,
		IsPublic:     &public,
		FlipCard:     true,
	}))

	assert.Equal(t, "Elf Queen", s.Draft.Name)
	assert.Equal(t, entity.Stats{Strength: 7, Intelligence: 1, Agility: 3, Speed: 7}, s.Draft.Stats)
	assert.Equal(t, entity.PresentationCard, s.Draft.Presentation)
	assert.Equal(t, entity.SurfaceCardFront, s.ActiveSurface)
	assert.True(t, s.IsPublic)
	assert.True(t, s.CardFlipped)
}

func TestSession_ApplyDraftEdit_Rejected(t *testing.T) {
	s := resultSession(t)
	before := s.Draft
	bogus := entity.PresentationType("poster")
	name := "ignored"

	err := s.ApplyDraftEdit(DraftEdit{Name: &name, Presentation: &bogus})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, before, s.Draft)

	s.Step = StepCategorySelect
	err = s.ApplyDraftEdit(DraftEdit{Name: &name})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestSession_Snapshot_IsDetached(t *testing.T) {
	s := resultSession(t)
	snap := s.Snapshot()

	require.NoError(t, s.UpdateTransform(entity.SurfaceRaw, func(t entity.Transform, b entity.ScaleBounds) entity.Transform {
		return t.WithScale(3, b)
	}))
	*s.UserID = uuid.New()

	assert.InDelta(t, 1.0, snap.Transforms.Get(entity.SurfaceRaw).Scale, 1e-9)
	assert.NotEqual(t, *s.UserID, *snap.UserID)
	assert.Equal(t, StepResult, snap.View.Step)
}
