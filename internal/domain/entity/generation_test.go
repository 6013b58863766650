package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyLikeToggle(t *testing.T) {
	view := Generation{LikeCount: 3}

	liked := ApplyLikeToggle(view)
	assert.True(t, liked.UserHasLiked)
	assert.Equal(t, 4, liked.LikeCount)

	unliked := ApplyLikeToggle(liked)
	assert.False(t, unliked.UserHasLiked)
	assert.Equal(t, 3, unliked.LikeCount)

	assert.Equal(t, 3, view.LikeCount, "input view is not modified")
}

func TestApplyLikeToggle_NeverNegative(t *testing.T) {
	view := Generation{UserHasLiked: true}

	assert.Equal(t, 0, ApplyLikeToggle(view).LikeCount)
}

func TestGeneration_MeaningfulTransforms(t *testing.T) {
	gen := &Generation{
		Type: PresentationCard,
		Transforms: Transforms{
			SurfaceRaw:       {Scale: 2},
			SurfaceCardFront: {Scale: 3},
		},
	}

	out := gen.MeaningfulTransforms()
	assert.Len(t, out, 2)
	assert.InDelta(t, 3.0, out[SurfaceCardFront].Scale, 1e-9)
	assert.Equal(t, IdentityTransform(), out[SurfaceCardBack])
	_, hasRaw := out[SurfaceRaw]
	assert.False(t, hasRaw)
}

func TestStats_Clamp(t *testing.T) {
	got := Stats{Strength: 0, Intelligence: 8, Agility: 4, Speed: -3}.Clamp()
	assert.Equal(t, Stats{Strength: 1, Intelligence: 7, Agility: 4, Speed: 1}, got)
}
