package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransform_CSS(t *testing.T) {
	tests := []struct {
		name string
		in   Transform
		want string
	}{
		{name: "identity", in: IdentityTransform(), want: "translate(0%, 0%) scale(1, 1)"},
		{name: "flip horizontal", in: Transform{Scale: 1.5, FlipH: true}, want: "translate(0%, 0%) scale(-1.5, 1.5)"},
		{name: "flip both with offset", in: Transform{Scale: 2, Offset: Offset{X: 12.5, Y: -40}, FlipH: true, FlipV: true}, want: "translate(12.5%, -40%) scale(-2, -2)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.CSS())
		})
	}
}

func TestTransform_ScaleBounds(t *testing.T) {
	comic := SurfaceComic.Bounds()
	assert.InDelta(t, 2.0, IdentityTransform().WithScale(5, comic).Scale, 1e-9)
	assert.InDelta(t, 0.5, IdentityTransform().WithScale(0.1, comic).Scale, 1e-9)

	card := SurfaceCardFront.Bounds()
	assert.InDelta(t, 10.0, IdentityTransform().WithScale(50, card).Scale, 1e-9)
	assert.InDelta(t, 0.1, IdentityTransform().WithScale(0, card).Scale, 1e-9)
}

func TestTransform_Zoom(t *testing.T) {
	b := SurfaceCardFront.Bounds()

	zoomedIn := IdentityTransform().Zoom(-50, b)
	assert.InDelta(t, 1.5, zoomedIn.Scale, 1e-9)

	zoomedOut := IdentityTransform().Zoom(95, b)
	assert.InDelta(t, 0.1, zoomedOut.Scale, 1e-9)
}

func TestTransform_Pan(t *testing.T) {
	tr := IdentityTransform().Pan(30, -60, 300, 400)
	assert.InDelta(t, 10.0, tr.Offset.X, 1e-9)
	assert.InDelta(t, -15.0, tr.Offset.Y, 1e-9)

	far := IdentityTransform().Pan(5000, 0, 300, 400)
	assert.InDelta(t, 100.0, far.Offset.X, 1e-9)

	assert.Equal(t, IdentityTransform(), IdentityTransform().Pan(10, 10, 0, 400))
}

func TestTransform_FlipIsInvolution(t *testing.T) {
	tr := Transform{Scale: 1.3, Offset: Offset{X: 4}}
	assert.Equal(t, tr, tr.ToggleFlipH().ToggleFlipH())
	assert.Equal(t, tr, tr.ToggleFlipV().ToggleFlipV())
}

func TestTransforms_CloneIsolated(t *testing.T) {
	orig := IdentityTransforms()
	clone := orig.Clone()
	clone[SurfaceComic] = clone[SurfaceComic].ToggleFlipH()

	assert.False(t, orig.Get(SurfaceComic).FlipH)
	assert.True(t, clone.Get(SurfaceComic).FlipH)
	assert.True(t, Transforms(nil).Get(SurfaceRaw).IsIdentity())
}
