package imagegen

import (
	"testing"

	"forthecos/internal/domain/entity"
	"forthecos/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func TestSceneDescription(t *testing.T) {
	tests := []struct {
		name string
		req  service.GenerateRequest
		want string
	}{
		{
			name: "custom prompt wins",
			req:  service.GenerateRequest{Category: "Fantasy", Subcategory: "Waterfalls", CustomPrompt: "  a neon rooftop at night "},
			want: "a neon rooftop at night",
		},
		{
			name: "auto detect",
			req:  service.GenerateRequest{Category: "Anime", Subcategory: entity.AutoDetect},
			want: "a breathtaking cinematic backdrop matching the character's aesthetic in a Anime theme",
		},
		{
			name: "named subcategory",
			req:  service.GenerateRequest{Category: "Fantasy", Subcategory: "Elven Enclaves"},
			want: "a highly detailed Elven Enclaves environment in a Fantasy style",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SceneDescription(tt.req))
		})
	}
}

func TestAestheticGuide_Bands(t *testing.T) {
	assert.Contains(t, AestheticGuide(0), "anime")
	assert.Contains(t, AestheticGuide(29), "anime")
	assert.Contains(t, AestheticGuide(30), "painterly")
	assert.Contains(t, AestheticGuide(69), "painterly")
	assert.Contains(t, AestheticGuide(70), "realistic")
	assert.Contains(t, AestheticGuide(100), "realistic")
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(service.GenerateRequest{Category: "Action", Subcategory: "Explosion", StyleIntensity: 50})

	assert.Contains(t, prompt, "a highly detailed Explosion environment in a Action style")
	assert.Contains(t, prompt, "cinematic digital painterly")
	assert.Contains(t, prompt, "35%")
	assert.Contains(t, prompt, "Output ONLY the final processed image.")
}
