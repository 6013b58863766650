package imagegen

import (
	"fmt"
	"strings"

	"forthecos/internal/domain/entity"
	"forthecos/internal/domain/service"
)

// Style intensity bands.
const (
	animeBandLimit     = 30
	painterlyBandLimit = 70
)

// SceneDescription picks the backdrop: a custom prompt wins, then the auto-detect phrasing.
func SceneDescription(req service.GenerateRequest) string {
	if prompt := strings.TrimSpace(req.CustomPrompt); prompt != "" {
		return prompt
	}
	if req.Subcategory == "" || req.Subcategory == entity.AutoDetect {
		return fmt.Sprintf("a breathtaking cinematic backdrop matching the character's aesthetic in a %s theme", req.Category)
	}

	return fmt.Sprintf("a highly detailed %s environment in a %s style", req.Subcategory, req.Category)
}

// AestheticGuide maps the 0-100 intensity to a rendering style.
func AestheticGuide(intensity int) string {
	switch {
	case intensity < animeBandLimit:
		return "stylized 2D anime cel-shaded illustrative"
	case intensity < painterlyBandLimit:
		return "cinematic digital painterly with dramatic lighting"
	default:
		return "high-fidelity realistic digital art with professional cinematic color grading"
	}
}

// BuildPrompt renders the background-replacement instruction sent with the photo.
func BuildPrompt(req service.GenerateRequest) string {
	var b strings.Builder

	b.WriteString("Task: Professional Background Replacement.\n\n")
	b.WriteString("Instructions:\n")
	fmt.Fprintf(&b, "1. BACKGROUND: Replace the entire background with: %s.\n", SceneDescription(req))
	fmt.Fprintf(&b, "2. STYLE: Use a %s aesthetic for the new environment.\n", AestheticGuide(req.StyleIntensity))
	b.WriteString("3. SUBJECT PRESERVATION: Keep the person, their costume, and their props from the original image PERFECTLY identical. ")
	b.WriteString("Do not alter their face, body structure, or clothing.\n")
	b.WriteString("4. INTEGRATION: Seamlessly blend the original subject into the new scenery using matching atmospheric lighting, shadows, and depth of field.\n")
	b.WriteString("5. COMPOSITION: Leave generous empty headroom. At least 35% of the image height at the top must be background, ")
	b.WriteString("with the character grounded in the lower two-thirds so overlays have room.\n\n")
	b.WriteString("Output ONLY the final processed image.")

	return b.String()
}
