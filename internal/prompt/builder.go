// Package prompt builds the instruction payload sent to the text-generation
// model from a set of user preferences.
package prompt

import (
	"fmt"
	"strings"

	"lumina/internal/models"
)

// Image types that trigger additional authoring rules.
const (
	ImageTypePhotorealistic = "Photorealistic"
	ImageType3DRender       = "3D Render"
)

// BuildInstruction converts preferences into the single natural-language
// instruction for the model. Every preference value is embedded verbatim, and
// the aspect-ratio directive is the last token of the payload so the model
// mirrors it at the end of its output.
func BuildInstruction(prefs models.Preferences) string {
	var b strings.Builder

	b.WriteString("You are an expert prompt engineer for high-end AI image generators (Midjourney v6, Kling, Adobe Firefly).\n\n")
	b.WriteString("Convert the following user requirements into a single, highly detailed, professional prompt.\n\n")

	b.WriteString("USER INPUTS:\n")
	fmt.Fprintf(&b, "- Type: %s\n", prefs.ImageType)
	fmt.Fprintf(&b, "- Subject: %s\n", prefs.Subject)
	fmt.Fprintf(&b, "- Style: %s\n", prefs.Style)
	fmt.Fprintf(&b, "- Mood: %s\n", prefs.Mood)
	fmt.Fprintf(&b, "- Lighting: %s\n", prefs.Lighting)
	fmt.Fprintf(&b, "- Colors: %s\n", prefs.Colors)
	fmt.Fprintf(&b, "- Aspect Ratio: %s\n", prefs.AspectRatio)

	rules := []string{
		"Create one cohesive, descriptive paragraph. Do not return a list.",
		"Focus on visual descriptors: texture, lighting, composition, and camera lens where applicable.",
	}
	switch prefs.ImageType {
	case ImageTypePhotorealistic:
		rules = append(rules, "Specify concrete camera settings (e.g. 85mm lens, f/1.8).")
	case ImageType3DRender:
		rules = append(rules, "Specify a rendering engine (e.g. Unreal Engine 5, Octane Render).")
	}
	rules = append(rules,
		"Return only the prompt text. Do not add conversational filler.",
		fmt.Sprintf("End the prompt with the aspect ratio parameter: --ar %s", prefs.AspectRatio),
	)

	b.WriteString("\nINSTRUCTIONS:\n")
	for i, rule := range rules {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rule)
	}

	return strings.TrimSpace(b.String())
}
