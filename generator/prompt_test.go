package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposePromptExact(t *testing.T) {
	sel := Selections{Room: "bedroom", Style: "scandinavian", Details: "large windows"}
	want := "A photorealistic scandinavian style bedroom with large windows. Professional interior design photography, detailed textures, soft natural lighting, 8k, ultra-detailed."
	assert.Equal(t, want, ComposePrompt(sel))
}

func TestComposePromptDeterministic(t *testing.T) {
	sel := Selections{Room: "kitchen", Style: "industrial", Details: "exposed brick"}
	first := ComposePrompt(sel)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComposePrompt(sel))
	}
}

func TestComposePromptOmitsEmptyDetails(t *testing.T) {
	for _, details := range []string{"", "   ", "\t\n"} {
		got := ComposePrompt(Selections{Room: "office", Style: "modern", Details: details})
		assert.NotContains(t, got, " with ", "details %q", details)
		assert.Contains(t, got, "A photorealistic modern style office. Professional")
	}
}

func TestComposePromptTrimsDetails(t *testing.T) {
	got := ComposePrompt(Selections{Room: "bathroom", Style: "rustic", Details: "  marble tiles  "})
	assert.Contains(t, got, "bathroom with marble tiles. Professional")
}

func TestComposePromptUnknownIDsFallBack(t *testing.T) {
	got := ComposePrompt(Selections{Room: "attic", Style: "brutalist"})
	assert.Contains(t, got, "A photorealistic brutalist style attic")
}

func TestComposePromptUsesDisplayNames(t *testing.T) {
	// Multi-word catalog entries use the lowercased display name, not the id.
	got := ComposePrompt(Selections{Room: "living-room", Style: "mid-century"})
	assert.Contains(t, got, "A photorealistic mid-century style living room")

	got = ComposePrompt(Selections{Room: "dining-room", Style: "art-deco"})
	assert.Contains(t, got, "A photorealistic art deco style dining room")
}

func TestNormalizeSize(t *testing.T) {
	assert.Equal(t, "square_hd", NormalizeSize("square_hd"))
	assert.Equal(t, "landscape_16_9", NormalizeSize("bogus"))
	assert.Equal(t, "landscape_16_9", NormalizeSize(""))
}
