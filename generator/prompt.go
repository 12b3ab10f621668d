// Package generator composes prompts for, and manages the lifecycle of,
// requests against the hosted text-to-image service that produces interior
// design concepts.
package generator

import (
	"fmt"
	"strings"
)

// Option is one selectable catalog entry (room type, design style, image size).
type Option struct {
	ID   string
	Name string
}

// RoomTypes lists the rooms the generator form offers.
var RoomTypes = []Option{
	{ID: "living-room", Name: "Living Room"},
	{ID: "bedroom", Name: "Bedroom"},
	{ID: "kitchen", Name: "Kitchen"},
	{ID: "bathroom", Name: "Bathroom"},
	{ID: "office", Name: "Office"},
	{ID: "dining-room", Name: "Dining Room"},
}

// DesignStyles lists the interior design styles the generator form offers.
var DesignStyles = []Option{
	{ID: "modern", Name: "Modern"},
	{ID: "minimalist", Name: "Minimalist"},
	{ID: "scandinavian", Name: "Scandinavian"},
	{ID: "industrial", Name: "Industrial"},
	{ID: "bohemian", Name: "Bohemian"},
	{ID: "mid-century", Name: "Mid-Century"},
	{ID: "contemporary", Name: "Contemporary"},
	{ID: "traditional", Name: "Traditional"},
	{ID: "rustic", Name: "Rustic"},
	{ID: "art-deco", Name: "Art Deco"},
}

// ImageSizes lists the aspect-ratio tokens accepted by the image service.
var ImageSizes = []Option{
	{ID: "square_hd", Name: "Square HD"},
	{ID: "square", Name: "Square"},
	{ID: "portrait_4_3", Name: "Portrait 4:3"},
	{ID: "portrait_16_9", Name: "Portrait 16:9"},
	{ID: "landscape_4_3", Name: "Landscape 4:3"},
	{ID: "landscape_16_9", Name: "Landscape 16:9"},
}

const promptSuffix = ". Professional interior design photography, detailed textures, soft natural lighting, 8k, ultra-detailed."

// Selections holds the user's generator form choices.
type Selections struct {
	Room    string // RoomTypes id
	Style   string // DesignStyles id
	Details string // free text, optional
	Size    string // ImageSizes id
}

// DefaultSelections returns the form's initial state.
func DefaultSelections() Selections {
	return Selections{Room: "living-room", Style: "modern", Size: "landscape_16_9"}
}

// ComposePrompt deterministically formats the prompt sent to the image
// service. It is pure: the preview box and the actual request both call it
// and always agree. Unknown room or style ids fall back to the raw id.
func ComposePrompt(sel Selections) string {
	room := strings.ToLower(displayName(RoomTypes, sel.Room))
	style := strings.ToLower(displayName(DesignStyles, sel.Style))

	prompt := fmt.Sprintf("A photorealistic %s style %s", style, room)
	if details := strings.TrimSpace(sel.Details); details != "" {
		prompt += " with " + details
	}
	return prompt + promptSuffix
}

// NormalizeSize returns id if it is a known image size token, or the
// landscape default otherwise.
func NormalizeSize(id string) string {
	for _, o := range ImageSizes {
		if o.ID == id {
			return id
		}
	}
	return "landscape_16_9"
}

func displayName(opts []Option, id string) string {
	for _, o := range opts {
		if o.ID == id {
			return o.Name
		}
	}
	return id
}
