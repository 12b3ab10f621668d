package views

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/a-h/templ"

	"github.com/roihacks/interiorgen/generator"
)

// Home renders the landing page: the generator form with a live prompt
// preview, the paginated results panel, and the SEO copy below the fold.
func Home(cfg SiteConfig, sel generator.Selections, view generator.View, csrfToken string) templ.Component {
	meta := PageMeta{
		Title:       cfg.Name + " - Free AI Room Design Tool",
		Description: cfg.Description,
		URL:         buildURL(cfg.URL),
		OGType:      "website",
	}
	return page(cfg, meta, WebsiteJsonLD(cfg), func(b *bytes.Buffer) {
		b.WriteString(`<section class="hero">`)
		b.WriteString(`<h1>` + esc(cfg.Name) + `</h1>`)
		b.WriteString(`<p>Describe your room, pick a style, and get a photorealistic interior design concept in seconds.</p>`)
		b.WriteString("</section>")

		writeGeneratorForm(b, sel, csrfToken)

		b.WriteString(`<section id="generator-results">`)
		writeResults(b, sel, view, csrfToken)
		b.WriteString("</section>")

		b.WriteString(`<section class="seo-copy">`)
		b.WriteString(`<h2>How It Works</h2>`)
		b.WriteString(`<ol><li>Choose a room type and a design style.</li>`)
		b.WriteString(`<li>Add any details you want in the scene.</li>`)
		b.WriteString(`<li>Generate and download your design in seconds.</li></ol>`)
		b.WriteString(`<h2>Why Use an AI Interior Designer</h2>`)
		b.WriteString(`<p>Hiring an interior designer is expensive and slow. An AI generator lets you explore dozens of looks for your space before you commit to paint, furniture, or a contractor. Try a Scandinavian living room, an industrial kitchen, or an art deco bedroom without moving a single chair.</p>`)
		b.WriteString(`<p>Looking for inspiration first? Read our <a href="/blog/">interior design guides</a>.</p>`)
		b.WriteString("</section>")
	})
}

func writeGeneratorForm(b *bytes.Buffer, sel generator.Selections, csrfToken string) {
	b.WriteString(`<section class="generator-form">`)
	b.WriteString(`<form id="generator-form" hx-post="/api/generate/" hx-target="#generator-results" hx-swap="innerHTML" hx-indicator="#generate-spinner" hx-disabled-elt="#generate-btn">`)
	b.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)

	writeSelect(b, "room", "Room Type", generator.RoomTypes, sel.Room)
	writeSelect(b, "style", "Design Style", generator.DesignStyles, sel.Style)
	writeSelect(b, "size", "Image Size", generator.ImageSizes, sel.Size)

	b.WriteString(`<label for="details">Details (optional)</label>`)
	b.WriteString(`<textarea id="details" name="details" rows="2" placeholder="e.g. large windows, green plants, a reading nook"` + promptTriggerAttrs() + `>` + esc(sel.Details) + `</textarea>`)

	b.WriteString(`<div class="prompt-preview"><span>Prompt:</span> <output id="prompt-preview">` + esc(generator.ComposePrompt(sel)) + `</output></div>`)

	b.WriteString(`<button id="generate-btn" type="submit">Generate Design</button>`)
	b.WriteString(`<img id="generate-spinner" class="htmx-indicator" src="/public/spinner.svg" alt="Generating..."/>`)
	b.WriteString("</form></section>")
}

// promptTriggerAttrs wires a form control to refresh the prompt preview on
// change, sending the whole form so ComposePrompt sees every field.
func promptTriggerAttrs() string {
	return ` hx-get="/api/generate/prompt/" hx-trigger="change, keyup delay:300ms" hx-target="#prompt-preview" hx-include="closest form"`
}

func writeSelect(b *bytes.Buffer, name, label string, opts []generator.Option, selected string) {
	b.WriteString(`<label for="` + name + `">` + esc(label) + `</label>`)
	b.WriteString(`<select id="` + name + `" name="` + name + `"` + promptTriggerAttrs() + `>`)
	for _, o := range opts {
		b.WriteString(`<option value="` + esc(o.ID) + `"`)
		if o.ID == selected {
			b.WriteString(` selected`)
		}
		b.WriteString(`>` + esc(o.Name) + `</option>`)
	}
	b.WriteString("</select>")
}

// GeneratorResults renders only the results panel, for HTMX swaps after a
// submit or a page change.
func GeneratorResults(sel generator.Selections, view generator.View, csrfToken string) templ.Component {
	return component(func(b *bytes.Buffer) {
		writeResults(b, sel, view, csrfToken)
	})
}

func writeResults(b *bytes.Buffer, sel generator.Selections, view generator.View, csrfToken string) {
	if view.State == generator.StateError && view.Error != "" {
		b.WriteString(`<div class="generate-error" role="alert">` + esc(view.Error) + `</div>`)
	}
	if view.Total == 0 {
		if view.State == generator.StateIdle {
			b.WriteString(`<p class="results-empty">Your generated designs will appear here.</p>`)
		}
		return
	}

	b.WriteString(`<div class="results-grid">`)
	for _, img := range view.Images {
		b.WriteString(`<figure class="result-card">`)
		b.WriteString(`<img src="` + esc(img.URL) + `" alt="` + esc(img.Prompt) + `" loading="lazy"/>`)
		downloadHref := fmt.Sprintf("/api/generate/download/?index=%d&room=%s&style=%s",
			img.Index, PathEscape(sel.Room), PathEscape(sel.Style))
		b.WriteString(`<figcaption><a href="` + esc(downloadHref) + `" download>Download</a></figcaption>`)
		b.WriteString("</figure>")
	}
	b.WriteString("</div>")

	if view.PageCount > 1 {
		b.WriteString(`<nav class="results-pager">`)
		writePagerButton(b, "prev", "Previous", view.Page <= 1)
		b.WriteString(`<span>Page ` + strconv.Itoa(view.Page) + ` of ` + strconv.Itoa(view.PageCount) + `</span>`)
		writePagerButton(b, "next", "Next", view.Page >= view.PageCount)
		b.WriteString("</nav>")
	}
}

// Pager buttons include the generator form so the handler sees the current
// selections (and the CSRF token from its hidden field).
func writePagerButton(b *bytes.Buffer, dir, label string, disabled bool) {
	b.WriteString(`<button hx-post="/api/generate/page/" hx-target="#generator-results" hx-swap="innerHTML"`)
	b.WriteString(` hx-vals='{"dir":"` + dir + `"}' hx-include="#generator-form"`)
	if disabled {
		b.WriteString(` disabled`)
	}
	b.WriteString(`>` + esc(label) + `</button>`)
}
