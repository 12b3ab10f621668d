package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// About renders the static about page.
func About(cfg SiteConfig) templ.Component {
	meta := PageMeta{
		Title:       "About | " + cfg.Name,
		Description: "What this site is and how the AI interior design generator works.",
		URL:         buildURL(cfg.URL, "about"),
	}
	return page(cfg, meta, "", func(b *bytes.Buffer) {
		b.WriteString(`<section class="page"><h1>About</h1>`)
		b.WriteString(`<p>` + esc(cfg.Name) + ` is a free tool that turns a room type, a design style, and a few details into a photorealistic interior design concept, powered by a hosted text-to-image model.</p>`)
		b.WriteString(`<p>We built it for homeowners, renters, and design enthusiasts who want to see a space before committing to it. Alongside the generator, the <a href="/blog/">blog</a> covers practical design guides for every room.</p>`)
		b.WriteString(`<p>Every image you generate is yours to download and use however you like.</p>`)
		b.WriteString("</section>")
	})
}

// Contact renders the contact page. When sent is true a thank-you note
// replaces the form.
func Contact(cfg SiteConfig, sent bool, csrfToken string) templ.Component {
	meta := PageMeta{
		Title:       "Contact | " + cfg.Name,
		Description: "Get in touch with questions, feedback, or partnership ideas.",
		URL:         buildURL(cfg.URL, "contact"),
	}
	return page(cfg, meta, "", func(b *bytes.Buffer) {
		b.WriteString(`<section class="page"><h1>Contact</h1>`)
		if sent {
			b.WriteString(`<p class="contact-thanks">Thanks for reaching out. We read every message.</p>`)
			b.WriteString("</section>")
			return
		}
		b.WriteString(`<p>Questions, feedback, or something broken? Send us a note.</p>`)
		b.WriteString(`<form method="post" action="/contact/">`)
		b.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
		b.WriteString(`<label for="name">Name</label><input id="name" name="name" type="text" required/>`)
		b.WriteString(`<label for="email">Email</label><input id="email" name="email" type="email" required/>`)
		b.WriteString(`<label for="message">Message</label><textarea id="message" name="message" rows="5" required></textarea>`)
		b.WriteString(`<button type="submit">Send</button>`)
		b.WriteString("</form></section>")
	})
}

// SitemapPage renders the human-readable sitemap at /sitemap/.
func SitemapPage(cfg SiteConfig, posts []Post) templ.Component {
	meta := PageMeta{
		Title: "Sitemap | " + cfg.Name,
		URL:   buildURL(cfg.URL, "sitemap"),
	}
	return page(cfg, meta, "", func(b *bytes.Buffer) {
		b.WriteString(`<section class="page"><h1>Sitemap</h1>`)
		b.WriteString(`<h2>Pages</h2><ul>`)
		b.WriteString(`<li><a href="/">Home</a></li>`)
		b.WriteString(`<li><a href="/blog/">Blog</a></li>`)
		b.WriteString(`<li><a href="/about/">About</a></li>`)
		b.WriteString(`<li><a href="/contact/">Contact</a></li>`)
		b.WriteString("</ul>")
		if len(posts) > 0 {
			b.WriteString(`<h2>Blog Posts</h2><ul>`)
			for _, p := range posts {
				b.WriteString(`<li><a href="` + esc(p.Link) + `">` + esc(p.Title) + `</a></li>`)
			}
			b.WriteString("</ul>")
		}
		b.WriteString("</section>")
	})
}
