// Package views renders every page of the site as hand-written templ
// components. Each component builds its HTML into a buffer and is safe to
// render concurrently.
package views

import (
	"bytes"
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

func esc(s string) string {
	return html.EscapeString(s)
}

// component wraps a buffer-building function as a templ.Component.
func component(build func(b *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		build(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// page renders the full HTML shell around a body builder. jsonLD, when
// non-empty, is embedded verbatim as an application/ld+json block, so it must
// come from json.Marshal, never from user input.
func page(cfg SiteConfig, meta PageMeta, jsonLD string, body func(b *bytes.Buffer)) templ.Component {
	return component(func(b *bytes.Buffer) {
		title := meta.Title
		if title == "" {
			title = cfg.Name
		}
		desc := meta.Description
		if desc == "" {
			desc = cfg.Description
		}
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}

		b.WriteString("<!DOCTYPE html>")
		b.WriteString(`<html lang="en"><head>`)
		b.WriteString(`<meta charset="utf-8"/>`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		b.WriteString("<title>" + esc(title) + "</title>")
		if desc != "" {
			b.WriteString(`<meta name="description" content="` + esc(desc) + `"/>`)
		}
		if cfg.Author != "" {
			b.WriteString(`<meta name="author" content="` + esc(cfg.Author) + `"/>`)
		}
		if meta.URL != "" {
			b.WriteString(`<link rel="canonical" href="` + esc(meta.URL) + `"/>`)
			b.WriteString(`<meta property="og:url" content="` + esc(meta.URL) + `"/>`)
		}
		b.WriteString(`<meta property="og:type" content="` + esc(ogType) + `"/>`)
		b.WriteString(`<meta property="og:title" content="` + esc(title) + `"/>`)
		if desc != "" {
			b.WriteString(`<meta property="og:description" content="` + esc(desc) + `"/>`)
		}
		b.WriteString(`<meta property="og:site_name" content="` + esc(cfg.Name) + `"/>`)
		if meta.Image != "" {
			b.WriteString(`<meta property="og:image" content="` + esc(meta.Image) + `"/>`)
		}
		if meta.Date != "" {
			b.WriteString(`<meta property="article:published_time" content="` + esc(meta.Date) + `"/>`)
		}
		b.WriteString(`<meta name="twitter:card" content="summary_large_image"/>`)
		b.WriteString(`<meta name="twitter:title" content="` + esc(title) + `"/>`)
		if desc != "" {
			b.WriteString(`<meta name="twitter:description" content="` + esc(desc) + `"/>`)
		}
		b.WriteString(`<link rel="icon" href="/favicon.svg" type="image/svg+xml"/>`)
		b.WriteString(`<link rel="alternate" type="application/rss+xml" title="` + esc(cfg.Name) + `" href="/feed.xml"/>`)
		b.WriteString(`<link rel="stylesheet" href="/public/styles.css"/>`)
		b.WriteString(`<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>`)
		if jsonLD != "" {
			b.WriteString(`<script type="application/ld+json">` + jsonLD + `</script>`)
		}
		b.WriteString("</head><body>")

		b.WriteString(`<header class="site-header"><nav>`)
		b.WriteString(`<a class="brand" href="/">` + esc(cfg.Name) + `</a>`)
		b.WriteString(`<a href="/">Home</a>`)
		b.WriteString(`<a href="/blog/">Blog</a>`)
		b.WriteString(`<a href="/about/">About</a>`)
		b.WriteString(`<a href="/contact/">Contact</a>`)
		b.WriteString("</nav></header>")

		b.WriteString(`<main class="site-main">`)
		body(b)
		b.WriteString("</main>")

		b.WriteString(`<footer class="site-footer">`)
		b.WriteString(`<p>&copy; ` + esc(cfg.Name) + `</p>`)
		b.WriteString(`<nav><a href="/blog/">Blog</a> <a href="/about/">About</a> <a href="/contact/">Contact</a> <a href="/sitemap/">Sitemap</a> <a href="/feed.xml">RSS</a></nav>`)
		b.WriteString("</footer>")

		b.WriteString("</body></html>")
	})
}

// NotFound renders the styled 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	return page(cfg, PageMeta{Title: "Page Not Found"}, "", func(b *bytes.Buffer) {
		b.WriteString(`<section class="error-page"><h1>Page not found</h1>`)
		b.WriteString(`<p>The page you are looking for does not exist.</p>`)
		b.WriteString(`<p><a href="/">Back to the generator</a> or <a href="/blog/">browse the blog</a>.</p></section>`)
	})
}

// ServerError renders the styled 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	return page(cfg, PageMeta{Title: "Something Went Wrong"}, "", func(b *bytes.Buffer) {
		b.WriteString(`<section class="error-page"><h1>Something went wrong</h1>`)
		b.WriteString(`<p>An unexpected error occurred. Please try again in a moment.</p></section>`)
	})
}
