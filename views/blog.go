package views

import (
	"bytes"
	"strconv"

	"github.com/a-h/templ"

	"github.com/roihacks/interiorgen/markdown"
)

// BlogList renders the paginated post index at /blog/.
func BlogList(cfg SiteConfig, posts []Post, pageNum, pageCount int) templ.Component {
	meta := PageMeta{
		Title:       "Interior Design Blog | " + cfg.Name,
		Description: "Guides, ideas, and inspiration for designing every room in your home.",
		URL:         buildURL(cfg.URL, "blog"),
		OGType:      "website",
	}
	return page(cfg, meta, "", func(b *bytes.Buffer) {
		b.WriteString(`<section class="blog-list"><h1>Interior Design Blog</h1>`)
		if len(posts) == 0 {
			b.WriteString(`<p>No posts yet. Check back soon.</p>`)
		}
		for _, p := range posts {
			b.WriteString(`<article class="post-card">`)
			if p.FeaturedImage != "" {
				b.WriteString(`<a href="` + esc(p.Link) + `"><img src="` + esc(p.FeaturedImage) + `" alt="` + esc(p.Title) + `" loading="lazy"/></a>`)
			}
			b.WriteString(`<h2><a href="` + esc(p.Link) + `">` + esc(p.Title) + `</a></h2>`)
			b.WriteString(`<p class="post-meta"><time datetime="` + esc(p.Date) + `">` + esc(FormatDate(p.Date)) + `</time> &middot; ` + strconv.Itoa(ReadingTime(p.Content)) + ` min read</p>`)
			if p.Excerpt != "" {
				b.WriteString(`<p>` + esc(p.Excerpt) + `</p>`)
			}
			b.WriteString(`<a class="read-more" href="` + esc(p.Link) + `">Read more</a>`)
			b.WriteString("</article>")
		}
		writeBlogPager(b, pageNum, pageCount)
		b.WriteString("</section>")
	})
}

func writeBlogPager(b *bytes.Buffer, pageNum, pageCount int) {
	if pageCount <= 1 {
		return
	}
	b.WriteString(`<nav class="blog-pager">`)
	if pageNum > 1 {
		b.WriteString(`<a href="/blog/?page=` + strconv.Itoa(pageNum-1) + `">&larr; Newer</a>`)
	}
	b.WriteString(`<span>Page ` + strconv.Itoa(pageNum) + ` of ` + strconv.Itoa(pageCount) + `</span>`)
	if pageNum < pageCount {
		b.WriteString(`<a href="/blog/?page=` + strconv.Itoa(pageNum+1) + `">Older &rarr;</a>`)
	}
	b.WriteString("</nav>")
}

// PostPage renders one article: table of contents, rendered markdown body,
// share links, a generator call-to-action, and the latest related posts.
func PostPage(cfg SiteConfig, post Post, related []Post) templ.Component {
	postURL := buildURL(cfg.URL, post.Slug)
	meta := PageMeta{
		Title:       post.Title + " | " + cfg.Name,
		Description: post.Excerpt,
		URL:         postURL,
		Image:       post.FeaturedImage,
		OGType:      "article",
		Date:        post.Date,
	}
	toc := markdown.ExtractTOC(post.Content)
	author := post.Author
	if author == "" {
		author = cfg.Author
	}
	return page(cfg, meta, BlogPostingJsonLD(cfg, post), func(b *bytes.Buffer) {
		b.WriteString(`<article class="post">`)
		b.WriteString(`<header><h1>` + esc(post.Title) + `</h1>`)
		b.WriteString(`<p class="post-meta"><time datetime="` + esc(post.Date) + `">` + esc(FormatDate(post.Date)) + `</time>`)
		if author != "" {
			b.WriteString(` &middot; ` + esc(author))
		}
		b.WriteString(` &middot; ` + strconv.Itoa(ReadingTime(post.Content)) + ` min read</p></header>`)

		if post.FeaturedImage != "" {
			b.WriteString(`<img class="featured" src="` + esc(post.FeaturedImage) + `" alt="` + esc(post.Title) + `"/>`)
		}

		if len(toc) > 0 {
			b.WriteString(`<nav class="toc"><h2>Table of Contents</h2><ul>`)
			for _, item := range toc {
				b.WriteString(`<li class="toc-level-` + strconv.Itoa(item.Level) + `"><a href="#` + esc(item.ID) + `">` + esc(item.Text) + `</a></li>`)
			}
			b.WriteString("</ul></nav>")
		}

		b.WriteString(`<div class="post-body">`)
		if err := markdown.Render(b, markdown.StripLeadingTitle(post.Content)); err != nil {
			b.WriteString(`<p>` + esc(post.Excerpt) + `</p>`)
		}
		b.WriteString("</div>")

		b.WriteString(`<aside class="share">`)
		b.WriteString(`<span>Share:</span>`)
		for _, n := range []struct{ id, label string }{{"x", "X"}, {"facebook", "Facebook"}, {"linkedin", "LinkedIn"}} {
			b.WriteString(`<a href="` + esc(ShareURL(n.id, postURL, post.Title)) + `" target="_blank" rel="noopener noreferrer">` + n.label + `</a> `)
		}
		b.WriteString("</aside>")

		b.WriteString(`<aside class="cta">`)
		b.WriteString(`<h2>Design Your Own Room</h2>`)
		b.WriteString(`<p>Turn these ideas into a photorealistic concept of your own space.</p>`)
		b.WriteString(`<a class="cta-button" href="/">Try the AI generator</a>`)
		b.WriteString("</aside>")

		b.WriteString("</article>")

		if len(related) > 0 {
			b.WriteString(`<section class="related"><h2>More From the Blog</h2><ul>`)
			for _, p := range related {
				b.WriteString(`<li><a href="` + esc(p.Link) + `">` + esc(p.Title) + `</a> <time datetime="` + esc(p.Date) + `">` + esc(FormatDate(p.Date)) + `</time></li>`)
			}
			b.WriteString("</ul></section>")
		}
	})
}
