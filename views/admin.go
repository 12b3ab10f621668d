package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// adminPage is a minimal shell for admin screens: no SEO meta, no site nav.
func adminPage(title string, body func(b *bytes.Buffer)) templ.Component {
	return component(func(b *bytes.Buffer) {
		b.WriteString("<!DOCTYPE html>")
		b.WriteString(`<html lang="en"><head>`)
		b.WriteString(`<meta charset="utf-8"/>`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		b.WriteString(`<meta name="robots" content="noindex"/>`)
		b.WriteString("<title>" + esc(title) + "</title>")
		b.WriteString(`<link rel="stylesheet" href="/public/styles.css"/>`)
		b.WriteString(`<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>`)
		b.WriteString("</head><body class=\"admin\">")
		body(b)
		b.WriteString("</body></html>")
	})
}

// AdminLogin renders the password prompt, with an error banner after a
// failed attempt.
func AdminLogin(showError bool, csrfToken string) templ.Component {
	return adminPage("Admin Login", func(b *bytes.Buffer) {
		b.WriteString(`<main class="admin-login"><h1>Admin</h1>`)
		if showError {
			b.WriteString(`<p class="error" role="alert">Wrong password.</p>`)
		}
		b.WriteString(`<form method="post" action="/admin/login/">`)
		b.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
		b.WriteString(`<label for="password">Password</label>`)
		b.WriteString(`<input id="password" name="password" type="password" autofocus required/>`)
		b.WriteString(`<button type="submit">Log in</button>`)
		b.WriteString("</form></main>")
	})
}

// AdminDashboard renders the post list and the editor form.
func AdminDashboard(posts []Post, message, csrfToken string) templ.Component {
	return adminPage("Admin Dashboard", func(b *bytes.Buffer) {
		b.WriteString(`<main class="admin-dashboard"><header><h1>Posts</h1>`)
		b.WriteString(`<nav><a href="/admin/images/">Images</a>`)
		b.WriteString(`<form method="post" action="/admin/logout/" class="inline">`)
		b.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
		b.WriteString(`<button type="submit">Log out</button></form></nav></header>`)
		if message != "" {
			b.WriteString(`<p class="notice">` + esc(message) + `</p>`)
		}

		b.WriteString(`<table class="post-table"><thead><tr><th>Title</th><th>Date</th><th>Status</th><th></th></tr></thead><tbody>`)
		for _, p := range posts {
			status := "draft"
			if p.Published {
				status = "published"
			}
			b.WriteString(`<tr><td><a hx-get="/admin/post/` + esc(PathEscape(p.Slug)) + `/" hx-target="#post-form" href="#post-form">` + esc(p.Title) + `</a></td>`)
			b.WriteString(`<td>` + esc(p.Date) + `</td><td>` + status + `</td>`)
			b.WriteString(`<td><button hx-delete="/admin/post/` + esc(PathEscape(p.Slug)) + `/" hx-confirm="Delete this post?" hx-headers='{"X-CSRF-Token":"` + esc(csrfToken) + `"}' hx-target="body">Delete</button></td></tr>`)
		}
		b.WriteString("</tbody></table>")

		b.WriteString(`<section id="post-form">`)
		writePostForm(b, Post{}, csrfToken)
		b.WriteString("</section></main>")
	})
}

// AdminFormPartial renders just the editor form, for HTMX swaps when a post
// is selected in the dashboard table.
func AdminFormPartial(post Post, csrfToken string) templ.Component {
	return component(func(b *bytes.Buffer) {
		writePostForm(b, post, csrfToken)
	})
}

func writePostForm(b *bytes.Buffer, post Post, csrfToken string) {
	heading := "New Post"
	if post.Slug != "" {
		heading = "Edit: " + post.Title
	}
	b.WriteString(`<h2>` + esc(heading) + `</h2>`)
	b.WriteString(`<form method="post" action="/admin/save/">`)
	b.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
	b.WriteString(`<label for="title">Title</label><input id="title" name="title" type="text" value="` + esc(post.Title) + `" required/>`)
	b.WriteString(`<label for="slug">Slug (blank to derive from title)</label><input id="slug" name="slug" type="text" value="` + esc(post.Slug) + `"/>`)
	b.WriteString(`<label for="date">Date (YYYY-MM-DD, blank for today)</label><input id="date" name="date" type="text" value="` + esc(post.Date) + `"/>`)
	b.WriteString(`<label for="author">Author</label><input id="author" name="author" type="text" value="` + esc(post.Author) + `"/>`)
	b.WriteString(`<label for="excerpt">Excerpt</label><textarea id="excerpt" name="excerpt" rows="2">` + esc(post.Excerpt) + `</textarea>`)
	b.WriteString(`<label for="featured_image">Featured image URL</label><input id="featured_image" name="featured_image" type="text" value="` + esc(post.FeaturedImage) + `"/>`)
	b.WriteString(`<label for="content">Content (markdown)</label><textarea id="content" name="content" rows="20">` + esc(post.Content) + `</textarea>`)
	b.WriteString(`<label class="checkbox"><input type="checkbox" name="published"`)
	if post.Published {
		b.WriteString(` checked`)
	}
	b.WriteString(`/> Published</label>`)
	b.WriteString(`<button type="submit">Save</button>`)
	b.WriteString("</form>")
}

// AdminImages renders the uploaded-image manager.
func AdminImages(images []Image, csrfToken string) templ.Component {
	return adminPage("Admin Images", func(b *bytes.Buffer) {
		b.WriteString(`<main class="admin-images"><header><h1>Images</h1><nav><a href="/admin/">Posts</a></nav></header>`)
		b.WriteString(`<form method="post" action="/admin/images/upload/" enctype="multipart/form-data">`)
		b.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
		b.WriteString(`<input type="file" name="image" accept="image/*" required/>`)
		b.WriteString(`<button type="submit">Upload</button>`)
		b.WriteString("</form>")
		b.WriteString(`<ul class="image-list">`)
		for _, img := range images {
			src := "/public/uploads/" + img.Filename
			b.WriteString(`<li><img src="` + esc(src) + `" alt="` + esc(img.Filename) + `" loading="lazy"/>`)
			b.WriteString(`<code>` + esc(src) + `</code>`)
			b.WriteString(`<button hx-delete="/admin/images/` + esc(PathEscape(img.Filename)) + `/" hx-confirm="Delete this image?" hx-headers='{"X-CSRF-Token":"` + esc(csrfToken) + `"}' hx-target="body">Delete</button></li>`)
		}
		b.WriteString("</ul></main>")
	})
}
