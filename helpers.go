package interiorgen

import (
	"net/url"
	"path"
	"strings"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// RelatedPosts returns up to max of the newest posts other than current.
// posts must already be sorted newest first.
func RelatedPosts(current Post, posts []Post, max int) []Post {
	var related []Post
	for _, p := range posts {
		if p.Slug == current.Slug {
			continue
		}
		related = append(related, p)
		if len(related) == max {
			break
		}
	}
	return related
}

// Paginate slices posts for a 1-based page of the given size and returns the
// slice, the clamped page number, and the page count.
func Paginate(posts []Post, page, perPage int) ([]Post, int, int) {
	if perPage < 1 {
		perPage = 1
	}
	pageCount := (len(posts) + perPage - 1) / perPage
	if pageCount == 0 {
		return nil, 1, 0
	}
	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}
	start := (page - 1) * perPage
	end := start + perPage
	if end > len(posts) {
		end = len(posts)
	}
	return posts[start:end], page, pageCount
}
