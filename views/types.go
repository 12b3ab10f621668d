package views

// SiteConfig holds site-wide settings populated from environment variables.
// Every handler passes this to templates so nothing is hardcoded.
type SiteConfig struct {
	Name        string // SITE_NAME  (default "AI Interior Design Generator")
	URL         string // SITE_URL   (default "http://localhost:3000")
	Description string // SITE_DESCRIPTION
	Author      string // SITE_AUTHOR
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	Image       string // og:image, optional
	OGType      string // "website" or "article"
	Date        string // article:published_time, posts only
}

// Post is the core content type stored in SQLite and rendered by templates.
// Posts are served at root-level slugs, so Link is "/" + slug + "/".
type Post struct {
	Slug          string
	Title         string
	Date          string // YYYY-MM-DD
	Author        string
	Excerpt       string
	FeaturedImage string
	Link          string
	Content       string
	Published     bool
}

// Image is an uploaded featured-image asset served from the static dir.
type Image struct {
	Filename   string
	Size       int
	UploadedAt string
}
