package markdown

import (
	"regexp"
	"strings"
)

// TocItem is one entry of a post's table of contents.
type TocItem struct {
	ID    string // anchor id, matches the rendered heading's id attribute
	Text  string
	Level int // 2-4
}

var (
	// headingLineRe matches heading lines of levels 2-4. Level 1 is reserved
	// for the document title and levels 5+ are too deep to index.
	headingLineRe = regexp.MustCompile(`(?m)^(#{2,4})\s+(.+)$`)

	// leadingTitleRe matches a top-level heading line anywhere in the document;
	// only the first occurrence is stripped.
	leadingTitleRe = regexp.MustCompile(`(?m)^#\s+.*$`)

	slugStripRe  = regexp.MustCompile(`[^\w\s-]`)
	slugHyphenRe = regexp.MustCompile(`[\s_-]+`)
	slugTrimRe   = regexp.MustCompile(`^-+|-+$`)
)

// Slug derives a URL-safe anchor id from heading text: lowercase, strip
// characters outside word/space/hyphen, collapse whitespace and hyphen runs
// into single hyphens, and trim leading/trailing hyphens. Both the renderer
// and ExtractTOC use this one function so in-page anchors always resolve.
// Slug is idempotent: applying it to its own output returns the same string.
func Slug(s string) string {
	s = strings.ToLower(s)
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugHyphenRe.ReplaceAllString(s, "-")
	return slugTrimRe.ReplaceAllString(s, "")
}

// ExtractTOC scans raw markdown for heading lines of levels 2-4 and returns
// them in document order. It is a naive line scan: headings inside fenced
// code blocks are not excluded, matching how articles have always rendered.
func ExtractTOC(md string) []TocItem {
	matches := headingLineRe.FindAllStringSubmatch(md, -1)
	if len(matches) == 0 {
		return nil
	}
	items := make([]TocItem, 0, len(matches))
	for _, m := range matches {
		text := strings.TrimSpace(m[2])
		items = append(items, TocItem{
			ID:    Slug(text),
			Text:  text,
			Level: len(m[1]),
		})
	}
	return items
}

// StripLeadingTitle removes the first top-level heading line from md so the
// post title is not rendered twice. The rest of the document is untouched.
func StripLeadingTitle(md string) string {
	loc := leadingTitleRe.FindStringIndex(md)
	if loc == nil {
		return strings.TrimSpace(md)
	}
	return strings.TrimSpace(md[:loc[0]] + md[loc[1]:])
}
