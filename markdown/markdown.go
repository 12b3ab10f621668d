// Package markdown renders blog post bodies to HTML as templ components.
// It builds on goldmark with article-specific node handling: heading anchor
// ids, lazy images that hide themselves on load failure, YouTube links and
// the youtube:<id> paragraph shorthand rendered as embedded players, and
// bare image URLs promoted to images.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var (
	// youtubeRe matches youtube.com/watch?v=, youtube.com/embed/,
	// youtube.com/v/ and youtu.be/ URLs and captures the 11-character video id.
	youtubeRe = regexp.MustCompile(`(?i)(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)

	// imageURLRe matches hrefs ending in a common raster image extension.
	imageURLRe = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp)$`)

	// bareImageURLRe matches a paragraph whose entire content is an image URL.
	bareImageURLRe = regexp.MustCompile(`(?i)^https?://\S+\.(jpg|jpeg|png|gif|webp)$`)
)

const youtubeToken = "youtube:"

var engine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		renderer.WithNodeRenderers(util.Prioritized(&articleRenderer{}, 100)),
	),
)

// Article returns a templ.Component that renders md as article HTML.
// A single leading top-level heading is stripped first; the page chrome
// renders the post title itself.
func Article(md string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Render(w, StripLeadingTitle(md))
	})
}

// Render writes the HTML representation of md to w. Malformed markdown is
// rendered best-effort; goldmark never fails on plain text input.
func Render(w io.Writer, md string) error {
	return engine.Convert([]byte(md), w)
}

// YouTubeVideoID extracts the 11-character video id from a YouTube URL,
// or returns "" if the URL is not a recognized YouTube form.
func YouTubeVideoID(raw string) string {
	m := youtubeRe.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return m[1]
}

// articleRenderer overrides goldmark's default rendering for the node kinds
// that carry article-specific behavior. Everything else falls through to the
// default HTML renderer. Special-case checks run in a fixed order: YouTube
// before image-link before plain link, and shorthand paragraphs before the
// default paragraph.
type articleRenderer struct{}

func (r *articleRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.renderHeading)
	reg.Register(ast.KindImage, r.renderImage)
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindAutoLink, r.renderAutoLink)
	reg.Register(ast.KindParagraph, r.renderParagraph)
}

func (r *articleRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	if !entering {
		fmt.Fprintf(w, "</h%d>\n", n.Level)
		return ast.WalkContinue, nil
	}
	// Levels 2-4 get anchor ids so the table of contents can jump to them.
	// The id must match what ExtractTOC computes for the same heading text.
	if n.Level >= 2 && n.Level <= 4 {
		fmt.Fprintf(w, `<h%d id="%s">`, n.Level, Slug(nodeText(n, source)))
	} else {
		fmt.Fprintf(w, "<h%d>", n.Level)
	}
	return ast.WalkContinue, nil
}

func (r *articleRenderer) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Image)
	writeImage(w, string(n.Destination), nodeText(n, source))
	return ast.WalkSkipChildren, nil
}

func (r *articleRenderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Link)
	dest := string(n.Destination)
	label := nodeText(n, source)

	if videoID := YouTubeVideoID(dest); videoID != "" {
		if entering {
			writeYouTube(w, videoID)
		}
		return ast.WalkSkipChildren, nil
	}
	if linkIsImage(dest, label) {
		if entering {
			alt := label
			if alt == dest {
				alt = ""
			}
			writeImage(w, dest, alt)
		}
		return ast.WalkSkipChildren, nil
	}

	if !entering {
		w.WriteString("</a>")
		return ast.WalkContinue, nil
	}
	href := safeURL(dest)
	if href == "" {
		// Unsafe scheme: keep the link text, drop the href.
		w.WriteString("<a>")
		return ast.WalkContinue, nil
	}
	if strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://") {
		fmt.Fprintf(w, `<a href="%s" target="_blank" rel="noopener noreferrer">`, href)
	} else {
		fmt.Fprintf(w, `<a href="%s">`, href)
	}
	return ast.WalkContinue, nil
}

func (r *articleRenderer) renderAutoLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.AutoLink)
	dest := string(n.URL(source))
	if videoID := YouTubeVideoID(dest); videoID != "" {
		writeYouTube(w, videoID)
		return ast.WalkContinue, nil
	}
	if imageURLRe.MatchString(dest) {
		writeImage(w, dest, "")
		return ast.WalkContinue, nil
	}
	label := html.EscapeString(string(n.Label(source)))
	href := safeURL(dest)
	if href == "" {
		w.WriteString(label)
		return ast.WalkContinue, nil
	}
	fmt.Fprintf(w, `<a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`, href, label)
	return ast.WalkContinue, nil
}

func (r *articleRenderer) renderParagraph(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Paragraph)
	raw := paragraphText(n, source)

	// Shorthand paragraphs are checked before the default fallback: a bare
	// image URL becomes an image, and the youtube:<id> authoring token
	// becomes an embedded player.
	if bareImageURLRe.MatchString(raw) {
		if entering {
			writeImage(w, raw, "")
		}
		return ast.WalkSkipChildren, nil
	}
	if strings.HasPrefix(raw, youtubeToken) {
		if entering {
			writeYouTube(w, strings.TrimPrefix(raw, youtubeToken))
		}
		return ast.WalkSkipChildren, nil
	}

	if entering {
		w.WriteString("<p>")
	} else {
		w.WriteString("</p>\n")
	}
	return ast.WalkContinue, nil
}

// linkIsImage reports whether a link to an image file should render as an
// image: the text is empty, equal to the URL, the literal "Image"/"image",
// or too short to be a meaningful label.
func linkIsImage(dest, label string) bool {
	if !imageURLRe.MatchString(dest) {
		return false
	}
	return label == "" || label == dest || label == "Image" || label == "image" || len(label) < 10
}

func writeImage(w io.Writer, src, alt string) {
	href := safeURL(src)
	if href == "" {
		return
	}
	if alt == "" {
		alt = "Blog post image"
	}
	fmt.Fprintf(w, `<figure class="article-image"><img src="%s" alt="%s" loading="lazy" onerror="this.style.display='none'"/></figure>`,
		href, html.EscapeString(alt))
}

func writeYouTube(w io.Writer, videoID string) {
	fmt.Fprintf(w, `<div class="video-embed"><iframe width="100%%" height="400" src="https://www.youtube.com/embed/%s" title="YouTube video player" frameborder="0" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture" allowfullscreen></iframe></div>`,
		html.EscapeString(videoID))
}

// safeURL validates a URL for use in an HTML attribute. Relative paths,
// fragments, http(s) and mailto are allowed; anything else is rejected.
func safeURL(raw string) string {
	val := strings.TrimSpace(raw)
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto":
		return html.EscapeString(val)
	default:
		return ""
	}
}

// nodeText collects the plain text content of a node's subtree.
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
		case *ast.String:
			b.Write(t.Value)
		default:
			b.WriteString(nodeText(c, source))
		}
	}
	return b.String()
}

// paragraphText returns the trimmed raw source text of a paragraph.
func paragraphText(n *ast.Paragraph, source []byte) string {
	var b bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.Write(segValue(lines.At(i), source))
	}
	return strings.TrimSpace(b.String())
}

func segValue(seg text.Segment, source []byte) []byte {
	return bytes.TrimRight(seg.Value(source), "\n")
}
