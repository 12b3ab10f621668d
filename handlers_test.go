package interiorgen

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

func testApp(t *testing.T) *App {
	t.Helper()
	cfg := SiteConfig{
		URL:           "http://example.com",
		DatabasePath:  filepath.Join(t.TempDir(), "site.db"),
		AdminPassword: "test-password",
		SessionSecret: "test-secret",
	}
	a := New(cfg, WithStaticDir(t.TempDir()))
	if err := a.init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func (a *App) seedPost(t *testing.T, p Post) {
	t.Helper()
	if err := a.Store.SavePost(p); err != nil {
		t.Fatalf("SavePost(%s): %v", p.Slug, err)
	}
	a.Cache.Invalidate()
}

func get(a *App, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func TestHomeRendersGenerator(t *testing.T) {
	a := testApp(t)

	rec := get(a, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Generate Design", "Living Room", "Scandinavian", "prompt-preview"} {
		if !strings.Contains(body, want) {
			t.Errorf("home page missing %q", want)
		}
	}
}

func TestUnknownSlugRedirectsToBlog(t *testing.T) {
	a := testApp(t)

	rec := get(a, "/no-such-post/")
	if rec.Code != http.StatusFound {
		t.Fatalf("GET /no-such-post/ = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/blog/" {
		t.Errorf("Location = %q, want /blog/", loc)
	}
}

func TestUnknownSlugWithPageRedirectsToBlogPage(t *testing.T) {
	a := testApp(t)

	rec := get(a, "/no-such-post/?page=2")
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/blog/?page=2" {
		t.Errorf("Location = %q, want /blog/?page=2", loc)
	}
}

func TestPostPageRendersMarkdown(t *testing.T) {
	a := testApp(t)
	a.seedPost(t, Post{
		Slug:      "bedroom-lighting-guide",
		Title:     "Bedroom Lighting Guide",
		Date:      "2025-05-01",
		Excerpt:   "Layered lighting for better sleep.",
		Content:   "# Bedroom Lighting Guide\n\n## Layered Lighting\n\nStart with three layers.",
		Published: true,
	})

	rec := get(a, "/bedroom-lighting-guide/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `id="layered-lighting"`) {
		t.Error("rendered body missing heading anchor")
	}
	if !strings.Contains(body, "Table of Contents") {
		t.Error("post page missing table of contents")
	}
	if !strings.Contains(body, "min read") {
		t.Error("post page missing reading time")
	}
	if strings.Count(body, "Bedroom Lighting Guide</h1>") != 1 {
		t.Error("leading markdown title not stripped from body")
	}
}

func TestBlogPagination(t *testing.T) {
	a := testApp(t)
	for i := 0; i < 7; i++ {
		a.seedPost(t, Post{
			Slug:      fmt.Sprintf("post-%d", i),
			Title:     fmt.Sprintf("Post %d", i),
			Date:      fmt.Sprintf("2025-01-%02d", i+1),
			Content:   "x",
			Published: true,
		})
	}

	rec := get(a, "/blog/?page=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Page 2 of 2") {
		t.Error("blog page 2 missing pager state")
	}

	// Out-of-range pages clamp instead of 404ing
	rec = get(a, "/blog/?page=99")
	if rec.Code != http.StatusOK {
		t.Errorf("out-of-range page = %d, want 200", rec.Code)
	}
}

func TestSitemapListsRootLevelSlugs(t *testing.T) {
	a := testApp(t)
	a.seedPost(t, Post{Slug: "modern-kitchen-ideas", Title: "Modern Kitchen Ideas", Date: "2025-04-01", Content: "x", Published: true})

	rec := get(a, "/sitemap.xml")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"http://example.com/modern-kitchen-ideas/",
		"http://example.com/blog/",
		"http://example.com/about/",
		"http://example.com/contact/",
	} {
		if !strings.Contains(body, "<loc>"+want+"</loc>") {
			t.Errorf("sitemap missing %s", want)
		}
	}
}

func TestFeed(t *testing.T) {
	a := testApp(t)
	a.seedPost(t, Post{Slug: "cozy-reading-nooks", Title: "Cozy Reading Nooks", Date: "2025-04-02", Excerpt: "Small corners, big comfort.", Content: "x", Published: true})

	rec := get(a, "/feed.xml")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Cozy Reading Nooks") || !strings.Contains(body, "Small corners, big comfort.") {
		t.Error("feed missing post title or excerpt")
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "rss") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRobots(t *testing.T) {
	a := testApp(t)

	rec := get(a, "/robots.txt")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Disallow: /admin/") {
		t.Error("robots.txt missing admin disallow")
	}
	if !strings.Contains(body, "Sitemap: http://example.com/sitemap.xml") {
		t.Error("robots.txt missing sitemap line")
	}
}

func TestPromptPreview(t *testing.T) {
	a := testApp(t)

	rec := get(a, "/api/generate/prompt/?room=bedroom&style=scandinavian")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	want := "A photorealistic scandinavian style bedroom. Professional interior design photography, detailed textures, soft natural lighting, 8k, ultra-detailed."
	if rec.Body.String() != want {
		t.Errorf("prompt preview = %q, want %q", rec.Body.String(), want)
	}
}

func TestTrailingSlashRedirect(t *testing.T) {
	a := testApp(t)

	rec := get(a, "/about")
	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("GET /about = %d, want 301", rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.HasSuffix(loc, "/about/") {
		t.Errorf("Location = %q", loc)
	}
}

func TestAdminRequiresLogin(t *testing.T) {
	a := testApp(t)

	rec := get(a, "/admin/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Password") {
		t.Error("admin page without session is not the login form")
	}
}

func TestStaticPages(t *testing.T) {
	a := testApp(t)
	a.seedPost(t, Post{Slug: "entry", Title: "Entry", Date: "2025-01-01", Content: "x", Published: true})

	for _, tt := range []struct {
		path string
		want string
	}{
		{"/about/", "About"},
		{"/contact/", "Contact"},
		{"/sitemap/", "Entry"},
	} {
		rec := get(a, tt.path)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d", tt.path, rec.Code)
			continue
		}
		if !strings.Contains(rec.Body.String(), tt.want) {
			t.Errorf("GET %s missing %q", tt.path, tt.want)
		}
	}
}
