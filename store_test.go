package interiorgen

import (
	"path/filepath"
	"testing"
	"time"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "site.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreSaveAndGet(t *testing.T) {
	s := testStore(t)

	post := Post{
		Slug:          "modern-living-room-ideas",
		Title:         "Modern Living Room Ideas",
		Date:          "2025-06-01",
		Author:        "Jamie",
		Excerpt:       "Ten looks for a modern living room.",
		FeaturedImage: "/public/uploads/living.jpg",
		Content:       "# Modern Living Room Ideas\n\n## Start With Light\n\nSome text.",
		Published:     true,
	}
	if err := s.SavePost(post); err != nil {
		t.Fatalf("SavePost: %v", err)
	}

	got, err := s.GetPost("modern-living-room-ideas")
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if got.Title != post.Title || got.Author != post.Author || got.Excerpt != post.Excerpt {
		t.Errorf("round trip mismatch: got %+v", got)
	}
	if got.Link != "/modern-living-room-ideas/" {
		t.Errorf("Link = %q, want root-level slug link", got.Link)
	}
}

func TestStoreUnpublishedHidden(t *testing.T) {
	s := testStore(t)

	if err := s.SavePost(Post{Slug: "draft", Title: "Draft", Date: "2025-01-01", Content: "x", Published: false}); err != nil {
		t.Fatalf("SavePost: %v", err)
	}

	if _, err := s.GetPost("draft"); err == nil {
		t.Error("GetPost returned a draft")
	}
	if _, err := s.GetPostAny("draft"); err != nil {
		t.Errorf("GetPostAny: %v", err)
	}

	posts, err := s.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("ListPosts returned %d posts, want 0", len(posts))
	}
	all, err := s.ListAllPosts()
	if err != nil {
		t.Fatalf("ListAllPosts: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("ListAllPosts returned %d posts, want 1", len(all))
	}
}

func TestStoreListNewestFirst(t *testing.T) {
	s := testStore(t)

	for _, p := range []Post{
		{Slug: "older", Title: "Older", Date: "2025-01-01", Content: "x", Published: true},
		{Slug: "newest", Title: "Newest", Date: "2025-03-01", Content: "x", Published: true},
		{Slug: "middle", Title: "Middle", Date: "2025-02-01", Content: "x", Published: true},
	} {
		if err := s.SavePost(p); err != nil {
			t.Fatalf("SavePost(%s): %v", p.Slug, err)
		}
	}

	posts, err := s.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	want := []string{"newest", "middle", "older"}
	if len(posts) != len(want) {
		t.Fatalf("got %d posts, want %d", len(posts), len(want))
	}
	for i, slug := range want {
		if posts[i].Slug != slug {
			t.Errorf("posts[%d].Slug = %q, want %q", i, posts[i].Slug, slug)
		}
	}
}

func TestStoreUpsertAndDelete(t *testing.T) {
	s := testStore(t)

	p := Post{Slug: "post", Title: "First", Date: "2025-01-01", Content: "x", Published: true}
	if err := s.SavePost(p); err != nil {
		t.Fatalf("SavePost: %v", err)
	}
	p.Title = "Second"
	if err := s.SavePost(p); err != nil {
		t.Fatalf("SavePost (update): %v", err)
	}

	got, err := s.GetPost("post")
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if got.Title != "Second" {
		t.Errorf("Title = %q, want updated title", got.Title)
	}

	if err := s.DeletePost("post"); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	if _, err := s.GetPostAny("post"); err == nil {
		t.Error("post still present after delete")
	}
}

func TestCacheInvalidation(t *testing.T) {
	s := testStore(t)
	cache := NewPostCache(s, time.Hour)

	posts, err := cache.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("got %d posts, want 0", len(posts))
	}

	if err := s.SavePost(Post{Slug: "fresh", Title: "Fresh", Date: "2025-01-01", Content: "x", Published: true}); err != nil {
		t.Fatalf("SavePost: %v", err)
	}

	// Still cached
	posts, _ = cache.ListPosts()
	if len(posts) != 0 {
		t.Fatal("cache reloaded before invalidation")
	}

	cache.Invalidate()
	posts, _ = cache.ListPosts()
	if len(posts) != 1 {
		t.Fatalf("got %d posts after invalidation, want 1", len(posts))
	}

	if _, err := cache.GetPost("missing"); err != ErrNotFound {
		t.Errorf("GetPost(missing) = %v, want ErrNotFound", err)
	}
}
