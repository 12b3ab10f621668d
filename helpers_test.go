package interiorgen

import "testing"

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"http://localhost:3000", nil, "http://localhost:3000"},
		{"http://localhost:3000", []string{"blog"}, "http://localhost:3000/blog/"},
		{"https://example.com/", []string{"modern-living-room-ideas"}, "https://example.com/modern-living-room-ideas/"},
		{"https://example.com", []string{"a", "b"}, "https://example.com/a/b/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}

func TestPaginate(t *testing.T) {
	posts := make([]Post, 7)
	for i := range posts {
		posts[i].Slug = string(rune('a' + i))
	}

	tests := []struct {
		name      string
		page      int
		wantPage  int
		wantCount int
		wantLen   int
	}{
		{"first page", 1, 1, 3, 3},
		{"last page partial", 3, 3, 3, 1},
		{"zero clamps to one", 0, 1, 3, 3},
		{"past end clamps to last", 99, 3, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, page, count := Paginate(posts, tt.page, 3)
			if page != tt.wantPage || count != tt.wantCount || len(got) != tt.wantLen {
				t.Errorf("Paginate page=%d count=%d len=%d, want %d/%d/%d",
					page, count, len(got), tt.wantPage, tt.wantCount, tt.wantLen)
			}
		})
	}

	if got, page, count := Paginate(nil, 1, 3); got != nil || page != 1 || count != 0 {
		t.Errorf("Paginate(nil) = %v, %d, %d", got, page, count)
	}
}

func TestRelatedPosts(t *testing.T) {
	posts := []Post{
		{Slug: "current"},
		{Slug: "one"},
		{Slug: "two"},
		{Slug: "three"},
		{Slug: "four"},
	}
	related := RelatedPosts(posts[0], posts, 3)
	if len(related) != 3 {
		t.Fatalf("got %d related posts, want 3", len(related))
	}
	for _, p := range related {
		if p.Slug == "current" {
			t.Error("related posts include the current post")
		}
	}
	if related[0].Slug != "one" {
		t.Errorf("related[0] = %q, want newest other post first", related[0].Slug)
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{"a", "", "  ", "b"})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("FilterEmpty = %v", got)
	}
}
