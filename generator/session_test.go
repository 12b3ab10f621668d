package generator

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionWithImages(n int) *Session {
	s := NewSession()
	for i := 0; i < n; i++ {
		_ = s.Begin()
		s.Succeed(GeneratedImage{URL: fmt.Sprintf("https://img.test/%d.jpg", i), Prompt: fmt.Sprintf("prompt %d", i)})
	}
	return s
}

func TestSessionInitialState(t *testing.T) {
	v := NewSession().Snapshot()
	assert.Equal(t, StateIdle, v.State)
	assert.Equal(t, 1, v.Page)
	assert.Equal(t, 0, v.PageCount)
	assert.Empty(t, v.Images)
}

func TestSessionBeginRejectsWhileInFlight(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Begin())
	assert.ErrorIs(t, s.Begin(), ErrBusy)
}

func TestSessionBeginRollsOverFromErrorAndSuccess(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Begin())
	s.Fail("boom")
	require.NoError(t, s.Begin())
	s.Succeed(GeneratedImage{URL: "https://img.test/a.jpg"})
	require.NoError(t, s.Begin())
}

func TestSessionSucceedPrependsAndResetsPage(t *testing.T) {
	s := sessionWithImages(4)
	s.NextPage()
	require.Equal(t, 2, s.Snapshot().Page)

	require.NoError(t, s.Begin())
	s.Succeed(GeneratedImage{URL: "https://img.test/new.jpg", Prompt: "newest"})

	v := s.Snapshot()
	assert.Equal(t, StateSuccess, v.State)
	assert.Equal(t, 1, v.Page, "view resets to page 1 on success")
	require.NotEmpty(t, v.Images)
	assert.Equal(t, 0, v.Images[0].Index)
	assert.Equal(t, "https://img.test/new.jpg", v.Images[0].URL)
}

func TestSessionFailLeavesResultsUnchanged(t *testing.T) {
	s := sessionWithImages(2)
	before := s.Snapshot()

	require.NoError(t, s.Begin())
	s.Fail("service unavailable")

	v := s.Snapshot()
	assert.Equal(t, StateError, v.State)
	assert.Equal(t, "service unavailable", v.Error)
	assert.Equal(t, before.Total, v.Total)
	assert.Equal(t, before.Images, v.Images)
}

func TestSessionFailMessageNeverEmpty(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Begin())
	s.Fail("")
	assert.NotEmpty(t, s.Snapshot().Error)
}

func TestSessionPageCount(t *testing.T) {
	tests := []struct {
		images int
		want   int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{5, 3},
	}
	for _, tt := range tests {
		v := sessionWithImages(tt.images).Snapshot()
		assert.Equal(t, tt.want, v.PageCount, "%d images", tt.images)
	}
}

func TestSessionPaginationClamps(t *testing.T) {
	s := sessionWithImages(5) // 3 pages at 2 per page

	s.PrevPage()
	assert.Equal(t, 1, s.Snapshot().Page, "previous on page 1 is a no-op")

	s.NextPage()
	s.NextPage()
	assert.Equal(t, 3, s.Snapshot().Page)

	s.NextPage()
	assert.Equal(t, 3, s.Snapshot().Page, "next on the last page is a no-op")
}

func TestSessionSnapshotPagesNewestFirst(t *testing.T) {
	s := sessionWithImages(3) // newest has prompt "prompt 2"
	v := s.Snapshot()
	require.Len(t, v.Images, 2)
	assert.Equal(t, "prompt 2", v.Images[0].Prompt)
	assert.Equal(t, "prompt 1", v.Images[1].Prompt)

	s.NextPage()
	v = s.Snapshot()
	require.Len(t, v.Images, 1)
	assert.Equal(t, "prompt 0", v.Images[0].Prompt)
	assert.Equal(t, 2, v.Images[0].Index)
}

func TestManagerGetOrCreate(t *testing.T) {
	m := NewManager(time.Minute)

	id, sess := m.GetOrCreate("")
	require.NotEmpty(t, id)
	require.NotNil(t, sess)

	id2, sess2 := m.GetOrCreate(id)
	assert.Equal(t, id, id2)
	assert.Same(t, sess, sess2)

	id3, _ := m.GetOrCreate("unknown-id")
	assert.NotEqual(t, "unknown-id", id3)
}
