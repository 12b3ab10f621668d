package generator

import (
	"errors"
	"sync"
)

// ItemsPerPage is the number of generated designs shown per results page.
const ItemsPerPage = 2

// ErrBusy is returned when a submit arrives while a request is in flight.
var ErrBusy = errors.New("generator: a request is already in flight")

// State is the generation request lifecycle state.
type State int

const (
	StateIdle State = iota
	StateInFlight
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInFlight:
		return "in-flight"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// GeneratedImage is one produced design: the hosted image URL and the exact
// prompt that was sent for it.
type GeneratedImage struct {
	URL    string
	Prompt string
}

// PageImage is a GeneratedImage paired with its absolute position in the
// result sequence (0 = newest), used for download filenames.
type PageImage struct {
	Index  int
	URL    string
	Prompt string
}

// View is an immutable snapshot of a Session for rendering.
type View struct {
	State     State
	Error     string
	Page      int
	PageCount int
	Total     int
	Images    []PageImage // current page only, newest first
}

// Session holds one browser session's generation state: the lifecycle state
// machine, the newest-first result sequence, and the results page cursor.
// Results live in memory only and vanish when the session expires.
type Session struct {
	mu     sync.Mutex
	state  State
	errMsg string
	images []GeneratedImage
	page   int
}

// NewSession returns an idle session on page 1 with no results.
func NewSession() *Session {
	return &Session{state: StateIdle, page: 1}
}

// Begin transitions to in-flight. A session already in flight rejects the
// submit with ErrBusy; success and error states roll over implicitly.
func (s *Session) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateInFlight {
		return ErrBusy
	}
	s.state = StateInFlight
	s.errMsg = ""
	return nil
}

// Succeed records a completed generation: the new image is prepended so the
// newest design is always first, and the page cursor resets to 1.
func (s *Session) Succeed(img GeneratedImage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images = append([]GeneratedImage{img}, s.images...)
	s.page = 1
	s.state = StateSuccess
}

// Fail records a failed generation. The result sequence is untouched and the
// message is guaranteed non-empty.
func (s *Session) Fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg == "" {
		msg = "Image generation failed. Please try again."
	}
	s.state = StateError
	s.errMsg = msg
}

// NextPage advances the page cursor, clamped at the last page.
func (s *Session) NextPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.page < s.pageCountLocked() {
		s.page++
	}
}

// PrevPage moves the page cursor back, clamped at page 1.
func (s *Session) PrevPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.page > 1 {
		s.page--
	}
}

// ImageAt returns the image at absolute position i (0 = newest).
func (s *Session) ImageAt(i int) (GeneratedImage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.images) {
		return GeneratedImage{}, false
	}
	return s.images[i], true
}

// Snapshot returns a consistent view of the session for rendering.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	pageCount := s.pageCountLocked()
	start := (s.page - 1) * ItemsPerPage
	end := start + ItemsPerPage
	if end > len(s.images) {
		end = len(s.images)
	}

	var images []PageImage
	if start < len(s.images) {
		for i := start; i < end; i++ {
			img := s.images[i]
			images = append(images, PageImage{Index: i, URL: img.URL, Prompt: img.Prompt})
		}
	}

	return View{
		State:     s.state,
		Error:     s.errMsg,
		Page:      s.page,
		PageCount: pageCount,
		Total:     len(s.images),
		Images:    images,
	}
}

func (s *Session) pageCountLocked() int {
	return (len(s.images) + ItemsPerPage - 1) / ItemsPerPage
}
