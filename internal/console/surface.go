package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/yanizio/folio/internal/contact"
)

// Surface prints View changes to w.  Repeating a View prints nothing, so it
// is idempotent like the page's feedback element.
type Surface struct {
	mu    sync.Mutex
	w     io.Writer
	label string
	last  *contact.View
}

// NewSurface returns a Surface whose button starts with label.
func NewSurface(w io.Writer, label string) *Surface {
	return &Surface{w: w, label: label}
}

func (s *Surface) ButtonLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.label
}

// Apply implements contact.Surface.
func (s *Surface) Apply(v contact.View) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.last
	s.label = v.ButtonLabel
	s.last = &v

	if v.ButtonDisabled && (prev == nil || !prev.ButtonDisabled) {
		fmt.Fprintf(s.w, "%s\n", v.ButtonLabel)
	}
	if prev != nil && prev.FeedbackVisible == v.FeedbackVisible && prev.FeedbackText == v.FeedbackText {
		return
	}
	if v.FeedbackVisible {
		fmt.Fprintf(s.w, "[%s] %s\n", v.FeedbackKind, v.FeedbackText)
	}
}

// Last returns the most recent View and whether one was applied.
func (s *Surface) Last() (contact.View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return contact.View{}, false
	}
	return *s.last, true
}
