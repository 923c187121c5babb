// internal/contact/fakes_test.go
//
// Test doubles shared by the contact package tests.
//
// Notes
// -----
// • manualTimer fires callbacks only on fireAll, so clear timing is
//   deterministic.

package contact

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

// fakeFields is an in-memory form.
type fakeFields struct {
	name, email, message, phone string
	hasPhone                    bool
	resets                      int
}

func (f *fakeFields) Text() string          { return f.name }
func (f *fakeFields) Email() string         { return f.email }
func (f *fakeFields) Message() string       { return f.message }
func (f *fakeFields) Phone() (string, bool) { return f.phone, f.hasPhone }
func (f *fakeFields) Reset() {
	f.resets++
	f.name, f.email, f.message, f.phone = "", "", "", ""
}

// fakeSurface records every applied View.
type fakeSurface struct {
	label string
	views []View
}

func (s *fakeSurface) ButtonLabel() string { return s.label }

func (s *fakeSurface) Apply(v View) {
	s.views = append(s.views, v)
	s.label = v.ButtonLabel
}

func (s *fakeSurface) last() View { return s.views[len(s.views)-1] }

// mockSender is a testify mock for Sender.
type mockSender struct{ mock.Mock }

func (m *mockSender) Send(ctx context.Context, sub Submission) (Reply, error) {
	args := m.Called(ctx, sub)
	return args.Get(0).(Reply), args.Error(1)
}

// senderFunc adapts a function to Sender.
type senderFunc func(ctx context.Context, sub Submission) (Reply, error)

func (f senderFunc) Send(ctx context.Context, sub Submission) (Reply, error) { return f(ctx, sub) }

// manualTimer captures scheduled callbacks so tests fire them on demand.
type manualTimer struct {
	mu      sync.Mutex
	pending []*manualEntry
}

type manualEntry struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (m *manualTimer) after(d time.Duration, f func()) func() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := &manualEntry{d: d, f: f}
	m.pending = append(m.pending, e)
	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		was := !e.stopped
		e.stopped = true
		return was
	}
}

// fireAll runs every callback, including stopped ones, to model a timer that
// fired just before Stop was called.
func (m *manualTimer) fireAll() {
	m.mu.Lock()
	entries := append([]*manualEntry(nil), m.pending...)
	m.mu.Unlock()
	for _, e := range entries {
		e.f()
	}
}

// countingObserver records outcomes.
type countingObserver struct{ seen []Outcome }

func (o *countingObserver) Observe(out Outcome, _ time.Duration) { o.seen = append(o.seen, out) }
