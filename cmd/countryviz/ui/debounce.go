package ui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Debouncer delays a call until no new call has arrived for the configured
// duration. A zero duration runs every call immediately.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
}

// NewDebouncer creates a new debouncer with the specified duration
func NewDebouncer(duration time.Duration) *Debouncer {
	return &Debouncer{
		duration: duration,
	}
}

// Duration returns the configured delay.
func (d *Debouncer) Duration() time.Duration { return d.duration }

// Debounce executes fn after the debounce duration has elapsed without any
// new calls. Rapid successive calls reset the timer.
func (d *Debouncer) Debounce(fn func()) {
	if d.duration <= 0 {
		d.Immediate(fn)
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, fn)
}

// Cancel cancels any pending debounced function call
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Immediate executes the function immediately and cancels any pending call
func (d *Debouncer) Immediate(fn func()) {
	d.Cancel()
	fn()
}

// searchMsg carries a settled search term back into the update loop. seq
// lets the model drop terms superseded while the message was in flight.
type searchMsg struct {
	term string
	seq  int
}

// SearchDebouncer turns keystrokes into searchMsg values delivered through
// send, typically (*tea.Program).Send. Without a sender the term is
// returned as a command instead, so tests and zero-delay setups stay on
// the update loop.
type SearchDebouncer struct {
	d    *Debouncer
	send func(tea.Msg)
	seq  int
}

// NewSearchDebouncer creates a search debouncer.
func NewSearchDebouncer(duration time.Duration, send func(tea.Msg)) *SearchDebouncer {
	return &SearchDebouncer{d: NewDebouncer(duration), send: send}
}

// Push records a new term. It returns a command only when the term should
// be applied on the next update.
func (s *SearchDebouncer) Push(term string) tea.Cmd {
	s.seq++
	msg := searchMsg{term: term, seq: s.seq}
	if s.send == nil || s.d.Duration() <= 0 {
		s.d.Cancel()
		return func() tea.Msg { return msg }
	}
	send := s.send
	s.d.Debounce(func() { send(msg) })
	return nil
}

// Current reports whether seq is the latest pushed term.
func (s *SearchDebouncer) Current(seq int) bool { return seq == s.seq }

// Stop cancels any pending term and invalidates terms already in flight.
func (s *SearchDebouncer) Stop() {
	s.seq++
	s.d.Cancel()
}
