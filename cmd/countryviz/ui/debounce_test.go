package ui

import (
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestDebouncer_KeepsLastCall(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := NewDebouncer(20 * time.Millisecond)
	got := make(chan int, 10)
	for i := range 5 {
		d.Debounce(func() { got <- i })
	}

	select {
	case v := <-got:
		assert.Equal(t, 4, v)
	case <-time.After(time.Second):
		t.Fatal("debounced call never ran")
	}

	select {
	case v := <-got:
		t.Fatalf("unexpected extra call with %d", v)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestDebouncer_ZeroDurationRunsInline(t *testing.T) {
	d := NewDebouncer(0)
	var n int
	d.Debounce(func() { n++ })
	d.Debounce(func() { n++ })
	assert.Equal(t, 2, n)
}

func TestDebouncer_Cancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := NewDebouncer(10 * time.Millisecond)
	var calls atomic.Int32
	d.Debounce(func() { calls.Add(1) })
	d.Cancel()

	time.Sleep(40 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestSearchDebouncer_WithoutSenderReturnsCommand(t *testing.T) {
	s := NewSearchDebouncer(time.Second, nil)

	cmd := s.Push("fra")
	require.NotNil(t, cmd)
	msg, ok := cmd().(searchMsg)
	require.True(t, ok)
	assert.Equal(t, "fra", msg.term)
	assert.True(t, s.Current(msg.seq))

	next := s.Push("fran")
	require.NotNil(t, next)
	assert.False(t, s.Current(msg.seq), "older terms are superseded")
}

func TestSearchDebouncer_SendsSettledTerm(t *testing.T) {
	defer goleak.VerifyNone(t)

	got := make(chan tea.Msg, 10)
	s := NewSearchDebouncer(20*time.Millisecond, func(m tea.Msg) { got <- m })

	for _, term := range []string{"g", "ge", "ger"} {
		assert.Nil(t, s.Push(term))
	}

	select {
	case m := <-got:
		msg := m.(searchMsg)
		assert.Equal(t, "ger", msg.term)
		assert.True(t, s.Current(msg.seq))
	case <-time.After(time.Second):
		t.Fatal("search term never delivered")
	}
}

func TestSearchDebouncer_Stop(t *testing.T) {
	defer goleak.VerifyNone(t)

	got := make(chan tea.Msg, 1)
	s := NewSearchDebouncer(10*time.Millisecond, func(m tea.Msg) { got <- m })
	s.Push("spa")
	s.Stop()

	select {
	case <-got:
		t.Fatal("stopped debouncer delivered a term")
	case <-time.After(40 * time.Millisecond):
	}
	assert.False(t, s.Current(1))
}
