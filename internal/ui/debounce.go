package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// searchTickMsg fires when a scheduled search recomputation is due
type searchTickMsg struct {
	seq   int
	query string
}

// Debouncer is the timer handle for search recomputation. Scheduling
// supersedes whatever was pending; a superseded tick is ignored when it
// arrives, so at most the latest value is ever applied.
type Debouncer struct {
	delay time.Duration
	seq   int
}

// NewDebouncer creates a debouncer with the given quiet period
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Delay returns the quiet period
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Schedule cancels the pending recomputation and schedules one for query
func (d *Debouncer) Schedule(query string) tea.Cmd {
	d.seq++
	seq := d.seq
	if d.delay <= 0 {
		return func() tea.Msg {
			return searchTickMsg{seq: seq, query: query}
		}
	}
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return searchTickMsg{seq: seq, query: query}
	})
}

// Cancel drops the pending recomputation, if any
func (d *Debouncer) Cancel() {
	d.seq++
}

// Accept reports whether msg is the latest scheduled tick. It consumes the
// tick, so the same message is accepted only once.
func (d *Debouncer) Accept(msg searchTickMsg) bool {
	if msg.seq != d.seq {
		return false
	}
	d.seq++
	return true
}
