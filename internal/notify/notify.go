// Package notify implements the transient notification banner. Every banner carries an id so
// that a deferred dismissal scheduled for a replaced banner does nothing.
package notify

import (
	"time"

	"github.com/google/uuid"
)

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// DefaultDuration is how long a banner stays visible.
const DefaultDuration = 5 * time.Second

type Kind string

// Banner is one displayed message.
type Banner struct {
	ID   string
	Kind Kind
	Text string
}

// New returns an empty notification center.
func New(duration time.Duration) *Center {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Center{duration: duration, timers: make(map[string]struct{})}
}

// Center holds at most one banner at a time.
type Center struct {
	current  *Banner
	duration time.Duration
	timers   map[string]struct{} // ids whose dismissal is still scheduled
}

// Show replaces the current banner and cancels the dismissal scheduled for it. The returned
// banner's id must be passed to Dismiss once Duration has elapsed.
func (c *Center) Show(kind Kind, text string) Banner {
	if c.current != nil {
		delete(c.timers, c.current.ID)
	}
	b := Banner{ID: uuid.NewString(), Kind: kind, Text: text}
	c.current = &b
	c.timers[b.ID] = struct{}{}
	return b
}

// Dismiss is the expiry of the timer scheduled for id. It returns false, doing nothing, when
// that timer was cancelled or the banner replaced.
func (c *Center) Dismiss(id string) bool {
	if _, ok := c.timers[id]; !ok {
		return false
	}
	delete(c.timers, id)
	if c.current != nil && c.current.ID == id {
		c.current = nil
	}
	return true
}

// Cancel withdraws the banner identified by id along with its pending dismissal. It returns
// false when nothing was pending for id.
func (c *Center) Cancel(id string) bool {
	_, ok := c.timers[id]
	delete(c.timers, id)
	if c.current != nil && c.current.ID == id {
		c.current = nil
		return true
	}
	return ok
}

// Pending reports whether a dismissal is still scheduled for id.
func (c *Center) Pending(id string) bool {
	_, ok := c.timers[id]
	return ok
}

// Current returns the displayed banner.
func (c *Center) Current() (Banner, bool) {
	if c.current == nil {
		return Banner{}, false
	}
	return *c.current, true
}

func (c *Center) Duration() time.Duration {
	return c.duration
}
