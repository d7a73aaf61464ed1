// Package effects holds the state of the frame-driven intro effects: counting statistics and
// the typed subtitle. Callers drive them with ticks and stop when Step reports completion.
package effects

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	CounterDuration = 2 * time.Second
	CounterDelay    = 500 * time.Millisecond
	FrameInterval   = 16 * time.Millisecond
	TypingDelay     = 900 * time.Millisecond
	TypingInterval  = 80 * time.Millisecond
)

// NewCounter parses the digits of label as the target; a trailing "+" is kept while counting.
func NewCounter(label string, duration, frame time.Duration) Counter {
	var digits strings.Builder
	for _, r := range label {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	target, _ := strconv.Atoi(digits.String())
	frames := float64(duration) / float64(frame)
	if frames < 1 {
		frames = 1
	}
	return Counter{
		target:    target,
		plus:      strings.Contains(label, "+"),
		increment: float64(target) / frames,
	}
}

// Counter counts from zero up to a target.
type Counter struct {
	target    int
	plus      bool
	increment float64
	current   float64
	done      bool
}

// Step advances one frame and reports whether the target is reached.
func (c *Counter) Step() bool {
	if c.done {
		return true
	}
	if c.current < float64(c.target) {
		c.current += c.increment
	}
	if c.current >= float64(c.target) || c.increment <= 0 {
		c.current = float64(c.target)
		c.done = true
	}
	return c.done
}

// Text is the value to display.
func (c Counter) Text() string {
	s := strconv.Itoa(int(math.Ceil(c.current)))
	if c.plus {
		s += "+"
	}
	return s
}

func (c Counter) Done() bool {
	return c.done
}

// Finish jumps to the target.
func (c *Counter) Finish() {
	c.current = float64(c.target)
	c.done = true
}

// NewTypewriter returns a typewriter that has revealed nothing yet.
func NewTypewriter(text string) Typewriter {
	return Typewriter{text: []rune(text)}
}

// Typewriter reveals a text one rune at a time.
type Typewriter struct {
	text     []rune
	revealed int
}

// Step reveals one more rune and reports whether the whole text is visible.
func (t *Typewriter) Step() bool {
	if t.revealed < len(t.text) {
		t.revealed++
	}
	return t.Done()
}

func (t Typewriter) Text() string {
	return string(t.text[:t.revealed])
}

func (t Typewriter) Done() bool {
	return t.revealed >= len(t.text)
}

func (t *Typewriter) Finish() {
	t.revealed = len(t.text)
}
