// Package modal implements the results viewer controller: it opens a result-set, owns the tab
// state and holds the page scroll lock while visible.
package modal

import (
	"log/slog"

	"github.com/bcdxn/vsa/internal/domain"
	"github.com/bcdxn/vsa/internal/metrics"
	"github.com/bcdxn/vsa/internal/render"
	"github.com/bcdxn/vsa/internal/results"
	"github.com/bcdxn/vsa/internal/scrolllock"
)

const lockOwner = "results-modal"

// New returns a closed controller over the given dataset.
func New(dataset results.Dataset, opts ...ControllerOption) *Controller {
	c := &Controller{
		dataset: dataset,
		tabs:    NewTabState(),
		lock:    scrolllock.New(),
		logger:  slog.Default(),
	}
	// apply given options
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type Controller struct {
	dataset results.Dataset
	tabs    TabState
	visible bool
	current string
	content Content
	// shared resources
	lock  *scrolllock.Lock
	token *scrolllock.Token
	// observability
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// Content is everything displayed by an open viewer.
type Content struct {
	Title      string
	Date       string
	Results    render.ResultsView
	Highlights render.HighlightsView
	Conditions render.ConditionsView
}

/* Controller Optional Functional Parameters
------------------------------------------------------------------------------------------------- */

type ControllerOption = func(c *Controller)

// WithLogger configures the logger used for diagnostics.
func WithLogger(l *slog.Logger) ControllerOption {
	return func(c *Controller) { c.logger = l }
}

// WithScrollLock shares the page scroll lock with other overlays.
func WithScrollLock(l *scrolllock.Lock) ControllerOption {
	return func(c *Controller) { c.lock = l }
}

// WithMetrics configures the recorder used to count interactions.
func WithMetrics(m *metrics.Recorder) ControllerOption {
	return func(c *Controller) { c.metrics = m }
}

/* Controller API
------------------------------------------------------------------------------------------------- */

// Open shows the result-set identified by id on the results tab. An unknown id leaves the
// viewer untouched and returns false.
func (c *Controller) Open(id string) bool {
	record, ok := c.dataset.Lookup(id)
	if !ok {
		c.logger.Debug("result-set not found", "id", id)
		c.metrics.LookupMissed()
		return false
	}

	c.current = id
	c.content = Content{
		Title:      record.Title,
		Date:       record.Date,
		Results:    render.Results(record.Categories),
		Highlights: render.Highlights(record.Highlights),
		Conditions: render.Conditions(record.Conditions),
	}
	c.tabs = NewTabState()

	if !c.visible {
		c.visible = true
		c.token = c.lock.Acquire(lockOwner)
	}
	c.logger.Debug("results viewer opened", "id", id)
	c.metrics.ModalOpened(id)
	return true
}

// Close hides the viewer and releases the scroll lock. Closing a closed viewer is a no-op.
func (c *Controller) Close() {
	if !c.visible {
		return
	}
	c.visible = false
	c.token.Release()
	c.token = nil
	c.logger.Debug("results viewer closed", "id", c.current)
}

// SwitchTo activates a tab of the open viewer. It returns false when the viewer is closed or
// the tab is unknown.
func (c *Controller) SwitchTo(tab domain.Tab) bool {
	if !c.visible {
		return false
	}
	if c.tabs.Active() == tab {
		return true
	}
	if !c.tabs.SwitchTo(tab) {
		c.logger.Debug("unknown tab", "tab", tab)
		return false
	}
	c.metrics.TabSwitched(string(tab))
	return true
}

// Visible reports whether the viewer is open.
func (c *Controller) Visible() bool {
	return c.visible
}

// Current returns the identifier of the last opened result-set.
func (c *Controller) Current() string {
	return c.current
}

// Tabs returns the tab state.
func (c *Controller) Tabs() TabState {
	return c.tabs
}

// Content returns the rendered content of the last opened result-set.
func (c *Controller) Content() Content {
	return c.content
}

// IDs returns the result-sets that can be opened.
func (c *Controller) IDs() []string {
	return c.dataset.IDs()
}

// Title returns the title of a result-set without opening it.
func (c *Controller) Title(id string) string {
	r, ok := c.dataset.Lookup(id)
	if !ok {
		return ""
	}
	return r.Title
}

// Date returns the date of a result-set without opening it.
func (c *Controller) Date(id string) string {
	r, ok := c.dataset.Lookup(id)
	if !ok {
		return ""
	}
	return r.Date
}
