package modal

import "github.com/bcdxn/vsa/internal/domain"

// NewTabState returns the state with the results tab active.
func NewTabState() TabState {
	return TabState{active: domain.TabResults}
}

// TabState tracks which tab of the viewer is active. Exactly one tab is active at all times.
type TabState struct {
	active domain.Tab
}

// SwitchTo activates tab. Any tab is reachable from any other; unknown tabs are ignored and
// reported as not switched.
func (s *TabState) SwitchTo(tab domain.Tab) bool {
	if _, err := domain.ParseTab(string(tab)); err != nil {
		return false
	}
	s.active = tab
	return true
}

// Active returns the active tab.
func (s TabState) Active() domain.Tab {
	if s.active == "" {
		return domain.TabResults
	}
	return s.active
}

// Selectors returns the active flag of every tab in display order. All flags are computed from
// the single active value so there is never zero or more than one active selector.
func (s TabState) Selectors() []Selector {
	active := s.Active()
	tabs := domain.Tabs()
	sel := make([]Selector, len(tabs))
	for i, t := range tabs {
		sel[i] = Selector{Tab: t}
	}
	for i := range sel {
		if sel[i].Tab == active {
			sel[i].Active = true
		}
	}
	return sel
}

// Selector is a tab selector and whether it is marked active.
type Selector struct {
	Tab    domain.Tab
	Active bool
}
