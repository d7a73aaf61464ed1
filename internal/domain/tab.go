package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownTab is returned when parsing a tab identifier outside the closed set.
var ErrUnknownTab = errors.New("unknown tab")

const (
	TabResults    Tab = "results"
	TabHighlights Tab = "highlights"
	TabConditions Tab = "conditions"
)

// Tab is one of the three mutually exclusive content views of the results viewer.
type Tab string

// Tabs returns every tab in display order.
func Tabs() []Tab {
	return []Tab{TabResults, TabHighlights, TabConditions}
}

// ParseTab validates a tab identifier.
func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownTab, s)
}

// ContentID follows the "{tab}-tab" naming of the content containers.
func (t Tab) ContentID() string {
	return string(t) + "-tab"
}

// Label is the heading shown on the tab selector.
func (t Tab) Label() string {
	switch t {
	case TabResults:
		return "Résultats"
	case TabHighlights:
		return "Temps forts"
	case TabConditions:
		return "Conditions"
	default:
		return string(t)
	}
}

// Next returns the tab to the right, wrapping around.
func (t Tab) Next() Tab {
	tabs := Tabs()
	return tabs[(t.index()+1)%len(tabs)]
}

// Prev returns the tab to the left, wrapping around.
func (t Tab) Prev() Tab {
	tabs := Tabs()
	return tabs[(t.index()+len(tabs)-1)%len(tabs)]
}

func (t Tab) index() int {
	for i, tab := range Tabs() {
		if tab == t {
			return i
		}
	}
	return 0
}
