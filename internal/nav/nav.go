// Package nav implements the navigation menu and the scroll-position driven section
// highlighting.
package nav

import "github.com/bcdxn/vsa/internal/scrolllock"

const lockOwner = "nav-menu"

// Section is a navigable part of the page. Top is its first line in the page content.
type Section struct {
	ID    string
	Title string
	Top   int
}

// NewMenu returns a closed menu sharing the given scroll lock.
func NewMenu(lock *scrolllock.Lock) *Menu {
	return &Menu{lock: lock}
}

// Menu is the toggled navigation overlay. It holds a scroll-lock token while open.
type Menu struct {
	lock  *scrolllock.Lock
	token *scrolllock.Token
	open  bool
}

// Toggle opens a closed menu or closes an open one and returns the new state.
func (m *Menu) Toggle() bool {
	if m.open {
		m.Close()
	} else {
		m.Open()
	}
	return m.open
}

func (m *Menu) Open() {
	if m.open {
		return
	}
	m.open = true
	m.token = m.lock.Acquire(lockOwner)
}

// Close is a no-op on a closed menu.
func (m *Menu) Close() {
	if !m.open {
		return
	}
	m.open = false
	m.token.Release()
	m.token = nil
}

func (m *Menu) IsOpen() bool {
	return m.open
}

// ActiveSection returns the id of the last section whose top has been scrolled past, allowing
// offset lines of lead. Sections are expected in page order; no section yields "".
func ActiveSection(sections []Section, scrollY, offset int) string {
	current := ""
	for _, s := range sections {
		if scrollY >= s.Top-offset {
			current = s.ID
		}
	}
	return current
}

// Compact reports whether the header should shrink for the given scroll position.
func Compact(scrollY, threshold int) bool {
	return scrollY > threshold
}
