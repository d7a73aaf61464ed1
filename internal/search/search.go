// Package search finds a query in the text of page sections and extracts a snippet around the
// first match.
package search

import (
	"strings"
)

const (
	// MinQueryLength is the shortest query that is executed.
	MinQueryLength = 3
	snippetBefore  = 50
	snippetAfter   = 100
	// NoResults is displayed when a query matches nothing.
	NoResults    = "Aucun résultat trouvé"
	defaultTitle = "Section"
)

// Section is a searchable part of a page.
type Section struct {
	ID    string
	Title string
	Text  string
	Page  string // Page is the file the section was read from, empty for in-app content
}

// Result is a matching section.
type Result struct {
	Title   string
	Section string
	Page    string
	Snippet string
}

// Search returns the sections whose text contains query, case-insensitively, in section order.
// Queries shorter than MinQueryLength return nothing.
func Search(sections []Section, query string) []Result {
	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < MinQueryLength {
		return nil
	}
	var results []Result
	for _, s := range sections {
		content := strings.ToLower(s.Text)
		if !strings.Contains(content, q) {
			continue
		}
		title := s.Title
		if title == "" {
			title = defaultTitle
		}
		results = append(results, Result{
			Title:   title,
			Section: s.ID,
			Page:    s.Page,
			Snippet: Snippet(content, q),
		})
	}
	return results
}

// Snippet returns the text from 50 runes before the first match of query to 100 runes after
// its start, followed by "...".
func Snippet(content, query string) string {
	i := strings.Index(content, query)
	if i < 0 {
		return ""
	}
	runes := []rune(content)
	at := len([]rune(content[:i]))
	start := max(0, at-snippetBefore)
	end := min(len(runes), at+snippetAfter)
	return string(runes[start:end]) + "..."
}
