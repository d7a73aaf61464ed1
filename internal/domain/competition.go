package domain

// NewCompetitionRecord returns a record with its collections initialized to allow safe access
// (e.g. ranging over categories or reading conditions without nil checks).
func NewCompetitionRecord(id string) CompetitionRecord {
	return CompetitionRecord{
		ID:         id,
		Categories: make([]Category, 0),
		Highlights: make([]string, 0),
		Conditions: make(Conditions),
	}
}

// CompetitionRecord is one result-set: a single competition's full data as displayed in the
// results viewer.
type CompetitionRecord struct {
	ID         string     `yaml:"id"`         // ID is the result-set identifier, e.g.: "regional"
	Title      string     `yaml:"title"`      // Title is the display name of the event
	Date       string     `yaml:"date"`       // Date is the human readable date and location; never parsed
	Categories []Category `yaml:"categories"` // Categories in display order
	Highlights []string   `yaml:"highlights"` // Highlights in display order
	Conditions Conditions `yaml:"conditions"` // Conditions recorded on the day of the event
}

// Category groups athlete performances within a result-set, e.g.: "Seniors Hommes".
type Category struct {
	Label    string               `yaml:"label"`
	Athletes []AthletePerformance `yaml:"athletes"` // Athletes in display order
}

// AthletePerformance is one row of a category's results.
type AthletePerformance struct {
	Rank        int     `yaml:"rank"`        // Rank is the finishing position; ties and gaps are allowed
	Name        string  `yaml:"name"`        // Name is the display name of the athlete
	Event       string  `yaml:"event"`       // Event is the distance or discipline
	Performance string  `yaml:"performance"` // Performance is a time or a distance in mixed units; opaque
	Club        string  `yaml:"club"`        // Club is the short name of the athlete's club
	Badges      []Badge `yaml:"badges"`      // Badges earned with this performance
}

// Clone returns a deep copy of the record so that callers holding the copy can never mutate
// shared reference data.
func (r CompetitionRecord) Clone() CompetitionRecord {
	c := r
	c.Categories = make([]Category, len(r.Categories))
	for i, cat := range r.Categories {
		athletes := make([]AthletePerformance, len(cat.Athletes))
		for j, a := range cat.Athletes {
			a.Badges = append([]Badge(nil), a.Badges...)
			athletes[j] = a
		}
		c.Categories[i] = Category{Label: cat.Label, Athletes: athletes}
	}
	c.Highlights = append([]string(nil), r.Highlights...)
	c.Conditions = make(Conditions, len(r.Conditions))
	for k, v := range r.Conditions {
		c.Conditions[k] = v
	}
	return c
}
