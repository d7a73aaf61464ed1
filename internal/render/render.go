// Package render turns slices of a competition record into displayable structures, one pure
// function per tab of the results viewer.
package render

import (
	"strconv"

	"github.com/bcdxn/vsa/internal/domain"
)

const (
	MarkPodium        MarkKind = "podium"
	MarkRecord        MarkKind = "record"
	MarkQualification MarkKind = "qualification"
)

const (
	recordLabel        = "RECORD"
	qualificationLabel = "QUALIF"
	highlightsTitle    = "Temps forts de la compétition"
	conditionsTitle    = "Conditions de compétition"
)

// MarkKind tells the presentation layer how to style a badge mark.
type MarkKind string

// BadgeMark is the displayable form of a badge.
type BadgeMark struct {
	Kind     MarkKind
	Label    string
	Position int // Position is the podium position, only set for MarkPodium
}

// ResultsView is the content of the results tab.
type ResultsView struct {
	Groups []Group
}

// Group is one labeled category table.
type Group struct {
	Label string
	Rows  []Row
}

// Row is one athlete line of a category table.
type Row struct {
	Rank        string
	Name        string
	Event       string
	Performance string
	Club        string
	Marks       []BadgeMark
}

// HighlightsView is the content of the highlights tab.
type HighlightsView struct {
	Title string
	Items []string
}

// ConditionsView is the content of the conditions tab.
type ConditionsView struct {
	Title  string
	Fields [4]Field
}

// Field is a labeled condition.
type Field struct {
	Label string
	Value string
}

// Results renders categories and their athletes in insertion order.
func Results(categories []domain.Category) ResultsView {
	v := ResultsView{Groups: make([]Group, 0, len(categories))}
	for _, c := range categories {
		g := Group{Label: c.Label, Rows: make([]Row, 0, len(c.Athletes))}
		for _, a := range c.Athletes {
			g.Rows = append(g.Rows, Row{
				Rank:        strconv.Itoa(a.Rank),
				Name:        a.Name,
				Event:       a.Event,
				Performance: a.Performance,
				Club:        a.Club,
				Marks:       Badges(a.Badges),
			})
		}
		v.Groups = append(v.Groups, g)
	}
	return v
}

// Badges renders badge tags; unrecognized tags produce no mark.
func Badges(badges []domain.Badge) []BadgeMark {
	marks := make([]BadgeMark, 0, len(badges))
	for _, b := range badges {
		if mark, ok := Badge(b); ok {
			marks = append(marks, mark)
		}
	}
	return marks
}

// Badge renders a single badge. The boolean is false for badges without a visual form.
func Badge(b domain.Badge) (BadgeMark, bool) {
	switch b = domain.ParseBadge(string(b)); b {
	case domain.BadgePodium1, domain.BadgePodium2, domain.BadgePodium3:
		pos, _ := b.PodiumPosition()
		return BadgeMark{Kind: MarkPodium, Label: strconv.Itoa(pos), Position: pos}, true
	case domain.BadgeRecord:
		return BadgeMark{Kind: MarkRecord, Label: recordLabel}, true
	case domain.BadgeQualification:
		return BadgeMark{Kind: MarkQualification, Label: qualificationLabel}, true
	default:
		return BadgeMark{}, false
	}
}

// Highlights renders the highlights as an ordered list; no sorting and no deduplication.
func Highlights(highlights []string) HighlightsView {
	return HighlightsView{
		Title: highlightsTitle,
		Items: append([]string(nil), highlights...),
	}
}

// Conditions renders exactly four fields in a fixed order whatever keys are present.
func Conditions(c domain.Conditions) ConditionsView {
	return ConditionsView{
		Title: conditionsTitle,
		Fields: [4]Field{
			{Label: "Météo", Value: c.Weather()},
			{Label: "Vent", Value: c.WindOrTerrain()},
			{Label: "Surface", Value: c.SurfaceOrCourse()},
			{Label: "Participation", Value: c.Participants()},
		},
	}
}
