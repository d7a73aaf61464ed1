package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/bcdxn/vsa/internal/domain"
)

// WriteText prints a record with all three tabs as plain text, for non-interactive use.
func WriteText(w io.Writer, r domain.CompetitionRecord) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n%s\n\n", r.Title, r.Date)

	for _, g := range Results(r.Categories).Groups {
		fmt.Fprintf(&sb, "== %s ==\n", g.Label)
		tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "Rang\tAthlète\tÉpreuve\tPerformance\tDistinctions")
		for _, row := range g.Rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", row.Rank, row.Name, row.Event, row.Performance, MarksText(row.Marks))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		sb.WriteString("\n")
	}

	h := Highlights(r.Highlights)
	fmt.Fprintf(&sb, "== %s ==\n", h.Title)
	for _, item := range h.Items {
		fmt.Fprintf(&sb, "  - %s\n", item)
	}
	sb.WriteString("\n")

	c := Conditions(r.Conditions)
	fmt.Fprintf(&sb, "== %s ==\n", c.Title)
	for _, f := range c.Fields {
		fmt.Fprintf(&sb, "  %s: %s\n", f.Label, f.Value)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// MarksText joins badge labels with single spaces.
func MarksText(marks []BadgeMark) string {
	labels := make([]string, len(marks))
	for i, m := range marks {
		labels[i] = m.Label
	}
	return strings.Join(labels, " ")
}
