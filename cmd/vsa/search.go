package main

import (
	"fmt"
	"strings"

	"github.com/bcdxn/vsa/internal/results"
	"github.com/bcdxn/vsa/internal/search"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the club's pages and competition results",
	Long: `Searches the sections of the HTML pages in site_dir and the competition results.
Queries shorter than three characters return nothing.

Examples:
  vsa search dubois
  vsa search "record du club"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dataset, err := results.Load(cfg.DatasetFile)
	if err != nil {
		return err
	}
	sections, err := search.IndexDir(cmd.Context(), cfg.SiteDir)
	if err != nil {
		return err
	}
	sections = append(sections, resultSections(dataset)...)

	out := cmd.OutOrStdout()
	found := search.Search(sections, strings.Join(args, " "))
	if len(found) == 0 {
		fmt.Fprintln(out, search.NoResults)
		return nil
	}
	for _, r := range found {
		fmt.Fprintf(out, "%s  (%s#%s)\n    %s\n", r.Title, r.Page, r.Section, r.Snippet)
	}
	return nil
}

// resultSections turns every result-set into a searchable section.
func resultSections(d results.Dataset) []search.Section {
	sections := make([]search.Section, 0, d.Len())
	for _, id := range d.IDs() {
		rec, _ := d.Lookup(id)
		text := []string{rec.Title, rec.Date}
		for _, c := range rec.Categories {
			text = append(text, c.Label)
			for _, a := range c.Athletes {
				text = append(text, a.Name, a.Event)
			}
		}
		text = append(text, rec.Highlights...)
		sections = append(sections, search.Section{
			ID:    id,
			Title: rec.Title,
			Text:  strings.Join(text, " "),
			Page:  "resultats",
		})
	}
	return sections
}
