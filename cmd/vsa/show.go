package main

import (
	"fmt"
	"strings"

	"github.com/bcdxn/vsa/internal/render"
	"github.com/bcdxn/vsa/internal/results"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var showCmd = &cobra.Command{
	Use:   "show [result-set]",
	Short: "Print a competition's results, highlights and conditions",
	Long: `Prints the results, highlights and conditions of a competition as plain text.
Without an argument the known result-set ids are listed.

Examples:
  vsa show regional
  vsa show cross`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dataset, err := results.Load(cfg.DatasetFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, id := range dataset.IDs() {
			rec, _ := dataset.Lookup(id)
			fmt.Fprintf(out, "%-12s %s\n", id, rec.Title)
		}
		return nil
	}

	rec, ok := dataset.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown result set %q (known: %s)", args[0], strings.Join(dataset.IDs(), ", "))
	}
	return render.WriteText(out, rec)
}
