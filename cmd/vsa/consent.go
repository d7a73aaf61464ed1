package main

import (
	"fmt"

	"github.com/bcdxn/vsa/internal/consent"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var consentCmd = &cobra.Command{
	Use:   "consent [accept|decline|reset]",
	Short: "Show or change the stored cookie consent decision",
	Long: `Without an argument, prints the stored consent decision. accept and decline store
a decision; reset forgets it so the banner is shown again.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"accept", "decline", "reset"},
	RunE:      runConsent,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(consentCmd)
}

func runConsent(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store := consent.NewStore(consentPath(cfg))
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		var st consent.State
		st, err = store.Load()
		if err != nil {
			return err
		}
		if st.NeedsBanner() {
			fmt.Fprintln(out, "no decision stored")
			return nil
		}
		fmt.Fprintln(out, st)
		return nil
	}

	st := map[string]consent.State{
		"accept":  consent.StateAccepted,
		"decline": consent.StateDeclined,
		"reset":   consent.StateUnset,
	}[args[0]]
	if err = store.Save(st); err != nil {
		return fmt.Errorf("saving consent to %s: %w", store.Path(), err)
	}
	return nil
}
