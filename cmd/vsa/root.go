package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/bcdxn/vsa/internal/config"
	"github.com/bcdxn/vsa/internal/consent"
	"github.com/bcdxn/vsa/internal/logger"
	"github.com/bcdxn/vsa/internal/metrics"
	"github.com/bcdxn/vsa/internal/results"
	"github.com/bcdxn/vsa/internal/search"
	"github.com/bcdxn/vsa/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "vsa",
	Short: "Browse the VSA athletics club site in the terminal",
	Long: `vsa renders the VSA athletics club site in the terminal: club presentation,
competition results with their highlights and conditions, site search and contact form.

Without a subcommand the interactive viewer starts. Configuration is read from the file
given with --config (or VSA_CONFIG) and from VSA_* environment variables.`,
	SilenceUsage: true,
	RunE:         runViewer,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $VSA_CONFIG)")
}

func runViewer(cmd *cobra.Command, _ []string) (err error) {
	var cfg *config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	l, f, err := logger.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer f.Close()

	dataset, err := results.Load(cfg.DatasetFile)
	if err != nil {
		l.Error("loading results", "err", err)
		return err
	}

	ctx, cancelCtx := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancelCtx()

	recorder := metrics.New()
	program := tui.New(
		tui.WithContext(ctx),
		tui.WithLogger(l),
		tui.WithDataset(dataset),
		tui.WithMetrics(recorder),
		tui.WithConsentStore(consent.NewStore(consentPath(cfg))),
		tui.WithNotifyDuration(cfg.NotifyDuration()),
		tui.WithSubmitDelay(cfg.SubmitDelay()),
		tui.WithNavOffset(cfg.NavOffset),
	)

	// index the site's pages in the background and hand the sections to the TUI
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		sections, err := search.IndexDir(ctx, cfg.SiteDir)
		if err != nil {
			l.Warn("indexing site pages", "dir", cfg.SiteDir, "err", err)
			return
		}
		l.Debug("indexed site pages", "dir", cfg.SiteDir, "sections", len(sections))
		if len(sections) > 0 {
			program.Send(tui.SectionsMsg(sections))
		}
	}()

	_, err = program.Run()
	cancelCtx() // stop the indexer if the TUI exits first
	wg.Wait()
	l.Debug("tui exited")

	if cfg.MetricsFile != "" {
		if werr := recorder.WriteTextfile(cfg.MetricsFile); werr != nil {
			l.Error("writing metrics", "file", cfg.MetricsFile, "err", werr)
		}
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.LoadFile(configFile)
	}
	return config.Load()
}

func consentPath(cfg *config.Config) string {
	if cfg.ConsentFile != "" {
		return cfg.ConsentFile
	}
	return consent.DefaultPath()
}
