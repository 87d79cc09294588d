package main

import (
	"context"

	"github.com/spf13/cobra"

	"openroles-engine/internal/config"
	"openroles-engine/internal/roster"
	"openroles-engine/internal/scrape"
	"openroles-engine/internal/store"
)

func newScrapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scrape",
		Short: "Scrape every roster company and write the raw dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			return runScrape(cmd.Context(), cfg)
		},
	}
}

// runScrape is the whole scrape pass: roster in, raw jobs and coverage
// out. Shared with the schedule command.
func runScrape(ctx context.Context, cfg config.Config) error {
	companies, err := roster.Load(cfg.App.Roster)
	if err != nil {
		return err
	}

	st, err := store.New(cfg.App.DataDir)
	if err != nil {
		return err
	}
	release, err := st.Lock()
	if err != nil {
		return err
	}
	defer release()

	res := scrape.NewRunner().Run(ctx, companies)
	return st.SaveScrape(res.Jobs, res.Coverage)
}
