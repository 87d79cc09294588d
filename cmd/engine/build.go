package main

import (
	"time"

	"github.com/spf13/cobra"

	"openroles-engine/internal/build"
	"openroles-engine/internal/config"
	"openroles-engine/internal/roster"
	"openroles-engine/internal/store"
)

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Normalize the raw dataset into the published artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			return runBuild(cfg)
		},
	}
}

// runBuild is the whole build pass: raw dataset plus roster in, clean
// jobs, rejected jobs, summaries and metadata out. Shared with the
// schedule command.
func runBuild(cfg config.Config) error {
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

	raw, err := st.LoadRawJobs()
	if err != nil {
		return err
	}

	out := build.Run(companies, raw, time.Now())
	return st.SaveBuild(out.Clean, out.Rejected, out.Summaries, out.Meta)
}
