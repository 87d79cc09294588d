package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"openroles-engine/internal/config"
	"openroles-engine/internal/schedule"
)

func newScheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Run scrape and build on the configured cron expression",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			sched, err := schedule.New(cfg.Schedule.Cron, func() error {
				if err := runScrape(ctx, cfg); err != nil {
					return err
				}
				return runBuild(cfg)
			})
			if err != nil {
				return err
			}

			sched.Start(ctx)
			return nil
		},
	}
}
