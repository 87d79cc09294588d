package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

var cfgFile string

func main() {
	// .env is optional and feeds the OPENROLES_* overrides.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "engine",
		Short:         "Company careers-page scraper and job dataset builder",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "config/config.yml", "config file path")

	root.AddCommand(newScrapeCmd())
	root.AddCommand(newBuildCmd())
	root.AddCommand(newCoverageCmd())
	root.AddCommand(newScheduleCmd())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the engine version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("engine %s\n", version)
		},
	})

	if err := root.Execute(); err != nil {
		log.Fatalf("[engine] %v", err)
	}
}
