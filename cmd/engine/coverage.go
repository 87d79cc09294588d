package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"openroles-engine/internal/config"
	"openroles-engine/internal/store"
)

func newCoverageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coverage",
		Short: "Show the latest per-company coverage report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			st, err := store.New(cfg.App.DataDir)
			if err != nil {
				return err
			}
			cov, err := st.LoadCoverage()
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Company", "Source", "Status", "Raw", "Error", "Checked (UTC)"})
			for _, c := range cov {
				t.AppendRow(table.Row{c.CompanyName, c.SourceType, c.Status, c.OpenRolesRaw, c.Error, c.LastChecked})
			}
			t.Render()
			return nil
		},
	}
}
