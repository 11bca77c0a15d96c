package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sam-roberts/oura-data-visualiser/internal"
	"github.com/sam-roberts/oura-data-visualiser/internal/config"
	"github.com/sam-roberts/oura-data-visualiser/internal/oura"
	"github.com/sam-roberts/oura-data-visualiser/internal/storage"
	"github.com/sam-roberts/oura-data-visualiser/internal/sync"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch both feeds and fill the table for the configured range",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		logger := internal.NewLogger(cfg.DebugMode, cfg.LogFile)

		ctx := cmd.Context()
		store, err := storage.NewStore(ctx, cfg, logger)
		if err != nil {
			return fmt.Errorf("connect to storage: %w", err)
		}
		defer store.Close()

		client := oura.NewClient(cfg.PersonalToken, logger)
		report, err := sync.NewRunner(cfg, client, store, logger).Run(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Successfully added (or ignored existing) %d row(s). %d day(s) of data was missing.\n",
			report.Inserted+report.Skipped, report.MissingDays)
		if report.WriteErrors > 0 {
			fmt.Printf("%d row(s) failed to write, see the log.\n", report.WriteErrors)
		}
		return nil
	},
}
