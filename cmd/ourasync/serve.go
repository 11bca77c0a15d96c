package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sam-roberts/oura-data-visualiser/internal"
	"github.com/sam-roberts/oura-data-visualiser/internal/api"
	"github.com/sam-roberts/oura-data-visualiser/internal/config"
	"github.com/sam-roberts/oura-data-visualiser/internal/storage"
)

// app satisfies api.App for the serve command.
type app struct {
	logger internal.Logger
	store  storage.Store
}

func (a *app) Logger() internal.Logger { return a.logger }
func (a *app) Store() storage.Store    { return a.store }

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the synced rows as a read-only JSON API for dashboards",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		logger := internal.NewLogger(cfg.DebugMode, cfg.LogFile)

		store, err := storage.NewStore(cmd.Context(), cfg, logger)
		if err != nil {
			return fmt.Errorf("connect to storage: %w", err)
		}
		defer store.Close()

		router := api.NewRouter(&app{logger: logger, store: store})
		logger.Infof("serving sleep data on %s", cfg.ServeAddr)
		return router.Run(cfg.ServeAddr)
	},
}
