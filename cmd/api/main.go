package main

import (
	"fmt"
	"os"

	"cryptobuzz-srv/config"
	"cryptobuzz-srv/pkg/log"
	"cryptobuzz-srv/pkg/response"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "cryptobuzz",
		Short:        "Crypto price alerts, live prices and news",
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API, the price stream and the background jobs",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply the database schema",
			RunE:  runMigrate,
		},
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func bootstrap() (*config.Config, log.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
	})
	response.SetLogger(logger)
	return cfg, logger, nil
}
