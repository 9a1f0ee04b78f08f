package main

import (
	"context"
	"fmt"

	"cryptobuzz-srv/config/postgre"
	"cryptobuzz-srv/migrations"

	"github.com/spf13/cobra"
)

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer postgre.Disconnect(db)

	scripts, err := migrations.Scripts()
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	// Scripts are idempotent (IF NOT EXISTS), so every run applies all of them.
	for _, s := range scripts {
		if _, err := db.ExecContext(ctx, s.SQL); err != nil {
			return fmt.Errorf("apply %s: %w", s.Name, err)
		}
		logger.Infof(ctx, "cmd.api.migrate: applied %s", s.Name)
	}
	return nil
}
