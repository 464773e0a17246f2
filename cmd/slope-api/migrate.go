package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/terrasense/slope-monitor/internal/config"
	"github.com/terrasense/slope-monitor/internal/store"
	"github.com/terrasense/slope-monitor/pkg/log"
	"github.com/terrasense/slope-monitor/pkg/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the db",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			zap.S().Fatalf("reading configuration: %v", err)
		}

		logger := log.InitFromLevel(cfg.Service.LogLevel)
		defer func() { _ = logger.Sync() }()

		zap.S().Info("Running db migration")
		defer zap.S().Info("Db migrated")

		db, err := store.InitDB(cfg)
		if err != nil {
			zap.S().Fatalf("initializing data store: %v", err)
		}

		store := store.NewStore(db, zap.S().Named("store"))
		defer store.Close()

		if cfg.Service.MigrationFolder != "" {
			return migrations.MigrateStore(db, cfg.Service.MigrationFolder)
		}

		return store.InitialMigration()
	},
}
