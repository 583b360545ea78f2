package main

// Apply the saved_resumes schema:
//   DATABASE_URL=postgres://... go run ./cmd/migrate

import (
	"context"
	"os"

	"resume-editor/internal/shared/config"
	"resume-editor/internal/shared/storage/db"
	"resume-editor/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		telemetry.Error("migrate.connect_failed", map[string]any{"error": err})
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		telemetry.Error("migrate.failed", map[string]any{"error": err})
		sqlDB.Close()
		os.Exit(1)
	}
	telemetry.Info("migrate.done", nil)
}
