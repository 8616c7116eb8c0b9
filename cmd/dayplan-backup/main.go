// Dayplan backup CLI — exports the store to a JSON document or restores it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/dayplan/dayplan/pkg/backup"
	"github.com/dayplan/dayplan/pkg/database"
)

func main() {
	restore := flag.Bool("restore", false, "restore the store from the backup file instead of exporting")
	file := flag.String("file", "", "backup file path (default dayplan_backup_<timestamp>.json on export)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	ctx := context.Background()
	dbClient, err := database.NewClient(ctx, database.LoadConfigFromEnv(databaseURL))
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = dbClient.Close() }()

	mgr := backup.NewManager(dbClient.Client)

	if *restore {
		if *file == "" {
			slog.Error("-file is required with -restore")
			os.Exit(1)
		}
		if err := mgr.ImportFromFile(ctx, *file); err != nil {
			slog.Error("Restore failed", "error", err)
			os.Exit(1)
		}
		return
	}

	path := *file
	if path == "" {
		path = fmt.Sprintf("dayplan_backup_%s.json", time.Now().Format("20060102_150405"))
	}
	if err := mgr.ExportToFile(ctx, path); err != nil {
		slog.Error("Backup failed", "error", err)
		os.Exit(1)
	}
}
