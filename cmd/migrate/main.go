// Command migrate manages the gophpass schema.
//
// Usage:
//
//	migrate up|down|status [-d dsn] [-c config.json]
//
// up applies pending migrations, down reverts the latest one and status
// prints the state of each migration.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophpass/internal/server/config"
	"github.com/dmitrijs2005/gophpass/internal/server/repositories/repomanager"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cfg := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1], cfg); err != nil {
		log.Fatalf("migrate %s: %v", os.Args[1], err)
	}
}

func run(ctx context.Context, command string, cfg *config.Config) error {
	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	rm, err := repomanager.NewPostgresRepositoryManager(db)
	if err != nil {
		return err
	}

	switch command {
	case "up":
		return rm.RunMigrations(ctx, db)
	case "down":
		return rm.RollbackMigration(ctx, db)
	case "status":
		return rm.MigrationStatus(ctx, db)
	default:
		usage()
		return nil
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: migrate up|down|status [-d dsn] [-c config.json]")
	os.Exit(2)
}
