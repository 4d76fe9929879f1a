// Command seed-categories upserts the system-wide category taxonomy visible
// to every family. It is idempotent and runs in a single transaction.
//
// Flags:
//
//	--taxonomy       path to a YAML taxonomy (default: built-in)
//	--dry-run        validate the taxonomy without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/familypa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/familypa-backend/internal/adapter/postgres/category"
	"github.com/heartmarshall/familypa-backend/internal/app"
	"github.com/heartmarshall/familypa-backend/internal/app/seeder"
	"github.com/heartmarshall/familypa-backend/internal/config"
)

// Compile-time interface assertions.
var (
	_ seeder.CategoryUpserter = (*category.Repo)(nil)
	_ seeder.TxRunner         = (*postgres.TxManager)(nil)
)

func main() {
	taxonomyFlag := flag.String("taxonomy", "", "path to a YAML taxonomy (default: built-in)")
	dryRunFlag := flag.Bool("dry-run", false, "validate the taxonomy without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *taxonomyFlag != "" {
		seederCfg.TaxonomyPath = *taxonomyFlag
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger, category.New(pool), postgres.NewTxManager(pool), *seederCfg)

	nodes, err := pipeline.Taxonomy()
	if err != nil {
		logger.Error("load taxonomy", slog.String("error", err.Error()))
		os.Exit(1)
	}

	res, err := pipeline.Run(ctx, nodes)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding completed",
		slog.Int("planned", res.Planned),
		slog.Int("upserted", res.Upserted),
	)
}
