// Command verify-categories prints a diagnostic report of the category
// taxonomy: the system-wide set, one family's own categories, level counts
// and categories whose parent is missing.
//
// Flags:
//
//	--family  family id to inspect (default: system-wide taxonomy only)
//
// Exit codes: 0 = healthy, 1 = error, 2 = orphaned categories found.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/familypa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/familypa-backend/internal/adapter/postgres/category"
	familyrepo "github.com/heartmarshall/familypa-backend/internal/adapter/postgres/family"
	"github.com/heartmarshall/familypa-backend/internal/app"
	"github.com/heartmarshall/familypa-backend/internal/config"
	"github.com/heartmarshall/familypa-backend/internal/service/diagnostics"
	"github.com/heartmarshall/familypa-backend/internal/service/family"
)

func main() {
	familyFlag := flag.String("family", "", "family id to inspect")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	familyID := uuid.Nil
	if *familyFlag != "" {
		familyID, err = uuid.Parse(*familyFlag)
		if err != nil {
			logger.Error("invalid --family", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	resolver := family.NewResolver(logger, familyrepo.New(pool))
	svc := diagnostics.NewService(logger, resolver, category.New(pool))

	report, err := svc.Inspect(ctx, familyID)
	if err != nil {
		logger.Error("inspect categories", slog.String("error", err.Error()))
		os.Exit(1)
	}

	printReport(os.Stdout, report)

	if len(report.Orphaned) > 0 {
		os.Exit(2)
	}
}

func printReport(w io.Writer, r diagnostics.Report) {
	fmt.Fprintf(w, "System-wide categories: %d\n", r.SystemCount)
	for _, c := range r.SystemSample {
		fmt.Fprintf(w, "  %s (%s)\n", c.Path, c.Slug)
	}
	if r.SystemCount > len(r.SystemSample) {
		fmt.Fprintf(w, "  ... and %d more\n", r.SystemCount-len(r.SystemSample))
	}

	if r.FamilyID != uuid.Nil {
		fmt.Fprintf(w, "\nFamily %s categories: %d\n", r.FamilyID, r.FamilyCount)
		for _, c := range r.FamilyCategories {
			fmt.Fprintf(w, "  %s (%s)\n", c.Path, c.Slug)
		}
	}

	fmt.Fprintf(w, "\nTop-level: %d, subcategories: %d\n", r.TopLevelCount, r.SubcategoryCount)

	if len(r.Orphaned) == 0 {
		fmt.Fprintln(w, "No orphaned categories.")
		return
	}
	fmt.Fprintf(w, "Orphaned categories: %d\n", len(r.Orphaned))
	for _, c := range r.Orphaned {
		fmt.Fprintf(w, "  %s (%s) parent %s missing\n", c.Name, c.Slug, c.ParentID)
	}
}
