package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/familypa-backend/internal/domain"
)

// Result holds the outcome of a seeding run.
type Result struct {
	Planned  int
	Upserted int
	Duration time.Duration
}

// Pipeline upserts a taxonomy parents-first in one transaction, so a failed
// run leaves the previous taxonomy untouched.
type Pipeline struct {
	log  *slog.Logger
	repo CategoryUpserter
	tx   TxRunner
	cfg  Config
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo CategoryUpserter, tx TxRunner, cfg Config) *Pipeline {
	return &Pipeline{
		log:  log.With("component", "seeder"),
		repo: repo,
		tx:   tx,
		cfg:  cfg,
	}
}

// Taxonomy returns the taxonomy named by the config, or the built-in one.
func (p *Pipeline) Taxonomy() ([]Node, error) {
	if p.cfg.TaxonomyPath != "" {
		return LoadTaxonomy(p.cfg.TaxonomyPath)
	}
	return DefaultTaxonomy()
}

// Run upserts every node as a system-wide category. Sibling order in the
// document becomes sort_order; slugs derive from the full path.
func (p *Pipeline) Run(ctx context.Context, nodes []Node) (Result, error) {
	start := time.Now()
	res := Result{Planned: Count(nodes)}

	if p.cfg.DryRun {
		p.log.InfoContext(ctx, "dry run, nothing written", slog.Int("categories", res.Planned))
		res.Duration = time.Since(start)
		return res, nil
	}

	err := p.tx.RunInTx(ctx, func(ctx context.Context) error {
		n, err := p.upsertLevel(ctx, nodes, nil, "")
		res.Upserted = n
		return err
	})
	res.Duration = time.Since(start)
	if err != nil {
		return res, fmt.Errorf("seed categories: %w", err)
	}

	p.log.InfoContext(ctx, "categories seeded",
		slog.Int("upserted", res.Upserted),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

func (p *Pipeline) upsertLevel(ctx context.Context, nodes []Node, parentID *uuid.UUID, parentPath string) (int, error) {
	count := 0
	for i, n := range nodes {
		name := strings.TrimSpace(n.Name)
		path := domain.BuildCategoryPath(parentPath, name)

		var status *domain.TaskStatus
		if n.DefaultStatus != "" {
			s := domain.TaskStatus(n.DefaultStatus)
			status = &s
		}

		saved, err := p.repo.Upsert(ctx, domain.Category{
			ID:            uuid.New(),
			Name:          name,
			Slug:          domain.Slugify(path),
			ParentID:      parentID,
			SortOrder:     i,
			IsActive:      true,
			DefaultStatus: status,
		})
		if err != nil {
			return count, fmt.Errorf("upsert %q: %w", path, err)
		}
		count++
		p.log.DebugContext(ctx, "category upserted", slog.String("path", path), slog.String("id", saved.ID.String()))

		id := saved.ID
		n2, err := p.upsertLevel(ctx, n.Children, &id, path)
		count += n2
		if err != nil {
			return count, err
		}
	}
	return count, nil
}
