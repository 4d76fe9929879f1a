// Package category implements the category taxonomy repository using PostgreSQL.
package category

import (
	"context"
	"errors"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/familypa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/familypa-backend/internal/domain"
)

const table = "categories"

var columns = []string{
	"id", "family_id", "name", "slug", "parent_id", "sort_order",
	"is_active", "default_status", "created_at", "updated_at",
}

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID            uuid.UUID  `db:"id"`
	FamilyID      *uuid.UUID `db:"family_id"`
	Name          string     `db:"name"`
	Slug          string     `db:"slug"`
	ParentID      *uuid.UUID `db:"parent_id"`
	SortOrder     int        `db:"sort_order"`
	IsActive      bool       `db:"is_active"`
	DefaultStatus *string    `db:"default_status"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.Category {
	c := domain.Category{
		ID:        r.ID,
		FamilyID:  r.FamilyID,
		Name:      r.Name,
		Slug:      r.Slug,
		ParentID:  r.ParentID,
		SortOrder: r.SortOrder,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.DefaultStatus != nil {
		s := domain.TaskStatus(*r.DefaultStatus)
		if s.IsValid() {
			c.DefaultStatus = &s
		}
	}
	return c
}

func toDomainList(rows []row) []domain.Category {
	out := make([]domain.Category, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}

func selectBuilder() sq.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

// visibleTo restricts a query to the system-wide categories and those owned by familyID.
func visibleTo(familyID uuid.UUID) sq.Sqlizer {
	return sq.Or{sq.Eq{"family_id": nil}, sq.Eq{"family_id": familyID}}
}

// ListVisible returns the active categories a family may use: system-wide
// ones plus its own.
func (r *Repo) ListVisible(ctx context.Context, familyID uuid.UUID) ([]domain.Category, error) {
	q := selectBuilder().
		Where(sq.Eq{"is_active": true}).
		Where(visibleTo(familyID)).
		OrderBy("sort_order ASC", "name ASC")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "categories of family", familyID)
	}
	return toDomainList(rows), nil
}

// ListByFamily returns every category owned by the family, active or not.
func (r *Repo) ListByFamily(ctx context.Context, familyID uuid.UUID) ([]domain.Category, error) {
	q := selectBuilder().
		Where(sq.Eq{"family_id": familyID}).
		OrderBy("sort_order ASC", "name ASC")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "categories of family", familyID)
	}
	return toDomainList(rows), nil
}

// ListSystem returns every system-wide category, active or not.
func (r *Repo) ListSystem(ctx context.Context) ([]domain.Category, error) {
	q := selectBuilder().
		Where(sq.Eq{"family_id": nil}).
		OrderBy("sort_order ASC", "name ASC")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "categories", "system")
	}
	return toDomainList(rows), nil
}

// GetBySlug returns the active category with the given slug visible to the
// family. A family-owned category shadows a system-wide one with the same slug.
func (r *Repo) GetBySlug(ctx context.Context, familyID uuid.UUID, slug string) (domain.Category, error) {
	q := selectBuilder().
		Where(sq.Eq{"slug": slug, "is_active": true}).
		Where(visibleTo(familyID)).
		OrderBy("family_id NULLS LAST").
		Limit(1)

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.Category{}, postgres.MapError(err, "category", slug)
	}
	return rw.toDomain(), nil
}

// Create inserts a category. A slug clash within the same family (or among
// system-wide categories) yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c domain.Category) (domain.Category, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	var defaultStatus *string
	if c.DefaultStatus != nil {
		s := c.DefaultStatus.String()
		defaultStatus = &s
	}

	q := postgres.Builder().
		Insert(table).
		Columns("id", "family_id", "name", "slug", "parent_id", "sort_order", "is_active", "default_status").
		Values(c.ID, c.FamilyID, c.Name, c.Slug, c.ParentID, c.SortOrder, c.IsActive, defaultStatus).
		Suffix("RETURNING " + joinColumns())

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.Category{}, postgres.MapError(err, "category", c.Slug)
	}
	return rw.toDomain(), nil
}

// Upsert inserts a system-wide or family category, or refreshes name, parent,
// order and default status of the existing one with the same slug.
func (r *Repo) Upsert(ctx context.Context, c domain.Category) (domain.Category, error) {
	existing, err := r.getOwnedBySlug(ctx, c.FamilyID, c.Slug)
	if errors.Is(err, domain.ErrNotFound) {
		return r.Create(ctx, c)
	}
	if err != nil {
		return domain.Category{}, err
	}

	var defaultStatus *string
	if c.DefaultStatus != nil {
		s := c.DefaultStatus.String()
		defaultStatus = &s
	}
	q := postgres.Builder().
		Update(table).
		Set("name", c.Name).
		Set("parent_id", c.ParentID).
		Set("sort_order", c.SortOrder).
		Set("is_active", c.IsActive).
		Set("default_status", defaultStatus).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": existing.ID}).
		Suffix("RETURNING " + joinColumns())

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.Category{}, postgres.MapError(err, "category", c.Slug)
	}
	return rw.toDomain(), nil
}

func (r *Repo) getOwnedBySlug(ctx context.Context, familyID *uuid.UUID, slug string) (domain.Category, error) {
	owner := sq.Eq{"family_id": nil}
	if familyID != nil {
		owner = sq.Eq{"family_id": *familyID}
	}
	q := selectBuilder().Where(sq.Eq{"slug": slug}).Where(owner).Limit(1)

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.Category{}, postgres.MapError(err, "category", slug)
	}
	return rw.toDomain(), nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}
