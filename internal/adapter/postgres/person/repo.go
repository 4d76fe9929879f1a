// Package person implements the people repository using PostgreSQL.
package person

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/familypa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/familypa-backend/internal/domain"
)

const table = "people"

var columns = []string{"id", "family_id", "name", "group_type", "notes", "created_at", "updated_at"}

// Repo provides person persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new person repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	FamilyID  uuid.UUID `db:"family_id"`
	Name      string    `db:"name"`
	GroupType string    `db:"group_type"`
	Notes     *string   `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Person {
	return domain.Person{
		ID:        r.ID,
		FamilyID:  r.FamilyID,
		Name:      r.Name,
		Group:     domain.PersonGroup(r.GroupType),
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// List returns the family's people ordered by name.
func (r *Repo) List(ctx context.Context, familyID uuid.UUID) ([]domain.Person, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"family_id": familyID}).
		OrderBy("name ASC")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "people of family", familyID)
	}

	people := make([]domain.Person, len(rows))
	for i, rw := range rows {
		people[i] = rw.toDomain()
	}
	return people, nil
}

// Create inserts a person.
func (r *Repo) Create(ctx context.Context, p domain.Person) (domain.Person, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	q := postgres.Builder().
		Insert(table).
		Columns("id", "family_id", "name", "group_type", "notes").
		Values(p.ID, p.FamilyID, p.Name, p.Group.String(), p.Notes).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.Person{}, postgres.MapError(err, "person", p.ID)
	}
	return rw.toDomain(), nil
}

// Update applies the set fields of patch to the family's person.
func (r *Repo) Update(ctx context.Context, familyID, id uuid.UUID, patch domain.PersonPatch) (domain.Person, error) {
	q := postgres.Builder().
		Update(table).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "family_id": familyID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	if patch.Name.Set {
		q = q.Set("name", patch.Name.Value)
	}
	if patch.Group.Set && !patch.Group.Null {
		q = q.Set("group_type", patch.Group.Value.String())
	}
	if patch.Notes.Set {
		q = q.Set("notes", patch.Notes.Ptr())
	}

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.Person{}, postgres.MapError(err, "person", id)
	}
	return rw.toDomain(), nil
}

// Delete removes the family's person. Tasks keep their dangling references.
func (r *Repo) Delete(ctx context.Context, familyID, id uuid.UUID) error {
	q := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id, "family_id": familyID})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "person", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("person %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CountByIDs returns how many of ids belong to the family.
func (r *Repo) CountByIDs(ctx context.Context, familyID uuid.UUID, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	q := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(sq.Eq{"family_id": familyID}).
		Where("id = ANY(?)", ids)

	var n int
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &n, q); err != nil {
		return 0, postgres.MapError(err, "people of family", familyID)
	}
	return n, nil
}
