// Package task implements the task repository using PostgreSQL.
package task

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/familypa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/familypa-backend/internal/domain"
)

const table = "tasks"

var columns = []string{
	"id", "family_id", "title", "description", "status", "category_id",
	"categories", "people", "due_at", "scheduled_for", "high_risk",
	"source", "source_type", "category", "source_media_url", "confidence",
	"assignee_user_id", "created_by_user_id", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new task repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns the family's tasks, newest first.
func (r *Repo) List(ctx context.Context, familyID uuid.UUID, f domain.TaskFilter) ([]domain.Task, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"family_id": familyID}).
		OrderBy("created_at DESC")

	switch {
	case f.CategoryID != nil:
		q = q.Where(sq.Eq{"category_id": *f.CategoryID})
	case f.Uncategorized:
		q = q.Where(sq.Eq{"category_id": nil})
	}

	var rows []Row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "tasks of family", familyID)
	}

	tasks := make([]domain.Task, len(rows))
	for i, rw := range rows {
		tasks[i] = ToDomain(rw)
	}
	return tasks, nil
}

// Create inserts a task and returns it as stored.
func (r *Repo) Create(ctx context.Context, t domain.Task) (domain.Task, error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	rw := FromDomain(t)

	q := postgres.Builder().
		Insert(table).
		Columns(
			"id", "family_id", "title", "description", "status", "category_id",
			"categories", "people", "due_at", "scheduled_for", "high_risk",
			"source", "source_media_url", "confidence", "assignee_user_id", "created_by_user_id",
		).
		Values(
			rw.ID, rw.FamilyID, rw.Title, rw.Description, rw.Status, rw.CategoryID,
			rw.Categories, rw.People, rw.DueAt, rw.ScheduledFor, rw.HighRisk,
			rw.Source, rw.SourceMediaURL, rw.Confidence, rw.AssigneeUserID, rw.CreatedByUserID,
		).
		Suffix(returning)

	var created Row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, q); err != nil {
		return domain.Task{}, postgres.MapError(err, "task", t.ID)
	}
	return ToDomain(created), nil
}

// Update applies the set fields of patch to the family's task and returns
// the result. An empty patch is a no-op that still returns the current task.
func (r *Repo) Update(ctx context.Context, familyID, id uuid.UUID, patch domain.TaskPatch) (domain.Task, error) {
	q := postgres.Builder().
		Update(table).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "family_id": familyID}).
		Suffix(returning)

	q = setField(q, "title", patch.Title)
	q = setField(q, "description", patch.Description)
	q = setEnum(q, "status", patch.Status)
	q = setField(q, "category_id", patch.CategoryID)
	q = setField(q, "due_at", patch.DueAt)
	q = setField(q, "scheduled_for", patch.ScheduledFor)
	q = setField(q, "assignee_user_id", patch.AssigneeUserID)
	if patch.HighRisk.Set {
		q = q.Set("high_risk", !patch.HighRisk.Null && patch.HighRisk.Value)
	}
	if patch.Categories.Set {
		categories := patch.Categories.Value
		if patch.Categories.Null || categories == nil {
			categories = []string{}
		}
		q = q.Set("categories", categories)
	}
	if patch.People.Set {
		people := patch.People.Value
		if patch.People.Null || people == nil {
			people = []uuid.UUID{}
		}
		q = q.Set("people", people)
	}

	var updated Row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &updated, q); err != nil {
		return domain.Task{}, postgres.MapError(err, "task", id)
	}
	return ToDomain(updated), nil
}

// Delete removes the family's task. A task owned by another family is reported as not found.
func (r *Repo) Delete(ctx context.Context, familyID, id uuid.UUID) error {
	q := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id, "family_id": familyID})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "task", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func setField[T any](q sq.UpdateBuilder, column string, f domain.Field[T]) sq.UpdateBuilder {
	if !f.Set {
		return q
	}
	return q.Set(column, f.Ptr())
}

func setEnum[T ~string](q sq.UpdateBuilder, column string, f domain.Field[T]) sq.UpdateBuilder {
	if !f.Set || f.Null {
		return q
	}
	return q.Set(column, string(f.Value))
}
