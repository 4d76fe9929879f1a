package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/familypa-backend/internal/domain"
)

// Update applies a partial update. Only fields set in patch change; a null
// clears a nullable field.
func (s *Service) Update(ctx context.Context, id uuid.UUID, patch domain.TaskPatch) (domain.Task, error) {
	familyID, err := s.families.FamilyID(ctx)
	if err != nil {
		return domain.Task{}, err
	}

	if err := ValidatePatch(patch); err != nil {
		return domain.Task{}, err
	}

	if patch.Title.Set {
		patch.Title = domain.Value(strings.TrimSpace(patch.Title.Value))
	}
	if patch.Description.Set && !patch.Description.Null {
		if d := trimOrNil(&patch.Description.Value); d != nil {
			patch.Description = domain.Value(*d)
		} else {
			patch.Description = domain.Null[string]()
		}
	}

	var categoryID *uuid.UUID
	if patch.CategoryID.Set && !patch.CategoryID.Null {
		categoryID = &patch.CategoryID.Value
	}
	var paths []string
	if patch.Categories.Set && !patch.Categories.Null {
		paths = patch.Categories.Value
	}
	refs, err := s.resolveCategories(ctx, familyID, categoryID, nil, paths)
	if err != nil {
		return domain.Task{}, err
	}
	// Moving a task between categories carries its paths along unless the
	// patch names them itself.
	if patch.CategoryID.Set && !patch.Categories.Set {
		if patch.CategoryID.Null {
			patch.Categories = domain.Value([]string{})
		} else {
			patch.Categories = domain.Value(refs.paths)
		}
	}

	if patch.People.Set && !patch.People.Null {
		people := uniqueIDs(patch.People.Value)
		if err := s.checkPeople(ctx, familyID, people); err != nil {
			return domain.Task{}, err
		}
		patch.People = domain.Value(people)
	}

	updated, err := s.tasks.Update(ctx, familyID, id, patch)
	if err != nil {
		return domain.Task{}, fmt.Errorf("update task: %w", err)
	}

	s.log.InfoContext(ctx, "task updated",
		slog.String("family_id", familyID.String()),
		slog.String("task_id", id.String()),
	)

	return updated, nil
}
