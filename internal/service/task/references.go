package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/familypa-backend/internal/domain"
)

// categoryRefs is what a task's category references resolve to.
type categoryRefs struct {
	categoryID    *uuid.UUID
	paths         []string
	defaultStatus *domain.TaskStatus
}

// resolveCategories checks category and subcategory ids and category paths
// against the categories visible to the family. The most specific category
// wins: its id is stored, its path fills an empty path list, and its default
// status is preferred.
func (s *Service) resolveCategories(
	ctx context.Context,
	familyID uuid.UUID,
	categoryID, subcategoryID *uuid.UUID,
	paths []string,
) (categoryRefs, error) {
	refs := categoryRefs{paths: paths}
	if categoryID == nil && subcategoryID == nil && len(paths) == 0 {
		return refs, nil
	}

	visible, err := s.categories.ListVisible(ctx, familyID)
	if err != nil {
		return categoryRefs{}, fmt.Errorf("list categories: %w", err)
	}

	usable := usableCategories(visible, familyID)
	byID := make(map[uuid.UUID]domain.CategoryWithPath, len(usable))
	byPath := make(map[string]bool, len(usable))
	for _, c := range usable {
		byID[c.ID] = c
		byPath[c.Path] = true
	}

	for _, p := range paths {
		if !byPath[p] {
			return categoryRefs{}, domain.NewValidationError("categories", "Unknown category: "+p)
		}
	}

	if categoryID == nil {
		return refs, nil
	}

	cat, ok := byID[*categoryID]
	if !ok {
		return categoryRefs{}, domain.NewValidationError("category_id", "Invalid category")
	}
	specific := cat

	if subcategoryID != nil {
		sub, ok := byID[*subcategoryID]
		if !ok || sub.ParentID == nil || *sub.ParentID != cat.ID {
			return categoryRefs{}, domain.NewValidationError("subcategory_id", "Invalid subcategory")
		}
		specific = sub
	}

	id := specific.ID
	refs.categoryID = &id
	if len(refs.paths) == 0 {
		refs.paths = []string{specific.Path}
	}

	switch {
	case specific.DefaultStatus != nil:
		refs.defaultStatus = specific.DefaultStatus
	case cat.DefaultStatus != nil:
		refs.defaultStatus = cat.DefaultStatus
	}

	return refs, nil
}

// usableCategories keeps the categories a family's tasks may reference:
// active, visible to the family, and with every ancestor usable as well.
// A child under a deactivated parent is dropped rather than given a
// truncated path.
func usableCategories(categories []domain.Category, familyID uuid.UUID) []domain.CategoryWithPath {
	usable := make(map[uuid.UUID]domain.Category, len(categories))
	for _, c := range categories {
		if c.VisibleTo(familyID) {
			usable[c.ID] = c
		}
	}

	for pruned := true; pruned; {
		pruned = false
		for id, c := range usable {
			if c.ParentID == nil {
				continue
			}
			if _, ok := usable[*c.ParentID]; !ok {
				delete(usable, id)
				pruned = true
			}
		}
	}

	kept := make([]domain.Category, 0, len(usable))
	for _, c := range categories {
		if _, ok := usable[c.ID]; ok {
			kept = append(kept, c)
		}
	}
	return domain.WithPaths(kept)
}

// checkPeople verifies every id names a person of the family.
func (s *Service) checkPeople(ctx context.Context, familyID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	n, err := s.people.CountByIDs(ctx, familyID, ids)
	if err != nil {
		return fmt.Errorf("count people: %w", err)
	}
	if n != len(ids) {
		return domain.NewValidationError("people", "Unknown person")
	}
	return nil
}
