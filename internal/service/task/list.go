package task

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/familypa-backend/internal/domain"
)

// ListResult is a view of the family's tasks with its display heading.
type ListResult struct {
	Filter      domain.ViewFilter
	Title       string
	Description string
	Tasks       []domain.Task
}

// List returns the family's tasks, newest first, narrowed by category and view.
func (s *Service) List(ctx context.Context, input ListInput) (ListResult, error) {
	familyID, err := s.families.FamilyID(ctx)
	if err != nil {
		return ListResult{}, err
	}

	if err := input.Validate(); err != nil {
		return ListResult{}, err
	}

	tasks, err := s.tasks.List(ctx, familyID, domain.TaskFilter{
		CategoryID:    input.CategoryID,
		Uncategorized: input.Uncategorized,
	})
	if err != nil {
		return ListResult{}, fmt.Errorf("list tasks: %w", err)
	}

	filter := input.viewFilter()
	return ListResult{
		Filter:      filter,
		Title:       domain.ViewTitle(filter),
		Description: domain.ViewDescription(filter),
		Tasks:       domain.FilterTasksByView(tasks, filter, time.Now()),
	}, nil
}

// Summary counts the family's tasks per dashboard bucket.
func (s *Service) Summary(ctx context.Context) (domain.TaskCounts, error) {
	familyID, err := s.families.FamilyID(ctx)
	if err != nil {
		return domain.TaskCounts{}, err
	}

	tasks, err := s.tasks.List(ctx, familyID, domain.TaskFilter{})
	if err != nil {
		return domain.TaskCounts{}, fmt.Errorf("list tasks: %w", err)
	}

	return domain.CountTasksByStatus(tasks), nil
}
