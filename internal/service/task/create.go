package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/familypa-backend/internal/domain"
	"github.com/heartmarshall/familypa-backend/pkg/ctxutil"
)

// Create adds a task for the caller's family. Without an explicit status the
// task takes the default status of its subcategory, then of its category,
// then inbox.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Task, error) {
	familyID, err := s.families.FamilyID(ctx)
	if err != nil {
		return domain.Task{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.Task{}, err
	}

	refs, err := s.resolveCategories(ctx, familyID, input.CategoryID, input.SubcategoryID, input.Categories)
	if err != nil {
		return domain.Task{}, err
	}

	people := uniqueIDs(input.People)
	if err := s.checkPeople(ctx, familyID, people); err != nil {
		return domain.Task{}, err
	}

	status := domain.TaskStatusInbox
	switch {
	case input.Status != nil:
		status = domain.TaskStatus(*input.Status)
	case refs.defaultStatus != nil:
		status = *refs.defaultStatus
	}

	source := input.Source
	if source == "" {
		source = domain.TaskSourceManual
	}

	var createdBy *uuid.UUID
	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		createdBy = &userID
	}

	categories := refs.paths
	if categories == nil {
		categories = []string{}
	}

	created, err := s.tasks.Create(ctx, domain.Task{
		ID:              uuid.New(),
		FamilyID:        familyID,
		Title:           strings.TrimSpace(input.Title),
		Description:     trimOrNil(input.Description),
		Status:          status,
		CategoryID:      refs.categoryID,
		Categories:      categories,
		People:          people,
		DueAt:           input.DueAt,
		ScheduledFor:    input.ScheduledFor,
		HighRisk:        input.HighRisk,
		Source:          source,
		AssigneeUserID:  input.AssigneeUserID,
		CreatedByUserID: createdBy,
	})
	if err != nil {
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}

	s.log.InfoContext(ctx, "task created",
		slog.String("family_id", familyID.String()),
		slog.String("task_id", created.ID.String()),
		slog.String("status", created.Status.String()),
	)

	return created, nil
}
