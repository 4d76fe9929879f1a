package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Delete removes a task of the caller's family.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	familyID, err := s.families.FamilyID(ctx)
	if err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, familyID, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	s.log.InfoContext(ctx, "task deleted",
		slog.String("family_id", familyID.String()),
		slog.String("task_id", id.String()),
	)

	return nil
}
