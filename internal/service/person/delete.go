package person

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Delete removes a person. Tasks that mention them keep the dangling id.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	familyID, err := s.families.FamilyID(ctx)
	if err != nil {
		return err
	}

	if err := s.people.Delete(ctx, familyID, id); err != nil {
		return fmt.Errorf("delete person: %w", err)
	}

	s.log.InfoContext(ctx, "person deleted",
		slog.String("family_id", familyID.String()),
		slog.String("person_id", id.String()),
	)

	return nil
}
