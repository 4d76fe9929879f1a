package person

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/familypa-backend/internal/domain"
)

// Update applies a partial update. Blank notes clear the column.
func (s *Service) Update(ctx context.Context, id uuid.UUID, patch domain.PersonPatch) (domain.Person, error) {
	familyID, err := s.families.FamilyID(ctx)
	if err != nil {
		return domain.Person{}, err
	}

	if err := ValidatePatch(patch); err != nil {
		return domain.Person{}, err
	}

	if patch.Name.Set {
		patch.Name.Value = strings.TrimSpace(patch.Name.Value)
	}
	if patch.Notes.Set && !patch.Notes.Null {
		if notes := trimOrNil(&patch.Notes.Value); notes != nil {
			patch.Notes = domain.Value(*notes)
		} else {
			patch.Notes = domain.Null[string]()
		}
	}

	updated, err := s.people.Update(ctx, familyID, id, patch)
	if err != nil {
		return domain.Person{}, fmt.Errorf("update person: %w", err)
	}

	s.log.InfoContext(ctx, "person updated",
		slog.String("family_id", familyID.String()),
		slog.String("person_id", id.String()),
	)

	return updated, nil
}
