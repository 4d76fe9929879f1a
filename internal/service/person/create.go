package person

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/familypa-backend/internal/domain"
)

// Create adds a person to the caller's family. Group defaults to adult.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Person, error) {
	familyID, err := s.families.FamilyID(ctx)
	if err != nil {
		return domain.Person{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.Person{}, err
	}

	group := domain.PersonGroupAdult
	if input.Group != nil {
		group = domain.PersonGroup(*input.Group)
	}

	created, err := s.people.Create(ctx, domain.Person{
		FamilyID: familyID,
		Name:     strings.TrimSpace(input.Name),
		Group:    group,
		Notes:    trimOrNil(input.Notes),
	})
	if err != nil {
		return domain.Person{}, fmt.Errorf("create person: %w", err)
	}

	s.log.InfoContext(ctx, "person created",
		slog.String("family_id", familyID.String()),
		slog.String("person_id", created.ID.String()),
		slog.String("group", group.String()),
	)

	return created, nil
}
