package person

import (
	"context"
	"fmt"

	"github.com/heartmarshall/familypa-backend/internal/domain"
)

// List returns the family's people ordered by name.
func (s *Service) List(ctx context.Context) ([]domain.Person, error) {
	familyID, err := s.families.FamilyID(ctx)
	if err != nil {
		return nil, err
	}

	people, err := s.people.List(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	return people, nil
}
