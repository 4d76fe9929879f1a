package person

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/familypa-backend/internal/domain"
)

type familyResolver interface {
	FamilyID(ctx context.Context) (uuid.UUID, error)
}

type personRepo interface {
	List(ctx context.Context, familyID uuid.UUID) ([]domain.Person, error)
	Create(ctx context.Context, p domain.Person) (domain.Person, error)
	Update(ctx context.Context, familyID, id uuid.UUID, patch domain.PersonPatch) (domain.Person, error)
	Delete(ctx context.Context, familyID, id uuid.UUID) error
}

// Service manages the people a family's tasks can reference.
type Service struct {
	families familyResolver
	people   personRepo
	log      *slog.Logger
}

// NewService creates a new person Service.
func NewService(log *slog.Logger, families familyResolver, people personRepo) *Service {
	return &Service{
		families: families,
		people:   people,
		log:      log.With("service", "person"),
	}
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
