package task

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

type taskRepo interface {
	List(ctx context.Context, familyID uuid.UUID, f domain.TaskFilter) ([]domain.Task, error)
	Create(ctx context.Context, t domain.Task) (domain.Task, error)
	Update(ctx context.Context, familyID, id uuid.UUID, patch domain.TaskPatch) (domain.Task, error)
	Delete(ctx context.Context, familyID, id uuid.UUID) error
}

type categoryRepo interface {
	ListVisible(ctx context.Context, familyID uuid.UUID) ([]domain.Category, error)
}

type personRepo interface {
	CountByIDs(ctx context.Context, familyID uuid.UUID, ids []uuid.UUID) (int, error)
}

// Service provides task operations scoped to the caller's family.
type Service struct {
	families   familyResolver
	tasks      taskRepo
	categories categoryRepo
	people     personRepo
	log        *slog.Logger
}

// NewService creates a new task Service.
func NewService(
	log *slog.Logger,
	families familyResolver,
	tasks taskRepo,
	categories categoryRepo,
	people personRepo,
) *Service {
	return &Service{
		families:   families,
		tasks:      tasks,
		categories: categories,
		people:     people,
		log:        log.With("service", "task"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
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

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
