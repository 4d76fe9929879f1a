package category

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/familypa-backend/internal/domain"
)

type familyResolver interface {
	FamilyID(ctx context.Context) (uuid.UUID, error)
}

type categoryRepo interface {
	ListVisible(ctx context.Context, familyID uuid.UUID) ([]domain.Category, error)
	Create(ctx context.Context, c domain.Category) (domain.Category, error)
}

// Service provides category taxonomy operations scoped to the caller's family.
type Service struct {
	families   familyResolver
	categories categoryRepo
	log        *slog.Logger
}

// NewService creates a new category Service.
func NewService(
	log *slog.Logger,
	families familyResolver,
	categories categoryRepo,
) *Service {
	return &Service{
		families:   families,
		categories: categories,
		log:        log.With("service", "category"),
	}
}
