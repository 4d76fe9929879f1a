package diagnostics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/familypa-backend/internal/domain"
	"github.com/heartmarshall/familypa-backend/pkg/ctxutil"
)

// SampleSize is how many system-wide categories a report shows.
const SampleSize = 5

type familyResolver interface {
	FamilyID(ctx context.Context) (uuid.UUID, error)
}

type categoryRepo interface {
	ListByFamily(ctx context.Context, familyID uuid.UUID) ([]domain.Category, error)
	ListSystem(ctx context.Context) ([]domain.Category, error)
}

// Report describes the state of a family's category taxonomy.
type Report struct {
	UserID           uuid.UUID
	FamilyID         uuid.UUID
	FamilyCount      int
	FamilyCategories []domain.CategoryWithPath
	SystemCount      int
	SystemSample     []domain.CategoryWithPath
	Orphaned         []domain.Category
	TopLevelCount    int
	SubcategoryCount int
}

// Service builds taxonomy diagnostics.
type Service struct {
	families   familyResolver
	categories categoryRepo
	log        *slog.Logger
}

// NewService creates a new diagnostics Service.
func NewService(log *slog.Logger, families familyResolver, categories categoryRepo) *Service {
	return &Service{
		families:   families,
		categories: categories,
		log:        log.With("service", "diagnostics"),
	}
}

// Categories reports on the taxonomy visible to the caller's family.
func (s *Service) Categories(ctx context.Context) (Report, error) {
	familyID, err := s.families.FamilyID(ctx)
	if err != nil {
		return Report{}, err
	}

	report, err := s.Inspect(ctx, familyID)
	if err != nil {
		return Report{}, err
	}
	report.UserID, _ = ctxutil.UserIDFromCtx(ctx)
	return report, nil
}

// Inspect reports on the system-wide taxonomy plus the categories of familyID.
// uuid.Nil inspects the system-wide taxonomy alone.
func (s *Service) Inspect(ctx context.Context, familyID uuid.UUID) (Report, error) {
	var owned []domain.Category
	if familyID != uuid.Nil {
		var err error
		owned, err = s.categories.ListByFamily(ctx, familyID)
		if err != nil {
			return Report{}, fmt.Errorf("list family categories: %w", err)
		}
	}

	system, err := s.categories.ListSystem(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list system categories: %w", err)
	}

	visible := make([]domain.Category, 0, len(owned)+len(system))
	visible = append(visible, system...)
	visible = append(visible, owned...)

	// Paths resolve across both sets since family subcategories may hang
	// under system-wide parents.
	withPaths := domain.WithPaths(visible)
	systemRows := withPaths[:len(system)]
	familyRows := withPaths[len(system):]

	report := Report{
		FamilyID:         familyID,
		FamilyCount:      len(owned),
		FamilyCategories: familyRows,
		SystemCount:      len(system),
		SystemSample:     systemRows[:min(SampleSize, len(systemRows))],
		Orphaned:         domain.OrphanedCategories(visible),
	}
	for _, c := range visible {
		if c.IsTopLevel() {
			report.TopLevelCount++
		} else {
			report.SubcategoryCount++
		}
	}

	if len(report.Orphaned) > 0 {
		s.log.WarnContext(ctx, "orphaned categories found",
			slog.String("family_id", familyID.String()),
			slog.Int("count", len(report.Orphaned)),
		)
	}

	return report, nil
}
