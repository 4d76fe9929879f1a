package family

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/familypa-backend/internal/domain"
	"github.com/heartmarshall/familypa-backend/pkg/ctxutil"
)

type familyRepo interface {
	FamilyIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
}

// Resolver maps the authenticated user to the family whose data they may touch.
type Resolver struct {
	families familyRepo
	log      *slog.Logger
}

// NewResolver creates a new family Resolver.
func NewResolver(log *slog.Logger, families familyRepo) *Resolver {
	return &Resolver{
		families: families,
		log:      log.With("service", "family"),
	}
}

// FamilyID returns the family of the user in ctx.
// A user without a membership gets domain.ErrNoFamily.
func (r *Resolver) FamilyID(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}

	familyID, err := r.families.FamilyIDByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			r.log.WarnContext(ctx, "user has no family", slog.String("user_id", userID.String()))
			return uuid.Nil, domain.ErrNoFamily
		}
		return uuid.Nil, fmt.Errorf("resolve family: %w", err)
	}

	return familyID, nil
}
