// Package family implements family membership lookups using PostgreSQL.
package family

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/familypa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/familypa-backend/internal/domain"
)

// Repo provides family persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new family repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type familyRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type memberRow struct {
	FamilyID  uuid.UUID `db:"family_id"`
	UserID    uuid.UUID `db:"user_id"`
	Role      string    `db:"role"`
	Phone     *string   `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
}

// FamilyIDByUser returns the family the user belongs to. A user in several
// families resolves to the earliest membership.
func (r *Repo) FamilyIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	q := postgres.Builder().
		Select("family_id").
		From("family_members").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		Limit(1)

	var familyID uuid.UUID
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &familyID, q); err != nil {
		return uuid.Nil, postgres.MapError(err, "family member", userID)
	}
	return familyID, nil
}

// FamilyIDByPhone returns the family of the member registered with phone,
// which must already be normalized.
func (r *Repo) FamilyIDByPhone(ctx context.Context, phone string) (uuid.UUID, error) {
	q := postgres.Builder().
		Select("family_id").
		From("family_members").
		Where(sq.Eq{"phone": phone}).
		Limit(1)

	var familyID uuid.UUID
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &familyID, q); err != nil {
		return uuid.Nil, postgres.MapError(err, "family member phone", phone)
	}
	return familyID, nil
}

// CreateFamily inserts a new family.
func (r *Repo) CreateFamily(ctx context.Context, name string) (domain.Family, error) {
	id := uuid.New()
	q := postgres.Builder().
		Insert("families").
		Columns("id", "name").
		Values(id, name).
		Suffix("RETURNING id, name, created_at")

	var rw familyRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.Family{}, postgres.MapError(err, "family", id)
	}
	return domain.Family{ID: rw.ID, Name: rw.Name, CreatedAt: rw.CreatedAt}, nil
}

// AddMember links a user to a family. The phone, when present, is normalized
// before it is stored.
func (r *Repo) AddMember(ctx context.Context, m domain.FamilyMember) (domain.FamilyMember, error) {
	var phone *string
	if m.Phone != nil {
		if p := domain.NormalizePhone(*m.Phone); p != "" {
			phone = &p
		}
	}
	role := m.Role
	if !role.IsValid() {
		role = domain.FamilyRoleMember
	}

	q := postgres.Builder().
		Insert("family_members").
		Columns("family_id", "user_id", "role", "phone").
		Values(m.FamilyID, m.UserID, role.String(), phone).
		Suffix("RETURNING family_id, user_id, role, phone, created_at")

	var rw memberRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.FamilyMember{}, postgres.MapError(err, "family member", m.UserID)
	}
	return domain.FamilyMember{
		FamilyID:  rw.FamilyID,
		UserID:    rw.UserID,
		Role:      domain.FamilyRole(rw.Role),
		Phone:     rw.Phone,
		CreatedAt: rw.CreatedAt,
	}, nil
}
