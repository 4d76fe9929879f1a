package testhelper

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/familypa-backend/internal/adapter/postgres/category"
	"github.com/heartmarshall/familypa-backend/internal/adapter/postgres/family"
	"github.com/heartmarshall/familypa-backend/internal/domain"
)

// Phone returns a random NANP test number so repeated runs against a
// persistent database never trip the unique phone index.
func Phone() string {
	return fmt.Sprintf("+1555%07d", rand.IntN(10_000_000))
}

// SeedFamily creates a family whose owner is reachable by phone and
// returns both ids.
func SeedFamily(t *testing.T, pool *pgxpool.Pool, phone string) (familyID, userID uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	repo := family.New(pool)

	fam, err := repo.CreateFamily(ctx, "Family "+uuid.NewString()[:8])
	if err != nil {
		t.Fatalf("testhelper: create family: %v", err)
	}

	member, err := repo.AddMember(ctx, domain.FamilyMember{
		FamilyID: fam.ID,
		UserID:   uuid.New(),
		Role:     domain.FamilyRoleOwner,
		Phone:    &phone,
	})
	if err != nil {
		t.Fatalf("testhelper: add member: %v", err)
	}

	return fam.ID, member.UserID
}

// SeedCategory creates an active category owned by familyID, or a
// system-wide one when familyID is nil. The slug gets a random suffix so
// tests sharing the database never collide.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, familyID *uuid.UUID, name string, parentID *uuid.UUID) domain.Category {
	t.Helper()

	c, err := category.New(pool).Create(context.Background(), domain.Category{
		FamilyID: familyID,
		Name:     name,
		Slug:     domain.Slugify(name) + "-" + uuid.NewString()[:8],
		ParentID: parentID,
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("testhelper: seed category %q: %v", name, err)
	}
	return c
}
