package domain

import (
	"time"

	"github.com/google/uuid"
)

// Family is the tenant that owns tasks, categories and people.
type Family struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// FamilyMember links a user to a family. Phone is stored normalized
// (see NormalizePhone) and is how inbound messages are attributed.
type FamilyMember struct {
	FamilyID  uuid.UUID
	UserID    uuid.UUID
	Role      FamilyRole
	Phone     *string
	CreatedAt time.Time
}
