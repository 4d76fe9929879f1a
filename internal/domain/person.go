package domain

import (
	"time"

	"github.com/google/uuid"
)

// Person is someone a task can be about: a family member, a pet, or a contact.
// Tasks reference people by id without cascading deletes.
type Person struct {
	ID        uuid.UUID
	FamilyID  uuid.UUID
	Name      string
	Group     PersonGroup
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PersonPatch carries the fields of a partial person update.
type PersonPatch struct {
	Name  Field[string]
	Group Field[PersonGroup]
	Notes Field[string]
}

// IsEmpty reports whether the patch changes nothing.
func (p PersonPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Group.Set && !p.Notes.Set
}
