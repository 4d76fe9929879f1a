package person

import (
	"strings"

	"github.com/heartmarshall/familypa-backend/internal/domain"
)

// MaxNameLength caps a person's display name.
const MaxNameLength = 200

// CreateInput holds the parameters for adding a person.
type CreateInput struct {
	Name  string
	Group *string
	Notes *string
}

func (i CreateInput) Validate() error {
	if err := validateName(i.Name); err != nil {
		return err
	}
	if i.Group != nil && !domain.PersonGroup(*i.Group).IsValid() {
		return invalidGroup()
	}
	return nil
}

// ValidatePatch checks a partial person update. Name and group cannot be
// cleared; notes can.
func ValidatePatch(p domain.PersonPatch) error {
	if p.IsEmpty() {
		return domain.NewValidationError("body", "No fields to update")
	}
	if p.Name.Set {
		if p.Name.Null {
			return domain.NewValidationError("name", "Name is required")
		}
		if err := validateName(p.Name.Value); err != nil {
			return err
		}
	}
	if p.Group.Set && (p.Group.Null || !p.Group.Value.IsValid()) {
		return invalidGroup()
	}
	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.NewValidationError("name", "Name is required")
	}
	if len([]rune(name)) > MaxNameLength {
		return domain.NewValidationError("name", "Name must be at most 200 characters")
	}
	return nil
}

func invalidGroup() error {
	names := make([]string, len(domain.PersonGroups))
	for i, g := range domain.PersonGroups {
		names[i] = g.String()
	}
	return domain.NewValidationError("group", "Invalid group. Must be one of: "+strings.Join(names, ", "))
}
