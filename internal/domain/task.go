package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task is a unit of family work. Categories holds the full "A > B" paths the
// task is filed under; CategoryID is the single-category reference used by
// the id/parent_id taxonomy.
type Task struct {
	ID              uuid.UUID
	FamilyID        uuid.UUID
	Title           string
	Description     *string
	Status          TaskStatus
	CategoryID      *uuid.UUID
	Categories      []string
	People          []uuid.UUID
	DueAt           *time.Time
	ScheduledFor    *time.Time
	HighRisk        bool
	Source          TaskSource
	SourceMediaURL  *string
	Confidence      *float64
	AssigneeUserID  *uuid.UUID
	CreatedByUserID *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasPerson reports whether personID is linked to the task.
func (t Task) HasPerson(personID uuid.UUID) bool {
	for _, p := range t.People {
		if p == personID {
			return true
		}
	}
	return false
}

// HasCategoryContaining reports whether any category path contains s.
func (t Task) HasCategoryContaining(s string) bool {
	for _, c := range t.Categories {
		if strings.Contains(c, s) {
			return true
		}
	}
	return false
}

// IsValidConfidence reports whether c is a usable classification score.
func IsValidConfidence(c float64) bool {
	return c >= 0 && c <= 1
}

// TaskPatch carries the fields of a partial task update. Unset fields are left untouched.
type TaskPatch struct {
	Title          Field[string]
	Description    Field[string]
	Status         Field[TaskStatus]
	CategoryID     Field[uuid.UUID]
	Categories     Field[[]string]
	People         Field[[]uuid.UUID]
	DueAt          Field[time.Time]
	ScheduledFor   Field[time.Time]
	HighRisk       Field[bool]
	AssigneeUserID Field[uuid.UUID]
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return !p.Title.Set && !p.Description.Set && !p.Status.Set && !p.CategoryID.Set &&
		!p.Categories.Set && !p.People.Set && !p.DueAt.Set && !p.ScheduledFor.Set &&
		!p.HighRisk.Set && !p.AssigneeUserID.Set
}
