package task

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/familypa-backend/internal/domain"
)

// Row is the persisted shape of a task. Status and Source may hold legacy
// values written by earlier versions; SourceType and Category are legacy
// columns kept only for compatibility and never written by this service.
type Row struct {
	ID              uuid.UUID   `db:"id"`
	FamilyID        uuid.UUID   `db:"family_id"`
	Title           string      `db:"title"`
	Description     *string     `db:"description"`
	Status          string      `db:"status"`
	CategoryID      *uuid.UUID  `db:"category_id"`
	Categories      []string    `db:"categories"`
	People          []uuid.UUID `db:"people"`
	DueAt           *time.Time  `db:"due_at"`
	ScheduledFor    *time.Time  `db:"scheduled_for"`
	HighRisk        *bool       `db:"high_risk"`
	Source          *string     `db:"source"`
	SourceType      *string     `db:"source_type"`
	Category        *string     `db:"category"`
	SourceMediaURL  *string     `db:"source_media_url"`
	Confidence      *float64    `db:"confidence"`
	AssigneeUserID  *uuid.UUID  `db:"assignee_user_id"`
	CreatedByUserID *uuid.UUID  `db:"created_by_user_id"`
	CreatedAt       time.Time   `db:"created_at"`
	UpdatedAt       *time.Time  `db:"updated_at"`
}

// MapLegacyStatus maps a stored status onto the current vocabulary. It never
// fails: unknown values become inbox.
func MapLegacyStatus(s string) domain.TaskStatus {
	if status := domain.TaskStatus(s); status.IsValid() {
		return status
	}
	switch s {
	case "open":
		return domain.TaskStatusInbox
	case "done":
		return domain.TaskStatusCompleted
	case "canceled":
		return domain.TaskStatusDelegated
	default:
		return domain.TaskStatusInbox
	}
}

// MapLegacySource maps a legacy source_type onto the current vocabulary.
// It never fails: unknown or missing values become manual.
func MapLegacySource(s *string) domain.TaskSource {
	if s == nil {
		return domain.TaskSourceManual
	}
	switch *s {
	case "whatsapp":
		return domain.TaskSourceVoice
	case "import":
		return domain.TaskSourceAPI
	case "manual":
		return domain.TaskSourceManual
	default:
		if src := domain.TaskSource(*s); src.IsValid() {
			return src
		}
		return domain.TaskSourceManual
	}
}

// ToDomain converts a stored row into a task. The current source column wins
// over the legacy source_type; a missing updated_at falls back to created_at.
func ToDomain(r Row) domain.Task {
	source := MapLegacySource(r.SourceType)
	if r.Source != nil {
		source = MapLegacySource(r.Source)
	}

	updatedAt := r.CreatedAt
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	categories := r.Categories
	if categories == nil {
		categories = []string{}
	}
	people := r.People
	if people == nil {
		people = []uuid.UUID{}
	}

	return domain.Task{
		ID:              r.ID,
		FamilyID:        r.FamilyID,
		Title:           r.Title,
		Description:     r.Description,
		Status:          MapLegacyStatus(r.Status),
		CategoryID:      r.CategoryID,
		Categories:      categories,
		People:          people,
		DueAt:           r.DueAt,
		ScheduledFor:    r.ScheduledFor,
		HighRisk:        r.HighRisk != nil && *r.HighRisk,
		Source:          source,
		SourceMediaURL:  r.SourceMediaURL,
		Confidence:      r.Confidence,
		AssigneeUserID:  r.AssigneeUserID,
		CreatedByUserID: r.CreatedByUserID,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

// FromDomain converts a task into its stored shape. Legacy columns are left empty.
func FromDomain(t domain.Task) Row {
	source := t.Source.String()
	highRisk := t.HighRisk
	updatedAt := t.UpdatedAt

	categories := t.Categories
	if categories == nil {
		categories = []string{}
	}
	people := t.People
	if people == nil {
		people = []uuid.UUID{}
	}

	return Row{
		ID:              t.ID,
		FamilyID:        t.FamilyID,
		Title:           t.Title,
		Description:     t.Description,
		Status:          t.Status.String(),
		CategoryID:      t.CategoryID,
		Categories:      categories,
		People:          people,
		DueAt:           t.DueAt,
		ScheduledFor:    t.ScheduledFor,
		HighRisk:        &highRisk,
		Source:          &source,
		SourceMediaURL:  t.SourceMediaURL,
		Confidence:      t.Confidence,
		AssigneeUserID:  t.AssigneeUserID,
		CreatedByUserID: t.CreatedByUserID,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       &updatedAt,
	}
}
