package task

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/familypa-backend/internal/domain"
)

const (
	MaxTitleLength       = 500
	MaxDescriptionLength = 5000
	MaxDaysAhead         = 365
)

// ListInput holds the parameters for listing tasks.
type ListInput struct {
	View          string
	PersonID      *uuid.UUID
	DaysAhead     *int
	CategoryID    *uuid.UUID
	Uncategorized bool
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var v domain.ValidationError
	if i.View != "" && !domain.ViewType(i.View).IsValid() {
		v.Add("view", "Invalid view. Must be one of: "+viewList())
	}
	if i.DaysAhead != nil && (*i.DaysAhead < 1 || *i.DaysAhead > MaxDaysAhead) {
		v.Add("days_ahead", "days_ahead must be between 1 and 365")
	}
	return v.Err()
}

func (i ListInput) viewFilter() domain.ViewFilter {
	view := domain.ViewType(i.View)
	if view == "" {
		view = domain.ViewAll
	}
	filter := domain.ViewFilter{Type: view, PersonID: i.PersonID}
	if i.DaysAhead != nil {
		filter.DaysAhead = *i.DaysAhead
	}
	return filter
}

// CreateInput holds the parameters for creating a task.
// Source defaults to manual.
type CreateInput struct {
	Title          string
	Description    *string
	Status         *string
	Source         domain.TaskSource
	CategoryID     *uuid.UUID
	SubcategoryID  *uuid.UUID
	Categories     []string
	People         []uuid.UUID
	DueAt          *time.Time
	ScheduledFor   *time.Time
	HighRisk       bool
	AssigneeUserID *uuid.UUID
}

// Validate checks the shape of the input. Checks run in order and stop at
// the first failure, so the client sees the most basic problem first.
func (i CreateInput) Validate() error {
	title := strings.TrimSpace(i.Title)
	if title == "" {
		return domain.NewValidationError("title", "Title is required")
	}
	if len(title) > MaxTitleLength {
		return domain.NewValidationError("title", "Title must be at most 500 characters")
	}
	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > MaxDescriptionLength {
		return domain.NewValidationError("description", "Description must be at most 5000 characters")
	}
	if i.Status != nil && !domain.TaskStatus(*i.Status).IsValid() {
		return domain.NewValidationError("status", invalidStatusMessage())
	}
	if i.Source != "" && i.Source != domain.TaskSourceManual && i.Source != domain.TaskSourceAPI {
		return domain.NewValidationError("source", "Invalid source. Must be one of: manual, api")
	}
	if i.SubcategoryID != nil && i.CategoryID == nil {
		return domain.NewValidationError("subcategory_id", "Invalid subcategory")
	}
	for _, path := range i.Categories {
		if !domain.IsValidCategoryPath(path) {
			return domain.NewValidationError("categories", "Unknown category: "+path)
		}
	}
	return nil
}

// ValidatePatch checks a partial update before any lookup happens.
func ValidatePatch(p domain.TaskPatch) error {
	if p.IsEmpty() {
		return domain.NewValidationError("body", "No fields to update")
	}
	if p.Title.Set {
		title := strings.TrimSpace(p.Title.Value)
		if p.Title.Null || title == "" {
			return domain.NewValidationError("title", "Title is required")
		}
		if len(title) > MaxTitleLength {
			return domain.NewValidationError("title", "Title must be at most 500 characters")
		}
	}
	if p.Description.Set && !p.Description.Null && len(strings.TrimSpace(p.Description.Value)) > MaxDescriptionLength {
		return domain.NewValidationError("description", "Description must be at most 5000 characters")
	}
	if p.Status.Set && (p.Status.Null || !p.Status.Value.IsValid()) {
		return domain.NewValidationError("status", invalidStatusMessage())
	}
	if p.Categories.Set && !p.Categories.Null {
		for _, path := range p.Categories.Value {
			if !domain.IsValidCategoryPath(path) {
				return domain.NewValidationError("categories", "Unknown category: "+path)
			}
		}
	}
	return nil
}

func invalidStatusMessage() string {
	names := make([]string, len(domain.TaskStatuses))
	for i, s := range domain.TaskStatuses {
		names[i] = s.String()
	}
	return "Invalid status. Must be one of: " + strings.Join(names, ", ")
}

func viewList() string {
	views := []domain.ViewType{
		domain.ViewAll, domain.ViewToday, domain.ViewUpcoming, domain.ViewPending,
		domain.ViewHighRisk, domain.ViewExpiringSoon, domain.ViewPerson,
	}
	names := make([]string, len(views))
	for i, v := range views {
		names[i] = v.String()
	}
	return strings.Join(names, ", ")
}
