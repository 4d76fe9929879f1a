package category

import (
	"strings"

	"github.com/heartmarshall/familypa-backend/internal/domain"
)

// CreateInput holds the parameters for creating a family category.
type CreateInput struct {
	Path          string
	ParentPath    *string
	SortOrder     int
	DefaultStatus *string
}

// Validate checks the path format and the parent relationship.
// Checks run in order and stop at the first failure.
func (i CreateInput) Validate() error {
	path := normalizePath(i.Path)
	if path == "" {
		return domain.NewValidationError("path", "Path is required")
	}
	if !domain.IsValidCategoryPath(path) || domain.Slugify(path) == "" {
		return domain.NewValidationError("path", `Invalid category path format. Use format: "Category" or "Category > Subcategory"`)
	}

	if i.ParentPath != nil {
		parent := normalizePath(*i.ParentPath)
		if !domain.IsValidCategoryPath(parent) {
			return domain.NewValidationError("parent_path", "Invalid parent path format")
		}
		if !domain.IsParentPath(parent, path) {
			return domain.NewValidationError("parent_path", "Parent path must be a valid parent of the category path")
		}
	}

	if i.DefaultStatus != nil && !domain.TaskStatus(*i.DefaultStatus).IsValid() {
		return domain.NewValidationError("default_status", "Invalid default status. Must be one of: "+statusList())
	}

	return nil
}

// normalizePath trims every segment so "Health >  Dentist " and
// "Health > Dentist" name the same category.
func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	segments := strings.Split(path, domain.CategoryPathSeparator)
	for i, s := range segments {
		segments[i] = strings.TrimSpace(s)
	}
	return strings.Join(segments, domain.CategoryPathSeparator)
}

func statusList() string {
	names := make([]string, len(domain.TaskStatuses))
	for i, s := range domain.TaskStatuses {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}
