package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is a node of the family task taxonomy. A nil FamilyID marks a
// system-wide category shared by every family. Categories are never deleted,
// only deactivated.
type Category struct {
	ID            uuid.UUID
	FamilyID      *uuid.UUID
	Name          string
	Slug          string
	ParentID      *uuid.UUID
	SortOrder     int
	IsActive      bool
	DefaultStatus *TaskStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsTopLevel reports whether the category has no parent.
func (c Category) IsTopLevel() bool {
	return c.ParentID == nil
}

// IsSystemWide reports whether the category is shared by all families.
func (c Category) IsSystemWide() bool {
	return c.FamilyID == nil
}

// VisibleTo reports whether a family may reference the category:
// it must be active and either system-wide or owned by that family.
func (c Category) VisibleTo(familyID uuid.UUID) bool {
	if !c.IsActive {
		return false
	}
	return c.FamilyID == nil || *c.FamilyID == familyID
}

// CategoryTreeNode is a derived, non-persisted view of a category with its
// ordered children. Level is the depth in the tree, 0 for top-level nodes.
type CategoryTreeNode struct {
	Category
	Level    int
	Children []*CategoryTreeNode
}

// CategoryWithPath pairs a category with its full "A > B" path and segment count.
type CategoryWithPath struct {
	Category
	Path  string
	Level int
}

// CategoryPath returns the "A > B > C" path of the category with the given id,
// walking parent links through categories. Returns "" when id is unknown.
// A broken parent link ends the walk at the last known ancestor.
func CategoryPath(categories []Category, id uuid.UUID) string {
	byID := make(map[uuid.UUID]Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	return categoryPath(byID, id)
}

func categoryPath(byID map[uuid.UUID]Category, id uuid.UUID) string {
	c, ok := byID[id]
	if !ok {
		return ""
	}

	path := c.Name
	seen := map[uuid.UUID]bool{id: true}
	for c.ParentID != nil {
		parent, ok := byID[*c.ParentID]
		if !ok || seen[parent.ID] {
			break
		}
		seen[parent.ID] = true
		path = BuildCategoryPath(parent.Name, path)
		c = parent
	}
	return path
}

// WithPaths decorates every category with its path and level.
func WithPaths(categories []Category) []CategoryWithPath {
	byID := make(map[uuid.UUID]Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	result := make([]CategoryWithPath, len(categories))
	for i, c := range categories {
		path := categoryPath(byID, c.ID)
		result[i] = CategoryWithPath{Category: c, Path: path, Level: CategoryLevel(path)}
	}
	return result
}
