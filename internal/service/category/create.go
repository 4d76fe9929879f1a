package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/familypa-backend/internal/domain"
)

// ErrDuplicatePath is returned when a visible category already has the requested path.
var ErrDuplicatePath = fmt.Errorf("category with this path already exists: %w", domain.ErrAlreadyExists)

// Create adds a family-owned category. The immediate parent named by the
// path must already be visible to the family.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.CategoryWithPath, error) {
	familyID, err := s.families.FamilyID(ctx)
	if err != nil {
		return domain.CategoryWithPath{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.CategoryWithPath{}, err
	}

	path := normalizePath(input.Path)

	visible, err := s.categories.ListVisible(ctx, familyID)
	if err != nil {
		return domain.CategoryWithPath{}, fmt.Errorf("list categories: %w", err)
	}

	var parentID *uuid.UUID
	parentPath := domain.ParentPath(path)
	for _, c := range domain.WithPaths(visible) {
		if strings.EqualFold(c.Path, path) {
			return domain.CategoryWithPath{}, ErrDuplicatePath
		}
		if parentPath != "" && c.Path == parentPath && (parentID == nil || !c.IsSystemWide()) {
			id := c.ID
			parentID = &id
		}
	}
	if parentPath != "" && parentID == nil {
		return domain.CategoryWithPath{}, domain.NewValidationError("parent_path", "Parent category not found")
	}

	var defaultStatus *domain.TaskStatus
	if input.DefaultStatus != nil {
		st := domain.TaskStatus(*input.DefaultStatus)
		defaultStatus = &st
	}

	created, err := s.categories.Create(ctx, domain.Category{
		ID:            uuid.New(),
		FamilyID:      &familyID,
		Name:          domain.CategoryName(path),
		Slug:          domain.Slugify(path),
		ParentID:      parentID,
		SortOrder:     input.SortOrder,
		IsActive:      true,
		DefaultStatus: defaultStatus,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.CategoryWithPath{}, ErrDuplicatePath
		}
		return domain.CategoryWithPath{}, fmt.Errorf("create category: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("family_id", familyID.String()),
		slog.String("category_id", created.ID.String()),
		slog.String("path", path),
	)

	return domain.CategoryWithPath{Category: created, Path: path, Level: domain.CategoryLevel(path)}, nil
}
