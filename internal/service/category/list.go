package category

import (
	"context"
	"fmt"
	"sort"

	"github.com/heartmarshall/familypa-backend/internal/domain"
)

// List returns the system-wide and family categories the caller can use,
// ordered by path.
func (s *Service) List(ctx context.Context) ([]domain.CategoryWithPath, error) {
	familyID, err := s.families.FamilyID(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.ListVisible(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	result := domain.WithPaths(categories)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Path < result[j].Path
	})
	return result, nil
}

// Tree returns the visible categories arranged as a tree. Categories whose
// parent is not visible are left out.
func (s *Service) Tree(ctx context.Context) ([]*domain.CategoryTreeNode, error) {
	familyID, err := s.families.FamilyID(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.ListVisible(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return domain.BuildCategoryTree(categories), nil
}

// GetBySlug returns a visible category by slug. A family category shadows a
// system-wide one with the same slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (domain.CategoryWithPath, error) {
	familyID, err := s.families.FamilyID(ctx)
	if err != nil {
		return domain.CategoryWithPath{}, err
	}

	categories, err := s.categories.ListVisible(ctx, familyID)
	if err != nil {
		return domain.CategoryWithPath{}, fmt.Errorf("list categories: %w", err)
	}

	paths := domain.WithPaths(categories)
	found := -1
	for i, c := range paths {
		if c.Slug != slug {
			continue
		}
		if found < 0 || (paths[found].IsSystemWide() && !c.IsSystemWide()) {
			found = i
		}
	}
	if found < 0 {
		return domain.CategoryWithPath{}, fmt.Errorf("category %q: %w", slug, domain.ErrNotFound)
	}
	return paths[found], nil
}
