package domain

import (
	"sort"

	"github.com/google/uuid"
)

// BuildCategoryTree groups categories by parent and returns the top-level
// nodes. Siblings are ordered by (SortOrder, Name). Categories whose declared
// parent is not in the input are dropped; see OrphanedCategories.
func BuildCategoryTree(categories []Category) []*CategoryTreeNode {
	nodes := make(map[uuid.UUID]*CategoryTreeNode, len(categories))
	for _, c := range categories {
		nodes[c.ID] = &CategoryTreeNode{Category: c, Children: []*CategoryTreeNode{}}
	}

	roots := make([]*CategoryTreeNode, 0)
	for _, c := range categories {
		node := nodes[c.ID]
		if c.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[*c.ParentID]; ok && parent != node {
			parent.Children = append(parent.Children, node)
		}
	}

	sortNodes(roots)
	for _, root := range roots {
		assignLevels(root, 0)
	}
	return roots
}

// FlattenCategoryTree walks the tree in pre-order and returns bare categories.
func FlattenCategoryTree(tree []*CategoryTreeNode) []Category {
	var result []Category
	var walk func(n *CategoryTreeNode)
	walk = func(n *CategoryTreeNode) {
		result = append(result, n.Category)
		for _, child := range n.Children {
			walk(child)
		}
	}
	for _, root := range tree {
		walk(root)
	}
	if result == nil {
		result = []Category{}
	}
	return result
}

// OrphanedCategories returns the categories BuildCategoryTree drops: those
// whose parent chain does not reach a top-level category within the input.
func OrphanedCategories(categories []Category) []Category {
	reachable := make(map[uuid.UUID]bool, len(categories))
	for _, c := range FlattenCategoryTree(BuildCategoryTree(categories)) {
		reachable[c.ID] = true
	}

	orphans := []Category{}
	for _, c := range categories {
		if !reachable[c.ID] {
			orphans = append(orphans, c)
		}
	}
	return orphans
}

func assignLevels(n *CategoryTreeNode, level int) {
	n.Level = level
	sortNodes(n.Children)
	for _, child := range n.Children {
		assignLevels(child, level+1)
	}
}

func sortNodes(nodes []*CategoryTreeNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].SortOrder != nodes[j].SortOrder {
			return nodes[i].SortOrder < nodes[j].SortOrder
		}
		return nodes[i].Name < nodes[j].Name
	})
}
