package domain

import "strings"

// CategoryPathSeparator joins the segments of a category path.
const CategoryPathSeparator = " > "

// CategoryName returns the last segment of a path ("Health > Dentist" -> "Dentist").
func CategoryName(path string) string {
	segments := strings.Split(path, CategoryPathSeparator)
	return strings.TrimSpace(segments[len(segments)-1])
}

// ParentPath returns the path without its last segment, or "" for a top-level path.
func ParentPath(path string) string {
	i := strings.LastIndex(path, CategoryPathSeparator)
	if i < 0 {
		return ""
	}
	return path[:i]
}

// CategoryLevel returns the number of segments in a path. Empty paths have level 0.
func CategoryLevel(path string) int {
	if strings.TrimSpace(path) == "" {
		return 0
	}
	return len(strings.Split(path, CategoryPathSeparator))
}

// IsValidCategoryPath reports whether path has at least one segment and every
// segment is non-empty and free of '>'.
func IsValidCategoryPath(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	for _, segment := range strings.Split(path, CategoryPathSeparator) {
		segment = strings.TrimSpace(segment)
		if segment == "" || strings.Contains(segment, ">") {
			return false
		}
	}
	return true
}

// BuildCategoryPath appends name to parentPath, or returns name alone for a top-level category.
func BuildCategoryPath(parentPath, name string) string {
	if parentPath == "" {
		return name
	}
	return parentPath + CategoryPathSeparator + name
}

// IsParentPath reports whether parent is a strict ancestor prefix of path,
// i.e. path == parent + " > " + suffix with a non-empty suffix.
func IsParentPath(parent, path string) bool {
	prefix := parent + CategoryPathSeparator
	return strings.HasPrefix(path, prefix) && len(path) > len(prefix)
}
