package domain

import "github.com/google/uuid"

// TaskFilter narrows a task listing at the storage level. CategoryID and
// Uncategorized are exclusive; CategoryID wins when both are set.
type TaskFilter struct {
	CategoryID    *uuid.UUID
	Uncategorized bool
}
