// Package seeder loads the system-wide category taxonomy into the database.
package seeder

import (
	"context"

	"github.com/heartmarshall/familypa-backend/internal/domain"
)

// CategoryUpserter is the repository contract consumed by the pipeline.
// Implemented by the postgres category repo.
type CategoryUpserter interface {
	Upsert(ctx context.Context, c domain.Category) (domain.Category, error)
}

// TxRunner runs fn inside a single transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
