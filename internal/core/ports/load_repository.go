package ports

import (
	"context"

	"loadflow/internal/core/domain/model/kernel"
	"loadflow/internal/core/domain/model/load"
)

// LoadRepository defines the persistence contract for load aggregates.
type LoadRepository interface {
	// Add persists a new load aggregate together with its stop batch.
	Add(ctx context.Context, aggregate *load.Load) error

	// Update persists changes to an existing load's mutable fields
	// (progress cursor, invoiced-at, paid-at). Stops are append-only and
	// never rewritten.
	Update(ctx context.Context, aggregate *load.Load) error

	// Get retrieves a load aggregate with its stops.
	Get(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// GetForUpdate retrieves a load and locks its row for the duration of
	// the surrounding transaction. Progress mutations read through this so
	// each one observes the previous one's result.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error)
}
