package ports

import (
	"context"

	"loadflow/internal/core/domain/model/counter"
	"loadflow/internal/core/domain/model/kernel"
)

// CounterRepository manages the per-organization invoice number sequence.
type CounterRepository interface {
	// Allocate atomically increments the organization's counter and returns
	// the aggregate holding the newly allocated number, creating the
	// counter row on first use. Concurrent allocations for the same
	// organization are serialized by the store; different organizations
	// never contend.
	Allocate(ctx context.Context, orgID kernel.UUID) (*counter.Counter, error)
}
