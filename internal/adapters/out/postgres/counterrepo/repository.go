// Package counterrepo implements the per-organization invoice counter on a
// single atomic SQL statement. The read-increment-write cycle lives inside
// the database, so two concurrent allocations for one organization can
// never observe the same value.
package counterrepo

import (
	"context"
	"errors"

	"loadflow/internal/core/domain/model/counter"
	"loadflow/internal/core/domain/model/kernel"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Retries on serialization failures and deadlocks. The upsert itself is
// atomic; retrying only matters when the surrounding transaction runs at a
// stricter isolation level.
const maxAllocateAttempts = 3

// GormCounterRepository implements CounterRepository using GORM.
type GormCounterRepository struct {
	db *gorm.DB
}

// NewGormCounterRepository creates a new GORM counter repository.
func NewGormCounterRepository(db *gorm.DB) *GormCounterRepository {
	return &GormCounterRepository{db: db}
}

// Allocate increments the organization's counter and returns the aggregate
// holding the new value. The first allocation for an organization creates
// its row with last_number = 1.
func (r *GormCounterRepository) Allocate(
	ctx context.Context, orgID kernel.UUID,
) (*counter.Counter, error) {
	if err := orgID.Validate(); err != nil {
		return nil, err
	}

	var (
		lastNumber int64
		err        error
	)

	for attempt := 0; attempt < maxAllocateAttempts; attempt++ {
		err = r.db.WithContext(ctx).Raw(`
			INSERT INTO counters (org_id, last_number)
			VALUES (?, 1)
			ON CONFLICT (org_id)
			DO UPDATE SET last_number = counters.last_number + 1
			RETURNING last_number
		`, orgID.Bytes()).Scan(&lastNumber).Error
		if err == nil {
			return counter.RestoreCounter(orgID, lastNumber)
		}
		if !isRetryable(err) {
			return nil, err
		}
	}

	return nil, err
}

// isRetryable reports whether the error is a transient Postgres conflict:
// serialization_failure (40001) or deadlock_detected (40P01).
func isRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "40001" || pqErr.Code == "40P01"
}
