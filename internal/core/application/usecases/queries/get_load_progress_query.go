// Package queries contains read operations against the database.
// Implements the Query side of the CQRS architecture: handlers bypass the
// repositories and read with raw SQL, then project rows through the pure
// domain functions so the step sequence and status are never stored stale.
package queries

import (
	"errors"

	"loadflow/internal/core/domain/model/kernel"
	"loadflow/internal/core/domain/model/load"
)

var (
	ErrGetLoadProgressQueryIsNotConstructed = errors.New(
		"GetLoadProgressQuery must be created via NewGetLoadProgressQuery constructor",
	)
)

// GetLoadProgressQuery retrieves the full progress projection of one load:
// the detailed and visible step sequences, the cursor, its visible index and
// the coarse status.
//
// Example:
//
//	query, err := NewGetLoadProgressQuery(loadID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetLoadProgressQueryHandler(db)
//
//	progress, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get load progress: %w", err)
//	}
//
//	fmt.Printf("load is at %q (%s)\n",
//	    progress.DetailedSteps[progress.Cursor], progress.Status)
type GetLoadProgressQuery struct {
	loadID kernel.UUID
}

// NewGetLoadProgressQuery creates a query for one load's progress projection.
func NewGetLoadProgressQuery(loadID kernel.UUID) (GetLoadProgressQuery, error) {
	if err := loadID.Validate(); err != nil {
		return GetLoadProgressQuery{}, err
	}
	return GetLoadProgressQuery{loadID: loadID}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLoadProgressQuery) Validate() error {
	if q.loadID.Validate() != nil {
		return ErrGetLoadProgressQueryIsNotConstructed
	}
	return nil
}

// LoadID returns the identifier of the load being queried.
func (q GetLoadProgressQuery) LoadID() kernel.UUID {
	return q.loadID
}

// GetLoadProgressQueryResponse is the progress read model of a single load.
// DetailedSteps and VisibleSteps are derived from the load's stops on every
// read: editing stops changes the sequences without any stored migration.
type GetLoadProgressQueryResponse struct {
	LoadID        kernel.UUID
	InvoiceNumber string
	DetailedSteps []string
	VisibleSteps  []string
	Cursor        int
	VisibleIndex  int
	Status        load.Status
}
