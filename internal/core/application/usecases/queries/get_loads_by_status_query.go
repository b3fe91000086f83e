package queries

import (
	"errors"

	"loadflow/internal/core/domain/model/kernel"
	"loadflow/internal/core/domain/model/load"
)

var (
	ErrGetLoadsByStatusQueryIsNotConstructed = errors.New(
		"GetLoadsByStatusQuery must be created via NewGetLoadsByStatusQuery constructor",
	)
)

// GetLoadsByStatusQuery lists an organization's loads that currently project
// to a given coarse status. Status is computed per row from the cursor and
// the stop counts, never read from a stored column.
type GetLoadsByStatusQuery struct {
	orgID  kernel.UUID
	status load.Status
}

// NewGetLoadsByStatusQuery creates a query for loads in one status.
func NewGetLoadsByStatusQuery(orgID kernel.UUID, status load.Status) (GetLoadsByStatusQuery, error) {
	if err := orgID.Validate(); err != nil {
		return GetLoadsByStatusQuery{}, err
	}
	if err := status.Validate(); err != nil {
		return GetLoadsByStatusQuery{}, err
	}
	return GetLoadsByStatusQuery{orgID: orgID, status: status}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLoadsByStatusQuery) Validate() error {
	if q.orgID.Validate() != nil || q.status.Validate() != nil {
		return ErrGetLoadsByStatusQueryIsNotConstructed
	}
	return nil
}

// OrgID returns the organization scope of the query.
func (q GetLoadsByStatusQuery) OrgID() kernel.UUID {
	return q.orgID
}

// Status returns the status the loads are filtered on.
func (q GetLoadsByStatusQuery) Status() load.Status {
	return q.status
}

// GetLoadsByStatusQueryResponse is one row of the status listing.
type GetLoadsByStatusQueryResponse struct {
	LoadID        kernel.UUID
	InvoiceNumber string
	Cursor        int
	Status        load.Status
}
