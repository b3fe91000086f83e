package queries

import (
	"context"

	"loadflow/internal/core/domain/model/kernel"
	"loadflow/internal/core/domain/model/load"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLoadsByStatusQueryHandler lists loads by computed status. One grouped
// query pulls the cursor and the pickup and delivery counts per load; the
// status filter runs in Go because the status is a projection, not a column.
type GetLoadsByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetLoadsByStatusQueryHandler creates a handler for status listings.
func NewGetLoadsByStatusQueryHandler(db *gorm.DB) GetLoadsByStatusQueryHandler {
	return GetLoadsByStatusQueryHandler{db: db}
}

// Handle executes the query. Rows whose computed status differs from the
// requested one are dropped. Results are sorted by invoice number so the
// listing is stable across reads.
func (h GetLoadsByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetLoadsByStatusQuery,
) ([]GetLoadsByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	loads := make([]GetLoadsByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.progress,
			l.invoice_number,
			COUNT(*) FILTER (WHERE s.kind = ?) AS pickups,
			COUNT(*) FILTER (WHERE s.kind = ?) AS deliveries
		FROM loads l
		JOIN stops s ON s.load_id = l.id
		WHERE l.org_id = ?
		GROUP BY l.id, l.progress, l.invoice_number
		ORDER BY l.invoice_number
	`, load.Pickup.String(), load.Delivery.String(), query.OrgID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                            uuid.UUID
			progress, pickups, deliveries int
			invoiceNumber                 string
		)

		err = rows.Scan(&id, &progress, &invoiceNumber, &pickups, &deliveries)
		if err != nil {
			return nil, err
		}

		// Same length formula the sequence builder uses.
		n := 2*pickups + 2*deliveries + 3
		cursor := progress
		if cursor < 0 {
			cursor = 0
		}
		if cursor > n-1 {
			cursor = n - 1
		}

		status := load.ResolveStatus(cursor, n)
		if status != query.Status() {
			continue
		}

		loadID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		loads = append(loads, GetLoadsByStatusQueryResponse{
			LoadID:        loadID,
			InvoiceNumber: invoiceNumber,
			Cursor:        cursor,
			Status:        status,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return loads, nil
}
