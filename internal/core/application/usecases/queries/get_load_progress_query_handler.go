package queries

import (
	"context"
	"time"

	"loadflow/internal/core/domain/model/kernel"
	"loadflow/internal/core/domain/model/load"
	"loadflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLoadProgressQueryHandler reads one load and its stops with raw SQL and
// rebuilds the step sequences through the domain builder.
type GetLoadProgressQueryHandler struct {
	db *gorm.DB
}

// NewGetLoadProgressQueryHandler creates a handler for load progress queries.
func NewGetLoadProgressQueryHandler(db *gorm.DB) GetLoadProgressQueryHandler {
	return GetLoadProgressQueryHandler{db: db}
}

// Handle executes the query. The persisted cursor is clamped into the range
// derived from the current stops before the status and visible index are
// computed, so stop edits never leave the projection out of range.
func (h GetLoadProgressQueryHandler) Handle(
	ctx context.Context,
	query GetLoadProgressQuery,
) (GetLoadProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLoadProgressQueryResponse{}, err
	}

	var (
		id            uuid.UUID
		progress      int
		invoiceNumber string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			progress,
			invoice_number
		FROM loads
		WHERE id = ?
	`, query.LoadID().String()).Row()
	if err := row.Scan(&id, &progress, &invoiceNumber); err != nil {
		return GetLoadProgressQueryResponse{},
			errs.NewObjectNotFoundErrorWithCause("loadID", query.LoadID(), err)
	}

	stops, err := h.loadStops(ctx, query.LoadID())
	if err != nil {
		return GetLoadProgressQueryResponse{}, err
	}

	seq, err := load.BuildSequence(stops)
	if err != nil {
		return GetLoadProgressQueryResponse{}, err
	}

	cursor := seq.Clamp(progress)
	loadID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetLoadProgressQueryResponse{}, err
	}

	return GetLoadProgressQueryResponse{
		LoadID:        loadID,
		InvoiceNumber: invoiceNumber,
		DetailedSteps: seq.Detailed(),
		VisibleSteps:  seq.Visible(),
		Cursor:        cursor,
		VisibleIndex:  seq.VisibleIndex(cursor),
		Status:        load.ResolveStatus(cursor, seq.DetailedCount()),
	}, nil
}

func (h GetLoadProgressQueryHandler) loadStops(
	ctx context.Context, loadID kernel.UUID,
) ([]*load.Stop, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			location,
			time_type,
			appointment_time,
			window_start,
			window_end,
			sequence_hint
		FROM stops
		WHERE load_id = ?
		ORDER BY sequence_hint
	`, loadID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stops := make([]*load.Stop, 0)

	for rows.Next() {
		var (
			id                             uuid.UUID
			kindStr, location, timeTypeStr string
			appointment, winStart, winEnd  *time.Time
			sequenceHint                   int
		)

		err = rows.Scan(
			&id,
			&kindStr,
			&location,
			&timeTypeStr,
			&appointment,
			&winStart,
			&winEnd,
			&sequenceHint,
		)
		if err != nil {
			return nil, err
		}

		stopID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		kind, kindErr := load.StopKindFromString(kindStr)
		if kindErr != nil {
			return nil, kindErr
		}

		timeType, ttErr := load.TimeTypeFromString(timeTypeStr)
		if ttErr != nil {
			return nil, ttErr
		}

		stop, stopErr := load.RestoreStop(
			stopID, kind, location, timeType, appointment, winStart, winEnd, sequenceHint)
		if stopErr != nil {
			return nil, stopErr
		}
		stops = append(stops, stop)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stops, nil
}
