// Package loadrepo provides data transfer objects and mapping functions for
// load persistence. It implements the repository pattern for the load
// aggregate, converting between domain entities and their database rows.
package loadrepo

import (
	"time"

	"loadflow/internal/core/domain/model/kernel"
	"loadflow/internal/core/domain/model/load"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoadDTO represents the database structure for persisting load aggregates.
// Only the cursor and the billing timestamps are mutable; the derived step
// sequence and status are never stored.
type LoadDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID         uuid.UUID `gorm:"type:uuid;index"`
	InvoiceNumber string    `gorm:"index"`
	Progress      int
	InvoicedAt    *time.Time
	PaidAt        *time.Time
	Rate          decimal.Decimal `gorm:"type:numeric(12,2)"`
	Stops         []StopDTO       `gorm:"foreignKey:LoadID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for load entities.
func (LoadDTO) TableName() string {
	return "loads"
}

// StopDTO represents one stop row belonging to a load. Kind and time type
// are stored as their string forms so the rows read naturally in SQL.
type StopDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	LoadID          uuid.UUID `gorm:"type:uuid;index"`
	Kind            string
	Location        string
	TimeType        string
	AppointmentTime *time.Time
	WindowStart     *time.Time
	WindowEnd       *time.Time
	SequenceHint    int
}

// TableName specifies the database table name for stop entities.
func (StopDTO) TableName() string {
	return "stops"
}

// fromDomain converts a load domain aggregate to its database representation.
func fromDomain(aggregate *load.Load) LoadDTO {
	stops := make([]StopDTO, 0, len(aggregate.Stops()))
	for _, s := range aggregate.Stops() {
		stops = append(stops, StopDTO{
			ID:              s.ID().Bytes(),
			LoadID:          aggregate.ID().Bytes(),
			Kind:            s.Kind().String(),
			Location:        s.Location(),
			TimeType:        s.TimeType().String(),
			AppointmentTime: s.AppointmentTime(),
			WindowStart:     s.WindowStart(),
			WindowEnd:       s.WindowEnd(),
			SequenceHint:    s.SequenceHint(),
		})
	}

	return LoadDTO{
		ID:            aggregate.ID().Bytes(),
		OrgID:         aggregate.OrgID().Bytes(),
		InvoiceNumber: aggregate.InvoiceNumber(),
		Progress:      aggregate.Progress(),
		InvoicedAt:    aggregate.InvoicedAt(),
		PaidAt:        aggregate.PaidAt(),
		Rate:          aggregate.Rate().Amount(),
		Stops:         stops,
	}
}

// toDomain converts a database DTO to a load domain aggregate. The restore
// constructor re-derives the step sequence and clamps the stored cursor.
func toDomain(dto LoadDTO) (*load.Load, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orgID, err := kernel.UUIDFromBytes(dto.OrgID[:])
	if err != nil {
		return nil, err
	}

	rate, err := kernel.NewMoney(dto.Rate)
	if err != nil {
		return nil, err
	}

	stops := make([]*load.Stop, 0, len(dto.Stops))
	for _, s := range dto.Stops {
		stop, stopErr := stopToDomain(s)
		if stopErr != nil {
			return nil, stopErr
		}
		stops = append(stops, stop)
	}

	return load.RestoreLoad(
		id, orgID, stops, dto.Progress, dto.InvoiceNumber, dto.InvoicedAt, dto.PaidAt, rate)
}

func stopToDomain(dto StopDTO) (*load.Stop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	kind, err := load.StopKindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	timeType, err := load.TimeTypeFromString(dto.TimeType)
	if err != nil {
		return nil, err
	}

	return load.RestoreStop(
		id, kind, dto.Location, timeType,
		dto.AppointmentTime, dto.WindowStart, dto.WindowEnd, dto.SequenceHint)
}
