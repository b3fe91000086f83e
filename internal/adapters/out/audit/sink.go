package audit

import (
	"context"
	"encoding/json"
	"time"

	"loadflow/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditEntryDTO represents one stored audit row. Before and After are kept
// as JSON so the audited shape can evolve without migrations.
type AuditEntryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Table       string    `gorm:"column:table_name;index"`
	RecordID    uuid.UUID `gorm:"type:uuid;index"`
	Action      string
	OrgID       uuid.UUID `gorm:"type:uuid;index"`
	Before      []byte    `gorm:"type:jsonb"`
	After       []byte    `gorm:"type:jsonb"`
	PerformedBy uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for audit rows.
func (AuditEntryDTO) TableName() string {
	return "audit_entries"
}

// GormSink persists flushed audit batches with GORM.
type GormSink struct {
	db *gorm.DB
}

// NewGormSink creates a database-backed audit sink.
func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{db: db}
}

// Write stores one batch in a single insert.
func (s *GormSink) Write(ctx context.Context, entries []ports.AuditEntry) error {
	dtos := make([]AuditEntryDTO, 0, len(entries))
	for _, e := range entries {
		dto, err := fromEntry(e)
		if err != nil {
			return err
		}
		dtos = append(dtos, dto)
	}

	return s.db.WithContext(ctx).Create(&dtos).Error
}

func fromEntry(e ports.AuditEntry) (AuditEntryDTO, error) {
	var before, after []byte
	var err error

	if e.Before != nil {
		if before, err = json.Marshal(e.Before); err != nil {
			return AuditEntryDTO{}, err
		}
	}
	if after, err = json.Marshal(e.After); err != nil {
		return AuditEntryDTO{}, err
	}

	return AuditEntryDTO{
		ID:          uuid.New(),
		Table:       e.Table,
		RecordID:    e.RecordID.Bytes(),
		Action:      e.Action,
		OrgID:       e.OrgID.Bytes(),
		Before:      before,
		After:       after,
		PerformedBy: e.PerformedBy.Bytes(),
		CreatedAt:   e.CreatedAt,
	}, nil
}
