package counterrepo

import (
	"github.com/google/uuid"
)

// CounterDTO represents the database structure for the invoice counters.
// One row per organization; last_number is the most recently allocated
// value, starting at 1.
type CounterDTO struct {
	OrgID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	LastNumber int64
}

// TableName specifies the database table name for counter entities.
func (CounterDTO) TableName() string {
	return "counters"
}
