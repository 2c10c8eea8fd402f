// Package auditrepo persists the append-only scan trail. Writes happen after
// the scan transaction commits; a failure here is logged by the caller and
// never affects the scan.
package auditrepo

import (
	"time"

	"workshop/internal/core/domain/model/audit"

	"github.com/google/uuid"
)

// ScanRecordDTO represents the database structure for scan audit records.
type ScanRecordDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID     uuid.UUID `gorm:"type:uuid;index"`
	Station    int       `gorm:"type:smallint"`
	WorkerID   uuid.UUID `gorm:"type:uuid"`
	FromStatus int       `gorm:"type:smallint"`
	ToStatus   int       `gorm:"type:smallint"`
	OccurredAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for scan audit records.
func (ScanRecordDTO) TableName() string {
	return "scan_records"
}

// fromDomain converts a ScanRecord to its database representation.
func fromDomain(record audit.ScanRecord) ScanRecordDTO {
	return ScanRecordDTO{
		ID:         record.ID().Bytes(),
		ItemID:     record.ItemID().Bytes(),
		Station:    int(record.Station()),
		WorkerID:   record.WorkerID().Bytes(),
		FromStatus: int(record.FromStatus()),
		ToStatus:   int(record.ToStatus()),
		OccurredAt: record.OccurredAt(),
	}
}
