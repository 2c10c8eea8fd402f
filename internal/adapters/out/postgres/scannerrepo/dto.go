// Package scannerrepo provides the read-only lookup of scanner assignments.
// Rows are provisioned by an external workflow; this repository only reads.
package scannerrepo

import (
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/scanner"
	"workshop/internal/core/domain/model/station"

	"github.com/google/uuid"
)

// ScannerAssignmentDTO represents the database structure for scanner assignments.
type ScannerAssignmentDTO struct {
	Prefix      string    `gorm:"type:varchar(3);primaryKey"`
	WorkerID    uuid.UUID `gorm:"type:uuid"`
	HomeStation int       `gorm:"type:smallint"`
	Active      bool
}

// TableName specifies the database table name for scanner assignments.
func (ScannerAssignmentDTO) TableName() string {
	return "scanner_assignments"
}

// toDomain converts a database row to a ScannerAssignment.
func toDomain(dto ScannerAssignmentDTO) (*scanner.ScannerAssignment, error) {
	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	assignment, err := scanner.NewScannerAssignment(
		dto.Prefix, workerID, station.Station(dto.HomeStation), dto.Active)
	if err != nil {
		return nil, err
	}

	return &assignment, nil
}
