// Package worklogrepo provides data transfer objects and mapping functions for
// processing log persistence. A partial unique index on the item guarantees at
// most one open entry per item regardless of concurrent scans.
package worklogrepo

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/station"
	"workshop/internal/core/domain/model/worklog"

	"github.com/google/uuid"
)

// ProcessingLogDTO represents the database structure for processing log entries.
type ProcessingLogDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID          uuid.UUID `gorm:"type:uuid;index"`
	Station         int       `gorm:"type:smallint"`
	WorkerID        uuid.UUID `gorm:"type:uuid"`
	StartedAt       time.Time
	EndedAt         *time.Time
	DurationSeconds *int64
	Note            string `gorm:"type:text"`
}

// TableName specifies the database table name for processing log entries.
func (ProcessingLogDTO) TableName() string {
	return "processing_logs"
}

// fromDomain converts a ProcessingLogEntry to its database representation.
func fromDomain(entry *worklog.ProcessingLogEntry) ProcessingLogDTO {
	return ProcessingLogDTO{
		ID:              entry.ID().Bytes(),
		ItemID:          entry.ItemID().Bytes(),
		Station:         int(entry.Station()),
		WorkerID:        entry.WorkerID().Bytes(),
		StartedAt:       entry.StartedAt(),
		EndedAt:         entry.EndedAt(),
		DurationSeconds: entry.DurationSeconds(),
		Note:            entry.Note(),
	}
}

// toDomain converts a database row to a ProcessingLogEntry.
func toDomain(dto ProcessingLogDTO) (*worklog.ProcessingLogEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	return worklog.RestoreProcessingLogEntry(
		id, itemID, workerID, station.Station(dto.Station),
		dto.StartedAt, dto.EndedAt, dto.DurationSeconds, dto.Note)
}
