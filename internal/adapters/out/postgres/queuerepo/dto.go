// Package queuerepo provides data transfer objects and mapping functions for
// print queue persistence. A partial unique index on (item_id) WHERE NOT printed
// is the single source of truth for the one-unprinted-entry-per-item rule;
// concurrent adds race on it and exactly one wins.
package queuerepo

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/printqueue"

	"github.com/google/uuid"
)

// QueueEntryDTO represents the database structure for print queue entries.
type QueueEntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID    uuid.UUID `gorm:"type:uuid;index"`
	AddedAt   time.Time `gorm:"index"`
	AddedBy   uuid.UUID `gorm:"type:uuid"`
	Printed   bool
	PrintedAt *time.Time
	PrintedBy *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for print queue entries.
func (QueueEntryDTO) TableName() string {
	return "print_queue_entries"
}

// fromDomain converts a QueueEntry to its database representation.
func fromDomain(entry *printqueue.QueueEntry) QueueEntryDTO {
	var printedBy *uuid.UUID
	if by := entry.PrintedBy(); by != nil {
		raw := by.Bytes()
		printedBy = &raw
	}

	return QueueEntryDTO{
		ID:        entry.ID().Bytes(),
		ItemID:    entry.ItemID().Bytes(),
		AddedAt:   entry.AddedAt(),
		AddedBy:   entry.AddedBy().Bytes(),
		Printed:   entry.IsPrinted(),
		PrintedAt: entry.PrintedAt(),
		PrintedBy: printedBy,
	}
}

// toDomain converts a database row to a QueueEntry.
func toDomain(dto QueueEntryDTO) (*printqueue.QueueEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	addedBy, err := kernel.UUIDFromBytes(dto.AddedBy[:])
	if err != nil {
		return nil, err
	}

	var printedBy *kernel.UUID
	if dto.PrintedBy != nil {
		by, byErr := kernel.UUIDFromBytes((*dto.PrintedBy)[:])
		if byErr != nil {
			return nil, byErr
		}
		printedBy = &by
	}

	return printqueue.RestoreQueueEntry(
		id, itemID, addedBy, dto.AddedAt, dto.Printed, dto.PrintedAt, printedBy)
}
