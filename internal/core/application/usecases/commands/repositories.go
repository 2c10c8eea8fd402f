// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"workshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ItemRepoFactory provides access to the item repository within a transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// WorkLogRepoFactory provides access to the processing log repository within a transaction.
	WorkLogRepoFactory interface {
		WorkLogRepository() ports.WorkLogRepository
	}

	// QueueRepoFactory provides access to the print queue repository within a transaction.
	QueueRepoFactory interface {
		QueueRepository() ports.QueueRepository
	}

	// ScannerRepoFactory provides access to the scanner directory within a transaction.
	ScannerRepoFactory interface {
		ScannerRepository() ports.ScannerRepository
	}

	// ScanUoW manages the transaction of one scan: the item row lock, its
	// processing log, the order rollup, and the scanner lookup all share it.
	ScanUoW interface {
		TxManager
		ItemRepoFactory
		OrderRepoFactory
		WorkLogRepoFactory
		ScannerRepoFactory
	}

	// ScanUoWFactory creates new scan unit of work instances.
	ScanUoWFactory interface {
		Create() ScanUoW
	}

	// QueueUoW manages transactions for print queue operations.
	QueueUoW interface {
		TxManager
		QueueRepoFactory
	}

	// QueueUoWFactory creates new print queue unit of work instances.
	QueueUoWFactory interface {
		Create() QueueUoW
	}
)
