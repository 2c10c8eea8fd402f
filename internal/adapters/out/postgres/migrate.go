package postgres

import (
	"workshop/internal/adapters/out/postgres/auditrepo"
	"workshop/internal/adapters/out/postgres/itemrepo"
	"workshop/internal/adapters/out/postgres/orderrepo"
	"workshop/internal/adapters/out/postgres/queuerepo"
	"workshop/internal/adapters/out/postgres/scannerrepo"
	"workshop/internal/adapters/out/postgres/worklogrepo"

	"gorm.io/gorm"
)

// Migrate creates the schema, the partial unique indexes the domain
// invariants depend on, and the queue-to-item foreign key. GORM tags cannot
// express partial indexes, so the WHERE-qualified ones are created with raw
// DDL:
//
//   - at most one unprinted queue entry per item
//   - at most one open processing log entry per item
//
// The foreign key keeps phantom items out of the queue: an entry whose item
// never existed would vanish from the queue view while its unprinted index
// slot kept blocking re-adds.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&itemrepo.ItemDTO{},
		&worklogrepo.ProcessingLogDTO{},
		&queuerepo.QueueEntryDTO{},
		&scannerrepo.ScannerAssignmentDTO{},
		&auditrepo.ScanRecordDTO{},
	); err != nil {
		return err
	}

	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_print_queue_unprinted_item
		ON print_queue_entries (item_id)
		WHERE NOT printed
	`).Error; err != nil {
		return err
	}

	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_processing_logs_open_item
		ON processing_logs (item_id)
		WHERE ended_at IS NULL
	`).Error; err != nil {
		return err
	}

	// ADD CONSTRAINT has no IF NOT EXISTS; swallow the duplicate on re-runs.
	return db.Exec(`
		DO $$
		BEGIN
			ALTER TABLE print_queue_entries
				ADD CONSTRAINT fk_print_queue_entries_item
				FOREIGN KEY (item_id) REFERENCES items (id);
		EXCEPTION
			WHEN duplicate_object THEN NULL;
		END $$;
	`).Error
}
