package ports

import (
	"context"

	"workshop/internal/core/domain/model/audit"
)

// AuditRepository appends scan records to the audit trail. It runs outside the
// scan transaction; callers log failures and move on.
type AuditRepository interface {
	// Append persists one scan record.
	Append(ctx context.Context, record audit.ScanRecord) error
}
