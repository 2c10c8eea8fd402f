package ports

import (
	"context"

	"workshop/internal/core/domain/model/scanner"
)

// ScannerRepository defines the read-only lookup for scanner assignments.
// Assignments are provisioned by an external workflow; this core never writes them.
type ScannerRepository interface {
	// GetByPrefix retrieves the assignment for the given three-character prefix.
	// Returns errs.ErrObjectNotFound-wrapped errors for unknown prefixes.
	GetByPrefix(ctx context.Context, prefix string) (*scanner.ScannerAssignment, error)
}
