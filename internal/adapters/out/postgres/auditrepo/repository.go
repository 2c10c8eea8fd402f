package auditrepo

import (
	"context"
	"fmt"

	"workshop/internal/core/domain/model/audit"
	"workshop/internal/core/ports"

	"gorm.io/gorm"
)

// GormAuditRepository implements AuditRepository using GORM.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GORM audit trail repository.
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Append persists one scan record.
func (r *GormAuditRepository) Append(ctx context.Context, record audit.ScanRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return fmt.Errorf("%w: %w", ports.ErrStorageUnavailable, err)
	}

	return nil
}
