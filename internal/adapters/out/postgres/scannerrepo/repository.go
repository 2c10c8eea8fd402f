package scannerrepo

import (
	"context"
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/scanner"
	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormScannerRepository implements ScannerRepository using GORM.
type GormScannerRepository struct {
	db *gorm.DB
}

// NewGormScannerRepository creates a new GORM scanner assignment repository.
func NewGormScannerRepository(db *gorm.DB) *GormScannerRepository {
	return &GormScannerRepository{db: db}
}

// GetByPrefix retrieves the assignment for the given prefix.
func (r *GormScannerRepository) GetByPrefix(
	ctx context.Context, prefix string,
) (*scanner.ScannerAssignment, error) {
	if prefix == "" {
		return nil, errs.NewValueIsRequiredError("prefix")
	}

	var dto ScannerAssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "prefix = ?", prefix).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("scanner", prefix)
		}
		return nil, fmt.Errorf("%w: %w", ports.ErrStorageUnavailable, err)
	}

	return toDomain(dto)
}
