package identifications

import (
	"context"

	"gorm.io/gorm"

	"github.com/vrikshai/vriksh-backend/pkg/db/models"
)

// Repository exposes identification-history persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an identifications repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new identification record. UserID may be nil for
// anonymous requests.
func (r *Repository) Create(ctx context.Context, record *models.Identification) (*models.Identification, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}
