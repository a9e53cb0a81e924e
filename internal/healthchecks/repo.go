package healthchecks

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vrikshai/vriksh-backend/pkg/db/models"
)

// DefaultHistoryLimit bounds history queries when the caller does not
// specify a limit.
const DefaultHistoryLimit = 10

// Repository exposes health-check persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a health-checks repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new health check and returns the persisted model.
func (r *Repository) Create(ctx context.Context, check *models.HealthCheck) (*models.HealthCheck, error) {
	if err := r.db.WithContext(ctx).Create(check).Error; err != nil {
		return nil, err
	}
	return check, nil
}

// ListByPlant returns the plant's health checks ordered newest first.
func (r *Repository) ListByPlant(ctx context.Context, plantID uuid.UUID, limit int) ([]models.HealthCheck, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	var checks []models.HealthCheck
	err := r.db.WithContext(ctx).
		Where("plant_id = ?", plantID).
		Order("checked_at DESC").
		Limit(limit).
		Find(&checks).Error
	if err != nil {
		return nil, err
	}
	return checks, nil
}
