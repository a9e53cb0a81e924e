package plants

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vrikshai/vriksh-backend/pkg/db/models"
)

// Repository exposes plant persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a plants repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new plant and returns the persisted model.
func (r *Repository) Create(ctx context.Context, plant *models.Plant) (*models.Plant, error) {
	if err := r.db.WithContext(ctx).Create(plant).Error; err != nil {
		return nil, err
	}
	return plant, nil
}

// FindByID loads a plant by its UUID regardless of owner.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Plant, error) {
	var plant models.Plant
	if err := r.db.WithContext(ctx).First(&plant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &plant, nil
}

// ListByOwner returns the owner's plants ordered newest first.
func (r *Repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Plant, error) {
	var plants []models.Plant
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("added_date DESC").
		Find(&plants).Error
	if err != nil {
		return nil, err
	}
	return plants, nil
}

// Update applies the provided column updates to a plant.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Plant{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// Delete removes a plant and its dependent health checks in one
// transaction.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plant_id = ?", id).Delete(&models.HealthCheck{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Plant{}).Error
	})
}
