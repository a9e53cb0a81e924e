package models

import (
	"time"

	"github.com/google/uuid"

	dbtypes "github.com/vrikshai/vriksh-backend/pkg/db/types"
	"github.com/vrikshai/vriksh-backend/pkg/enums"
)

// HealthCheck is a saved diagnosis for an owned plant.
type HealthCheck struct {
	ID           uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	PlantID      uuid.UUID           `gorm:"column:plant_id;type:uuid;not null;index"`
	UserID       uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index"`
	Symptoms     dbtypes.StringSlice `gorm:"column:symptoms;type:jsonb"`
	Diagnosis    string              `gorm:"column:diagnosis;not null"`
	Severity     enums.HealthStatus  `gorm:"column:severity;not null"`
	Treatment    dbtypes.JSONMap     `gorm:"column:treatment;type:jsonb"`
	Prevention   dbtypes.StringSlice `gorm:"column:prevention;type:jsonb"`
	RecoveryTime *string             `gorm:"column:recovery_time"`
	CheckedAt    time.Time           `gorm:"column:checked_at;autoCreateTime"`
}
