package models

import (
	"time"

	"github.com/google/uuid"

	dbtypes "github.com/vrikshai/vriksh-backend/pkg/db/types"
	"github.com/vrikshai/vriksh-backend/pkg/enums"
)

// Plant is a plant record owned by a single user. Every read and write
// path is scoped by OwnerID.
type Plant struct {
	ID              uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID         uuid.UUID          `gorm:"column:owner_id;type:uuid;not null;index"`
	Name            string             `gorm:"column:name;not null"`
	Species         string             `gorm:"column:species;not null"`
	ScientificName  *string            `gorm:"column:scientific_name"`
	SanskritName    *string            `gorm:"column:sanskrit_name"`
	Family          *string            `gorm:"column:family"`
	Notes           *string            `gorm:"column:notes"`
	ImageURL        *string            `gorm:"column:image_url"`
	HealthStatus    enums.HealthStatus `gorm:"column:health_status;not null;default:'healthy'"`
	LastWatered     *time.Time         `gorm:"column:last_watered"`
	FrequencyDays   *int               `gorm:"column:watering_frequency_days"`
	NextWateringDue *time.Time         `gorm:"column:next_watering_due"`
	CareSchedule    dbtypes.JSONMap    `gorm:"column:care_schedule;type:jsonb"`
	AddedDate       time.Time          `gorm:"column:added_date;autoCreateTime"`
	UpdatedAt       time.Time          `gorm:"column:updated_at;autoUpdateTime"`
	HealthChecks    []HealthCheck      `gorm:"foreignKey:PlantID;constraint:OnDelete:CASCADE"`
}
