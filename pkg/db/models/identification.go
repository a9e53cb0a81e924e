package models

import (
	"time"

	"github.com/google/uuid"

	dbtypes "github.com/vrikshai/vriksh-backend/pkg/db/types"
)

// Identification records one species identification request. UserID is
// nullable because identification does not require a plant record.
type Identification struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID       *uuid.UUID      `gorm:"column:user_id;type:uuid;index"`
	Species      string          `gorm:"column:species;not null"`
	CommonName   *string         `gorm:"column:common_name"`
	Confidence   *float64        `gorm:"column:confidence;type:numeric(4,3)"`
	Result       dbtypes.JSONMap `gorm:"column:result;type:jsonb"`
	IdentifiedAt time.Time       `gorm:"column:identified_at;autoCreateTime"`
}
