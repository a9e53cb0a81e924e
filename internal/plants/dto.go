package plants

import (
	"time"

	"github.com/google/uuid"

	"github.com/vrikshai/vriksh-backend/pkg/db/models"
	dbtypes "github.com/vrikshai/vriksh-backend/pkg/db/types"
	"github.com/vrikshai/vriksh-backend/pkg/enums"
)

// AddPlantRequest is the payload for adding a plant to the collection.
type AddPlantRequest struct {
	Name                  string         `json:"name" validate:"required"`
	Species               string         `json:"species" validate:"required"`
	ScientificName        *string        `json:"scientific_name,omitempty"`
	SanskritName          *string        `json:"sanskrit_name,omitempty"`
	Family                *string        `json:"family,omitempty"`
	ImageURL              *string        `json:"image_url,omitempty"`
	CareSchedule          map[string]any `json:"care_schedule,omitempty"`
	HealthStatus          *string        `json:"health_status,omitempty"`
	Notes                 *string        `json:"notes,omitempty"`
	LastWatered           *time.Time     `json:"last_watered,omitempty"`
	WateringFrequencyDays *int           `json:"watering_frequency_days,omitempty" validate:"omitempty,min=1"`
}

// FieldMessage maps a failed field to the response copy for this payload.
func (AddPlantRequest) FieldMessage(field string) (string, bool) {
	switch field {
	case "name":
		return "Plant name is required", true
	case "species":
		return "Plant species is required", true
	case "watering_frequency_days":
		return wateringFrequencyMessage, true
	}
	return "", false
}

// UpdatePlantRequest carries the partial update for an owned plant. The
// plant id may arrive in the body or in the URL path.
type UpdatePlantRequest struct {
	PlantID               string         `json:"plant_id,omitempty"`
	Name                  *string        `json:"name,omitempty"`
	Species               *string        `json:"species,omitempty"`
	ScientificName        *string        `json:"scientific_name,omitempty"`
	SanskritName          *string        `json:"sanskrit_name,omitempty"`
	Family                *string        `json:"family,omitempty"`
	ImageURL              *string        `json:"image_url,omitempty"`
	CareSchedule          map[string]any `json:"care_schedule,omitempty"`
	HealthStatus          *string        `json:"health_status,omitempty"`
	Notes                 *string        `json:"notes,omitempty"`
	LastWatered           *time.Time     `json:"last_watered,omitempty"`
	WateringFrequencyDays *int           `json:"watering_frequency_days,omitempty" validate:"omitempty,min=1"`
}

// FieldMessage maps a failed field to the response copy for this payload.
func (UpdatePlantRequest) FieldMessage(field string) (string, bool) {
	if field == "watering_frequency_days" {
		return wateringFrequencyMessage, true
	}
	return "", false
}

// HasUpdates reports whether the request changes anything beyond the id.
func (r UpdatePlantRequest) HasUpdates() bool {
	return r.Name != nil || r.Species != nil || r.ScientificName != nil ||
		r.SanskritName != nil || r.Family != nil || r.ImageURL != nil ||
		r.CareSchedule != nil || r.HealthStatus != nil || r.Notes != nil ||
		r.LastWatered != nil || r.WateringFrequencyDays != nil
}

// PlantDTO is the transport shape of a plant record.
type PlantDTO struct {
	ID                    uuid.UUID          `json:"id"`
	UserID                uuid.UUID          `json:"user_id"`
	Name                  string             `json:"name"`
	Species               string             `json:"species"`
	ScientificName        *string            `json:"scientific_name,omitempty"`
	SanskritName          *string            `json:"sanskrit_name,omitempty"`
	Family                *string            `json:"family,omitempty"`
	ImageURL              *string            `json:"image_url,omitempty"`
	CareSchedule          map[string]any     `json:"care_schedule,omitempty"`
	HealthStatus          enums.HealthStatus `json:"health_status"`
	Notes                 *string            `json:"notes,omitempty"`
	LastWatered           *time.Time         `json:"last_watered,omitempty"`
	WateringFrequencyDays *int               `json:"watering_frequency_days,omitempty"`
	NextWateringDue       *string            `json:"next_watering_due,omitempty"`
	AddedDate             time.Time          `json:"added_date"`
	UpdatedAt             time.Time          `json:"updated_at"`
}

// ListResponse is the payload for the collection listing.
type ListResponse struct {
	Vana  []PlantDTO `json:"vana"`
	Count int        `json:"count"`
}

// AddResponse confirms a newly created plant.
type AddResponse struct {
	PlantID uuid.UUID `json:"plant_id"`
	Message string    `json:"message"`
}

// MessageResponse confirms a mutation with no payload beyond the message.
type MessageResponse struct {
	Message string `json:"message"`
}

// FromModel maps a persisted plant to its transport shape. The next
// watering due date is rendered as a date string.
func FromModel(p *models.Plant) PlantDTO {
	dto := PlantDTO{
		ID:                    p.ID,
		UserID:                p.OwnerID,
		Name:                  p.Name,
		Species:               p.Species,
		ScientificName:        p.ScientificName,
		SanskritName:          p.SanskritName,
		Family:                p.Family,
		ImageURL:              p.ImageURL,
		CareSchedule:          map[string]any(p.CareSchedule),
		HealthStatus:          p.HealthStatus,
		Notes:                 p.Notes,
		LastWatered:           p.LastWatered,
		WateringFrequencyDays: p.FrequencyDays,
		AddedDate:             p.AddedDate,
		UpdatedAt:             p.UpdatedAt,
	}
	if p.NextWateringDue != nil {
		due := p.NextWateringDue.UTC().Format("2006-01-02")
		dto.NextWateringDue = &due
	}
	return dto
}

func (r AddPlantRequest) toModel(ownerID uuid.UUID, status enums.HealthStatus) *models.Plant {
	return &models.Plant{
		OwnerID:        ownerID,
		Name:           r.Name,
		Species:        r.Species,
		ScientificName: r.ScientificName,
		SanskritName:   r.SanskritName,
		Family:         r.Family,
		ImageURL:       r.ImageURL,
		CareSchedule:   dbtypes.JSONMap(r.CareSchedule),
		HealthStatus:   status,
		Notes:          r.Notes,
	}
}
