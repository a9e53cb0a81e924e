package chikitsa

import (
	"time"

	"github.com/google/uuid"

	"github.com/vrikshai/vriksh-backend/pkg/db/models"
	"github.com/vrikshai/vriksh-backend/pkg/enums"
	"github.com/vrikshai/vriksh-backend/pkg/vrikshai"
)

// DiagnoseRequest is the payload for a health diagnosis. plant_id is
// optional; when present the diagnosis is saved against the owned plant.
type DiagnoseRequest struct {
	PlantName string `json:"plant_name" validate:"required"`
	Symptoms  string `json:"symptoms" validate:"required"`
	ImageURL  string `json:"image_url,omitempty"`
	PlantID   string `json:"plant_id,omitempty"`
}

// FieldMessage maps a failed field to the response copy for this payload.
func (DiagnoseRequest) FieldMessage(field string) (string, bool) {
	switch field {
	case "plant_name", "symptoms":
		return "plant_name and symptoms are required", true
	}
	return "", false
}

// DiagnoseResponse carries the diagnosis plus whether it was persisted.
type DiagnoseResponse struct {
	Chikitsa *vrikshai.ChikitsaResult `json:"chikitsa"`
	Saved    bool                     `json:"saved"`
}

// HealthCheckDTO is the transport shape of a stored health check.
type HealthCheckDTO struct {
	ID           uuid.UUID          `json:"id"`
	PlantID      uuid.UUID          `json:"plant_id"`
	Symptoms     []string           `json:"symptoms"`
	Diagnosis    string             `json:"diagnosis"`
	Severity     enums.HealthStatus `json:"severity"`
	Treatment    map[string]any     `json:"treatment,omitempty"`
	Prevention   []string           `json:"prevention,omitempty"`
	RecoveryTime *string            `json:"recovery_time,omitempty"`
	CheckedAt    time.Time          `json:"checked_at"`
}

// HistoryResponse lists a plant's saved diagnoses, newest first.
type HistoryResponse struct {
	PlantID uuid.UUID        `json:"plant_id"`
	History []HealthCheckDTO `json:"history"`
	Count   int              `json:"count"`
}

func checkFromModel(c *models.HealthCheck) HealthCheckDTO {
	return HealthCheckDTO{
		ID:           c.ID,
		PlantID:      c.PlantID,
		Symptoms:     []string(c.Symptoms),
		Diagnosis:    c.Diagnosis,
		Severity:     c.Severity,
		Treatment:    map[string]any(c.Treatment),
		Prevention:   []string(c.Prevention),
		RecoveryTime: c.RecoveryTime,
		CheckedAt:    c.CheckedAt,
	}
}
