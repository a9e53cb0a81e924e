package seva

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/vrikshai/vriksh-backend/pkg/errors"
	"github.com/vrikshai/vriksh-backend/pkg/vrikshai"
)

const (
	defaultLocation = "General"
	defaultSeason   = "Spring"
)

// ScheduleRequest is the payload for generating a care schedule. Location,
// season, and indoor are optional.
type ScheduleRequest struct {
	PlantName string  `json:"plant_name" validate:"required"`
	Location  *string `json:"location,omitempty"`
	Season    *string `json:"season,omitempty"`
	Indoor    *bool   `json:"indoor,omitempty"`
}

// FieldMessage maps a failed field to the response copy for this payload.
func (ScheduleRequest) FieldMessage(field string) (string, bool) {
	if field == "plant_name" {
		return "plant_name is required", true
	}
	return "", false
}

// ScheduleResponse wraps the generated schedule.
type ScheduleResponse struct {
	Seva *vrikshai.SevaSchedule `json:"seva"`
}

// Service defines the behavior needed by the seva controller.
type Service interface {
	Schedule(ctx context.Context, req ScheduleRequest) (*ScheduleResponse, error)
}

type scheduler interface {
	Schedule(ctx context.Context, req vrikshai.ScheduleRequest) (*vrikshai.SevaSchedule, error)
}

type service struct {
	ai scheduler
}

// ServiceParams bundles the dependencies required to build a seva service.
type ServiceParams struct {
	AI scheduler
}

// NewService constructs a seva service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.AI == nil {
		return nil, fmt.Errorf("ai client is required")
	}
	return &service{ai: params.AI}, nil
}

func (s *service) Schedule(ctx context.Context, req ScheduleRequest) (*ScheduleResponse, error) {
	if strings.TrimSpace(req.PlantName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "plant_name is required")
	}

	location := defaultLocation
	if req.Location != nil && strings.TrimSpace(*req.Location) != "" {
		location = *req.Location
	}
	season := defaultSeason
	if req.Season != nil && strings.TrimSpace(*req.Season) != "" {
		season = *req.Season
	}
	indoor := true
	if req.Indoor != nil {
		indoor = *req.Indoor
	}

	schedule, err := s.ai.Schedule(ctx, vrikshai.ScheduleRequest{
		PlantName: req.PlantName,
		Location:  location,
		Season:    season,
		Indoor:    indoor,
	})
	if err != nil {
		return nil, err
	}

	return &ScheduleResponse{Seva: schedule}, nil
}
