package plants

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vrikshai/vriksh-backend/pkg/db/models"
	dbtypes "github.com/vrikshai/vriksh-backend/pkg/db/types"
	"github.com/vrikshai/vriksh-backend/pkg/enums"
	pkgerrors "github.com/vrikshai/vriksh-backend/pkg/errors"
)

const (
	notFoundOrDeniedMessage  = "Plant not found or access denied"
	wateringFrequencyMessage = "watering_frequency_days must be at least 1"
)

// Service defines the behavior needed by the vana controller.
type Service interface {
	List(ctx context.Context, userID uuid.UUID) (*ListResponse, error)
	Add(ctx context.Context, userID uuid.UUID, req AddPlantRequest) (*AddResponse, error)
	Update(ctx context.Context, userID, plantID uuid.UUID, req UpdatePlantRequest) (*MessageResponse, error)
	Remove(ctx context.Context, userID, plantID uuid.UUID) (*MessageResponse, error)

	// EnsureOwner is shared with the health-check flow, which must scope
	// diagnoses to the caller's own plants.
	EnsureOwner(ctx context.Context, userID, plantID uuid.UUID) (*models.Plant, error)
}

type plantRepository interface {
	Create(ctx context.Context, plant *models.Plant) (*models.Plant, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Plant, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Plant, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	plants plantRepository
}

// ServiceParams bundles the dependencies required to build a plants service.
type ServiceParams struct {
	PlantRepo plantRepository
}

// NewService constructs a plants service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.PlantRepo == nil {
		return nil, fmt.Errorf("plant repository is required")
	}
	return &service{plants: params.PlantRepo}, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) (*ListResponse, error) {
	records, err := s.plants.ListByOwner(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list plants")
	}

	vana := make([]PlantDTO, 0, len(records))
	for i := range records {
		vana = append(vana, FromModel(&records[i]))
	}
	return &ListResponse{Vana: vana, Count: len(vana)}, nil
}

func (s *service) Add(ctx context.Context, userID uuid.UUID, req AddPlantRequest) (*AddResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Plant name is required")
	}
	if strings.TrimSpace(req.Species) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Plant species is required")
	}
	if req.WateringFrequencyDays != nil && *req.WateringFrequencyDays < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, wateringFrequencyMessage)
	}

	status := enums.HealthStatusHealthy
	if req.HealthStatus != nil {
		parsed, err := enums.ParseHealthStatus(*req.HealthStatus)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid health_status")
		}
		status = parsed
	}

	plant := req.toModel(userID, status)
	if req.LastWatered != nil {
		watered := req.LastWatered.UTC()
		plant.LastWatered = &watered

		frequency := DefaultWateringFrequencyDays
		if req.WateringFrequencyDays != nil {
			frequency = *req.WateringFrequencyDays
		}
		plant.FrequencyDays = &frequency

		due := NextWateringDue(watered, frequency)
		plant.NextWateringDue = &due
	} else if req.WateringFrequencyDays != nil {
		plant.FrequencyDays = req.WateringFrequencyDays
	}

	created, err := s.plants.Create(ctx, plant)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create plant")
	}

	return &AddResponse{
		PlantID: created.ID,
		Message: "Plant added to Mera Vana successfully",
	}, nil
}

func (s *service) Update(ctx context.Context, userID, plantID uuid.UUID, req UpdatePlantRequest) (*MessageResponse, error) {
	if !req.HasUpdates() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "No fields to update")
	}

	plant, err := s.EnsureOwner(ctx, userID, plantID)
	if err != nil {
		return nil, err
	}

	updates, err := buildUpdates(req, plant)
	if err != nil {
		return nil, err
	}

	if err := s.plants.Update(ctx, plantID, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update plant")
	}

	return &MessageResponse{Message: "Plant updated successfully"}, nil
}

func (s *service) Remove(ctx context.Context, userID, plantID uuid.UUID) (*MessageResponse, error) {
	if _, err := s.EnsureOwner(ctx, userID, plantID); err != nil {
		return nil, err
	}

	if err := s.plants.Delete(ctx, plantID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete plant")
	}

	return &MessageResponse{Message: "Plant removed from Mera Vana successfully"}, nil
}

// EnsureOwner loads the plant and confirms the caller owns it. A missing
// plant and a plant owned by someone else produce the same error so
// callers cannot tell which ids exist.
func (s *service) EnsureOwner(ctx context.Context, userID, plantID uuid.UUID) (*models.Plant, error) {
	plant, err := s.plants.FindByID(ctx, plantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeAccessDenied, notFoundOrDeniedMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup plant")
	}
	if plant.OwnerID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeAccessDenied, notFoundOrDeniedMessage)
	}
	return plant, nil
}

// buildUpdates converts the partial request into column updates. When
// last_watered changes, the due date is recomputed: the request frequency
// wins, then the stored frequency, then the default.
func buildUpdates(req UpdatePlantRequest, plant *models.Plant) (map[string]any, error) {
	updates := map[string]any{}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "Plant name is required")
		}
		updates["name"] = *req.Name
	}
	if req.Species != nil {
		if strings.TrimSpace(*req.Species) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "Plant species is required")
		}
		updates["species"] = *req.Species
	}
	if req.ScientificName != nil {
		updates["scientific_name"] = *req.ScientificName
	}
	if req.SanskritName != nil {
		updates["sanskrit_name"] = *req.SanskritName
	}
	if req.Family != nil {
		updates["family"] = *req.Family
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.CareSchedule != nil {
		updates["care_schedule"] = dbtypes.JSONMap(req.CareSchedule)
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.HealthStatus != nil {
		parsed, err := enums.ParseHealthStatus(*req.HealthStatus)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid health_status")
		}
		updates["health_status"] = parsed
	}
	if req.WateringFrequencyDays != nil {
		if *req.WateringFrequencyDays < 1 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, wateringFrequencyMessage)
		}
		updates["watering_frequency_days"] = *req.WateringFrequencyDays
	}

	if req.LastWatered != nil {
		watered := req.LastWatered.UTC()
		updates["last_watered"] = watered

		frequency := DefaultWateringFrequencyDays
		switch {
		case req.WateringFrequencyDays != nil:
			frequency = *req.WateringFrequencyDays
		case plant.FrequencyDays != nil:
			frequency = *plant.FrequencyDays
		}
		updates["next_watering_due"] = NextWateringDue(watered, frequency)
	}

	return updates, nil
}
