package chikitsa

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vrikshai/vriksh-backend/pkg/db/models"
	dbtypes "github.com/vrikshai/vriksh-backend/pkg/db/types"
	"github.com/vrikshai/vriksh-backend/pkg/enums"
	pkgerrors "github.com/vrikshai/vriksh-backend/pkg/errors"
	"github.com/vrikshai/vriksh-backend/pkg/logger"
	"github.com/vrikshai/vriksh-backend/pkg/vrikshai"
)

// Service defines the behavior needed by the chikitsa controller.
type Service interface {
	Diagnose(ctx context.Context, userID uuid.UUID, req DiagnoseRequest) (*DiagnoseResponse, error)
	History(ctx context.Context, userID, plantID uuid.UUID, limit int) (*HistoryResponse, error)
}

type diagnoser interface {
	Diagnose(ctx context.Context, req vrikshai.DiagnoseRequest) (*vrikshai.ChikitsaResult, error)
}

type ownerGuard interface {
	EnsureOwner(ctx context.Context, userID, plantID uuid.UUID) (*models.Plant, error)
}

type healthCheckRepository interface {
	Create(ctx context.Context, check *models.HealthCheck) (*models.HealthCheck, error)
	ListByPlant(ctx context.Context, plantID uuid.UUID, limit int) ([]models.HealthCheck, error)
}

type plantStatusWriter interface {
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) error
}

type service struct {
	ai     diagnoser
	guard  ownerGuard
	checks healthCheckRepository
	plants plantStatusWriter
	logg   *logger.Logger
}

// ServiceParams bundles the dependencies required to build a chikitsa service.
type ServiceParams struct {
	AI        diagnoser
	Guard     ownerGuard
	CheckRepo healthCheckRepository
	PlantRepo plantStatusWriter
	Logger    *logger.Logger
}

// NewService constructs a chikitsa service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.AI == nil {
		return nil, fmt.Errorf("ai client is required")
	}
	if params.Guard == nil {
		return nil, fmt.Errorf("owner guard is required")
	}
	if params.CheckRepo == nil {
		return nil, fmt.Errorf("health check repository is required")
	}
	if params.PlantRepo == nil {
		return nil, fmt.Errorf("plant repository is required")
	}
	return &service{
		ai:     params.AI,
		guard:  params.Guard,
		checks: params.CheckRepo,
		plants: params.PlantRepo,
		logg:   params.Logger,
	}, nil
}

func (s *service) Diagnose(ctx context.Context, userID uuid.UUID, req DiagnoseRequest) (*DiagnoseResponse, error) {
	if strings.TrimSpace(req.PlantName) == "" || strings.TrimSpace(req.Symptoms) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "plant_name and symptoms are required")
	}

	var plantID *uuid.UUID
	if strings.TrimSpace(req.PlantID) != "" {
		parsed, err := uuid.Parse(req.PlantID)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "plant_id must be a valid UUID")
		}
		// Ownership is checked before the model call so a denied request
		// never reaches the upstream dependency.
		if _, err := s.guard.EnsureOwner(ctx, userID, parsed); err != nil {
			return nil, err
		}
		plantID = &parsed
	}

	result, err := s.ai.Diagnose(ctx, vrikshai.DiagnoseRequest{
		PlantName: req.PlantName,
		Symptoms:  req.Symptoms,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		return nil, err
	}

	saved := false
	if plantID != nil {
		saved = s.persistDiagnosis(ctx, userID, *plantID, req, result)
	}

	return &DiagnoseResponse{Chikitsa: result, Saved: saved}, nil
}

// persistDiagnosis saves the health check and overwrites the plant's
// health status with the diagnosis severity. A storage failure downgrades
// saved to false; the diagnosis itself has already succeeded.
func (s *service) persistDiagnosis(ctx context.Context, userID, plantID uuid.UUID, req DiagnoseRequest, result *vrikshai.ChikitsaResult) bool {
	check := &models.HealthCheck{
		PlantID:      plantID,
		UserID:       userID,
		Symptoms:     dbtypes.StringSlice{req.Symptoms},
		Diagnosis:    result.Diagnosis,
		Severity:     enums.HealthStatus(result.Severity),
		Treatment:    treatmentMap(result.Treatment),
		Prevention:   dbtypes.StringSlice(result.Prevention),
		RecoveryTime: &result.RecoveryTime,
	}

	if _, err := s.checks.Create(ctx, check); err != nil {
		s.warn(ctx, err, "store health check")
		return false
	}

	if err := s.plants.Update(ctx, plantID, map[string]any{"health_status": enums.HealthStatus(result.Severity)}); err != nil {
		s.warn(ctx, err, "update plant health status")
		return false
	}

	return true
}

func (s *service) History(ctx context.Context, userID, plantID uuid.UUID, limit int) (*HistoryResponse, error) {
	if _, err := s.guard.EnsureOwner(ctx, userID, plantID); err != nil {
		return nil, err
	}

	checks, err := s.checks.ListByPlant(ctx, plantID, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list health checks")
	}

	history := make([]HealthCheckDTO, 0, len(checks))
	for i := range checks {
		history = append(history, checkFromModel(&checks[i]))
	}
	return &HistoryResponse{PlantID: plantID, History: history, Count: len(history)}, nil
}

func (s *service) warn(ctx context.Context, err error, msg string) {
	if s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), msg)
	}
}

func treatmentMap(t vrikshai.Treatment) dbtypes.JSONMap {
	return dbtypes.JSONMap{
		"immediate": t.Immediate,
		"ongoing":   t.Ongoing,
		"products":  t.Products,
	}
}
