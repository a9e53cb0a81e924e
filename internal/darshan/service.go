package darshan

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vrikshai/vriksh-backend/pkg/db/models"
	dbtypes "github.com/vrikshai/vriksh-backend/pkg/db/types"
	pkgerrors "github.com/vrikshai/vriksh-backend/pkg/errors"
	"github.com/vrikshai/vriksh-backend/pkg/logger"
	"github.com/vrikshai/vriksh-backend/pkg/vrikshai"
)

// IdentifyRequest carries one plant image, either by URL or inline.
type IdentifyRequest struct {
	ImageURL    string `json:"image_url,omitempty" validate:"required_without=ImageBase64"`
	ImageBase64 string `json:"image_base64,omitempty"`
}

// FieldMessage maps a failed field to the response copy for this payload.
func (IdentifyRequest) FieldMessage(field string) (string, bool) {
	if field == "image_url" {
		return "Either image_url or image_base64 is required", true
	}
	return "", false
}

// IdentifyResponse wraps the identification result.
type IdentifyResponse struct {
	Darshan *vrikshai.DarshanResult `json:"darshan"`
}

// Service defines the behavior needed by the darshan controller.
type Service interface {
	Identify(ctx context.Context, userID *uuid.UUID, req IdentifyRequest) (*IdentifyResponse, error)
}

type identifier interface {
	Identify(ctx context.Context, imageURL string) (*vrikshai.DarshanResult, error)
}

type identificationRepository interface {
	Create(ctx context.Context, record *models.Identification) (*models.Identification, error)
}

type service struct {
	ai      identifier
	history identificationRepository
	logg    *logger.Logger
}

// ServiceParams bundles the dependencies required to build a darshan service.
type ServiceParams struct {
	AI          identifier
	HistoryRepo identificationRepository
	Logger      *logger.Logger
}

// NewService constructs a darshan service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.AI == nil {
		return nil, fmt.Errorf("ai client is required")
	}
	return &service{
		ai:      params.AI,
		history: params.HistoryRepo,
		logg:    params.Logger,
	}, nil
}

func (s *service) Identify(ctx context.Context, userID *uuid.UUID, req IdentifyRequest) (*IdentifyResponse, error) {
	imageURL, err := normalizeImage(req)
	if err != nil {
		return nil, err
	}

	result, err := s.ai.Identify(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	s.recordHistory(ctx, userID, imageURL, result)

	return &IdentifyResponse{Darshan: result}, nil
}

// normalizeImage resolves the image reference. Raw base64 payloads are
// wrapped into a data URL; already-formed data URLs pass through.
func normalizeImage(req IdentifyRequest) (string, error) {
	imageURL := strings.TrimSpace(req.ImageURL)
	imageBase64 := strings.TrimSpace(req.ImageBase64)

	if imageURL == "" && imageBase64 == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "Either image_url or image_base64 is required")
	}
	if imageURL != "" {
		return imageURL, nil
	}
	if strings.HasPrefix(imageBase64, "data:") {
		return imageBase64, nil
	}
	return "data:image/jpeg;base64," + imageBase64, nil
}

// recordHistory stores the identification best-effort. The caller already
// has a successful result; a history write failure is only logged.
func (s *service) recordHistory(ctx context.Context, userID *uuid.UUID, imageURL string, result *vrikshai.DarshanResult) {
	if s.history == nil {
		return
	}

	confidence := result.Confidence
	record := &models.Identification{
		UserID:     userID,
		Species:    result.ScientificName,
		CommonName: &result.CommonName,
		Confidence: &confidence,
		Result: dbtypes.JSONMap{
			"common_name":     result.CommonName,
			"scientific_name": result.ScientificName,
			"sanskrit_name":   result.SanskritName,
			"family":          result.Family,
			"confidence":      result.Confidence,
			"fun_fact":        result.FunFact,
			"image_url":       imageURL,
		},
	}

	if _, err := s.history.Create(ctx, record); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "store identification history")
	}
}
