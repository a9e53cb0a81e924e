package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vrikshai/vriksh-backend/api/middleware"
	"github.com/vrikshai/vriksh-backend/api/responses"
	"github.com/vrikshai/vriksh-backend/api/validators"
	"github.com/vrikshai/vriksh-backend/internal/plants"
	pkgerrors "github.com/vrikshai/vriksh-backend/pkg/errors"
	"github.com/vrikshai/vriksh-backend/pkg/logger"
)

// VanaList returns the caller's full collection.
func VanaList(svc plants.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "plants service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID, err := requestUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), userID)
		if err != nil {
			responses.WriteErrorWithFallback(r.Context(), logg, w, err, "Failed to fetch plants. Please try again.")
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// VanaAdd creates a plant owned by the caller.
func VanaAdd(svc plants.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "plants service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID, err := requestUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body plants.AddPlantRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Add(r.Context(), userID, body)
		if err != nil {
			responses.WriteErrorWithFallback(r.Context(), logg, w, err, "Failed to add plant. Please try again.")
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// VanaUpdate applies a partial update to an owned plant. The target id can
// arrive as a URL segment or inside the body.
func VanaUpdate(svc plants.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "plants service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID, err := requestUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body plants.UpdatePlantRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		raw := strings.TrimSpace(chi.URLParam(r, "plantID"))
		if raw == "" {
			raw = strings.TrimSpace(body.PlantID)
		}
		if raw == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "plant_id is required"))
			return
		}
		plantID, err := uuid.Parse(raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "plant_id must be a valid UUID"))
			return
		}

		result, err := svc.Update(r.Context(), userID, plantID, body)
		if err != nil {
			responses.WriteErrorWithFallback(r.Context(), logg, w, err, "Failed to update plant. Please try again.")
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// VanaDelete removes an owned plant. The target id can arrive as a URL
// segment or the plant_id query parameter.
func VanaDelete(svc plants.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "plants service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID, err := requestUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		raw := strings.TrimSpace(chi.URLParam(r, "plantID"))
		if raw == "" {
			raw = strings.TrimSpace(r.URL.Query().Get("plant_id"))
		}
		if raw == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "plant_id query parameter is required"))
			return
		}
		plantID, err := uuid.Parse(raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "plant_id must be a valid UUID"))
			return
		}

		result, err := svc.Remove(r.Context(), userID, plantID)
		if err != nil {
			responses.WriteErrorWithFallback(r.Context(), logg, w, err, "Failed to remove plant. Please try again.")
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// requestUserID resolves the authenticated caller from the request context.
func requestUserID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authorization token is required")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "token is invalid")
	}
	return userID, nil
}
