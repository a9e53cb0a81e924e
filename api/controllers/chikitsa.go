package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/vrikshai/vriksh-backend/api/responses"
	"github.com/vrikshai/vriksh-backend/api/validators"
	"github.com/vrikshai/vriksh-backend/internal/chikitsa"
	"github.com/vrikshai/vriksh-backend/internal/healthchecks"
	pkgerrors "github.com/vrikshai/vriksh-backend/pkg/errors"
	"github.com/vrikshai/vriksh-backend/pkg/logger"
)

// ChikitsaDiagnose runs a health diagnosis for the caller's plant.
func ChikitsaDiagnose(svc chikitsa.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "chikitsa service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID, err := requestUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body chikitsa.DiagnoseRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Diagnose(r.Context(), userID, body)
		if err != nil {
			responses.WriteErrorWithFallback(r.Context(), logg, w, err, "Plant diagnosis failed. Please try again.")
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// ChikitsaHistory returns recent health checks for one of the caller's plants.
func ChikitsaHistory(svc chikitsa.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "chikitsa service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID, err := requestUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		raw := strings.TrimSpace(r.URL.Query().Get("plant_id"))
		if raw == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "plant_id query parameter is required"))
			return
		}
		plantID, err := uuid.Parse(raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "plant_id must be a valid UUID"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", healthchecks.DefaultHistoryLimit, 1, 100)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.History(r.Context(), userID, plantID, limit)
		if err != nil {
			responses.WriteErrorWithFallback(r.Context(), logg, w, err, "Failed to fetch health history. Please try again.")
			return
		}

		responses.WriteSuccess(w, result)
	}
}
