package controllers

import (
	"net/http"

	"github.com/vrikshai/vriksh-backend/api/responses"
	"github.com/vrikshai/vriksh-backend/api/validators"
	"github.com/vrikshai/vriksh-backend/internal/seva"
	pkgerrors "github.com/vrikshai/vriksh-backend/pkg/errors"
	"github.com/vrikshai/vriksh-backend/pkg/logger"
)

// SevaSchedule generates a personalized care schedule. Public endpoint.
func SevaSchedule(svc seva.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "seva service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body seva.ScheduleRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Schedule(r.Context(), body)
		if err != nil {
			responses.WriteErrorWithFallback(r.Context(), logg, w, err, "Care schedule generation failed. Please try again.")
			return
		}

		responses.WriteSuccess(w, result)
	}
}
