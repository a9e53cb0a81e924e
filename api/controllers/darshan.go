package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/vrikshai/vriksh-backend/api/middleware"
	"github.com/vrikshai/vriksh-backend/api/responses"
	"github.com/vrikshai/vriksh-backend/api/validators"
	"github.com/vrikshai/vriksh-backend/internal/darshan"
	pkgerrors "github.com/vrikshai/vriksh-backend/pkg/errors"
	"github.com/vrikshai/vriksh-backend/pkg/logger"
)

// DarshanIdentify identifies a plant from an image. The endpoint is public;
// a valid bearer token attributes the identification to the caller.
func DarshanIdentify(svc darshan.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "darshan service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body darshan.IdentifyRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var userID *uuid.UUID
		if raw := middleware.UserIDFromContext(r.Context()); raw != "" {
			if parsed, err := uuid.Parse(raw); err == nil {
				userID = &parsed
			}
		}

		result, err := svc.Identify(r.Context(), userID, body)
		if err != nil {
			responses.WriteErrorWithFallback(r.Context(), logg, w, err, "Plant identification failed. Please try again with a clearer image.")
			return
		}

		responses.WriteSuccess(w, result)
	}
}
