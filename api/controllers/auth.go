package controllers

import (
	"net/http"

	"github.com/vrikshai/vriksh-backend/api/middleware"
	"github.com/vrikshai/vriksh-backend/api/responses"
	"github.com/vrikshai/vriksh-backend/api/validators"
	"github.com/vrikshai/vriksh-backend/internal/auth"
	pkgerrors "github.com/vrikshai/vriksh-backend/pkg/errors"
	"github.com/vrikshai/vriksh-backend/pkg/logger"
)

// AuthSignup wires account creation into the HTTP layer.
func AuthSignup(svc auth.SignupService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.SignupRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Signup(r.Context(), body)
		if err != nil {
			responses.WriteErrorWithFallback(r.Context(), logg, w, err, "Signup failed. Please try again.")
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AuthLogin wires the login endpoint into the HTTP layer.
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteErrorWithFallback(r.Context(), logg, w, err, "Login failed. Please try again.")
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AuthRefresh re-issues a token for the already-verified caller.
func AuthRefresh(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		claims := middleware.ClaimsFromContext(r.Context())
		result, err := svc.Refresh(r.Context(), claims)
		if err != nil {
			responses.WriteErrorWithFallback(r.Context(), logg, w, err, "Token refresh failed. Please login again.")
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AuthVerify returns the profile behind a valid token.
func AuthVerify(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		claims := middleware.ClaimsFromContext(r.Context())
		user, err := svc.Verify(r.Context(), claims)
		if err != nil {
			responses.WriteErrorWithFallback(r.Context(), logg, w, err, "Token verification failed")
			return
		}

		responses.WriteSuccess(w, map[string]any{"user": user})
	}
}
