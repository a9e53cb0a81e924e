package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/vrikshai/vriksh-backend/pkg/errors"
	"github.com/vrikshai/vriksh-backend/pkg/logger"
)

// WriteSuccess renders the payload inside the success envelope with a
// 200 status.
func WriteSuccess(w http.ResponseWriter, data any) {
	WriteSuccessStatus(w, http.StatusOK, data)
}

// WriteSuccessStatus renders {"success":true, ...payload fields} by
// flattening the payload's own keys into the envelope.
func WriteSuccessStatus(w http.ResponseWriter, status int, data any) {
	envelope := map[string]any{"success": true}

	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			log.Printf(`{"level":"error","msg":"failed to encode payload","err":"%v"}`, err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"success": false,
				"error":   "Internal server error",
			})
			return
		}
		fields := map[string]any{}
		if err := json.Unmarshal(raw, &fields); err != nil {
			log.Printf(`{"level":"error","msg":"payload is not an object","err":"%v"}`, err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"success": false,
				"error":   "Internal server error",
			})
			return
		}
		for key, value := range fields {
			envelope[key] = value
		}
	}

	writeJSON(w, status, envelope)
}

// WriteError renders {"success":false,"error":...} using the error code's
// metadata for the status and public message.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	WriteErrorWithFallback(ctx, logg, w, err, "")
}

// WriteErrorWithFallback behaves like WriteError but replaces the generic
// public message with the route's own copy for server-side failures.
// Client errors keep their typed message.
func WriteErrorWithFallback(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error, fallback string) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	if fallback != "" {
		msg = fallback
	}
	switch typed.Code() {
	case pkgerrors.CodeValidation,
		pkgerrors.CodeUnauthorized,
		pkgerrors.CodeAccessDenied,
		pkgerrors.CodeNotFound,
		pkgerrors.CodeConflict,
		pkgerrors.CodeRateLimit:
		if m := typed.Message(); m != "" {
			msg = m
		}
	}

	if logg != nil {
		dump := pkgerrors.Dump(err)
		ctx = logg.WithFields(ctx, map[string]any{
			"error":       dump.TopMessage,
			"error_code":  dump.Code,
			"error_chain": dump.Chain,
		})
		logg.Error(ctx, "request.error", err)
	}

	writeJSON(w, meta.HTTPStatus, map[string]any{
		"success": false,
		"error":   msg,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
