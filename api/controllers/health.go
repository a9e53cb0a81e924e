package controllers

import (
	"context"
	"net/http"

	"github.com/vrikshai/vriksh-backend/api/responses"
	"github.com/vrikshai/vriksh-backend/pkg/config"
)

// Pinger is the reachability check a dependency exposes.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-VrikshAI-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports dependency reachability. A nil dependency is reported
// as skipped rather than failing readiness, since redis is optional.
func HealthReady(cfg *config.Config, database, cache Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-VrikshAI-Env", cfg.App.Env)

		checks := map[string]string{}
		ready := true

		if database != nil {
			if err := database.Ping(r.Context()); err != nil {
				checks["database"] = "unreachable"
				ready = false
			} else {
				checks["database"] = "ok"
			}
		} else {
			checks["database"] = "skipped"
		}

		if cache != nil {
			if err := cache.Ping(r.Context()); err != nil {
				checks["redis"] = "unreachable"
				ready = false
			} else {
				checks["redis"] = "ok"
			}
		} else {
			checks["redis"] = "skipped"
		}

		status := "ready"
		code := http.StatusOK
		if !ready {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		responses.WriteSuccessStatus(w, code, map[string]any{
			"status": status,
			"checks": checks,
		})
	}
}
