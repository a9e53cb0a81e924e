package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vrikshai/vriksh-backend/api/controllers"
	"github.com/vrikshai/vriksh-backend/api/middleware"
	"github.com/vrikshai/vriksh-backend/api/responses"
	"github.com/vrikshai/vriksh-backend/internal/auth"
	"github.com/vrikshai/vriksh-backend/internal/chikitsa"
	"github.com/vrikshai/vriksh-backend/internal/darshan"
	"github.com/vrikshai/vriksh-backend/internal/plants"
	"github.com/vrikshai/vriksh-backend/internal/seva"
	"github.com/vrikshai/vriksh-backend/pkg/config"
	pkgerrors "github.com/vrikshai/vriksh-backend/pkg/errors"
	"github.com/vrikshai/vriksh-backend/pkg/logger"
	"github.com/vrikshai/vriksh-backend/pkg/redis"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config *config.Config
	Logger *logger.Logger

	DB    controllers.Pinger
	Redis *redis.Client

	AuthService     auth.Service
	SignupService   auth.SignupService
	PlantsService   plants.Service
	ChikitsaService chikitsa.Service
	DarshanService  darshan.Service
	SevaService     seva.Service
}

// NewRouter assembles the HTTP surface. Token verification runs as
// middleware ahead of every protected handler, so a failed verify never
// reaches a service or the database.
func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.AllowOptions(),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "Route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "Route not found"))
	})

	requireAuth := middleware.Auth(cfg.JWT, logg)
	optionalAuth := middleware.OptionalAuth(cfg.JWT, logg)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.AuthRateLimit.SignupWindow,
		cfg.AuthRateLimit.SignupIPLimit,
		cfg.AuthRateLimit.SignupEmailLimit,
	)

	limiter := deps.Redis

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, redisPinger(limiter)))
	})

	r.Route("/auth", func(r chi.Router) {
		r.With(rateLimit(signupPolicy, limiter, logg)).Post("/signup", controllers.AuthSignup(deps.SignupService, logg))
		r.With(rateLimit(loginPolicy, limiter, logg)).Post("/login", controllers.AuthLogin(deps.AuthService, logg))

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/refresh", controllers.AuthRefresh(deps.AuthService, logg))
			r.Get("/verify", controllers.AuthVerify(deps.AuthService, logg))
		})
	})

	r.Route("/vana", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", controllers.VanaList(deps.PlantsService, logg))
		r.Post("/", controllers.VanaAdd(deps.PlantsService, logg))
		r.Patch("/", controllers.VanaUpdate(deps.PlantsService, logg))
		r.Delete("/", controllers.VanaDelete(deps.PlantsService, logg))
		r.Patch("/{plantID}", controllers.VanaUpdate(deps.PlantsService, logg))
		r.Delete("/{plantID}", controllers.VanaDelete(deps.PlantsService, logg))
	})

	r.Route("/chikitsa", func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/", controllers.ChikitsaDiagnose(deps.ChikitsaService, logg))
		r.Get("/history", controllers.ChikitsaHistory(deps.ChikitsaService, logg))
	})

	r.With(optionalAuth).Post("/darshan", controllers.DarshanIdentify(deps.DarshanService, logg))
	r.Post("/seva", controllers.SevaSchedule(deps.SevaService, logg))

	return r
}

func rateLimit(policy middleware.AuthRateLimitPolicy, client *redis.Client, logg *logger.Logger) func(http.Handler) http.Handler {
	if client == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return middleware.AuthRateLimit(policy, client, logg)
}

// redisPinger avoids handing a typed-nil pointer to the readiness check.
func redisPinger(client *redis.Client) controllers.Pinger {
	if client == nil {
		return nil
	}
	return client
}
