package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/vrikshai/vriksh-backend/api/routes"
	"github.com/vrikshai/vriksh-backend/internal/auth"
	"github.com/vrikshai/vriksh-backend/internal/chikitsa"
	"github.com/vrikshai/vriksh-backend/internal/darshan"
	"github.com/vrikshai/vriksh-backend/internal/healthchecks"
	"github.com/vrikshai/vriksh-backend/internal/identifications"
	"github.com/vrikshai/vriksh-backend/internal/plants"
	"github.com/vrikshai/vriksh-backend/internal/seva"
	"github.com/vrikshai/vriksh-backend/internal/users"
	"github.com/vrikshai/vriksh-backend/pkg/config"
	"github.com/vrikshai/vriksh-backend/pkg/db"
	"github.com/vrikshai/vriksh-backend/pkg/logger"
	"github.com/vrikshai/vriksh-backend/pkg/redis"
	"github.com/vrikshai/vriksh-backend/pkg/vrikshai"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if cfg.FeatureFlags.AutoMigrate && cfg.App.IsDev() {
		if err := dbClient.AutoMigrate(context.Background()); err != nil {
			logg.Error(context.Background(), "failed to run dev migrations", err)
			os.Exit(1)
		}
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, auth rate limiting disabled")
	}

	aiClient, err := vrikshai.NewClient(
		cfg.OpenAI.APIKey,
		vrikshai.WithBaseURL(cfg.OpenAI.BaseURL),
		vrikshai.WithModel(cfg.OpenAI.Model),
		vrikshai.WithHTTPClient(&http.Client{Timeout: cfg.OpenAI.Timeout}),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create ai client", err)
		os.Exit(1)
	}

	userRepo := users.NewRepository(dbClient.DB())
	plantRepo := plants.NewRepository(dbClient.DB())
	checkRepo := healthchecks.NewRepository(dbClient.DB())
	identRepo := identifications.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:  userRepo,
		JWTConfig: cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	signupService, err := auth.NewSignupService(auth.SignupServiceParams{
		DB:             dbClient,
		PasswordConfig: cfg.Password,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create signup service", err)
		os.Exit(1)
	}

	plantsService, err := plants.NewService(plants.ServiceParams{
		PlantRepo: plantRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create plants service", err)
		os.Exit(1)
	}

	chikitsaService, err := chikitsa.NewService(chikitsa.ServiceParams{
		AI:        aiClient,
		Guard:     plantsService,
		CheckRepo: checkRepo,
		PlantRepo: plantRepo,
		Logger:    logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create chikitsa service", err)
		os.Exit(1)
	}

	darshanService, err := darshan.NewService(darshan.ServiceParams{
		AI:          aiClient,
		HistoryRepo: identRepo,
		Logger:      logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create darshan service", err)
		os.Exit(1)
	}

	sevaService, err := seva.NewService(seva.ServiceParams{
		AI: aiClient,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create seva service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:          cfg,
			Logger:          logg,
			DB:              dbClient,
			Redis:           redisClient,
			AuthService:     authService,
			SignupService:   signupService,
			PlantsService:   plantsService,
			ChikitsaService: chikitsaService,
			DarshanService:  darshanService,
			SevaService:     sevaService,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
