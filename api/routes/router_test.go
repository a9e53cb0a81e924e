package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vrikshai/vriksh-backend/internal/plants"
	pkgauth "github.com/vrikshai/vriksh-backend/pkg/auth"
	"github.com/vrikshai/vriksh-backend/pkg/config"
	"github.com/vrikshai/vriksh-backend/pkg/db/models"
)

type recordingPlantsService struct {
	calls int
}

func (s *recordingPlantsService) List(ctx context.Context, userID uuid.UUID) (*plants.ListResponse, error) {
	s.calls++
	return &plants.ListResponse{Vana: []plants.PlantDTO{}, Count: 0}, nil
}

func (s *recordingPlantsService) Add(ctx context.Context, userID uuid.UUID, req plants.AddPlantRequest) (*plants.AddResponse, error) {
	s.calls++
	return &plants.AddResponse{PlantID: uuid.New(), Message: "Plant added to Mera Vana successfully"}, nil
}

func (s *recordingPlantsService) Update(ctx context.Context, userID, plantID uuid.UUID, req plants.UpdatePlantRequest) (*plants.MessageResponse, error) {
	s.calls++
	return &plants.MessageResponse{Message: "Plant updated successfully"}, nil
}

func (s *recordingPlantsService) Remove(ctx context.Context, userID, plantID uuid.UUID) (*plants.MessageResponse, error) {
	s.calls++
	return &plants.MessageResponse{Message: "Plant removed from Mera Vana successfully"}, nil
}

func (s *recordingPlantsService) EnsureOwner(ctx context.Context, userID, plantID uuid.UUID) (*models.Plant, error) {
	s.calls++
	return nil, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "dev", Port: "8080"},
		JWT: config.JWTConfig{Secret: "secret", Issuer: "vrikshai", ExpirationDays: 7},
	}
}

func testRouter(svc plants.Service) http.Handler {
	return NewRouter(Deps{
		Config:        testConfig(),
		PlantsService: svc,
	})
}

func decodeEnvelope(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := map[string]any{}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestRouterRejectsProtectedRouteBeforeHandler(t *testing.T) {
	svc := &recordingPlantsService{}
	router := testRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/vana", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
	if svc.calls != 0 {
		t.Fatalf("storage must not be touched on failed verify, got %d calls", svc.calls)
	}
	body := decodeEnvelope(t, resp)
	if body["error"] != "authorization token is required" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestRouterAllowsAuthedVanaList(t *testing.T) {
	svc := &recordingPlantsService{}
	router := testRouter(svc)
	cfg := testConfig()

	token, err := pkgauth.MintAccessToken(cfg.JWT, time.Now(), pkgauth.AccessTokenPayload{
		UserID: uuid.New(),
		Email:  "ann@example.com",
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/vana", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.calls != 1 {
		t.Fatalf("expected one service call, got %d", svc.calls)
	}
}

func TestRouterUnknownRouteReturnsEnvelope(t *testing.T) {
	router := testRouter(&recordingPlantsService{})

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
	body := decodeEnvelope(t, resp)
	if body["success"] != false || body["error"] != "Route not found" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	router := testRouter(&recordingPlantsService{})

	req := httptest.NewRequest(http.MethodOptions, "/auth/login", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow-origin = %q", got)
	}
}

func TestRouterBareOptionsSkipsAuth(t *testing.T) {
	svc := &recordingPlantsService{}
	router := testRouter(svc)

	// OPTIONS without Access-Control-Request-Method is not a preflight,
	// so the cors handler lets it through; it must still answer 200
	// without touching auth or a service.
	paths := []string{"/vana", "/auth/login", "/auth/signup", "/auth/verify", "/chikitsa", "/chikitsa/history", "/darshan", "/seva"}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d: %s", path, resp.Code, resp.Body.String())
		}
		if resp.Body.Len() != 0 {
			t.Fatalf("%s: expected empty body, got %q", path, resp.Body.String())
		}
		if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Fatalf("%s: allow-origin = %q", path, got)
		}
	}
	if svc.calls != 0 {
		t.Fatalf("no service may be called for OPTIONS, got %d calls", svc.calls)
	}
}

func TestRouterHealthLive(t *testing.T) {
	router := testRouter(&recordingPlantsService{})

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	body := decodeEnvelope(t, resp)
	if body["status"] != "live" {
		t.Fatalf("status = %v", body["status"])
	}
}
