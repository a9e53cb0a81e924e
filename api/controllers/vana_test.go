package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/vrikshai/vriksh-backend/api/middleware"
	"github.com/vrikshai/vriksh-backend/internal/plants"
	"github.com/vrikshai/vriksh-backend/pkg/db/models"
	pkgerrors "github.com/vrikshai/vriksh-backend/pkg/errors"
)

type stubPlantsService struct {
	listResp    *plants.ListResponse
	addResp     *plants.AddResponse
	messageResp *plants.MessageResponse
	err         error

	lastPlantID uuid.UUID
	lastUserID  uuid.UUID
}

func (s *stubPlantsService) List(ctx context.Context, userID uuid.UUID) (*plants.ListResponse, error) {
	s.lastUserID = userID
	return s.listResp, s.err
}

func (s *stubPlantsService) Add(ctx context.Context, userID uuid.UUID, req plants.AddPlantRequest) (*plants.AddResponse, error) {
	s.lastUserID = userID
	return s.addResp, s.err
}

func (s *stubPlantsService) Update(ctx context.Context, userID, plantID uuid.UUID, req plants.UpdatePlantRequest) (*plants.MessageResponse, error) {
	s.lastUserID = userID
	s.lastPlantID = plantID
	return s.messageResp, s.err
}

func (s *stubPlantsService) Remove(ctx context.Context, userID, plantID uuid.UUID) (*plants.MessageResponse, error) {
	s.lastUserID = userID
	s.lastPlantID = plantID
	return s.messageResp, s.err
}

func (s *stubPlantsService) EnsureOwner(ctx context.Context, userID, plantID uuid.UUID) (*models.Plant, error) {
	return nil, s.err
}

func authedRequest(method, target string, body []byte, userID uuid.UUID) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
}

func TestVanaListReturnsCollection(t *testing.T) {
	userID := uuid.New()
	svc := &stubPlantsService{listResp: &plants.ListResponse{
		Vana:  []plants.PlantDTO{{ID: uuid.New(), Name: "Tulsi", Species: "Ocimum tenuiflorum"}},
		Count: 1,
	}}
	handler := VanaList(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodGet, "/vana", nil, userID))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastUserID != userID {
		t.Fatalf("list scoped to %s, want %s", svc.lastUserID, userID)
	}
	body := decodeEnvelope(t, resp)
	if body["count"] != float64(1) {
		t.Fatalf("count = %v", body["count"])
	}
	if _, ok := body["vana"].([]any); !ok {
		t.Fatalf("vana = %v", body["vana"])
	}
}

func TestVanaListRequiresAuthContext(t *testing.T) {
	handler := VanaList(&stubPlantsService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/vana", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestVanaAddReturnsPlantID(t *testing.T) {
	plantID := uuid.New()
	svc := &stubPlantsService{addResp: &plants.AddResponse{
		PlantID: plantID,
		Message: "Plant added to Mera Vana successfully",
	}}
	handler := VanaAdd(svc, nil)

	payload := []byte(`{"name":"Tulsi","species":"Ocimum tenuiflorum"}`)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPost, "/vana", payload, uuid.New()))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	body := decodeEnvelope(t, resp)
	if body["plant_id"] != plantID.String() {
		t.Fatalf("plant_id = %v", body["plant_id"])
	}
	if body["message"] != "Plant added to Mera Vana successfully" {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestVanaUpdateRequiresPlantID(t *testing.T) {
	handler := VanaUpdate(&stubPlantsService{}, nil)

	payload := []byte(`{"notes":"needs repotting"}`)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPatch, "/vana", payload, uuid.New()))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	body := decodeEnvelope(t, resp)
	if body["error"] != "plant_id is required" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestVanaUpdateTakesPlantIDFromBody(t *testing.T) {
	plantID := uuid.New()
	svc := &stubPlantsService{messageResp: &plants.MessageResponse{Message: "Plant updated successfully"}}
	handler := VanaUpdate(svc, nil)

	payload := []byte(`{"plant_id":"` + plantID.String() + `","notes":"needs repotting"}`)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPatch, "/vana", payload, uuid.New()))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastPlantID != plantID {
		t.Fatalf("plant id = %s, want %s", svc.lastPlantID, plantID)
	}
}

func TestVanaUpdateDeniedPlantMapsTo404(t *testing.T) {
	svc := &stubPlantsService{err: pkgerrors.New(pkgerrors.CodeAccessDenied, "Plant not found or access denied")}
	handler := VanaUpdate(svc, nil)

	payload := []byte(`{"plant_id":"` + uuid.NewString() + `","notes":"x"}`)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPatch, "/vana", payload, uuid.New()))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
	body := decodeEnvelope(t, resp)
	if body["error"] != "Plant not found or access denied" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestVanaDeleteRequiresQueryParam(t *testing.T) {
	handler := VanaDelete(&stubPlantsService{}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodDelete, "/vana", nil, uuid.New()))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	body := decodeEnvelope(t, resp)
	if body["error"] != "plant_id query parameter is required" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestVanaDeleteTakesPlantIDFromQuery(t *testing.T) {
	plantID := uuid.New()
	svc := &stubPlantsService{messageResp: &plants.MessageResponse{Message: "Plant removed from Mera Vana successfully"}}
	handler := VanaDelete(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodDelete, "/vana?plant_id="+plantID.String(), nil, uuid.New()))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastPlantID != plantID {
		t.Fatalf("plant id = %s, want %s", svc.lastPlantID, plantID)
	}
	body := decodeEnvelope(t, resp)
	if body["message"] != "Plant removed from Mera Vana successfully" {
		t.Fatalf("message = %v", body["message"])
	}
}
