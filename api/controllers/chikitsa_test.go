package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/vrikshai/vriksh-backend/internal/chikitsa"
	"github.com/vrikshai/vriksh-backend/pkg/vrikshai"
)

type stubChikitsaService struct {
	diagnoseResp *chikitsa.DiagnoseResponse
	historyResp  *chikitsa.HistoryResponse
	err          error

	historyPlantID uuid.UUID
	historyLimit   int
}

func (s *stubChikitsaService) Diagnose(ctx context.Context, userID uuid.UUID, req chikitsa.DiagnoseRequest) (*chikitsa.DiagnoseResponse, error) {
	return s.diagnoseResp, s.err
}

func (s *stubChikitsaService) History(ctx context.Context, userID, plantID uuid.UUID, limit int) (*chikitsa.HistoryResponse, error) {
	s.historyPlantID = plantID
	s.historyLimit = limit
	return s.historyResp, s.err
}

func TestChikitsaDiagnoseReturnsResultAndSavedFlag(t *testing.T) {
	svc := &stubChikitsaService{diagnoseResp: &chikitsa.DiagnoseResponse{
		Chikitsa: &vrikshai.ChikitsaResult{Diagnosis: "leaf spot", Severity: "warning"},
		Saved:    true,
	}}
	handler := ChikitsaDiagnose(svc, nil)

	payload := []byte(`{"plant_name":"Tulsi","symptoms":"yellow leaves"}`)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPost, "/chikitsa", payload, uuid.New()))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	body := decodeEnvelope(t, resp)
	if body["saved"] != true {
		t.Fatalf("saved = %v", body["saved"])
	}
	result, ok := body["chikitsa"].(map[string]any)
	if !ok || result["diagnosis"] != "leaf spot" {
		t.Fatalf("chikitsa = %v", body["chikitsa"])
	}
}

func TestChikitsaHistoryRequiresPlantID(t *testing.T) {
	handler := ChikitsaHistory(&stubChikitsaService{}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodGet, "/chikitsa/history", nil, uuid.New()))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	body := decodeEnvelope(t, resp)
	if body["error"] != "plant_id query parameter is required" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestChikitsaHistoryAppliesLimitDefault(t *testing.T) {
	plantID := uuid.New()
	svc := &stubChikitsaService{historyResp: &chikitsa.HistoryResponse{PlantID: plantID}}
	handler := ChikitsaHistory(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodGet, "/chikitsa/history?plant_id="+plantID.String(), nil, uuid.New()))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.historyPlantID != plantID {
		t.Fatalf("plant id = %s, want %s", svc.historyPlantID, plantID)
	}
	if svc.historyLimit != 10 {
		t.Fatalf("limit = %d, want 10", svc.historyLimit)
	}
}
