package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/vrikshai/vriksh-backend/api/middleware"
	"github.com/vrikshai/vriksh-backend/internal/auth"
	"github.com/vrikshai/vriksh-backend/internal/users"
	pkgauth "github.com/vrikshai/vriksh-backend/pkg/auth"
	pkgerrors "github.com/vrikshai/vriksh-backend/pkg/errors"
)

type stubAuthService struct {
	loginResp   *auth.AuthResponse
	refreshResp *auth.RefreshResponse
	verifyResp  *users.UserDTO
	err         error
}

func (s stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error) {
	return s.loginResp, s.err
}

func (s stubAuthService) Refresh(ctx context.Context, claims *pkgauth.AccessTokenClaims) (*auth.RefreshResponse, error) {
	return s.refreshResp, s.err
}

func (s stubAuthService) Verify(ctx context.Context, claims *pkgauth.AccessTokenClaims) (*users.UserDTO, error) {
	return s.verifyResp, s.err
}

type stubSignupService struct {
	resp *auth.AuthResponse
	err  error
}

func (s stubSignupService) Signup(ctx context.Context, req auth.SignupRequest) (*auth.AuthResponse, error) {
	return s.resp, s.err
}

func decodeEnvelope(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := map[string]any{}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestAuthSignupSuccess(t *testing.T) {
	userID := uuid.New()
	handler := AuthSignup(stubSignupService{resp: &auth.AuthResponse{
		Token: "signed-token",
		User:  &users.UserDTO{ID: userID, Email: "ann@example.com", Name: "Ann"},
	}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewReader([]byte(`{"email":"ann@example.com","password":"secret1","name":"Ann"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	body := decodeEnvelope(t, resp)
	if body["success"] != true {
		t.Fatalf("success = %v", body["success"])
	}
	if body["token"] != "signed-token" {
		t.Fatalf("token = %v", body["token"])
	}
	user, ok := body["user"].(map[string]any)
	if !ok || user["email"] != "ann@example.com" {
		t.Fatalf("unexpected user payload: %v", body["user"])
	}
}

func TestAuthSignupConflict(t *testing.T) {
	handler := AuthSignup(stubSignupService{
		err: pkgerrors.New(pkgerrors.CodeConflict, "Email already registered. Please login instead."),
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewReader([]byte(`{"email":"ann@example.com","password":"secret1","name":"Ann"}`)))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}
	body := decodeEnvelope(t, resp)
	if body["error"] != "Email already registered. Please login instead." {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestAuthLoginInvalidCredentials(t *testing.T) {
	handler := AuthLogin(stubAuthService{
		err: pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid email or password"),
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte(`{"email":"ann@example.com","password":"wrong"}`)))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
	body := decodeEnvelope(t, resp)
	if body["error"] != "Invalid email or password" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestAuthLoginRejectsBadJSON(t *testing.T) {
	handler := AuthLogin(stubAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte(`{not-json`)))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	body := decodeEnvelope(t, resp)
	if body["error"] != "Invalid JSON in request body" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestAuthRefreshReturnsFreshToken(t *testing.T) {
	handler := AuthRefresh(stubAuthService{refreshResp: &auth.RefreshResponse{Token: "fresh-token"}}, nil)

	claims := &pkgauth.AccessTokenClaims{UserID: uuid.New(), Email: "ann@example.com"}
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	body := decodeEnvelope(t, resp)
	if body["token"] != "fresh-token" {
		t.Fatalf("token = %v", body["token"])
	}
}

func TestAuthVerifyReturnsProfile(t *testing.T) {
	userID := uuid.New()
	handler := AuthVerify(stubAuthService{verifyResp: &users.UserDTO{
		ID:    userID,
		Email: "ann@example.com",
		Name:  "Ann",
	}}, nil)

	claims := &pkgauth.AccessTokenClaims{UserID: userID, Email: "ann@example.com"}
	req := httptest.NewRequest(http.MethodGet, "/auth/verify", nil)
	req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	body := decodeEnvelope(t, resp)
	user, ok := body["user"].(map[string]any)
	if !ok || user["id"] != userID.String() {
		t.Fatalf("unexpected user payload: %v", body["user"])
	}
}
