package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgauth "github.com/vrikshai/vriksh-backend/pkg/auth"
	"github.com/vrikshai/vriksh-backend/pkg/config"
	"github.com/vrikshai/vriksh-backend/pkg/db/models"
	pkgerrors "github.com/vrikshai/vriksh-backend/pkg/errors"
	"github.com/vrikshai/vriksh-backend/pkg/security"
)

type stubUserRepo struct {
	byEmail map[string]*models.User
	byID    map[uuid.UUID]*models.User
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if user, ok := s.byEmail[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := s.byID[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "secret", Issuer: "vrikshai", ExpirationDays: 7}
}

func seededUser(t *testing.T, email, password string) *models.User {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Name:         "Mali",
	}
}

func TestLoginSuccess(t *testing.T) {
	user := seededUser(t, "mali@example.com", "greenthumb")
	repo := &stubUserRepo{byEmail: map[string]*models.User{user.Email: user}}

	svc, err := NewService(ServiceParams{UserRepo: repo, JWTConfig: testJWTConfig()})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "  Mali@Example.com ", Password: "greenthumb"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}
	if resp.User == nil || resp.User.ID != user.ID {
		t.Fatalf("unexpected user %+v", resp.User)
	}

	claims, err := pkgauth.ParseAccessToken(testJWTConfig(), resp.Token)
	if err != nil {
		t.Fatalf("parse minted token: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	user := seededUser(t, "mali@example.com", "greenthumb")
	repo := &stubUserRepo{byEmail: map[string]*models.User{user.Email: user}}

	svc, err := NewService(ServiceParams{UserRepo: repo, JWTConfig: testJWTConfig()})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Login(context.Background(), LoginRequest{Email: user.Email, Password: "wrong"})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if appErr.Message() != invalidCredentialsMessage {
		t.Fatalf("unexpected message %q", appErr.Message())
	}
}

func TestLoginUnknownEmailMatchesWrongPasswordMessage(t *testing.T) {
	repo := &stubUserRepo{byEmail: map[string]*models.User{}}

	svc, err := NewService(ServiceParams{UserRepo: repo, JWTConfig: testJWTConfig()})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "greenthumb"})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if appErr.Message() != invalidCredentialsMessage {
		t.Fatalf("unexpected message %q", appErr.Message())
	}
}

func TestLoginMissingFields(t *testing.T) {
	svc, err := NewService(ServiceParams{UserRepo: &stubUserRepo{}, JWTConfig: testJWTConfig()})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Login(context.Background(), LoginRequest{Email: "mali@example.com"})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRefreshExtendsExpiry(t *testing.T) {
	svc, err := NewService(ServiceParams{UserRepo: &stubUserRepo{}, JWTConfig: testJWTConfig()})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	userID := uuid.New()
	claims := &pkgauth.AccessTokenClaims{UserID: userID, Email: "mali@example.com"}

	resp, err := svc.Refresh(context.Background(), claims)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	parsed, err := pkgauth.ParseAccessToken(testJWTConfig(), resp.Token)
	if err != nil {
		t.Fatalf("parse refreshed token: %v", err)
	}
	if parsed.UserID != userID {
		t.Fatalf("identity not preserved: %+v", parsed)
	}
	remaining := time.Until(parsed.ExpiresAt.Time)
	if remaining < 6*24*time.Hour {
		t.Fatalf("expected a full new lifetime, got %v", remaining)
	}
}

func TestVerifyUnknownUser(t *testing.T) {
	svc, err := NewService(ServiceParams{UserRepo: &stubUserRepo{byID: map[uuid.UUID]*models.User{}}, JWTConfig: testJWTConfig()})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Verify(context.Background(), &pkgauth.AccessTokenClaims{UserID: uuid.New(), Email: "ghost@example.com"})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestVerifyReturnsProfile(t *testing.T) {
	user := seededUser(t, "mali@example.com", "greenthumb")
	repo := &stubUserRepo{byID: map[uuid.UUID]*models.User{user.ID: user}}

	svc, err := NewService(ServiceParams{UserRepo: repo, JWTConfig: testJWTConfig()})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Verify(context.Background(), &pkgauth.AccessTokenClaims{UserID: user.ID, Email: user.Email})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if dto.Name != "Mali" || dto.Email != user.Email {
		t.Fatalf("unexpected dto %+v", dto)
	}
}

func TestValidateSignup(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		fullName string
		wantMsg  string
	}{
		{name: "missing email", email: "", password: "greenthumb", fullName: "Mali", wantMsg: "Valid email is required"},
		{name: "email without at sign", email: "maliexample.com", password: "greenthumb", fullName: "Mali", wantMsg: "Valid email is required"},
		{name: "short password", email: "mali@example.com", password: "abc12", fullName: "Mali", wantMsg: "Password must be at least 6 characters"},
		{name: "missing name", email: "mali@example.com", password: "greenthumb", fullName: "", wantMsg: "Name is required"},
		{name: "valid", email: "mali@example.com", password: "greenthumb", fullName: "Mali"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateSignup(tc.email, tc.password, tc.fullName)
			if tc.wantMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			appErr := pkgerrors.As(err)
			if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if appErr.Message() != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, appErr.Message())
			}
		})
	}
}
