package validators_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vrikshai/vriksh-backend/api/validators"
	"github.com/vrikshai/vriksh-backend/internal/auth"
	"github.com/vrikshai/vriksh-backend/internal/chikitsa"
	"github.com/vrikshai/vriksh-backend/internal/darshan"
	"github.com/vrikshai/vriksh-backend/internal/plants"
	"github.com/vrikshai/vriksh-backend/internal/seva"
	pkgerrors "github.com/vrikshai/vriksh-backend/pkg/errors"
)

func decodeBody(t *testing.T, body string, dest any) error {
	t.Helper()
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	return validators.DecodeJSONBody(req, dest)
}

func TestDecodeJSONBodyRejectsMalformedJSON(t *testing.T) {
	err := decodeBody(t, "{not json", &auth.LoginRequest{})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if appErr.Message() != "Invalid JSON in request body" {
		t.Fatalf("unexpected message %q", appErr.Message())
	}
}

func TestDecodeJSONBodyAcceptsValidPayload(t *testing.T) {
	var req auth.SignupRequest
	if err := decodeBody(t, `{"email":"mira@example.com","password":"secret1","name":"Mira"}`, &req); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if req.Email != "mira@example.com" || req.Name != "Mira" {
		t.Fatalf("unexpected decode result %+v", req)
	}
}

func TestDecodeJSONBodyUsesRequestCopy(t *testing.T) {
	tests := []struct {
		name string
		body string
		dest func() any
		want string
	}{
		{
			name: "signup missing email",
			body: `{"password":"secret1","name":"Mira"}`,
			dest: func() any { return &auth.SignupRequest{} },
			want: "Valid email is required",
		},
		{
			name: "signup invalid email",
			body: `{"email":"not-an-email","password":"secret1","name":"Mira"}`,
			dest: func() any { return &auth.SignupRequest{} },
			want: "Valid email is required",
		},
		{
			name: "signup short password",
			body: `{"email":"mira@example.com","password":"short","name":"Mira"}`,
			dest: func() any { return &auth.SignupRequest{} },
			want: "Password must be at least 6 characters",
		},
		{
			name: "signup missing name",
			body: `{"email":"mira@example.com","password":"secret1"}`,
			dest: func() any { return &auth.SignupRequest{} },
			want: "Name is required",
		},
		{
			name: "login missing credentials",
			body: `{}`,
			dest: func() any { return &auth.LoginRequest{} },
			want: "Email and password are required",
		},
		{
			name: "diagnose missing symptoms",
			body: `{"plant_name":"Tulsi"}`,
			dest: func() any { return &chikitsa.DiagnoseRequest{} },
			want: "plant_name and symptoms are required",
		},
		{
			name: "schedule missing plant name",
			body: `{"location":"Pune"}`,
			dest: func() any { return &seva.ScheduleRequest{} },
			want: "plant_name is required",
		},
		{
			name: "identify without image",
			body: `{}`,
			dest: func() any { return &darshan.IdentifyRequest{} },
			want: "Either image_url or image_base64 is required",
		},
		{
			name: "add plant missing name",
			body: `{"species":"Holy Basil"}`,
			dest: func() any { return &plants.AddPlantRequest{} },
			want: "Plant name is required",
		},
		{
			name: "add plant zero frequency",
			body: `{"name":"Tulsi","species":"Holy Basil","watering_frequency_days":0}`,
			dest: func() any { return &plants.AddPlantRequest{} },
			want: "watering_frequency_days must be at least 1",
		},
		{
			name: "update plant zero frequency",
			body: `{"watering_frequency_days":0}`,
			dest: func() any { return &plants.UpdatePlantRequest{} },
			want: "watering_frequency_days must be at least 1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := decodeBody(t, tc.body, tc.dest())
			appErr := pkgerrors.As(err)
			if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if appErr.Message() != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, appErr.Message())
			}
		})
	}
}

func TestDecodeJSONBodyIdentifyAcceptsBase64Only(t *testing.T) {
	var req darshan.IdentifyRequest
	if err := decodeBody(t, `{"image_base64":"aGVsbG8="}`, &req); err != nil {
		t.Fatalf("decode: %v", err)
	}
}
