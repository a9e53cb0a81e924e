package auth

import "github.com/vrikshai/vriksh-backend/internal/users"

// SignupRequest contains the payload for creating an account.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

// FieldMessage maps a failed field to the response copy for this payload.
func (SignupRequest) FieldMessage(field string) (string, bool) {
	switch field {
	case "email":
		return "Valid email is required", true
	case "password":
		return "Password must be at least 6 characters", true
	case "name":
		return "Name is required", true
	}
	return "", false
}

// LoginRequest contains the credentials for an existing account.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// FieldMessage maps a failed field to the response copy for this payload.
// A missing email and a missing password share the same copy so the
// response does not hint at which half was supplied.
func (LoginRequest) FieldMessage(field string) (string, bool) {
	switch field {
	case "email", "password":
		return "Email and password are required", true
	}
	return "", false
}

// AuthResponse carries a freshly minted token and the account it belongs to.
type AuthResponse struct {
	Token string         `json:"token"`
	User  *users.UserDTO `json:"user"`
}

// RefreshResponse carries only the re-minted token.
type RefreshResponse struct {
	Token string `json:"token"`
}
