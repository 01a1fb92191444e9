package handler

import "time"

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// accountResponse is the structurally password-free view of an account.
// It is built at the boundary; the domain account never serializes outward.
type accountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type authResponse struct {
	User  accountResponse `json:"user"`
	Token string          `json:"token"`
}

// identityResponse is the view of the caller's resolved identity.
type identityResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type profileResponse struct {
	User identityResponse `json:"user"`
}

type verifyResponse struct {
	UserID string           `json:"userId"`
	User   identityResponse `json:"user"`
}
