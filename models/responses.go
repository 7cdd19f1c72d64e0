package models

import "time"

// MessageResponse is the body of every error response and of responses
// that carry only a message. Error is filled for internal failures only.
type MessageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// RegisterResponse is returned with 201 Created after a successful
// registration.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// LoginResponse is returned with 200 OK after a successful login. Token is
// the signed JWT the client presents in the Authorization header.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ProfileResponse is the public view of a user returned by GET /user/profile.
type ProfileResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdatedProfileResponse is returned by PUT /user/profile.
type UpdatedProfileResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// NewProfileResponse builds the public profile view of u.
func NewProfileResponse(u User) ProfileResponse {
	return ProfileResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// NewUpdatedProfileResponse builds the response body for a profile update.
func NewUpdatedProfileResponse(u User) UpdatedProfileResponse {
	return UpdatedProfileResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
