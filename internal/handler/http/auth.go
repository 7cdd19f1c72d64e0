package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/utils"
	"github.com/MKhiriev/go-user-service/models"
)

// register handles POST /auth/register.
//
//	201 {"message":"User registered successfully","userId":1}
//	400 validation failure or malformed JSON
//	409 username or email already taken
//	500 {"message":"Error registering user","error":"..."}
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, msgRegisterFailed)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err, msgRegisterFailed)
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{
		Message: msgRegistered,
		UserID:  registeredUser.ID,
	}, http.StatusCreated)
}

// login handles POST /auth/login.
//
//	200 {"message":"Login successful","token":"..."}
//	400 validation failure or malformed JSON
//	401 wrong password
//	404 unknown username
//	500 {"message":"Error logging in","error":"..."}
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, msgLoginFailed)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err, msgLoginFailed)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err, msgLoginFailed)
		return
	}

	log.Debug().Int64("user_id", foundUser.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Message: msgLoggedIn,
		Token:   token.String(),
	}, http.StatusOK)
}
