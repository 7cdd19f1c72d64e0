package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-service/internal/utils"
	"github.com/MKhiriev/go-user-service/models"
)

var errNoUserIDInContext = errors.New("no user id in request context")

// getProfile handles GET /user/profile for the authenticated user.
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, errNoUserIDInContext, msgGetProfileFailed)
		return
	}

	user, err := h.services.UserService.GetProfile(ctx, userID)
	if err != nil {
		writeError(w, r, err, msgGetProfileFailed)
		return
	}

	utils.WriteJSON(w, models.NewProfileResponse(user), http.StatusOK)
}

// updateProfile handles PUT /user/profile. Only username and email can be
// changed; a password in the body is ignored.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, errNoUserIDInContext, msgUpdateFailed)
		return
	}

	var req models.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, msgUpdateFailed)
		return
	}

	user, err := h.services.UserService.UpdateProfile(ctx, userID, req)
	if err != nil {
		writeError(w, r, err, msgUpdateFailed)
		return
	}

	utils.WriteJSON(w, models.NewUpdatedProfileResponse(user), http.StatusOK)
}
