package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-service/internal/service"
	"github.com/MKhiriev/go-user-service/internal/store"
	"github.com/MKhiriev/go-user-service/internal/validators"
	"github.com/MKhiriev/go-user-service/models"
)

var errorStatusMap = map[error]int{
	errInvalidJSON:  http.StatusBadRequest,
	errBodyTooLarge: http.StatusRequestEntityTooLarge,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusForbidden,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrPasswordHashing:         http.StatusInternalServerError,

	store.ErrDuplicateKey:     http.StatusConflict,
	store.ErrNoUserWasFound:   http.StatusNotFound,
	store.ErrInvalidData:      http.StatusBadRequest,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse builds the JSON body for err. Validation failures carry the
// rule that was violated; 500 responses carry fallback plus the failure detail.
func errorResponse(err error, status int, fallback string) models.MessageResponse {
	switch status {
	case http.StatusBadRequest:
		if msg, ok := validators.ClientMessage(err); ok {
			return models.MessageResponse{Message: msg}
		}
		if errors.Is(err, errInvalidJSON) {
			return models.MessageResponse{Message: msgInvalidJSON}
		}
		return models.MessageResponse{Message: msgInvalidData}
	case http.StatusRequestEntityTooLarge:
		return models.MessageResponse{Message: msgBodyTooLarge}
	case http.StatusConflict:
		return models.MessageResponse{Message: msgDuplicate}
	case http.StatusNotFound:
		return models.MessageResponse{Message: msgUserNotFound}
	case http.StatusUnauthorized:
		return models.MessageResponse{Message: msgInvalidCreds}
	case http.StatusForbidden:
		return models.MessageResponse{Message: msgInvalidToken}
	default:
		return models.MessageResponse{Message: fallback, Error: err.Error()}
	}
}
