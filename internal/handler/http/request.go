package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/utils"
)

// decodeJSON reads the request body into dst. An empty body leaves dst
// untouched so that validation reports the missing fields. A body over the
// configured limit yields errBodyTooLarge, anything undecodable yields
// errInvalidJSON.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("%w: %w", errBodyTooLarge, err)
		}
		return fmt.Errorf("%w: %w", errInvalidJSON, err)
	}

	return nil
}

// writeError logs err and writes its JSON representation with the status
// taken from errorStatusMap.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(fallback)
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, errorResponse(err, status, fallback), status)
}
