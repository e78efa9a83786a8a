package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/internal/service"
	"github.com/MKhiriev/starwars-api/internal/utils"
)

var errorStatusMap = map[error]int{
	errInvalidPathID:               http.StatusNotFound,
	service.ErrInvalidID:           http.StatusBadRequest,
	service.ErrUnknownFavoriteKind: http.StatusNotFound,

	service.ErrPersonNotFound:  http.StatusNotFound,
	service.ErrPlanetNotFound:  http.StatusNotFound,
	service.ErrVehicleNotFound: http.StatusNotFound,
	service.ErrUserNotFound:    http.StatusNotFound,

	service.ErrAlreadyFavorited: http.StatusBadRequest,
	service.ErrFavoriteNotFound: http.StatusNotFound,
}

// errorMessages holds the {"error": ...} text of every error that has a
// fixed message.
var errorMessages = map[error]string{
	errInvalidPathID:               msgNotFound,
	service.ErrInvalidID:           msgInvalidID,
	service.ErrUnknownFavoriteKind: msgNotFound,

	service.ErrPersonNotFound:  "Person not found",
	service.ErrPlanetNotFound:  "Planet not found",
	service.ErrVehicleNotFound: "Vehicle not found",
	service.ErrUserNotFound:    "User not found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, msg := range errorMessages {
		if errors.Is(err, target) {
			return msg
		}
	}
	return msgInternalServerError
}

// writeError renders err as {"error": ...}. Unclassified errors become a
// generic 500 and are logged; their text never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("request failed")
	}

	utils.WriteError(w, messageFromError(err), status)
}
