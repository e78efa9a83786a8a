package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/starwars-api/internal/utils"
	"github.com/MKhiriev/starwars-api/models"
)

const userIDQueryParam = "user_id"

// withIdentity resolves the acting user from the user_id query parameter.
// A missing or non-integer value falls back to the configured default user.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := h.defaultUserID
		if raw := r.URL.Query().Get(userIDQueryParam); raw != "" {
			if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
				userID = parsed
			}
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), userID)))
	})
}

// identityFromRequest returns the identity stored by withIdentity.
func (h *Handler) identityFromRequest(r *http.Request) models.Identity {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		userID = h.defaultUserID
	}
	return models.Identity{UserID: userID}
}
