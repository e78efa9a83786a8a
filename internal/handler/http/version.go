package http

import (
	"net/http"

	"github.com/MKhiriev/starwars-api/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetBuildInfo(r.Context()), http.StatusOK)
}
