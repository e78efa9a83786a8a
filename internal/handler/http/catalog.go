package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/starwars-api/internal/utils"
)

func (h *Handler) getPeople(w http.ResponseWriter, r *http.Request) {
	writeList(w, r, h.services.CatalogService.ListPeople)
}

func (h *Handler) getPerson(w http.ResponseWriter, r *http.Request) {
	writeOne(w, r, h.services.CatalogService.GetPerson)
}

func (h *Handler) getPlanets(w http.ResponseWriter, r *http.Request) {
	writeList(w, r, h.services.CatalogService.ListPlanets)
}

func (h *Handler) getPlanet(w http.ResponseWriter, r *http.Request) {
	writeOne(w, r, h.services.CatalogService.GetPlanet)
}

func (h *Handler) getVehicles(w http.ResponseWriter, r *http.Request) {
	writeList(w, r, h.services.CatalogService.ListVehicles)
}

func (h *Handler) getVehicle(w http.ResponseWriter, r *http.Request) {
	writeOne(w, r, h.services.CatalogService.GetVehicle)
}

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	writeList(w, r, h.services.CatalogService.ListUsers)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	writeOne(w, r, h.services.CatalogService.GetUser)
}

func (h *Handler) getUserFavorites(w http.ResponseWriter, r *http.Request) {
	writeOne(w, r, h.services.CatalogService.GetUserFavorites)
}

func writeList[T any](w http.ResponseWriter, r *http.Request, list func(context.Context) ([]T, error)) {
	items, err := list(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []T{}
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func writeOne[T any](w http.ResponseWriter, r *http.Request, get func(context.Context, int64) (T, error)) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	item, err := get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

// pathID parses the {id} segment. The route pattern guarantees digits only,
// so the only failure left is overflow.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errInvalidPathID
	}
	return id, nil
}
