// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/starwars-api/internal/service"
	"github.com/MKhiriev/starwars-api/internal/utils"
	"github.com/MKhiriev/starwars-api/models"
)

// addFavorite handles POST /favorite/<kind>/{id}.
//
//	201 {"msg": "<Kind> added to favorites"}
//	400 {"msg": "<Kind> already in favorites"}
//	404 {"error": "User not found"}
func (h *Handler) addFavorite(kind models.FavoriteKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetID, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		_, err = h.services.FavoriteService.Add(r.Context(), h.identityFromRequest(r), kind, targetID)
		switch {
		case err == nil:
			utils.WriteMessage(w, kind.Title()+" added to favorites", http.StatusCreated)
		case errors.Is(err, service.ErrAlreadyFavorited):
			utils.WriteMessage(w, kind.Title()+" already in favorites", http.StatusBadRequest)
		default:
			writeError(w, r, err)
		}
	}
}

// removeFavorite handles DELETE /favorite/<kind>/{id}.
//
//	200 {"msg": "<Kind> favorite deleted"}
//	404 {"msg": "Favorite <kind> not found"}
//	404 {"error": "User not found"}
func (h *Handler) removeFavorite(kind models.FavoriteKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetID, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		err = h.services.FavoriteService.Remove(r.Context(), h.identityFromRequest(r), kind, targetID)
		switch {
		case err == nil:
			utils.WriteMessage(w, kind.Title()+" favorite deleted", http.StatusOK)
		case errors.Is(err, service.ErrFavoriteNotFound):
			utils.WriteMessage(w, "Favorite "+string(kind)+" not found", http.StatusNotFound)
		default:
			writeError(w, r, err)
		}
	}
}
