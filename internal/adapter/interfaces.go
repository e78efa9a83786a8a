// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the outbound client of the Star Wars API, used by the
// command-line client in cmd/client.
//
// The primary abstraction is [APIAdapter], which hides the HTTP transport
// from callers. Error values defined in errors.go are mapped from HTTP status
// codes by mapHTTPError so that callers can use [errors.Is] (e.g.
// [ErrNotFound] for 404, [ErrBadRequest] for a duplicate favorite).
package adapter

import (
	"context"

	"github.com/MKhiriev/starwars-api/models"
)

// APIAdapter reads the catalog and toggles favorites on a running API.
type APIAdapter interface {
	ListPeople(ctx context.Context) ([]models.Person, error)
	GetPerson(ctx context.Context, id int64) (models.Person, error)

	ListPlanets(ctx context.Context) ([]models.Planet, error)
	GetPlanet(ctx context.Context, id int64) (models.Planet, error)

	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	GetVehicle(ctx context.Context, id int64) (models.Vehicle, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)

	// GetUserFavorites returns every favorite of userID grouped by kind.
	GetUserFavorites(ctx context.Context, userID int64) (models.UserFavorites, error)

	// AddFavorite favorites targetID on behalf of userID and returns the
	// server's confirmation message. A duplicate yields [ErrBadRequest].
	AddFavorite(ctx context.Context, userID int64, kind models.FavoriteKind, targetID int64) (string, error)

	// RemoveFavorite deletes the favorite and returns the server's
	// confirmation message. A missing favorite yields [ErrNotFound].
	RemoveFavorite(ctx context.Context, userID int64, kind models.FavoriteKind, targetID int64) (string, error)

	// Version returns the server build info.
	Version(ctx context.Context) (VersionInfo, error)
}

// VersionInfo is the decoded body of GET /version.
type VersionInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
