package service

import (
	"context"

	"github.com/MKhiriev/starwars-api/models"
)

// CatalogService reads the catalog and user tables. Every Get method rejects
// a negative id with [ErrInvalidID] before touching storage.
type CatalogService interface {
	ListPeople(ctx context.Context) ([]models.Person, error)
	GetPerson(ctx context.Context, id int64) (models.Person, error)

	ListPlanets(ctx context.Context) ([]models.Planet, error)
	GetPlanet(ctx context.Context, id int64) (models.Planet, error)

	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	GetVehicle(ctx context.Context, id int64) (models.Vehicle, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	GetUserFavorites(ctx context.Context, userID int64) (models.UserFavorites, error)
}

// FavoriteService adds and removes favorites on behalf of an identity.
//
// Both operations are check-then-act without a transaction: two concurrent
// Add calls for the same pair may both insert.
type FavoriteService interface {
	// Add resolves the user, fails with ErrAlreadyFavorited when a row for
	// (user, target) exists and inserts one otherwise. The target itself is
	// not checked.
	Add(ctx context.Context, identity models.Identity, kind models.FavoriteKind, targetID int64) (models.Favorite, error)

	// Remove resolves the user and deletes the first row for
	// (user, target), failing with ErrFavoriteNotFound when none exists.
	Remove(ctx context.Context, identity models.Identity, kind models.FavoriteKind, targetID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
