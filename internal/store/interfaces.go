package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store.go -package=mock

import (
	"context"

	"github.com/MKhiriev/starwars-api/models"
)

// CatalogRepository is the read access to one catalog table.
type CatalogRepository[T any] interface {
	// ListAll returns every row in storage-native order. An empty table
	// yields an empty, non-nil slice.
	ListAll(ctx context.Context) ([]T, error)
	// FindByID returns the row with the given id or an error wrapping
	// [ErrNotFound].
	FindByID(ctx context.Context, id int64) (T, error)
}

// UserRepository is the access to the user table.
type UserRepository interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
}

// FavoriteRepository is the access to the three favorite join tables.
type FavoriteRepository interface {
	FindFavorite(ctx context.Context, kind models.FavoriteKind, userID, targetID int64) (models.Favorite, error)
	CreateFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error)
	DeleteFavorite(ctx context.Context, favorite models.Favorite) error
	ListUserFavorites(ctx context.Context, userID int64) (models.UserFavorites, error)
}

// CatalogWriter inserts catalog rows. Only administrative tooling uses it;
// the HTTP API is read-only for the catalog.
type CatalogWriter interface {
	CreatePerson(ctx context.Context, person models.Person) (models.Person, error)
	CreatePlanet(ctx context.Context, planet models.Planet) (models.Planet, error)
	CreateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error)
}

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
