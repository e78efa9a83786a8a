package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/internal/store"
	"github.com/MKhiriev/starwars-api/models"
)

// catalogService is the concrete implementation of [CatalogService].
type catalogService struct {
	people    store.CatalogRepository[models.Person]
	planets   store.CatalogRepository[models.Planet]
	vehicles  store.CatalogRepository[models.Vehicle]
	users     store.UserRepository
	favorites store.FavoriteRepository

	logger *logger.Logger
}

func NewCatalogService(
	people store.CatalogRepository[models.Person],
	planets store.CatalogRepository[models.Planet],
	vehicles store.CatalogRepository[models.Vehicle],
	users store.UserRepository,
	favorites store.FavoriteRepository,
	logger *logger.Logger,
) CatalogService {
	return &catalogService{
		people:    people,
		planets:   planets,
		vehicles:  vehicles,
		users:     users,
		favorites: favorites,
		logger:    logger,
	}
}

func (s *catalogService) ListPeople(ctx context.Context) ([]models.Person, error) {
	return listAll(ctx, s.people.ListAll, "ListPeople")
}

func (s *catalogService) GetPerson(ctx context.Context, id int64) (models.Person, error) {
	return getByID(ctx, s.people.FindByID, id, ErrPersonNotFound, "GetPerson")
}

func (s *catalogService) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	return listAll(ctx, s.planets.ListAll, "ListPlanets")
}

func (s *catalogService) GetPlanet(ctx context.Context, id int64) (models.Planet, error) {
	return getByID(ctx, s.planets.FindByID, id, ErrPlanetNotFound, "GetPlanet")
}

func (s *catalogService) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return listAll(ctx, s.vehicles.ListAll, "ListVehicles")
}

func (s *catalogService) GetVehicle(ctx context.Context, id int64) (models.Vehicle, error) {
	return getByID(ctx, s.vehicles.FindByID, id, ErrVehicleNotFound, "GetVehicle")
}

func (s *catalogService) ListUsers(ctx context.Context) ([]models.User, error) {
	return listAll(ctx, s.users.ListUsers, "ListUsers")
}

func (s *catalogService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return getByID(ctx, s.users.FindUserByID, id, ErrUserNotFound, "GetUser")
}

// GetUserFavorites returns every favorite of an existing user.
func (s *catalogService) GetUserFavorites(ctx context.Context, userID int64) (models.UserFavorites, error) {
	log := logger.FromContext(ctx)

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return models.UserFavorites{}, err
	}

	favorites, err := s.favorites.ListUserFavorites(ctx, user.ID)
	if err != nil {
		log.Err(err).Str("func", "*catalogService.GetUserFavorites").Int64("user_id", user.ID).Msg("error listing favorites")
		return models.UserFavorites{}, fmt.Errorf("error listing favorites: %w", err)
	}

	return favorites, nil
}

func listAll[T any](ctx context.Context, list func(context.Context) ([]T, error), fn string) ([]T, error) {
	items, err := list(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogService."+fn).Msg("error listing rows")
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return items, nil
}

// getByID rejects negative ids and translates the store's not-found error
// into notFound.
func getByID[T any](ctx context.Context, find func(context.Context, int64) (T, error), id int64, notFound error, fn string) (T, error) {
	var zero T

	if id < 0 {
		return zero, ErrInvalidID
	}

	item, err := find(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return zero, notFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogService."+fn).Int64("id", id).Msg("error reading row")
		return zero, fmt.Errorf("%s: %w", fn, err)
	}

	return item, nil
}
