package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/starwars-api/internal/config"
	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/internal/service"
	"github.com/MKhiriev/starwars-api/models"
)

// ─── Mock: CatalogService ───────────────────────────────────────────────────

type mockCatalogService struct {
	listPeopleFn       func(ctx context.Context) ([]models.Person, error)
	getPersonFn        func(ctx context.Context, id int64) (models.Person, error)
	listPlanetsFn      func(ctx context.Context) ([]models.Planet, error)
	getPlanetFn        func(ctx context.Context, id int64) (models.Planet, error)
	listVehiclesFn     func(ctx context.Context) ([]models.Vehicle, error)
	getVehicleFn       func(ctx context.Context, id int64) (models.Vehicle, error)
	listUsersFn        func(ctx context.Context) ([]models.User, error)
	getUserFn          func(ctx context.Context, id int64) (models.User, error)
	getUserFavoritesFn func(ctx context.Context, userID int64) (models.UserFavorites, error)
}

func (m *mockCatalogService) ListPeople(ctx context.Context) ([]models.Person, error) {
	if m.listPeopleFn != nil {
		return m.listPeopleFn(ctx)
	}
	return []models.Person{}, nil
}

func (m *mockCatalogService) GetPerson(ctx context.Context, id int64) (models.Person, error) {
	if m.getPersonFn != nil {
		return m.getPersonFn(ctx, id)
	}
	return models.Person{ID: id}, nil
}

func (m *mockCatalogService) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	if m.listPlanetsFn != nil {
		return m.listPlanetsFn(ctx)
	}
	return []models.Planet{}, nil
}

func (m *mockCatalogService) GetPlanet(ctx context.Context, id int64) (models.Planet, error) {
	if m.getPlanetFn != nil {
		return m.getPlanetFn(ctx, id)
	}
	return models.Planet{ID: id}, nil
}

func (m *mockCatalogService) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	if m.listVehiclesFn != nil {
		return m.listVehiclesFn(ctx)
	}
	return []models.Vehicle{}, nil
}

func (m *mockCatalogService) GetVehicle(ctx context.Context, id int64) (models.Vehicle, error) {
	if m.getVehicleFn != nil {
		return m.getVehicleFn(ctx, id)
	}
	return models.Vehicle{ID: id}, nil
}

func (m *mockCatalogService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return []models.User{}, nil
}

func (m *mockCatalogService) GetUser(ctx context.Context, id int64) (models.User, error) {
	if m.getUserFn != nil {
		return m.getUserFn(ctx, id)
	}
	return models.User{ID: id}, nil
}

func (m *mockCatalogService) GetUserFavorites(ctx context.Context, userID int64) (models.UserFavorites, error) {
	if m.getUserFavoritesFn != nil {
		return m.getUserFavoritesFn(ctx, userID)
	}
	return models.UserFavorites{People: []models.Favorite{}, Planets: []models.Favorite{}, Vehicles: []models.Favorite{}}, nil
}

// ─── Mock: FavoriteService ──────────────────────────────────────────────────

type mockFavoriteService struct {
	addFn    func(ctx context.Context, identity models.Identity, kind models.FavoriteKind, targetID int64) (models.Favorite, error)
	removeFn func(ctx context.Context, identity models.Identity, kind models.FavoriteKind, targetID int64) error
}

func (m *mockFavoriteService) Add(ctx context.Context, identity models.Identity, kind models.FavoriteKind, targetID int64) (models.Favorite, error) {
	if m.addFn != nil {
		return m.addFn(ctx, identity, kind, targetID)
	}
	return models.Favorite{ID: 1, Kind: kind, UserID: identity.UserID, TargetID: targetID}, nil
}

func (m *mockFavoriteService) Remove(ctx context.Context, identity models.Identity, kind models.FavoriteKind, targetID int64) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, identity, kind, targetID)
	}
	return nil
}

// ─── Mock: AppInfoService ───────────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(m.version, "", "")
}

// ─── Helpers ────────────────────────────────────────────────────────────────

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App:    config.App{DefaultUserID: 1},
		Server: config.Server{CORSAllowedOrigins: []string{"*"}},
	}
}

func newTestServices(catalog *mockCatalogService, favorites *mockFavoriteService) *service.Services {
	if catalog == nil {
		catalog = &mockCatalogService{}
	}
	if favorites == nil {
		favorites = &mockFavoriteService{}
	}
	return &service.Services{
		CatalogService:  catalog,
		FavoriteService: favorites,
		AppInfoService:  &mockAppInfoService{version: "test-version"},
	}
}

// newTestRouter builds the full router over the given mocks.
func newTestRouter(catalog *mockCatalogService, favorites *mockFavoriteService) http.Handler {
	return NewHandler(newTestServices(catalog, favorites), testConfig(), logger.Nop()).Init()
}
