package service

import (
	"github.com/MKhiriev/starwars-api/internal/config"
	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/internal/store"
	"github.com/MKhiriev/starwars-api/models"
)

type Services struct {
	CatalogService  CatalogService
	FavoriteService FavoriteService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		CatalogService: NewCatalogService(
			storages.PeopleRepository,
			storages.PlanetRepository,
			storages.VehicleRepository,
			storages.UserRepository,
			storages.FavoriteRepository,
			logger,
		),
		FavoriteService: NewFavoriteService(storages.UserRepository, storages.FavoriteRepository, logger),
		AppInfoService:  NewAppInfoService(cfg.App, buildInfo, logger),
	}
}
