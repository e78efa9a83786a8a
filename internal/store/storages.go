package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/starwars-api/internal/config"
	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/models"
)

// Storages groups every repository over one database connection.
type Storages struct {
	PeopleRepository   CatalogRepository[models.Person]
	PlanetRepository   CatalogRepository[models.Planet]
	VehicleRepository  CatalogRepository[models.Vehicle]
	UserRepository     UserRepository
	FavoriteRepository FavoriteRepository
	CatalogWriter      CatalogWriter

	db *DB
}

// NewStorages connects to the database named by cfg, applies the embedded
// migrations and builds the repositories. Close releases the connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		logger.Err(err).Msg("error connecting to database")
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		logger.Err(err).Str("dialect", db.Dialect()).Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	logger.Info().Str("dialect", db.Dialect()).Msg("database is ready")

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB builds the repositories over an already migrated
// connection.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		PeopleRepository:   NewPeopleRepository(db, logger),
		PlanetRepository:   NewPlanetRepository(db, logger),
		VehicleRepository:  NewVehicleRepository(db, logger),
		UserRepository:     NewUserRepository(db, logger),
		FavoriteRepository: NewFavoriteRepository(db, logger),
		CatalogWriter:      NewCatalogWriter(db, logger),
		db:                 db,
	}
}

// Close closes the underlying connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
