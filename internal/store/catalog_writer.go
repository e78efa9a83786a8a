package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/models"
)

// catalogWriter implements [CatalogWriter]. The seeder is its only caller.
type catalogWriter struct {
	db     *DB
	logger *logger.Logger
}

// NewCatalogWriter constructs a [CatalogWriter].
func NewCatalogWriter(db *DB, logger *logger.Logger) CatalogWriter {
	return &catalogWriter{
		db:     db,
		logger: logger,
	}
}

func (w *catalogWriter) CreatePerson(ctx context.Context, person models.Person) (models.Person, error) {
	query, args, err := buildInsertPersonQuery(w.db.builder, person)
	if err = w.insert(ctx, query, args, err, &person.ID); err != nil {
		return models.Person{}, err
	}
	return person, nil
}

func (w *catalogWriter) CreatePlanet(ctx context.Context, planet models.Planet) (models.Planet, error) {
	query, args, err := buildInsertPlanetQuery(w.db.builder, planet)
	if err = w.insert(ctx, query, args, err, &planet.ID); err != nil {
		return models.Planet{}, err
	}
	return planet, nil
}

func (w *catalogWriter) CreateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	query, args, err := buildInsertVehicleQuery(w.db.builder, vehicle)
	if err = w.insert(ctx, query, args, err, &vehicle.ID); err != nil {
		return models.Vehicle{}, err
	}
	return vehicle, nil
}

// insert runs an INSERT ... RETURNING id built by one of the insert query
// builders. buildErr is the builder's error, if any.
func (w *catalogWriter) insert(ctx context.Context, query string, args []any, buildErr error, id *int64) error {
	log := logger.FromContext(ctx)

	if buildErr != nil {
		log.Err(buildErr).Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
	}

	if err := w.db.QueryRowContext(ctx, query, args...).Scan(id); err != nil {
		log.Err(err).Msg("error inserting catalog row")
		return w.db.statementError(err)
	}

	return nil
}
