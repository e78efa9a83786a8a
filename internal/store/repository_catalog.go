package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// catalogTable describes how one catalog table is read.
type catalogTable[T any] struct {
	name     string
	columns  []string
	notFound error
	scan     func(rowScanner) (T, error)
}

var (
	peopleTable = catalogTable[models.Person]{
		name:     models.Person{}.TableName(),
		columns:  personColumns,
		notFound: ErrPersonNotFound,
		scan: func(s rowScanner) (models.Person, error) {
			var p models.Person
			err := s.Scan(&p.ID, &p.Name, &p.Age, &p.Gender, &p.IsActive)
			return p, err
		},
	}

	planetsTable = catalogTable[models.Planet]{
		name:     models.Planet{}.TableName(),
		columns:  planetColumns,
		notFound: ErrPlanetNotFound,
		scan: func(s rowScanner) (models.Planet, error) {
			var p models.Planet
			err := s.Scan(&p.ID, &p.Name, &p.Climate, &p.Population, &p.IsActive)
			return p, err
		},
	}

	vehiclesTable = catalogTable[models.Vehicle]{
		name:     models.Vehicle{}.TableName(),
		columns:  vehicleColumns,
		notFound: ErrVehicleNotFound,
		scan: func(s rowScanner) (models.Vehicle, error) {
			var v models.Vehicle
			err := s.Scan(&v.ID, &v.Brand, &v.Model, &v.Year, &v.IsActive)
			return v, err
		},
	}

	usersTable = catalogTable[models.User]{
		name:     userTable,
		columns:  userColumns,
		notFound: ErrUserNotFound,
		scan: func(s rowScanner) (models.User, error) {
			var u models.User
			err := s.Scan(&u.ID, &u.Email, &u.Password, &u.IsActive)
			return u, err
		},
	}
)

// catalogRepository is the read-only [CatalogRepository] shared by the
// people, planets and vehicles tables (and the user table).
type catalogRepository[T any] struct {
	db     *DB
	table  catalogTable[T]
	logger *logger.Logger
}

// NewPeopleRepository constructs a [CatalogRepository] over the people table.
func NewPeopleRepository(db *DB, logger *logger.Logger) CatalogRepository[models.Person] {
	return newCatalogRepository(db, peopleTable, logger)
}

// NewPlanetRepository constructs a [CatalogRepository] over the planets table.
func NewPlanetRepository(db *DB, logger *logger.Logger) CatalogRepository[models.Planet] {
	return newCatalogRepository(db, planetsTable, logger)
}

// NewVehicleRepository constructs a [CatalogRepository] over the vehicles table.
func NewVehicleRepository(db *DB, logger *logger.Logger) CatalogRepository[models.Vehicle] {
	return newCatalogRepository(db, vehiclesTable, logger)
}

func newCatalogRepository[T any](db *DB, table catalogTable[T], logger *logger.Logger) *catalogRepository[T] {
	logger.Debug().Str("table", table.name).Msg("creating catalog repository")
	return &catalogRepository[T]{
		db:     db,
		table:  table,
		logger: logger,
	}
}

// ListAll implements [CatalogRepository].
func (r *catalogRepository[T]) ListAll(ctx context.Context) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllQuery(r.db.builder, r.table.name, r.table.columns)
	if err != nil {
		log.Err(err).Str("table", r.table.name).Msg("error building select all query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("table", r.table.name).Msg("error executing select all query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		item, err := r.table.scan(rows)
		if err != nil {
			log.Err(err).Str("table", r.table.name).Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("table", r.table.name).Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// FindByID implements [CatalogRepository].
func (r *catalogRepository[T]) FindByID(ctx context.Context, id int64) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	query, args, err := buildSelectByIDQuery(r.db.builder, r.table.name, r.table.columns, id)
	if err != nil {
		log.Err(err).Str("table", r.table.name).Msg("error building select by id query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := r.table.scan(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, r.table.notFound
	}
	if err != nil {
		log.Err(err).Str("table", r.table.name).Int64("id", id).Msg("error scanning row")
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}
