// Package seed loads a catalog fixture into an empty database.
//
// Catalog tables are filled only while they are empty, and users whose
// e-mail already exists are skipped, so running the seeder twice is safe.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/internal/store"
	"github.com/MKhiriev/starwars-api/internal/utils"
	"github.com/MKhiriev/starwars-api/models"
)

//go:embed fixture.json
var defaultFixture []byte

// Fixture is the on-disk seed format. User passwords are plain text and are
// hashed before insertion.
type Fixture struct {
	Users    []FixtureUser    `json:"users"`
	People   []models.Person  `json:"people"`
	Planets  []models.Planet  `json:"planets"`
	Vehicles []models.Vehicle `json:"vehicles"`
}

type FixtureUser struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	IsActive bool   `json:"is_active"`
}

// Report counts the rows inserted and skipped by one Run.
type Report struct {
	Users    int
	People   int
	Planets  int
	Vehicles int
	Skipped  int
}

// LoadFixture reads a fixture from path, or the built-in one when path is
// empty.
func LoadFixture(path string) (Fixture, error) {
	data := defaultFixture
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return Fixture{}, fmt.Errorf("error reading fixture: %w", err)
		}
	}

	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("error decoding fixture: %w", err)
	}
	return f, nil
}

type Seeder struct {
	storages *store.Storages
	logger   *logger.Logger
}

func NewSeeder(storages *store.Storages, logger *logger.Logger) *Seeder {
	return &Seeder{storages: storages, logger: logger}
}

// Run inserts f. It stops at the first storage error other than a duplicate
// user.
func (s *Seeder) Run(ctx context.Context, f Fixture) (Report, error) {
	var report Report

	for _, u := range f.Users {
		hash, err := utils.HashPassword(u.Password)
		if err != nil {
			return report, err
		}

		_, err = s.storages.UserRepository.CreateUser(ctx, models.User{Email: u.Email, Password: hash, IsActive: u.IsActive})
		if errors.Is(err, store.ErrAlreadyExists) {
			s.logger.Info().Str("email", u.Email).Msg("user already exists, skipping")
			report.Skipped++
			continue
		}
		if err != nil {
			return report, fmt.Errorf("error creating user %s: %w", u.Email, err)
		}
		report.Users++
	}

	var err error
	if report.People, err = seedTable(ctx, s, "people", s.storages.PeopleRepository, f.People, s.storages.CatalogWriter.CreatePerson); err != nil {
		return report, err
	}
	if report.Planets, err = seedTable(ctx, s, "planets", s.storages.PlanetRepository, f.Planets, s.storages.CatalogWriter.CreatePlanet); err != nil {
		return report, err
	}
	if report.Vehicles, err = seedTable(ctx, s, "vehicles", s.storages.VehicleRepository, f.Vehicles, s.storages.CatalogWriter.CreateVehicle); err != nil {
		return report, err
	}

	return report, nil
}

// seedTable inserts rows into an empty table and leaves a populated one
// untouched.
func seedTable[T any](
	ctx context.Context,
	s *Seeder,
	name string,
	repo store.CatalogRepository[T],
	rows []T,
	create func(context.Context, T) (T, error),
) (int, error) {
	existing, err := repo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("error reading %s: %w", name, err)
	}
	if len(existing) > 0 {
		s.logger.Info().Str("table", name).Int("rows", len(existing)).Msg("table is not empty, skipping")
		return 0, nil
	}

	for _, row := range rows {
		if _, err = create(ctx, row); err != nil {
			return 0, fmt.Errorf("error seeding %s: %w", name, err)
		}
	}
	return len(rows), nil
}
