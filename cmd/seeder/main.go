// Command seeder fills an empty database with Star Wars catalog data and a
// few users.
//
// Usage:
//
//	seeder [-d dsn] [-f fixture.json]
//
// Without -d the DATABASE_URL environment variable (or the default SQLite
// file) is used; without -f the built-in fixture is loaded.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/MKhiriev/starwars-api/internal/config"
	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/internal/seed"
	"github.com/MKhiriev/starwars-api/internal/store"
)

func main() {
	log := logger.NewCLILogger("starwars-seeder")

	fs := flag.NewFlagSet("seeder", flag.ExitOnError)
	dsn := fs.String("d", "", "Database DSN")
	fixturePath := fs.String("f", "", "Fixture JSON file (built-in data when empty)")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.GetStructuredConfig(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if *dsn != "" {
		cfg.Storage.DB.DSN = *dsn
	}

	fixture, err := seed.LoadFixture(*fixturePath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading fixture")
	}

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	report, err := seed.NewSeeder(storages, log).Run(ctx, fixture)
	if err != nil {
		log.Error().Err(err).Msg("seeding failed")
		storages.Close()
		os.Exit(1)
	}

	log.Info().
		Int("users", report.Users).
		Int("people", report.People).
		Int("planets", report.Planets).
		Int("vehicles", report.Vehicles).
		Int("skipped_users", report.Skipped).
		Msg("seeding finished")
}
