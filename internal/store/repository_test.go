package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/models"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		builder:            squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ─── catalog ────────────────────────────────────────────────────────────────

func TestCatalogRepository_ListAll(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPlanetRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM planets").
		WillReturnRows(sqlmock.NewRows(planetColumns).
			AddRow(1, "Tatooine", "arid", 200000, true).
			AddRow(2, "Alderaan", "temperate", 2000000000, false))

	planets, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, planets, 2)
	assert.Equal(t, models.Planet{ID: 1, Name: "Tatooine", Climate: "arid", Population: 200000, IsActive: true}, planets[0])
	assert.Equal(t, int64(2000000000), planets[1].Population)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_ListAll_EmptyIsNotNil(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewVehicleRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM vehicles").
		WillReturnRows(sqlmock.NewRows(vehicleColumns))

	vehicles, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, vehicles)
	assert.Empty(t, vehicles)
}

func TestCatalogRepository_ListAll_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPeopleRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM people").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListAll(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCatalogRepository_ListAll_ScanError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPeopleRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM people").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1)) // wrong shape

	_, err := repo.ListAll(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestCatalogRepository_FindByID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPeopleRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT (.+) FROM people WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(personColumns).AddRow(3, "Leia", 19, "female", true))

	person, err := repo.FindByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, models.Person{ID: 3, Name: "Leia", Age: 19, Gender: "female", IsActive: true}, person)
}

func TestCatalogRepository_FindByID_NotFound(t *testing.T) {
	tests := []struct {
		name    string
		find    func(db *DB) error
		table   string
		wantErr error
	}{
		{
			name: "person",
			find: func(db *DB) error {
				_, err := NewPeopleRepository(db, logger.Nop()).FindByID(context.Background(), 99)
				return err
			},
			table:   "people",
			wantErr: ErrPersonNotFound,
		},
		{
			name: "planet",
			find: func(db *DB) error {
				_, err := NewPlanetRepository(db, logger.Nop()).FindByID(context.Background(), 99)
				return err
			},
			table:   "planets",
			wantErr: ErrPlanetNotFound,
		},
		{
			name: "vehicle",
			find: func(db *DB) error {
				_, err := NewVehicleRepository(db, logger.Nop()).FindByID(context.Background(), 99)
				return err
			},
			table:   "vehicles",
			wantErr: ErrVehicleNotFound,
		},
		{
			name: "user",
			find: func(db *DB) error {
				_, err := NewUserRepository(db, logger.Nop()).FindUserByID(context.Background(), 99)
				return err
			},
			table:   `"user"`,
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			mock.ExpectQuery("SELECT (.+) FROM " + tt.table).
				WillReturnError(sql.ErrNoRows)

			err := tt.find(db)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestCatalogRepository_FindByID_AboveInt32(t *testing.T) {
	const id = int64(3_000_000_000)
	db, mock := newTestDB(t)
	repo := NewPeopleRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT (.+) FROM people WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(personColumns))

	_, err := repo.FindByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrPersonNotFound)
	assert.NotErrorIs(t, err, ErrScanningRow)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ─── user ───────────────────────────────────────────────────────────────────

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(`INSERT INTO "user"`).
		WithArgs("luke@rebels.org", "hash", true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	user, err := repo.CreateUser(context.Background(), models.User{Email: "luke@rebels.org", Password: "hash", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)
	assert.Equal(t, "luke@rebels.org", user.Email)
}

func TestUserRepository_CreateUser_UniqueViolation(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(`INSERT INTO "user"`).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "luke@rebels.org"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestUserRepository_CreateUser_UnexpectedError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(`INSERT INTO "user"`).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "luke@rebels.org"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestUserRepository_ListUsers(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT (.+) FROM "user"`).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "a@b.c", "hash", true))

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "hash", users[0].Password)
}

// ─── favorites ──────────────────────────────────────────────────────────────

func TestFavoriteRepository_FindFavorite(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFavoriteRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT id, user_id, planet_id FROM favorite_planet").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "planet_id"}).AddRow(10, 1, 2))

	fav, err := repo.FindFavorite(context.Background(), models.FavoriteKindPlanet, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, models.Favorite{ID: 10, Kind: models.FavoriteKindPlanet, UserID: 1, TargetID: 2}, fav)
}

func TestFavoriteRepository_FindFavorite_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFavoriteRepository(db, logger.Nop())

	mock.ExpectQuery("FROM favorite_people").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "people_id"}))

	_, err := repo.FindFavorite(context.Background(), models.FavoriteKindPeople, 1, 2)
	assert.ErrorIs(t, err, ErrFavoriteNotFound)
}

func TestFavoriteRepository_FindFavorite_AboveInt32(t *testing.T) {
	const userID, targetID = int64(3_000_000_000), int64(4_000_000_000)
	db, mock := newTestDB(t)
	repo := NewFavoriteRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT id, user_id, planet_id FROM favorite_planet").
		WithArgs(userID, targetID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "planet_id"}))

	_, err := repo.FindFavorite(context.Background(), models.FavoriteKindPlanet, userID, targetID)
	assert.ErrorIs(t, err, ErrFavoriteNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepository_FindFavorite_UnknownKind(t *testing.T) {
	db, _ := newTestDB(t)
	repo := NewFavoriteRepository(db, logger.Nop())

	_, err := repo.FindFavorite(context.Background(), models.FavoriteKind("droid"), 1, 2)
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
	assert.ErrorIs(t, err, ErrUnknownFavoriteKind)
}

func TestFavoriteRepository_CreateFavorite(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFavoriteRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO favorite_vehicle").
		WithArgs(int64(1), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	fav, err := repo.CreateFavorite(context.Background(), models.Favorite{Kind: models.FavoriteKindVehicle, UserID: 1, TargetID: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(42), fav.ID)
	assert.Equal(t, int64(3), fav.TargetID)
}

func TestFavoriteRepository_CreateFavorite_ForeignKeyViolation(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFavoriteRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO favorite_planet").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateFavorite(context.Background(), models.Favorite{Kind: models.FavoriteKindPlanet, UserID: 1, TargetID: 999})
	assert.ErrorIs(t, err, ErrDanglingReference)
}

func TestFavoriteRepository_DeleteFavorite(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFavoriteRepository(db, logger.Nop())

	mock.ExpectExec(`DELETE FROM favorite_people WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteFavorite(context.Background(), models.Favorite{ID: 7, Kind: models.FavoriteKindPeople})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepository_DeleteFavorite_NothingDeleted(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFavoriteRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM favorite_people").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteFavorite(context.Background(), models.Favorite{ID: 7, Kind: models.FavoriteKindPeople})
	assert.ErrorIs(t, err, ErrFavoriteNotFound)
}

func TestFavoriteRepository_ListUserFavorites(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFavoriteRepository(db, logger.Nop())

	mock.ExpectQuery("FROM favorite_people").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "people_id"}).AddRow(1, 1, 4))
	mock.ExpectQuery("FROM favorite_planet").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "planet_id"}))
	mock.ExpectQuery("FROM favorite_vehicle").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "vehicle_id"}).AddRow(2, 1, 3).AddRow(5, 1, 3))

	favorites, err := repo.ListUserFavorites(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, favorites.People, 1)
	assert.Equal(t, models.FavoriteKindPeople, favorites.People[0].Kind)
	assert.NotNil(t, favorites.Planets)
	assert.Empty(t, favorites.Planets)
	assert.Len(t, favorites.Vehicles, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepository_ListUserFavorites_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFavoriteRepository(db, logger.Nop())

	mock.ExpectQuery("FROM favorite_people").
		WillReturnError(errors.New("boom"))

	_, err := repo.ListUserFavorites(context.Background(), 1)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ─── catalog writer ─────────────────────────────────────────────────────────

func TestCatalogWriter_CreatePlanet_Duplicate(t *testing.T) {
	db, mock := newTestDB(t)
	writer := NewCatalogWriter(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO planets").
		WithArgs("Tatooine", "arid", int64(200000), true).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := writer.CreatePlanet(context.Background(), models.Planet{Name: "Tatooine", Climate: "arid", Population: 200000, IsActive: true})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestCatalogWriter_CreatePersonAndVehicle(t *testing.T) {
	db, mock := newTestDB(t)
	writer := NewCatalogWriter(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO people").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery("INSERT INTO vehicles").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	person, err := writer.CreatePerson(context.Background(), models.Person{Name: "Han", Age: 32, Gender: "male"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), person.ID)

	vehicle, err := writer.CreateVehicle(context.Background(), models.Vehicle{Brand: "Corellian", Model: "YT-1300", Year: 1977})
	require.NoError(t, err)
	assert.Equal(t, int64(2), vehicle.ID)
}
