package store

import (
	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/starwars-api/models"
)

// Column lists in scan order. Every catalog scan function relies on them.
var (
	userColumns    = []string{"id", "email", "password", "is_active"}
	personColumns  = []string{"id", "name", "age", "gender", "is_active"}
	planetColumns  = []string{"id", "name", "climate", "population", "is_active"}
	vehicleColumns = []string{"id", "brand", "model", "year", "is_active"}
)

// userTable is quoted: user is a reserved word in PostgreSQL.
const userTable = `"user"`

// buildSelectAllQuery builds SELECT <columns> FROM <table>. Rows come back
// in storage order.
func buildSelectAllQuery(b squirrel.StatementBuilderType, table string, columns []string) (string, []any, error) {
	return b.Select(columns...).
		From(table).
		ToSql()
}

// buildSelectByIDQuery builds SELECT <columns> FROM <table> WHERE id = ?.
func buildSelectByIDQuery(b squirrel.StatementBuilderType, table string, columns []string, id int64) (string, []any, error) {
	return b.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

func favoriteColumns(kind models.FavoriteKind) []string {
	return []string{"id", "user_id", kind.TargetColumn()}
}

// buildFindFavoriteQuery selects the oldest join row for (userID, targetID).
// Args are always ordered user_id, target.
func buildFindFavoriteQuery(b squirrel.StatementBuilderType, kind models.FavoriteKind, userID, targetID int64) (string, []any, error) {
	if !kind.Valid() {
		return "", nil, ErrUnknownFavoriteKind
	}

	return b.Select(favoriteColumns(kind)...).
		From(kind.TableName()).
		Where(squirrel.And{
			squirrel.Eq{"user_id": userID},
			squirrel.Eq{kind.TargetColumn(): targetID},
		}).
		OrderBy("id").
		Limit(1).
		ToSql()
}

func buildInsertFavoriteQuery(b squirrel.StatementBuilderType, favorite models.Favorite) (string, []any, error) {
	if !favorite.Kind.Valid() {
		return "", nil, ErrUnknownFavoriteKind
	}

	return b.Insert(favorite.Kind.TableName()).
		Columns("user_id", favorite.Kind.TargetColumn()).
		Values(favorite.UserID, favorite.TargetID).
		Suffix("RETURNING id").
		ToSql()
}

func buildDeleteFavoriteQuery(b squirrel.StatementBuilderType, favorite models.Favorite) (string, []any, error) {
	if !favorite.Kind.Valid() {
		return "", nil, ErrUnknownFavoriteKind
	}

	return b.Delete(favorite.Kind.TableName()).
		Where(squirrel.Eq{"id": favorite.ID}).
		ToSql()
}

func buildListUserFavoritesQuery(b squirrel.StatementBuilderType, kind models.FavoriteKind, userID int64) (string, []any, error) {
	if !kind.Valid() {
		return "", nil, ErrUnknownFavoriteKind
	}

	return b.Select(favoriteColumns(kind)...).
		From(kind.TableName()).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
}

func buildInsertUserQuery(b squirrel.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(userTable).
		Columns("email", "password", "is_active").
		Values(user.Email, user.Password, user.IsActive).
		Suffix("RETURNING id").
		ToSql()
}

func buildInsertPersonQuery(b squirrel.StatementBuilderType, person models.Person) (string, []any, error) {
	return b.Insert(person.TableName()).
		Columns("name", "age", "gender", "is_active").
		Values(person.Name, person.Age, person.Gender, person.IsActive).
		Suffix("RETURNING id").
		ToSql()
}

func buildInsertPlanetQuery(b squirrel.StatementBuilderType, planet models.Planet) (string, []any, error) {
	return b.Insert(planet.TableName()).
		Columns("name", "climate", "population", "is_active").
		Values(planet.Name, planet.Climate, planet.Population, planet.IsActive).
		Suffix("RETURNING id").
		ToSql()
}

func buildInsertVehicleQuery(b squirrel.StatementBuilderType, vehicle models.Vehicle) (string, []any, error) {
	return b.Insert(vehicle.TableName()).
		Columns("brand", "model", "year", "is_active").
		Values(vehicle.Brand, vehicle.Model, vehicle.Year, vehicle.IsActive).
		Suffix("RETURNING id").
		ToSql()
}
