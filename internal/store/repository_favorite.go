package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/models"
)

// favoriteRepository implements [FavoriteRepository] over the
// favorite_people, favorite_planet and favorite_vehicle join tables.
//
// Duplicate rows are not prevented by the schema; callers check for an
// existing row before inserting.
type favoriteRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewFavoriteRepository constructs a [FavoriteRepository].
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{
		db:     db,
		logger: logger,
	}
}

// FindFavorite returns the first join row of kind for (userID, targetID) or
// [ErrFavoriteNotFound].
func (r *favoriteRepository) FindFavorite(ctx context.Context, kind models.FavoriteKind, userID, targetID int64) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindFavoriteQuery(r.db.builder, kind, userID, targetID)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.FindFavorite").Msg("error building query")
		return models.Favorite{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	favorite := models.Favorite{Kind: kind}
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&favorite.ID, &favorite.UserID, &favorite.TargetID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Favorite{}, ErrFavoriteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.FindFavorite").Msg("error scanning favorite")
		return models.Favorite{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return favorite, nil
}

// CreateFavorite inserts a join row and returns it with the assigned id.
func (r *favoriteRepository) CreateFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertFavoriteQuery(r.db.builder, favorite)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.CreateFavorite").Msg("error building query")
		return models.Favorite{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&favorite.ID); err != nil {
		log.Err(err).Str("func", "*favoriteRepository.CreateFavorite").Msg("error inserting favorite")
		return models.Favorite{}, r.db.statementError(err)
	}

	return favorite, nil
}

// DeleteFavorite removes the join row with favorite.ID from the kind's
// table. Deleting a row that no longer exists yields [ErrFavoriteNotFound].
func (r *favoriteRepository) DeleteFavorite(ctx context.Context, favorite models.Favorite) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteFavoriteQuery(r.db.builder, favorite)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.DeleteFavorite").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.DeleteFavorite").Msg("error deleting favorite")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

// ListUserFavorites returns every join row of userID grouped by kind. Each
// group is non-nil.
func (r *favoriteRepository) ListUserFavorites(ctx context.Context, userID int64) (models.UserFavorites, error) {
	var (
		result models.UserFavorites
		err    error
	)

	if result.People, err = r.listByKind(ctx, models.FavoriteKindPeople, userID); err != nil {
		return models.UserFavorites{}, err
	}
	if result.Planets, err = r.listByKind(ctx, models.FavoriteKindPlanet, userID); err != nil {
		return models.UserFavorites{}, err
	}
	if result.Vehicles, err = r.listByKind(ctx, models.FavoriteKindVehicle, userID); err != nil {
		return models.UserFavorites{}, err
	}

	return result, nil
}

func (r *favoriteRepository) listByKind(ctx context.Context, kind models.FavoriteKind, userID int64) ([]models.Favorite, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUserFavoritesQuery(r.db.builder, kind, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("kind", string(kind)).Msg("error listing favorites")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	favorites := make([]models.Favorite, 0)
	for rows.Next() {
		favorite := models.Favorite{Kind: kind}
		if err = rows.Scan(&favorite.ID, &favorite.UserID, &favorite.TargetID); err != nil {
			log.Err(err).Str("kind", string(kind)).Msg("error scanning favorite")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		favorites = append(favorites, favorite)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return favorites, nil
}
