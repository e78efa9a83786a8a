package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/models"
)

// userRepository implements [UserRepository] against the "user" table.
// Reads go through the shared catalog implementation.
type userRepository struct {
	users  *catalogRepository[models.User]
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		users:  newCatalogRepository(db, usersTable, logger),
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	return r.users.ListAll(ctx)
}

func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.users.FindByID(ctx, id)
}

// CreateUser inserts the user and returns it with the assigned id.
// Password must already be hashed.
//
// Error handling:
//   - unique e-mail violation → wraps [ErrAlreadyExists].
//   - any other failure → wraps [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.db.statementError(err)
	}

	return user, nil
}
