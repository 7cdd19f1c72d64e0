package store

import (
	"context"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] so that
// database failures are logged with the trace ID of the request.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a new account.
//
// Error handling:
//   - unique_violation on username or email → [ErrDuplicateKey].
//   - data exceptions (e.g. value too long) → [ErrInvalidData].
//   - any other driver error → [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, err
	}

	var created models.User
	if err = r.db.QueryRowxContext(ctx, query, args...).StructScan(&created); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, classifyError(err)
	}

	return created, nil
}

// FindUserByUsername returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByUsernameQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error building query")
		return models.User{}, err
	}

	var found models.User
	if err = r.db.GetContext(ctx, &found, query, args...); err != nil {
		err = classifyError(err)
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error selecting user")
		return models.User{}, err
	}

	return found, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByIDQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error building query")
		return models.User{}, err
	}

	var found models.User
	if err = r.db.GetContext(ctx, &found, query, args...); err != nil {
		err = classifyError(err)
		log.Err(err).Str("func", "*userRepository.FindUserByID").Int64("user_id", id).Msg("error selecting user")
		return models.User{}, err
	}

	return found, nil
}

// UpdateProfile returns [ErrNoUserWasFound] if the row is gone and
// [ErrDuplicateKey] if the new username or email belongs to another user.
func (r *userRepository) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfileQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error building query")
		return models.User{}, err
	}

	var updated models.User
	if err = r.db.QueryRowxContext(ctx, query, args...).StructScan(&updated); err != nil {
		err = classifyError(err)
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Int64("user_id", user.ID).Msg("error updating user")
		return models.User{}, err
	}

	return updated, nil
}
