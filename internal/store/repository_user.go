package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/video-blog/internal/logger"
	"github.com/MKhiriev/video-blog/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the user inside a transaction and returns the stored
// row. A unique violation on email maps to [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.createUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
		scanErr := tx.QueryRowContext(ctx, query, args...).
			Scan(&created.UserID, &created.Name, &created.Email, &created.PasswordHash)
		if scanErr == nil {
			return nil
		}

		if r.db.classify(scanErr) == UniqueViolation {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	})
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			log.Warn().Str("func", "*userRepository.CreateUser").Msg("email already exists")
		} else {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		}
		return models.User{}, err
	}

	log.Debug().Str("func", "*userRepository.CreateUser").Int64("user_id", created.UserID).Msg("user created")
	return created, nil
}

// FindUserByEmail returns the user registered with email or
// [ErrNoUserWasFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.findUserByEmailQuery(email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&found.UserID, &found.Name, &found.Email, &found.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "*userRepository.FindUserByEmail").Msg("no user with such email")
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}
