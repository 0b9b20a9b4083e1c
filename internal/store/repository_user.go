package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/dia-companion/internal/crypto"
	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/models"
)

// userRepository implements [UserRepository] over the "users" table.
//
// Passwords pass through the configured [crypto.PasswordHasher] on the way
// in and are compared by it on lookup. The diary store is needed only to
// finish a cascade delete.
type userRepository struct {
	store  *DocumentStore
	diary  DiaryStore
	hasher crypto.PasswordHasher
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository].
func NewUserRepository(store *DocumentStore, diary DiaryStore, hasher crypto.PasswordHasher, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		store:  store,
		diary:  diary,
		hasher: hasher,
		logger: logger,
	}
}

// AddUser stores a new account and returns it without the password.
//
// An empty or unknown role becomes [models.RoleUser]. A duplicate email
// yields [ErrUserAlreadyExists] and leaves the existing account unchanged.
func (r *userRepository) AddUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	db, err := r.store.Open(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.AddUser").Msg("document store is unavailable")
		return models.User{}, err
	}

	if !user.Role.IsValid() {
		user.Role = models.RoleUser
	}

	stored := user
	if stored.Password, err = r.hasher.Hash(user.Password); err != nil {
		log.Err(err).Str("func", "*userRepository.AddUser").Msg("error hashing password")
		return models.User{}, err
	}

	query, args, buildErr := buildInsertUserQuery(db.builder(), stored)
	if _, err = execBuilt(ctx, db, query, args, buildErr); err != nil {
		if db.isUniqueViolation(err) {
			log.Warn().Str("func", "*userRepository.AddUser").Msg("user already exists")
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).
			Str("func", "*userRepository.AddUser").
			Bool("retryable", db.retryable(err)).
			Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user.Public(), nil
}

// GetUser returns the account only when password matches. An unknown email
// and a wrong password both yield found == false with a nil error.
func (r *userRepository) GetUser(ctx context.Context, email, password string) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	db, err := r.store.Open(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUser").Msg("document store is unavailable")
		return models.User{}, false, err
	}

	query, args, err := buildSelectUserQuery(db.builder(), email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUser").Msg("failed to create query")
		return models.User{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	err = db.QueryRowContext(ctx, query, args...).Scan(&found.Email, &found.Password, &found.Role)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, false, nil
	case err != nil:
		log.Err(err).
			Str("func", "*userRepository.GetUser").
			Bool("retryable", db.retryable(err)).
			Msg("error querying user")
		return models.User{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !r.hasher.Compare(found.Password, password) {
		return models.User{}, false, nil
	}

	return found.Public(), true, nil
}

// GetAllUsers lists every account ordered by email, without passwords.
// Failures are logged and yield an empty list.
func (r *userRepository) GetAllUsers(ctx context.Context) []models.User {
	log := logger.FromContext(ctx)
	users := make([]models.User, 0)

	db, err := r.store.Open(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("document store is unavailable, returning empty list")
		return users
	}

	query, args, err := buildSelectAllUsersQuery(db.builder())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("failed to create query")
		return users
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("failed to execute query, returning empty list")
		return users
	}
	defer rows.Close()

	for rows.Next() {
		var u models.User
		if err = rows.Scan(&u.Email, &u.Password, &u.Role); err != nil {
			log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("failed to scan user row, returning empty list")
			return make([]models.User, 0)
		}
		users = append(users, u.Public())
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error occurred during rows iteration, returning empty list")
		return make([]models.User, 0)
	}

	return users
}

// DeleteUserAndData removes the account and every row it owns in one
// transaction, then deletes the diary entry. A diary failure after commit is
// returned as is; the document store changes stay committed.
func (r *userRepository) DeleteUserAndData(ctx context.Context, email string) error {
	log := logger.FromContext(ctx).With().Str("email", email).Logger()

	db, err := r.store.Open(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUserAndData").Msg("document store is unavailable")
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUserAndData").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, table := range perUserTables {
		query, args, buildErr := buildDeleteByUserQuery(db.builder(), table, email)
		if _, err = execBuilt(ctx, tx, query, args, buildErr); err != nil {
			log.Err(err).Str("func", "*userRepository.DeleteUserAndData").Str("table", table).Msg("failed to delete user rows")
			return err
		}
	}

	query, args, buildErr := buildDeleteUserQuery(db.builder(), email)
	if _, err = execBuilt(ctx, tx, query, args, buildErr); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUserAndData").Msg("failed to delete user")
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUserAndData").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	if err = r.diary.Delete(ctx, email); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUserAndData").Msg("user deleted but diary records were not")
		return fmt.Errorf("error deleting diary records: %w", err)
	}

	log.Info().Str("func", "*userRepository.DeleteUserAndData").Msg("user and data deleted")
	return nil
}
