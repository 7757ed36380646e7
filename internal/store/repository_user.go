package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation, lookup, mutation and paginated listing
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (CreatedAt, UpdatedAt).
//
// The INSERT uses the [createUser] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.ID, user.FirstName, user.LastName, user.Email, user.IsAdmin, user.IsActive, user.HashedAPIKey)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	if err := scanUser(row, &user); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}

// FindUserByID retrieves a user record by its primary key.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByID, id)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found user from db
	if err := scanUser(row, &foundUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// FindUserByHashedAPIKey retrieves the user whose stored credential digest
// matches the given value. The digest is unique across the table, so at most
// one row can match.
//
// Error handling mirrors [userRepository.FindUserByID]: an empty result set
// maps to [ErrNoUserWasFound].
func (r *userRepository) FindUserByHashedAPIKey(ctx context.Context, digest string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByHashedAPIKey, digest)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByHashedAPIKey").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanUser(row, &foundUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByHashedAPIKey").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// UpdateUser applies a partial update to an existing user record and returns
// the updated row. The UPDATE statement is built dynamically so that only
// fields present in update are touched; updated_at is always refreshed.
//
// Error handling:
//   - empty update → [ErrBuildingSQLQuery].
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - no matching row → [ErrNoUserWasFound].
func (r *userRepository) UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(ctx, id, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: building update query")
		return models.User{}, err
	}

	var updatedUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := scanUser(row, &updatedUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return updatedUser, nil
}

// DeleteUser removes a user record by its primary key. Deleting a user that
// does not exist returns [ErrNoUserWasFound].
func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: executing delete")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: rows affected")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// ListUsers returns up to limit user records starting at offset, ordered by
// creation time (oldest first). An offset past the end of the table yields an
// empty slice, not an error; callers decide whether that is a range violation.
func (r *userRepository) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(ctx, limit, offset)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: building list query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: executing list query")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, limit)
	for rows.Next() {
		var user models.User
		if err := scanUser(rows, &user); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: rows iteration")
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return users, nil
}

// CountUsers returns the total number of user records.
func (r *userRepository) CountUsers(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	var total int
	row := r.db.QueryRowContext(ctx, countUsers)
	if err := row.Scan(&total); err != nil {
		log.Err(err).Str("func", "*userRepository.CountUsers").Msg("error: scanning count")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return total, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.IsAdmin,
		&user.IsActive,
		&user.HashedAPIKey,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}
