package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-crud-api/internal/logger"
	"github.com/MKhiriev/go-crud-api/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. Every call runs in its own transaction through
// [QueryExecutor].
type userRepository struct {
	db     QueryExecutor
	hasher PasswordHasher
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db. Plain-text
// passwords are hashed with hasher before they are written.
func NewUserRepository(db QueryExecutor, hasher PasswordHasher, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		hasher: hasher,
		logger: logger,
	}
}

func (r *userRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.getUserBy(ctx, "id", id)
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.getUserBy(ctx, "username", username)
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getUserBy(ctx, "email", email)
}

func (r *userRepository) getUserBy(ctx context.Context, column string, value any) (models.User, error) {
	result, err := r.db.Build(ctx, selectUserBy(column, value), FetchOne)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user by %s: %w", column, err)
	}

	if result.Row == nil {
		return models.User{}, ErrUserNotFound
	}

	return rowToUser(result.Row)
}

// GetAllUsers returns every user ordered by id. The slice is never nil.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	result, err := r.db.Build(ctx, selectUsers(), FetchMany)
	if err != nil {
		return nil, fmt.Errorf("error getting users: %w", err)
	}

	users := make([]models.User, 0, len(result.Rows))
	for _, row := range result.Rows {
		user, err := rowToUser(row)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

// CreateUser inserts a new user and returns the stored record.
//
// Username is checked before email so that a payload duplicating both
// reports [ErrUsernameAlreadyExists]. The checks only pick the error; a
// concurrent insert that slips past them is rejected by the UNIQUE
// constraints and reported the same way.
func (r *userRepository) CreateUser(ctx context.Context, user models.NewUser) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := r.ensureUnique(ctx, "username", user.Username, ErrUsernameAlreadyExists); err != nil {
		return models.User{}, err
	}
	if err := r.ensureUnique(ctx, "email", user.Email, ErrEmailAlreadyExists); err != nil {
		return models.User{}, err
	}

	result, err := r.db.Build(ctx, insertUser(user, r.hasher.HashPassword(user.Password)), Execute)
	if err != nil {
		if conflict := uniqueConflict(err); conflict != nil {
			log.Warn().Err(err).Str("func", "*userRepository.CreateUser").Msg("unique constraint rejected insert")
			return models.User{}, conflict
		}
		return models.User{}, fmt.Errorf("error creating user: %w", err)
	}

	log.Debug().Str("func", "*userRepository.CreateUser").Int64("user_id", result.LastInsertID).Msg("user created")

	return r.GetUserByID(ctx, result.LastInsertID)
}

func (r *userRepository) ensureUnique(ctx context.Context, column, value string, conflict error) error {
	_, err := r.getUserBy(ctx, column, value)
	switch {
	case err == nil:
		return conflict
	case errors.Is(err, ErrUserNotFound):
		return nil
	default:
		return err
	}
}

// UpdateUser applies the allow-listed fields of patch and returns the
// stored record. An empty patch leaves the row untouched.
func (r *userRepository) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (models.User, error) {
	if patch.IsEmpty() {
		return r.GetUserByID(ctx, id)
	}

	set := make(map[string]any, 5)
	if patch.Username.Set {
		set["username"] = patch.Username.Value
	}
	if patch.Email.Set {
		set["email"] = patch.Email.Value
	}
	if patch.Password.Set {
		set["password_hash"] = r.hasher.HashPassword(patch.Password.Value)
	}
	if patch.IsActive.Set {
		set["is_active"] = patch.IsActive.Value
	}
	if patch.IsAdmin.Set {
		set["is_admin"] = patch.IsAdmin.Value
	}

	result, err := r.db.Build(ctx, updateUser(id, set), Execute)
	if err != nil {
		if conflict := uniqueConflict(err); conflict != nil {
			return models.User{}, conflict
		}
		return models.User{}, fmt.Errorf("error updating user: %w", err)
	}

	if result.RowsAffected == 0 {
		return models.User{}, ErrUserNotFound
	}

	return r.GetUserByID(ctx, id)
}

// DeleteUser removes the user. Users still owning items are kept and
// [ErrUserHasItems] is returned.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	result, err := r.db.Build(ctx, deleteUser(id), Execute)
	if err != nil {
		if errors.Is(err, ErrForeignKeyViolation) {
			return ErrUserHasItems
		}
		return fmt.Errorf("error deleting user: %w", err)
	}

	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// uniqueConflict maps a unique violation on users to the domain error for
// the offending column. It returns nil for any other error.
func uniqueConflict(err error) error {
	column, ok := uniqueViolationColumn(err)
	if !ok {
		return nil
	}

	switch column {
	case "username":
		return fmt.Errorf("%w: %w", ErrUsernameAlreadyExists, err)
	case "email":
		return fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
	default:
		return nil
	}
}
