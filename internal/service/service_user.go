package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-crud-api/internal/logger"
	"github.com/MKhiriev/go-crud-api/internal/store"
	"github.com/MKhiriev/go-crud-api/models"
)

type userService struct {
	userRepository store.UserRepository
	itemRepository store.ItemRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, itemRepository store.ItemRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		itemRepository: itemRepository,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.GetAllUsers(ctx)
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.GetUserByID(ctx, id)
}

// CreateUser validates req and creates the user. username, email and
// password are required; is_active defaults to true and is_admin to false.
func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	if !presentString(req.Username) || !presentString(req.Email) || !presentString(req.Password) {
		return models.User{}, ErrMissingRequiredFields
	}

	newUser := models.NewUser{
		Username: req.Username.Value,
		Email:    req.Email.Value,
		Password: req.Password.Value,
		IsActive: true,
	}

	if req.IsActive.Set {
		if req.IsActive.Null {
			return models.User{}, NewInvalidFieldError("is_active")
		}
		newUser.IsActive = req.IsActive.Value
	}
	if req.IsAdmin.Set {
		if req.IsAdmin.Null {
			return models.User{}, NewInvalidFieldError("is_admin")
		}
		newUser.IsAdmin = req.IsAdmin.Value
	}

	user, err := s.userRepository.CreateUser(ctx, newUser)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", newUser.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// UpdateUser applies patch. Null is rejected for every field, as are empty
// username, email and password.
func (s *userService) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (models.User, error) {
	if err := validateUserPatch(patch); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.UpdateUser(ctx, id, patch)
	if err != nil {
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}

// ListUserItems returns the items owned by an existing user.
func (s *userService) ListUserItems(ctx context.Context, id int64) ([]models.Item, error) {
	if _, err := s.userRepository.GetUserByID(ctx, id); err != nil {
		return nil, err
	}

	return s.itemRepository.GetItemsByUserID(ctx, id)
}

func validateUserPatch(patch models.UserPatch) error {
	stringFields := []struct {
		name  string
		value models.Optional[string]
	}{
		{"username", patch.Username},
		{"email", patch.Email},
		{"password", patch.Password},
	}
	for _, f := range stringFields {
		if f.value.Set && !presentString(f.value) {
			return NewInvalidFieldError(f.name)
		}
	}

	if patch.IsActive.Null {
		return NewInvalidFieldError("is_active")
	}
	if patch.IsAdmin.Null {
		return NewInvalidFieldError("is_admin")
	}

	return nil
}

func presentString(o models.Optional[string]) bool {
	return o.Present() && o.Value != ""
}
