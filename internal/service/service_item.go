package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-crud-api/internal/logger"
	"github.com/MKhiriev/go-crud-api/internal/store"
	"github.com/MKhiriev/go-crud-api/models"
)

type itemService struct {
	itemRepository store.ItemRepository
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, userRepository store.UserRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *itemService) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.itemRepository.GetAllItems(ctx)
}

func (s *itemService) GetItem(ctx context.Context, id int64) (models.Item, error) {
	return s.itemRepository.GetItemByID(ctx, id)
}

// CreateItem validates req and creates the item. name and user_id are
// required and user_id must reference an existing user.
func (s *itemService) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	if !presentString(req.Name) || !req.UserID.Present() {
		return models.Item{}, ErrMissingRequiredFields
	}

	if err := s.ensureUserExists(ctx, req.UserID.Value); err != nil {
		return models.Item{}, err
	}

	item, err := s.itemRepository.CreateItem(ctx, models.NewItem{
		Name:        req.Name.Value,
		Description: req.Description.Value,
		UserID:      req.UserID.Value,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", req.UserID.Value).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return item, nil
}

// UpdateItem applies patch to an existing item. A new user_id must reference
// an existing user; on any failure the item is left unchanged.
func (s *itemService) UpdateItem(ctx context.Context, id int64, patch models.ItemPatch) (models.Item, error) {
	if patch.Name.Set && !presentString(patch.Name) {
		return models.Item{}, NewInvalidFieldError("name")
	}
	if patch.UserID.Null {
		return models.Item{}, NewInvalidFieldError("user_id")
	}

	if _, err := s.itemRepository.GetItemByID(ctx, id); err != nil {
		return models.Item{}, err
	}

	if patch.UserID.Set {
		if err := s.ensureUserExists(ctx, patch.UserID.Value); err != nil {
			return models.Item{}, err
		}
	}

	item, err := s.itemRepository.UpdateItem(ctx, id, patch)
	if err != nil {
		return models.Item{}, fmt.Errorf("item update ended with error: %w", err)
	}

	return item, nil
}

func (s *itemService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.itemRepository.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("item deletion ended with error: %w", err)
	}

	return nil
}

func (s *itemService) ensureUserExists(ctx context.Context, userID int64) error {
	_, err := s.userRepository.GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return store.ErrReferencedUserNotFound
	}

	return err
}
