package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-crud-api/internal/logger"
	"github.com/MKhiriev/go-crud-api/models"
)

// itemRepository is the SQL implementation of [ItemRepository] over the
// "items" table.
type itemRepository struct {
	db     QueryExecutor
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by db.
func NewItemRepository(db QueryExecutor, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

func (r *itemRepository) GetItemByID(ctx context.Context, id int64) (models.Item, error) {
	result, err := r.db.Build(ctx, selectItemByID(id), FetchOne)
	if err != nil {
		return models.Item{}, fmt.Errorf("error getting item: %w", err)
	}

	if result.Row == nil {
		return models.Item{}, ErrItemNotFound
	}

	return rowToItem(result.Row)
}

func (r *itemRepository) GetItemsByUserID(ctx context.Context, userID int64) ([]models.Item, error) {
	return r.getItems(ctx, selectItemsByUserID(userID))
}

func (r *itemRepository) GetAllItems(ctx context.Context) ([]models.Item, error) {
	return r.getItems(ctx, selectItems())
}

func (r *itemRepository) getItems(ctx context.Context, query sq.Sqlizer) ([]models.Item, error) {
	result, err := r.db.Build(ctx, query, FetchMany)
	if err != nil {
		return nil, fmt.Errorf("error getting items: %w", err)
	}

	items := make([]models.Item, 0, len(result.Rows))
	for _, row := range result.Rows {
		item, err := rowToItem(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// CreateItem inserts a new item and returns the stored record. An unknown
// owner yields [ErrReferencedUserNotFound].
func (r *itemRepository) CreateItem(ctx context.Context, item models.NewItem) (models.Item, error) {
	result, err := r.db.Build(ctx, insertItem(item), Execute)
	if err != nil {
		if errors.Is(err, ErrForeignKeyViolation) {
			return models.Item{}, ErrReferencedUserNotFound
		}
		return models.Item{}, fmt.Errorf("error creating item: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*itemRepository.CreateItem").
		Int64("item_id", result.LastInsertID).
		Msg("item created")

	return r.GetItemByID(ctx, result.LastInsertID)
}

// UpdateItem applies the allow-listed fields of patch and returns the
// stored record. Description may be cleared with an explicit null.
func (r *itemRepository) UpdateItem(ctx context.Context, id int64, patch models.ItemPatch) (models.Item, error) {
	if patch.IsEmpty() {
		return r.GetItemByID(ctx, id)
	}

	set := make(map[string]any, 3)
	if patch.Name.Set {
		set["name"] = patch.Name.Value
	}
	if patch.Description.Set {
		set["description"] = patch.Description.Value
	}
	if patch.UserID.Set {
		set["user_id"] = patch.UserID.Value
	}

	result, err := r.db.Build(ctx, updateItem(id, set), Execute)
	if err != nil {
		if errors.Is(err, ErrForeignKeyViolation) {
			return models.Item{}, ErrReferencedUserNotFound
		}
		return models.Item{}, fmt.Errorf("error updating item: %w", err)
	}

	if result.RowsAffected == 0 {
		return models.Item{}, ErrItemNotFound
	}

	return r.GetItemByID(ctx, id)
}

func (r *itemRepository) DeleteItem(ctx context.Context, id int64) error {
	result, err := r.db.Build(ctx, deleteItem(id), Execute)
	if err != nil {
		return fmt.Errorf("error deleting item: %w", err)
	}

	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}
