package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-crud-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// QueryExecutor is the transaction-scoped query primitive implemented by [DB].
type QueryExecutor interface {
	QueryOrExecute(ctx context.Context, statement string, args []any, mode Mode) (Result, error)
	Build(ctx context.Context, b sq.Sqlizer, mode Mode) (Result, error)
}

// PasswordHasher produces the stored password hash for a plain-text password.
type PasswordHasher interface {
	HashPassword(password string) string
}

// PasswordHasherFunc adapts a function to [PasswordHasher].
type PasswordHasherFunc func(password string) string

// HashPassword implements [PasswordHasher].
func (f PasswordHasherFunc) HashPassword(password string) string {
	return f(password)
}

// UserRepository persists users.
type UserRepository interface {
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user models.NewUser) (models.User, error)
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// ItemRepository persists items.
type ItemRepository interface {
	GetItemByID(ctx context.Context, id int64) (models.Item, error)
	GetItemsByUserID(ctx context.Context, userID int64) ([]models.Item, error)
	GetAllItems(ctx context.Context) ([]models.Item, error)
	CreateItem(ctx context.Context, item models.NewItem) (models.Item, error)
	UpdateItem(ctx context.Context, id int64, patch models.ItemPatch) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}
