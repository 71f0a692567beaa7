package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-crud-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService binds the password and access token codec to the configured
// secret, default lifetime and clock.
type AuthService interface {
	HashPassword(password string) string
	VerifyPassword(password, encoded string) bool

	// CreateAccessToken signs claims with an exp of now+ttl. A ttl <= 0
	// uses the configured default lifetime.
	CreateAccessToken(ctx context.Context, claims map[string]any, ttl time.Duration) (string, error)
	DecodeAccessToken(ctx context.Context, token string) (map[string]any, error)

	IssueToken(ctx context.Context, username, password string) (models.AccessToken, error)
	VerifyToken(ctx context.Context, token string) (models.TokenVerification, error)
}

// UserService implements the user resource operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	ListUserItems(ctx context.Context, id int64) ([]models.Item, error)
}

// ItemService implements the item resource operations.
type ItemService interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error)
	UpdateItem(ctx context.Context, id int64, patch models.ItemPatch) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}
