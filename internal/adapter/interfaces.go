// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the Users/Items API.
//
// [NewHTTPClient] returns an [APIClient] backed by resty. Non-2xx responses
// are mapped to an [*APIError] that carries the server's message and matches
// one of the sentinel errors in errors.go with [errors.Is] (for example
// [ErrConflict] for 409 and [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-crud-api/models"
)

// APIClient mirrors the API routes. Every request carries the static API
// token as a bearer token.
type APIClient interface {
	Health(ctx context.Context) (models.HealthStatus, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	// UpdateUser sends only the fields set in patch.
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	ListUserItems(ctx context.Context, id int64) ([]models.Item, error)

	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error)
	// UpdateItem sends only the fields set in patch; models.Null clears the
	// description.
	UpdateItem(ctx context.Context, id int64, patch models.ItemPatch) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error

	IssueToken(ctx context.Context, username, password string) (models.AccessToken, error)
	VerifyToken(ctx context.Context, token string) (models.TokenVerification, error)
}
