// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-crud-api/internal/service"
	"github.com/MKhiriev/go-crud-api/internal/store"
)

// errAPITokenIsNotSet is returned by NewHandler when no API token is
// configured. Every request would be rejected, so this is treated as a fatal
// misconfiguration at startup.
var errAPITokenIsNotSet = errors.New("api token is not set")

// Dispatcher-level failures. They never leave the package; Dispatch turns
// them into responses through errorResponseMap.
var (
	errUnauthorized     = errors.New("authorization header is missing or malformed")
	errInvalidAPIToken  = errors.New("api token does not match")
	errInvalidJSON      = errors.New("request body is not a JSON object")
	errRouteNotFound    = errors.New("route not found")
	errMethodNotAllowed = errors.New("method not allowed")
)

// Client-facing messages. These are part of the API contract.
const (
	msgUnauthorized          = "Unauthorized"
	msgInvalidToken          = "Invalid token"
	msgInvalidJSON           = "Invalid JSON"
	msgNotFound              = "Not found"
	msgMethodNotAllowed      = "Method not allowed"
	msgMissingRequiredFields = "Missing required fields"
	msgUserNotFound          = "User not found"
	msgItemNotFound          = "Item not found"
	msgUsernameExists        = "Username already exists"
	msgEmailExists           = "Email already exists"
	msgConflict              = "Resource already exists"
	msgUserHasItems          = "User has items"
	msgInvalidCredentials    = "Invalid credentials"
	msgUserInactive          = "User is inactive"
	msgTokenExpired          = "Token expired"
	msgInternalServerError   = "Internal server error"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	errUnauthorized:     {http.StatusUnauthorized, msgUnauthorized},
	errInvalidAPIToken:  {http.StatusUnauthorized, msgInvalidToken},
	errInvalidJSON:      {http.StatusBadRequest, msgInvalidJSON},
	errRouteNotFound:    {http.StatusNotFound, msgNotFound},
	errMethodNotAllowed: {http.StatusMethodNotAllowed, msgMethodNotAllowed},

	service.ErrMissingRequiredFields: {http.StatusBadRequest, msgMissingRequiredFields},
	service.ErrInvalidCredentials:    {http.StatusUnauthorized, msgInvalidCredentials},
	service.ErrUserInactive:          {http.StatusForbidden, msgUserInactive},
	service.ErrTokenExpired:          {http.StatusUnauthorized, msgTokenExpired},
	service.ErrTokenInvalid:          {http.StatusUnauthorized, msgInvalidToken},

	store.ErrUserNotFound:           {http.StatusNotFound, msgUserNotFound},
	store.ErrReferencedUserNotFound: {http.StatusNotFound, msgUserNotFound},
	store.ErrItemNotFound:           {http.StatusNotFound, msgItemNotFound},
	store.ErrUsernameAlreadyExists:  {http.StatusConflict, msgUsernameExists},
	store.ErrEmailAlreadyExists:     {http.StatusConflict, msgEmailExists},
	store.ErrUserHasItems:           {http.StatusConflict, msgUserHasItems},
}

// responseFromError maps err to its status and client-facing message.
// Unknown errors become 500 with an opaque message; the second return value
// reports whether err was recognized.
func responseFromError(err error) (errorResponse, bool) {
	var fieldErr *service.InvalidFieldError
	if errors.As(err, &fieldErr) {
		return errorResponse{
			status:  http.StatusBadRequest,
			message: fmt.Sprintf("Invalid value for field %s", fieldErr.Field),
		}, true
	}

	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp, true
		}
	}

	// Column-specific conflicts wrap the constraint error too, so the generic
	// conflict is only a fallback.
	if errors.Is(err, store.ErrUniqueViolation) {
		return errorResponse{http.StatusConflict, msgConflict}, true
	}

	return errorResponse{http.StatusInternalServerError, msgInternalServerError}, false
}
