// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// FieldBinder is implemented by request payloads that bind a fixed
// allow-list of JSON keys. Keys outside the allow-list are ignored.
type FieldBinder interface {
	Fields() map[string]json.Unmarshaler
}

// CreateUserRequest is the body of POST /api/users.
type CreateUserRequest struct {
	Username Optional[string] `json:"username,omitzero"`
	Email    Optional[string] `json:"email,omitzero"`
	Password Optional[string] `json:"password,omitzero"`
	IsActive Optional[bool]   `json:"is_active,omitzero"`
	IsAdmin  Optional[bool]   `json:"is_admin,omitzero"`
}

func (r *CreateUserRequest) Fields() map[string]json.Unmarshaler {
	return map[string]json.Unmarshaler{
		"username":  &r.Username,
		"email":     &r.Email,
		"password":  &r.Password,
		"is_active": &r.IsActive,
		"is_admin":  &r.IsAdmin,
	}
}

// Fields binds the keys accepted by PUT /api/users/{id}.
func (p *UserPatch) Fields() map[string]json.Unmarshaler {
	return map[string]json.Unmarshaler{
		"username":  &p.Username,
		"email":     &p.Email,
		"password":  &p.Password,
		"is_active": &p.IsActive,
		"is_admin":  &p.IsAdmin,
	}
}

// CreateItemRequest is the body of POST /api/items.
type CreateItemRequest struct {
	Name        Optional[string]  `json:"name,omitzero"`
	Description Optional[*string] `json:"description,omitzero"`
	UserID      Optional[int64]   `json:"user_id,omitzero"`
}

func (r *CreateItemRequest) Fields() map[string]json.Unmarshaler {
	return map[string]json.Unmarshaler{
		"name":        &r.Name,
		"description": &r.Description,
		"user_id":     &r.UserID,
	}
}

// Fields binds the keys accepted by PUT /api/items/{id}.
func (p *ItemPatch) Fields() map[string]json.Unmarshaler {
	return map[string]json.Unmarshaler{
		"name":        &p.Name,
		"description": &p.Description,
		"user_id":     &p.UserID,
	}
}

// TokenRequest is the body of POST /api/auth/token.
type TokenRequest struct {
	Username Optional[string] `json:"username,omitzero"`
	Password Optional[string] `json:"password,omitzero"`
}

func (r *TokenRequest) Fields() map[string]json.Unmarshaler {
	return map[string]json.Unmarshaler{
		"username": &r.Username,
		"password": &r.Password,
	}
}

// VerifyTokenRequest is the body of POST /api/auth/verify.
type VerifyTokenRequest struct {
	Token Optional[string] `json:"token,omitzero"`
}

func (r *VerifyTokenRequest) Fields() map[string]json.Unmarshaler {
	return map[string]json.Unmarshaler{
		"token": &r.Token,
	}
}
