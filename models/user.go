// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity stored in the "users" table.
// PasswordHash is never exposed via JSON; marshalling a User yields the
// public projection {id, username, email, is_active, is_admin, created_at, updated_at}.
type User struct {
	// ID is the store-assigned identifier. Immutable once assigned.
	ID int64 `json:"id"`

	// Username is unique across all users.
	Username string `json:"username"`

	// Email is unique across all users.
	Email string `json:"email"`

	// PasswordHash is the encoded PBKDF2 hash
	// ("pbkdf2:sha256:<iterations>$<salt>$<key>"). Never serialized.
	PasswordHash string `json:"-"`

	IsActive bool `json:"is_active"`
	IsAdmin  bool `json:"is_admin"`

	// CreatedAt and UpdatedAt are assigned by the store.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// NewUser carries the fields accepted when creating a user. Password is the
// plain-text password; it is hashed by the persistence layer before insert.
type NewUser struct {
	Username string
	Email    string
	Password string
	IsActive bool
	IsAdmin  bool
}

// UserPatch is a partial update of a user. Only fields with Set == true are
// written. Password is hashed into password_hash before the update.
type UserPatch struct {
	Username Optional[string] `json:"username,omitzero"`
	Email    Optional[string] `json:"email,omitzero"`
	Password Optional[string] `json:"password,omitzero"`
	IsActive Optional[bool]   `json:"is_active,omitzero"`
	IsAdmin  Optional[bool]   `json:"is_admin,omitzero"`
}

// IsEmpty reports whether the patch carries no recognized field.
func (p UserPatch) IsEmpty() bool {
	return !p.Username.Set && !p.Email.Set && !p.Password.Set && !p.IsActive.Set && !p.IsAdmin.Set
}
