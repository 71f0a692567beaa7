// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Item is a named record owned by a [User] through UserID.
type Item struct {
	ID int64 `json:"id"`

	Name string `json:"name"`

	// Description is nullable; nil is serialized as JSON null.
	Description *string `json:"description"`

	// UserID references users.id and must point to an existing user.
	UserID int64 `json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// NewItem carries the fields accepted when creating an item.
type NewItem struct {
	Name        string
	Description *string
	UserID      int64
}

// ItemPatch is a partial update of an item. Description may be explicitly
// set to null, which is why it is an Optional of a pointer.
type ItemPatch struct {
	Name        Optional[string]  `json:"name,omitzero"`
	Description Optional[*string] `json:"description,omitzero"`
	UserID      Optional[int64]   `json:"user_id,omitzero"`
}

// IsEmpty reports whether the patch carries no recognized field.
func (p ItemPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Description.Set && !p.UserID.Set
}
