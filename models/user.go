// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account that can own favorites.
//
// Password is persisted (as a hash) but is never serialized outward, and
// neither is IsActive: the public shape of a user is {id, email}.
type User struct {
	// ID is the surrogate key assigned by storage.
	ID int64 `json:"id"`

	// Email is the unique user e-mail.
	Email string `json:"email"`

	// Password stores the hashed password. It MUST NOT leave the server.
	Password string `json:"-"`

	// IsActive reports whether the account is enabled.
	IsActive bool `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "user"
}
