// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core entity in the system, representing a single account.
// The ID is store-assigned and immutable; Email is globally unique.
// PasswordHash is the stored credential and must never leave the core:
// outward-facing reads go through PublicUser instead.
type User struct {
	ID           int64     // Store-assigned identifier for the user.
	Name         string    // The user's display name.
	Email        string    // The user's email, used as the login identifier. Unique.
	PasswordHash string    // The bcrypt hash of the user's password. Never serialized.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification, refreshed on any mutation.
}

// Public returns the outward-facing projection of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// PublicUser is the projection of a User that is safe to return to callers.
// It structurally cannot carry the credential hash, which is the second layer
// of defense after the store adapter's hash-free read path.
type PublicUser struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
