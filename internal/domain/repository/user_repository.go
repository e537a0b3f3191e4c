// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"jobhud/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the parameterized operations the core needs from
// persistent storage. Implementations translate store-level constraint
// violations into domain errors; the unique index on users.email is the
// authoritative uniqueness enforcement.
type UserRepository interface {
	// Create persists a new user and fills in the store-assigned ID and
	// timestamps. Returns domainerrors.ErrUserAlreadyExists when the email
	// unique constraint rejects the insert.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a single user, including the credential hash,
	// by email address. This is the only read path that exposes the hash
	// and it exists solely for password verification.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindPublicByID retrieves the public projection of a user by ID.
	// The credential hash is excluded at the query level.
	FindPublicByID(ctx context.Context, id int64) (*entity.PublicUser, error)

	// EmailInUseByOther reports whether a different user (id != selfID)
	// already holds the given email. Advisory only; the unique constraint
	// remains the source of truth under concurrent writers.
	EmailInUseByOther(ctx context.Context, email string, selfID int64) (bool, error)

	// UpdateProfile applies a partial update: nil fields are left untouched.
	// Returns ErrUserNotFound when no row was affected, and
	// domainerrors.ErrEmailInUse when the unique constraint rejects the
	// new email.
	UpdateProfile(ctx context.Context, id int64, name, email *string) error
}
