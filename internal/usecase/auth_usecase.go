// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"jobhud/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// The required tags are the HTTP boundary's concern (the original API answers
// 400 for missing fields); the core itself imposes no password policy.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput is the shape returned by both registration and login:
// the public identity plus a fresh bearer token. It never carries the
// credential hash.
type AuthOutput struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// AuthUsecase defines the interface for credential and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates an account and logs it in: uniqueness check, hash,
	// persist, issue token.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a token. Unknown email and wrong
	// password are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// ProfileByToken resolves a raw bearer token to the public user record.
	ProfileByToken(ctx context.Context, token string) (*entity.PublicUser, error)
}
