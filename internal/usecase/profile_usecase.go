// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"jobhud/internal/domain/entity"
)

// UpdateProfileInput carries an authenticated caller's partial profile
// update. A nil field means "no change", never "clear the field".
type UpdateProfileInput struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// ProfileUsecase defines profile retrieval and mutation for an identity that
// was already resolved upstream from a verified token. Callers can never
// address a profile other than their own through this interface.
type ProfileUsecase interface {
	// GetProfile returns the public record for the given user.
	GetProfile(ctx context.Context, userID int64) (*entity.PublicUser, error)

	// UpdateProfile applies a partial update, guarding email uniqueness
	// against other users, and returns the canonical post-update record.
	UpdateProfile(ctx context.Context, userID int64, input *UpdateProfileInput) (*entity.PublicUser, error)
}
