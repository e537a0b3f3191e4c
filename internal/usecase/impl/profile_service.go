// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "jobhud/internal/delivery/context"
	"jobhud/internal/domain/entity"
	domainerrors "jobhud/internal/domain/errors"
	"jobhud/internal/domain/repository"
	"jobhud/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the public record for the given user.
func (srv *profileService) GetProfile(ctx context.Context, userID int64) (*entity.PublicUser, error) {
	user, err := srv.userRepo.FindPublicByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile applies a partial update to the caller's own record.
// The whole flow runs inside one transaction: email uniqueness re-check
// against other users, partial write, re-fetch of the canonical record.
// The re-fetched record, not the client's input, is what gets returned.
func (srv *profileService) UpdateProfile(ctx context.Context, userID int64, input *usecase.UpdateProfileInput) (*entity.PublicUser, error) {
	srv.log(ctx).Info("Updating user profile", slog.Int64("userID", userID))

	var email *string
	if input.Email != nil {
		normalized := normalizeEmail(*input.Email)
		email = &normalized
	}

	var updated *entity.PublicUser
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if email != nil {
			// Advisory re-check against any *other* record. Updating to the
			// caller's own current email must not collide.
			inUse, err := userRepo.EmailInUseByOther(ctx, *email, userID)
			if err != nil {
				return errors.Wrap(err, "failed to check email usage")
			}
			if inUse {
				return errors.Wrap(domainerrors.ErrEmailInUse, "email already in use")
			}
		}

		if err := userRepo.UpdateProfile(ctx, userID, input.Name, email); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user vanished during update")
			}

			return err
		}

		user, err := userRepo.FindPublicByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user vanished during update")
			}

			return errors.Wrap(err, "failed to re-fetch user after update")
		}
		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	srv.log(ctx).Debug("Profile updated", slog.Int64("userID", userID))

	return updated, nil
}
