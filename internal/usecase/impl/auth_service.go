// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "jobhud/internal/delivery/context"
	"jobhud/internal/domain/entity"
	domainerrors "jobhud/internal/domain/errors"
	"jobhud/internal/domain/repository"
	"jobhud/internal/domain/service"
	"jobhud/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeEmail fixes the email comparison policy for the whole system:
// lookups, uniqueness checks and writes all see the lower-cased, trimmed
// form, so the store's unique index arbitrates over normalized values.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register orchestrates the complete user registration process: advisory
// uniqueness check, hash, persist, issue token. The FindByEmail check only
// improves the common-case error message; the store's unique constraint is
// the real guarantee, and its violation surfaces as the same error.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing email")
		}

		// Two concurrent registrations can both pass the check above; the
		// loser of the race gets the same ErrUserAlreadyExists from Create.
		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	token, err := srv.tokenService.Issue(newUser.ID, newUser.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", newUser.ID))

	return &usecase.AuthOutput{
		ID:    newUser.ID,
		Name:  newUser.Name,
		Email: newUser.Email,
		Token: token,
	}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password deliberately collapse into one identical error so responses carry
// no account-existence signal.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "invalid credentials")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Int64("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "invalid credentials")
	}

	token, err := srv.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token on login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("Login completed", slog.Int64("userID", user.ID))

	return &usecase.AuthOutput{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	}, nil
}

// ProfileByToken resolves a raw bearer token to the public user record.
// Token verification is pure in-process computation; only the user fetch
// touches the store.
func (srv *authService) ProfileByToken(ctx context.Context, token string) (*entity.PublicUser, error) {
	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrTokenExpired, "token expired")
		}

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token rejected")
	}

	user, err := srv.userRepo.FindPublicByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// The account was deleted after the token was issued.
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}
