// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"jobhud/internal/domain/entity"
	domainerrors "jobhud/internal/domain/errors"
	"jobhud/internal/domain/repository"
	"jobhud/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user and backfills the store-assigned ID and
// timestamps. The unique index on email is the authoritative uniqueness
// enforcement: a violation here maps to the same domain error as the
// advisory pre-check in the registration flow.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByEmail retrieves a single user, credential hash included, by email.
// Only the login path may consume the returned hash.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindPublicByID retrieves the public projection of a user. The credential
// hash column is excluded from the select list, so it cannot leak even if a
// caller serializes the result verbatim.
func (repo *userRepository) FindPublicByID(ctx context.Context, id int64) (*entity.PublicUser, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Select("id", "name", "email", "created_at", "updated_at").
		Where("id = ?", id).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return &entity.PublicUser{
		ID:        userM.ID,
		Name:      userM.Name,
		Email:     userM.Email,
		CreatedAt: userM.CreatedAt,
		UpdatedAt: userM.UpdatedAt,
	}, nil
}

// EmailInUseByOther reports whether a different user already holds the email.
// Advisory only: concurrent writers are finally arbitrated by the unique index.
func (repo *userRepository) EmailInUseByOther(ctx context.Context, email string, selfID int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ? AND id <> ?", email, selfID).
		Count(&count).Error

	if err != nil {
		return false, errors.Wrap(err, "failed to check email usage")
	}

	return count > 0, nil
}

// UpdateProfile applies a partial update. Nil fields are omitted from the
// statement entirely, so the stored values are retained; updated_at is
// refreshed by GORM on any mutation.
func (repo *userRepository) UpdateProfile(ctx context.Context, id int64, name, email *string) error {
	updates := map[string]any{}
	if name != nil {
		updates["name"] = *name
	}
	if email != nil {
		updates["email"] = *email
	}
	if len(updates) == 0 {
		// Nothing to change; still verify the row exists.
		var count int64
		if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check user existence")
		}
		if count == 0 {
			return repository.ErrUserNotFound
		}

		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(updates)

	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailInUse.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	if result.RowsAffected == 0 {
		// The identity vanished between token verification and the write.
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
	}
}
