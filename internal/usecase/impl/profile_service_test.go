package impl

import (
	"context"
	"testing"

	"jobhud/internal/domain/entity"
	domainerrors "jobhud/internal/domain/errors"
	"jobhud/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProfileService(t *testing.T) (usecase.ProfileUsecase, *memoryUserRepo) {
	t.Helper()

	repo := newMemoryUserRepo()
	svc := NewProfileService(&memoryTxManager{repo: repo}, repo, testLogger())

	return svc, repo
}

func seedUser(t *testing.T, repo *memoryUserRepo, name, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: "x",
	}
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func TestProfileService_GetProfile(t *testing.T) {
	svc, repo := newTestProfileService(t)
	ctx := context.Background()

	ada := seedUser(t, repo, "Ada", "ada@example.com")

	got, err := svc.GetProfile(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, ada.ID, got.ID)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "ada@example.com", got.Email)

	_, err = svc.GetProfile(ctx, 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateProfilePartial(t *testing.T) {
	svc, repo := newTestProfileService(t)
	ctx := context.Background()

	ada := seedUser(t, repo, "Ada", "ada@example.com")

	// Name-only update leaves the email untouched.
	newName := "Ada Lovelace"
	got, err := svc.UpdateProfile(ctx, ada.ID, &usecase.UpdateProfileInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.Name)
	assert.Equal(t, "ada@example.com", got.Email)

	// Email update is normalized before it is stored.
	newEmail := "  Ada.Lovelace@Example.COM "
	got, err = svc.UpdateProfile(ctx, ada.ID, &usecase.UpdateProfileInput{Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.Name)
	assert.Equal(t, "ada.lovelace@example.com", got.Email)

	// Empty update is a no-op that still answers the current record.
	got, err = svc.UpdateProfile(ctx, ada.ID, &usecase.UpdateProfileInput{})
	require.NoError(t, err)
	assert.Equal(t, "ada.lovelace@example.com", got.Email)
}

func TestProfileService_UpdateProfileEmailConflicts(t *testing.T) {
	svc, repo := newTestProfileService(t)
	ctx := context.Background()

	ada := seedUser(t, repo, "Ada", "ada@example.com")
	seedUser(t, repo, "Grace", "grace@example.com")

	// Taking another user's email is a conflict.
	taken := "grace@example.com"
	_, err := svc.UpdateProfile(ctx, ada.ID, &usecase.UpdateProfileInput{Email: &taken})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailInUse)

	// Re-submitting the caller's own email is not a conflict.
	own := "Ada@Example.com"
	got, err := svc.UpdateProfile(ctx, ada.ID, &usecase.UpdateProfileInput{Email: &own})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", got.Email)
}

func TestProfileService_UpdateProfileMissingUser(t *testing.T) {
	svc, _ := newTestProfileService(t)

	name := "Ghost"
	_, err := svc.UpdateProfile(context.Background(), 42, &usecase.UpdateProfileInput{Name: &name})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
