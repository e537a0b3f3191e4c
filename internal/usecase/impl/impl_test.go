package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"jobhud/config"
	"jobhud/internal/domain/entity"
	domainerrors "jobhud/internal/domain/errors"
	"jobhud/internal/domain/repository"
	"jobhud/internal/domain/service"
	"jobhud/internal/infra/auth"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryUserRepo is an in-memory UserRepository used by the service tests.
// It enforces email uniqueness under a mutex, mirroring the store's unique
// index, so concurrent-registration behavior is observable in-process.
type memoryUserRepo struct {
	mu      sync.Mutex
	users   map[int64]*entity.User
	byEmail map[string]int64
	nextID  int64
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{
		users:   make(map[int64]*entity.User),
		byEmail: make(map[string]int64),
	}
}

func (r *memoryUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
	}

	r.nextID++
	now := time.Now()
	user.ID = r.nextID
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	r.users[user.ID] = &stored
	r.byEmail[user.Email] = user.ID

	return nil
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	found := *r.users[id]

	return &found, nil
}

func (r *memoryUserRepo) FindPublicByID(_ context.Context, id int64) (*entity.PublicUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user.Public(), nil
}

func (r *memoryUserRepo) EmailInUseByOther(_ context.Context, email string, selfID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[email]

	return ok && id != selfID, nil
}

func (r *memoryUserRepo) UpdateProfile(_ context.Context, id int64, name, email *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}

	if email != nil && *email != user.Email {
		if otherID, exists := r.byEmail[*email]; exists && otherID != id {
			return errors.Wrap(domainerrors.ErrEmailInUse, "email already in use")
		}
		delete(r.byEmail, user.Email)
		user.Email = *email
		r.byEmail[user.Email] = id
	}
	if name != nil {
		user.Name = *name
	}
	user.UpdatedAt = time.Now()

	return nil
}

func (r *memoryUserRepo) delete(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, ok := r.users[id]; ok {
		delete(r.byEmail, user.Email)
		delete(r.users, id)
	}
}

// memoryTxManager satisfies TransactionManager without transactional
// semantics: the repo's own mutex provides the consistency the tests need.
type memoryTxManager struct {
	repo *memoryUserRepo
}

func (m *memoryTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&memoryRepoFactory{repo: m.repo})
}

type memoryRepoFactory struct {
	repo *memoryUserRepo
}

func (f *memoryRepoFactory) UserRepo() repository.UserRepository {
	return f.repo
}

// stubTokenService lets a test dictate verification outcomes directly.
type stubTokenService struct {
	issueFn    func(userID int64, email string) (string, error)
	validateFn func(token string) (*service.Claims, error)
}

func (s *stubTokenService) Issue(userID int64, email string) (string, error) {
	if s.issueFn != nil {
		return s.issueFn(userID, email)
	}

	return "stub-token", nil
}

func (s *stubTokenService) Validate(token string) (*service.Claims, error) {
	if s.validateFn != nil {
		return s.validateFn(token)
	}

	return nil, service.ErrTokenMalformed
}

func (s *stubTokenService) TTL() time.Duration {
	return time.Hour
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = time.Hour

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenSvc
}

func newTestAuthService(t *testing.T) (*authService, *memoryUserRepo) {
	t.Helper()

	repo := newMemoryUserRepo()
	svc := NewAuthService(AuthServiceParams{
		TxManager:    &memoryTxManager{repo: repo},
		UserRepo:     repo,
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: testTokenService(t),
		Logger:       testLogger(),
	})

	return svc.(*authService), repo
}
