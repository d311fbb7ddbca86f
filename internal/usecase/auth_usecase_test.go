package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"inkwell/internal/entity"
	"inkwell/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]bool
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]bool)}
}

func (s *memorySessionStore) Create(_ context.Context, jti string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[jti] = true
	return nil
}

func (s *memorySessionStore) Exists(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[jti], nil
}

func (s *memorySessionStore) Revoke(_ context.Context, jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, jti)
	return nil
}

func (s *memorySessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func newAuthUseCaseForTest(userRepo *MockUserRepository, sessions *memorySessionStore) AuthUseCase {
	return NewAuthUseCase(userRepo, jwt.NewService("test-secret", time.Hour), sessions)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessions := newMemorySessionStore()
	uc := newAuthUseCaseForTest(userRepo, sessions)

	userRepo.On("GetByEmail", "admin@example.com").Return(&entity.User{
		ID:       "user-1",
		Email:    "admin@example.com",
		Password: hashPassword(t, "secret123"),
		Role:     entity.RoleAdmin,
	}, nil)

	result, err := uc.Login(context.Background(), "admin@example.com", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, int64(3600), result.ExpiresIn)
	assert.Equal(t, 1, sessions.count())
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessions := newMemorySessionStore()
	uc := newAuthUseCaseForTest(userRepo, sessions)

	userRepo.On("GetByEmail", "admin@example.com").Return(&entity.User{
		ID:       "user-1",
		Password: hashPassword(t, "secret123"),
		Role:     entity.RoleAdmin,
	}, nil)

	_, err := uc.Login(context.Background(), "admin@example.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 0, sessions.count())
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessions := newMemorySessionStore()
	uc := newAuthUseCaseForTest(userRepo, sessions)

	userRepo.On("GetByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_NonAdminRejectedWithoutSession(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessions := newMemorySessionStore()
	uc := newAuthUseCaseForTest(userRepo, sessions)

	userRepo.On("GetByEmail", "reader@example.com").Return(&entity.User{
		ID:       "user-2",
		Password: hashPassword(t, "secret123"),
		Role:     entity.RoleUser,
	}, nil)

	_, err := uc.Login(context.Background(), "reader@example.com", "secret123")

	assert.ErrorIs(t, err, ErrNotAdmin)
	assert.Equal(t, 0, sessions.count())
}

func TestRefresh_RevokesOldSession(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessions := newMemorySessionStore()
	uc := newAuthUseCaseForTest(userRepo, sessions)

	userRepo.On("GetByEmail", "admin@example.com").Return(&entity.User{
		ID:       "user-1",
		Email:    "admin@example.com",
		Password: hashPassword(t, "secret123"),
		Role:     entity.RoleAdmin,
	}, nil)
	userRepo.On("GetByID", "user-1").Return(&entity.User{
		ID:   "user-1",
		Role: entity.RoleAdmin,
	}, nil)

	first, err := uc.Login(context.Background(), "admin@example.com", "secret123")
	assert.NoError(t, err)

	jwtService := jwt.NewService("test-secret", time.Hour)
	claims, err := jwtService.ValidateToken(first.Token)
	assert.NoError(t, err)

	second, err := uc.Refresh(context.Background(), "user-1", claims.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)

	// Only the new session survives.
	assert.Equal(t, 1, sessions.count())
	alive, err := sessions.Exists(context.Background(), claims.ID)
	assert.NoError(t, err)
	assert.False(t, alive)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessions := newMemorySessionStore()
	uc := newAuthUseCaseForTest(userRepo, sessions)

	userRepo.On("GetByID", "user-1").Return(&entity.User{
		ID:       "user-1",
		Password: hashPassword(t, "secret123"),
	}, nil)

	err := uc.ChangePassword("user-1", "wrong", "newpassword1")

	assert.ErrorIs(t, err, ErrWrongPassword)
	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything)
}

func TestChangePassword_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessions := newMemorySessionStore()
	uc := newAuthUseCaseForTest(userRepo, sessions)

	userRepo.On("GetByID", "user-1").Return(&entity.User{
		ID:       "user-1",
		Password: hashPassword(t, "secret123"),
	}, nil)
	userRepo.On("UpdatePassword", "user-1", mock.AnythingOfType("string")).Return(nil)

	err := uc.ChangePassword("user-1", "secret123", "newpassword1")

	assert.NoError(t, err)
	hashed := userRepo.Calls[1].Arguments.String(1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("newpassword1")))
}

func TestLogout_RevokesSession(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessions := newMemorySessionStore()
	uc := newAuthUseCaseForTest(userRepo, sessions)

	assert.NoError(t, sessions.Create(context.Background(), "jti-1", time.Hour))
	assert.NoError(t, uc.Logout(context.Background(), "jti-1"))
	assert.Equal(t, 0, sessions.count())
}
