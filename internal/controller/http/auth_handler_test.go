package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/internal/entity"
	"inkwell/internal/usecase"
	"inkwell/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthUseCase is a mock implementation of usecase.AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.LoginResult), args.Error(1)
}

func (m *MockAuthUseCase) Logout(ctx context.Context, jti string) error {
	args := m.Called(ctx, jti)
	return args.Error(0)
}

func (m *MockAuthUseCase) Refresh(ctx context.Context, userID, oldJTI string) (*usecase.LoginResult, error) {
	args := m.Called(ctx, userID, oldJTI)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.LoginResult), args.Error(1)
}

func (m *MockAuthUseCase) ChangePassword(userID, currentPassword, newPassword string) error {
	args := m.Called(userID, currentPassword, newPassword)
	return args.Error(0)
}

func (m *MockAuthUseCase) Me(userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

func TestLogin_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/auth/login", handler.Login)

	mockUseCase.On("Login", mock.Anything, "admin@example.com", "secret123").Return(&usecase.LoginResult{
		Token:     "signed-token",
		ExpiresIn: 3600,
		User:      &entity.User{ID: "user-1", Email: "admin@example.com", Role: entity.RoleAdmin},
	}, nil)

	body, _ := json.Marshal(map[string]string{
		"email":    "admin@example.com",
		"password": "secret123",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body)
	assert.True(t, env.Success)

	data := env.Data.(map[string]interface{})
	assert.Equal(t, "signed-token", data["token"])
	assert.Equal(t, "Bearer", data["token_type"])
	assert.Equal(t, float64(3600), data["expires_in"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/auth/login", handler.Login)

	mockUseCase.On("Login", mock.Anything, "admin@example.com", "wrong").
		Return(nil, usecase.ErrInvalidCredentials)

	body, _ := json.Marshal(map[string]string{
		"email":    "admin@example.com",
		"password": "wrong",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(t, w.Body)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid credentials", env.Message)
}

func TestLogin_NonAdminForbidden(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/auth/login", handler.Login)

	mockUseCase.On("Login", mock.Anything, "reader@example.com", "secret123").
		Return(nil, usecase.ErrNotAdmin)

	body, _ := json.Marshal(map[string]string{
		"email":    "reader@example.com",
		"password": "secret123",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	env := decodeEnvelope(t, w.Body)
	assert.Equal(t, "Admin access required", env.Message)
}

func TestLogin_MalformedEmail(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/auth/login", handler.Login)

	body, _ := json.Marshal(map[string]string{
		"email":    "not-an-email",
		"password": "secret123",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope(t, w.Body)
	assert.Contains(t, env.Errors, "email")
	mockUseCase.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangePassword_ConfirmationMismatch(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/auth/change-password", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		handler.ChangePassword(c)
	})

	body, _ := json.Marshal(map[string]string{
		"current_password":          "old-secret",
		"new_password":              "new-secret-1",
		"new_password_confirmation": "something-else",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/change-password", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope(t, w.Body)
	assert.Contains(t, env.Errors, "new_password_confirmation")
	mockUseCase.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/auth/change-password", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		handler.ChangePassword(c)
	})

	mockUseCase.On("ChangePassword", "user-1", "old-secret", "new-secret-1").
		Return(usecase.ErrWrongPassword)

	body, _ := json.Marshal(map[string]string{
		"current_password":          "old-secret",
		"new_password":              "new-secret-1",
		"new_password_confirmation": "new-secret-1",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/change-password", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope(t, w.Body)
	assert.Contains(t, env.Errors, "current_password")
}

func TestLogout_RevokesSession(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/auth/logout", func(c *gin.Context) {
		c.Set("token_jti", "jti-1")
		handler.Logout(c)
	})

	mockUseCase.On("Logout", mock.Anything, "jti-1").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/logout", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}
