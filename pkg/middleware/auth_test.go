package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inkwell/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeSessionStore keeps sessions in a map so middleware tests run
// without redis.
type fakeSessionStore struct {
	live map[string]bool
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{live: make(map[string]bool)}
}

func (s *fakeSessionStore) Create(_ context.Context, jti string, _ time.Duration) error {
	s.live[jti] = true
	return nil
}

func (s *fakeSessionStore) Exists(_ context.Context, jti string) (bool, error) {
	return s.live[jti], nil
}

func (s *fakeSessionStore) Revoke(_ context.Context, jti string) error {
	delete(s.live, jti)
	return nil
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key", time.Hour)
	sessions := newFakeSessionStore()

	token, claims, _ := jwtService.GenerateToken("user-123", "admin")
	sessions.Create(context.Background(), claims.ID, time.Hour)

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService, sessions))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key", time.Hour)

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService, newFakeSessionStore()))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidFormat(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key", time.Hour)

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService, newFakeSessionStore()))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "InvalidFormat token")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key", time.Hour)

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService, newFakeSessionStore()))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RevokedSession(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key", time.Hour)
	sessions := newFakeSessionStore()

	token, claims, _ := jwtService.GenerateToken("user-123", "admin")
	sessions.Create(context.Background(), claims.ID, time.Hour)
	sessions.Revoke(context.Background(), claims.ID)

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService, sessions))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_NonAdminRole(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key", time.Hour)
	sessions := newFakeSessionStore()

	token, claims, _ := jwtService.GenerateToken("user-123", "user")
	sessions.Create(context.Background(), claims.ID, time.Hour)

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService, sessions))
	router.Use(RequireAdmin())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_AdminRole(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key", time.Hour)
	sessions := newFakeSessionStore()

	token, claims, _ := jwtService.GenerateToken("user-123", "admin")
	sessions.Create(context.Background(), claims.ID, time.Hour)

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService, sessions))
	router.Use(RequireAdmin())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
