package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/internal/usecase"
	"inkwell/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCommentUseCase is a mock implementation of usecase.CommentUseCase
type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) ListForPost(postID string) ([]*entity.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) ListAdmin(filter persistent.CommentListFilter) ([]*entity.Comment, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentUseCase) Get(id string) (*entity.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) Create(input usecase.CreateCommentInput) (*entity.Comment, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) Update(id string, input usecase.UpdateCommentInput) (*entity.Comment, error) {
	args := m.Called(id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ usecase.CommentUseCase = (*MockCommentUseCase)(nil)

func TestListComments_RequiresPostID(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/comments", handler.ListForPost)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/comments", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope(t, w.Body)
	assert.Contains(t, env.Errors, "post_id")
	mockUseCase.AssertNotCalled(t, "ListForPost", mock.Anything)
}

func TestCreateComment_AttachesAuthenticatedUser(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/comments", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		handler.Create(c)
	})

	mockUseCase.On("Create", mock.MatchedBy(func(in usecase.CreateCommentInput) bool {
		return in.UserID != nil && *in.UserID == "user-1" && in.AuthorName == "Reader"
	})).Return(&entity.Comment{ID: "comment-1", Content: "nice"}, nil)

	body, _ := json.Marshal(map[string]string{
		"post_id":      "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"author_name":  "Reader",
		"author_email": "reader@example.com",
		"content":      "nice",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/comments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreateComment_CommentsDisabled(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/comments", handler.Create)

	mockUseCase.On("Create", mock.AnythingOfType("usecase.CreateCommentInput")).
		Return(nil, usecase.ErrCommentsDisabled)

	body, _ := json.Marshal(map[string]string{
		"post_id":      "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"author_name":  "Reader",
		"author_email": "reader@example.com",
		"content":      "nice",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/comments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope(t, w.Body)
	assert.Equal(t, "Comments are disabled for this post", env.Message)
}

func TestCreateComment_InvalidParent(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/comments", handler.Create)

	mockUseCase.On("Create", mock.AnythingOfType("usecase.CreateCommentInput")).
		Return(nil, usecase.ErrInvalidParent)

	body, _ := json.Marshal(map[string]string{
		"post_id":      "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"author_name":  "Reader",
		"author_email": "reader@example.com",
		"content":      "nice",
		"parent_id":    "6ba7b812-9dad-11d1-80b4-00c04fd430c8",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/comments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope(t, w.Body)
	assert.Contains(t, env.Errors, "parent_id")
}

func TestUpdateComment_SetsStatus(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/admin/comments/:id", handler.Update)

	mockUseCase.On("Update", "comment-1", mock.MatchedBy(func(in usecase.UpdateCommentInput) bool {
		return in.Status != nil && *in.Status == entity.CommentStatusSpam
	})).Return(&entity.Comment{ID: "comment-1", Status: entity.CommentStatusSpam}, nil)

	body, _ := json.Marshal(map[string]string{"status": "spam"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/admin/comments/comment-1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeleteComment_NotFound(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/admin/comments/:id", handler.Delete)

	mockUseCase.On("Delete", "missing").Return(usecase.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/admin/comments/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w.Body)
	assert.Equal(t, "Comment not found", env.Message)
}
