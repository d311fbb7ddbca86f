package http

import (
	"errors"
	"net/http"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/internal/usecase"
	"inkwell/pkg/logger"
	"inkwell/pkg/response"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, log *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         log,
	}
}

type CreateCommentRequest struct {
	PostID       string  `json:"post_id" binding:"required,uuid"`
	AuthorName   string  `json:"author_name" binding:"required,max=255"`
	AuthorEmail  string  `json:"author_email" binding:"required,email"`
	AuthorAvatar string  `json:"author_avatar" binding:"omitempty,url"`
	Content      string  `json:"content" binding:"required"`
	ParentID     *string `json:"parent_id" binding:"omitempty,uuid"`
	Status       string  `json:"status" binding:"omitempty,oneof=pending approved spam rejected"`
}

type UpdateCommentRequest struct {
	Content     *string `json:"content"`
	AuthorName  *string `json:"author_name" binding:"omitempty,max=255"`
	AuthorEmail *string `json:"author_email" binding:"omitempty,email"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending approved spam rejected"`
}

// ListForPost godoc
// @Summary      List comments for a post
// @Description  Approved top-level comments, newest first, each with its approved replies
// @Tags         comments
// @Produce      json
// @Param        post_id query string true "Post ID"
// @Success      200  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /comments [get]
func (h *CommentHandler) ListForPost(c *gin.Context) {
	postID := c.Query("post_id")
	if postID == "" {
		response.ValidationError(c, map[string]string{"post_id": "The post_id field is required"})
		return
	}

	comments, err := h.commentUseCase.ListForPost(postID)
	if err != nil {
		h.logger.Error("Failed to list comments: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, "", comments)
}

// ListAdmin godoc
// @Summary      List comments (admin)
// @Description  All comments with search, status and post filters
// @Tags         admin-comments
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Search content and author fields"
// @Param        status query string false "Filter by status" Enums(pending, approved, spam, rejected)
// @Param        post_id query string false "Filter by post"
// @Param        page query int false "Page number"
// @Param        per_page query int false "Items per page (max 100)"
// @Success      200  {object}  response.Envelope
// @Router       /admin/comments [get]
func (h *CommentHandler) ListAdmin(c *gin.Context) {
	page, perPage := pageParams(c)

	comments, total, err := h.commentUseCase.ListAdmin(persistent.CommentListFilter{
		Search:  c.Query("search"),
		Status:  c.Query("status"),
		PostID:  c.Query("post_id"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		h.logger.Error("Failed to list comments: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.Paginated(c, comments, response.NewPagination(page, perPage, total))
}

// Create godoc
// @Summary      Create comment
// @Description  Rejected with 422 when the post has comments disabled. Replies attach to top-level comments only.
// @Tags         admin-comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCommentRequest true "Comment data"
// @Success      201  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindingErrors(err))
		return
	}

	input := usecase.CreateCommentInput{
		PostID:       req.PostID,
		AuthorName:   req.AuthorName,
		AuthorEmail:  req.AuthorEmail,
		AuthorAvatar: req.AuthorAvatar,
		Content:      req.Content,
		ParentID:     req.ParentID,
		Status:       entity.CommentStatus(req.Status),
	}
	if userID := c.GetString("user_id"); userID != "" {
		input.UserID = &userID
	}

	comment, err := h.commentUseCase.Create(input)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Post not found")
		case errors.Is(err, usecase.ErrCommentsDisabled):
			response.Error(c, http.StatusUnprocessableEntity, "Comments are disabled for this post")
		case errors.Is(err, usecase.ErrInvalidParent):
			response.ValidationError(c, map[string]string{"parent_id": "The selected parent comment is invalid"})
		default:
			h.logger.Error("Failed to create comment: %v", err)
			response.Error(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	response.Created(c, "Comment created successfully", comment)
}

// Update godoc
// @Summary      Update comment
// @Tags         admin-comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Param        request body UpdateCommentRequest true "Fields to change"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /admin/comments/{id} [put]
func (h *CommentHandler) Update(c *gin.Context) {
	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindingErrors(err))
		return
	}

	input := usecase.UpdateCommentInput{
		Content:     req.Content,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
	}
	if req.Status != nil {
		status := entity.CommentStatus(*req.Status)
		input.Status = &status
	}

	comment, err := h.commentUseCase.Update(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Comment not found")
			return
		}
		h.logger.Error("Failed to update comment: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, "Comment updated successfully", comment)
}

// Delete godoc
// @Summary      Delete comment
// @Description  Removes the comment and its replies, keeping the post counter in step
// @Tags         admin-comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /admin/comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.commentUseCase.Delete(c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Comment not found")
			return
		}
		h.logger.Error("Failed to delete comment: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, "Comment deleted successfully", nil)
}
