package http

import (
	"errors"
	"net/http"

	"inkwell/internal/entity"
	"inkwell/internal/usecase"
	"inkwell/pkg/logger"
	"inkwell/pkg/response"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	interactionUseCase usecase.InteractionUseCase
	logger             *logger.Logger
}

func NewInteractionHandler(interactionUseCase usecase.InteractionUseCase, log *logger.Logger) *InteractionHandler {
	return &InteractionHandler{
		interactionUseCase: interactionUseCase,
		logger:             log,
	}
}

type LikeRequest struct {
	TargetKind string `json:"target_kind" binding:"required,oneof=post comment"`
	TargetID   string `json:"target_id" binding:"required,uuid"`
}

type SaveRequest struct {
	PostID string `json:"post_id" binding:"required,uuid"`
}

// ToggleLike godoc
// @Summary      Toggle a like
// @Description  Likes the target if not yet liked by the user, otherwise removes the like
// @Tags         likes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body LikeRequest true "Like target"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /likes/toggle [post]
func (h *InteractionHandler) ToggleLike(c *gin.Context) {
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindingErrors(err))
		return
	}

	liked, err := h.interactionUseCase.ToggleLike(
		c.GetString("user_id"),
		entity.LikeTargetKind(req.TargetKind),
		req.TargetID,
	)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Target not found")
			return
		}
		h.logger.Error("Failed to toggle like: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	message := "Liked"
	if !liked {
		message = "Unliked"
	}
	response.OK(c, message, gin.H{"liked": liked})
}

// CheckLike godoc
// @Summary      Check a like
// @Description  Whether the current user has liked the target
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        target_kind query string true "Target kind" Enums(post, comment)
// @Param        target_id query string true "Target ID"
// @Success      200  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /likes/check [get]
func (h *InteractionHandler) CheckLike(c *gin.Context) {
	kind, targetID, ok := likeTargetParams(c)
	if !ok {
		return
	}

	liked, err := h.interactionUseCase.IsLiked(c.GetString("user_id"), kind, targetID)
	if err != nil {
		h.logger.Error("Failed to check like: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, "", gin.H{"liked": liked})
}

// LikeCount godoc
// @Summary      Count likes
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        target_kind query string true "Target kind" Enums(post, comment)
// @Param        target_id query string true "Target ID"
// @Success      200  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /likes/count [get]
func (h *InteractionHandler) LikeCount(c *gin.Context) {
	kind, targetID, ok := likeTargetParams(c)
	if !ok {
		return
	}

	count, err := h.interactionUseCase.LikeCount(kind, targetID)
	if err != nil {
		h.logger.Error("Failed to count likes: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, "", gin.H{"count": count})
}

// ListSaves godoc
// @Summary      List saved posts
// @Description  The current user's saved posts, newest first
// @Tags         saves
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        per_page query int false "Items per page (max 100)"
// @Success      200  {object}  response.Envelope
// @Router       /saves [get]
func (h *InteractionHandler) ListSaves(c *gin.Context) {
	page, perPage := pageParams(c)

	saves, total, err := h.interactionUseCase.ListSaves(c.GetString("user_id"), page, perPage)
	if err != nil {
		h.logger.Error("Failed to list saves: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.Paginated(c, saves, response.NewPagination(page, perPage, total))
}

// ToggleSave godoc
// @Summary      Toggle a save
// @Description  Saves the post for the user if not yet saved, otherwise removes the save
// @Tags         saves
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SaveRequest true "Post to save"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /saves/toggle [post]
func (h *InteractionHandler) ToggleSave(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindingErrors(err))
		return
	}

	saved, err := h.interactionUseCase.ToggleSave(c.GetString("user_id"), req.PostID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Post not found")
			return
		}
		h.logger.Error("Failed to toggle save: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	message := "Saved"
	if !saved {
		message = "Removed from saved"
	}
	response.OK(c, message, gin.H{"saved": saved})
}

// CheckSave godoc
// @Summary      Check a save
// @Description  Whether the current user has saved the post
// @Tags         saves
// @Produce      json
// @Security     BearerAuth
// @Param        post_id query string true "Post ID"
// @Success      200  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /saves/check [get]
func (h *InteractionHandler) CheckSave(c *gin.Context) {
	postID := c.Query("post_id")
	if postID == "" {
		response.ValidationError(c, map[string]string{"post_id": "The post_id field is required"})
		return
	}

	saved, err := h.interactionUseCase.IsSaved(c.GetString("user_id"), postID)
	if err != nil {
		h.logger.Error("Failed to check save: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, "", gin.H{"saved": saved})
}

// DeleteSave godoc
// @Summary      Delete a save (admin)
// @Tags         saves
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Save ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /admin/saves/{id} [delete]
func (h *InteractionHandler) DeleteSave(c *gin.Context) {
	if err := h.interactionUseCase.DeleteSave(c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Save not found")
			return
		}
		h.logger.Error("Failed to delete save: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, "Save deleted successfully", nil)
}

func likeTargetParams(c *gin.Context) (entity.LikeTargetKind, string, bool) {
	kind := entity.LikeTargetKind(c.Query("target_kind"))
	targetID := c.Query("target_id")

	errs := make(map[string]string)
	if !kind.Valid() {
		errs["target_kind"] = "The target_kind field must be one of: post comment"
	}
	if targetID == "" {
		errs["target_id"] = "The target_id field is required"
	}
	if len(errs) > 0 {
		response.ValidationError(c, errs)
		return "", "", false
	}

	return kind, targetID, true
}
