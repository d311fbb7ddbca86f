package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"inkwell/internal/repo/persistent"
	"inkwell/internal/usecase"
	"inkwell/pkg/logger"
	"inkwell/pkg/response"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaUseCase usecase.MediaUseCase
	logger       *logger.Logger
}

func NewMediaHandler(mediaUseCase usecase.MediaUseCase, log *logger.Logger) *MediaHandler {
	return &MediaHandler{
		mediaUseCase: mediaUseCase,
		logger:       log,
	}
}

type UpdateMediaRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=255"`
	AltText  *string `json:"alt_text"`
	Caption  *string `json:"caption"`
	IsActive *bool   `json:"is_active"`
}

type BulkDestroyRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
}

// List godoc
// @Summary      List media
// @Description  Media library with search and MIME type filter
// @Tags         media
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Search name, alt text and caption"
// @Param        type query string false "MIME prefix filter (image, video, audio)"
// @Param        page query int false "Page number"
// @Param        per_page query int false "Items per page (max 100)"
// @Success      200  {object}  response.Envelope
// @Router       /media [get]
func (h *MediaHandler) List(c *gin.Context) {
	page, perPage := pageParams(c)

	items, total, err := h.mediaUseCase.List(persistent.MediaListFilter{
		Search:  c.Query("search"),
		Type:    c.Query("type"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		h.logger.Error("Failed to list media: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.Paginated(c, items, response.NewPagination(page, perPage, total))
}

// Get godoc
// @Summary      Get media
// @Tags         media
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Media ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /media/{id} [get]
func (h *MediaHandler) Get(c *gin.Context) {
	media, err := h.mediaUseCase.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Media not found")
			return
		}
		h.logger.Error("Failed to get media: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, "", media)
}

// Upload godoc
// @Summary      Upload media
// @Description  Stores the file and, for images, generates resized variants
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "File (max 10MB)"
// @Param        name formData string false "Display name (defaults to the filename)"
// @Param        alt_text formData string false "Alt text"
// @Param        caption formData string false "Caption"
// @Success      201  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /media/upload [post]
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.ValidationError(c, map[string]string{"file": "The file field is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open upload: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read upload: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	media, err := h.mediaUseCase.Upload(usecase.UploadMediaInput{
		Filename: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Data:     data,
		Name:     c.PostForm("name"),
		AltText:  c.PostForm("alt_text"),
		Caption:  c.PostForm("caption"),
	})
	if err != nil {
		if errors.Is(err, usecase.ErrFileTooLarge) {
			response.ValidationError(c, map[string]string{"file": "The file may not be greater than 10MB"})
			return
		}
		h.logger.Error("Failed to upload media: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.Created(c, "Media uploaded successfully", media)
}

// Update godoc
// @Summary      Update media metadata
// @Description  Only name, alt text, caption and active flag can change
// @Tags         media
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Media ID"
// @Param        request body UpdateMediaRequest true "Fields to change"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /media/{id} [put]
func (h *MediaHandler) Update(c *gin.Context) {
	var req UpdateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindingErrors(err))
		return
	}

	media, err := h.mediaUseCase.Update(c.Param("id"), usecase.UpdateMediaInput{
		Name:     req.Name,
		AltText:  req.AltText,
		Caption:  req.Caption,
		IsActive: req.IsActive,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Media not found")
			return
		}
		h.logger.Error("Failed to update media: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, "Media updated successfully", media)
}

// Delete godoc
// @Summary      Delete media
// @Description  Removes stored files first, then the record
// @Tags         media
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Media ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /media/{id} [delete]
func (h *MediaHandler) Delete(c *gin.Context) {
	if err := h.mediaUseCase.Delete(c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Media not found")
			return
		}
		h.logger.Error("Failed to delete media: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, "Media deleted successfully", nil)
}

// BulkDestroy godoc
// @Summary      Delete multiple media items
// @Tags         media
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body BulkDestroyRequest true "Media IDs"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /media/bulk-destroy [post]
func (h *MediaHandler) BulkDestroy(c *gin.Context) {
	var req BulkDestroyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindingErrors(err))
		return
	}

	deleted, err := h.mediaUseCase.BulkDelete(req.IDs)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "No matching media found")
			return
		}
		h.logger.Error("Failed to bulk delete media: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, fmt.Sprintf("%d media item(s) deleted", deleted), gin.H{"deleted": deleted})
}
