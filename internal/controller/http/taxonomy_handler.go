package http

import (
	"errors"
	"fmt"
	"net/http"

	"inkwell/internal/usecase"
	"inkwell/pkg/logger"
	"inkwell/pkg/response"

	"github.com/gin-gonic/gin"
)

type TaxonomyHandler struct {
	taxonomyUseCase usecase.TaxonomyUseCase
	logger          *logger.Logger
}

func NewTaxonomyHandler(taxonomyUseCase usecase.TaxonomyUseCase, log *logger.Logger) *TaxonomyHandler {
	return &TaxonomyHandler{
		taxonomyUseCase: taxonomyUseCase,
		logger:          log,
	}
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
	Color       string `json:"color" binding:"omitempty,hexcolor"`
	IsActive    *bool  `json:"is_active"`
	SortOrder   *int   `json:"sort_order"`
}

type TagRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
	Color       string `json:"color" binding:"omitempty,hexcolor"`
	IsActive    *bool  `json:"is_active"`
}

// ListCategories godoc
// @Summary      List categories
// @Description  Active categories with post counts. Pass all=true (admin) for inactive ones too.
// @Tags         categories
// @Produce      json
// @Param        all query bool false "Include inactive categories"
// @Success      200  {object}  response.Envelope
// @Router       /categories [get]
func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	activeOnly := c.Query("all") != "true"

	categories, err := h.taxonomyUseCase.ListCategories(c.Request.Context(), activeOnly)
	if err != nil {
		h.logger.Error("Failed to list categories: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, "", categories)
}

// GetCategory godoc
// @Summary      Get category
// @Tags         categories
// @Produce      json
// @Param        id path string true "Category ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /categories/{id} [get]
func (h *TaxonomyHandler) GetCategory(c *gin.Context) {
	category, err := h.taxonomyUseCase.GetCategory(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Category not found")
			return
		}
		h.logger.Error("Failed to get category: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, "", category)
}

// CreateCategory godoc
// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CategoryRequest true "Category data"
// @Success      201  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /admin/categories [post]
func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindingErrors(err))
		return
	}

	category, err := h.taxonomyUseCase.CreateCategory(c.Request.Context(), usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		IsActive:    req.IsActive,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrNameTaken) {
			response.ValidationError(c, map[string]string{"name": "The name has already been taken"})
			return
		}
		h.logger.Error("Failed to create category: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.Created(c, "Category created successfully", category)
}

// UpdateCategory godoc
// @Summary      Update category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Category ID"
// @Param        request body CategoryRequest true "Category data"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /admin/categories/{id} [put]
func (h *TaxonomyHandler) UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindingErrors(err))
		return
	}

	category, err := h.taxonomyUseCase.UpdateCategory(c.Request.Context(), c.Param("id"), usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		IsActive:    req.IsActive,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Category not found")
		case errors.Is(err, usecase.ErrNameTaken):
			response.ValidationError(c, map[string]string{"name": "The name has already been taken"})
		default:
			h.logger.Error("Failed to update category: %v", err)
			response.Error(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	response.OK(c, "Category updated successfully", category)
}

// DeleteCategory godoc
// @Summary      Delete category
// @Description  Fails with 422 while posts still reference the category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Category ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /admin/categories/{id} [delete]
func (h *TaxonomyHandler) DeleteCategory(c *gin.Context) {
	err := h.taxonomyUseCase.DeleteCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		var inUse *usecase.InUseError
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Category not found")
		case errors.As(err, &inUse):
			response.Error(c, http.StatusUnprocessableEntity,
				fmt.Sprintf("Cannot delete category: %d post(s) are using it", inUse.Count))
		default:
			h.logger.Error("Failed to delete category: %v", err)
			response.Error(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	response.OK(c, "Category deleted successfully", nil)
}

// ListTags godoc
// @Summary      List tags
// @Description  Active tags with post counts. Pass all=true (admin) for inactive ones too.
// @Tags         tags
// @Produce      json
// @Param        all query bool false "Include inactive tags"
// @Success      200  {object}  response.Envelope
// @Router       /tags [get]
func (h *TaxonomyHandler) ListTags(c *gin.Context) {
	activeOnly := c.Query("all") != "true"

	tags, err := h.taxonomyUseCase.ListTags(c.Request.Context(), activeOnly)
	if err != nil {
		h.logger.Error("Failed to list tags: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, "", tags)
}

// GetTag godoc
// @Summary      Get tag
// @Tags         tags
// @Produce      json
// @Param        id path string true "Tag ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /tags/{id} [get]
func (h *TaxonomyHandler) GetTag(c *gin.Context) {
	tag, err := h.taxonomyUseCase.GetTag(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Tag not found")
			return
		}
		h.logger.Error("Failed to get tag: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, "", tag)
}

// CreateTag godoc
// @Summary      Create tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TagRequest true "Tag data"
// @Success      201  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /admin/tags [post]
func (h *TaxonomyHandler) CreateTag(c *gin.Context) {
	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindingErrors(err))
		return
	}

	tag, err := h.taxonomyUseCase.CreateTag(c.Request.Context(), usecase.TagInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrNameTaken) {
			response.ValidationError(c, map[string]string{"name": "The name has already been taken"})
			return
		}
		h.logger.Error("Failed to create tag: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.Created(c, "Tag created successfully", tag)
}

// UpdateTag godoc
// @Summary      Update tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tag ID"
// @Param        request body TagRequest true "Tag data"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /admin/tags/{id} [put]
func (h *TaxonomyHandler) UpdateTag(c *gin.Context) {
	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindingErrors(err))
		return
	}

	tag, err := h.taxonomyUseCase.UpdateTag(c.Request.Context(), c.Param("id"), usecase.TagInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		IsActive:    req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Tag not found")
		case errors.Is(err, usecase.ErrNameTaken):
			response.ValidationError(c, map[string]string{"name": "The name has already been taken"})
		default:
			h.logger.Error("Failed to update tag: %v", err)
			response.Error(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	response.OK(c, "Tag updated successfully", tag)
}

// DeleteTag godoc
// @Summary      Delete tag
// @Description  Fails with 422 while posts still reference the tag
// @Tags         tags
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tag ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /admin/tags/{id} [delete]
func (h *TaxonomyHandler) DeleteTag(c *gin.Context) {
	err := h.taxonomyUseCase.DeleteTag(c.Request.Context(), c.Param("id"))
	if err != nil {
		var inUse *usecase.InUseError
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Tag not found")
		case errors.As(err, &inUse):
			response.Error(c, http.StatusUnprocessableEntity,
				fmt.Sprintf("Cannot delete tag: %d post(s) are using it", inUse.Count))
		default:
			h.logger.Error("Failed to delete tag: %v", err)
			response.Error(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	response.OK(c, "Tag deleted successfully", nil)
}
