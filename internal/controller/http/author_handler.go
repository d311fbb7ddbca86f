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

type AuthorHandler struct {
	authorUseCase usecase.AuthorUseCase
	logger        *logger.Logger
}

func NewAuthorHandler(authorUseCase usecase.AuthorUseCase, log *logger.Logger) *AuthorHandler {
	return &AuthorHandler{
		authorUseCase: authorUseCase,
		logger:        log,
	}
}

type AuthorRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=255"`
	LastName    string `json:"last_name" binding:"required,max=255"`
	Email       string `json:"email" binding:"required,email"`
	Username    string `json:"username" binding:"required,max=255"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatar_url" binding:"omitempty,url"`
	Title       string `json:"title"`
	Expertise   string `json:"expertise"`
	Location    string `json:"location"`
	TwitterURL  string `json:"twitter_url" binding:"omitempty,url"`
	LinkedInURL string `json:"linkedin_url" binding:"omitempty,url"`
	WebsiteURL  string `json:"website_url" binding:"omitempty,url"`
	IsActive    *bool  `json:"is_active"`
	IsFeatured  *bool  `json:"is_featured"`
}

// List godoc
// @Summary      List authors
// @Description  Active authors ordered by name. Pass all=true (admin) for inactive ones too.
// @Tags         authors
// @Produce      json
// @Param        all query bool false "Include inactive authors"
// @Success      200  {object}  response.Envelope
// @Router       /authors [get]
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.authorUseCase.List(c.Query("all") != "true")
	if err != nil {
		h.logger.Error("Failed to list authors: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, "", authors)
}

// Get godoc
// @Summary      Get author
// @Tags         authors
// @Produce      json
// @Param        id path string true "Author ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /authors/{id} [get]
func (h *AuthorHandler) Get(c *gin.Context) {
	author, err := h.authorUseCase.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Author not found")
			return
		}
		h.logger.Error("Failed to get author: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, "", author)
}

// Create godoc
// @Summary      Create author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AuthorRequest true "Author data"
// @Success      201  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /admin/authors [post]
func (h *AuthorHandler) Create(c *gin.Context) {
	var req AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindingErrors(err))
		return
	}

	author, err := h.authorUseCase.Create(authorInput(req))
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			response.ValidationError(c, map[string]string{"email": "The email or username has already been taken"})
			return
		}
		h.logger.Error("Failed to create author: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.Created(c, "Author created successfully", author)
}

// Update godoc
// @Summary      Update author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Author ID"
// @Param        request body AuthorRequest true "Author data"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /admin/authors/{id} [put]
func (h *AuthorHandler) Update(c *gin.Context) {
	var req AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindingErrors(err))
		return
	}

	author, err := h.authorUseCase.Update(c.Param("id"), authorInput(req))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Author not found")
		case errors.Is(err, usecase.ErrEmailTaken):
			response.ValidationError(c, map[string]string{"email": "The email or username has already been taken"})
		default:
			h.logger.Error("Failed to update author: %v", err)
			response.Error(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	response.OK(c, "Author updated successfully", author)
}

// Delete godoc
// @Summary      Delete author
// @Description  Fails with 422 while posts still reference the author
// @Tags         authors
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Author ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /admin/authors/{id} [delete]
func (h *AuthorHandler) Delete(c *gin.Context) {
	err := h.authorUseCase.Delete(c.Param("id"))
	if err != nil {
		var inUse *usecase.InUseError
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Author not found")
		case errors.As(err, &inUse):
			response.Error(c, http.StatusUnprocessableEntity,
				fmt.Sprintf("Cannot delete author: %d post(s) are using it", inUse.Count))
		default:
			h.logger.Error("Failed to delete author: %v", err)
			response.Error(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	response.OK(c, "Author deleted successfully", nil)
}

func authorInput(req AuthorRequest) usecase.AuthorInput {
	return usecase.AuthorInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Username:    req.Username,
		Bio:         req.Bio,
		AvatarURL:   req.AvatarURL,
		Title:       req.Title,
		Expertise:   req.Expertise,
		Location:    req.Location,
		TwitterURL:  req.TwitterURL,
		LinkedInURL: req.LinkedInURL,
		WebsiteURL:  req.WebsiteURL,
		IsActive:    req.IsActive,
		IsFeatured:  req.IsFeatured,
	}
}
