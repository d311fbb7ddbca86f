package http

import (
	"errors"
	"net/http"
	"time"

	"inkwell/internal/entity"
	"inkwell/internal/usecase"
	"inkwell/pkg/logger"
	"inkwell/pkg/response"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, log *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      log,
	}
}

type CreatePostRequest struct {
	Title           string     `json:"title" binding:"required,max=255"`
	Excerpt         string     `json:"excerpt" binding:"required,max=500"`
	Content         string     `json:"content" binding:"required"`
	FeaturedImage   string     `json:"featured_image"`
	ImagePosition   *float64   `json:"image_position"`
	ImageScale      *float64   `json:"image_scale"`
	CategoryID      string     `json:"category_id" binding:"required,uuid"`
	AuthorID        string     `json:"author_id" binding:"required,uuid"`
	Status          string     `json:"status" binding:"omitempty,oneof=draft published scheduled"`
	PublishedAt     *time.Time `json:"published_at"`
	ReadTime        int        `json:"read_time"`
	IsFeatured      bool       `json:"is_featured"`
	IsTrending      bool       `json:"is_trending"`
	AllowComments   *bool      `json:"allow_comments"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
	Tags            []string   `json:"tags"`
}

type UpdatePostRequest struct {
	Title           *string    `json:"title" binding:"omitempty,max=255"`
	Excerpt         *string    `json:"excerpt" binding:"omitempty,max=500"`
	Content         *string    `json:"content"`
	FeaturedImage   *string    `json:"featured_image"`
	ImagePosition   *float64   `json:"image_position"`
	ImageScale      *float64   `json:"image_scale"`
	CategoryID      *string    `json:"category_id" binding:"omitempty,uuid"`
	AuthorID        *string    `json:"author_id" binding:"omitempty,uuid"`
	Status          *string    `json:"status" binding:"omitempty,oneof=draft published scheduled"`
	PublishedAt     *time.Time `json:"published_at"`
	ReadTime        *int       `json:"read_time"`
	IsFeatured      *bool      `json:"is_featured"`
	IsTrending      *bool      `json:"is_trending"`
	AllowComments   *bool      `json:"allow_comments"`
	MetaTitle       *string    `json:"meta_title"`
	MetaDescription *string    `json:"meta_description"`
	Tags            []string   `json:"tags"`
}

// ListPublic godoc
// @Summary      List published posts
// @Description  Published posts with optional category, search, featured and trending filters
// @Tags         posts
// @Produce      json
// @Param        category_id query string false "Filter by category"
// @Param        search query string false "Search in title and content"
// @Param        featured query bool false "Only featured posts"
// @Param        trending query bool false "Only trending posts"
// @Param        page query int false "Page number"
// @Param        per_page query int false "Items per page (max 100)"
// @Success      200  {object}  response.Envelope
// @Router       /posts [get]
func (h *PostHandler) ListPublic(c *gin.Context) {
	page, perPage := pageParams(c)

	posts, total, err := h.postUseCase.ListPublic(usecase.PublicPostFilter{
		CategoryID:   c.Query("category_id"),
		Search:       c.Query("search"),
		FeaturedOnly: c.Query("featured") == "true",
		TrendingOnly: c.Query("trending") == "true",
		Page:         page,
		PerPage:      perPage,
	})
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.Paginated(c, posts, response.NewPagination(page, perPage, total))
}

// GetByID godoc
// @Summary      Get post by id
// @Description  Post detail with approved comments. Each call counts a view.
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /posts/{id} [get]
func (h *PostHandler) GetByID(c *gin.Context) {
	post, err := h.postUseCase.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Post not found")
			return
		}
		h.logger.Error("Failed to get post: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, "", post)
}

// GetBySlug godoc
// @Summary      Get post by slug
// @Description  Post detail with approved comments. Each call counts a view.
// @Tags         posts
// @Produce      json
// @Param        slug path string true "Post slug"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /posts/slug/{slug} [get]
func (h *PostHandler) GetBySlug(c *gin.Context) {
	post, err := h.postUseCase.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Post not found")
			return
		}
		h.logger.Error("Failed to get post by slug: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, "", post)
}

// ListAdmin godoc
// @Summary      List posts (admin)
// @Description  All posts regardless of status, with filtering and sorting
// @Tags         admin-posts
// @Produce      json
// @Security     BearerAuth
// @Param        category_id query string false "Filter by category"
// @Param        status query string false "Filter by status" Enums(draft, published, scheduled)
// @Param        search query string false "Search in title and content"
// @Param        sort_by query string false "Sort column" Enums(created_at, published_at, title, views_count, likes_count)
// @Param        sort_desc query bool false "Sort descending"
// @Param        page query int false "Page number"
// @Param        per_page query int false "Items per page (max 100)"
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Router       /admin/posts [get]
func (h *PostHandler) ListAdmin(c *gin.Context) {
	page, perPage := pageParams(c)

	posts, total, err := h.postUseCase.ListAdmin(usecase.AdminPostFilter{
		CategoryID: c.Query("category_id"),
		Status:     c.Query("status"),
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortDesc:   c.DefaultQuery("sort_desc", "true") == "true",
		Page:       page,
		PerPage:    perPage,
	})
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.Paginated(c, posts, response.NewPagination(page, perPage, total))
}

// GetAdmin godoc
// @Summary      Get post (admin)
// @Tags         admin-posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /admin/posts/{id} [get]
func (h *PostHandler) GetAdmin(c *gin.Context) {
	h.GetByID(c)
}

// Create godoc
// @Summary      Create post
// @Tags         admin-posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePostRequest true "Post data"
// @Success      201  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /admin/posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindingErrors(err))
		return
	}

	status := entity.PostStatus(req.Status)
	if req.Status == "" {
		status = entity.PostStatusDraft
	}

	allowComments := true
	if req.AllowComments != nil {
		allowComments = *req.AllowComments
	}

	post, err := h.postUseCase.Create(c.Request.Context(), usecase.CreatePostInput{
		Title:           req.Title,
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		FeaturedImage:   req.FeaturedImage,
		ImagePosition:   req.ImagePosition,
		ImageScale:      req.ImageScale,
		CategoryID:      req.CategoryID,
		AuthorID:        req.AuthorID,
		Status:          status,
		PublishedAt:     req.PublishedAt,
		ReadTime:        req.ReadTime,
		IsFeatured:      req.IsFeatured,
		IsTrending:      req.IsTrending,
		AllowComments:   allowComments,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Tags:            req.Tags,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCategoryNotFound):
			response.ValidationError(c, map[string]string{"category_id": "The selected category does not exist"})
		case errors.Is(err, usecase.ErrSlugTaken):
			response.ValidationError(c, map[string]string{"title": "A post with this title already exists"})
		default:
			h.logger.Error("Failed to create post: %v", err)
			response.Error(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	response.Created(c, "Post created successfully", post)
}

// Update godoc
// @Summary      Update post
// @Tags         admin-posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body UpdatePostRequest true "Fields to change"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /admin/posts/{id} [put]
func (h *PostHandler) Update(c *gin.Context) {
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindingErrors(err))
		return
	}

	input := usecase.UpdatePostInput{
		Title:           req.Title,
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		FeaturedImage:   req.FeaturedImage,
		ImagePosition:   req.ImagePosition,
		ImageScale:      req.ImageScale,
		CategoryID:      req.CategoryID,
		AuthorID:        req.AuthorID,
		PublishedAt:     req.PublishedAt,
		ReadTime:        req.ReadTime,
		IsFeatured:      req.IsFeatured,
		IsTrending:      req.IsTrending,
		AllowComments:   req.AllowComments,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Tags:            req.Tags,
		SyncTags:        req.Tags != nil,
	}
	if req.Status != nil {
		status := entity.PostStatus(*req.Status)
		input.Status = &status
	}

	post, err := h.postUseCase.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Post not found")
		case errors.Is(err, usecase.ErrCategoryNotFound):
			response.ValidationError(c, map[string]string{"category_id": "The selected category does not exist"})
		case errors.Is(err, usecase.ErrSlugTaken):
			response.ValidationError(c, map[string]string{"title": "A post with this title already exists"})
		default:
			h.logger.Error("Failed to update post: %v", err)
			response.Error(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	response.OK(c, "Post updated successfully", post)
}

// Delete godoc
// @Summary      Delete post
// @Description  Removes the post together with its comments, likes and saves
// @Tags         admin-posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /admin/posts/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.postUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Post not found")
			return
		}
		h.logger.Error("Failed to delete post: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, "Post deleted successfully", nil)
}
