package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/cache"
	"inkwell/pkg/logger"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Cache keys invalidated when post writes change derived counts.
const (
	CacheKeyCategories = "categories:active"
	CacheKeyTags       = "tags:active"
)

// wordsPerMinute is the reading speed used to estimate read_time when
// the caller does not supply one.
const wordsPerMinute = 200

var postSortColumns = map[string]bool{
	"created_at":   true,
	"published_at": true,
	"title":        true,
	"views_count":  true,
	"likes_count":  true,
}

type AdminPostFilter struct {
	CategoryID string
	Status     string
	Search     string
	SortBy     string
	SortDesc   bool
	Page       int
	PerPage    int
}

type PublicPostFilter struct {
	CategoryID   string
	Search       string
	FeaturedOnly bool
	TrendingOnly bool
	Page         int
	PerPage      int
}

type CreatePostInput struct {
	Title           string
	Excerpt         string
	Content         string
	FeaturedImage   string
	ImagePosition   *float64
	ImageScale      *float64
	CategoryID      string
	AuthorID        string
	Status          entity.PostStatus
	PublishedAt     *time.Time
	ReadTime        int
	IsFeatured      bool
	IsTrending      bool
	AllowComments   bool
	MetaTitle       string
	MetaDescription string
	Tags            []string
}

// UpdatePostInput carries only the fields present in the request; nil
// means "leave unchanged".
type UpdatePostInput struct {
	Title           *string
	Excerpt         *string
	Content         *string
	FeaturedImage   *string
	ImagePosition   *float64
	ImageScale      *float64
	CategoryID      *string
	AuthorID        *string
	Status          *entity.PostStatus
	PublishedAt     *time.Time
	ReadTime        *int
	IsFeatured      *bool
	IsTrending      *bool
	AllowComments   *bool
	MetaTitle       *string
	MetaDescription *string
	Tags            []string
	SyncTags        bool
}

type PostUseCase interface {
	ListAdmin(filter AdminPostFilter) ([]*entity.Post, int64, error)
	ListPublic(filter PublicPostFilter) ([]*entity.Post, int64, error)
	GetByID(id string) (*entity.Post, error)
	GetBySlug(s string) (*entity.Post, error)
	Create(ctx context.Context, input CreatePostInput) (*entity.Post, error)
	Update(ctx context.Context, id string, input UpdatePostInput) (*entity.Post, error)
	Delete(ctx context.Context, id string) error
}

type postUseCase struct {
	postRepo     persistent.PostRepository
	categoryRepo persistent.CategoryRepository
	cache        *cache.Cache
	logger       *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	categoryRepo persistent.CategoryRepository,
	responseCache *cache.Cache,
	log *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		cache:        responseCache,
		logger:       log,
	}
}

func (uc *postUseCase) ListAdmin(filter AdminPostFilter) ([]*entity.Post, int64, error) {
	sortBy := filter.SortBy
	sortDesc := filter.SortDesc
	if !postSortColumns[sortBy] {
		sortBy = "created_at"
		sortDesc = true
	}

	return uc.postRepo.List(persistent.PostListFilter{
		CategoryID: filter.CategoryID,
		Status:     filter.Status,
		Search:     filter.Search,
		SortBy:     sortBy,
		SortDesc:   sortDesc,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	})
}

func (uc *postUseCase) ListPublic(filter PublicPostFilter) ([]*entity.Post, int64, error) {
	return uc.postRepo.List(persistent.PostListFilter{
		CategoryID:    filter.CategoryID,
		Search:        filter.Search,
		FeaturedOnly:  filter.FeaturedOnly,
		TrendingOnly:  filter.TrendingOnly,
		PublishedOnly: true,
		SortBy:        "published_at",
		SortDesc:      true,
		Page:          filter.Page,
		PerPage:       filter.PerPage,
	})
}

// GetByID increments the view counter on every call before returning
// the post. There is no per-viewer deduplication.
func (uc *postUseCase) GetByID(id string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := uc.postRepo.IncrementViews(post.ID); err != nil {
		uc.logger.Error("Failed to increment views for post %s: %v", post.ID, err)
	} else {
		post.ViewsCount++
	}

	return post, nil
}

func (uc *postUseCase) GetBySlug(s string) (*entity.Post, error) {
	post, err := uc.postRepo.GetBySlug(s)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := uc.postRepo.IncrementViews(post.ID); err != nil {
		uc.logger.Error("Failed to increment views for post %s: %v", post.ID, err)
	} else {
		post.ViewsCount++
	}

	return post, nil
}

func estimateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := words / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func tagEntities(names []string) []entity.Tag {
	tags := make([]entity.Tag, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tags = append(tags, entity.Tag{
			Name:     name,
			Slug:     slug.Make(name),
			Color:    entity.DefaultColor,
			IsActive: true,
		})
	}
	return tags
}

func (uc *postUseCase) Create(ctx context.Context, input CreatePostInput) (*entity.Post, error) {
	if _, err := uc.categoryRepo.GetByID(input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to check category: %w", err)
	}

	postSlug := slug.Make(input.Title)
	taken, err := uc.postRepo.SlugExists(postSlug, "")
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if taken {
		return nil, ErrSlugTaken
	}

	readTime := input.ReadTime
	if readTime == 0 {
		readTime = estimateReadTime(input.Content)
	}

	post := &entity.Post{
		Title:           input.Title,
		Slug:            postSlug,
		Excerpt:         input.Excerpt,
		Content:         input.Content,
		FeaturedImage:   input.FeaturedImage,
		ImagePosition:   input.ImagePosition,
		ImageScale:      input.ImageScale,
		CategoryID:      input.CategoryID,
		AuthorID:        input.AuthorID,
		Status:          input.Status,
		PublishedAt:     input.PublishedAt,
		ReadTime:        readTime,
		IsFeatured:      input.IsFeatured,
		IsTrending:      input.IsTrending,
		AllowComments:   input.AllowComments,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
	}

	if post.Status == entity.PostStatusPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := uc.postRepo.Create(post, tagEntities(input.Tags)); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	uc.invalidateListCaches(ctx)

	return post, nil
}

func (uc *postUseCase) Update(ctx context.Context, id string, input UpdatePostInput) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Title != nil && *input.Title != post.Title {
		post.Title = *input.Title
		newSlug := slug.Make(*input.Title)
		taken, err := uc.postRepo.SlugExists(newSlug, post.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
		if taken {
			return nil, ErrSlugTaken
		}
		post.Slug = newSlug
	}
	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.FeaturedImage != nil {
		post.FeaturedImage = *input.FeaturedImage
	}
	if input.ImagePosition != nil {
		post.ImagePosition = input.ImagePosition
	}
	if input.ImageScale != nil {
		post.ImageScale = input.ImageScale
	}
	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.GetByID(*input.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, fmt.Errorf("failed to check category: %w", err)
		}
		post.CategoryID = *input.CategoryID
	}
	if input.AuthorID != nil {
		post.AuthorID = *input.AuthorID
	}
	if input.Status != nil {
		post.Status = *input.Status
		if post.Status == entity.PostStatusPublished && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
	}
	if input.PublishedAt != nil {
		post.PublishedAt = input.PublishedAt
	}
	if input.ReadTime != nil {
		post.ReadTime = *input.ReadTime
	}
	if input.IsFeatured != nil {
		post.IsFeatured = *input.IsFeatured
	}
	if input.IsTrending != nil {
		post.IsTrending = *input.IsTrending
	}
	if input.AllowComments != nil {
		post.AllowComments = *input.AllowComments
	}
	if input.MetaTitle != nil {
		post.MetaTitle = *input.MetaTitle
	}
	if input.MetaDescription != nil {
		post.MetaDescription = *input.MetaDescription
	}

	if err := uc.postRepo.Update(post, tagEntities(input.Tags), input.SyncTags); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	uc.invalidateListCaches(ctx)

	updated, err := uc.postRepo.GetByID(post.ID)
	if err != nil {
		return post, nil
	}
	return updated, nil
}

func (uc *postUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.postRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}

	uc.invalidateListCaches(ctx)
	return nil
}

func (uc *postUseCase) invalidateListCaches(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Forget(ctx, CacheKeyCategories, CacheKeyTags); err != nil {
		uc.logger.Warn("Failed to invalidate list caches: %v", err)
	}
}
