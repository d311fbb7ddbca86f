package usecase

import (
	"context"
	"errors"
	"fmt"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/cache"
	"inkwell/pkg/logger"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type CategoryInput struct {
	Name        string
	Description string
	Color       string
	IsActive    *bool
	SortOrder   *int
}

type TagInput struct {
	Name        string
	Description string
	Color       string
	IsActive    *bool
}

// InUseError reports how many posts block a delete, so the handler can
// surface the count to the operator.
type InUseError struct {
	Resource string
	Count    int64
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("cannot delete %s: %d post(s) reference it", e.Resource, e.Count)
}

type TaxonomyUseCase interface {
	ListCategories(ctx context.Context, activeOnly bool) ([]*entity.Category, error)
	GetCategory(id string) (*entity.Category, error)
	CreateCategory(ctx context.Context, input CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id string, input CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListTags(ctx context.Context, activeOnly bool) ([]*entity.Tag, error)
	GetTag(id string) (*entity.Tag, error)
	CreateTag(ctx context.Context, input TagInput) (*entity.Tag, error)
	UpdateTag(ctx context.Context, id string, input TagInput) (*entity.Tag, error)
	DeleteTag(ctx context.Context, id string) error
}

type taxonomyUseCase struct {
	categoryRepo persistent.CategoryRepository
	tagRepo      persistent.TagRepository
	cache        *cache.Cache
	logger       *logger.Logger
}

func NewTaxonomyUseCase(
	categoryRepo persistent.CategoryRepository,
	tagRepo persistent.TagRepository,
	responseCache *cache.Cache,
	log *logger.Logger,
) TaxonomyUseCase {
	return &taxonomyUseCase{
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		cache:        responseCache,
		logger:       log,
	}
}

func (uc *taxonomyUseCase) ListCategories(ctx context.Context, activeOnly bool) ([]*entity.Category, error) {
	if !activeOnly {
		return uc.categoryRepo.ListAll()
	}

	if uc.cache != nil {
		var cached []*entity.Category
		if err := uc.cache.Get(ctx, CacheKeyCategories, &cached); err == nil {
			return cached, nil
		}
	}

	categories, err := uc.categoryRepo.ListActive()
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, CacheKeyCategories, categories); err != nil {
			uc.logger.Warn("Failed to cache categories: %v", err)
		}
	}

	return categories, nil
}

func (uc *taxonomyUseCase) GetCategory(id string) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return category, nil
}

func (uc *taxonomyUseCase) CreateCategory(ctx context.Context, input CategoryInput) (*entity.Category, error) {
	categorySlug := slug.Make(input.Name)

	taken, err := uc.categoryRepo.NameOrSlugExists(input.Name, categorySlug, "")
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if taken {
		return nil, ErrNameTaken
	}

	category := &entity.Category{
		Name:        input.Name,
		Slug:        categorySlug,
		Description: input.Description,
		Color:       input.Color,
		IsActive:    true,
	}
	if category.Color == "" {
		category.Color = entity.DefaultColor
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}

	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	uc.forget(ctx, CacheKeyCategories)
	return category, nil
}

func (uc *taxonomyUseCase) UpdateCategory(ctx context.Context, id string, input CategoryInput) (*entity.Category, error) {
	category, err := uc.GetCategory(id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" && input.Name != category.Name {
		newSlug := slug.Make(input.Name)
		taken, err := uc.categoryRepo.NameOrSlugExists(input.Name, newSlug, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check category name: %w", err)
		}
		if taken {
			return nil, ErrNameTaken
		}
		category.Name = input.Name
		category.Slug = newSlug
	}
	if input.Description != "" {
		category.Description = input.Description
	}
	if input.Color != "" {
		category.Color = input.Color
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}

	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	uc.forget(ctx, CacheKeyCategories)
	return category, nil
}

func (uc *taxonomyUseCase) DeleteCategory(ctx context.Context, id string) error {
	if _, err := uc.GetCategory(id); err != nil {
		return err
	}

	count, err := uc.categoryRepo.PostCount(id)
	if err != nil {
		return fmt.Errorf("failed to count category posts: %w", err)
	}
	if count > 0 {
		return &InUseError{Resource: "category", Count: count}
	}

	if err := uc.categoryRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	uc.forget(ctx, CacheKeyCategories)
	return nil
}

func (uc *taxonomyUseCase) ListTags(ctx context.Context, activeOnly bool) ([]*entity.Tag, error) {
	if !activeOnly {
		return uc.tagRepo.ListAll()
	}

	if uc.cache != nil {
		var cached []*entity.Tag
		if err := uc.cache.Get(ctx, CacheKeyTags, &cached); err == nil {
			return cached, nil
		}
	}

	tags, err := uc.tagRepo.ListActive()
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, CacheKeyTags, tags); err != nil {
			uc.logger.Warn("Failed to cache tags: %v", err)
		}
	}

	return tags, nil
}

func (uc *taxonomyUseCase) GetTag(id string) (*entity.Tag, error) {
	tag, err := uc.tagRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return tag, nil
}

func (uc *taxonomyUseCase) CreateTag(ctx context.Context, input TagInput) (*entity.Tag, error) {
	tagSlug := slug.Make(input.Name)

	taken, err := uc.tagRepo.NameOrSlugExists(input.Name, tagSlug, "")
	if err != nil {
		return nil, fmt.Errorf("failed to check tag name: %w", err)
	}
	if taken {
		return nil, ErrNameTaken
	}

	tag := &entity.Tag{
		Name:        input.Name,
		Slug:        tagSlug,
		Description: input.Description,
		Color:       input.Color,
		IsActive:    true,
	}
	if tag.Color == "" {
		tag.Color = entity.DefaultColor
	}
	if input.IsActive != nil {
		tag.IsActive = *input.IsActive
	}

	if err := uc.tagRepo.Create(tag); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	uc.forget(ctx, CacheKeyTags)
	return tag, nil
}

func (uc *taxonomyUseCase) UpdateTag(ctx context.Context, id string, input TagInput) (*entity.Tag, error) {
	tag, err := uc.GetTag(id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" && input.Name != tag.Name {
		newSlug := slug.Make(input.Name)
		taken, err := uc.tagRepo.NameOrSlugExists(input.Name, newSlug, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check tag name: %w", err)
		}
		if taken {
			return nil, ErrNameTaken
		}
		tag.Name = input.Name
		tag.Slug = newSlug
	}
	if input.Description != "" {
		tag.Description = input.Description
	}
	if input.Color != "" {
		tag.Color = input.Color
	}
	if input.IsActive != nil {
		tag.IsActive = *input.IsActive
	}

	if err := uc.tagRepo.Update(tag); err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}

	uc.forget(ctx, CacheKeyTags)
	return tag, nil
}

func (uc *taxonomyUseCase) DeleteTag(ctx context.Context, id string) error {
	if _, err := uc.GetTag(id); err != nil {
		return err
	}

	count, err := uc.tagRepo.PostCount(id)
	if err != nil {
		return fmt.Errorf("failed to count tag posts: %w", err)
	}
	if count > 0 {
		return &InUseError{Resource: "tag", Count: count}
	}

	if err := uc.tagRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	uc.forget(ctx, CacheKeyTags)
	return nil
}

func (uc *taxonomyUseCase) forget(ctx context.Context, keys ...string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Forget(ctx, keys...); err != nil {
		uc.logger.Warn("Failed to invalidate cache keys %v: %v", keys, err)
	}
}
