package usecase

import (
	"context"
	"testing"

	"inkwell/internal/entity"
	"inkwell/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newTaxonomyUseCaseForTest(categoryRepo *MockCategoryRepository, tagRepo *MockTagRepository) TaxonomyUseCase {
	return NewTaxonomyUseCase(categoryRepo, tagRepo, nil, logger.New())
}

func TestCreateCategory_DefaultColor(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	tagRepo := new(MockTagRepository)
	uc := newTaxonomyUseCaseForTest(categoryRepo, tagRepo)

	categoryRepo.On("NameOrSlugExists", "Tech News", "tech-news", "").Return(false, nil)
	categoryRepo.On("Create", mock.AnythingOfType("*entity.Category")).Return(nil)

	category, err := uc.CreateCategory(context.Background(), CategoryInput{Name: "Tech News"})

	assert.NoError(t, err)
	assert.Equal(t, "tech-news", category.Slug)
	assert.Equal(t, entity.DefaultColor, category.Color)
	assert.True(t, category.IsActive)
}

func TestCreateCategory_NameTaken(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	tagRepo := new(MockTagRepository)
	uc := newTaxonomyUseCaseForTest(categoryRepo, tagRepo)

	categoryRepo.On("NameOrSlugExists", "Tech", "tech", "").Return(true, nil)

	_, err := uc.CreateCategory(context.Background(), CategoryInput{Name: "Tech"})

	assert.ErrorIs(t, err, ErrNameTaken)
	categoryRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestDeleteCategory_InUse(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	tagRepo := new(MockTagRepository)
	uc := newTaxonomyUseCaseForTest(categoryRepo, tagRepo)

	categoryRepo.On("GetByID", "cat-1").Return(&entity.Category{ID: "cat-1", Name: "Tech"}, nil)
	categoryRepo.On("PostCount", "cat-1").Return(int64(3), nil)

	err := uc.DeleteCategory(context.Background(), "cat-1")

	var inUse *InUseError
	assert.ErrorAs(t, err, &inUse)
	assert.Equal(t, int64(3), inUse.Count)
	categoryRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestDeleteCategory_Empty(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	tagRepo := new(MockTagRepository)
	uc := newTaxonomyUseCaseForTest(categoryRepo, tagRepo)

	categoryRepo.On("GetByID", "cat-1").Return(&entity.Category{ID: "cat-1"}, nil)
	categoryRepo.On("PostCount", "cat-1").Return(int64(0), nil)
	categoryRepo.On("Delete", "cat-1").Return(nil)

	err := uc.DeleteCategory(context.Background(), "cat-1")

	assert.NoError(t, err)
	categoryRepo.AssertCalled(t, "Delete", "cat-1")
}

func TestDeleteTag_InUse(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	tagRepo := new(MockTagRepository)
	uc := newTaxonomyUseCaseForTest(categoryRepo, tagRepo)

	tagRepo.On("GetByID", "tag-1").Return(&entity.Tag{ID: "tag-1", Name: "golang"}, nil)
	tagRepo.On("PostCount", "tag-1").Return(int64(7), nil)

	err := uc.DeleteTag(context.Background(), "tag-1")

	var inUse *InUseError
	assert.ErrorAs(t, err, &inUse)
	assert.Equal(t, int64(7), inUse.Count)
}

func TestGetCategory_NotFound(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	tagRepo := new(MockTagRepository)
	uc := newTaxonomyUseCaseForTest(categoryRepo, tagRepo)

	categoryRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.GetCategory("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
