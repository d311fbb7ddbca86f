package usecase

import (
	"testing"

	"inkwell/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestAuthorCreate_EmailOrUsernameTaken(t *testing.T) {
	authorRepo := new(MockAuthorRepository)
	uc := NewAuthorUseCase(authorRepo)

	authorRepo.On("EmailOrUsernameExists", "jane@example.com", "janedoe", "").Return(true, nil)

	_, err := uc.Create(AuthorInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Username:  "janedoe",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	authorRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthorCreate_DefaultsActive(t *testing.T) {
	authorRepo := new(MockAuthorRepository)
	uc := NewAuthorUseCase(authorRepo)

	authorRepo.On("EmailOrUsernameExists", "jane@example.com", "janedoe", "").Return(false, nil)
	authorRepo.On("Create", mock.AnythingOfType("*entity.Author")).Return(nil)

	author, err := uc.Create(AuthorInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Username:  "janedoe",
	})

	assert.NoError(t, err)
	assert.True(t, author.IsActive)
	assert.False(t, author.IsFeatured)
}

func TestAuthorUpdate_EmailChangeChecksUniqueness(t *testing.T) {
	authorRepo := new(MockAuthorRepository)
	uc := NewAuthorUseCase(authorRepo)

	existing := &entity.Author{
		ID:       "author-1",
		Email:    "old@example.com",
		Username: "janedoe",
	}
	authorRepo.On("GetByID", "author-1").Return(existing, nil)
	authorRepo.On("EmailOrUsernameExists", "new@example.com", "janedoe", "author-1").Return(false, nil)
	authorRepo.On("Update", mock.AnythingOfType("*entity.Author")).Return(nil)

	author, err := uc.Update("author-1", AuthorInput{Email: "new@example.com"})

	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", author.Email)
	assert.Equal(t, "janedoe", author.Username)
}

func TestAuthorDelete_BlockedWhilePostsExist(t *testing.T) {
	authorRepo := new(MockAuthorRepository)
	uc := NewAuthorUseCase(authorRepo)

	authorRepo.On("GetByID", "author-1").Return(&entity.Author{ID: "author-1"}, nil)
	authorRepo.On("PostCount", "author-1").Return(int64(5), nil)

	err := uc.Delete("author-1")

	var inUse *InUseError
	assert.ErrorAs(t, err, &inUse)
	assert.Equal(t, int64(5), inUse.Count)
	authorRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestAuthorGet_NotFound(t *testing.T) {
	authorRepo := new(MockAuthorRepository)
	uc := NewAuthorUseCase(authorRepo)

	authorRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.Get("missing")

	assert.ErrorIs(t, err, ErrNotFound)
}
