package usecase

import (
	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock implementation of persistent.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) List(filter persistent.PostListFilter) ([]*entity.Post, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) GetByID(id string) (*entity.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) GetBySlug(slug string) (*entity.Post, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) SlugExists(slug, excludeID string) (bool, error) {
	args := m.Called(slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) Create(post *entity.Post, tags []entity.Tag) error {
	args := m.Called(post, tags)
	return args.Error(0)
}

func (m *MockPostRepository) Update(post *entity.Post, tags []entity.Tag, syncTags bool) error {
	args := m.Called(post, tags, syncTags)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostRepository) IncrementViews(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostRepository) Exists(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

var _ persistent.PostRepository = (*MockPostRepository)(nil)

// MockCategoryRepository is a mock implementation of persistent.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListActive() ([]*entity.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListAll() ([]*entity.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id string) (*entity.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) NameOrSlugExists(name, slug, excludeID string) (bool, error) {
	args := m.Called(name, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Create(category *entity.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(category *entity.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCategoryRepository) PostCount(id string) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.CategoryRepository = (*MockCategoryRepository)(nil)

// MockTagRepository is a mock implementation of persistent.TagRepository
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) ListActive() ([]*entity.Tag, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Tag), args.Error(1)
}

func (m *MockTagRepository) ListAll() ([]*entity.Tag, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Tag), args.Error(1)
}

func (m *MockTagRepository) GetByID(id string) (*entity.Tag, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tag), args.Error(1)
}

func (m *MockTagRepository) NameOrSlugExists(name, slug, excludeID string) (bool, error) {
	args := m.Called(name, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTagRepository) Create(tag *entity.Tag) error {
	args := m.Called(tag)
	return args.Error(0)
}

func (m *MockTagRepository) Update(tag *entity.Tag) error {
	args := m.Called(tag)
	return args.Error(0)
}

func (m *MockTagRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTagRepository) PostCount(id string) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.TagRepository = (*MockTagRepository)(nil)

// MockCommentRepository is a mock implementation of persistent.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) ListForPost(postID string) ([]*entity.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListAdmin(filter persistent.CommentListFilter) ([]*entity.Comment, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) GetByID(id string) (*entity.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) Create(comment *entity.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Update(comment *entity.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.CommentRepository = (*MockCommentRepository)(nil)

// MockInteractionRepository is a mock implementation of persistent.InteractionRepository
type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) ToggleLike(userID string, kind entity.LikeTargetKind, targetID string) (bool, error) {
	args := m.Called(userID, kind, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) IsLiked(userID string, kind entity.LikeTargetKind, targetID string) (bool, error) {
	args := m.Called(userID, kind, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) LikeCount(kind entity.LikeTargetKind, targetID string) (int64, error) {
	args := m.Called(kind, targetID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInteractionRepository) ToggleSave(userID, postID string) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) IsSaved(userID, postID string) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) ListSaves(userID string, page, perPage int) ([]*entity.Save, int64, error) {
	args := m.Called(userID, page, perPage)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Save), args.Get(1).(int64), args.Error(2)
}

func (m *MockInteractionRepository) GetSave(id string) (*entity.Save, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Save), args.Error(1)
}

func (m *MockInteractionRepository) DeleteSave(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.InteractionRepository = (*MockInteractionRepository)(nil)

// MockMediaRepository is a mock implementation of persistent.MediaRepository
type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) List(filter persistent.MediaListFilter) ([]*entity.Media, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Media), args.Get(1).(int64), args.Error(2)
}

func (m *MockMediaRepository) GetByID(id string) (*entity.Media, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Media), args.Error(1)
}

func (m *MockMediaRepository) GetByIDs(ids []string) ([]*entity.Media, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Media), args.Error(1)
}

func (m *MockMediaRepository) Create(media *entity.Media) error {
	args := m.Called(media)
	return args.Error(0)
}

func (m *MockMediaRepository) Update(media *entity.Media) error {
	args := m.Called(media)
	return args.Error(0)
}

func (m *MockMediaRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMediaRepository) DeleteMany(ids []string) error {
	args := m.Called(ids)
	return args.Error(0)
}

var _ persistent.MediaRepository = (*MockMediaRepository)(nil)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(id, hashedPassword string) error {
	args := m.Called(id, hashedPassword)
	return args.Error(0)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockAuthorRepository is a mock implementation of persistent.AuthorRepository
type MockAuthorRepository struct {
	mock.Mock
}

func (m *MockAuthorRepository) ListActive() ([]*entity.Author, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Author), args.Error(1)
}

func (m *MockAuthorRepository) ListAll() ([]*entity.Author, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Author), args.Error(1)
}

func (m *MockAuthorRepository) GetByID(id string) (*entity.Author, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Author), args.Error(1)
}

func (m *MockAuthorRepository) EmailOrUsernameExists(email, username, excludeID string) (bool, error) {
	args := m.Called(email, username, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthorRepository) Create(author *entity.Author) error {
	args := m.Called(author)
	return args.Error(0)
}

func (m *MockAuthorRepository) Update(author *entity.Author) error {
	args := m.Called(author)
	return args.Error(0)
}

func (m *MockAuthorRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAuthorRepository) PostCount(id string) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.AuthorRepository = (*MockAuthorRepository)(nil)
