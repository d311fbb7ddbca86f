package persistent

import (
	"inkwell/internal/entity"
	"inkwell/internal/model"

	"gorm.io/gorm"
)

type AuthorRepository interface {
	ListActive() ([]*entity.Author, error)
	ListAll() ([]*entity.Author, error)
	GetByID(id string) (*entity.Author, error)
	EmailOrUsernameExists(email, username, excludeID string) (bool, error)
	Create(author *entity.Author) error
	Update(author *entity.Author) error
	Delete(id string) error
	PostCount(id string) (int64, error)
}

type authorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) list(activeOnly bool) ([]*entity.Author, error) {
	query := r.db.Model(&model.AuthorModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var models []model.AuthorModel
	if err := query.Order("first_name ASC, last_name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	authors := make([]*entity.Author, len(models))
	for i := range models {
		authors[i] = ToAuthorEntity(&models[i])
	}
	return authors, nil
}

func (r *authorRepository) ListActive() ([]*entity.Author, error) {
	return r.list(true)
}

func (r *authorRepository) ListAll() ([]*entity.Author, error) {
	return r.list(false)
}

func (r *authorRepository) GetByID(id string) (*entity.Author, error) {
	var m model.AuthorModel
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return ToAuthorEntity(&m), nil
}

func (r *authorRepository) EmailOrUsernameExists(email, username, excludeID string) (bool, error) {
	query := r.db.Model(&model.AuthorModel{}).Where("email = ? OR username = ?", email, username)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *authorRepository) Create(author *entity.Author) error {
	m := ToAuthorModel(author)
	if err := r.db.Create(m).Error; err != nil {
		return err
	}
	author.ID = m.ID
	author.CreatedAt = m.CreatedAt
	author.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *authorRepository) Update(author *entity.Author) error {
	m := ToAuthorModel(author)
	if err := r.db.Save(m).Error; err != nil {
		return err
	}
	author.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *authorRepository) Delete(id string) error {
	return r.db.Delete(&model.AuthorModel{}, "id = ?", id).Error
}

func (r *authorRepository) PostCount(id string) (int64, error) {
	var count int64
	err := r.db.Model(&model.PostModel{}).Where("author_id = ?", id).Count(&count).Error
	return count, err
}
