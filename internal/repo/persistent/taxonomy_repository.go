package persistent

import (
	"inkwell/internal/entity"
	"inkwell/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	ListActive() ([]*entity.Category, error)
	ListAll() ([]*entity.Category, error)
	GetByID(id string) (*entity.Category, error)
	NameOrSlugExists(name, slug, excludeID string) (bool, error)
	Create(category *entity.Category) error
	Update(category *entity.Category) error
	Delete(id string) error
	PostCount(id string) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) list(activeOnly bool) ([]*entity.Category, error) {
	query := r.db.Model(&model.CategoryModel{}).
		Select("categories.*, (SELECT COUNT(*) FROM posts WHERE posts.category_id = categories.id) AS posts_count")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var models []model.CategoryModel
	if err := query.Order("sort_order ASC, name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, len(models))
	for i := range models {
		categories[i] = ToCategoryEntity(&models[i])
	}
	return categories, nil
}

func (r *categoryRepository) ListActive() ([]*entity.Category, error) {
	return r.list(true)
}

func (r *categoryRepository) ListAll() ([]*entity.Category, error) {
	return r.list(false)
}

func (r *categoryRepository) GetByID(id string) (*entity.Category, error) {
	var m model.CategoryModel
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return ToCategoryEntity(&m), nil
}

func (r *categoryRepository) NameOrSlugExists(name, slug, excludeID string) (bool, error) {
	query := r.db.Model(&model.CategoryModel{}).Where("name = ? OR slug = ?", name, slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *categoryRepository) Create(category *entity.Category) error {
	m := ToCategoryModel(category)
	if err := r.db.Create(m).Error; err != nil {
		return err
	}
	category.ID = m.ID
	category.CreatedAt = m.CreatedAt
	category.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *categoryRepository) Update(category *entity.Category) error {
	m := ToCategoryModel(category)
	if err := r.db.Save(m).Error; err != nil {
		return err
	}
	category.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *categoryRepository) Delete(id string) error {
	return r.db.Delete(&model.CategoryModel{}, "id = ?", id).Error
}

func (r *categoryRepository) PostCount(id string) (int64, error) {
	var count int64
	err := r.db.Model(&model.PostModel{}).Where("category_id = ?", id).Count(&count).Error
	return count, err
}

type TagRepository interface {
	ListActive() ([]*entity.Tag, error)
	ListAll() ([]*entity.Tag, error)
	GetByID(id string) (*entity.Tag, error)
	NameOrSlugExists(name, slug, excludeID string) (bool, error)
	Create(tag *entity.Tag) error
	Update(tag *entity.Tag) error
	Delete(id string) error
	PostCount(id string) (int64, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) list(activeOnly bool) ([]*entity.Tag, error) {
	query := r.db.Model(&model.TagModel{}).
		Select("tags.*, (SELECT COUNT(*) FROM post_tags WHERE post_tags.tag_id = tags.id) AS posts_count")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var models []model.TagModel
	if err := query.Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	tags := make([]*entity.Tag, len(models))
	for i := range models {
		tags[i] = ToTagEntity(&models[i])
	}
	return tags, nil
}

func (r *tagRepository) ListActive() ([]*entity.Tag, error) {
	return r.list(true)
}

func (r *tagRepository) ListAll() ([]*entity.Tag, error) {
	return r.list(false)
}

func (r *tagRepository) GetByID(id string) (*entity.Tag, error) {
	var m model.TagModel
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return ToTagEntity(&m), nil
}

func (r *tagRepository) NameOrSlugExists(name, slug, excludeID string) (bool, error) {
	query := r.db.Model(&model.TagModel{}).Where("name = ? OR slug = ?", name, slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *tagRepository) Create(tag *entity.Tag) error {
	m := ToTagModel(tag)
	if err := r.db.Create(m).Error; err != nil {
		return err
	}
	tag.ID = m.ID
	tag.CreatedAt = m.CreatedAt
	tag.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *tagRepository) Update(tag *entity.Tag) error {
	m := ToTagModel(tag)
	if err := r.db.Save(m).Error; err != nil {
		return err
	}
	tag.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *tagRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM post_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.TagModel{}, "id = ?", id).Error
	})
}

func (r *tagRepository) PostCount(id string) (int64, error) {
	var count int64
	err := r.db.Table("post_tags").Where("tag_id = ?", id).Count(&count).Error
	return count, err
}
