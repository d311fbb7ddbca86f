package persistent

import (
	"inkwell/internal/entity"
	"inkwell/internal/model"

	"gorm.io/gorm"
)

type MediaListFilter struct {
	Search  string
	Type    string // image, video, audio, matched as a MIME prefix
	Page    int
	PerPage int
}

type MediaRepository interface {
	List(filter MediaListFilter) ([]*entity.Media, int64, error)
	GetByID(id string) (*entity.Media, error)
	GetByIDs(ids []string) ([]*entity.Media, error)
	Create(media *entity.Media) error
	Update(media *entity.Media) error
	Delete(id string) error
	DeleteMany(ids []string) error
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) listQuery(filter MediaListFilter) *gorm.DB {
	query := r.db.Model(&model.MediaModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR alt_text ILIKE ? OR caption ILIKE ?",
			pattern, pattern, pattern)
	}
	if filter.Type != "" {
		query = query.Where("mime_type LIKE ?", filter.Type+"/%")
	}

	return query
}

func (r *mediaRepository) List(filter MediaListFilter) ([]*entity.Media, int64, error) {
	var total int64
	if err := r.listQuery(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PerPage

	var models []model.MediaModel
	err := r.listQuery(filter).
		Order("created_at DESC").
		Limit(filter.PerPage).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	media := make([]*entity.Media, len(models))
	for i := range models {
		media[i] = ToMediaEntity(&models[i])
	}
	return media, total, nil
}

func (r *mediaRepository) GetByID(id string) (*entity.Media, error) {
	var m model.MediaModel
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return ToMediaEntity(&m), nil
}

func (r *mediaRepository) GetByIDs(ids []string) ([]*entity.Media, error) {
	var models []model.MediaModel
	if err := r.db.Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}

	media := make([]*entity.Media, len(models))
	for i := range models {
		media[i] = ToMediaEntity(&models[i])
	}
	return media, nil
}

func (r *mediaRepository) Create(media *entity.Media) error {
	m := ToMediaModel(media)
	if err := r.db.Create(m).Error; err != nil {
		return err
	}
	media.ID = m.ID
	media.CreatedAt = m.CreatedAt
	media.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *mediaRepository) Update(media *entity.Media) error {
	m := ToMediaModel(media)
	if err := r.db.Save(m).Error; err != nil {
		return err
	}
	media.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *mediaRepository) Delete(id string) error {
	return r.db.Delete(&model.MediaModel{}, "id = ?", id).Error
}

func (r *mediaRepository) DeleteMany(ids []string) error {
	return r.db.Where("id IN ?", ids).Delete(&model.MediaModel{}).Error
}
