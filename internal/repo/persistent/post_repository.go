package persistent

import (
	"errors"

	"inkwell/internal/entity"
	"inkwell/internal/model"

	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

// PostListFilter narrows and orders a post listing. SortBy must already
// be validated against the allow-list by the caller.
type PostListFilter struct {
	CategoryID    string
	Status        string
	Search        string
	FeaturedOnly  bool
	TrendingOnly  bool
	PublishedOnly bool
	SortBy        string
	SortDesc      bool
	Page          int
	PerPage       int
}

type PostRepository interface {
	List(filter PostListFilter) ([]*entity.Post, int64, error)
	GetByID(id string) (*entity.Post, error)
	GetBySlug(slug string) (*entity.Post, error)
	SlugExists(slug, excludeID string) (bool, error)
	Create(post *entity.Post, tags []entity.Tag) error
	Update(post *entity.Post, tags []entity.Tag, syncTags bool) error
	Delete(id string) error
	IncrementViews(id string) error
	Exists(id string) (bool, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) listQuery(filter PostListFilter) *gorm.DB {
	query := r.db.Model(&model.PostModel{})

	if filter.PublishedOnly {
		query = query.Where("status = ?", string(entity.PostStatusPublished))
	} else if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR excerpt ILIKE ?", pattern, pattern)
	}
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}
	if filter.TrendingOnly {
		query = query.Where("is_trending = ?", true)
	}

	return query
}

func (r *postRepository) List(filter PostListFilter) ([]*entity.Post, int64, error) {
	var total int64
	if err := r.listQuery(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := filter.SortBy
	if order == "" {
		order = "created_at"
	}
	if filter.SortDesc {
		order += " DESC"
	} else {
		order += " ASC"
	}

	offset := (filter.Page - 1) * filter.PerPage

	var models []model.PostModel
	err := r.listQuery(filter).
		Preload("Category").
		Preload("Author").
		Preload("Tags").
		Order(order).
		Limit(filter.PerPage).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	posts := make([]*entity.Post, len(models))
	for i := range models {
		posts[i] = ToPostEntity(&models[i])
	}

	return posts, total, nil
}

func (r *postRepository) withRelations(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Category").
		Preload("Author").
		Preload("Tags").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ? AND parent_id IS NULL", string(entity.CommentStatusApproved)).
				Order("created_at DESC")
		}).
		Preload("Comments.Replies", "status = ?", string(entity.CommentStatusApproved))
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var m model.PostModel
	if err := r.withRelations(r.db).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return ToPostEntity(&m), nil
}

func (r *postRepository) GetBySlug(slug string) (*entity.Post, error) {
	var m model.PostModel
	if err := r.withRelations(r.db).First(&m, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return ToPostEntity(&m), nil
}

func (r *postRepository) SlugExists(slug, excludeID string) (bool, error) {
	query := r.db.Model(&model.PostModel{}).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// firstOrCreateTags resolves the given tag set by exact name, creating
// missing tags with the provided slug/color attributes.
func firstOrCreateTags(tx *gorm.DB, tags []entity.Tag) ([]model.TagModel, error) {
	resolved := make([]model.TagModel, 0, len(tags))
	for _, tag := range tags {
		var m model.TagModel
		err := tx.Where(model.TagModel{Name: tag.Name}).
			Attrs(model.TagModel{
				Slug:     tag.Slug,
				Color:    tag.Color,
				IsActive: tag.IsActive,
			}).
			FirstOrCreate(&m).Error
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, m)
	}
	return resolved, nil
}

func (r *postRepository) Create(post *entity.Post, tags []entity.Tag) error {
	m := ToPostModel(post)

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}

		if len(tags) > 0 {
			tagModels, err := firstOrCreateTags(tx, tags)
			if err != nil {
				return err
			}
			if err := tx.Model(m).Association("Tags").Append(&tagModels); err != nil {
				return err
			}
		}

		post.ID = m.ID
		post.CreatedAt = m.CreatedAt
		post.UpdatedAt = m.UpdatedAt
		return nil
	})
}

func (r *postRepository) Update(post *entity.Post, tags []entity.Tag, syncTags bool) error {
	m := ToPostModel(post)

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(m).Error; err != nil {
			return err
		}

		if syncTags {
			tagModels, err := firstOrCreateTags(tx, tags)
			if err != nil {
				return err
			}
			if err := tx.Model(m).Association("Tags").Replace(&tagModels); err != nil {
				return err
			}
		}

		post.UpdatedAt = m.UpdatedAt
		return nil
	})
}

// Delete removes the post and every row that references it: comments,
// likes on the post and on its comments, saves and tag associations.
func (r *postRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var m model.PostModel
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			return err
		}

		commentIDs := tx.Model(&model.CommentModel{}).
			Select("id").
			Where("post_id = ?", id)
		if err := tx.Where("target_kind = ? AND target_id IN (?)",
			string(entity.LikeTargetComment), commentIDs).
			Delete(&model.LikeModel{}).Error; err != nil {
			return err
		}

		if err := tx.Where("target_kind = ? AND target_id = ?",
			string(entity.LikeTargetPost), id).
			Delete(&model.LikeModel{}).Error; err != nil {
			return err
		}

		if err := tx.Where("post_id = ?", id).Delete(&model.SaveModel{}).Error; err != nil {
			return err
		}

		if err := tx.Where("post_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&m).Association("Tags").Clear(); err != nil {
			return err
		}

		return tx.Delete(&m).Error
	})
}

func (r *postRepository) IncrementViews(id string) error {
	result := r.db.Model(&model.PostModel{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("post not found")
	}
	return nil
}

func (r *postRepository) Exists(id string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.PostModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
