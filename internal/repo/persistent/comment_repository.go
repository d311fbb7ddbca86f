package persistent

import (
	"inkwell/internal/entity"
	"inkwell/internal/model"

	"gorm.io/gorm"
)

type CommentListFilter struct {
	Search  string
	Status  string
	PostID  string
	Page    int
	PerPage int
}

type CommentRepository interface {
	ListForPost(postID string) ([]*entity.Comment, error)
	ListAdmin(filter CommentListFilter) ([]*entity.Comment, int64, error)
	GetByID(id string) (*entity.Comment, error)
	Create(comment *entity.Comment) error
	Update(comment *entity.Comment) error
	Delete(id string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// ListForPost returns approved top-level comments with their approved
// replies, newest first.
func (r *commentRepository) ListForPost(postID string) ([]*entity.Comment, error) {
	var models []model.CommentModel
	err := r.db.
		Where("post_id = ? AND status = ? AND parent_id IS NULL", postID, string(entity.CommentStatusApproved)).
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", string(entity.CommentStatusApproved)).Order("created_at ASC")
		}).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(models))
	for i := range models {
		comments[i] = ToCommentEntity(&models[i])
	}
	return comments, nil
}

func (r *commentRepository) adminQuery(filter CommentListFilter) *gorm.DB {
	query := r.db.Model(&model.CommentModel{})

	if filter.PostID != "" {
		query = query.Where("post_id = ?", filter.PostID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("content ILIKE ? OR author_name ILIKE ? OR author_email ILIKE ?",
			pattern, pattern, pattern)
	}

	return query
}

func (r *commentRepository) ListAdmin(filter CommentListFilter) ([]*entity.Comment, int64, error) {
	var total int64
	if err := r.adminQuery(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PerPage

	var models []model.CommentModel
	err := r.adminQuery(filter).
		Order("created_at DESC").
		Limit(filter.PerPage).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	comments := make([]*entity.Comment, len(models))
	for i := range models {
		comments[i] = ToCommentEntity(&models[i])
	}
	return comments, total, nil
}

func (r *commentRepository) GetByID(id string) (*entity.Comment, error) {
	var m model.CommentModel
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return ToCommentEntity(&m), nil
}

// Create inserts the comment and bumps the post's comments_count in one
// transaction.
func (r *commentRepository) Create(comment *entity.Comment) error {
	m := ToCommentModel(comment)

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}

		err := tx.Model(&model.PostModel{}).
			Where("id = ?", m.PostID).
			UpdateColumn("comments_count", gorm.Expr("comments_count + ?", 1)).Error
		if err != nil {
			return err
		}

		comment.ID = m.ID
		comment.CreatedAt = m.CreatedAt
		comment.UpdatedAt = m.UpdatedAt
		return nil
	})
}

func (r *commentRepository) Update(comment *entity.Comment) error {
	m := ToCommentModel(comment)
	if err := r.db.Save(m).Error; err != nil {
		return err
	}
	comment.UpdatedAt = m.UpdatedAt
	return nil
}

// Delete removes the comment, its replies and any likes referencing
// them, and decrements the post's comments_count accordingly.
func (r *commentRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var m model.CommentModel
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			return err
		}

		var replyIDs []string
		if err := tx.Model(&model.CommentModel{}).
			Where("parent_id = ?", id).
			Pluck("id", &replyIDs).Error; err != nil {
			return err
		}

		ids := append([]string{id}, replyIDs...)

		if err := tx.Where("target_kind = ? AND target_id IN ?",
			string(entity.LikeTargetComment), ids).
			Delete(&model.LikeModel{}).Error; err != nil {
			return err
		}

		if err := tx.Where("id IN ?", ids).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}

		return tx.Model(&model.PostModel{}).
			Where("id = ?", m.PostID).
			UpdateColumn("comments_count", gorm.Expr("GREATEST(comments_count - ?, 0)", len(ids))).Error
	})
}
