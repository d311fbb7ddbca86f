package persistent

import (
	"errors"

	"inkwell/internal/entity"
	"inkwell/internal/model"

	"gorm.io/gorm"
)

type InteractionRepository interface {
	ToggleLike(userID string, kind entity.LikeTargetKind, targetID string) (bool, error)
	IsLiked(userID string, kind entity.LikeTargetKind, targetID string) (bool, error)
	LikeCount(kind entity.LikeTargetKind, targetID string) (int64, error)
	ToggleSave(userID, postID string) (bool, error)
	IsSaved(userID, postID string) (bool, error)
	ListSaves(userID string, page, perPage int) ([]*entity.Save, int64, error)
	GetSave(id string) (*entity.Save, error)
	DeleteSave(id string) error
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func likeCounterUpdate(tx *gorm.DB, kind entity.LikeTargetKind, targetID string, delta int) error {
	expr := gorm.Expr("GREATEST(likes_count + ?, 0)", delta)

	switch kind {
	case entity.LikeTargetPost:
		return tx.Model(&model.PostModel{}).
			Where("id = ?", targetID).
			UpdateColumn("likes_count", expr).Error
	case entity.LikeTargetComment:
		return tx.Model(&model.CommentModel{}).
			Where("id = ?", targetID).
			UpdateColumn("likes_count", expr).Error
	}
	return errors.New("unknown like target kind")
}

// ToggleLike creates the like if absent or removes it if present, and
// adjusts the target's counter in the same transaction. Returns the
// resulting liked state.
func (r *interactionRepository) ToggleLike(userID string, kind entity.LikeTargetKind, targetID string) (bool, error) {
	liked := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.LikeModel
		err := tx.Where("user_id = ? AND target_kind = ? AND target_id = ?",
			userID, string(kind), targetID).
			First(&existing).Error

		if err == nil {
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			return likeCounterUpdate(tx, kind, targetID, -1)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		like := &model.LikeModel{
			UserID:     userID,
			TargetKind: string(kind),
			TargetID:   targetID,
		}
		if err := tx.Create(like).Error; err != nil {
			return err
		}
		liked = true
		return likeCounterUpdate(tx, kind, targetID, 1)
	})

	return liked, err
}

func (r *interactionRepository) IsLiked(userID string, kind entity.LikeTargetKind, targetID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, string(kind), targetID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *interactionRepository) LikeCount(kind entity.LikeTargetKind, targetID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).
		Where("target_kind = ? AND target_id = ?", string(kind), targetID).
		Count(&count).Error
	return count, err
}

func (r *interactionRepository) ToggleSave(userID, postID string) (bool, error) {
	saved := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.SaveModel
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error

		if err == nil {
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		save := &model.SaveModel{UserID: userID, PostID: postID}
		if err := tx.Create(save).Error; err != nil {
			return err
		}
		saved = true
		return nil
	})

	return saved, err
}

func (r *interactionRepository) IsSaved(userID, postID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.SaveModel{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *interactionRepository) ListSaves(userID string, page, perPage int) ([]*entity.Save, int64, error) {
	var total int64
	if err := r.db.Model(&model.SaveModel{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage

	var models []model.SaveModel
	err := r.db.Where("user_id = ?", userID).
		Preload("Post").
		Preload("Post.Category").
		Preload("Post.Author").
		Order("created_at DESC").
		Limit(perPage).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	saves := make([]*entity.Save, len(models))
	for i := range models {
		saves[i] = ToSaveEntity(&models[i])
	}
	return saves, total, nil
}

func (r *interactionRepository) GetSave(id string) (*entity.Save, error) {
	var m model.SaveModel
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return ToSaveEntity(&m), nil
}

func (r *interactionRepository) DeleteSave(id string) error {
	return r.db.Delete(&model.SaveModel{}, "id = ?", id).Error
}
