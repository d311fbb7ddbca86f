package usecase

import (
	"errors"
	"fmt"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"

	"gorm.io/gorm"
)

type InteractionUseCase interface {
	ToggleLike(userID string, kind entity.LikeTargetKind, targetID string) (bool, error)
	IsLiked(userID string, kind entity.LikeTargetKind, targetID string) (bool, error)
	LikeCount(kind entity.LikeTargetKind, targetID string) (int64, error)
	ToggleSave(userID, postID string) (bool, error)
	IsSaved(userID, postID string) (bool, error)
	ListSaves(userID string, page, perPage int) ([]*entity.Save, int64, error)
	DeleteSave(id string) error
}

type interactionUseCase struct {
	interactionRepo persistent.InteractionRepository
	postRepo        persistent.PostRepository
	commentRepo     persistent.CommentRepository
}

func NewInteractionUseCase(
	interactionRepo persistent.InteractionRepository,
	postRepo persistent.PostRepository,
	commentRepo persistent.CommentRepository,
) InteractionUseCase {
	return &interactionUseCase{
		interactionRepo: interactionRepo,
		postRepo:        postRepo,
		commentRepo:     commentRepo,
	}
}

func (uc *interactionUseCase) targetExists(kind entity.LikeTargetKind, targetID string) error {
	switch kind {
	case entity.LikeTargetPost:
		exists, err := uc.postRepo.Exists(targetID)
		if err != nil {
			return fmt.Errorf("failed to check post: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
	case entity.LikeTargetComment:
		if _, err := uc.commentRepo.GetByID(targetID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to check comment: %w", err)
		}
	default:
		return fmt.Errorf("unknown target kind %q", kind)
	}
	return nil
}

func (uc *interactionUseCase) ToggleLike(userID string, kind entity.LikeTargetKind, targetID string) (bool, error) {
	if err := uc.targetExists(kind, targetID); err != nil {
		return false, err
	}
	return uc.interactionRepo.ToggleLike(userID, kind, targetID)
}

func (uc *interactionUseCase) IsLiked(userID string, kind entity.LikeTargetKind, targetID string) (bool, error) {
	return uc.interactionRepo.IsLiked(userID, kind, targetID)
}

func (uc *interactionUseCase) LikeCount(kind entity.LikeTargetKind, targetID string) (int64, error) {
	return uc.interactionRepo.LikeCount(kind, targetID)
}

func (uc *interactionUseCase) ToggleSave(userID, postID string) (bool, error) {
	exists, err := uc.postRepo.Exists(postID)
	if err != nil {
		return false, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return false, ErrNotFound
	}
	return uc.interactionRepo.ToggleSave(userID, postID)
}

func (uc *interactionUseCase) IsSaved(userID, postID string) (bool, error) {
	return uc.interactionRepo.IsSaved(userID, postID)
}

func (uc *interactionUseCase) ListSaves(userID string, page, perPage int) ([]*entity.Save, int64, error) {
	return uc.interactionRepo.ListSaves(userID, page, perPage)
}

func (uc *interactionUseCase) DeleteSave(id string) error {
	if _, err := uc.interactionRepo.GetSave(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return uc.interactionRepo.DeleteSave(id)
}
