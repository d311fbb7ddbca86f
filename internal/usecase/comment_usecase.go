package usecase

import (
	"errors"
	"fmt"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"

	"gorm.io/gorm"
)

type CreateCommentInput struct {
	PostID       string
	UserID       *string
	AuthorName   string
	AuthorEmail  string
	AuthorAvatar string
	Content      string
	ParentID     *string
	Status       entity.CommentStatus
}

type UpdateCommentInput struct {
	Content     *string
	AuthorName  *string
	AuthorEmail *string
	Status      *entity.CommentStatus
}

type CommentUseCase interface {
	ListForPost(postID string) ([]*entity.Comment, error)
	ListAdmin(filter persistent.CommentListFilter) ([]*entity.Comment, int64, error)
	Get(id string) (*entity.Comment, error)
	Create(input CreateCommentInput) (*entity.Comment, error)
	Update(id string, input UpdateCommentInput) (*entity.Comment, error)
	Delete(id string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	postRepo    persistent.PostRepository
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	postRepo persistent.PostRepository,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (uc *commentUseCase) ListForPost(postID string) ([]*entity.Comment, error) {
	return uc.commentRepo.ListForPost(postID)
}

func (uc *commentUseCase) ListAdmin(filter persistent.CommentListFilter) ([]*entity.Comment, int64, error) {
	return uc.commentRepo.ListAdmin(filter)
}

func (uc *commentUseCase) Get(id string) (*entity.Comment, error) {
	comment, err := uc.commentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (uc *commentUseCase) Create(input CreateCommentInput) (*entity.Comment, error) {
	post, err := uc.postRepo.GetByID(input.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load post: %w", err)
	}

	if !post.AllowComments {
		return nil, ErrCommentsDisabled
	}

	if input.ParentID != nil {
		parent, err := uc.commentRepo.GetByID(*input.ParentID)
		if err != nil {
			return nil, ErrInvalidParent
		}
		// One level of nesting only: replies attach to top-level
		// comments on the same post.
		if parent.PostID != input.PostID || parent.ParentID != nil {
			return nil, ErrInvalidParent
		}
	}

	status := input.Status
	if status == "" {
		// Admin-created comments skip moderation.
		status = entity.CommentStatusApproved
	}

	comment := &entity.Comment{
		PostID:       input.PostID,
		UserID:       input.UserID,
		AuthorName:   input.AuthorName,
		AuthorEmail:  input.AuthorEmail,
		AuthorAvatar: input.AuthorAvatar,
		Content:      input.Content,
		Status:       status,
		ParentID:     input.ParentID,
	}

	if err := uc.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

func (uc *commentUseCase) Update(id string, input UpdateCommentInput) (*entity.Comment, error) {
	comment, err := uc.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Content != nil {
		comment.Content = *input.Content
	}
	if input.AuthorName != nil {
		comment.AuthorName = *input.AuthorName
	}
	if input.AuthorEmail != nil {
		comment.AuthorEmail = *input.AuthorEmail
	}
	if input.Status != nil {
		comment.Status = *input.Status
	}

	if err := uc.commentRepo.Update(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

func (uc *commentUseCase) Delete(id string) error {
	if err := uc.commentRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
