package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LikeModel struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_target" json:"user_id"`
	TargetKind string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_likes_user_target" json:"target_kind"`
	TargetID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_target" json:"target_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (LikeModel) TableName() string {
	return "likes"
}

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

type SaveModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_saves_user_post" json:"user_id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_saves_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	Post *PostModel `gorm:"foreignKey:PostID" json:"post,omitempty"`
}

func (SaveModel) TableName() string {
	return "saves"
}

func (s *SaveModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
