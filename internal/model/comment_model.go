package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID       string    `gorm:"type:uuid;not null;index" json:"post_id"`
	UserID       *string   `gorm:"type:uuid;index" json:"user_id"`
	AuthorName   string    `gorm:"type:varchar(255)" json:"author_name"`
	AuthorEmail  string    `gorm:"type:varchar(255)" json:"author_email"`
	AuthorAvatar string    `gorm:"type:varchar(500)" json:"author_avatar"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	Status       string    `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	ParentID     *string   `gorm:"type:uuid;index" json:"parent_id"`
	LikesCount   int64     `gorm:"default:0" json:"likes_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Replies []CommentModel `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
