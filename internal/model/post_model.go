package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID              string     `gorm:"type:uuid;primary_key" json:"id"`
	Title           string     `gorm:"type:varchar(255);not null" json:"title"`
	Slug            string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Excerpt         string     `gorm:"type:varchar(500)" json:"excerpt"`
	Content         string     `gorm:"type:text;not null" json:"content"`
	FeaturedImage   string     `gorm:"type:varchar(500)" json:"featured_image"`
	ImagePosition   *float64   `json:"image_position"`
	ImageScale      *float64   `json:"image_scale"`
	CategoryID      string     `gorm:"type:uuid;not null;index" json:"category_id"`
	AuthorID        string     `gorm:"type:uuid;not null;index" json:"author_id"`
	Status          string     `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	PublishedAt     *time.Time `gorm:"index" json:"published_at"`
	ReadTime        int        `gorm:"default:0" json:"read_time"`
	ViewsCount      int64      `gorm:"default:0" json:"views_count"`
	LikesCount      int64      `gorm:"default:0" json:"likes_count"`
	CommentsCount   int64      `gorm:"default:0" json:"comments_count"`
	IsFeatured      bool       `gorm:"default:false" json:"is_featured"`
	IsTrending      bool       `gorm:"default:false" json:"is_trending"`
	AllowComments   bool       `gorm:"default:true" json:"allow_comments"`
	MetaTitle       string     `gorm:"type:varchar(255)" json:"meta_title"`
	MetaDescription string     `gorm:"type:varchar(500)" json:"meta_description"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Author   *AuthorModel   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Tags     []TagModel     `gorm:"many2many:post_tags;joinForeignKey:PostID;joinReferences:TagID" json:"tags,omitempty"`
	Comments []CommentModel `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
