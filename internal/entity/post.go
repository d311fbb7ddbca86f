package entity

import "time"

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusScheduled PostStatus = "scheduled"
)

func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusDraft, PostStatusPublished, PostStatusScheduled:
		return true
	}
	return false
}

type Post struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"content"`
	FeaturedImage   string     `json:"featured_image"`
	ImagePosition   *float64   `json:"image_position,omitempty"`
	ImageScale      *float64   `json:"image_scale,omitempty"`
	CategoryID      string     `json:"category_id"`
	AuthorID        string     `json:"author_id"`
	Status          PostStatus `json:"status"`
	PublishedAt     *time.Time `json:"published_at"`
	ReadTime        int        `json:"read_time"`
	ViewsCount      int64      `json:"views_count"`
	LikesCount      int64      `json:"likes_count"`
	CommentsCount   int64      `json:"comments_count"`
	IsFeatured      bool       `json:"is_featured"`
	IsTrending      bool       `json:"is_trending"`
	AllowComments   bool       `json:"allow_comments"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Category *Category `json:"category,omitempty"`
	Author   *Author   `json:"author,omitempty"`
	Tags     []Tag     `json:"tags,omitempty"`
	Comments []Comment `json:"comments,omitempty"`
}
