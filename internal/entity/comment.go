package entity

import "time"

type CommentStatus string

const (
	CommentStatusPending  CommentStatus = "pending"
	CommentStatusApproved CommentStatus = "approved"
	CommentStatusSpam     CommentStatus = "spam"
	CommentStatusRejected CommentStatus = "rejected"
)

func (s CommentStatus) Valid() bool {
	switch s {
	case CommentStatusPending, CommentStatusApproved, CommentStatusSpam, CommentStatusRejected:
		return true
	}
	return false
}

type Comment struct {
	ID           string        `json:"id"`
	PostID       string        `json:"post_id"`
	UserID       *string       `json:"user_id"`
	AuthorName   string        `json:"author_name"`
	AuthorEmail  string        `json:"author_email"`
	AuthorAvatar string        `json:"author_avatar"`
	Content      string        `json:"content"`
	Status       CommentStatus `json:"status"`
	ParentID     *string       `json:"parent_id"`
	LikesCount   int64         `json:"likes_count"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`

	// One level of nesting only: replies never carry replies.
	Replies []Comment `json:"replies,omitempty"`
}
