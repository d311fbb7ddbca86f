package entity

import "time"

// LikeTargetKind is a closed set validated at the API boundary, replacing
// the free-text type strings a polymorphic join would otherwise store.
type LikeTargetKind string

const (
	LikeTargetPost    LikeTargetKind = "post"
	LikeTargetComment LikeTargetKind = "comment"
)

func (k LikeTargetKind) Valid() bool {
	return k == LikeTargetPost || k == LikeTargetComment
}

type Like struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	TargetKind LikeTargetKind `json:"target_kind"`
	TargetID   string         `json:"target_id"`
	CreatedAt  time.Time      `json:"created_at"`
}

type Save struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PostID    string    `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	Post *Post `json:"post,omitempty"`
}
