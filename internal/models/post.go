package models

import (
	"time"

	"github.com/google/uuid"
)

// PostDB is a social post on the user dashboard
type PostDB struct {
	PostID        uuid.UUID `json:"post_id" db:"post_id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	Content       string    `json:"content" db:"content"`
	ImageURL      string    `json:"image_url" db:"image_url"`
	LikeCount     int       `json:"like_count" db:"like_count"`
	AverageRating float64   `json:"average_rating" db:"average_rating"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// PostCommentDB is a comment on a post
type PostCommentDB struct {
	CommentID uuid.UUID `json:"comment_id" db:"comment_id"`
	PostID    uuid.UUID `json:"post_id" db:"post_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// FeedbackDB is a piece of user feedback shown in the admin panel
type FeedbackDB struct {
	FeedbackID uuid.UUID `json:"feedback_id" db:"feedback_id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	Name       string    `json:"name" db:"name"` // Display name captured at submission time
	Feedback   string    `json:"feedback" db:"feedback"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
