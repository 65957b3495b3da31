package models

import "time"

// Like represents a like on a post. The composite unique index bounds the
// check-then-insert window under concurrent identical requests.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_post_like"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_user_post_like"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeInfo is a like row joined with the liking user
type LikeInfo struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
}

// LikedPost is a post a user has liked, with author info and counters
type LikedPost struct {
	ID              uint      `json:"id"`
	Content         string    `json:"content"`
	MediaURL        *string   `json:"media_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	CommentsEnabled bool      `json:"comments_enabled"`
	AuthorID        uint      `json:"author_id"`
	AuthorUsername  string    `json:"author_username"`
	AuthorName      string    `json:"author_name"`
	LikedAt         time.Time `json:"liked_at"`
	LikesCount      int64     `json:"likes_count"`
	CommentsCount   int64     `json:"comments_count"`
}
