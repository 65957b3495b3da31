package models

import "time"

// Post represents a social media post
type Post struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	UserID          uint       `json:"user_id" gorm:"index"`
	Content         string     `json:"content" gorm:"type:text"`
	MediaURL        *string    `json:"media_url,omitempty"`
	CommentsEnabled bool       `json:"comments_enabled" gorm:"default:true"`
	CreatedAt       time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
	IsDeleted       bool       `json:"-" gorm:"default:false;index"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Content         string  `json:"content" validate:"required,min=1,max=1000"`
	MediaURL        *string `json:"media_url,omitempty" validate:"omitempty,url"`
	CommentsEnabled *bool   `json:"comments_enabled,omitempty"`
}

// UpdatePostRequest defines the request body for partially updating a post.
// Nil fields keep their stored value (COALESCE merge in the accessor).
type UpdatePostRequest struct {
	Content         *string `json:"content,omitempty" validate:"omitempty,min=1,max=1000"`
	MediaURL        *string `json:"media_url,omitempty" validate:"omitempty,url"`
	CommentsEnabled *bool   `json:"comments_enabled,omitempty"`
}

// PostDetail is a post row joined with its author
type PostDetail struct {
	ID              uint       `json:"id"`
	UserID          uint       `json:"user_id"`
	Content         string     `json:"content"`
	MediaURL        *string    `json:"media_url,omitempty"`
	CommentsEnabled bool       `json:"comments_enabled"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
	Username        string     `json:"username"`
	FullName        string     `json:"full_name"`
}

// FeedPost is a feed row: post, author, aggregated counters and the
// per-requester liked flag
type FeedPost struct {
	ID              uint       `json:"id"`
	UserID          uint       `json:"user_id"`
	Content         string     `json:"content"`
	MediaURL        *string    `json:"media_url,omitempty"`
	CommentsEnabled bool       `json:"comments_enabled"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
	Username        string     `json:"username"`
	FullName        string     `json:"full_name"`
	LikesCount      int64      `json:"likes_count"`
	CommentsCount   int64      `json:"comments_count"`
	IsLikedByUser   bool       `json:"is_liked_by_user"`
}

// SearchPost is a content-search row (no per-requester liked flag)
type SearchPost struct {
	ID              uint       `json:"id"`
	UserID          uint       `json:"user_id"`
	Content         string     `json:"content"`
	MediaURL        *string    `json:"media_url,omitempty"`
	CommentsEnabled bool       `json:"comments_enabled"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
	Username        string     `json:"username"`
	FullName        string     `json:"full_name"`
	LikesCount      int64      `json:"likes_count"`
	CommentsCount   int64      `json:"comments_count"`
}
