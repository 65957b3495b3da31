package models

import "time"

// Comment represents a comment on a post
type Comment struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"user_id" gorm:"index"`
	PostID    uint       `json:"post_id" gorm:"index"`
	Content   string     `json:"content" gorm:"type:text"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	IsDeleted bool       `json:"-" gorm:"default:false;index"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

// CommentWithAuthor is a comment row joined with its author
type CommentWithAuthor struct {
	ID        uint       `json:"id"`
	UserID    uint       `json:"user_id"`
	PostID    uint       `json:"post_id"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	Username  string     `json:"username"`
	FullName  string     `json:"full_name"`
}
