package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User represents an account row in PostgreSQL
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:30;uniqueIndex"`
	Email        string    `json:"email" gorm:"size:255;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"column:password_hash"` // bcrypt hash, never serialized
	FullName     string    `json:"full_name" gorm:"size:100"`
	CreatedAt    time.Time `json:"created_at"`
	IsDeleted    bool      `json:"-" gorm:"default:false;index"`
}

// RegisterRequest defines the request body for registering a new account
type RegisterRequest struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,min=1,max=100"`
}

// LoginRequest defines the request body for logging in
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserSummary is a user row as returned by listings (search, followers, likers)
type UserSummary struct {
	ID         uint       `json:"id"`
	Username   string     `json:"username"`
	FullName   string     `json:"full_name"`
	CreatedAt  time.Time  `json:"created_at"`
	FollowedAt *time.Time `json:"followed_at,omitempty"`
}

// FollowCounts holds the two follow counters computed in one round trip
type FollowCounts struct {
	FollowingCount int64 `json:"following_count"`
	FollowersCount int64 `json:"followers_count"`
}

// UserProfile merges base user fields with follow counts
type UserProfile struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	CreatedAt      time.Time `json:"created_at"`
	FollowingCount int64     `json:"following_count"`
	FollowersCount int64     `json:"followers_count"`
	IsFollowing    bool      `json:"is_following"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
