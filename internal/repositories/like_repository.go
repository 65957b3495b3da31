package repositories

import (
	"pulsefeed/internal/models"

	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(like *models.Like) error
	DeleteLike(userID, postID uint) (bool, error)
	HasUserLikedPost(userID, postID uint) (bool, error)
	GetLikesByPostID(postID uint, limit, offset int) ([]models.LikeInfo, error)
	GetLikeCountByPostID(postID uint) (int64, error)
	GetLikedPostsByUserID(userID uint, limit, offset int) ([]models.LikedPost, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike creates a new like
func (r *PostgresLikeRepository) CreateLike(like *models.Like) error {
	return r.db.Create(like).Error
}

// DeleteLike removes a like. Unlike is a hard delete.
func (r *PostgresLikeRepository) DeleteLike(userID, postID uint) (bool, error) {
	res := r.db.Exec(`DELETE FROM likes WHERE user_id = ? AND post_id = ?`, userID, postID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// HasUserLikedPost checks if a user has liked a specific post
func (r *PostgresLikeRepository) HasUserLikedPost(userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLikesByPostID retrieves a post's likes with user details, newest first.
// Likes from soft-deleted users are excluded.
func (r *PostgresLikeRepository) GetLikesByPostID(postID uint, limit, offset int) ([]models.LikeInfo, error) {
	likes := []models.LikeInfo{}
	err := r.db.Raw(
		`SELECT l.id, l.created_at, u.id AS user_id, u.username, u.full_name
		 FROM likes l
		 JOIN users u ON l.user_id = u.id
		 WHERE l.post_id = ? AND u.is_deleted = FALSE
		 ORDER BY l.created_at DESC
		 LIMIT ? OFFSET ?`,
		postID, limit, offset,
	).Scan(&likes).Error
	return likes, err
}

// GetLikeCountByPostID retrieves the like count for a post
func (r *PostgresLikeRepository) GetLikeCountByPostID(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetLikedPostsByUserID retrieves the posts a user has liked, most recently
// liked first, with author info and counters
func (r *PostgresLikeRepository) GetLikedPostsByUserID(userID uint, limit, offset int) ([]models.LikedPost, error) {
	posts := []models.LikedPost{}
	err := r.db.Raw(
		`SELECT p.id, p.content, p.media_url, p.created_at, p.comments_enabled,
		        u.id AS author_id, u.username AS author_username, u.full_name AS author_name,
		        l.created_at AS liked_at,
		        (SELECT COUNT(*) FROM likes WHERE post_id = p.id) AS likes_count,
		        (SELECT COUNT(*) FROM comments WHERE post_id = p.id AND is_deleted = FALSE) AS comments_count
		 FROM likes l
		 JOIN posts p ON l.post_id = p.id
		 JOIN users u ON p.user_id = u.id
		 WHERE l.user_id = ? AND p.is_deleted = FALSE AND u.is_deleted = FALSE
		 ORDER BY l.created_at DESC
		 LIMIT ? OFFSET ?`,
		userID, limit, offset,
	).Scan(&posts).Error
	return posts, err
}
