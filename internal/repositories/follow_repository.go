package repositories

import (
	"pulsefeed/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	CreateFollow(follow *models.Follow) error
	DeleteFollow(followerID, followingID uint) (bool, error)
	IsFollowing(followerID, followingID uint) (bool, error)
	GetFollowing(userID uint, limit, offset int) ([]models.UserSummary, error)
	GetFollowers(userID uint, limit, offset int) ([]models.UserSummary, error)
	GetFollowCounts(userID uint) (*models.FollowCounts, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// CreateFollow creates a new follow relationship
func (r *PostgresFollowRepository) CreateFollow(follow *models.Follow) error {
	return r.db.Create(follow).Error
}

// DeleteFollow removes a follow relationship. Unfollow is a hard delete.
func (r *PostgresFollowRepository) DeleteFollow(followerID, followingID uint) (bool, error) {
	res := r.db.Exec(`DELETE FROM follows WHERE follower_id = ? AND following_id = ?`, followerID, followingID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IsFollowing checks if followerID follows followingID
func (r *PostgresFollowRepository) IsFollowing(followerID, followingID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ? AND following_id = ?", followerID, followingID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowing retrieves the users a user follows, most recently followed
// first. Soft-deleted target users are excluded.
func (r *PostgresFollowRepository) GetFollowing(userID uint, limit, offset int) ([]models.UserSummary, error) {
	users := []models.UserSummary{}
	err := r.db.Raw(
		`SELECT u.id, u.username, u.full_name, u.created_at, f.created_at AS followed_at
		 FROM users u
		 JOIN follows f ON u.id = f.following_id
		 WHERE f.follower_id = ? AND u.is_deleted = FALSE
		 ORDER BY f.created_at DESC
		 LIMIT ? OFFSET ?`,
		userID, limit, offset,
	).Scan(&users).Error
	return users, err
}

// GetFollowers retrieves the users following a user
func (r *PostgresFollowRepository) GetFollowers(userID uint, limit, offset int) ([]models.UserSummary, error) {
	users := []models.UserSummary{}
	err := r.db.Raw(
		`SELECT u.id, u.username, u.full_name, u.created_at, f.created_at AS followed_at
		 FROM users u
		 JOIN follows f ON u.id = f.follower_id
		 WHERE f.following_id = ? AND u.is_deleted = FALSE
		 ORDER BY f.created_at DESC
		 LIMIT ? OFFSET ?`,
		userID, limit, offset,
	).Scan(&users).Error
	return users, err
}

// GetFollowCounts computes both follow counters as one row
func (r *PostgresFollowRepository) GetFollowCounts(userID uint) (*models.FollowCounts, error) {
	var counts models.FollowCounts
	err := r.db.Raw(
		`SELECT
		   (SELECT COUNT(*) FROM follows WHERE follower_id = ?) AS following_count,
		   (SELECT COUNT(*) FROM follows WHERE following_id = ?) AS followers_count`,
		userID, userID,
	).Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return &counts, nil
}
