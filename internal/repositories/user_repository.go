package repositories

import (
	"pulsefeed/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserProfile(id uint) (*models.UserProfile, error)
	SearchUsersByName(term string, limit, offset int) ([]models.UserSummary, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser creates a new user
func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// GetUserByID retrieves a non-deleted user by ID
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ? AND is_deleted = FALSE", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a non-deleted user by username
func (r *PostgresUserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ? AND is_deleted = FALSE", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a non-deleted user by email
func (r *PostgresUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ? AND is_deleted = FALSE", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserProfile merges base user fields with follow counts in one round
// trip. Returns nil without error when the user is absent or soft-deleted.
func (r *PostgresUserRepository) GetUserProfile(id uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	res := r.db.Raw(
		`SELECT u.id, u.username, u.email, u.full_name, u.created_at,
		        (SELECT COUNT(*) FROM follows WHERE follower_id = u.id) AS following_count,
		        (SELECT COUNT(*) FROM follows WHERE following_id = u.id) AS followers_count
		 FROM users u
		 WHERE u.id = ? AND u.is_deleted = FALSE`,
		id,
	).Scan(&profile)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &profile, nil
}

// SearchUsersByName matches username or full name by case-insensitive
// substring, ordered by username
func (r *PostgresUserRepository) SearchUsersByName(term string, limit, offset int) ([]models.UserSummary, error) {
	users := []models.UserSummary{}
	err := r.db.Raw(
		`SELECT id, username, full_name, created_at
		 FROM users
		 WHERE (username ILIKE ? OR full_name ILIKE ?) AND is_deleted = FALSE
		 ORDER BY username
		 LIMIT ? OFFSET ?`,
		"%"+term+"%", "%"+term+"%", limit, offset,
	).Scan(&users).Error
	return users, err
}
