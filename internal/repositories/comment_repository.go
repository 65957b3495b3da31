package repositories

import (
	"pulsefeed/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.CommentWithAuthor, error)
	GetCommentsByPostID(postID uint, limit, offset int) ([]models.CommentWithAuthor, error)
	UpdateComment(commentID, userID uint, content string) (*models.Comment, error)
	DeleteComment(commentID, userID uint) (bool, error)
	GetCommentCountByPostID(postID uint) (int64, error)
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment creates a new comment
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetCommentByID retrieves a comment joined with its author. Soft-deleted
// comments and comments from soft-deleted authors read as absent.
func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.CommentWithAuthor, error) {
	var comment models.CommentWithAuthor
	res := r.db.Raw(
		`SELECT c.id, c.user_id, c.post_id, c.content, c.created_at, c.updated_at,
		        u.username, u.full_name
		 FROM comments c
		 JOIN users u ON c.user_id = u.id
		 WHERE c.id = ? AND c.is_deleted = FALSE AND u.is_deleted = FALSE`,
		id,
	).Scan(&comment)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &comment, nil
}

// GetCommentsByPostID retrieves a post's comments in chronological thread
// order (oldest first, the opposite of feed ordering)
func (r *PostgresCommentRepository) GetCommentsByPostID(postID uint, limit, offset int) ([]models.CommentWithAuthor, error) {
	comments := []models.CommentWithAuthor{}
	err := r.db.Raw(
		`SELECT c.id, c.user_id, c.post_id, c.content, c.created_at, c.updated_at,
		        u.username, u.full_name
		 FROM comments c
		 JOIN users u ON c.user_id = u.id
		 WHERE c.post_id = ? AND c.is_deleted = FALSE AND u.is_deleted = FALSE
		 ORDER BY c.created_at ASC
		 LIMIT ? OFFSET ?`,
		postID, limit, offset,
	).Scan(&comments).Error
	return comments, err
}

// UpdateComment rewrites the owner's comment in one statement; the owner
// predicate makes the check in the controller defense in depth. Returns nil
// when no row matched.
func (r *PostgresCommentRepository) UpdateComment(commentID, userID uint, content string) (*models.Comment, error) {
	var comment models.Comment
	res := r.db.Raw(
		`UPDATE comments
		 SET content = ?, updated_at = NOW()
		 WHERE id = ? AND user_id = ? AND is_deleted = FALSE
		 RETURNING id, user_id, post_id, content, created_at, updated_at`,
		content, commentID, userID,
	).Scan(&comment)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &comment, nil
}

// DeleteComment soft-deletes the owner's comment
func (r *PostgresCommentRepository) DeleteComment(commentID, userID uint) (bool, error) {
	res := r.db.Exec(
		`UPDATE comments SET is_deleted = TRUE, updated_at = NOW()
		 WHERE id = ? AND user_id = ? AND is_deleted = FALSE`,
		commentID, userID,
	)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetCommentCountByPostID counts visible comments on a post
func (r *PostgresCommentRepository) GetCommentCountByPostID(postID uint) (int64, error) {
	var count int64
	err := r.db.Raw(
		`SELECT COUNT(*) FROM comments c
		 JOIN users u ON c.user_id = u.id
		 WHERE c.post_id = ? AND c.is_deleted = FALSE AND u.is_deleted = FALSE`,
		postID,
	).Scan(&count).Error
	return count, err
}
