package repositories

import (
	"pulsefeed/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.PostDetail, error)
	GetPostsByUserID(userID uint, limit, offset int) ([]models.PostDetail, error)
	GetFeedPosts(userID uint, limit, offset int) ([]models.FeedPost, error)
	UpdatePost(postID, userID uint, req *models.UpdatePostRequest) (*models.Post, error)
	DeletePost(postID, userID uint) (bool, error)
	SearchPosts(term string, limit, offset int) ([]models.SearchPost, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a non-deleted post joined with its author.
// Returns nil without error when the post is absent or soft-deleted.
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.PostDetail, error) {
	var post models.PostDetail
	res := r.db.Raw(
		`SELECT p.id, p.user_id, p.content, p.media_url, p.comments_enabled, p.created_at, p.updated_at,
		        u.username, u.full_name
		 FROM posts p
		 JOIN users u ON p.user_id = u.id
		 WHERE p.id = ? AND p.is_deleted = FALSE`,
		id,
	).Scan(&post)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &post, nil
}

// GetPostsByUserID retrieves a user's posts, newest first
func (r *PostgresPostRepository) GetPostsByUserID(userID uint, limit, offset int) ([]models.PostDetail, error) {
	posts := []models.PostDetail{}
	err := r.db.Raw(
		`SELECT p.id, p.user_id, p.content, p.media_url, p.comments_enabled, p.created_at, p.updated_at,
		        u.username, u.full_name
		 FROM posts p
		 JOIN users u ON p.user_id = u.id
		 WHERE p.user_id = ? AND p.is_deleted = FALSE AND u.is_deleted = FALSE
		 ORDER BY p.created_at DESC
		 LIMIT ? OFFSET ?`,
		userID, limit, offset,
	).Scan(&posts).Error
	return posts, err
}

// GetFeedPosts retrieves posts from followed users plus the user's own posts,
// with like/comment counts and the requester's liked flag. Recomputed per
// request; no precomputation.
func (r *PostgresPostRepository) GetFeedPosts(userID uint, limit, offset int) ([]models.FeedPost, error) {
	posts := []models.FeedPost{}
	err := r.db.Raw(
		`SELECT p.id, p.user_id, p.content, p.media_url, p.comments_enabled, p.created_at, p.updated_at,
		        u.username, u.full_name,
		        (SELECT COUNT(*) FROM likes WHERE post_id = p.id) AS likes_count,
		        (SELECT COUNT(*) FROM comments WHERE post_id = p.id AND is_deleted = FALSE) AS comments_count,
		        (SELECT COUNT(*) > 0 FROM likes WHERE post_id = p.id AND user_id = ?) AS is_liked_by_user
		 FROM posts p
		 JOIN users u ON p.user_id = u.id
		 WHERE p.is_deleted = FALSE AND u.is_deleted = FALSE
		 AND (p.user_id = ? OR p.user_id IN (SELECT following_id FROM follows WHERE follower_id = ?))
		 ORDER BY p.created_at DESC
		 LIMIT ? OFFSET ?`,
		userID, userID, userID, limit, offset,
	).Scan(&posts).Error
	return posts, err
}

// UpdatePost merges the set fields into the owner's post in a single
// statement. Returns nil when the post is absent, deleted, or owned by
// someone else; the caller cannot distinguish those cases.
func (r *PostgresPostRepository) UpdatePost(postID, userID uint, req *models.UpdatePostRequest) (*models.Post, error) {
	var post models.Post
	res := r.db.Raw(
		`UPDATE posts
		 SET content = COALESCE(?, content),
		     media_url = COALESCE(?, media_url),
		     comments_enabled = COALESCE(?, comments_enabled),
		     updated_at = NOW()
		 WHERE id = ? AND user_id = ? AND is_deleted = FALSE
		 RETURNING id, user_id, content, media_url, comments_enabled, created_at, updated_at`,
		req.Content, req.MediaURL, req.CommentsEnabled, postID, userID,
	).Scan(&post)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &post, nil
}

// DeletePost soft-deletes the owner's post. False means absent, already
// deleted, or not owned by userID.
func (r *PostgresPostRepository) DeletePost(postID, userID uint) (bool, error) {
	res := r.db.Exec(
		`UPDATE posts SET is_deleted = TRUE, updated_at = NOW()
		 WHERE id = ? AND user_id = ? AND is_deleted = FALSE`,
		postID, userID,
	)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// SearchPosts matches post content by case-insensitive substring
func (r *PostgresPostRepository) SearchPosts(term string, limit, offset int) ([]models.SearchPost, error) {
	posts := []models.SearchPost{}
	err := r.db.Raw(
		`SELECT p.id, p.user_id, p.content, p.media_url, p.comments_enabled, p.created_at, p.updated_at,
		        u.username, u.full_name,
		        (SELECT COUNT(*) FROM likes WHERE post_id = p.id) AS likes_count,
		        (SELECT COUNT(*) FROM comments WHERE post_id = p.id AND is_deleted = FALSE) AS comments_count
		 FROM posts p
		 JOIN users u ON p.user_id = u.id
		 WHERE p.content ILIKE ? AND p.is_deleted = FALSE AND u.is_deleted = FALSE
		 ORDER BY p.created_at DESC
		 LIMIT ? OFFSET ?`,
		"%"+term+"%", limit, offset,
	).Scan(&posts).Error
	return posts, err
}
