package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pulsefeed/internal/models"
	"pulsefeed/validators"

	"github.com/labstack/echo/v4"
)

// newTestContext builds an echo context with the validator installed and
// the given user's claims attached, mirroring the JWT middleware.
func newTestContext(t *testing.T, method, target string, body string, userID uint) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = validators.NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != 0 {
		c.Set("user", &models.JwtCustomClaims{UserID: userID, Username: "tester"})
	}
	return c, rec
}

// --- repository stubs ---

type stubPostRepository struct {
	createPost       func(post *models.Post) error
	getPostByID      func(id uint) (*models.PostDetail, error)
	getPostsByUserID func(userID uint, limit, offset int) ([]models.PostDetail, error)
	getFeedPosts     func(userID uint, limit, offset int) ([]models.FeedPost, error)
	updatePost       func(postID, userID uint, req *models.UpdatePostRequest) (*models.Post, error)
	deletePost       func(postID, userID uint) (bool, error)
	searchPosts      func(term string, limit, offset int) ([]models.SearchPost, error)
}

func (s *stubPostRepository) CreatePost(post *models.Post) error { return s.createPost(post) }
func (s *stubPostRepository) GetPostByID(id uint) (*models.PostDetail, error) {
	return s.getPostByID(id)
}
func (s *stubPostRepository) GetPostsByUserID(userID uint, limit, offset int) ([]models.PostDetail, error) {
	return s.getPostsByUserID(userID, limit, offset)
}
func (s *stubPostRepository) GetFeedPosts(userID uint, limit, offset int) ([]models.FeedPost, error) {
	return s.getFeedPosts(userID, limit, offset)
}
func (s *stubPostRepository) UpdatePost(postID, userID uint, req *models.UpdatePostRequest) (*models.Post, error) {
	return s.updatePost(postID, userID, req)
}
func (s *stubPostRepository) DeletePost(postID, userID uint) (bool, error) {
	return s.deletePost(postID, userID)
}
func (s *stubPostRepository) SearchPosts(term string, limit, offset int) ([]models.SearchPost, error) {
	return s.searchPosts(term, limit, offset)
}

type stubCommentRepository struct {
	createComment           func(comment *models.Comment) error
	getCommentByID          func(id uint) (*models.CommentWithAuthor, error)
	getCommentsByPostID     func(postID uint, limit, offset int) ([]models.CommentWithAuthor, error)
	updateComment           func(commentID, userID uint, content string) (*models.Comment, error)
	deleteComment           func(commentID, userID uint) (bool, error)
	getCommentCountByPostID func(postID uint) (int64, error)
}

func (s *stubCommentRepository) CreateComment(comment *models.Comment) error {
	return s.createComment(comment)
}
func (s *stubCommentRepository) GetCommentByID(id uint) (*models.CommentWithAuthor, error) {
	return s.getCommentByID(id)
}
func (s *stubCommentRepository) GetCommentsByPostID(postID uint, limit, offset int) ([]models.CommentWithAuthor, error) {
	return s.getCommentsByPostID(postID, limit, offset)
}
func (s *stubCommentRepository) UpdateComment(commentID, userID uint, content string) (*models.Comment, error) {
	return s.updateComment(commentID, userID, content)
}
func (s *stubCommentRepository) DeleteComment(commentID, userID uint) (bool, error) {
	return s.deleteComment(commentID, userID)
}
func (s *stubCommentRepository) GetCommentCountByPostID(postID uint) (int64, error) {
	return s.getCommentCountByPostID(postID)
}

type stubLikeRepository struct {
	createLike            func(like *models.Like) error
	deleteLike            func(userID, postID uint) (bool, error)
	hasUserLikedPost      func(userID, postID uint) (bool, error)
	getLikesByPostID      func(postID uint, limit, offset int) ([]models.LikeInfo, error)
	getLikeCountByPostID  func(postID uint) (int64, error)
	getLikedPostsByUserID func(userID uint, limit, offset int) ([]models.LikedPost, error)
}

func (s *stubLikeRepository) CreateLike(like *models.Like) error { return s.createLike(like) }
func (s *stubLikeRepository) DeleteLike(userID, postID uint) (bool, error) {
	return s.deleteLike(userID, postID)
}
func (s *stubLikeRepository) HasUserLikedPost(userID, postID uint) (bool, error) {
	return s.hasUserLikedPost(userID, postID)
}
func (s *stubLikeRepository) GetLikesByPostID(postID uint, limit, offset int) ([]models.LikeInfo, error) {
	return s.getLikesByPostID(postID, limit, offset)
}
func (s *stubLikeRepository) GetLikeCountByPostID(postID uint) (int64, error) {
	return s.getLikeCountByPostID(postID)
}
func (s *stubLikeRepository) GetLikedPostsByUserID(userID uint, limit, offset int) ([]models.LikedPost, error) {
	return s.getLikedPostsByUserID(userID, limit, offset)
}

type stubFollowRepository struct {
	createFollow    func(follow *models.Follow) error
	deleteFollow    func(followerID, followingID uint) (bool, error)
	isFollowing     func(followerID, followingID uint) (bool, error)
	getFollowing    func(userID uint, limit, offset int) ([]models.UserSummary, error)
	getFollowers    func(userID uint, limit, offset int) ([]models.UserSummary, error)
	getFollowCounts func(userID uint) (*models.FollowCounts, error)
}

func (s *stubFollowRepository) CreateFollow(follow *models.Follow) error {
	return s.createFollow(follow)
}
func (s *stubFollowRepository) DeleteFollow(followerID, followingID uint) (bool, error) {
	return s.deleteFollow(followerID, followingID)
}
func (s *stubFollowRepository) IsFollowing(followerID, followingID uint) (bool, error) {
	return s.isFollowing(followerID, followingID)
}
func (s *stubFollowRepository) GetFollowing(userID uint, limit, offset int) ([]models.UserSummary, error) {
	return s.getFollowing(userID, limit, offset)
}
func (s *stubFollowRepository) GetFollowers(userID uint, limit, offset int) ([]models.UserSummary, error) {
	return s.getFollowers(userID, limit, offset)
}
func (s *stubFollowRepository) GetFollowCounts(userID uint) (*models.FollowCounts, error) {
	return s.getFollowCounts(userID)
}

type stubUserRepository struct {
	createUser        func(user *models.User) error
	getUserByID       func(id uint) (*models.User, error)
	getUserByUsername func(username string) (*models.User, error)
	getUserByEmail    func(email string) (*models.User, error)
	getUserProfile    func(id uint) (*models.UserProfile, error)
	searchUsersByName func(term string, limit, offset int) ([]models.UserSummary, error)
}

func (s *stubUserRepository) CreateUser(user *models.User) error { return s.createUser(user) }
func (s *stubUserRepository) GetUserByID(id uint) (*models.User, error) {
	return s.getUserByID(id)
}
func (s *stubUserRepository) GetUserByUsername(username string) (*models.User, error) {
	return s.getUserByUsername(username)
}
func (s *stubUserRepository) GetUserByEmail(email string) (*models.User, error) {
	return s.getUserByEmail(email)
}
func (s *stubUserRepository) GetUserProfile(id uint) (*models.UserProfile, error) {
	return s.getUserProfile(id)
}
func (s *stubUserRepository) SearchUsersByName(term string, limit, offset int) ([]models.UserSummary, error) {
	return s.searchUsersByName(term, limit, offset)
}
