package handlers

import (
	"log"
	"net/http"

	"pulsefeed/internal/models"
	"pulsefeed/internal/repositories"

	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository repositories.LikeRepository
	postRepository repositories.PostRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository: likeRepo,
		postRepository: postRepo,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.GET("/likes/my-likes", h.GetMyLikes)
	g.GET("/likes/post/:post_id", h.GetPostLikes)
	g.GET("/likes/user/:user_id", h.GetUserLikes)
	g.POST("/likes/:post_id", h.LikePost)
	g.DELETE("/likes/:post_id", h.UnlikePost)
}

// LikePost likes a post. A duplicate like answers 400, not a silent no-op.
func (h *LikeHandler) LikePost(c echo.Context) error {
	userID := getUserIDFromContext(c)
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		log.Printf("LikePost: fetch post: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if post == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	hasLiked, err := h.likeRepository.HasUserLikedPost(userID, postID)
	if err != nil {
		log.Printf("LikePost: check: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if hasLiked {
		return echo.NewHTTPError(http.StatusBadRequest, "Post already liked")
	}

	like := &models.Like{UserID: userID, PostID: postID}
	if err := h.likeRepository.CreateLike(like); err != nil {
		log.Printf("LikePost: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	likeCount, err := h.likeRepository.GetLikeCountByPostID(postID)
	if err != nil {
		log.Printf("LikePost: count: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	log.Printf("User %d liked post %d", userID, postID)

	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "Post liked successfully",
		"like":        like,
		"likes_count": likeCount,
	})
}

// UnlikePost removes the authenticated user's like from a post
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	userID := getUserIDFromContext(c)
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return err
	}

	hasLiked, err := h.likeRepository.HasUserLikedPost(userID, postID)
	if err != nil {
		log.Printf("UnlikePost: check: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if !hasLiked {
		return echo.NewHTTPError(http.StatusBadRequest, "Post not liked by user")
	}

	ok, err := h.likeRepository.DeleteLike(userID, postID)
	if err != nil {
		log.Printf("UnlikePost: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Like not found")
	}

	likeCount, err := h.likeRepository.GetLikeCountByPostID(postID)
	if err != nil {
		log.Printf("UnlikePost: count: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	log.Printf("User %d unliked post %d", userID, postID)

	return c.JSON(http.StatusOK, echo.Map{
		"message":     "Post unliked successfully",
		"likes_count": likeCount,
	})
}

// GetPostLikes lists the users who liked a post, paginated
func (h *LikeHandler) GetPostLikes(c echo.Context) error {
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return err
	}
	p := parsePagination(c)

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		log.Printf("GetPostLikes: fetch post: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if post == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	likes, err := h.likeRepository.GetLikesByPostID(postID, p.Limit, p.Offset)
	if err != nil {
		log.Printf("GetPostLikes: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	totalCount, err := h.likeRepository.GetLikeCountByPostID(postID)
	if err != nil {
		log.Printf("GetPostLikes: count: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"likes":       likes,
		"total_count": totalCount,
		"pagination":  p.response(len(likes)),
	})
}

// GetUserLikes lists the posts a user has liked, paginated
func (h *LikeHandler) GetUserLikes(c echo.Context) error {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		return err
	}
	return h.listLikedPosts(c, userID)
}

// GetMyLikes lists the authenticated user's liked posts
func (h *LikeHandler) GetMyLikes(c echo.Context) error {
	return h.listLikedPosts(c, getUserIDFromContext(c))
}

func (h *LikeHandler) listLikedPosts(c echo.Context, userID uint) error {
	p := parsePagination(c)

	likedPosts, err := h.likeRepository.GetLikedPostsByUserID(userID, p.Limit, p.Offset)
	if err != nil {
		log.Printf("listLikedPosts: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"liked_posts": likedPosts,
		"pagination":  p.response(len(likedPosts)),
	})
}
