package handlers

import (
	"log"
	"net/http"

	"pulsefeed/internal/models"
	"pulsefeed/internal/repositories"

	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/comments/:post_id", h.CreateComment)
	g.PUT("/comments/:comment_id", h.UpdateComment)
	g.DELETE("/comments/:comment_id", h.DeleteComment)
	g.GET("/comments/post/:post_id", h.GetPostComments)
}

// CreateComment adds a comment to a post. The post must exist and have
// comments enabled; the accessor does not re-check this.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	userID := getUserIDFromContext(c)
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		log.Printf("CreateComment: fetch post: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if post == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	if !post.CommentsEnabled {
		return echo.NewHTTPError(http.StatusForbidden, "Comments are disabled for this post")
	}

	comment := &models.Comment{
		UserID:  userID,
		PostID:  postID,
		Content: req.Content,
	}
	if err := h.commentRepository.CreateComment(comment); err != nil {
		log.Printf("CreateComment: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	fullComment, err := h.commentRepository.GetCommentByID(comment.ID)
	if err != nil {
		log.Printf("CreateComment: fetch created: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	log.Printf("User %d commented on post %d", userID, postID)

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Comment created successfully",
		"comment": fullComment,
	})
}

// UpdateComment edits the authenticated user's own comment. A foreign
// comment answers 403, an absent one 404.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	userID := getUserIDFromContext(c)
	commentID, err := parseIDParam(c, "comment_id")
	if err != nil {
		return err
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	existing, err := h.commentRepository.GetCommentByID(commentID)
	if err != nil {
		log.Printf("UpdateComment: fetch: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if existing == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}
	if existing.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Not authorized to update this comment")
	}

	updated, err := h.commentRepository.UpdateComment(commentID, userID, req.Content)
	if err != nil {
		log.Printf("UpdateComment: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if updated == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found or already deleted")
	}

	fullComment, err := h.commentRepository.GetCommentByID(commentID)
	if err != nil {
		log.Printf("UpdateComment: fetch updated: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	log.Printf("User %d updated comment %d", userID, commentID)

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Comment updated successfully",
		"comment": fullComment,
	})
}

// DeleteComment soft-deletes the authenticated user's own comment and
// returns the post's remaining comment count
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	userID := getUserIDFromContext(c)
	commentID, err := parseIDParam(c, "comment_id")
	if err != nil {
		return err
	}

	existing, err := h.commentRepository.GetCommentByID(commentID)
	if err != nil {
		log.Printf("DeleteComment: fetch: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if existing == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}
	if existing.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Not authorized to delete this comment")
	}

	ok, err := h.commentRepository.DeleteComment(commentID, userID)
	if err != nil {
		log.Printf("DeleteComment: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found or already deleted")
	}

	count, err := h.commentRepository.GetCommentCountByPostID(existing.PostID)
	if err != nil {
		log.Printf("DeleteComment: count: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	log.Printf("User %d deleted comment %d", userID, commentID)

	return c.JSON(http.StatusOK, echo.Map{
		"message":        "Comment deleted successfully",
		"comments_count": count,
	})
}

// GetPostComments lists a post's comments oldest-first, paginated
func (h *CommentHandler) GetPostComments(c echo.Context) error {
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return err
	}
	p := parsePagination(c)

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		log.Printf("GetPostComments: fetch post: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if post == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	comments, err := h.commentRepository.GetCommentsByPostID(postID, p.Limit, p.Offset)
	if err != nil {
		log.Printf("GetPostComments: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	totalCount, err := h.commentRepository.GetCommentCountByPostID(postID)
	if err != nil {
		log.Printf("GetPostComments: count: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"comments":         comments,
		"total_count":      totalCount,
		"comments_enabled": post.CommentsEnabled,
		"pagination":       p.response(len(comments)),
	})
}
