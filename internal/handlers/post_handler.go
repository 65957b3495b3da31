package handlers

import (
	"log"
	"net/http"

	"pulsefeed/internal/models"
	"pulsefeed/internal/repositories"

	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository) *PostHandler {
	return &PostHandler{postRepository: postRepo}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/my", h.GetMyPosts)
	g.GET("/posts/search", h.SearchPosts)
	g.GET("/posts/user/:user_id", h.GetUserPosts)
	g.GET("/posts/:post_id", h.GetPost)
	g.PUT("/posts/:post_id", h.UpdatePost)
	g.DELETE("/posts/:post_id", h.DeletePost)
}

// CreatePost creates a new post for the authenticated user
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	commentsEnabled := true
	if req.CommentsEnabled != nil {
		commentsEnabled = *req.CommentsEnabled
	}

	post := &models.Post{
		UserID:          userID,
		Content:         req.Content,
		MediaURL:        req.MediaURL,
		CommentsEnabled: commentsEnabled,
	}
	if err := h.postRepository.CreatePost(post); err != nil {
		log.Printf("CreatePost: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	log.Printf("User %d created post %d", userID, post.ID)

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Post created successfully",
		"post":    post,
	})
}

// GetPost fetches a single post with its author
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		log.Printf("GetPost: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if post == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	return c.JSON(http.StatusOK, echo.Map{"post": post})
}

// GetUserPosts lists a user's posts, paginated
func (h *PostHandler) GetUserPosts(c echo.Context) error {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		return err
	}
	p := parsePagination(c)

	posts, err := h.postRepository.GetPostsByUserID(userID, p.Limit, p.Offset)
	if err != nil {
		log.Printf("GetUserPosts: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"posts":      posts,
		"pagination": p.response(len(posts)),
	})
}

// GetMyPosts lists the authenticated user's own posts
func (h *PostHandler) GetMyPosts(c echo.Context) error {
	userID := getUserIDFromContext(c)
	p := parsePagination(c)

	posts, err := h.postRepository.GetPostsByUserID(userID, p.Limit, p.Offset)
	if err != nil {
		log.Printf("GetMyPosts: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"posts":      posts,
		"pagination": p.response(len(posts)),
	})
}

// UpdatePost partially updates the authenticated user's post. Absent and
// foreign posts both answer 404.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	userID := getUserIDFromContext(c)
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return err
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Content == nil && req.MediaURL == nil && req.CommentsEnabled == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "At least one field must be provided")
	}

	post, err := h.postRepository.UpdatePost(postID, userID, &req)
	if err != nil {
		log.Printf("UpdatePost: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if post == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found or unauthorized")
	}

	log.Printf("User %d updated post %d", userID, postID)

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Post updated successfully",
		"post":    post,
	})
}

// DeletePost soft-deletes the authenticated user's post
func (h *PostHandler) DeletePost(c echo.Context) error {
	userID := getUserIDFromContext(c)
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return err
	}

	ok, err := h.postRepository.DeletePost(postID, userID)
	if err != nil {
		log.Printf("DeletePost: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found or unauthorized")
	}

	log.Printf("User %d deleted post %d", userID, postID)

	return c.JSON(http.StatusOK, echo.Map{"message": "Post deleted successfully"})
}

// SearchPosts searches post content by substring
func (h *PostHandler) SearchPosts(c echo.Context) error {
	term, err := parseSearchTerm(c)
	if err != nil {
		return err
	}
	p := parsePagination(c)

	posts, err := h.postRepository.SearchPosts(term, p.Limit, p.Offset)
	if err != nil {
		log.Printf("SearchPosts: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"posts":       posts,
		"search_term": term,
		"pagination":  p.response(len(posts)),
	})
}
