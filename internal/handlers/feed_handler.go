package handlers

import (
	"log"
	"net/http"

	"pulsefeed/internal/repositories"

	"github.com/labstack/echo/v4"
)

// FeedHandler handles the aggregated feed endpoint
type FeedHandler struct {
	postRepository repositories.PostRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(postRepo repositories.PostRepository) *FeedHandler {
	return &FeedHandler{postRepository: postRepo}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/posts/feed", h.GetFeed)
}

// GetFeed returns the reverse-chronological union of the authenticated
// user's posts and posts from accounts they follow
func (h *FeedHandler) GetFeed(c echo.Context) error {
	userID := getUserIDFromContext(c)
	p := parsePagination(c)

	posts, err := h.postRepository.GetFeedPosts(userID, p.Limit, p.Offset)
	if err != nil {
		log.Printf("GetFeed: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"posts":      posts,
		"pagination": p.response(len(posts)),
	})
}
