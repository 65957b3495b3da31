package handlers

import (
	"log"
	"net/http"

	"pulsefeed/internal/models"
	"pulsefeed/internal/repositories"

	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.GET("/users/following", h.GetMyFollowing)
	g.GET("/users/followers", h.GetMyFollowers)
	g.GET("/users/stats", h.GetMyStats)
	g.POST("/users/:user_id/follow", h.FollowUser)
	g.DELETE("/users/:user_id/unfollow", h.UnfollowUser)
}

// FollowUser follows a user. Self-follow and duplicate follow answer 400.
func (h *FollowHandler) FollowUser(c echo.Context) error {
	followerID := getUserIDFromContext(c)
	followingID, err := parseIDParam(c, "user_id")
	if err != nil {
		return err
	}

	if followerID == followingID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
	}

	userToFollow, err := h.userRepository.GetUserByID(followingID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	alreadyFollowing, err := h.followRepository.IsFollowing(followerID, followingID)
	if err != nil {
		log.Printf("FollowUser: check: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if alreadyFollowing {
		return echo.NewHTTPError(http.StatusBadRequest, "Already following this user")
	}

	follow := &models.Follow{FollowerID: followerID, FollowingID: followingID}
	if err := h.followRepository.CreateFollow(follow); err != nil {
		log.Printf("FollowUser: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	log.Printf("User %d followed user %d", followerID, followingID)

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Successfully followed user",
		"user":    userToFollow,
	})
}

// UnfollowUser unfollows a user
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	followerID := getUserIDFromContext(c)
	followingID, err := parseIDParam(c, "user_id")
	if err != nil {
		return err
	}

	if followerID == followingID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot unfollow yourself")
	}

	currentlyFollowing, err := h.followRepository.IsFollowing(followerID, followingID)
	if err != nil {
		log.Printf("UnfollowUser: check: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if !currentlyFollowing {
		return echo.NewHTTPError(http.StatusBadRequest, "Not following this user")
	}

	ok, err := h.followRepository.DeleteFollow(followerID, followingID)
	if err != nil {
		log.Printf("UnfollowUser: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Follow relationship not found")
	}

	log.Printf("User %d unfollowed user %d", followerID, followingID)

	return c.JSON(http.StatusOK, echo.Map{"message": "Successfully unfollowed user"})
}

// GetMyFollowing lists the users the authenticated user follows
func (h *FollowHandler) GetMyFollowing(c echo.Context) error {
	userID := getUserIDFromContext(c)
	p := parsePagination(c)

	following, err := h.followRepository.GetFollowing(userID, p.Limit, p.Offset)
	if err != nil {
		log.Printf("GetMyFollowing: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"following":  following,
		"pagination": p.response(len(following)),
	})
}

// GetMyFollowers lists the users following the authenticated user
func (h *FollowHandler) GetMyFollowers(c echo.Context) error {
	userID := getUserIDFromContext(c)
	p := parsePagination(c)

	followers, err := h.followRepository.GetFollowers(userID, p.Limit, p.Offset)
	if err != nil {
		log.Printf("GetMyFollowers: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"followers":  followers,
		"pagination": p.response(len(followers)),
	})
}

// GetMyStats returns the authenticated user's follow counts
func (h *FollowHandler) GetMyStats(c echo.Context) error {
	userID := getUserIDFromContext(c)

	counts, err := h.followRepository.GetFollowCounts(userID)
	if err != nil {
		log.Printf("GetMyStats: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, echo.Map{"stats": counts})
}
