package handlers

import (
	"log"
	"net/http"

	"pulsefeed/internal/repositories"

	"github.com/labstack/echo/v4"
)

// UserHandler handles user profile and search HTTP requests
type UserHandler struct {
	userRepository   repositories.UserRepository
	followRepository repositories.FollowRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, followRepo repositories.FollowRepository) *UserHandler {
	return &UserHandler{
		userRepository:   userRepo,
		followRepository: followRepo,
	}
}

// RegisterUserRoutes registers user profile and search routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/search", h.SearchUsers)
	g.GET("/users/:user_id", h.GetUserProfile)
}

// SearchUsers matches users by username or full name substring
func (h *UserHandler) SearchUsers(c echo.Context) error {
	term, err := parseSearchTerm(c)
	if err != nil {
		return err
	}
	p := parsePagination(c)

	users, err := h.userRepository.SearchUsersByName(term, p.Limit, p.Offset)
	if err != nil {
		log.Printf("SearchUsers: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"users":      users,
		"pagination": p.response(len(users)),
	})
}

// GetUserProfile returns a user's profile with follow counts and whether
// the requester follows them
func (h *UserHandler) GetUserProfile(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		return err
	}

	profile, err := h.userRepository.GetUserProfile(userID)
	if err != nil {
		log.Printf("GetUserProfile: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if profile == nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	isFollowing, err := h.followRepository.IsFollowing(currentUserID, userID)
	if err != nil {
		log.Printf("GetUserProfile: is following: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	profile.IsFollowing = isFollowing

	return c.JSON(http.StatusOK, echo.Map{"user": profile})
}
