package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"pulsefeed/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserProfile_NotFound(t *testing.T) {
	userRepo := &stubUserRepository{
		getUserProfile: func(id uint) (*models.UserProfile, error) { return nil, nil },
	}
	h := NewUserHandler(userRepo, &stubFollowRepository{})

	c, _ := newTestContext(t, http.MethodGet, "/api/users/99", "", 1)
	c.SetParamNames("user_id")
	c.SetParamValues("99")

	err := h.GetUserProfile(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, err.(*echo.HTTPError).Code)
}

func TestGetUserProfile_IncludesIsFollowing(t *testing.T) {
	userRepo := &stubUserRepository{
		getUserProfile: func(id uint) (*models.UserProfile, error) {
			return &models.UserProfile{ID: id, Username: "bob", FollowersCount: 8}, nil
		},
	}
	var gotFollower, gotFollowing uint
	followRepo := &stubFollowRepository{
		isFollowing: func(followerID, followingID uint) (bool, error) {
			gotFollower, gotFollowing = followerID, followingID
			return true, nil
		},
	}
	h := NewUserHandler(userRepo, followRepo)

	c, rec := newTestContext(t, http.MethodGet, "/api/users/2", "", 1)
	c.SetParamNames("user_id")
	c.SetParamValues("2")

	require.NoError(t, h.GetUserProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(1), gotFollower)
	assert.Equal(t, uint(2), gotFollowing)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	user := body["user"].(map[string]interface{})
	assert.Equal(t, true, user["is_following"])
	assert.Equal(t, float64(8), user["followers_count"])
}

func TestSearchUsers_ShortQueryRejectedBeforeRepo(t *testing.T) {
	called := false
	userRepo := &stubUserRepository{
		searchUsersByName: func(term string, limit, offset int) ([]models.UserSummary, error) {
			called = true
			return nil, nil
		},
	}
	h := NewUserHandler(userRepo, &stubFollowRepository{})

	c, _ := newTestContext(t, http.MethodGet, "/api/users/search?q=a", "", 1)

	err := h.SearchUsers(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, err.(*echo.HTTPError).Code)
	assert.False(t, called)
}

func TestSearchUsers_Paginated(t *testing.T) {
	userRepo := &stubUserRepository{
		searchUsersByName: func(term string, limit, offset int) ([]models.UserSummary, error) {
			return make([]models.UserSummary, limit), nil
		},
	}
	h := NewUserHandler(userRepo, &stubFollowRepository{})

	c, rec := newTestContext(t, http.MethodGet, "/api/users/search?q=al&limit=10", "", 1)

	require.NoError(t, h.SearchUsers(c))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, true, pagination["hasMore"])
}
