package handlers

import (
	"net/http"
	"testing"

	"pulsefeed/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func TestRegister_StoresHashNotPlaintext(t *testing.T) {
	var created *models.User
	userRepo := &stubUserRepository{
		getUserByUsername: func(username string) (*models.User, error) { return nil, assert.AnError },
		getUserByEmail:    func(email string) (*models.User, error) { return nil, assert.AnError },
		createUser: func(user *models.User) error {
			user.ID = 1
			created = user
			return nil
		},
	}
	h := NewAuthHandler(userRepo, testSecret)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"hunter22","full_name":"Alice A"}`, 0)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, created)
	assert.NotEqual(t, "hunter22", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter22")))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	userRepo := &stubUserRepository{
		getUserByUsername: func(username string) (*models.User, error) {
			return &models.User{ID: 1, Username: username}, nil
		},
	}
	h := NewAuthHandler(userRepo, testSecret)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"hunter22","full_name":"Alice A"}`, 0)

	err := h.Register(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, err.(*echo.HTTPError).Code)
}

func TestRegister_InvalidBody(t *testing.T) {
	h := NewAuthHandler(&stubUserRepository{}, testSecret)

	// username too short
	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register",
		`{"username":"ab","email":"alice@example.com","password":"hunter22","full_name":"Alice A"}`, 0)

	err := h.Register(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, err.(*echo.HTTPError).Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	require.NoError(t, err)

	userRepo := &stubUserRepository{
		getUserByUsername: func(username string) (*models.User, error) {
			return &models.User{ID: 1, Username: username, PasswordHash: string(hash)}, nil
		},
	}
	h := NewAuthHandler(userRepo, testSecret)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"wrong"}`, 0)

	loginErr := h.Login(c)
	require.Error(t, loginErr)
	assert.Equal(t, http.StatusUnauthorized, loginErr.(*echo.HTTPError).Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	userRepo := &stubUserRepository{
		getUserByUsername: func(username string) (*models.User, error) { return nil, assert.AnError },
	}
	h := NewAuthHandler(userRepo, testSecret)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login",
		`{"username":"ghost","password":"whatever"}`, 0)

	err := h.Login(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	require.NoError(t, err)

	userRepo := &stubUserRepository{
		getUserByUsername: func(username string) (*models.User, error) {
			return &models.User{ID: 1, Username: username, PasswordHash: string(hash)}, nil
		},
	}
	h := NewAuthHandler(userRepo, testSecret)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"hunter22"}`, 0)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "token")
}
