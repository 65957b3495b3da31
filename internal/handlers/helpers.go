package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"pulsefeed/internal/models"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// getUserIDFromContext returns the authenticated user's ID placed in the
// context by the JWT middleware, or 0 when absent.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// pagination holds normalized page/limit/offset values for list endpoints
type pagination struct {
	Page   int
	Limit  int
	Offset int
}

// parsePagination reads page (default 1) and limit (default 20, capped at
// 100) from the query string
func parsePagination(c echo.Context) pagination {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return pagination{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

// response reports hasMore as "a full page came back", an approximation
// rather than an exact more-exists check
func (p pagination) response(returned int) echo.Map {
	return echo.Map{
		"page":    p.Page,
		"limit":   p.Limit,
		"hasMore": returned == p.Limit,
	}
}

// parseIDParam parses a numeric path parameter
func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Valid "+strings.ReplaceAll(name, "_", " ")+" is required")
	}
	return uint(id), nil
}

// parseSearchTerm validates the q query parameter: at least 2 characters
// after trimming, checked before any database access
func parseSearchTerm(c echo.Context) (string, error) {
	term := strings.TrimSpace(c.QueryParam("q"))
	if len(term) < 2 {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Search query must be at least 2 characters")
	}
	return term, nil
}
