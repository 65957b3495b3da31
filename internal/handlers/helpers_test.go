package handlers

import (
	"net/http"
	"testing"

	"pulsefeed/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 1, 20, 0},
		{"explicit", "page=3&limit=10", 3, 10, 20},
		{"zero page falls back", "page=0", 1, 20, 0},
		{"negative limit falls back", "limit=-5", 1, 20, 0},
		{"limit capped", "limit=500", 1, 100, 0},
		{"garbage ignored", "page=abc&limit=xyz", 1, 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(t, http.MethodGet, "/items?"+tt.query, "", 1)
			p := parsePagination(c)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantOffset, p.Offset)
		})
	}
}

func TestPaginationResponse_HasMore(t *testing.T) {
	p := pagination{Page: 1, Limit: 20}
	assert.Equal(t, true, p.response(20)["hasMore"])
	assert.Equal(t, false, p.response(19)["hasMore"])
	assert.Equal(t, false, p.response(0)["hasMore"])
}

func TestParseSearchTerm(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    string
		wantErr bool
	}{
		{"missing", "", "", true},
		{"one char", "q=a", "", true},
		{"whitespace only", "q=%20%20%20", "", true},
		{"padded single char", "q=%20a%20", "", true},
		{"valid", "q=go", "go", false},
		{"trimmed", "q=%20hello%20", "hello", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(t, http.MethodGet, "/search?"+tt.query, "", 1)
			term, err := parseSearchTerm(c)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, err.(*echo.HTTPError).Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, term)
		})
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/", "", 0)
	assert.Equal(t, uint(0), getUserIDFromContext(c))

	c.Set("user", &models.JwtCustomClaims{UserID: 42})
	assert.Equal(t, uint(42), getUserIDFromContext(c))
}

func TestParseIDParam(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/posts/12", "", 1)
	c.SetParamNames("post_id")
	c.SetParamValues("12")
	id, err := parseIDParam(c, "post_id")
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)

	c.SetParamValues("0")
	_, err = parseIDParam(c, "post_id")
	require.Error(t, err)

	c.SetParamValues("not-a-number")
	_, err = parseIDParam(c, "post_id")
	require.Error(t, err)
}
