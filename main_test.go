package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookmarks/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TestNewApp checks that the wired app serves the health endpoint and
// guards the protected surface.
func TestNewApp(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:mainapp?mode=memory&cache=shared"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.User{}, &models.Bookmark{}))

	app := newApp(db, nil, "test_jwt_secret", 15*time.Minute)

	// Health endpoint is public.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Everything under /users and /bookmarks is guarded.
	for _, path := range []string{"/users/me", "/bookmarks"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	}

	// Signup is public.
	req = httptest.NewRequest(http.MethodPost, "/auth/signup", nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
