package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestGetCurrentUser(t *testing.T) {
	t.Parallel()
	s, db := newTestServer(t)

	alice := createTestUser(t, db, "alice")

	app := fiber.New()
	app.Get("/users/me", asUser(alice.ID, s.GetCurrentUser))

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(t, "alice", user.Username)
}

func TestUpdateCurrentUser(t *testing.T) {
	t.Parallel()
	s, db := newTestServer(t)

	alice := createTestUser(t, db, "alice")
	alice.AvatarURL = "https://cdn.example.com/alice.png"
	db.Save(alice)

	app := fiber.New()
	app.Put("/users/me", asUser(alice.ID, s.UpdateCurrentUser))

	resp := putJSON(t, app, "/users/me", fiber.Map{
		"name": "  Alice Liddell  ",
		"bio":  "Looking to trade guitar lessons for Spanish.",
	})
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(t, "Alice Liddell", user.Name)
	// Omitting the avatar keeps the existing one.
	assert.Equal(t, "https://cdn.example.com/alice.png", user.AvatarURL)
}

func TestGetUser(t *testing.T) {
	t.Parallel()
	s, db := newTestServer(t)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	app := fiber.New()
	app.Get("/users/:userId", asUser(alice.ID, s.GetUser))

	t.Run("returns public summary", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/users/%d", bob.ID), nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var summary models.UserSummary
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
		assert.Equal(t, bob.ID, summary.ID)
		assert.Equal(t, "bob", summary.Username)
	})

	t.Run("unknown user 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/9999", nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid id 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/abc", nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestListUsers(t *testing.T) {
	t.Parallel()
	s, db := newTestServer(t)

	alice := createTestUser(t, db, "alice")
	for i := 0; i < 5; i++ {
		createTestUser(t, db, fmt.Sprintf("user%d", i))
	}

	app := fiber.New()
	app.Get("/users", asUser(alice.ID, s.ListUsers))

	req := httptest.NewRequest(http.MethodGet, "/users?limit=3&offset=1", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var users []models.UserSummary
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	assert.Len(t, users, 3)
}
