package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.UserSkill{},
		&models.UserInterest{},
		&models.Friendship{},
		&models.Message{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

// newTestServer wires a Server against an in-memory database, skipping the
// Prometheus middleware so repeated construction across tests does not
// re-register collectors.
func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)

	userRepo := repository.NewUserRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	friendRepo := repository.NewFriendRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	s := &Server{
		db:          db,
		userRepo:    userRepo,
		skillRepo:   skillRepo,
		profileRepo: profileRepo,
		friendRepo:  friendRepo,
		messageRepo: messageRepo,
	}
	s.profileService = service.NewProfileService(userRepo, skillRepo, profileRepo)
	s.friendService = service.NewFriendService(friendRepo, userRepo)
	s.messageService = service.NewMessageService(messageRepo, friendRepo, userRepo)
	s.matchService = service.NewMatchService(profileRepo, userRepo, friendRepo, nil)

	return s, db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	u := &models.User{Username: name, Name: name, Bio: fmt.Sprintf("bio for %s", name)}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return u
}

func createTestSkill(t *testing.T, db *gorm.DB, name string) *models.Skill {
	t.Helper()
	sk := &models.Skill{Name: name, Category: "Testing"}
	if err := db.Create(sk).Error; err != nil {
		t.Fatalf("create skill %s: %v", name, err)
	}
	return sk
}

// putJSON issues a PUT request with a JSON body against the test app.
func putJSON(t *testing.T, app *fiber.App, url string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPut, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

// asUser wraps a handler so it runs with the given user already
// authenticated, mirroring what the auth middleware would set.
func asUser(userID uint, handler fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return handler(c)
	}
}
