package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

func TestSendFriendRequest(t *testing.T) {
	t.Parallel()
	s, db := newTestServer(t)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	app := fiber.New()
	app.Post("/friends/requests/:userId", asUser(alice.ID, s.SendFriendRequest))

	t.Run("creates pending request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/friends/requests/%d", bob.ID), nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.StatusCode)
		}

		var friendship models.Friendship
		if err := json.NewDecoder(resp.Body).Decode(&friendship); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if friendship.RequesterID != alice.ID || friendship.AddresseeID != bob.ID {
			t.Errorf("unexpected edge %d -> %d", friendship.RequesterID, friendship.AddresseeID)
		}
		if friendship.Status != models.FriendshipStatusPending {
			t.Errorf("expected pending, got %s", friendship.Status)
		}
	})

	t.Run("duplicate request conflicts", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/friends/requests/%d", bob.ID), nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusConflict {
			t.Errorf("expected 409, got %d", resp.StatusCode)
		}
	})

	t.Run("self request rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/friends/requests/%d", alice.ID), nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("unknown target 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/friends/requests/9999", nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404, got %d", resp.StatusCode)
		}
	})

	t.Run("invalid id 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/friends/requests/abc", nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", resp.StatusCode)
		}
	})
}

func TestAcceptAndRejectFriendRequest(t *testing.T) {
	t.Parallel()
	s, db := newTestServer(t)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	seedRequest := func(t *testing.T, requester, addressee uint) {
		t.Helper()
		edge := &models.Friendship{RequesterID: requester, AddresseeID: addressee, Status: models.FriendshipStatusPending}
		if err := db.Create(edge).Error; err != nil {
			t.Fatalf("seed request: %v", err)
		}
	}

	t.Run("addressee accepts", func(t *testing.T) {
		seedRequest(t, alice.ID, bob.ID)

		app := fiber.New()
		app.Post("/friends/requests/:userId/accept", asUser(bob.ID, s.AcceptFriendRequest))

		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/friends/requests/%d/accept", alice.ID), nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}

		var friendship models.Friendship
		if err := json.NewDecoder(resp.Body).Decode(&friendship); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if friendship.Status != models.FriendshipStatusAccepted {
			t.Errorf("expected accepted, got %s", friendship.Status)
		}
	})

	t.Run("requester cannot respond", func(t *testing.T) {
		seedRequest(t, alice.ID, carol.ID)

		app := fiber.New()
		app.Post("/friends/requests/:userId/accept", asUser(alice.ID, s.AcceptFriendRequest))

		// The edge alice -> carol exists, but alice is not the addressee of
		// any request sent by carol, so there is nothing to respond to.
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/friends/requests/%d/accept", carol.ID), nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404, got %d", resp.StatusCode)
		}
	})

	t.Run("addressee rejects", func(t *testing.T) {
		seedRequest(t, bob.ID, carol.ID)

		app := fiber.New()
		app.Post("/friends/requests/:userId/reject", asUser(carol.ID, s.RejectFriendRequest))

		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/friends/requests/%d/reject", bob.ID), nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}

		var friendship models.Friendship
		if err := json.NewDecoder(resp.Body).Decode(&friendship); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if friendship.Status != models.FriendshipStatusRejected {
			t.Errorf("expected rejected, got %s", friendship.Status)
		}
	})
}

func TestGetFriendsAndPendingRequests(t *testing.T) {
	t.Parallel()
	s, db := newTestServer(t)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	// bob is a confirmed friend; carol has an incoming request to alice.
	db.Create(&models.Friendship{RequesterID: alice.ID, AddresseeID: bob.ID, Status: models.FriendshipStatusAccepted})
	db.Create(&models.Friendship{RequesterID: carol.ID, AddresseeID: alice.ID, Status: models.FriendshipStatusPending})

	app := fiber.New()
	app.Get("/friends", asUser(alice.ID, s.GetFriends))
	app.Get("/friends/requests", asUser(alice.ID, s.GetPendingRequests))

	t.Run("friends list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/friends", nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}

		var friends []models.UserSummary
		if err := json.NewDecoder(resp.Body).Decode(&friends); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(friends) != 1 || friends[0].ID != bob.ID {
			t.Errorf("expected only bob, got %+v", friends)
		}
	})

	t.Run("pending list marks incoming", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/friends/requests", nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}

		var pending []models.PendingRequest
		if err := json.NewDecoder(resp.Body).Decode(&pending); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(pending) != 1 {
			t.Fatalf("expected 1 pending request, got %d", len(pending))
		}
		if pending[0].Counterpart.ID != carol.ID || !pending[0].Incoming {
			t.Errorf("expected incoming request from carol, got %+v", pending[0])
		}
	})
}

func TestGetFriendshipStatus(t *testing.T) {
	t.Parallel()
	s, db := newTestServer(t)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	db.Create(&models.Friendship{RequesterID: alice.ID, AddresseeID: bob.ID, Status: models.FriendshipStatusPending})

	app := fiber.New()
	app.Get("/friends/status/:userId", asUser(alice.ID, s.GetFriendshipStatus))

	check := func(t *testing.T, otherID uint, want string) {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/friends/status/%d", otherID), nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		var body struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body.Status != want {
			t.Errorf("expected status %q, got %q", want, body.Status)
		}
	}

	check(t, bob.ID, "pending_sent")
	check(t, carol.ID, "none")
}

func TestRemoveFriend(t *testing.T) {
	t.Parallel()
	s, db := newTestServer(t)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	db.Create(&models.Friendship{RequesterID: alice.ID, AddresseeID: bob.ID, Status: models.FriendshipStatusAccepted})

	app := fiber.New()
	app.Delete("/friends/:userId", asUser(alice.ID, s.RemoveFriend))

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/friends/%d", bob.ID), nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	var count int64
	db.Model(&models.Friendship{}).Count(&count)
	if count != 0 {
		t.Errorf("expected edge removed, %d remain", count)
	}

	// Removing again is a 404.
	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/friends/%d", bob.ID), nil)
	resp, _ = app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}
