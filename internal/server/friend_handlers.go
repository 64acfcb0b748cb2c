package server

import (
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SendFriendRequest handles POST /api/friends/requests/:userId
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	targetUserID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	friendship, err := s.friendService.Request(c.Context(), userID, targetUserID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(friendship)
}

// GetPendingRequests handles GET /api/friends/requests
func (s *Server) GetPendingRequests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	requests, err := s.friendService.ListPendingRequests(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(requests)
}

// AcceptFriendRequest handles POST /api/friends/requests/:userId/accept
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	return s.respondToRequest(c, service.DecisionAccept)
}

// RejectFriendRequest handles POST /api/friends/requests/:userId/reject
func (s *Server) RejectFriendRequest(c *fiber.Ctx) error {
	return s.respondToRequest(c, service.DecisionReject)
}

// respondToRequest resolves the pending request sent by :userId to the
// caller. Only the addressee can decide, which the service enforces.
func (s *Server) respondToRequest(c *fiber.Ctx, decision service.Decision) error {
	userID := c.Locals("userID").(uint)
	requesterID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	friendship, err := s.friendService.Respond(c.Context(), requesterID, userID, decision, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(friendship)
}

// GetFriends handles GET /api/friends
func (s *Server) GetFriends(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	friends, err := s.friendService.ListFriends(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(friends)
}

// GetFriendshipStatus handles GET /api/friends/status/:userId
func (s *Server) GetFriendshipStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	otherUserID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	status, err := s.friendService.Status(c.Context(), userID, otherUserID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"user_id": otherUserID,
		"status":  status,
	})
}

// RemoveFriend handles DELETE /api/friends/:userId. It removes the edge
// whatever its status, so it also cancels a sent request or clears a
// rejection.
func (s *Server) RemoveFriend(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	otherUserID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.friendService.Remove(c.Context(), userID, otherUserID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
