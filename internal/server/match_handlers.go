package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetRecommendations handles GET /api/matches
func (s *Server) GetRecommendations(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	recs, err := s.matchService.ComputeMatches(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(recs)
}
