package server

import (
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetSkillCatalog handles GET /api/skills
func (s *Server) GetSkillCatalog(c *fiber.Ctx) error {
	skills, err := s.profileService.Catalog(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(skills)
}

// GetMySkillProfile handles GET /api/users/me/skills. It returns the full
// catalog annotated with the caller's declared teach and interest levels.
func (s *Server) GetMySkillProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	skills, err := s.profileService.CatalogForUser(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(skills)
}

type declarationInput struct {
	Level models.SkillLevel `json:"level"`
}

// SetMySkill handles PUT /api/users/me/skills/:skillId. Level 0 removes the
// declaration.
func (s *Server) SetMySkill(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	skillID, err := s.parseID(c, "skillId")
	if err != nil {
		return nil
	}

	var input declarationInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.profileService.SetSkill(c.Context(), userID, skillID, input.Level); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"skill_id": skillID,
		"level":    input.Level,
	})
}

// SetMyInterest handles PUT /api/users/me/interests/:skillId. Level 0 removes
// the declaration.
func (s *Server) SetMyInterest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	skillID, err := s.parseID(c, "skillId")
	if err != nil {
		return nil
	}

	var input declarationInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.profileService.SetInterest(c.Context(), userID, skillID, input.Level); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"skill_id": skillID,
		"level":    input.Level,
	})
}
