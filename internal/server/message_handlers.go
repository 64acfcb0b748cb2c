package server

import (
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

type sendMessageInput struct {
	Content    string `json:"content"`
	Attachment string `json:"attachment"`
}

// SendMessage handles POST /api/messages/:userId
func (s *Server) SendMessage(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	receiverID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	var input sendMessageInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	message, err := s.messageService.Send(c.Context(), userID, receiverID, input.Content, input.Attachment)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

// GetMessageHistory handles GET /api/messages/:userId
func (s *Server) GetMessageHistory(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	counterpartID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	messages, err := s.messageService.History(c.Context(), userID, counterpartID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(messages)
}
