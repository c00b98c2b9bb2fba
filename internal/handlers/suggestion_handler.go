package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sportmatch/backend/internal/dto"
	"github.com/sportmatch/backend/internal/middleware"
	"github.com/sportmatch/backend/internal/services"
	"github.com/sportmatch/backend/internal/storage"
)

type SuggestionHandler struct {
	suggestionService *services.SuggestionService
	store             storage.Storage
}

func NewSuggestionHandler(suggestionService *services.SuggestionService, store storage.Storage) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService, store: store}
}

func (h *SuggestionHandler) Suggestions(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)
	if userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	user, err := h.store.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	suggestions, err := h.suggestionService.Suggestions(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(fiber.Map{"suggestions": suggestions})
}
