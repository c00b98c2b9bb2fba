package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sportmatch/backend/internal/dto"
	"github.com/sportmatch/backend/internal/middleware"
	"github.com/sportmatch/backend/internal/services"
)

type RouteHandler struct {
	routeService *services.RouteService
}

func NewRouteHandler(routeService *services.RouteService) *RouteHandler {
	return &RouteHandler{routeService: routeService}
}

func (h *RouteHandler) SuggestRoute(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)
	if userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	matchID, err := c.ParamsInt("id")
	if err != nil || matchID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid match id",
		})
	}

	route, err := h.routeService.SuggestRoute(userID, uint(matchID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoMatch):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrUserMissing):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(route)
}
