package handlers

import (
	"strconv"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sportmatch/backend/internal/config"
	"github.com/sportmatch/backend/internal/dto"
	"github.com/sportmatch/backend/internal/realtime"
)

// WSHandler upgrades authenticated clients to a notification socket.
// Browsers cannot set an Authorization header on the upgrade request, so
// the access token travels as a query parameter instead.
type WSHandler struct {
	hub *realtime.Hub
	cfg *config.Config
}

func NewWSHandler(hub *realtime.Hub, cfg *config.Config) *WSHandler {
	return &WSHandler{hub: hub, cfg: cfg}
}

// Upgrade validates the token and stashes the user id before the
// protocol switch. Must run before Serve in the route chain.
func (h *WSHandler) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	userID := h.userIDFromToken(c.Query("token"))
	if userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized: invalid or expired token",
		})
	}

	c.Locals("ws_user_id", userID)
	return c.Next()
}

// Serve runs the connection pumps. Blocks until the peer disconnects.
func (h *WSHandler) Serve() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, ok := conn.Locals("ws_user_id").(uint)
		if !ok || userID == 0 {
			conn.Close()
			return
		}

		client := realtime.NewClient(userID, conn)
		h.hub.Register(client)

		go client.WritePump()
		client.ReadPump(h.hub)
	})
}

func (h *WSHandler) userIDFromToken(tokenStr string) uint {
	if tokenStr == "" {
		return 0
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0
	}
	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
