package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/sportmatch/backend/internal/config"
	"github.com/sportmatch/backend/internal/handlers"
	"github.com/sportmatch/backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	profileHandler *handlers.ProfileHandler,
	swipeHandler *handlers.SwipeHandler,
	chatHandler *handlers.ChatHandler,
	suggestionHandler *handlers.SuggestionHandler,
	routeHandler *handlers.RouteHandler,
	moderationHandler *handlers.ModerationHandler,
	wsHandler *handlers.WSHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth is public but gets a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Profile
	api.Get("/profile", middleware.JWTProtected(cfg), profileHandler.GetProfile)
	api.Put("/profile", middleware.JWTProtected(cfg), profileHandler.UpdateProfile)
	api.Put("/profile/preferences", middleware.JWTProtected(cfg), profileHandler.UpdatePreferences)
	api.Post("/profile/photos", middleware.JWTProtected(cfg), profileHandler.AddPhoto)
	api.Delete("/profile/photos/:id", middleware.JWTProtected(cfg), profileHandler.DeletePhoto)

	// Matching
	api.Post("/swipe", middleware.JWTProtected(cfg), swipeHandler.Swipe)
	api.Get("/matches", middleware.JWTProtected(cfg), swipeHandler.ListMatches)
	api.Delete("/matches/:id", middleware.JWTProtected(cfg), swipeHandler.Unmatch)
	api.Get("/matches/:id/route", middleware.JWTProtected(cfg), routeHandler.SuggestRoute)
	api.Get("/suggestions", middleware.JWTProtected(cfg), suggestionHandler.Suggestions)

	// Messaging, gated on an active mutual match inside the service
	api.Post("/chat", middleware.JWTProtected(cfg), chatHandler.Send)
	api.Get("/chat/:id", middleware.JWTProtected(cfg), chatHandler.History)

	// Moderation, user endpoints
	api.Post("/blocks", middleware.JWTProtected(cfg), moderationHandler.Block)
	api.Post("/reports", middleware.JWTProtected(cfg), moderationHandler.Report)

	// Realtime notifications; token rides the query string on upgrade
	api.Get("/ws", wsHandler.Upgrade, wsHandler.Serve())

	// Admin moderation panel
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(cfg))
	admin.Get("/moderation/reports", moderationHandler.ListReports)
	admin.Put("/moderation/reports/:id", moderationHandler.ActionReport)
}
