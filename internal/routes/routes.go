package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/recipeshare/server/internal/handlers"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Health      *handlers.HealthHandler
	Category    *handlers.CategoryHandler
	Recipe      *handlers.RecipeHandler
	Comment     *handlers.CommentHandler
	Rating      *handlers.RatingHandler
	Favorite    *handlers.FavoriteHandler
	Report      *handlers.ReportHandler
	User        *handlers.UserHandler
	Stats       *handlers.StatsHandler
	Maintenance *handlers.MaintenanceHandler
}

func Setup(app *fiber.App, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 120 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", h.Auth.Login)
	auth.Post("/register", h.Auth.Register)
	auth.Get("/me", h.Auth.Me)

	api.Get("/categories", h.Category.List)
	api.Post("/categories", h.Category.Create)
	api.Put("/categories/:id", h.Category.Update)
	api.Delete("/categories/:id", h.Category.Delete)

	// /recipes/mine must register before /recipes/:id
	api.Get("/recipes/mine", h.Recipe.ListMine)
	api.Get("/recipes", h.Recipe.List)
	api.Post("/recipes", h.Recipe.Create)
	api.Get("/recipes/:id", h.Recipe.Get)
	api.Put("/recipes/:id", h.Recipe.Update)
	api.Delete("/recipes/:id", h.Recipe.Delete)

	api.Get("/recipes/:id/comments", h.Comment.ListByRecipe)
	api.Post("/recipes/:id/comments", h.Comment.Create)
	api.Delete("/comments/:id", h.Comment.Remove)

	api.Get("/recipes/:id/ratings", h.Rating.ListByRecipe)
	api.Get("/recipes/:id/ratings/summary", h.Rating.Summary)
	api.Post("/recipes/:id/ratings", h.Rating.Rate)

	api.Get("/favorites", h.Favorite.ListMine)
	api.Get("/favorites/:id", h.Favorite.Get)
	api.Post("/favorites/:id", h.Favorite.Toggle)

	api.Post("/reports", h.Report.Create)

	management := api.Group("/management")
	management.Get("/moderation", h.Report.Queue)
	management.Post("/moderation/:id/resolve", h.Report.Resolve)
	management.Post("/moderation/:id/remove", h.Report.Remove)

	api.Get("/stats/categories/popular", h.Stats.PopularCategories)
	api.Get("/stats/categories/ratings", h.Stats.RatingPerCategory)

	admin := api.Group("/admin")
	admin.Get("/users", h.User.List)
	admin.Get("/users/:id", h.User.Get)
	admin.Patch("/users/:id", h.User.SetRole)
	admin.Post("/users/:id/reset-password", h.User.ResetPassword)

	api.Post("/maintenance/reset-demo", h.Maintenance.ResetDemo)
}
