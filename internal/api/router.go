package api

import (
	"net/http"

	"github.com/dom/recipe-share/internal/api/handlers"
	"github.com/dom/recipe-share/internal/api/middleware"
	"github.com/dom/recipe-share/internal/config"
	"github.com/dom/recipe-share/internal/service"
	"github.com/dom/recipe-share/internal/websocket"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, hub *websocket.Hub, health handlers.HealthChecker, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(health)
	authHandler := handlers.NewAuthHandler(services.Auth)
	recipeHandler := handlers.NewRecipeHandler(services.Recipe)
	feedHandler := handlers.NewFeedHandler(hub)

	r.Get("/health", healthHandler.Health)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(chiMiddleware.Timeout(cfg.RequestTimeout))

			// Public auth routes
			r.Route("/auth", func(r chi.Router) {
				r.Post("/register", authHandler.Register)
				r.Post("/login", authHandler.Login)

				// Protected auth routes
				r.Group(func(r chi.Router) {
					r.Use(middleware.Auth(services.Auth))
					r.Get("/me", authHandler.Me)
				})
			})

			// Recipe routes: reads are public, mutations require a token
			r.Route("/recipes", func(r chi.Router) {
				r.Get("/", recipeHandler.List)
				r.Get("/{id}", recipeHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.Auth(services.Auth))
					r.Post("/", recipeHandler.Create)
					r.Put("/{id}", recipeHandler.Update)
					r.Delete("/{id}", recipeHandler.Delete)
				})
			})
		})

		// WebSocket feed of recipe changes
		r.Get("/ws", feedHandler.Handle)
	})

	return r
}
