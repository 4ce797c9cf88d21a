// Package routes binds the HTTP surface: every API path, its method, and the
// gate that guards it.
package routes

import (
	"net/http"

	"github.com/tinselworks/noel/internal/app"
	"github.com/tinselworks/noel/internal/handler"
	"github.com/tinselworks/noel/internal/middleware"
	"github.com/tinselworks/noel/web"
)

// SetupRoutes assembles the router. Auth endpoints sit behind a per-IP rate
// limit; personal resources behind the required gate; wish creation behind
// the optional one so guests can still submit.
func SetupRoutes(a *app.App) http.Handler {
	verbose := a.Config.IsDevelopment()
	maxLimit := a.Config.MaxPageLimit

	authHandler := handler.NewAuthHandler(a.AuthService, verbose)
	wishHandler := handler.NewWishHandler(a.WishService, maxLimit, verbose)
	todoHandler := handler.NewTodoHandler(a.TodoService, maxLimit, verbose)
	timelineHandler := handler.NewTimelineHandler(a.TimelineService, verbose)
	galleryHandler := handler.NewGalleryHandler(a.GalleryService, maxLimit, verbose)
	musicHandler := handler.NewMusicHandler(a.MusicService, verbose)
	statsHandler := handler.NewStatsHandler(a.StatsService, verbose)
	healthHandler := handler.NewHealthHandler(a.DB, verbose)

	requireAuth := middleware.RequireAuth(a.AuthService)
	optionalAuth := middleware.OptionalAuth(a.AuthService)
	rateLimitAuth := middleware.RateLimitAuth()

	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", rateLimitAuth(authHandler.Register))
	mux.HandleFunc("POST /auth/login", rateLimitAuth(authHandler.Login))
	mux.HandleFunc("GET /auth/me", requireAuth(authHandler.Me))

	mux.HandleFunc("GET /wishes", wishHandler.List)
	mux.HandleFunc("POST /wishes", optionalAuth(wishHandler.Create))

	mux.HandleFunc("GET /todos", requireAuth(todoHandler.List))
	mux.HandleFunc("POST /todos", requireAuth(todoHandler.Create))
	mux.HandleFunc("PATCH /todos/{id}", requireAuth(todoHandler.Update))
	mux.HandleFunc("DELETE /todos/{id}", requireAuth(todoHandler.Delete))

	mux.HandleFunc("GET /timeline", timelineHandler.List)

	mux.HandleFunc("GET /gallery", galleryHandler.List)
	mux.HandleFunc("POST /gallery", requireAuth(galleryHandler.Upload))
	mux.HandleFunc("DELETE /gallery/{id}", requireAuth(galleryHandler.Delete))

	mux.HandleFunc("GET /music", musicHandler.Playlist)
	mux.HandleFunc("POST /music/{id}/play", musicHandler.Play)

	mux.HandleFunc("GET /stats", statsHandler.Snapshot)
	mux.HandleFunc("POST /stats/visit", statsHandler.Visit)

	mux.HandleFunc("GET /healthz", healthHandler.Check)

	mux.Handle("/", http.FileServerFS(web.FS))

	return middleware.Chain(mux, middleware.RequestLogging)
}
