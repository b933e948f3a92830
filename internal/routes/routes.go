package routes

import (
	"net/http"

	"github.com/gracechapel/api/internal/app"
	"github.com/gracechapel/api/internal/handler"
	"github.com/gracechapel/api/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	sermon := handler.NewSermonHandler(app.SermonService, app.Cfg.MaxUploadSize)
	event := handler.NewEventHandler(app.EventService, app.Cfg.MaxUploadSize)
	ministry := handler.NewMinistryHandler(app.MinistryService, app.Cfg.MaxUploadSize)

	requireAuth := middleware.RequireAuth(app.AuthService)
	rateLimiter := middleware.RateLimitAuth()

	mux := http.NewServeMux()

	// Uploaded assets (local storage serves straight from the upload dir)
	if app.Cfg.StorageDriver == "local" {
		files := http.FileServer(http.Dir(app.Cfg.UploadDir))
		mux.Handle("GET /images/", files)
		mux.Handle("GET /audio/", files)
	}

	// Auth (credential endpoints are rate limited)
	mux.HandleFunc("POST /auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /auth/register", rateLimiter(auth.Register))
	mux.HandleFunc("GET /auth/verify", requireAuth(auth.Verify))

	// Sermons
	mux.HandleFunc("GET /sermons", sermon.List)
	mux.HandleFunc("GET /sermons/{id}", sermon.Get)
	mux.HandleFunc("POST /sermons", requireAuth(sermon.Create))
	mux.HandleFunc("PUT /sermons/{id}", requireAuth(sermon.Update))
	mux.HandleFunc("DELETE /sermons/{id}", requireAuth(sermon.Delete))

	// Events
	mux.HandleFunc("GET /events", event.List)
	mux.HandleFunc("GET /events/{id}", event.Get)
	mux.HandleFunc("POST /events", requireAuth(event.Create))
	mux.HandleFunc("PUT /events/{id}", requireAuth(event.Update))
	mux.HandleFunc("DELETE /events/{id}", requireAuth(event.Delete))

	// Ministries
	mux.HandleFunc("GET /ministries", ministry.List)
	mux.HandleFunc("GET /ministries/{id}", ministry.Get)
	mux.HandleFunc("POST /ministries", requireAuth(ministry.Create))
	mux.HandleFunc("PUT /ministries/{id}", requireAuth(ministry.Update))
	mux.HandleFunc("DELETE /ministries/{id}", requireAuth(ministry.Delete))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
	)
}
