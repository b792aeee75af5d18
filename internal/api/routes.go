package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Routes configures the router: middleware, the /api endpoints, and the
// static frontend with SPA fallback.
func Routes(h *Handlers, staticDir string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.HandleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/verify", h.HandleVerify)
		r.Post("/send", h.HandleSend)
		r.Get("/open/{id}", h.HandleOpen)
		r.Get("/open/{id}/pixel", h.HandleOpenPixel)
		r.Get("/analytics", h.HandleAnalytics)
	})

	spaHandler(r, staticDir)

	return r
}

// spaHandler serves static files and falls back to index.html so that
// client-side routes resolve on refresh.
func spaHandler(r chi.Router, staticDir string) {
	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		// API routes never fall through to the frontend
		if strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/health") {
			http.NotFound(w, req)
			return
		}

		filePath := filepath.Join(staticDir, filepath.Clean(path))
		if info, err := os.Stat(filePath); err == nil && !info.IsDir() {
			http.ServeFile(w, req, filePath)
			return
		}

		http.ServeFile(w, req, filepath.Join(staticDir, "index.html"))
	})
}
