package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"postboard/internal/routes"
	"postboard/web"
)

// Routes mounts one view per entry in the route table, plus static files,
// logout and the health check. Anything else gets the not-found page.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.RequestLogger)
	r.Use(h.Recover)

	r.Handle("/static/*", http.FileServer(http.FS(web.Static)))

	views := map[routes.Route]http.HandlerFunc{
		routes.Home:     h.Home,
		routes.Login:    h.Login,
		routes.Register: h.Register,
		routes.Posts:    h.Posts,
	}
	for _, route := range routes.All() {
		r.HandleFunc(route.Path(), views[route])
	}

	r.Post("/logout", h.Logout)
	r.Get("/healthz", h.Health)
	r.NotFound(h.NotFound)

	return r
}
