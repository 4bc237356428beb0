// Package server assembles the chi router: API routes under /api, the
// redirect route at the root and the subnet-guarded internal endpoints.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shortlink-app/shortlink/internal/app/handler"
	"github.com/shortlink-app/shortlink/internal/app/service"
	"github.com/shortlink-app/shortlink/internal/middleware"
)

func Init(baseURL string, log *zap.Logger, trustedSubnet string,
	mappings service.MappingServiceIface, clicks service.ClickServiceIface, users service.UserServiceIface) *chi.Mux {

	mappingHandler := handler.NewMapping(baseURL, mappings, clicks, log)
	clickHandler := handler.NewClick(clicks, log)
	userHandler := handler.NewUser(users, log)

	r := chi.NewRouter()
	r.Use(middleware.WithRequestLogging(log))
	r.Use(middleware.WithGZIP)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.WithJWT(service.NewAuth()))

		r.Post("/users", userHandler.Create)
		r.Get("/users/{id}", userHandler.ByID)

		r.Post("/url-shortener", mappingHandler.Create)
		r.Get("/url-shortener/user/{userID}", mappingHandler.ByOwner)
		r.Delete("/url-shortener/{id}", mappingHandler.Delete)

		r.Post("/analytics", clickHandler.Create)
		r.Get("/analytics/summary/{shortCode}", clickHandler.Summary)
		r.Get("/analytics/{shortCode}", clickHandler.ByShortCode)

		r.Route("/internal", func(r chi.Router) {
			r.Use(middleware.WithSubnet(trustedSubnet))
			r.Get("/stats", mappingHandler.Stats)
		})
	})

	r.Get("/ping", mappingHandler.PingDB)
	r.Get("/{code}", mappingHandler.Redirect)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Short URL is required", http.StatusBadRequest)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
