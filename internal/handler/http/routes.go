package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MKhiriev/starwars-api/internal/telemetry"
	"github.com/MKhiriev/starwars-api/models"
)

// idPattern rejects non-numeric ids before any handler runs.
const idPattern = "/{id:[0-9]+}"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		telemetry.HTTPMetricsMiddleware,
		middleware.Recoverer,
		middleware.StripSlashes,
		cors.Handler(cors.Options{
			AllowedOrigins: h.corsOrigins,
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", traceIDHeader},
			ExposedHeaders: []string{traceIDHeader},
		}),
	)

	router.Get("/", h.sitemap(router))

	// catalog
	router.Get("/people", h.getPeople)
	router.Get("/people"+idPattern, h.getPerson)
	router.Get("/planets", h.getPlanets)
	router.Get("/planets"+idPattern, h.getPlanet)
	router.Get("/vehicles", h.getVehicles)
	router.Get("/vehicles"+idPattern, h.getVehicle)

	// users
	router.Get("/users", h.getUsers)
	router.Get("/users"+idPattern, h.getUser)
	router.Get("/users"+idPattern+"/favorites", h.getUserFavorites)

	// favorites act on behalf of the ?user_id= identity
	router.Route("/favorite", func(r chi.Router) {
		r.Use(h.withIdentity)
		for _, kind := range models.FavoriteKinds {
			r.Post("/"+string(kind)+idPattern, h.addFavorite(kind))
			r.Delete("/"+string(kind)+idPattern, h.removeFavorite(kind))
		}
	})

	router.Get("/version", h.getServerVersion)
	router.Method("GET", "/metrics", telemetry.MetricsHandler())

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
