// Package rest exposes the zoo graph over HTTP.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"zoograph-backend/application/services"
	"zoograph-backend/interfaces/http/rest/handlers"
	"zoograph-backend/interfaces/http/rest/middleware"
)

// Options toggles optional router features
type Options struct {
	EnableCORS    bool
	EnableMetrics bool
}

// Router creates and configures the HTTP router
type Router struct {
	zoo    *services.ZooGraph
	logger *zap.Logger
	opts   Options
}

// NewRouter creates a new router instance
func NewRouter(zoo *services.ZooGraph, logger *zap.Logger, opts Options) *Router {
	return &Router{zoo: zoo, logger: logger, opts: opts}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.opts.EnableMetrics {
		router.Use(middleware.Metrics())
	}

	if rt.opts.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)

	if rt.opts.EnableMetrics {
		router.Handle("/metrics", promhttp.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		// Aviary endpoints
		r.Route("/aviaries", func(r chi.Router) {
			aviaryHandler := handlers.NewAviaryHandler(rt.zoo, rt.logger)
			r.Post("/", aviaryHandler.CreateAviary)
			r.Get("/", aviaryHandler.ListAviaries)
			r.Get("/{aviaryID}", aviaryHandler.GetAviary)
			r.Delete("/{aviaryID}", aviaryHandler.DeleteAviary)
			r.Get("/{aviaryID}/neighbors", aviaryHandler.GetNeighbors)
			r.Get("/{aviaryID}/occupants", aviaryHandler.GetOccupants)
		})

		// Path and route endpoints
		graphHandler := handlers.NewGraphHandler(rt.zoo, rt.logger)
		r.Route("/paths", func(r chi.Router) {
			r.Post("/", graphHandler.CreatePath)
			r.Get("/", graphHandler.ListPaths)
			r.Delete("/{fromID}/{toID}", graphHandler.DeletePath)
		})
		r.Get("/routes", graphHandler.GetRoute)
		r.Get("/routes/distance", graphHandler.GetDistance)
		r.Get("/connectivity", graphHandler.GetConnectivity)

		// Animal endpoints
		r.Route("/animals", func(r chi.Router) {
			animalHandler := handlers.NewAnimalHandler(rt.zoo, rt.logger)
			r.Post("/", animalHandler.CreateAnimal)
			r.Get("/", animalHandler.ListAnimals)
			r.Get("/status", animalHandler.GetPlacementStatus)
			r.Get("/{animalID}", animalHandler.GetAnimal)
			r.Delete("/{animalID}", animalHandler.DeleteAnimal)
			r.Post("/{animalID}/placement", animalHandler.PlaceAnimal)
			r.Delete("/{animalID}/placement", animalHandler.TakeOutAnimal)
			r.Post("/{animalID}/move", animalHandler.MoveAnimal)
			r.Post("/{animalID}/feed", animalHandler.FeedAnimal)
		})

		// Keeper endpoints
		r.Route("/keepers", func(r chi.Router) {
			keeperHandler := handlers.NewKeeperHandler(rt.zoo, rt.logger)
			r.Post("/", keeperHandler.HireKeeper)
			r.Get("/", keeperHandler.ListKeepers)
			r.Get("/{keeperID}", keeperHandler.GetKeeper)
			r.Delete("/{keeperID}", keeperHandler.FireKeeper)
			r.Post("/{keeperID}/aviaries", keeperHandler.AssignAviary)
			r.Delete("/{keeperID}/aviaries/{aviaryID}", keeperHandler.UnassignAviary)
			r.Post("/{keeperID}/reassign", keeperHandler.ReassignAviary)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
