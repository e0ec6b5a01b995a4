package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fortuna/gridiron/internal/cache"
	"github.com/fortuna/gridiron/internal/jobs"
	"github.com/fortuna/gridiron/internal/store"
)

const (
	serviceName    = "gridiron"
	serviceVersion = "1.0.0"
)

// Config carries the server's runtime settings.
type Config struct {
	Port          string
	AdminAPIKey   string
	CurrentSeason int
	Environment   string
}

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server
func NewServer(cfg Config, db *store.Database, c *cache.Cache, jobsSvc *jobs.Service) *Server {
	handler := NewHandler(db, c, cfg.CurrentSeason, cfg.Environment)
	adminHandler := NewAdminHandler(jobsSvc)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(MetricsMiddleware)
	router.Use(CORSMiddleware)

	// Health check and metrics
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/v1").Subrouter()

	// Games and schedules
	api.HandleFunc("/schedules", handler.GetSchedules).Methods("GET")
	api.HandleFunc("/scoreboard", handler.GetScoreboard).Methods("GET")
	api.HandleFunc("/games/{gameID}", handler.GetGame).Methods("GET")
	api.HandleFunc("/pbp", handler.GetPBP).Methods("GET")

	// Teams
	api.HandleFunc("/teams", handler.GetTeams).Methods("GET")
	api.HandleFunc("/teams/{team}/stats", handler.GetTeamStats).Methods("GET")
	api.HandleFunc("/teams/{team}/profile", handler.GetTeamProfile).Methods("GET")

	// Players
	api.HandleFunc("/players/{playerID}", handler.GetPlayer).Methods("GET")
	api.HandleFunc("/player_stats", handler.GetPlayerStats).Methods("GET")

	// League stats
	api.HandleFunc("/power_ratings", handler.GetPowerRatings).Methods("GET")
	api.HandleFunc("/injuries", handler.GetInjuries).Methods("GET")
	api.HandleFunc("/depth_charts", handler.GetDepthCharts).Methods("GET")

	// Data inventory
	api.HandleFunc("/data/inventory", handler.GetInventory).Methods("GET")

	// Admin job operations
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(AdminAuthMiddleware(cfg.AdminAPIKey))
	admin.HandleFunc("/jobs", adminHandler.CreateJob).Methods("POST")
	admin.HandleFunc("/jobs", adminHandler.ListJobs).Methods("GET")
	admin.HandleFunc("/jobs/{jobID}", adminHandler.GetJob).Methods("GET")

	return &Server{
		port:    cfg.Port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Port),
			Handler: router,
		},
	}
}

// Router exposes the configured handler tree for tests.
func (s *Server) Router() http.Handler {
	return s.server.Handler
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
