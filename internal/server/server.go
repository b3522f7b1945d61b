package server

import (
	"github.com/gin-gonic/gin"

	"pantrydash/internal/api"
	"pantrydash/internal/config"
	"pantrydash/internal/report"
)

// Server HTTP server
type Server struct {
	router  *gin.Engine
	reports *report.Service
	api     *api.Handler
}

// NewServer creates the server over the configured data root. The report
// service is stateless; every request re-reads the files on disk.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	reports := report.NewService(
		config.ResolveDataDir(cfg),
		cfg.Business.TopProducts,
		config.RetentionOverrides(cfg),
	)

	s := &Server{
		router:  gin.Default(),
		reports: reports,
		api:     api.NewHandler(reports),
	}

	s.setupRoutes()

	return s
}

// setupRoutes sets up middleware and routes.
func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router exposes the engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
