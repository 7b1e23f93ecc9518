package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jobscout/jobscout/internal/config"
	"github.com/jobscout/jobscout/internal/services"
	log "github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.APIConfig, jobs *services.JobsService, auth *services.AuthService) *Server {

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))
	router.Use(rateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	jobsHandler := newJobsHandler(jobs)
	authHandler := newAuthHandler(auth)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, ok("ok", "healthy"))
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/jobs", jobsHandler.ListJobs)
		v1.GET("/jobs/popular", jobsHandler.PopularJobs)
		v1.GET("/jobs/:id", jobsHandler.JobDetails)
		v1.POST("/jobs/:id/apply", jobsHandler.Apply)

		v1.POST("/auth/login", authHandler.Login)
		v1.POST("/auth/register", authHandler.Register)
		v1.PUT("/profile", authHandler.UpdateProfile)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + strconv.Itoa(cfg.Port),
			Handler: router,
		},
	}
}

func (s *Server) Run() {
	log.Infof("API server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("API server failed: %v", err)
	}
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Errorf("API server shutdown failed: %v", err)
	}
}
