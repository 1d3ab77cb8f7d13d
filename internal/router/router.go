package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/fedora-infra/spechub/internal/handler"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes.
type Handlers struct {
	Users    *handler.UserHandler
	Projects *handler.ProjectHandler
	PRs      *handler.PRHandler
	Stats    *handler.StatsHandler
}

// SetupRoutes configures all API routes.
func SetupRoutes(log *zap.SugaredLogger, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log.Named("http")))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/stats", h.Stats.GetStatistics)

	// User endpoints
	r.POST("/users", h.Users.CreateUser)

	// Project and fork endpoints
	r.POST("/projects", h.Projects.CreateProject)
	r.GET("/projects", h.Projects.FindProject)
	r.GET("/projects/:id", h.Projects.GetProject)
	r.POST("/projects/:id/fork", h.Projects.Fork)
	r.GET("/projects/:id/forks", h.Projects.ListForks)
	r.GET("/forks", h.Projects.ListAllForks)
	r.DELETE("/forks/:id", h.Projects.DeleteFork)

	// Pull request endpoints
	prs := r.Group("/projects/:id/pull-requests")
	prs.POST("", h.PRs.OpenPR)
	prs.GET("", h.PRs.ListPRs)
	prs.GET("/:display_id", h.PRs.GetPR)
	prs.POST("/:display_id/close", h.PRs.ClosePR)
	prs.POST("/:display_id/comments", h.PRs.AddComment)
	prs.GET("/:display_id/comments", h.PRs.ListComments)

	return r
}

// requestLogger tags every request with an X-Request-ID and logs it once served.
func requestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		log.Infow("request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
