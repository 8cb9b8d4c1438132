package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pbaille/portfolio/internal/portfolio"
	"github.com/pbaille/portfolio/internal/session"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Server handles HTTP requests for the portfolio API
type Server struct {
	store *portfolio.Store
	gate  *session.Gate
	log   zerolog.Logger
	addr  string
}

// New creates a new API server
func New(store *portfolio.Store, gate *session.Gate, log zerolog.Logger, addr string) *Server {
	if !gate.Configured() {
		log.Warn().Msg("no owner login configured, edit routes stay locked: set owner.email and owner.password or PORTFOLIO_OWNER_EMAIL and PORTFOLIO_OWNER_PASSWORD")
	}
	return &Server{store: store, gate: gate, log: log, addr: addr}
}

// Handler builds the gin engine with every route registered
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(s.recovery(), s.requestLogger(), withCORS())

	r.GET("/health", s.health)

	r.GET("/portfolio", s.getPortfolio)
	r.PATCH("/portfolio", s.requireSession(), s.patchPortfolio)

	projects := r.Group("/projects")
	projects.GET("", s.listProjects)
	projects.GET("/showcase", s.showcase)
	projects.GET("/technologies", s.technologies)
	projects.GET("/:id", s.getProject)
	projects.POST("", s.requireSession(), s.addProject)
	projects.PATCH("/:id", s.requireSession(), s.updateProject)
	projects.DELETE("/:id", s.requireSession(), s.deleteProject)

	skills := r.Group("/skills")
	skills.GET("", s.listSkills)
	skills.GET("/stats", s.skillStats)
	skills.POST("", s.requireSession(), s.addSkill)
	skills.PATCH("/:id", s.requireSession(), s.updateSkill)
	skills.DELETE("/:id", s.requireSession(), s.deleteSkill)

	experiences := r.Group("/experiences")
	experiences.GET("", s.listExperiences)
	experiences.POST("", s.requireSession(), s.addExperience)
	experiences.PATCH("/:id", s.requireSession(), s.updateExperience)
	experiences.DELETE("/:id", s.requireSession(), s.deleteExperience)

	r.GET("/session", s.getSession)
	r.POST("/session", s.login)
	r.DELETE("/session", s.logout)

	return r
}

// Run starts the HTTP server and shuts it down when ctx is done
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.addr).Msg("starting server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "serve")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info().Msg("shutting down server")
		return errors.Wrap(srv.Shutdown(shutdownCtx), "shutdown")
	}
}

// withCORS adds CORS headers for frontend development
func withCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		s.log.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("http request")
	}
}

func (s *Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				writeError(c, http.StatusInternalServerError, codeInternal, "internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}

// requireSession rejects mutations while edit mode is locked
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.gate.IsAuthenticated() {
			writeError(c, http.StatusUnauthorized, codeUnauthorized, "login required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
