// Package api provides the HTTP server of the TermNinja game lobby.
package api

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/termninja/termninja/internal/service/game"
	"github.com/termninja/termninja/internal/telemetry"
	"github.com/termninja/termninja/pkg/types"
	"github.com/termninja/termninja/pkg/version"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const (
	V0PathPrefix    = "/v0"
	V0ApiPathPrefix = "/api" + V0PathPrefix
)

type ServerOptions struct {
	// Port is the HTTP port to bind the server to
	Port string

	GameService *game.GameService

	OtelProviders *telemetry.Providers
	Metrics       telemetry.CustomMetrics

	Logger *zap.Logger
}

// Server represents the TermNinja lobby server that lists the registered game servers
type Server struct {
	port   string
	router *gin.Engine

	gameService *game.GameService

	otelProviders *telemetry.Providers
	metrics       telemetry.CustomMetrics

	logger *zap.Logger
	now    func() time.Time
}

// NewServer initializes a new Gin server for the TermNinja lobby
func NewServer(opts *ServerOptions) (*Server, error) {
	if opts.GameService == nil {
		return nil, fmt.Errorf("game service is required")
	}

	s := &Server{
		port:          opts.Port,
		gameService:   opts.GameService,
		otelProviders: opts.OtelProviders,
		metrics:       opts.Metrics,
		logger:        opts.Logger,
		now:           time.Now,
	}
	if s.metrics == nil {
		s.metrics = telemetry.NewNoopCustomMetrics()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}

	r, err := s.setupRouter()
	if err != nil {
		return nil, err
	}
	s.router = r

	return s, nil
}

// Handler exposes the router, mostly so that tests can serve it through httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the Gin server (blocking call)
func (s *Server) Start() error {
	s.logger.Info("lobby server listening", zap.String("port", s.port))
	if err := s.router.Run(":" + s.port); err != nil {
		return fmt.Errorf("failed to run the server: %w", err)
	}
	return nil
}

func (s *Server) setupRouter() (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))

	pages, err := template.ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	r.SetHTMLTemplate(pages)

	// if otel is enabled, setup prometheus metrics endpoint
	if s.otelProviders != nil && s.otelProviders.IsEnabled() {
		r.Use(otelgin.Middleware(s.otelProviders.ServiceName()))

		// the exporter registers on its own registry rather than the global one
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.otelProviders.Registry, promhttp.HandlerOpts{})))
	}

	r.GET(
		"/health",
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		},
	)

	r.GET(
		"/metadata",
		func(c *gin.Context) {
			m := &types.ServerMetadata{
				Version: version.GetVersion(),
			}
			c.JSON(http.StatusOK, m)
		},
	)

	// html pages
	r.GET("/", s.lobbyPageHandler())
	r.GET("/games/:slug", s.gamePageHandler())

	apiV0 := r.Group(V0ApiPathPrefix)
	{
		apiV0.GET("/games", s.listGamesHandler())
		apiV0.POST("/games", s.registerGameHandler())
		apiV0.GET("/games/:slug", s.getGameHandler())
		apiV0.DELETE("/games/:slug", s.deregisterGameHandler())
		apiV0.POST("/games/:slug/ping", s.pingGameHandler())
	}

	return r, nil
}

// requestLogger logs one line per request through zap, replacing gin's default stdout logger.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		log.Debug("request", fields...)
	}
}
