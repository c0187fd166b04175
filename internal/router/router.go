package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/tassuhoiva/booking-api/internal/handler"
	"github.com/tassuhoiva/booking-api/internal/middleware"
)

type Config struct {
	RateLimitEnabled bool
	RateLimit        rate.Limit
	RateBurst        int
	CORS             middleware.CORSConfig
}

type Router struct {
	engine  *gin.Engine
	metrics *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func newRouterMetrics() *routerMetrics {
	return &routerMetrics{
		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name: "booking_api_request_duration_seconds",
			Help: "HTTP request latency.",
		}, []string{"method", "path", "status"}),
		requestTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_api_requests_total",
			Help: "HTTP requests served.",
		}, []string{"method", "path", "status"}),
		errorTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_api_errors_total",
			Help: "HTTP responses with status >= 500.",
		}, []string{"method", "path"}),
	}
}

func (m *routerMetrics) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		m.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		m.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		if c.Writer.Status() >= 500 {
			m.errorTotal.WithLabelValues(c.Request.Method, path).Inc()
		}
	}
}

func New(cfg Config) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	metrics := newRouterMetrics()

	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger())
	engine.Use(middleware.Recovery())
	engine.Use(middleware.CORS(cfg.CORS))
	engine.Use(metrics.observe())
	if cfg.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
		engine.Use(limiter.Limit())
	}

	engine.GET("/health", handler.Health)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &Router{engine: engine, metrics: metrics}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// API returns the versioned route group the feature handlers register on.
func (r *Router) API() *gin.RouterGroup {
	return r.engine.Group("/api/v1")
}
