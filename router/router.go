package router

import (
	"time"

	"github.com/NomadCrew/openweather-go/config"
	"github.com/NomadCrew/openweather-go/handlers"
	"github.com/NomadCrew/openweather-go/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config         *config.Config
	WeatherHandler *handlers.WeatherHandler
	HealthHandler  *handlers.HealthHandler
	// Gatherer serves /metrics. Defaults to the global registry.
	Gatherer prometheus.Gatherer
	// Redis backs upstream usage metering. Nil disables it.
	Redis  redis.Cmdable
	Logger *zap.SugaredLogger
}

// SetupRouter configures and returns the gateway engine.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config))
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))
	r.Use(middleware.ErrorHandler())

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := r.Group("/v1")
	if deps.Redis != nil {
		window := time.Duration(deps.Config.Server.UsageWindowSeconds) * time.Second
		if window <= 0 {
			window = time.Minute
		}
		v1.Use(middleware.UpstreamUsage(deps.Redis, window))
		if deps.Logger != nil {
			deps.Logger.Infow("Upstream usage metering enabled", "window", window)
		}
	}
	{
		weather := v1.Group("/weather")
		weather.GET("/current", deps.WeatherHandler.CurrentWeatherHandler)
		weather.GET("/forecast", deps.WeatherHandler.ForecastHandler)
		weather.GET("/daily", deps.WeatherHandler.DailyForecastHandler)

		v1.GET("/uvi", deps.WeatherHandler.UVIndexHandler)
	}

	return r
}
