// Command owm-gateway exposes a small HTTP surface over the weather client so
// that services without an API key can share one upstream account.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NomadCrew/openweather-go/config"
	"github.com/NomadCrew/openweather-go/handlers"
	"github.com/NomadCrew/openweather-go/logger"
	"github.com/NomadCrew/openweather-go/pkg/owm"
	"github.com/NomadCrew/openweather-go/router"
	"github.com/NomadCrew/openweather-go/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

var version = "dev"

const shutdownTimeout = 15 * time.Second

func main() {
	printConfig := flag.Bool("print-config", false, "print the effective configuration with secrets masked and exit")
	flag.Parse()

	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *printConfig {
		if err := config.WriteExample(os.Stdout, cfg); err != nil {
			log.Fatalf("Failed to print config: %v", err)
		}
		return
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	client, err := owm.NewFromConfig(&cfg.OWM, owm.WithRegisterer(reg), owm.WithLogger(log))
	if err != nil {
		log.Fatalf("Failed to create weather client: %v", err)
	}
	defer client.Close()

	var redisClient *redis.Client
	if cfg.Redis.Address != "" {
		redisClient = redis.NewClient(config.RedisOptions(&cfg.Redis))
		defer redisClient.Close()

		if err := config.PingRedis(context.Background(), redisClient, 5, 2*time.Second); err != nil {
			// Metering fails open, so an unreachable Redis only costs the usage header.
			log.Warnw("Redis unavailable, upstream usage will not be metered", "error", err)
		}
	}

	tracker := services.NewUpstreamTracker()
	healthService := services.NewHealthService(client, tracker, version)

	deps := router.Dependencies{
		Config:         cfg,
		WeatherHandler: handlers.NewWeatherHandler(client, tracker),
		HealthHandler:  handlers.NewHealthHandler(healthService),
		Gatherer:       reg,
		Logger:         log,
	}
	if redisClient != nil {
		deps.Redis = redisClient
	}
	r := router.SetupRouter(deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infow("Starting gateway", "port", cfg.Server.Port, "tier", client.Tier().String(), "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down gateway")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Graceful shutdown failed", "error", err)
	}
}
