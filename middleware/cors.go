package middleware

import (
	"net/http"
	"slices"
	"time"

	"github.com/NomadCrew/openweather-go/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware lets browser dashboards read the gateway. The gateway is
// read-only and carries no credentials, so only GET and preflight requests
// are allowed. An origin list containing "*" allows every origin; entries
// like "https://*.example.com" match subdomains.
func CORSMiddleware(cfg *config.ServerConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Accept", "Content-Type", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader, UsageHeader},
		MaxAge:        12 * time.Hour,
	}

	if len(cfg.AllowedOrigins) == 0 || slices.Contains(cfg.AllowedOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowWildcard = true
	}

	return cors.New(corsConfig)
}
