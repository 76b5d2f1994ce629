package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NomadCrew/openweather-go/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSecurityHeadersMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		environment  config.Environment
		expectedHSTS string
	}{
		{
			name:         "Development environment - no HSTS",
			environment:  config.EnvDevelopment,
			expectedHSTS: "",
		},
		{
			name:         "Production environment - with HSTS",
			environment:  config.EnvProduction,
			expectedHSTS: "max-age=31536000; includeSubDomains",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				Server: config.ServerConfig{
					Environment: tt.environment,
					Port:        "8080",
				},
			}

			router := gin.New()
			router.Use(SecurityHeadersMiddleware(cfg))
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, "test")
			})

			req, err := http.NewRequest(http.MethodGet, "/test", nil)
			assert.NoError(t, err)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
			assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
			assert.Equal(t, "no-referrer", w.Header().Get("Referrer-Policy"))
			assert.Contains(t, w.Header().Get("Content-Security-Policy"), "default-src 'none'")
			assert.Equal(t, tt.expectedHSTS, w.Header().Get("Strict-Transport-Security"))
		})
	}
}
