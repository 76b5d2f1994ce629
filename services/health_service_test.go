package services

import (
	"context"
	"fmt"
	stderrors "errors"
	"net/http"
	"testing"
	"time"

	"github.com/NomadCrew/openweather-go/errors"
	"github.com/NomadCrew/openweather-go/pkg/owm"
	"github.com/NomadCrew/openweather-go/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClientInfo struct {
	tier     owm.Tier
	settings owm.Settings
}

func (f fakeClientInfo) Tier() owm.Tier         { return f.tier }
func (f fakeClientInfo) Settings() owm.Settings { return f.settings }

func newInfo() fakeClientInfo {
	return fakeClientInfo{
		tier:     owm.TierPro,
		settings: owm.Settings{Units: types.UnitsMetric, Proxy: owm.NoProxy()},
	}
}

func TestNewHealthService(t *testing.T) {
	service := NewHealthService(newInfo(), NewUpstreamTracker(), "1.0.0")

	assert.NotNil(t, service)
	assert.Equal(t, "1.0.0", service.version)
	assert.NotNil(t, service.log)
	assert.True(t, time.Since(service.startTime) < time.Second)
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name           string
		client         ClientInfo
		record         []error
		expectedStatus types.HealthStatus
		upstreamStatus types.HealthStatus
	}{
		{
			name:           "No requests yet",
			client:         newInfo(),
			expectedStatus: types.HealthStatusUp,
			upstreamStatus: types.HealthStatusUp,
		},
		{
			name:           "Last call succeeded",
			client:         newInfo(),
			record:         []error{stderrors.New("dial tcp: refused"), nil},
			expectedStatus: types.HealthStatusUp,
			upstreamStatus: types.HealthStatusUp,
		},
		{
			name:           "Transport failure degrades",
			client:         newInfo(),
			record:         []error{stderrors.New("dial tcp: refused")},
			expectedStatus: types.HealthStatusDegraded,
			upstreamStatus: types.HealthStatusDegraded,
		},
		{
			name:           "Upstream 5xx degrades",
			client:         newInfo(),
			record:         []error{errors.APIFailure(http.StatusServiceUnavailable, "Service Unavailable", "")},
			expectedStatus: types.HealthStatusDegraded,
			upstreamStatus: types.HealthStatusDegraded,
		},
		{
			name:           "City not found is healthy",
			client:         newInfo(),
			record:         []error{errors.APIFailure(http.StatusNotFound, "Not Found", "city not found")},
			expectedStatus: types.HealthStatusUp,
			upstreamStatus: types.HealthStatusUp,
		},
		{
			name:           "Rejected key is down",
			client:         newInfo(),
			record:         []error{errors.APIFailure(http.StatusUnauthorized, "Unauthorized", "Invalid API key.")},
			expectedStatus: types.HealthStatusDown,
			upstreamStatus: types.HealthStatusDown,
		},
		{
			name:           "Validation errors are ignored",
			client:         newInfo(),
			record:         []error{nil, errors.InvalidArgument("cnt", "too large")},
			expectedStatus: types.HealthStatusUp,
			upstreamStatus: types.HealthStatusUp,
		},
		{
			name:           "Missing client",
			client:         nil,
			expectedStatus: types.HealthStatusDown,
			upstreamStatus: types.HealthStatusUp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewUpstreamTracker()
			for _, err := range tt.record {
				tracker.Record(err)
			}
			service := NewHealthService(tt.client, tracker, "test")

			health := service.CheckHealth(context.Background())
			assert.Equal(t, tt.expectedStatus, health.Status)
			require.Contains(t, health.Components, "upstream")
			assert.Equal(t, tt.upstreamStatus, health.Components["upstream"].Status)
			assert.Equal(t, "test", health.Version)
			assert.NotEmpty(t, health.Timestamp)
		})
	}
}

func TestCheckHealthClientDetails(t *testing.T) {
	service := NewHealthService(newInfo(), nil, "test")
	health := service.CheckHealth(context.Background())
	assert.Equal(t, "tier=pro units=metric proxy=none", health.Components["weather_client"].Details)
	assert.Equal(t, "Not tracked", health.Components["upstream"].Details)
}

func TestUpstreamTrackerIgnoresCanceledCallers(t *testing.T) {
	tracker := NewUpstreamTracker()
	svc := NewHealthService(newInfo(), tracker, "test")

	tracker.Record(nil)
	tracker.Record(fmt.Errorf("current_weather: request failed: %w", context.Canceled))

	health := svc.CheckHealth(context.Background())
	assert.Equal(t, types.HealthStatusUp, health.Status)
	assert.Equal(t, types.HealthStatusUp, health.Components["upstream"].Status)

	tracker.Record(fmt.Errorf("current_weather: request failed: %w", context.DeadlineExceeded))
	health = svc.CheckHealth(context.Background())
	assert.Equal(t, types.HealthStatusDegraded, health.Components["upstream"].Status)
}
