package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/NomadCrew/openweather-go/errors"
	"github.com/NomadCrew/openweather-go/logger"
	"github.com/NomadCrew/openweather-go/pkg/owm"
	"github.com/NomadCrew/openweather-go/types"
	"go.uber.org/zap"
)

// ClientInfo is the part of the weather client the health check reads.
type ClientInfo interface {
	Tier() owm.Tier
	Settings() owm.Settings
}

// UpstreamTracker remembers the outcome of the latest call to the weather
// service.
type UpstreamTracker struct {
	mu      sync.RWMutex
	lastErr error
	lastAt  time.Time
}

func NewUpstreamTracker() *UpstreamTracker {
	return &UpstreamTracker{}
}

// Record stores the outcome of a call. Validation errors never reach the
// service and a canceled caller says nothing about it, so both are ignored.
func (u *UpstreamTracker) Record(err error) {
	if errors.IsInvalidArgument(err) || stderrors.Is(err, context.Canceled) {
		return
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.lastErr = err
	u.lastAt = time.Now()
}

func (u *UpstreamTracker) last() (error, time.Time) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.lastErr, u.lastAt
}

type HealthService struct {
	client    ClientInfo
	upstream  *UpstreamTracker
	version   string
	startTime time.Time
	log       *zap.SugaredLogger
}

func NewHealthService(client ClientInfo, upstream *UpstreamTracker, version string) *HealthService {
	return &HealthService{
		client:    client,
		upstream:  upstream,
		version:   version,
		startTime: time.Now(),
		log:       logger.GetLogger(),
	}
}

func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := make(map[string]types.HealthComponent)
	overallStatus := types.HealthStatusUp

	clientStatus := h.checkClient()
	components["weather_client"] = clientStatus
	if clientStatus.Status == types.HealthStatusDown {
		overallStatus = types.HealthStatusDown
	}

	upstreamStatus := h.checkUpstream()
	components["upstream"] = upstreamStatus
	if upstreamStatus.Status == types.HealthStatusDown {
		overallStatus = types.HealthStatusDown
	} else if upstreamStatus.Status == types.HealthStatusDegraded && overallStatus != types.HealthStatusDown {
		overallStatus = types.HealthStatusDegraded
	}

	return types.HealthCheck{
		Status:     overallStatus,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
	}
}

func (h *HealthService) checkClient() types.HealthComponent {
	if h.client == nil {
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Weather client not configured",
		}
	}
	s := h.client.Settings()
	return types.HealthComponent{
		Status:  types.HealthStatusUp,
		Details: fmt.Sprintf("tier=%s units=%s proxy=%s", h.client.Tier(), s.Units, s.Proxy),
	}
}

func (h *HealthService) checkUpstream() types.HealthComponent {
	if h.upstream == nil {
		return types.HealthComponent{Status: types.HealthStatusUp, Details: "Not tracked"}
	}
	err, at := h.upstream.last()
	if at.IsZero() {
		return types.HealthComponent{Status: types.HealthStatusUp, Details: "No requests yet"}
	}
	if err == nil {
		return types.HealthComponent{Status: types.HealthStatusUp}
	}

	if apiErr, ok := errors.AsAPIError(err); ok {
		switch {
		case apiErr.HTTPStatus == http.StatusUnauthorized:
			h.log.Errorw("Upstream rejected the API key", "status", apiErr.HTTPStatus)
			return types.HealthComponent{
				Status:  types.HealthStatusDown,
				Details: "API key rejected",
			}
		case apiErr.HTTPStatus < http.StatusInternalServerError:
			return types.HealthComponent{Status: types.HealthStatusUp}
		}
	}

	h.log.Warnw("Upstream health degraded", "error", err, "at", at)
	return types.HealthComponent{
		Status:  types.HealthStatusDegraded,
		Details: "Last upstream call failed",
	}
}
