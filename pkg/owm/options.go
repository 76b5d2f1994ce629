package owm

import (
	"net/http"
	"strings"
	"time"

	"github.com/NomadCrew/openweather-go/types"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// Option configures a Client during construction.
type Option func(*Client)

// WithTier selects the subscription tier. Defaults to TierFree.
func WithTier(tier Tier) Option {
	return func(c *Client) {
		c.tier = tier
	}
}

// WithBaseURL overrides the base URL of one service area.
func WithBaseURL(area Area, baseURL string) Option {
	return func(c *Client) {
		c.baseURLs[area] = strings.TrimRight(baseURL, "/")
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithUnits(units types.Units) Option {
	return func(c *Client) {
		c.settings.Units = units
	}
}

func WithLanguage(lang types.Language) Option {
	return func(c *Client) {
		c.settings.Language = lang
	}
}

func WithAccuracy(accuracy types.Accuracy) Option {
	return func(c *Client) {
		c.settings.Accuracy = accuracy
	}
}

// WithProxy sets the initial proxy. It is validated by New.
func WithProxy(proxy ProxyConfig) Option {
	return func(c *Client) {
		c.settings.Proxy = proxy
	}
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithRegisterer registers the client's request metrics. Clients sharing a
// registerer share their collectors.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Client) {
		c.registerer = reg
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = newTracingHelper(tracer)
	}
}

// WithRoundTripper replaces the HTTP transport underneath every area. A
// custom round tripper bypasses the proxy settings.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.roundTripper = rt
	}
}
