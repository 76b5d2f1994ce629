package owm

import (
	"net/http"
	"time"

	"github.com/NomadCrew/openweather-go/logger"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const userAgent = "openweather-go/1.0"

// transport is an immutable binding of one service area to a settings
// snapshot. Setters replace transports, they never mutate one.
type transport struct {
	area     Area
	baseURL  string
	settings Settings
	client   *resty.Client
}

type transportConfig struct {
	area         Area
	baseURL      string
	settings     Settings
	timeout      time.Duration
	roundTripper http.RoundTripper
	log          *zap.SugaredLogger
}

func newTransport(cfg transportConfig) *transport {
	rc := resty.New().
		SetBaseURL(cfg.baseURL).
		SetTimeout(cfg.timeout).
		SetLogger(cfg.log).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent).
		SetQueryParams(defaultQuery(cfg.area, cfg.settings))

	if cfg.roundTripper != nil {
		rc.SetTransport(cfg.roundTripper)
	} else {
		switch cfg.settings.Proxy.Mode {
		case ProxyNone:
			rc.RemoveProxy()
		case ProxyManual:
			rc.SetProxy(cfg.settings.Proxy.URL().String())
		}
	}

	area := cfg.area
	log := cfg.log
	rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		fields := []interface{}{
			"area", area.String(),
			"status", resp.StatusCode(),
			"duration", resp.Time(),
		}
		if raw := resp.Request.RawRequest; raw != nil {
			fields = append(fields, "path", raw.URL.Path, "query", logger.MaskQuery(raw.URL.RawQuery))
		}
		log.Debugw("Weather service response", fields...)
		return nil
	})

	return &transport{
		area:     cfg.area,
		baseURL:  cfg.baseURL,
		settings: cfg.settings,
		client:   rc,
	}
}

// defaultQuery returns the parameters attached to every request of an area.
// The result depends only on its inputs.
func defaultQuery(area Area, s Settings) map[string]string {
	q := map[string]string{"appid": s.APIKey}
	if area != AreaWeather {
		return q
	}
	if s.Units != "" && !s.Units.IsDefault() {
		q["units"] = string(s.Units)
	}
	if s.Language != "" {
		q["lang"] = string(s.Language)
	}
	if s.Accuracy != "" {
		q["type"] = string(s.Accuracy)
	}
	return q
}

func (t *transport) close() {
	t.client.GetClient().CloseIdleConnections()
}
