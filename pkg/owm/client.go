package owm

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/NomadCrew/openweather-go/errors"
	"github.com/NomadCrew/openweather-go/logger"
	"github.com/NomadCrew/openweather-go/types"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Settings is a snapshot of the client configuration.
type Settings struct {
	APIKey   string
	Units    types.Units
	Language types.Language
	Accuracy types.Accuracy
	Proxy    ProxyConfig
}

func defaultSettings(apiKey string) Settings {
	return Settings{
		APIKey:   apiKey,
		Units:    types.UnitsStandard,
		Language: types.LanguageEnglish,
		Accuracy: types.AccuracyLike,
		Proxy:    SystemProxy(),
	}
}

// Client talks to the weather service. It is safe for concurrent use: the
// settings and the transports derived from them are swapped together under
// one lock, and a request keeps the transport it started with.
type Client struct {
	mu         sync.RWMutex
	settings   Settings
	transports map[Area]*transport

	tier         Tier
	baseURLs     map[Area]string
	timeout      time.Duration
	roundTripper http.RoundTripper
	registerer   prometheus.Registerer

	log     *zap.SugaredLogger
	metrics *metrics
	tracer  *tracingHelper
}

// New returns a client authenticated with apiKey. It fails with an
// InvalidArgument error when the key is blank or an option left the client
// with an invalid proxy.
func New(apiKey string, opts ...Option) (*Client, error) {
	if err := validateAPIKey(apiKey); err != nil {
		return nil, err
	}

	c := &Client{
		settings:   defaultSettings(apiKey),
		transports: make(map[Area]*transport, len(allAreas)),
		baseURLs:   make(map[Area]string, len(allAreas)),
		timeout:    defaultTimeout,
		log:        logger.GetLogger(),
		tracer:     newTracingHelper(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.settings.Proxy.Validate(); err != nil {
		return nil, err
	}
	for _, area := range allAreas {
		if _, ok := c.baseURLs[area]; !ok {
			c.baseURLs[area] = defaultBaseURL(c.tier, area)
		}
	}
	c.metrics = newMetrics(c.registerer)

	c.rebuild(allAreas...)

	c.log.Infow("Weather client initialized",
		"tier", c.tier.String(),
		"apiKey", logger.MaskAPIKey(apiKey),
		"units", c.settings.Units,
		"language", c.settings.Language,
		"proxy", c.settings.Proxy.String())

	return c, nil
}

func validateAPIKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.InvalidArgument("apiKey", "API key must not be empty")
	}
	return nil
}

// Tier reports the subscription tier the client was built for.
func (c *Client) Tier() Tier {
	return c.tier
}

// Settings returns a copy of the current configuration.
func (c *Client) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.settings
	if s.Proxy.Credentials != nil {
		creds := *s.Proxy.Credentials
		s.Proxy.Credentials = &creds
	}
	return s
}

// SetAPIKey replaces the key on every area. A blank key is rejected and the
// previous configuration stays in place.
func (c *Client) SetAPIKey(key string) error {
	if err := validateAPIKey(key); err != nil {
		return err
	}
	c.update(func(s *Settings) { s.APIKey = key }, allAreas...)
	return nil
}

func (c *Client) SetUnits(units types.Units) *Client {
	return c.update(func(s *Settings) { s.Units = units }, AreaWeather)
}

func (c *Client) SetLanguage(lang types.Language) *Client {
	return c.update(func(s *Settings) { s.Language = lang }, AreaWeather)
}

func (c *Client) SetAccuracy(accuracy types.Accuracy) *Client {
	return c.update(func(s *Settings) { s.Accuracy = accuracy }, AreaWeather)
}

// SetProxy replaces the proxy configuration, credentials included.
func (c *Client) SetProxy(proxy ProxyConfig) error {
	if err := proxy.Validate(); err != nil {
		return err
	}
	if proxy.Credentials != nil {
		creds := *proxy.Credentials
		proxy.Credentials = &creds
	}
	c.update(func(s *Settings) { s.Proxy = proxy }, allAreas...)
	return nil
}

// SetProxyAddress routes requests through host:port without authentication.
func (c *Client) SetProxyAddress(host string, port int, typ ProxyType) error {
	return c.SetProxy(ManualProxy(host, port, typ))
}

func (c *Client) SetAuthenticatedProxy(host string, port int, user, password string, typ ProxyType) error {
	return c.SetProxy(ManualProxy(host, port, typ).WithCredentials(user, password))
}

// ClearProxy makes every request connect directly.
func (c *Client) ClearProxy() *Client {
	return c.update(func(s *Settings) { s.Proxy = NoProxy() }, allAreas...)
}

// UseSystemProxy returns to the environment's proxy settings and forgets any
// credentials.
func (c *Client) UseSystemProxy() *Client {
	return c.update(func(s *Settings) { s.Proxy = SystemProxy() }, allAreas...)
}

// Close releases idle connections held by every transport.
func (c *Client) Close() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.transports {
		t.close()
	}
}

func (c *Client) update(mutate func(*Settings), areas ...Area) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	mutate(&c.settings)
	c.rebuild(areas...)
	return c
}

// rebuild replaces the transports of areas. Callers hold c.mu or own c
// exclusively.
func (c *Client) rebuild(areas ...Area) {
	for _, area := range areas {
		old := c.transports[area]
		c.transports[area] = newTransport(transportConfig{
			area:         area,
			baseURL:      c.baseURLs[area],
			settings:     c.settings,
			timeout:      c.timeout,
			roundTripper: c.roundTripper,
			log:          c.log,
		})
		if old != nil {
			old.close()
		}
		c.metrics.recordRebuild(area)
		c.log.Debugw("Rebuilt transport",
			"area", area.String(),
			"baseURL", c.baseURLs[area],
			"proxy", c.settings.Proxy.String())
	}
}

func (c *Client) transport(area Area) *transport {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.transports[area]
}
