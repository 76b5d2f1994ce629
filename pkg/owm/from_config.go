package owm

import (
	"fmt"
	"strings"
	"time"

	"github.com/NomadCrew/openweather-go/config"
	"github.com/NomadCrew/openweather-go/errors"
	"github.com/NomadCrew/openweather-go/types"
)

// NewFromConfig builds a client from a loaded configuration section. opts
// are applied after the configured values and may override them.
func NewFromConfig(cfg *config.OWMConfig, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config", "configuration is required")
	}

	units, err := types.ParseUnits(cfg.Units)
	if err != nil {
		return nil, errors.InvalidArgument("units", err.Error())
	}
	lang, err := types.ParseLanguage(cfg.Language)
	if err != nil {
		return nil, errors.InvalidArgument("language", err.Error())
	}
	accuracy, err := types.ParseAccuracy(cfg.Accuracy)
	if err != nil {
		return nil, errors.InvalidArgument("accuracy", err.Error())
	}
	proxy, err := proxyFromConfig(cfg.Proxy)
	if err != nil {
		return nil, err
	}

	tier := TierFree
	switch cfg.Tier {
	case "", config.TierFree:
	case config.TierPro:
		tier = TierPro
	default:
		return nil, errors.InvalidArgument("tier", fmt.Sprintf("unknown tier %q", cfg.Tier))
	}

	base := []Option{
		WithTier(tier),
		WithUnits(units),
		WithLanguage(lang),
		WithAccuracy(accuracy),
		WithProxy(proxy),
	}
	if cfg.TimeoutSeconds > 0 {
		base = append(base, WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
	}
	return New(cfg.APIKey, append(base, opts...)...)
}

func proxyFromConfig(p config.ProxyConfig) (ProxyConfig, error) {
	var proxy ProxyConfig
	switch p.Mode {
	case "", config.ProxyModeSystem:
		proxy = SystemProxy()
	case config.ProxyModeNone:
		proxy = NoProxy()
	case config.ProxyModeManual:
		proxy = ManualProxy(p.Host, p.Port, ProxyType(strings.ToLower(p.Type)))
	default:
		return ProxyConfig{}, errors.InvalidArgument("proxy", fmt.Sprintf("unknown proxy mode %q", p.Mode))
	}
	if p.User != "" || p.Password != "" {
		proxy = proxy.WithCredentials(p.User, p.Password)
	}
	return proxy, proxy.Validate()
}
