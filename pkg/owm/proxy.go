package owm

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/NomadCrew/openweather-go/errors"
	"github.com/NomadCrew/openweather-go/logger"
)

type ProxyMode int

const (
	// ProxySystem defers to HTTP_PROXY, HTTPS_PROXY and NO_PROXY.
	ProxySystem ProxyMode = iota
	// ProxyNone connects directly.
	ProxyNone
	// ProxyManual routes every request through Host:Port.
	ProxyManual
)

type ProxyType string

const (
	ProxyHTTP   ProxyType = "http"
	ProxySOCKS5 ProxyType = "socks5"
)

type ProxyCredentials struct {
	User     string
	Password string
}

// ProxyConfig is a value: credentials belong to the proxy they were attached
// to and are dropped whenever the proxy is replaced.
type ProxyConfig struct {
	Mode        ProxyMode
	Type        ProxyType
	Host        string
	Port        int
	Credentials *ProxyCredentials
}

func SystemProxy() ProxyConfig {
	return ProxyConfig{Mode: ProxySystem}
}

func NoProxy() ProxyConfig {
	return ProxyConfig{Mode: ProxyNone}
}

// ManualProxy targets host:port. An empty type means ProxyHTTP.
func ManualProxy(host string, port int, typ ProxyType) ProxyConfig {
	if typ == "" {
		typ = ProxyHTTP
	}
	return ProxyConfig{Mode: ProxyManual, Type: typ, Host: host, Port: port}
}

// WithCredentials returns a copy of p authenticating as user.
func (p ProxyConfig) WithCredentials(user, password string) ProxyConfig {
	p.Credentials = &ProxyCredentials{User: user, Password: password}
	return p
}

func (p ProxyConfig) Validate() error {
	switch p.Mode {
	case ProxySystem, ProxyNone:
		if p.Credentials != nil {
			return errors.InvalidArgument("proxy", "credentials require an explicit proxy target")
		}
		return nil
	case ProxyManual:
	default:
		return errors.InvalidArgument("proxy", fmt.Sprintf("unknown proxy mode %d", p.Mode))
	}

	if strings.TrimSpace(p.Host) == "" {
		return errors.InvalidArgument("proxy", "host must not be empty")
	}
	if p.Port <= 0 || p.Port > 65535 {
		return errors.InvalidArgument("proxy", fmt.Sprintf("port %d out of range", p.Port))
	}
	if p.Type != ProxyHTTP && p.Type != ProxySOCKS5 {
		return errors.InvalidArgument("proxy", fmt.Sprintf("unknown proxy type %q", p.Type))
	}
	if p.Credentials != nil && p.Credentials.User == "" {
		return errors.InvalidArgument("proxy", "credentials need a user name")
	}
	return nil
}

// URL returns the proxy URL of a manual proxy, nil otherwise.
func (p ProxyConfig) URL() *url.URL {
	if p.Mode != ProxyManual {
		return nil
	}
	u := &url.URL{
		Scheme: string(p.Type),
		Host:   net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
	}
	if p.Credentials != nil {
		u.User = url.UserPassword(p.Credentials.User, p.Credentials.Password)
	}
	return u
}

// String is safe to log.
func (p ProxyConfig) String() string {
	switch p.Mode {
	case ProxySystem:
		return "system"
	case ProxyNone:
		return "none"
	default:
		if u := p.URL(); u != nil {
			return logger.MaskProxyURL(u.String())
		}
		return "invalid"
	}
}
