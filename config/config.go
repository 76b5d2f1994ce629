// Package config handles loading and validation of client and gateway
// configuration from environment variables and an optional YAML file.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/NomadCrew/openweather-go/logger"
	"github.com/NomadCrew/openweather-go/types"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Environment represents the gateway's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

const (
	TierFree = "free"
	TierPro  = "pro"

	ProxyModeSystem = "system"
	ProxyModeNone   = "none"
	ProxyModeManual = "manual"
)

// ServerConfig holds gateway-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	// UsageWindowSeconds is the metering window for calls forwarded to the
	// weather service. Metering needs Redis.
	UsageWindowSeconds int `mapstructure:"USAGE_WINDOW_SECONDS" yaml:"usage_window_seconds"`
}

// RedisConfig locates the Redis instance that holds the shared usage counter.
type RedisConfig struct {
	Address  string `mapstructure:"ADDRESS" yaml:"address"`
	Password string `mapstructure:"PASSWORD" yaml:"password"`
	DB       int    `mapstructure:"DB" yaml:"db"`
	UseTLS   bool   `mapstructure:"USE_TLS" yaml:"use_tls"`
}

// ProxyConfig describes how outgoing requests reach the service.
type ProxyConfig struct {
	// Mode is one of system, none or manual.
	Mode     string `mapstructure:"MODE" yaml:"mode"`
	Host     string `mapstructure:"HOST" yaml:"host"`
	Port     int    `mapstructure:"PORT" yaml:"port"`
	Type     string `mapstructure:"TYPE" yaml:"type"`
	User     string `mapstructure:"USER" yaml:"user"`
	Password string `mapstructure:"PASSWORD" yaml:"password"`
}

// OWMConfig holds the client settings.
type OWMConfig struct {
	APIKey         string      `mapstructure:"API_KEY" yaml:"api_key"`
	Tier           string      `mapstructure:"TIER" yaml:"tier"`
	Units          string      `mapstructure:"UNITS" yaml:"units"`
	Language       string      `mapstructure:"LANGUAGE" yaml:"language"`
	Accuracy       string      `mapstructure:"ACCURACY" yaml:"accuracy"`
	TimeoutSeconds int         `mapstructure:"TIMEOUT_SECONDS" yaml:"timeout_seconds"`
	Proxy          ProxyConfig `mapstructure:"PROXY" yaml:"proxy"`
}

// Config aggregates all configuration sections.
type Config struct {
	Server ServerConfig `mapstructure:"SERVER" yaml:"server"`
	OWM    OWMConfig    `mapstructure:"OWM" yaml:"owm"`
	Redis  RedisConfig  `mapstructure:"REDIS" yaml:"redis"`
}

// IsProduction returns true if the gateway is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.USAGE_WINDOW_SECONDS", 60)
	v.SetDefault("REDIS.ADDRESS", "")
	v.SetDefault("REDIS.PASSWORD", "")
	v.SetDefault("REDIS.DB", 0)
	v.SetDefault("REDIS.USE_TLS", false)
	v.SetDefault("OWM.API_KEY", "")
	v.SetDefault("OWM.TIER", TierFree)
	v.SetDefault("OWM.UNITS", string(types.UnitsStandard))
	v.SetDefault("OWM.LANGUAGE", string(types.LanguageEnglish))
	v.SetDefault("OWM.ACCURACY", string(types.AccuracyLike))
	v.SetDefault("OWM.TIMEOUT_SECONDS", 10)
	v.SetDefault("OWM.PROXY.MODE", ProxyModeSystem)
	v.SetDefault("OWM.PROXY.HOST", "")
	v.SetDefault("OWM.PROXY.PORT", 0)
	v.SetDefault("OWM.PROXY.TYPE", "http")
	v.SetDefault("OWM.PROXY.USER", "")
	v.SetDefault("OWM.PROXY.PASSWORD", "")
}

// LoadConfig loads configuration from environment variables using Viper,
// merges the YAML file named by OWM_CONFIG_FILE when set, and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.USAGE_WINDOW_SECONDS", "OWM_USAGE_WINDOW_SECONDS"},
		{"REDIS.ADDRESS", "REDIS_ADDRESS"},
		{"REDIS.PASSWORD", "REDIS_PASSWORD"},
		{"REDIS.DB", "REDIS_DB"},
		{"REDIS.USE_TLS", "REDIS_USE_TLS"},
		{"OWM.API_KEY", "OWM_API_KEY"},
		{"OWM.TIER", "OWM_TIER"},
		{"OWM.UNITS", "OWM_UNITS"},
		{"OWM.LANGUAGE", "OWM_LANGUAGE"},
		{"OWM.ACCURACY", "OWM_ACCURACY"},
		{"OWM.TIMEOUT_SECONDS", "OWM_TIMEOUT_SECONDS"},
		{"OWM.PROXY.MODE", "OWM_PROXY_MODE"},
		{"OWM.PROXY.HOST", "OWM_PROXY_HOST"},
		{"OWM.PROXY.PORT", "OWM_PROXY_PORT"},
		{"OWM.PROXY.TYPE", "OWM_PROXY_TYPE"},
		{"OWM.PROXY.USER", "OWM_PROXY_USER"},
		{"OWM.PROXY.PASSWORD", "OWM_PROXY_PASSWORD"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	if err := v.BindEnv("CONFIG_FILE", "OWM_CONFIG_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind CONFIG_FILE: %w", err)
	}
	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	log.Infow("Configuration loaded",
		"environment", v.GetString("SERVER.ENVIRONMENT"),
		"server_port", v.GetString("SERVER.PORT"),
		"tier", v.GetString("OWM.TIER"),
		"units", v.GetString("OWM.UNITS"),
		"language", v.GetString("OWM.LANGUAGE"),
		"proxy_mode", v.GetString("OWM.PROXY.MODE"),
		"usage_window_seconds", v.GetInt("SERVER.USAGE_WINDOW_SECONDS"),
		"redis_address", v.GetString("REDIS.ADDRESS"),
		"api_key", logger.MaskAPIKey(v.GetString("OWM.API_KEY")),
	)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Info("Configuration validated successfully")
	return &cfg, nil
}

// Validate checks if the loaded configuration values are valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Server.UsageWindowSeconds <= 0 {
		return fmt.Errorf("usage window must be positive")
	}
	return c.OWM.Validate()
}

// Validate checks the client section on its own, so library users that build
// an OWMConfig by hand get the same rules as LoadConfig.
func (c *OWMConfig) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("OWM API key is required")
	}
	if c.Tier != TierFree && c.Tier != TierPro {
		return fmt.Errorf("unknown tier %q", c.Tier)
	}
	if _, err := types.ParseUnits(c.Units); err != nil {
		return err
	}
	if _, err := types.ParseLanguage(c.Language); err != nil {
		return err
	}
	if _, err := types.ParseAccuracy(c.Accuracy); err != nil {
		return err
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return c.Proxy.Validate()
}

func (p *ProxyConfig) Validate() error {
	switch p.Mode {
	case "", ProxyModeSystem, ProxyModeNone:
		if p.User != "" || p.Password != "" {
			return fmt.Errorf("proxy credentials require proxy mode %q", ProxyModeManual)
		}
		return nil
	case ProxyModeManual:
		if strings.TrimSpace(p.Host) == "" {
			return fmt.Errorf("proxy host is required in manual mode")
		}
		if p.Port <= 0 || p.Port > 65535 {
			return fmt.Errorf("proxy port %d out of range", p.Port)
		}
		switch strings.ToLower(p.Type) {
		case "", "http", "socks5":
		default:
			return fmt.Errorf("unknown proxy type %q", p.Type)
		}
		if p.Password != "" && p.User == "" {
			return fmt.Errorf("proxy password set without user")
		}
		return nil
	default:
		return fmt.Errorf("unknown proxy mode %q", p.Mode)
	}
}

// WriteExample renders cfg as YAML with secrets masked.
func WriteExample(w io.Writer, cfg *Config) error {
	out := *cfg
	out.OWM.APIKey = logger.MaskAPIKey(cfg.OWM.APIKey)
	if out.OWM.Proxy.Password != "" {
		out.OWM.Proxy.Password = "***"
	}
	if out.Redis.Password != "" {
		out.Redis.Password = "***"
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}
