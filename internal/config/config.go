// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"sort"

	"github.com/spf13/viper"

	"github.com/teleline/smsgate/internal/models"
)

type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Database    DatabaseConfig   `mapstructure:"database"`
	Redis       RedisConfig      `mapstructure:"redis"`
	Gateway     GatewayConfig    `mapstructure:"gateway"`
	Scheduler   SchedulerConfig  `mapstructure:"scheduler"`
	Middleware  MiddlewareConfig `mapstructure:"middleware"`

	// SMS is the merged environment-scoped settings tier: the global "*"
	// tier with the active environment's overrides applied on top.
	SMS SMSConfig `mapstructure:"-"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type GatewayConfig struct {
	Timeout        int                  `mapstructure:"timeout"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

type SchedulerConfig struct {
	IntervalHours int `mapstructure:"interval_hours"`
}

type MiddlewareConfig struct {
	RateLimit      int      `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SMSConfig is the plugin-level settings record plus the config-origin
// provider and sender identity definitions, keyed by handle.
type SMSConfig struct {
	EnableLogs             bool `mapstructure:"enable_logs"`
	EnableAnalytics        bool `mapstructure:"enable_analytics"`
	LogsRetentionDays      int  `mapstructure:"logs_retention_days"`
	AnalyticsRetentionDays int  `mapstructure:"analytics_retention_days"`
	TrimLogs               bool `mapstructure:"trim_logs"`
	LogsLimit              int  `mapstructure:"logs_limit"`
	TrimAnalytics          bool `mapstructure:"trim_analytics"`
	AnalyticsLimit         int  `mapstructure:"analytics_limit"`
	PageSize               int  `mapstructure:"page_size"`
	// RefreshIntervalSecs is how often listing clients should re-poll.
	// The API only advertises it; nothing server-side consumes it.
	RefreshIntervalSecs int `mapstructure:"refresh_interval"`

	DefaultProvider string `mapstructure:"default_provider"`
	DefaultSender   string `mapstructure:"default_sender"`

	Providers map[string]ProviderDef `mapstructure:"providers"`
	Senders   map[string]SenderDef   `mapstructure:"senders"`
}

// ProviderDef is a config-origin provider definition.
type ProviderDef struct {
	Name     string            `mapstructure:"name"`
	Type     string            `mapstructure:"type"`
	Enabled  bool              `mapstructure:"enabled"`
	Settings map[string]string `mapstructure:"settings"`
}

// SenderDef is a config-origin sender identity definition.
type SenderDef struct {
	Name          string `mapstructure:"name"`
	Provider      string `mapstructure:"provider"`
	SenderValue   string `mapstructure:"sender_value"`
	Enabled       bool   `mapstructure:"enabled"`
	IsDevelopment bool   `mapstructure:"is_development"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("environment", "production")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.db", 0)
	v.SetDefault("gateway.timeout", 30)
	v.SetDefault("gateway.circuit_breaker.max_requests", 3)
	v.SetDefault("gateway.circuit_breaker.interval", 60)
	v.SetDefault("gateway.circuit_breaker.timeout", 60)
	v.SetDefault("gateway.circuit_breaker.failure_ratio", 0.6)
	v.SetDefault("gateway.circuit_breaker.consecutive_fails", 5)
	v.SetDefault("scheduler.interval_hours", 24)
	v.SetDefault("middleware.rate_limit", 100)
	v.SetDefault("middleware.rate_limit_burst", 1000)
	v.SetDefault("middleware.enable_cors", true)
	v.SetDefault("middleware.allowed_origins", []string{"*"})

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	sms, err := loadSMSSettings(v, config.Environment)
	if err != nil {
		return nil, err
	}
	config.SMS = *sms

	return &config, nil
}

// loadSMSSettings merges the global "*" tier under the active environment's
// overrides. Environment-specific keys win key-by-key.
func loadSMSSettings(v *viper.Viper, environment string) (*SMSConfig, error) {
	merged := viper.New()

	merged.SetDefault("enable_logs", true)
	merged.SetDefault("enable_analytics", true)
	merged.SetDefault("logs_retention_days", 90)
	merged.SetDefault("analytics_retention_days", 365)
	merged.SetDefault("trim_logs", false)
	merged.SetDefault("logs_limit", 50000)
	merged.SetDefault("trim_analytics", false)
	merged.SetDefault("analytics_limit", 10000)
	merged.SetDefault("page_size", 20)
	merged.SetDefault("refresh_interval", 60)

	for _, tier := range []string{"*", environment} {
		sub := v.Sub("environments." + tier)
		if sub == nil {
			continue
		}
		if err := merged.MergeConfigMap(sub.AllSettings()); err != nil {
			return nil, fmt.Errorf("failed to merge settings tier %q: %w", tier, err)
		}
	}

	var sms SMSConfig
	if err := merged.Unmarshal(&sms); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sms settings: %w", err)
	}

	return &sms, nil
}

// ProviderRecords converts the config-origin provider definitions into
// resolver records, sorted by display name.
func (s *SMSConfig) ProviderRecords() []*models.Provider {
	records := make([]*models.Provider, 0, len(s.Providers))
	for handle, def := range s.Providers {
		records = append(records, &models.Provider{
			Handle:     handle,
			Name:       def.Name,
			TypeHandle: def.Type,
			Enabled:    def.Enabled,
			Settings:   def.Settings,
			Origin:     models.OriginConfig,
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records
}

// SenderRecords converts the config-origin sender identity definitions into
// resolver records, sorted by display name.
func (s *SMSConfig) SenderRecords() []*models.SenderIdentity {
	records := make([]*models.SenderIdentity, 0, len(s.Senders))
	for handle, def := range s.Senders {
		records = append(records, &models.SenderIdentity{
			Handle:         handle,
			Name:           def.Name,
			ProviderHandle: def.Provider,
			SenderValue:    def.SenderValue,
			Enabled:        def.Enabled,
			IsDevelopment:  def.IsDevelopment,
			Origin:         models.OriginConfig,
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records
}

// GetDSN returns PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}
