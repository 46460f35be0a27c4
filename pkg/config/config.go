package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Metrics       MetricsConfig       `mapstructure:"metrics"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
	RateLimit     RateLimitConfig     `mapstructure:"rate_limit"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	WebSocket     WebSocketConfig     `mapstructure:"websocket"`
}

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	SecretKey    string        `mapstructure:"secret_key"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	BodyLimit    int           `mapstructure:"body_limit"`
	// Upper bound for draining in-flight requests on shutdown.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	User         string        `mapstructure:"user"`
	Password     string        `mapstructure:"password"`
	DBName       string        `mapstructure:"name"`
	SSLMode      string        `mapstructure:"sslmode"`
	MaxOpenConns int           `mapstructure:"max_open_conns"`
	MaxIdleConns int           `mapstructure:"max_idle_conns"`
	ConnLifetime time.Duration `mapstructure:"conn_lifetime"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

// RuleConfig overrides one bucket's quota. Zero fields keep the default.
type RuleConfig struct {
	Window  time.Duration `mapstructure:"window"`
	Max     int           `mapstructure:"max"`
	Message string        `mapstructure:"message"`
}

type BreakerConfig struct {
	MaxFailures uint32        `mapstructure:"max_failures"`
	OpenTimeout time.Duration `mapstructure:"open_timeout"`
}

type RateLimitConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	Store          string        `mapstructure:"store"`
	StoreTimeout   time.Duration `mapstructure:"store_timeout"`
	PlatformHeader string        `mapstructure:"platform_header"`
	AdultPlatforms []string      `mapstructure:"adult_platforms"`
	SkipPaths      []string      `mapstructure:"skip_paths"`
	// Keyed by bucket name; viper lower-cases map keys.
	Rules   map[string]RuleConfig `mapstructure:"rules"`
	Breaker BreakerConfig         `mapstructure:"breaker"`
}

type NotificationsConfig struct {
	Fanout         string        `mapstructure:"fanout"`
	Channel        string        `mapstructure:"channel"`
	Timezone       string        `mapstructure:"timezone"`
	StoreTimeout   time.Duration `mapstructure:"store_timeout"`
	PreferencesTTL time.Duration `mapstructure:"preferences_ttl"`
	DefaultLimit   int           `mapstructure:"default_limit"`
	MaxLimit       int           `mapstructure:"max_limit"`
}

type WebSocketConfig struct {
	MaxConnections   int           `mapstructure:"max_connections"`
	HandshakeTimeout time.Duration `mapstructure:"handshake_timeout"`
	ReadBufferSize   int           `mapstructure:"read_buffer_size"`
	WriteBufferSize  int           `mapstructure:"write_buffer_size"`
	WriteTimeout     time.Duration `mapstructure:"write_timeout"`
}

const (
	FanoutLocal = "local"
	FanoutRedis = "redis"

	StoreRedis  = "redis"
	StoreMemory = "memory"
)

var (
	ErrInvalidFanout = errors.New("notifications.fanout must be local or redis")
	ErrInvalidStore  = errors.New("rate_limit.store must be redis or memory")
)

// Load reads {configPath}/config.yaml, overlays environment variables
// (server.port -> SERVER_PORT) and fills defaults for anything left unset.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file config.yaml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	setDefaultValues(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindDefaults registers every key viper should consider for env lookup;
// AutomaticEnv alone ignores keys that are absent from the file.
func bindDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.secret_key", "")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "fanz")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.store", StoreRedis)
	v.SetDefault("notifications.fanout", FanoutLocal)
	v.SetDefault("notifications.timezone", "UTC")
}

func setDefaultValues(cfg *Config) {
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 30 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30 * time.Second
	}
	if cfg.Server.BodyLimit == 0 {
		cfg.Server.BodyLimit = 8 * 1024 * 1024
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 300
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 150
	}
	if cfg.Database.ConnLifetime == 0 {
		cfg.Database.ConnLifetime = 5 * time.Minute
	}

	rl := &cfg.RateLimit
	if rl.Store == "" {
		rl.Store = StoreRedis
	}
	if rl.StoreTimeout == 0 {
		rl.StoreTimeout = 250 * time.Millisecond
	}
	if rl.PlatformHeader == "" {
		rl.PlatformHeader = "X-Platform"
	}
	if len(rl.AdultPlatforms) == 0 {
		rl.AdultPlatforms = []string{
			"boyfanz", "girlfanz", "pupfanz", "daddyfanz",
			"taboofanz", "cougarfanz", "transfanz", "fanzuncut",
		}
	}
	if rl.SkipPaths == nil {
		rl.SkipPaths = []string{"/health", "/__/ping", "/metrics"}
	}
	if rl.Breaker.MaxFailures == 0 {
		rl.Breaker.MaxFailures = 5
	}
	if rl.Breaker.OpenTimeout == 0 {
		rl.Breaker.OpenTimeout = 10 * time.Second
	}

	n := &cfg.Notifications
	if n.Fanout == "" {
		n.Fanout = FanoutLocal
	}
	if n.Channel == "" {
		n.Channel = "fanz:notifications"
	}
	if n.Timezone == "" {
		n.Timezone = "UTC"
	}
	if n.StoreTimeout == 0 {
		n.StoreTimeout = 3 * time.Second
	}
	if n.PreferencesTTL == 0 {
		n.PreferencesTTL = 30 * time.Second
	}
	if n.DefaultLimit == 0 {
		n.DefaultLimit = 20
	}
	if n.MaxLimit == 0 {
		n.MaxLimit = 100
	}

	ws := &cfg.WebSocket
	if ws.MaxConnections == 0 {
		ws.MaxConnections = 10000
	}
	if ws.HandshakeTimeout == 0 {
		ws.HandshakeTimeout = 15 * time.Second
	}
	if ws.ReadBufferSize == 0 {
		ws.ReadBufferSize = 1024
	}
	if ws.WriteBufferSize == 0 {
		ws.WriteBufferSize = 1024
	}
	if ws.WriteTimeout == 0 {
		ws.WriteTimeout = 10 * time.Second
	}
}

func (c *Config) Validate() error {
	switch c.Notifications.Fanout {
	case FanoutLocal, FanoutRedis:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidFanout, c.Notifications.Fanout)
	}
	switch c.RateLimit.Store {
	case StoreRedis, StoreMemory:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidStore, c.RateLimit.Store)
	}
	if _, err := time.LoadLocation(c.Notifications.Timezone); err != nil {
		return fmt.Errorf("notifications.timezone: %w", err)
	}
	return nil
}
