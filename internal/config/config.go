package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// DailyStatsPathEnv overrides browse.daily_stats_path when set.
const DailyStatsPathEnv = "BROWSE_DAILY_STATS_PATH"

// Supported database drivers.
const (
	DriverValkey = "valkey"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
)

// Config holds the browse service configuration.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Browse   BrowseConfig   `yaml:"browse"`
	Taxonomy TaxonomyConfig `yaml:"taxonomy"`
	Logging  LoggingConfig  `yaml:"logging"`
	Auth     AuthConfig     `yaml:"auth"`
}

// AuthConfig holds operational endpoint authentication settings.
type AuthConfig struct {
	MetricsTokens []string `yaml:"metrics_tokens"` // empty = /metrics is public
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatabaseConfig holds the document count database settings.
type DatabaseConfig struct {
	Driver           string   `yaml:"driver"` // valkey, redis, sqlite (default: valkey)
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	DSN              string   `yaml:"dsn"`       // sqlite only
	CountKey         string   `yaml:"count_key"` // valkey/redis only
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// BrowseConfig holds home page settings.
type BrowseConfig struct {
	// DailyStatsPath is the legacy stats file used when the database has no count.
	// Empty disables the fallback.
	DailyStatsPath string `yaml:"daily_stats_path"`
}

// TaxonomyConfig holds taxonomy catalog settings.
type TaxonomyConfig struct {
	Path  string `yaml:"path"`  // empty = built-in catalog
	Watch bool   `yaml:"watch"` // reload Path on change
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	return LoadFile(findConfigPath(env))
}

// LoadFile reads configuration from an explicit YAML path.
func LoadFile(configPath string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}
	return Parse(data)
}

// Parse decodes YAML, expands ${VAR} references, applies env overrides and
// defaults, then validates.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyEnv()
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyEnv applies process environment overrides. A set-but-empty variable
// disables the stats file.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(DailyStatsPathEnv); ok {
		c.Browse.DailyStatsPath = v
	}
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverValkey
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.Database.CountKey == "" {
		c.Database.CountKey = "browse:stats:total_papers"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.Database.Driver {
	case DriverValkey, DriverRedis:
		if len(c.Database.Addrs) == 0 {
			return fmt.Errorf("database.addrs is required for driver %q", c.Database.Driver)
		}
	case DriverSQLite:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for driver %q", c.Database.Driver)
		}
	default:
		return fmt.Errorf("database.driver must be one of valkey, redis, sqlite, got %q", c.Database.Driver)
	}
	if c.Taxonomy.Watch && c.Taxonomy.Path == "" {
		return fmt.Errorf("taxonomy.watch requires taxonomy.path")
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// envVarRegex matches ${VAR} and ${VAR:-default}.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
