package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Driver: DriverValkey,
			Addrs:  []string{"localhost:6379"},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingAddrs(t *testing.T) {
	for _, driver := range []string{DriverValkey, DriverRedis} {
		cfg := validConfig()
		cfg.Database.Driver = driver
		cfg.Database.Addrs = nil

		if err := cfg.Validate(); err == nil {
			t.Errorf("driver %s: expected error for missing addrs", driver)
		}
	}
}

func TestValidate_SQLite(t *testing.T) {
	cfg := validConfig()
	cfg.Database = DatabaseConfig{Driver: DriverSQLite}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing dsn")
	}

	cfg.Database.DSN = "/var/lib/browse/stats.db"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Driver = "mysql"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
	expected := `database.driver must be one of valkey, redis, sqlite, got "mysql"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_WatchRequiresPath(t *testing.T) {
	cfg := validConfig()
	cfg.Taxonomy.Watch = true

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for watch without path")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.Driver != DriverValkey {
		t.Errorf("expected Driver=valkey, got %q", cfg.Database.Driver)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Database.CountKey != "browse:stats:total_papers" {
		t.Errorf("unexpected CountKey %q", cfg.Database.CountKey)
	}
	if cfg.Browse.DailyStatsPath != "" {
		t.Errorf("daily stats path must stay unset by default, got %q", cfg.Browse.DailyStatsPath)
	}
}

func TestApplyDefaults_KeepsExplicit(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{ReadTimeoutSec: 3},
		Database: DatabaseConfig{Driver: DriverSQLite, CountKey: "k"},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 3 || cfg.Database.Driver != DriverSQLite || cfg.Database.CountKey != "k" {
		t.Errorf("explicit values overwritten: %+v", cfg)
	}
}

const sampleYAML = `
http:
  port: 8080
database:
  driver: redis
  addrs: ["${BROWSE_TEST_REDIS:-localhost:6379}"]
browse:
  daily_stats_path: /data/daily_stats
taxonomy:
  path: /etc/browse/taxonomy.yaml
  watch: true
logging:
  level: warn
auth:
  metrics_tokens: ["scrape-token"]
`

func TestParse(t *testing.T) {
	t.Setenv("BROWSE_TEST_REDIS", "redis:6380")
	t.Setenv(DailyStatsPathEnv, "") // restored after the test
	_ = os.Unsetenv(DailyStatsPathEnv)

	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Database.Driver != DriverRedis {
		t.Errorf("driver = %q", cfg.Database.Driver)
	}
	if len(cfg.Database.Addrs) != 1 || cfg.Database.Addrs[0] != "redis:6380" {
		t.Errorf("addrs = %v", cfg.Database.Addrs)
	}
	if cfg.Browse.DailyStatsPath != "/data/daily_stats" {
		t.Errorf("daily_stats_path = %q", cfg.Browse.DailyStatsPath)
	}
	if !cfg.Taxonomy.Watch || cfg.Taxonomy.Path != "/etc/browse/taxonomy.yaml" {
		t.Errorf("taxonomy = %+v", cfg.Taxonomy)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("logging.level = %q", cfg.Logging.Level)
	}
	if len(cfg.Auth.MetricsTokens) != 1 || cfg.Auth.MetricsTokens[0] != "scrape-token" {
		t.Errorf("auth.metrics_tokens = %v", cfg.Auth.MetricsTokens)
	}
}

func TestParse_EnvDefaultUsed(t *testing.T) {
	t.Setenv("BROWSE_TEST_REDIS", "")

	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Addrs[0] != "localhost:6379" {
		t.Errorf("addrs = %v", cfg.Database.Addrs)
	}
}

func TestParse_DailyStatsEnvOverride(t *testing.T) {
	t.Setenv(DailyStatsPathEnv, "/override/stats")

	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Browse.DailyStatsPath != "/override/stats" {
		t.Errorf("daily_stats_path = %q", cfg.Browse.DailyStatsPath)
	}
}

func TestParse_DailyStatsEnvEmptyDisables(t *testing.T) {
	t.Setenv(DailyStatsPathEnv, "")

	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Browse.DailyStatsPath != "" {
		t.Errorf("daily_stats_path = %q, want empty", cfg.Browse.DailyStatsPath)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("http: [")); err == nil {
		t.Error("expected YAML error")
	}
	_, err := Parse([]byte("http:\n  port: 0\n"))
	if err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv(DailyStatsPathEnv, "/x")
	path := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 8080 {
		t.Errorf("port = %d", cfg.HTTP.Port)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("BROWSE_A", "alpha")
	t.Setenv("BROWSE_EMPTY", "")

	got := string(expandEnvVars([]byte("${BROWSE_A} ${BROWSE_EMPTY:-beta} ${BROWSE_UNSET_XYZ}")))
	if got != "alpha beta " {
		t.Errorf("expandEnvVars = %q", got)
	}
}
