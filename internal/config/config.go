package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// RiotConfig holds Riot API configuration. The account and match endpoints
// live on a regional host (americas/europe/asia), the league endpoint on a
// platform host (na1, euw1, ...).
type RiotConfig struct {
	RegionalURL string        `mapstructure:"regional_url"`
	PlatformURL string        `mapstructure:"platform_url"`
	APIKey      string        `mapstructure:"api_key"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

// RateWindowConfig describes one rate budget: at most Requests calls per
// Window
type RateWindowConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// RateLimiterConfig holds the two simultaneous outbound budgets enforced
// against the Riot API
type RateLimiterConfig struct {
	Burst     RateWindowConfig `mapstructure:"burst"`
	Sustained RateWindowConfig `mapstructure:"sustained"`
}

// DataDragonConfig holds the item-metadata catalog configuration
type DataDragonConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

// WorkerConfig holds async ingestion worker pool configuration
type WorkerConfig struct {
	PoolSize  int `mapstructure:"pool_size"`
	QueueSize int `mapstructure:"queue_size"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// AggregatorConfig holds the winrate rebuild schedule
type AggregatorConfig struct {
	// CronSpec uses the six-field form with seconds
	CronSpec string `mapstructure:"cron_spec"`
	// RunOnStart triggers one rebuild immediately at process start
	RunOnStart bool `mapstructure:"run_on_start"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig      `mapstructure:"server"`
	Database   DatabaseConfig    `mapstructure:"database"`
	Riot       RiotConfig        `mapstructure:"riot"`
	RateLimit  RateLimiterConfig `mapstructure:"rate_limit"`
	DataDragon DataDragonConfig  `mapstructure:"ddragon"`
	Worker     WorkerConfig      `mapstructure:"worker"`
}

// AggregatorServiceConfig holds configuration for the aggregator program
type AggregatorServiceConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Aggregator AggregatorConfig `mapstructure:"aggregator"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	setCommonDefaults(v)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("worker.pool_size", 4)
	v.SetDefault("worker.queue_size", 50)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Riot.APIKey == "" {
		return nil, fmt.Errorf("riot.api_key is required")
	}

	return &cfg, nil
}

// LoadAggregatorConfig loads configuration for the aggregator
func LoadAggregatorConfig(configFile string, envPath string) (*AggregatorServiceConfig, error) {
	v := configureViper("aggregator", configFile, envPath)

	setCommonDefaults(v)
	// Every day at 2 AM server time
	v.SetDefault("aggregator.cron_spec", "0 0 2 * * *")
	v.SetDefault("aggregator.run_on_start", false)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg AggregatorServiceConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setCommonDefaults applies defaults shared by all services
func setCommonDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("riot.regional_url", "https://americas.api.riotgames.com")
	v.SetDefault("riot.platform_url", "https://na1.api.riotgames.com")
	v.SetDefault("riot.http_timeout", "5s")
	// Riot development key budgets: 20 req / 1s and 100 req / 2min
	v.SetDefault("rate_limit.burst.requests", 20)
	v.SetDefault("rate_limit.burst.window", "1s")
	v.SetDefault("rate_limit.sustained.requests", 100)
	v.SetDefault("rate_limit.sustained.window", "2m")
	v.SetDefault("ddragon.base_url", "https://ddragon.leagueoflegends.com")
	v.SetDefault("ddragon.http_timeout", "10s")
}

// readConfig reads the config file, tolerating its absence so that pure
// env-var deployments keep working
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// configureViper returns a viper instance with the config file and
// environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("MID_DIFF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// This is required for viper to map env vars to config struct fields when
// no config file exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Riot
		"riot.regional_url",
		"riot.platform_url",
		"riot.api_key",
		"riot.http_timeout",
		// Rate limiter
		"rate_limit.burst.requests",
		"rate_limit.burst.window",
		"rate_limit.sustained.requests",
		"rate_limit.sustained.window",
		// Data Dragon
		"ddragon.base_url",
		"ddragon.http_timeout",
		// Worker pool
		"worker.pool_size",
		"worker.queue_size",
		// Aggregator
		"aggregator.cron_spec",
		"aggregator.run_on_start",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate)
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
