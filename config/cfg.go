package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/pulsemetrics/analytics-manager/internal/analytics/ga4"
	"github.com/pulsemetrics/analytics-manager/internal/analytics/syncworker"
	httpapi "github.com/pulsemetrics/analytics-manager/internal/api/http"
	"github.com/pulsemetrics/analytics-manager/internal/apisrv/auth"
	"github.com/pulsemetrics/analytics-manager/internal/store"
	"github.com/pulsemetrics/analytics-manager/log"
)

// Config represents the global configuration for the service.
type Config struct {
	DB     store.Config      `mapstructure:"mysql"`
	Logger log.Config        `mapstructure:"logger"`
	HTTP   httpapi.Config    `mapstructure:"http"`
	Auth   auth.Config       `mapstructure:"auth"`
	GA4    ga4.Config        `mapstructure:"ga4"`
	Sync   syncworker.Config `mapstructure:"sync"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
func LoadConfig(cfgFile string) (*Config, error) {
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	bindEnvVars()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			// If config file doesn't exist, continue with env vars only
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/config/analytics-manager")
		viper.AddConfigPath("/etc/analytics-manager")
		// Try to read config, but don't fail if it doesn't exist
		_ = viper.ReadInConfig()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	return &config, nil
}

// bindEnvVars binds environment variables to config keys so flat names like
// MYSQL_DSN work alongside the nested MYSQL__DSN form.
func bindEnvVars() {
	// MySQL
	viper.BindEnv("mysql.dsn", "MYSQL_DSN")
	viper.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	viper.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	viper.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	viper.BindEnv("http.port", "HTTP_PORT")
	viper.BindEnv("http.address", "HTTP_ADDRESS")
	viper.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")

	// Auth
	viper.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	viper.BindEnv("auth.password_hasher_salt_size", "AUTH_PASSWORD_HASHER_SALT_SIZE")
	viper.BindEnv("auth.password_hasher_iterations", "AUTH_PASSWORD_HASHER_ITERATIONS")
	viper.BindEnv("auth.jwt_ttl", "AUTH_JWT_TTL")

	// GA4
	viper.BindEnv("ga4.enabled", "GA4_ENABLED")

	// Sync worker
	viper.BindEnv("sync.worker_interval", "SYNC_WORKER_INTERVAL")
	viper.BindEnv("sync.lookback_days", "SYNC_LOOKBACK_DAYS")
}
