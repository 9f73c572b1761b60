// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultTimezone = "America/New_York"

// Load reads configs/config.yaml, merges config.<APP_ENVIRONMENT>.yaml over
// it and applies environment overrides such as PETFINDER_API_KEY.
func Load() (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}
	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig()

	return finish(v)
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return finish(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func finish(v *viper.Viper) (*Config, error) {
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "petfinder-bot")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.timezone", DefaultTimezone)

	v.SetDefault("bot.expected_name", "PetFinder")

	v.SetDefault("petfinder.base_url", "http://api.petfinder.com")
	v.SetDefault("petfinder.api_key", "")
	v.SetDefault("petfinder.timeout", 0)
	v.SetDefault("petfinder.photo_marker", "x.jpg")

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("history.enabled", false)
	v.SetDefault("history.key_prefix", "petfinder:history")
	v.SetDefault("history.max_entries", 20)
	v.SetDefault("history.ttl", 604800000) // 7 days

	v.SetDefault("notifications.sns.enabled", false)
	v.SetDefault("notifications.sns.topic_arn", "")

	v.SetDefault("aws.region", "")

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.shutdown_timeout", 10000)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// loadEnvFile loads the first .env found walking up from the working
// directory; a missing file is not an error.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// expandEnvVars replaces ${VAR} placeholders in string values.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok {
			continue
		}
		if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
			expanded := os.ExpandEnv(strVal)
			if expanded != strVal {
				v.Set(key, expanded)
			}
		}
	}
}

// Direct override if config values are still empty after expansion
func overrideEmptyConfig(cfg *Config) {
	if cfg.Petfinder.APIKey == "" {
		if val := os.Getenv("PETFINDER_API_KEY"); val != "" {
			cfg.Petfinder.APIKey = val
		}
	}
	if cfg.AWS.Region == "" {
		if val := os.Getenv("AWS_DEFAULT_REGION"); val != "" {
			cfg.AWS.Region = val
		} else {
			cfg.AWS.Region = "us-east-1"
		}
	}
	if cfg.Notifications.SNS.TopicARN == "" {
		if val := os.Getenv("PETFINDER_MATCH_TOPIC_ARN"); val != "" {
			cfg.Notifications.SNS.TopicARN = val
		}
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	if cfg.Petfinder.APIKey == "" {
		return fmt.Errorf("petfinder.api_key is required")
	}
	if cfg.Petfinder.BaseURL == "" {
		return fmt.Errorf("petfinder.base_url is required")
	}
	if cfg.Petfinder.Timeout < 0 {
		return fmt.Errorf("petfinder.timeout must not be negative")
	}

	if cfg.History.Enabled {
		if cfg.Redis.Address == "" {
			return fmt.Errorf("redis.address is required when history is enabled")
		}
		if cfg.History.MaxEntries <= 0 {
			return fmt.Errorf("history.max_entries must be positive")
		}
	}

	if cfg.Notifications.SNS.Enabled && cfg.Notifications.SNS.TopicARN == "" {
		return fmt.Errorf("notifications.sns.topic_arn is required when sns is enabled")
	}

	if _, err := time.LoadLocation(cfg.App.Timezone); err != nil {
		return fmt.Errorf("app.timezone %q is invalid: %w", cfg.App.Timezone, err)
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// ApplyTimezone pins the process-local timezone. It is called once at
// startup, before any request is served.
func ApplyTimezone(name string) error {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("load timezone %s: %w", name, err)
	}
	if err := os.Setenv("TZ", name); err != nil {
		return fmt.Errorf("set TZ: %w", err)
	}
	time.Local = loc
	return nil
}
