// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Bot           BotConfig          `mapstructure:"bot"`
	Petfinder     PetfinderConfig    `mapstructure:"petfinder"`
	Redis         RedisConfig        `mapstructure:"redis"`
	History       HistoryConfig      `mapstructure:"history"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	AWS           AWSConfig          `mapstructure:"aws"`
	Server        ServerConfig       `mapstructure:"server"`
	Logging       LoggingConfig      `mapstructure:"logging"`
}

// --- Core App Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	Timezone    string `mapstructure:"timezone"`
}

// BotConfig guards which Lex bot may invoke the handler.
type BotConfig struct {
	ExpectedName string `mapstructure:"expected_name"`
}

// PetfinderConfig holds settings for the pet directory API.
type PetfinderConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	APIKey      string `mapstructure:"api_key"`
	Timeout     int    `mapstructure:"timeout"` // milliseconds, 0 disables the client timeout
	PhotoMarker string `mapstructure:"photo_marker"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// HistoryConfig controls the per-user match history kept in redis.
type HistoryConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	KeyPrefix  string `mapstructure:"key_prefix"`
	MaxEntries int    `mapstructure:"max_entries"`
	TTL        int    `mapstructure:"ttl"` // milliseconds
}

// NotificationConfig holds settings for match event publishing.
type NotificationConfig struct {
	SNS struct {
		Enabled  bool   `mapstructure:"enabled"`
		TopicARN string `mapstructure:"topic_arn"`
	} `mapstructure:"sns"`
}

type AWSConfig struct {
	Region string `mapstructure:"region"`
}

// ServerConfig is used by the local HTTP mode only.
type ServerConfig struct {
	Address         string `mapstructure:"address"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
