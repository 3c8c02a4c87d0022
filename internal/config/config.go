package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Journal JournalConfig `mapstructure:"journal"`
	// Backend forces a serving backend (native|polyfill|local).
	// Empty means probe the environment at startup.
	Backend string `mapstructure:"backend"`
}

// ServerConfig configures the HTTP bridge. Port 0 disables it.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// JournalConfig configures invocation log retention.
type JournalConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// Load reads configuration from .env, config.yaml (cwd or
// ~/.notedeck/), and NOTEDECK_* environment variables, in that order
// of increasing precedence.
func Load() (*Config, error) {
	// Best effort; a missing .env is normal
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".notedeck"))
	}

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 0)
	v.SetDefault("journal.capacity", 256)
	v.SetDefault("backend", "")

	v.SetEnvPrefix("NOTEDECK")
	v.AutomaticEnv()
	_ = v.BindEnv("server.host", "NOTEDECK_SERVER_HOST")
	_ = v.BindEnv("server.port", "NOTEDECK_SERVER_PORT")
	_ = v.BindEnv("journal.capacity", "NOTEDECK_JOURNAL_CAPACITY")
	_ = v.BindEnv("backend", "NOTEDECK_BACKEND")

	if err := v.ReadInConfig(); err != nil {
		// Config file is optional; only real parse errors matter
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
