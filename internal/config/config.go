package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	Chat    ChatConfig    `mapstructure:"chat"`
	Session SessionConfig `mapstructure:"session"`
	Log     LogConfig     `mapstructure:"log"`
}

// DataConfig holds on-disk storage paths.
type DataConfig struct {
	Dir         string `mapstructure:"dir"`
	HistoryPath string `mapstructure:"history_path"`
}

// ChatConfig holds chat-provider settings.
type ChatConfig struct {
	Provider       string `mapstructure:"provider"`
	Model          string `mapstructure:"model"`
	APIKeyEnv      string `mapstructure:"api_key_env"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// SessionConfig holds activity tuning knobs.
type SessionConfig struct {
	BreathCycleSeconds int `mapstructure:"breath_cycle_seconds"`
	BreathCycles       int `mapstructure:"breath_cycles"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Debug bool   `mapstructure:"debug"`
}

// Load reads configuration from file and env. Env var overrides use prefix MINDNEST_.
func Load() (Config, error) {
	v := viper.New()

	dataDir := defaultDataDir()
	v.SetDefault("data.dir", dataDir)
	v.SetDefault("data.history_path", filepath.Join(dataDir, "history.db"))
	v.SetDefault("chat.provider", "heuristic")
	v.SetDefault("chat.model", "gemini-2.0-flash")
	v.SetDefault("chat.api_key_env", "GEMINI_API_KEY")
	v.SetDefault("chat.timeout_seconds", 10)
	v.SetDefault("session.breath_cycle_seconds", 12)
	v.SetDefault("session.breath_cycles", 5)
	v.SetDefault("log.path", filepath.Join(dataDir, "mindnest.log"))
	v.SetDefault("log.debug", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MINDNEST_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(configHome(), "mindnest"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MINDNEST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// APIKey resolves the chat API key from the configured env var.
func (c Config) APIKey() string {
	env := strings.TrimSpace(c.Chat.APIKeyEnv)
	if env == "" {
		env = "GEMINI_API_KEY"
	}
	return strings.TrimSpace(os.Getenv(env))
}

func defaultDataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "mindnest")
}

func configHome() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return filepath.Join(os.Getenv("HOME"), ".config")
}
