// Package config loads the service configuration from configs/config.yml,
// an optional .env file and SMART_FRIDGE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "SMART_FRIDGE"

type Config struct {
	Port      string          `mapstructure:"port"`
	Log       LogConfig       `mapstructure:"log"`
	DB        DBConfig        `mapstructure:"db"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Inventory InventoryConfig `mapstructure:"inventory"`
	Server    ServerConfig    `mapstructure:"server"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type DBConfig struct {
	// Path of the activity log database; ":memory:" keeps it per process.
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	// Password of the single dashboard operator. Empty disables sign-in.
	Password   string        `mapstructure:"password"`
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

type GeminiConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type InventoryConfig struct {
	SeedDemo bool `mapstructure:"seed_demo"`
}

type ServerConfig struct {
	// Model calls are not time-boxed by this service, so the write timeout
	// must outlast a slow scan or recipe.
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	WSInterval   time.Duration `mapstructure:"ws_interval"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("db.path", ":memory:")
	v.SetDefault("auth.password", "")
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("inventory.seed_demo", true)
	v.SetDefault("server.write_timeout", 2*time.Minute)
	v.SetDefault("server.ws_interval", time.Second)
}

// Load reads configuration. An empty path looks for configs/config.yml and
// tolerates its absence; an explicit path must exist.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs")
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = firstEnv("GEMINI_API_KEY", "API_KEY")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("config: port must not be empty")
	}
	if c.Auth.Password != "" && c.Auth.SigningKey == "" {
		return errors.New("config: auth.signing_key is required when auth.password is set")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("config: auth.token_ttl must be > 0, got %s", c.Auth.TokenTTL)
	}
	return nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
