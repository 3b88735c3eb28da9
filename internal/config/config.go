package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	App     AppConfig     `mapstructure:"app"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Blob    BlobConfig    `mapstructure:"blob"`
	Session SessionConfig `mapstructure:"session"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

// CacheConfig selects the session/cache backend: "memory" (go-cache) or "redis".
type CacheConfig struct {
	Backend       string `mapstructure:"backend"`
	RedisHost     string `mapstructure:"redis_host"`
	RedisPort     string `mapstructure:"redis_port"`
	RedisPassword string `mapstructure:"redis_password"`
}

// BlobConfig selects the file store backend: "memory" or "s3".
type BlobConfig struct {
	Driver      string `mapstructure:"driver"`
	S3Bucket    string `mapstructure:"s3_bucket"`
	S3Region    string `mapstructure:"s3_region"`
	S3Endpoint  string `mapstructure:"s3_endpoint"`
	S3PathStyle bool   `mapstructure:"s3_path_style"`
}

type SessionConfig struct {
	TTLMinutes int    `mapstructure:"ttl_minutes"`
	Secret     string `mapstructure:"secret"`
}

// Load reads config.yaml if present and overlays environment variables.
// The service runs with pure defaults when no file exists.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	bindEnvVariables(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.redis_host", "localhost")
	v.SetDefault("cache.redis_port", "6379")
	v.SetDefault("blob.driver", "memory")
	v.SetDefault("blob.s3_region", "us-east-1")
	v.SetDefault("session.ttl_minutes", 480)
	v.SetDefault("session.secret", "opsdesk-dev-secret")
}

// bindEnvVariables explicitly maps environment variables onto config keys
func bindEnvVariables(v *viper.Viper) {
	v.BindEnv("server.host", "SERVER_HOST")
	v.BindEnv("server.port", "SERVER_PORT")

	v.BindEnv("app.env", "APP_ENV")

	v.BindEnv("cache.backend", "CACHE_BACKEND")
	v.BindEnv("cache.redis_host", "REDIS_HOST")
	v.BindEnv("cache.redis_port", "REDIS_PORT")
	v.BindEnv("cache.redis_password", "REDIS_PASSWORD")

	v.BindEnv("blob.driver", "BLOB_DRIVER")
	v.BindEnv("blob.s3_bucket", "BLOB_S3_BUCKET")
	v.BindEnv("blob.s3_region", "BLOB_S3_REGION")
	v.BindEnv("blob.s3_endpoint", "BLOB_S3_ENDPOINT")
	v.BindEnv("blob.s3_path_style", "BLOB_S3_PATH_STYLE")

	v.BindEnv("session.ttl_minutes", "SESSION_TTL_MINUTES")
	v.BindEnv("session.secret", "SESSION_SECRET")
}

// GetAddress returns the listen address in host:port form
func (c *ServerConfig) GetAddress() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
