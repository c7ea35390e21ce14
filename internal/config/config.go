package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type DetectionConfig struct {
	Delay      time.Duration
	MinWindows int
	MaxWindows int
}

type GeocoderConfig struct {
	BaseURL string
	APIKey  string
}

type NotifyConfig struct {
	URLs []string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Detection   DetectionConfig
	Geocoder    GeocoderConfig
	Notify      NotifyConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")

	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Detection: DetectionConfig{
			Delay:      v.GetDuration("DETECTION_DELAY"),
			MinWindows: v.GetInt("DETECTION_MIN_WINDOWS"),
			MaxWindows: v.GetInt("DETECTION_MAX_WINDOWS"),
		},
		Geocoder: GeocoderConfig{
			BaseURL: v.GetString("GEOCODER_URL"),
			APIKey:  v.GetString("GEOCODER_API_KEY"),
		},
		Notify: NotifyConfig{
			URLs: v.GetStringSlice("NOTIFY_URLS"),
		},
	}

	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Detection.Delay == 0 {
		cfg.Detection.Delay = 3 * time.Second
	}
	if cfg.Detection.MinWindows == 0 {
		cfg.Detection.MinWindows = 10
	}
	if cfg.Detection.MaxWindows == 0 {
		cfg.Detection.MaxWindows = 29
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Detection.MinWindows < 1 {
		return fmt.Errorf("DETECTION_MIN_WINDOWS must be at least 1")
	}
	if cfg.Detection.MaxWindows < cfg.Detection.MinWindows {
		return fmt.Errorf("DETECTION_MAX_WINDOWS must be >= DETECTION_MIN_WINDOWS")
	}
	return nil
}
