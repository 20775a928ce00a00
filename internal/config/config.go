package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const defaultPasswordEnv = "FORM_ACCESS_PASSWORD"

// Config конфигурация сервиса, загружается один раз при старте
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Webhook WebhookConfig `toml:"webhook"`
	Access  AccessConfig  `toml:"access"`
}

type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	Environment     string `toml:"environment"` // development | production
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// WebhookConfig параметры внешнего n8n webhook
type WebhookConfig struct {
	URL       string `toml:"url"`
	Timeout   int    `toml:"timeout"` // секунды, на весь исходящий запрос
	UserAgent string `toml:"user_agent"`
}

// AccessConfig общий секрет формы онбординга
// Сам пароль не хранится в toml - только имя переменной окружения
type AccessConfig struct {
	PasswordEnv string `toml:"password_env"`
	Password    string `toml:"-"`
}

// Load загружает конфигурацию из TOML файла и переменных окружения
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.Environment == "" {
		cfg.Server.Environment = "production"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Webhook.Timeout == 0 {
		cfg.Webhook.Timeout = 30
	}
	if cfg.Webhook.UserAgent == "" {
		cfg.Webhook.UserAgent = "Opulent-Form/1.0"
	}
	if cfg.Access.PasswordEnv == "" {
		cfg.Access.PasswordEnv = defaultPasswordEnv
	}

	if cfg.Webhook.URL == "" {
		return nil, fmt.Errorf("webhook.url is required")
	}

	// Секрет читается один раз и дальше не изменяется
	cfg.Access.Password = os.Getenv(cfg.Access.PasswordEnv)
	if cfg.Access.Password == "" {
		return nil, fmt.Errorf("access password is not set (env %s)", cfg.Access.PasswordEnv)
	}

	return &cfg, nil
}

// IsDevelopment возвращает true, если сервис запущен в режиме разработки
// В этом режиме в ответах об ошибках присутствует поле details
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}
