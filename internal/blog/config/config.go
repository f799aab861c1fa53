// Package config содержит конфигурацию сервиса блога.
package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pkgconfig "blogcore/pkg/config"
	"blogcore/pkg/logger"
)

const serviceName = "blog"

// Константы ошибок и сообщений для конфигурации.
const (
	LogConfigLoaded    = "blog service configuration"
	ErrInvalidTimezone = "invalid limits timezone"
)

// Config представляет полную конфигурацию сервиса.
type Config struct {
	Postgres PostgresConfig `yaml:"postgres"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
	HTTP     HTTPConfig     `yaml:"http"`
	Password PasswordConfig `yaml:"password"`
	Limits   LimitsConfig   `yaml:"limits"`
}

// Load загружает конфигурацию из файла path (если он есть) и переменных окружения BLOG_*.
func Load(ctx context.Context, path string) (*Config, error) {
	cfg, err := pkgconfig.Load[Config](ctx, serviceName, path)
	if err != nil {
		return nil, err
	}

	if _, err := cfg.Limits.Location(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrInvalidTimezone, err)
	}

	logger.Log(ctx).Info(ctx, LogConfigLoaded,
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.String("http_address", cfg.HTTP.Address()),
		zap.Int("blogs_per_day", cfg.Limits.BlogsPerDay),
		zap.Int("comments_per_day", cfg.Limits.CommentsPerDay),
		zap.String("timezone", cfg.Limits.Timezone),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout))

	return cfg, nil
}
