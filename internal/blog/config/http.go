package config

import (
	"net"
	"strconv"
	"time"
)

// HTTPConfig содержит настройки HTTP-сервера.
type HTTPConfig struct {
	Host         string `yaml:"host" env:"BLOG_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int    `yaml:"port" env:"BLOG_HTTP_PORT" env-default:"8080"`
	ReadTimeout  int    `yaml:"read_timeout" env:"BLOG_HTTP_READ_TIMEOUT" env-default:"10"`
	WriteTimeout int    `yaml:"write_timeout" env:"BLOG_HTTP_WRITE_TIMEOUT" env-default:"10"`
	IdleTimeout  int    `yaml:"idle_timeout" env:"BLOG_HTTP_IDLE_TIMEOUT" env-default:"60"`

	// RateLimitRPS - запросов в секунду с одного IP. 0 отключает ограничение.
	RateLimitRPS   float64 `yaml:"rate_limit_rps" env:"BLOG_HTTP_RATE_LIMIT_RPS" env-default:"20"`
	RateLimitBurst int     `yaml:"rate_limit_burst" env:"BLOG_HTTP_RATE_LIMIT_BURST" env-default:"40"`

	MetricsEnabled bool `yaml:"metrics_enabled" env:"BLOG_HTTP_METRICS_ENABLED" env-default:"true"`
}

// Address возвращает адрес для прослушивания.
func (h *HTTPConfig) Address() string {
	return net.JoinHostPort(h.Host, strconv.Itoa(h.Port))
}

// GetReadTimeout возвращает таймаут чтения.
func (h *HTTPConfig) GetReadTimeout() time.Duration {
	return time.Duration(h.ReadTimeout) * time.Second
}

// GetWriteTimeout возвращает таймаут записи.
func (h *HTTPConfig) GetWriteTimeout() time.Duration {
	return time.Duration(h.WriteTimeout) * time.Second
}

// GetIdleTimeout возвращает таймаут простоя keep-alive.
func (h *HTTPConfig) GetIdleTimeout() time.Duration {
	return time.Duration(h.IdleTimeout) * time.Second
}
