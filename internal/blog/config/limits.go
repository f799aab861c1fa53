package config

import (
	"errors"
	"time"

	"blogcore/internal/blog/domain/services"
)

// LimitsConfig содержит дневные лимиты и часовой пояс, в котором считается день.
type LimitsConfig struct {
	BlogsPerDay    int    `yaml:"blogs_per_day" env:"BLOG_LIMITS_BLOGS_PER_DAY" env-default:"2"`
	CommentsPerDay int    `yaml:"comments_per_day" env:"BLOG_LIMITS_COMMENTS_PER_DAY" env-default:"3"`
	Timezone       string `yaml:"timezone" env:"BLOG_LIMITS_TIMEZONE" env-default:"UTC"`
}

// ErrLocalTimezone - "Local" зависит от машины и неизвестен Postgres, поэтому не принимается.
var ErrLocalTimezone = errors.New(`timezone "Local" is not supported, use an IANA name`)

// Location возвращает часовой пояс IANA. Пустое значение означает UTC.
// Имя передается в AT TIME ZONE, поэтому допустимы только имена, понятные и Postgres.
func (l *LimitsConfig) Location() (*time.Location, error) {
	switch l.Timezone {
	case "":
		return time.UTC, nil
	case "Local":
		return nil, ErrLocalTimezone
	}
	return time.LoadLocation(l.Timezone)
}

// Limits возвращает лимиты для сервисов.
func (l *LimitsConfig) Limits() services.Limits {
	return services.Limits{BlogsPerDay: l.BlogsPerDay, CommentsPerDay: l.CommentsPerDay}
}
