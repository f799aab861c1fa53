package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"blogcore/internal/blog/domain/services"
)

func TestCalendarToday(t *testing.T) {
	fixed := time.Date(2025, 10, 10, 23, 30, 0, 0, time.UTC)

	t.Run("utc by default", func(t *testing.T) {
		cal := services.NewCalendar(nil, func() time.Time { return fixed })

		day := cal.Today()

		assert.Equal(t, time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC), day.From)
		assert.Equal(t, time.Date(2025, 10, 11, 0, 0, 0, 0, time.UTC), day.To)
	})

	t.Run("local zone shifts the day", func(t *testing.T) {
		loc := time.FixedZone("JST", 9*60*60)
		cal := services.NewCalendar(loc, func() time.Time { return fixed })

		day := cal.Today()

		assert.Equal(t, time.Date(2025, 10, 11, 0, 0, 0, 0, loc), day.From)
		assert.True(t, day.From.Before(day.To))
		assert.Equal(t, 24*time.Hour, day.To.Sub(day.From))
	})
}

func TestCalendarDate(t *testing.T) {
	cal := services.NewCalendar(time.UTC, nil)

	day := cal.Date(2025, time.October, 10)

	assert.Equal(t, time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC), day.From)
	assert.Equal(t, time.Date(2025, 10, 11, 0, 0, 0, 0, time.UTC), day.To)
}

func TestQuotaAllows(t *testing.T) {
	q := services.Quota{Limit: services.DefaultBlogsPerDay}

	assert.True(t, q.Allows(0))
	assert.True(t, q.Allows(1))
	assert.False(t, q.Allows(2))
	assert.False(t, q.Allows(3))
}

func TestDuplicateFieldError(t *testing.T) {
	err := &services.DuplicateFieldError{Field: services.FieldEmail}

	assert.ErrorIs(t, err, services.ErrDuplicateField)
	assert.Contains(t, err.Error(), "email")
}
