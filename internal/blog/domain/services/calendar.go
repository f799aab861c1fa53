package services

import (
	"time"
)

// Дневные лимиты по умолчанию.
const (
	DefaultBlogsPerDay    = 2
	DefaultCommentsPerDay = 3
)

// Limits - дневные лимиты пользователя.
type Limits struct {
	BlogsPerDay    int
	CommentsPerDay int
}

// DefaultLimits возвращает 2 записи и 3 комментария в день.
func DefaultLimits() Limits {
	return Limits{BlogsPerDay: DefaultBlogsPerDay, CommentsPerDay: DefaultCommentsPerDay}
}

// DayWindow - полуинтервал [From, To) одного календарного дня.
type DayWindow struct {
	From time.Time
	To   time.Time
}

// Quota - лимит созданий за день в заданном окне.
type Quota struct {
	Limit  int
	Window DayWindow
}

// Allows сообщает, что при count уже созданных можно создать еще одну запись.
func (q Quota) Allows(count int) bool {
	return count < q.Limit
}

// Calendar определяет границы календарного дня в часовом поясе сервиса.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

// NewCalendar создает календарь. nil loc означает UTC, nil now - time.Now.
func NewCalendar(loc *time.Location, now func() time.Time) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Calendar{loc: loc, now: now}
}

// Location возвращает часовой пояс календаря.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Now возвращает текущий момент в часовом поясе календаря.
func (c *Calendar) Now() time.Time {
	return c.now().In(c.loc)
}

// Today возвращает окно текущего дня.
func (c *Calendar) Today() DayWindow {
	return c.DayOf(c.Now())
}

// DayOf возвращает окно дня, содержащего t.
func (c *Calendar) DayOf(t time.Time) DayWindow {
	local := t.In(c.loc)
	from := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.loc)
	return DayWindow{From: from, To: from.AddDate(0, 0, 1)}
}

// Date возвращает окно для даты year-month-day.
func (c *Calendar) Date(year int, month time.Month, day int) DayWindow {
	return c.DayOf(time.Date(year, month, day, 12, 0, 0, 0, c.loc))
}
