package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"blogcore/pkg/logger"
)

// Параметры хранения ограничителей клиентов.
const (
	maxTrackedClients = 10000
	clientIdleTTL     = 10 * time.Minute
)

// ErrorTooManyRequests - текст ответа при превышении частоты запросов.
const ErrorTooManyRequests = "too many requests"

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов с одного IP-адреса.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	rate    rate.Limit
	burst   int
	now     func() time.Time
}

// NewRateLimiter создает ограничитель на requestsPerSecond запросов в секунду с запасом burst.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		clients: make(map[string]*client),
		rate:    rate.Limit(requestsPerSecond),
		burst:   burst,
		now:     time.Now,
	}
}

// Allow сообщает, можно ли обслужить еще один запрос клиента key.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	c, ok := rl.clients[key]
	if !ok {
		if len(rl.clients) >= maxTrackedClients {
			rl.evictIdle(now)
		}
		c = &client{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

// evictIdle удаляет давно неактивных клиентов, а если таких нет - всех.
func (rl *RateLimiter) evictIdle(now time.Time) {
	for key, c := range rl.clients {
		if now.Sub(c.lastSeen) > clientIdleTTL {
			delete(rl.clients, key)
		}
	}
	if len(rl.clients) >= maxTrackedClients {
		clear(rl.clients)
	}
}

// Handler возвращает промежуточное ПО, отвечающее 429 при превышении частоты.
func (rl *RateLimiter) Handler() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		ip := ctx.IP()
		if !rl.Allow(ip) {
			requestCtx := ctx.Context()
			logger.Log(requestCtx).Warn(requestCtx, "rate limit exceeded",
				zap.String("ip", ip),
				zap.String("path", ctx.Path()))
			return fiber.NewError(fiber.StatusTooManyRequests, ErrorTooManyRequests)
		}
		return ctx.Next()
	}
}
