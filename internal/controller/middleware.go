package controller

import (
	"net/http"
	"sync"
	"time"

	"gigflow/pkg/metrics"

	"github.com/labstack/echo"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// requestLogger logs and measures every request once its status is known.
func requestLogger(logger *zap.Logger, m *metrics.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			elapsed := time.Since(start)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.ObserveHTTP(req.Method, route, status, elapsed)

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", status),
				zap.Duration("latency", elapsed),
			}
			switch {
			case status >= http.StatusInternalServerError:
				logger.Error("request failed", append(fields, zap.Error(err))...)
			default:
				logger.Info("request", fields...)
			}

			return nil
		}
	}
}

const (
	limiterIdleTTL = 10 * time.Minute
	limiterMaxKeys = 10000
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// userRateLimiter keeps one token bucket per username for mutating requests.
// Buckets idle for longer than idleTTL are swept. Once maxKeys buckets are live,
// unknown keys share a single overflow bucket.
type userRateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	overflow  *rate.Limiter
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	maxKeys   int
	lastSweep time.Time
	now       func() time.Time
}

func newUserRateLimiter(requestsPerSecond float64, burst int) *userRateLimiter {
	return &userRateLimiter{
		visitors: make(map[string]*visitor),
		overflow: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
		limit:    rate.Limit(requestsPerSecond),
		burst:    burst,
		idleTTL:  limiterIdleTTL,
		maxKeys:  limiterMaxKeys,
		now:      time.Now,
	}
}

func (l *userRateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idleTTL {
		l.sweep(now)
	}

	v, ok := l.visitors[key]
	if !ok {
		if len(l.visitors) >= l.maxKeys {
			return l.overflow.AllowN(now, 1)
		}
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// sweep drops idle buckets. Callers hold mu.
func (l *userRateLimiter) sweep(now time.Time) {
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) >= l.idleTTL {
			delete(l.visitors, key)
		}
	}
	l.lastSweep = now
}

func (l *userRateLimiter) middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			method := c.Request().Method
			if method != http.MethodPost && method != http.MethodPut {
				return next(c)
			}

			key := c.QueryParam("username")
			if key == defaultUsername {
				key = c.RealIP()
			}

			if !l.allow(key) {
				return c.JSON(http.StatusTooManyRequests, errorResponse{"Too many requests, slow down"})
			}

			return next(c)
		}
	}
}
