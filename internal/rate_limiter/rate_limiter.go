package ratelimiter

import (
	"sync"
	"time"

	"github.com/SeakMengs/PdfPress/internal/config"
	"go.uber.org/zap"
)

func NewRateLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	// For unit test
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return NewFixedWindowLimiter(cfg, logger)
}

type window struct {
	start time.Time
	count int
}

// FixedWindowRateLimiter allows cfg.RequestsPerTimeFrame requests per key in
// every cfg.TimeFrame long window.
type FixedWindowRateLimiter struct {
	sync.Mutex
	cfg     config.RateLimiterConfig
	logger  *zap.SugaredLogger
	windows map[string]*window
	now     func() time.Time
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		cfg:     cfg,
		logger:  logger,
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

func (rl *FixedWindowRateLimiter) Enabled() bool {
	return rl.cfg.Enabled
}

// Allow reports whether key may make another request, and if not, how long
// until its window resets.
func (rl *FixedWindowRateLimiter) Allow(key string) (bool, time.Duration) {
	if !rl.cfg.Enabled {
		return true, 0
	}

	rl.Lock()
	defer rl.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	if !ok || now.Sub(w.start) >= rl.cfg.TimeFrame {
		rl.evictExpired(now)
		rl.windows[key] = &window{start: now, count: 1}
		return true, 0
	}

	if w.count >= rl.cfg.RequestsPerTimeFrame {
		retryAfter := w.start.Add(rl.cfg.TimeFrame).Sub(now)
		rl.logger.Debugf("Rate limit exceeded for %s, retry after %s", key, retryAfter)
		return false, retryAfter
	}

	w.count++
	return true, 0
}

// must be called with the lock held
func (rl *FixedWindowRateLimiter) evictExpired(now time.Time) {
	for k, w := range rl.windows {
		if now.Sub(w.start) >= rl.cfg.TimeFrame {
			delete(rl.windows, k)
		}
	}
}
