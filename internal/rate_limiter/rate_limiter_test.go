package ratelimiter

import (
	"testing"
	"time"

	"github.com/SeakMengs/PdfPress/internal/config"
)

func TestFixedWindowRateLimiter(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 2,
		TimeFrame:            time.Minute,
		Enabled:              true,
	}, nil)
	rl.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		if ok, _ := rl.Allow("1.1.1.1"); !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	ok, retryAfter := rl.Allow("1.1.1.1")
	if ok {
		t.Fatal("third request should be limited")
	}
	if retryAfter != time.Minute {
		t.Errorf("expected retry after 1m, got %s", retryAfter)
	}

	if ok, _ := rl.Allow("2.2.2.2"); !ok {
		t.Error("other clients should not be limited")
	}

	now = now.Add(time.Minute)
	if ok, _ := rl.Allow("1.1.1.1"); !ok {
		t.Error("request in a new window should be allowed")
	}
}

func TestFixedWindowRateLimiterDisabled(t *testing.T) {
	rl := NewRateLimiter(config.RateLimiterConfig{RequestsPerTimeFrame: 0, TimeFrame: time.Minute}, nil)

	for i := 0; i < 10; i++ {
		if ok, _ := rl.Allow("1.1.1.1"); !ok {
			t.Fatal("disabled limiter should allow every request")
		}
	}
}
