package ratelimit

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ukpabik/mid-diff/internal/config"
	"github.com/ukpabik/mid-diff/internal/logger"
)

// Gate is the process-wide admission gate for outbound Riot API calls. It
// enforces two simultaneous token-bucket budgets (a short burst window and
// a longer sustained window); Acquire blocks the caller until a token is
// available in both, so callers are delayed, never rejected.
//
//go:generate mockgen -source=gate.go -destination=../mocks/ratelimit_gate.go -package=mocks -mock_names=Gate=MockGate
type Gate interface {
	// Acquire blocks until one token has been taken from each budget, or
	// the context is canceled
	Acquire(ctx context.Context) error
}

// gate is the concrete dual-window implementation
type gate struct {
	burst     *rate.Limiter
	sustained *rate.Limiter
}

// NewGate creates a new admission gate from the configured budgets
func NewGate(cfg config.RateLimiterConfig) (Gate, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	g := &gate{
		burst:     newWindowLimiter(cfg.Burst),
		sustained: newWindowLimiter(cfg.Sustained),
	}

	logger.Info("Rate limit gate initialized",
		zap.Int("burst_requests", cfg.Burst.Requests),
		zap.Duration("burst_window", cfg.Burst.Window),
		zap.Int("sustained_requests", cfg.Sustained.Requests),
		zap.Duration("sustained_window", cfg.Sustained.Window),
	)

	return g, nil
}

// newWindowLimiter builds a token bucket that admits at most cfg.Requests
// calls per cfg.Window, with a bucket capacity of a full window's worth so
// an idle process can spend its whole budget in one burst
func newWindowLimiter(cfg config.RateWindowConfig) *rate.Limiter {
	interval := cfg.Window / time.Duration(cfg.Requests)
	return rate.NewLimiter(rate.Every(interval), cfg.Requests)
}

// Acquire blocks until both budgets have admitted the call. The sustained
// window is taken first: it is the scarcer budget, and holding a burst
// token while stalled on the sustained one would starve other callers of
// burst capacity for no benefit.
func (g *gate) Acquire(ctx context.Context) error {
	if err := g.sustained.Wait(ctx); err != nil {
		return err
	}
	return g.burst.Wait(ctx)
}

// validateConfig validates the configured budgets
func validateConfig(cfg *config.RateLimiterConfig) error {
	for name, w := range map[string]config.RateWindowConfig{
		"burst":     cfg.Burst,
		"sustained": cfg.Sustained,
	} {
		if w.Requests <= 0 {
			return fmt.Errorf("%s window: requests must be positive", name)
		}
		if w.Window <= 0 {
			return fmt.Errorf("%s window: duration must be positive", name)
		}
	}
	return nil
}
