package provider

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/vitalbridge/vitalbridge/internal/health"
)

// ProviderHealthChecker monitors upstream reachability via periodic pings.
type ProviderHealthChecker struct {
	provider     Provider
	healthy      atomic.Int32
	log          zerolog.Logger
	probeTimeout time.Duration
}

func NewProviderHealthChecker(p Provider, log zerolog.Logger, probeTimeout time.Duration) *ProviderHealthChecker {
	hc := &ProviderHealthChecker{provider: p, log: log, probeTimeout: probeTimeout}
	hc.healthy.Store(0) // start unhealthy until first successful probe
	return hc
}

func (c *ProviderHealthChecker) Name() string    { return "provider" }
func (c *ProviderHealthChecker) IsHealthy() bool { return c.healthy.Load() == 1 }

// Start begins periodic health checking.
func (c *ProviderHealthChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	run := func() {
		to := c.probeTimeout
		if to <= 0 {
			to = 2 * time.Second
		}
		checkCtx, cancel := context.WithTimeout(ctx, to)
		defer cancel()

		if p, ok := c.provider.(health.HealthPinger); ok {
			if err := p.HealthPing(checkCtx); err != nil {
				c.healthy.Store(0)
				c.log.Error().Stack().Str("checker", c.Name()).Err(err).Msg("provider health check failed")
				return
			}
			c.healthy.Store(1)
			return
		}
		// No specialized ping available; assume reachable.
		c.healthy.Store(1)
	}

	run()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run()
		}
	}
}
