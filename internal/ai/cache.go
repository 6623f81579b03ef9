package ai

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/ranjithg298/matrimony-sub001/internal/analysis"
	"github.com/ranjithg298/matrimony-sub001/internal/profile"
)

// CachedAnalyst memoizes analyses for a single viewer, keyed by target profile id.
// Concurrent requests for the same target share one upstream call. Error text is
// returned to every waiter but never cached, so a later request retries.
type CachedAnalyst struct {
	next   Analyst
	logger *zap.Logger

	group singleflight.Group

	mu      sync.RWMutex
	reports map[string]string
}

func NewCachedAnalyst(next Analyst, logger *zap.Logger) *CachedAnalyst {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedAnalyst{
		next:    next,
		logger:  logger,
		reports: make(map[string]string),
	}
}

func (c *CachedAnalyst) Analyze(ctx context.Context, viewer, target *profile.Profile) string {
	if target == nil {
		return analysis.ErrorPrefix + " target profile is required"
	}

	key := strings.TrimSpace(target.ID)
	if key == "" {
		return c.next.Analyze(ctx, viewer, target)
	}

	if text, ok := c.cached(key); ok {
		c.logger.Debug("analysis cache hit", zap.String("target_id", key))
		return text
	}

	v, _, shared := c.group.Do(key, func() (any, error) {
		if text, ok := c.cached(key); ok {
			return text, nil
		}

		text := c.next.Analyze(ctx, viewer, target)
		if strings.HasPrefix(strings.TrimSpace(text), analysis.ErrorPrefix) {
			c.logger.Warn("analysis failed; not caching", zap.String("target_id", key), zap.String("error", text))
			return text, nil
		}

		c.mu.Lock()
		c.reports[key] = text
		c.mu.Unlock()

		return text, nil
	})

	if shared {
		c.logger.Debug("analysis request coalesced", zap.String("target_id", key))
	}

	return v.(string)
}

// Forget drops the cached analysis for a target.
func (c *CachedAnalyst) Forget(targetID string) {
	c.mu.Lock()
	delete(c.reports, strings.TrimSpace(targetID))
	c.mu.Unlock()
}

func (c *CachedAnalyst) cached(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	text, ok := c.reports[key]
	return text, ok
}
