// Package cache provides an optional Redis-backed cache for tally
// dashboards. Category definitions and the voting flag are never cached;
// only aggregated results, which tolerate a few seconds of staleness,
// go through here.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"award-voting/internal/domain/tally"
)

const tallyTTL = 30 * time.Second

// Connect creates a Redis client and verifies the connection with a ping.
func Connect(addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

type TallyCache struct {
	client *redis.Client
	logger *slog.Logger
}

func NewTallyCache(client *redis.Client, logger *slog.Logger) *TallyCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &TallyCache{client: client, logger: logger}
}

func (c *TallyCache) Get(ctx context.Context, w tally.Window) ([]tally.Result, bool) {
	raw, err := c.client.Get(ctx, key(w)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("tally cache read failed", "err", err)
		}
		return nil, false
	}

	var results []tally.Result
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, false
	}
	return results, true
}

func (c *TallyCache) Set(ctx context.Context, w tally.Window, results []tally.Result) {
	raw, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key(w), raw, tallyTTL).Err(); err != nil {
		c.logger.Warn("tally cache write failed", "err", err)
	}
}

// Invalidate drops every cached window. Called after each accepted ballot
// so admins never read counts older than the last submission plus the TTL.
func (c *TallyCache) Invalidate(ctx context.Context) {
	windows := []tally.Window{tally.WindowAll, tally.WindowToday, tally.Window7Days, tally.Window30Days}
	keys := make([]string, len(windows))
	for i, w := range windows {
		keys[i] = key(w)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("tally cache invalidation failed", "err", err)
	}
}

func key(w tally.Window) string {
	return "tally:" + string(w)
}
