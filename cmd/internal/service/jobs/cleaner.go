package jobs

import (
	"context"
	"time"

	"conesites/cmd/internal/utils"

	"github.com/labstack/gommon/log"
)

const ConnectionCleanInterval = 5 * time.Minute

type StaleConnectionExpirer interface {
	ExpireStale(ctx context.Context, now int64) (int, error)
}

type ConnectionCleaner struct {
	expirer StaleConnectionExpirer
}

func NewConnectionCleaner(expirer StaleConnectionExpirer) *ConnectionCleaner {
	return &ConnectionCleaner{expirer: expirer}
}

func (c *ConnectionCleaner) Start(ctx context.Context) {
	ticker := time.NewTicker(ConnectionCleanInterval)
	defer ticker.Stop()

	log.Info("Connection cleaner cron started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping connection cleaner...")
			return
		case <-ticker.C:
			c.cleanup(ctx)
		}
	}
}

func (c *ConnectionCleaner) cleanup(ctx context.Context) {
	n, err := c.expirer.ExpireStale(ctx, utils.NowUTC())
	if err != nil {
		log.Errorf("Cleaner: failed to expire stale connections: %v", err)
		return
	}

	if n > 0 {
		log.Infof("Cleaner: dropped %d stale connections", n)
	}
}
