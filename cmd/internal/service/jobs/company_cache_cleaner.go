package jobs

import (
	"context"
	"time"

	"conesites/cmd/internal/utils"

	"github.com/labstack/gommon/log"
)

const (
	DefaultCacheTTL    = 10 * time.Hour
	CacheSweepInterval = time.Hour
)

type CompanyRepository interface {
	DeleteExpired(before int64) (int64, error)
}

// CompanyCacheCleaner sweeps CNPJ lookups, negative ones included, once they
// are older than TTL. The next lookup of a swept CNPJ hits minhareceita again.
type CompanyCacheCleaner struct {
	repo CompanyRepository
	TTL  time.Duration
}

func NewCompanyCacheCleaner(repo CompanyRepository) *CompanyCacheCleaner {
	return &CompanyCacheCleaner{repo: repo, TTL: DefaultCacheTTL}
}

func (c *CompanyCacheCleaner) Start(ctx context.Context) {
	ticker := time.NewTicker(CacheSweepInterval)
	defer ticker.Stop()

	log.Infof("Company cache sweeper started (ttl %s)", c.TTL)

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping company cache sweeper...")
			return
		case <-ticker.C:
			c.sweep(utils.NowUTC())
		}
	}
}

func (c *CompanyCacheCleaner) sweep(now int64) {
	cutoff := now - c.TTL.Milliseconds()

	n, err := c.repo.DeleteExpired(cutoff)
	if err != nil {
		log.Errorf("Cache sweeper: failed to delete companies cached before %s: %v", utils.FormatEpoch(cutoff), err)
		return
	}

	if n > 0 {
		log.Infof("Cache sweeper: removed %d companies cached before %s", n, utils.FormatEpoch(cutoff))
	}
}
