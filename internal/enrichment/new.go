package enrichment

import (
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"ai-task-tracker/pkg/claude"
	"ai-task-tracker/pkg/log"
)

type implUseCase struct {
	l       log.Logger
	client  claude.IClaude
	cache   *expirable.LRU[string, Result]
	limiter *rate.Limiter
}

// New creates the enrichment UseCase on top of a completion client.
func New(l log.Logger, client claude.IClaude, cfg Config) UseCase {
	uc := &implUseCase{
		l:       l,
		client:  client,
		limiter: rate.NewLimiter(rate.Inf, 0),
	}

	if cfg.CacheSize > 0 {
		uc.cache = expirable.NewLRU[string, Result](cfg.CacheSize, nil, cfg.CacheTTL)
	}

	if cfg.RatePerMin > 0 {
		burst := cfg.RatePerMin / 10
		if burst < 1 {
			burst = 1
		}
		uc.limiter = rate.NewLimiter(rate.Limit(float64(cfg.RatePerMin)/60.0), burst)
	}

	return uc
}
