package enrichment

import (
	"time"

	"ai-task-tracker/internal/model"
)

// Result is the outcome of a successful analysis. Empty fields were not found.
type Result struct {
	Priority      model.Priority
	EstimatedTime string
}

// IsEmpty reports whether nothing could be extracted.
func (r Result) IsEmpty() bool {
	return r.Priority == "" && r.EstimatedTime == ""
}

// Config tunes the analyzer. Zero values disable the cache and the throttle.
type Config struct {
	CacheSize  int
	CacheTTL   time.Duration
	RatePerMin int
}
