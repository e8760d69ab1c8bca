package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mcnielat/bankapp/internal/models"
	"github.com/mcnielat/bankapp/internal/redisx"
)

const summaryKeyPrefix = "account:summary:"

// SummaryCache is the Redis read model for account summaries. The ledger
// writes through after every committed mutation; the balance-changed
// subscriber refreshes entries mutated by other instances. All methods
// are nil-receiver safe so the engine runs without Redis configured.
type SummaryCache struct {
	cache *redisx.ViewCache[models.AccountSummary]
}

func NewSummaryCache(client *redisx.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{cache: redisx.NewViewCache[models.AccountSummary](client, ttl)}
}

func summaryKey(accountID int64) string {
	return fmt.Sprintf("%s%d", summaryKeyPrefix, accountID)
}

func (c *SummaryCache) Get(ctx context.Context, accountID int64) (*models.AccountSummary, bool) {
	if c == nil {
		return nil, false
	}
	return c.cache.Get(ctx, summaryKey(accountID))
}

func (c *SummaryCache) Set(ctx context.Context, summary *models.AccountSummary) {
	if c == nil {
		return
	}
	c.cache.Set(ctx, summaryKey(summary.AccountID), summary)
}
