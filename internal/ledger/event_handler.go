package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/mcnielat/bankapp/internal/events"
)

// HandleLedgerEvent keeps the Redis read model current across instances.
// On a balance.changed event it refreshes the cached summary for the
// affected account; entries not in the cache stay absent until the next
// inquiry warms them. Idempotent: the event carries the absolute balance,
// so redelivery or self-consumption cannot drift the view.
func (s *Service) HandleLedgerEvent(ctx context.Context, event events.Event) error {
	if event.Type != events.BalanceChanged {
		return nil
	}
	dataBytes, _ := json.Marshal(event.Data)
	var data events.BalanceChangedEvent
	if err := json.Unmarshal(dataBytes, &data); err != nil {
		return fmt.Errorf("failed to unmarshal balance.changed event: %w", err)
	}

	cached, ok := s.cache.Get(ctx, data.AccountID)
	if !ok {
		return nil
	}
	newBalance, err := decimal.NewFromString(data.NewBalance)
	if err != nil {
		return fmt.Errorf("balance.changed event carries bad balance %q: %w", data.NewBalance, err)
	}
	cached.Balance = newBalance
	s.cache.Set(ctx, cached)
	log.Printf("Read model refreshed for account %d after %s", data.AccountID, data.Operation)
	return nil
}
