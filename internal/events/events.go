package events

import "time"

// Event types
const (
	AccountRegistered = "account.registered"
	BalanceChanged    = "balance.changed"
)

// Stream carrying every ledger event.
const LedgerEventsStream = "ledger.events"

// Event is the envelope written to the stream. ID is a uuid used by
// consumers to drop redelivered messages.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// AccountRegisteredEvent announces a newly onboarded account.
type AccountRegisteredEvent struct {
	AccountID int64  `json:"accountId"`
	UserName  string `json:"userName"`
}

// BalanceChangedEvent announces a committed balance mutation. Operation is
// one of "withdrawal", "deposit", "transfer". NewBalance and Change are
// decimal strings so consumers never parse them as binary floats.
type BalanceChangedEvent struct {
	AccountID  int64  `json:"accountId"`
	Operation  string `json:"operation"`
	NewBalance string `json:"newBalance"`
	Change     string `json:"change"`
}
