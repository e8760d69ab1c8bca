package models

import (
	"github.com/shopspring/decimal"

	"github.com/mcnielat/bankapp/internal/apperr"
)

// Account is the write model for one holder's funds and credentials.
// StoredPin and StoredPassword hold the obfuscated form produced by the
// credential codec; they are never serialised to API responses.
type Account struct {
	AccountID      int64           `json:"accountId"`
	UserName       string          `json:"userName"`
	StoredPin      string          `json:"-"`
	StoredPassword string          `json:"-"`
	Balance        decimal.Decimal `json:"balance"`
}

// Validate enforces the creation invariants: a display name, at least one
// authenticator and a non-negative opening balance.
func (a *Account) Validate() error {
	if a.UserName == "" {
		return apperr.Validation("Username cannot be empty")
	}
	if a.StoredPin == "" && a.StoredPassword == "" {
		return apperr.Validation("PIN and password cannot be empty at the same time")
	}
	if a.Balance.IsNegative() {
		return apperr.Validation("Balance cannot be negative")
	}
	return nil
}

// AccountSummary is the balance-and-identity view returned to callers.
// It never includes credentials.
type AccountSummary struct {
	AccountID int64           `json:"accountId"`
	UserName  string          `json:"userName"`
	Balance   decimal.Decimal `json:"balance"`
}

// Summary converts the write model to the view returned to callers.
func (a *Account) Summary() *AccountSummary {
	return &AccountSummary{
		AccountID: a.AccountID,
		UserName:  a.UserName,
		Balance:   a.Balance,
	}
}
