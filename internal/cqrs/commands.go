package cqrs

import (
	"github.com/shopspring/decimal"

	"github.com/mcnielat/bankapp/internal/apperr"
)

// RegisterAccountCommand creates a new account. Pin and Password arrive in
// plain form and are obfuscated by the registration service before persisting.
type RegisterAccountCommand struct {
	UserName string
	Pin      string
	Password string
	Balance  decimal.Decimal
}

// WithdrawCommand debits an account after authenticating the caller.
type WithdrawCommand struct {
	AccountID int64
	Pin       string
	Password  string
	Amount    decimal.Decimal
}

func (c WithdrawCommand) Validate() error {
	if c.AccountID <= 0 {
		return apperr.Validation("Account ID cannot be empty")
	}
	if c.Pin == "" && c.Password == "" {
		return apperr.Validation("PIN and password cannot be empty at the same time")
	}
	return validateAmount(c.Amount)
}

// DepositCommand credits an account. Deliberately carries no credentials:
// anyone who knows the account id may deposit, optionally verifying the
// holder's username first.
type DepositCommand struct {
	AccountID int64
	UserName  string
	Amount    decimal.Decimal
}

func (c DepositCommand) Validate() error {
	if c.AccountID <= 0 {
		return apperr.Validation("Account ID cannot be empty")
	}
	return validateAmount(c.Amount)
}

// TransferCommand moves funds between two accounts, authenticated against
// the source account only.
type TransferCommand struct {
	SourceAccountID      int64
	DestinationAccountID int64
	Pin                  string
	Password             string
	Amount               decimal.Decimal
}

func (c TransferCommand) Validate() error {
	if c.SourceAccountID <= 0 {
		return apperr.Validation("Source Account ID cannot be empty")
	}
	if c.DestinationAccountID <= 0 {
		return apperr.Validation("Destination Account ID cannot be empty")
	}
	if c.SourceAccountID == c.DestinationAccountID {
		return apperr.Validation("Source Account ID cannot be the same as Destination Account ID")
	}
	if c.Pin == "" && c.Password == "" {
		return apperr.Validation("PIN and password cannot be empty at the same time")
	}
	return validateAmount(c.Amount)
}

func validateAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return apperr.Validation("Amount must be greater than zero")
	}
	return nil
}
