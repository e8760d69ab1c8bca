package cqrs

import "github.com/mcnielat/bankapp/internal/apperr"

// BalanceInquiryQuery fetches the summary of a single account after
// authenticating the caller.
type BalanceInquiryQuery struct {
	AccountID int64
	Pin       string
	Password  string
}

func (q BalanceInquiryQuery) Validate() error {
	if q.AccountID <= 0 {
		return apperr.Validation("Account ID cannot be empty")
	}
	if q.Pin == "" && q.Password == "" {
		return apperr.Validation("PIN and password cannot be empty at the same time")
	}
	return nil
}
