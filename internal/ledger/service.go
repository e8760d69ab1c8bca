// Package ledger implements the account ledger transaction engine:
// authenticate the caller against stored credentials, validate the requested
// amount against account state, mutate balances and commit the result as one
// atomic unit.
package ledger

import (
	"context"
	"errors"
	"log"

	"github.com/mcnielat/bankapp/internal/apperr"
	"github.com/mcnielat/bankapp/internal/cqrs"
	"github.com/mcnielat/bankapp/internal/credcodec"
	"github.com/mcnielat/bankapp/internal/events"
	"github.com/mcnielat/bankapp/internal/locks"
	"github.com/mcnielat/bankapp/internal/models"
	"github.com/mcnielat/bankapp/internal/repository"
)

const (
	opWithdrawal = "withdrawal"
	opDeposit    = "deposit"
	opTransfer   = "transfer"
)

// Service performs balance inquiry, withdrawal, deposit and transfer.
// It holds no per-request state and is safe for concurrent callers; access
// to each account is serialised through the lock table across the whole
// load-validate-mutate-persist sequence.
type Service struct {
	store     repository.AccountStore
	codec     credcodec.Codec
	locks     *locks.Table
	cache     *repository.SummaryCache
	publisher *events.Publisher
}

func NewService(
	store repository.AccountStore,
	codec credcodec.Codec,
	lockTable *locks.Table,
	cache *repository.SummaryCache,
	publisher *events.Publisher,
) *Service {
	return &Service{
		store:     store,
		codec:     codec,
		locks:     lockTable,
		cache:     cache,
		publisher: publisher,
	}
}

// InquireBalance authenticates the caller and returns the account summary,
// built from the account's current fields. The read model is warmed as a
// side effect.
func (s *Service) InquireBalance(ctx context.Context, q cqrs.BalanceInquiryQuery) (*models.AccountSummary, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	account, err := s.loadAccount(ctx, q.AccountID, "Cannot find user")
	if err != nil {
		return nil, err
	}
	if err := s.authenticate(account, q.Pin, q.Password); err != nil {
		return nil, err
	}
	summary := account.Summary()
	s.cache.Set(ctx, summary)
	return summary, nil
}

// WithdrawMoney debits an authenticated account, never below zero.
func (s *Service) WithdrawMoney(ctx context.Context, cmd cqrs.WithdrawCommand) (*models.AccountSummary, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	release := s.locks.Lock(cmd.AccountID)
	defer release()

	account, err := s.loadAccount(ctx, cmd.AccountID, "Cannot find user")
	if err != nil {
		return nil, err
	}
	if err := s.authenticate(account, cmd.Pin, cmd.Password); err != nil {
		return nil, err
	}
	if account.Balance.LessThan(cmd.Amount) {
		return nil, apperr.InsufficientFunds("Withdrawal amount is greater than account balance")
	}

	account.Balance = account.Balance.Sub(cmd.Amount)
	if err := s.store.SaveAll(ctx, account); err != nil {
		return nil, apperr.Storage("Failed to save account changes", err)
	}

	summary := account.Summary()
	s.cache.Set(ctx, summary)
	s.publishBalanceChanged(ctx, account, opWithdrawal, cmd.Amount.Neg().String())
	return summary, nil
}

// DepositMoney credits an account. Deposits require no credentials; if a
// username is supplied it must match the account holder's. This asymmetry
// versus withdraw/transfer is intentional.
func (s *Service) DepositMoney(ctx context.Context, cmd cqrs.DepositCommand) (*models.AccountSummary, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	release := s.locks.Lock(cmd.AccountID)
	defer release()

	account, err := s.loadAccount(ctx, cmd.AccountID, "Cannot find user")
	if err != nil {
		return nil, err
	}
	if cmd.UserName != "" && account.UserName != cmd.UserName {
		return nil, apperr.Validation("Account Id does not match username")
	}

	account.Balance = account.Balance.Add(cmd.Amount)
	if err := s.store.SaveAll(ctx, account); err != nil {
		return nil, apperr.Storage("Failed to save account changes", err)
	}

	summary := account.Summary()
	s.cache.Set(ctx, summary)
	s.publishBalanceChanged(ctx, account, opDeposit, cmd.Amount.String())
	return summary, nil
}

// TransferMoney moves funds between two accounts as one atomic unit: either
// both balances update or neither does. Locks are taken in ascending
// account id order so overlapping transfers cannot deadlock.
func (s *Service) TransferMoney(ctx context.Context, cmd cqrs.TransferCommand) (*models.AccountSummary, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	release := s.locks.Lock(cmd.SourceAccountID, cmd.DestinationAccountID)
	defer release()

	source, err := s.loadAccount(ctx, cmd.SourceAccountID, "Cannot find source account")
	if err != nil {
		return nil, err
	}
	destination, err := s.loadAccount(ctx, cmd.DestinationAccountID, "Cannot find destination account")
	if err != nil {
		return nil, err
	}
	if err := s.authenticate(source, cmd.Pin, cmd.Password); err != nil {
		return nil, err
	}
	if source.Balance.LessThan(cmd.Amount) {
		return nil, apperr.InsufficientFunds("Transfer amount is greater than account balance")
	}

	source.Balance = source.Balance.Sub(cmd.Amount)
	destination.Balance = destination.Balance.Add(cmd.Amount)
	if err := s.store.SaveAll(ctx, source, destination); err != nil {
		return nil, apperr.Storage("Failed to save account changes", err)
	}

	sourceSummary := source.Summary()
	s.cache.Set(ctx, sourceSummary)
	s.cache.Set(ctx, destination.Summary())
	s.publishBalanceChanged(ctx, source, opTransfer, cmd.Amount.Neg().String())
	s.publishBalanceChanged(ctx, destination, opTransfer, cmd.Amount.String())
	return sourceSummary, nil
}

// authenticate applies the OR-credential rule: the caller passes when the
// supplied pin matches the decoded stored pin or the supplied password
// matches the decoded stored password. A comparison against an empty
// decoded credential never succeeds.
func (s *Service) authenticate(account *models.Account, pin, password string) error {
	decodedPin, err := s.decodeStored(account.StoredPin)
	if err != nil {
		return err
	}
	decodedPassword, err := s.decodeStored(account.StoredPassword)
	if err != nil {
		return err
	}
	if decodedPin != "" && pin == decodedPin {
		return nil
	}
	if decodedPassword != "" && password == decodedPassword {
		return nil
	}
	return apperr.Authentication("Wrong PIN or password")
}

func (s *Service) decodeStored(stored string) (string, error) {
	if stored == "" {
		return "", nil
	}
	plain, err := s.codec.Decode(stored)
	if err != nil {
		return "", apperr.Storage("Failed to decode stored credentials", err)
	}
	return plain, nil
}

func (s *Service) loadAccount(ctx context.Context, accountID int64, notFoundMessage string) (*models.Account, error) {
	account, err := s.store.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound(notFoundMessage)
		}
		return nil, apperr.Storage("Failed to load account", err)
	}
	return account, nil
}

func (s *Service) publishBalanceChanged(ctx context.Context, account *models.Account, operation, change string) {
	err := s.publisher.Publish(ctx, events.LedgerEventsStream, events.BalanceChanged, events.BalanceChangedEvent{
		AccountID:  account.AccountID,
		Operation:  operation,
		NewBalance: account.Balance.String(),
		Change:     change,
	})
	if err != nil {
		log.Printf("Failed to publish balance.changed event: %v", err)
	}
}
