// Package registration onboards new accounts: validate the candidate,
// obfuscate its credentials and persist it under a freshly assigned id.
package registration

import (
	"context"
	"log"

	"github.com/mcnielat/bankapp/internal/apperr"
	"github.com/mcnielat/bankapp/internal/cqrs"
	"github.com/mcnielat/bankapp/internal/credcodec"
	"github.com/mcnielat/bankapp/internal/events"
	"github.com/mcnielat/bankapp/internal/models"
	"github.com/mcnielat/bankapp/internal/repository"
)

type Service struct {
	store     repository.AccountStore
	codec     credcodec.Codec
	publisher *events.Publisher
}

func NewService(store repository.AccountStore, codec credcodec.Codec, publisher *events.Publisher) *Service {
	return &Service{store: store, codec: codec, publisher: publisher}
}

// Register creates the account and returns the stored record: id assigned,
// credentials in obfuscated form. Persistence failures surface as storage
// errors and are not retried here.
func (s *Service) Register(ctx context.Context, cmd cqrs.RegisterAccountCommand) (*models.Account, error) {
	candidate := &models.Account{
		UserName:       cmd.UserName,
		StoredPin:      cmd.Pin,
		StoredPassword: cmd.Password,
		Balance:        cmd.Balance,
	}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	if candidate.StoredPin != "" {
		encoded, err := s.codec.Encode(candidate.StoredPin)
		if err != nil {
			return nil, err
		}
		candidate.StoredPin = encoded
	}
	if candidate.StoredPassword != "" {
		encoded, err := s.codec.Encode(candidate.StoredPassword)
		if err != nil {
			return nil, err
		}
		candidate.StoredPassword = encoded
	}

	created, err := s.store.CreateWithNewID(ctx, candidate)
	if err != nil {
		return nil, apperr.Storage("Failed to create account", err)
	}

	if err := s.publisher.Publish(ctx, events.LedgerEventsStream, events.AccountRegistered, events.AccountRegisteredEvent{
		AccountID: created.AccountID,
		UserName:  created.UserName,
	}); err != nil {
		log.Printf("Failed to publish account.registered event: %v", err)
	}
	return created, nil
}
