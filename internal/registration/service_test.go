package registration

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mcnielat/bankapp/internal/apperr"
	"github.com/mcnielat/bankapp/internal/cqrs"
	"github.com/mcnielat/bankapp/internal/credcodec"
	"github.com/mcnielat/bankapp/internal/models"
	"github.com/mcnielat/bankapp/internal/repository"
)

func TestRegister(t *testing.T) {
	store := repository.NewMemoryAccountStore()
	codec := credcodec.NewXORCodec()
	svc := NewService(store, codec, nil)
	ctx := context.Background()

	created, err := svc.Register(ctx, cqrs.RegisterAccountCommand{
		UserName: "alice",
		Pin:      "1234",
		Password: "s3cret",
		Balance:  decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.AccountID <= 0 {
		t.Errorf("account id = %d, want positive", created.AccountID)
	}
	if !created.Balance.Equal(decimal.NewFromInt(50)) {
		t.Errorf("balance = %s, want 50", created.Balance)
	}

	// Credentials are stored obfuscated and decode back to the originals.
	if created.StoredPin == "1234" || created.StoredPassword == "s3cret" {
		t.Error("credentials stored in plain form")
	}
	if pin, _ := codec.Decode(created.StoredPin); pin != "1234" {
		t.Errorf("decoded pin = %q, want 1234", pin)
	}
	if pw, _ := codec.Decode(created.StoredPassword); pw != "s3cret" {
		t.Errorf("decoded password = %q, want s3cret", pw)
	}

	// Ids are unique across registrations.
	second, err := svc.Register(ctx, cqrs.RegisterAccountCommand{UserName: "bob", Pin: "0000"})
	if err != nil {
		t.Fatalf("second register: %v", err)
	}
	if second.AccountID == created.AccountID {
		t.Errorf("duplicate account id %d", second.AccountID)
	}
	if second.StoredPassword != "" {
		t.Errorf("empty password got encoded to %q", second.StoredPassword)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(repository.NewMemoryAccountStore(), credcodec.NewXORCodec(), nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, cqrs.RegisterAccountCommand{UserName: "alice"})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("no credentials: kind = %v, want validation", apperr.KindOf(err))
	}
	if got := apperr.MessageOf(err); got != "PIN and password cannot be empty at the same time" {
		t.Errorf("message = %q", got)
	}

	_, err = svc.Register(ctx, cqrs.RegisterAccountCommand{UserName: "", Pin: "1234"})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("no username: kind = %v, want validation", apperr.KindOf(err))
	}

	_, err = svc.Register(ctx, cqrs.RegisterAccountCommand{
		UserName: "alice", Pin: "1234", Balance: decimal.NewFromInt(-1),
	})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("negative balance: kind = %v, want validation", apperr.KindOf(err))
	}
}

type brokenStore struct {
	*repository.MemoryAccountStore
}

func (s *brokenStore) CreateWithNewID(ctx context.Context, account *models.Account) (*models.Account, error) {
	return nil, errors.New("connection refused")
}

func TestRegisterStorageFailure(t *testing.T) {
	svc := NewService(&brokenStore{repository.NewMemoryAccountStore()}, credcodec.NewXORCodec(), nil)

	_, err := svc.Register(context.Background(), cqrs.RegisterAccountCommand{UserName: "alice", Pin: "1234"})
	if apperr.KindOf(err) != apperr.KindStorage {
		t.Errorf("kind = %v, want storage", apperr.KindOf(err))
	}
}
