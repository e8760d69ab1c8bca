package repository

import (
	"context"
	"errors"

	"github.com/mcnielat/bankapp/internal/models"
)

// ErrNotFound is returned by GetByID when no account has the given id.
// Services translate it into the message appropriate for their operation.
var ErrNotFound = errors.New("account not found")

// AccountStore owns the durable account records. SaveAll must apply every
// given record atomically: all of them or none. Callers serialise access to
// the accounts they touch before invoking it.
type AccountStore interface {
	GetByID(ctx context.Context, accountID int64) (*models.Account, error)
	SaveAll(ctx context.Context, accounts ...*models.Account) error
	CreateWithNewID(ctx context.Context, account *models.Account) (*models.Account, error)
}
