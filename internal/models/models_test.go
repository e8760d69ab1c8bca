package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mcnielat/bankapp/internal/apperr"
)

func TestAccountValidate(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		wantErr bool
	}{
		{"pin only", Account{UserName: "alice", StoredPin: "enc"}, false},
		{"password only", Account{UserName: "alice", StoredPassword: "enc"}, false},
		{"both credentials", Account{UserName: "alice", StoredPin: "a", StoredPassword: "b"}, false},
		{"no credentials", Account{UserName: "alice"}, true},
		{"no username", Account{StoredPin: "enc"}, true},
		{"negative balance", Account{UserName: "alice", StoredPin: "enc", Balance: decimal.NewFromInt(-1)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr && apperr.KindOf(err) != apperr.KindValidation {
				t.Errorf("expected validation error, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAccountJSONOmitsCredentials(t *testing.T) {
	account := Account{
		AccountID:      1,
		UserName:       "alice",
		StoredPin:      "obfuscated-pin",
		StoredPassword: "obfuscated-pw",
		Balance:        decimal.NewFromInt(10),
	}
	data, err := json.Marshal(account)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "obfuscated") {
		t.Errorf("serialised account leaks credentials: %s", data)
	}
}

func TestSummary(t *testing.T) {
	account := Account{AccountID: 3, UserName: "bob", StoredPin: "enc", Balance: decimal.NewFromInt(75)}
	summary := account.Summary()
	if summary.AccountID != 3 || summary.UserName != "bob" || !summary.Balance.Equal(decimal.NewFromInt(75)) {
		t.Errorf("summary = %+v", summary)
	}
}
