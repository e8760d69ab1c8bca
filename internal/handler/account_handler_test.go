package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mcnielat/bankapp/internal/apperr"
	"github.com/mcnielat/bankapp/internal/cqrs"
	"github.com/mcnielat/bankapp/internal/models"
)

type mockRegistrar struct {
	registerFn func(cqrs.RegisterAccountCommand) (*models.Account, error)
}

func (m *mockRegistrar) Register(_ context.Context, cmd cqrs.RegisterAccountCommand) (*models.Account, error) {
	if m.registerFn != nil {
		return m.registerFn(cmd)
	}
	return nil, fmt.Errorf("not configured")
}

func newAccountTestRouter(registrar Registrar) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAccountHandler(registrar)
	r.POST("/v1/accounts", h.RegisterAccount)
	return r
}

func TestRegisterAccountEndpoint(t *testing.T) {
	registrar := &mockRegistrar{
		registerFn: func(cmd cqrs.RegisterAccountCommand) (*models.Account, error) {
			if cmd.UserName != "alice" || cmd.Pin != "1234" {
				t.Errorf("command = %+v", cmd)
			}
			return &models.Account{
				AccountID:      1,
				UserName:       "alice",
				StoredPin:      "b2JmdXNjYXRlZA==",
				StoredPassword: "",
				Balance:        decimal.NewFromInt(50),
			}, nil
		},
	}
	router := newAccountTestRouter(registrar)

	w := doRequest(router, http.MethodPost, "/v1/accounts", map[string]interface{}{
		"userName": "alice", "pin": "1234", "balance": 50,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	// Stored credentials must never appear in the response.
	body := w.Body.String()
	if strings.Contains(body, "b2JmdXNjYXRlZA==") || strings.Contains(body, "storedPin") {
		t.Errorf("response leaks credentials: %s", body)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if got["accountId"] != float64(1) || got["userName"] != "alice" {
		t.Errorf("response = %v", got)
	}
}

func TestRegisterAccountValidation(t *testing.T) {
	router := newAccountTestRouter(&mockRegistrar{
		registerFn: func(cqrs.RegisterAccountCommand) (*models.Account, error) {
			return nil, apperr.Validation("PIN and password cannot be empty at the same time")
		},
	})

	// Missing userName is rejected by the validator before the service runs.
	w := doRequest(router, http.MethodPost, "/v1/accounts", map[string]interface{}{"pin": "1234"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing userName: status = %d, want 400", w.Code)
	}

	// Credential invariant violations surface as 400 with the core message.
	w = doRequest(router, http.MethodPost, "/v1/accounts", map[string]interface{}{"userName": "alice"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("no credentials: status = %d, want 400", w.Code)
	}
	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["message"] != "PIN and password cannot be empty at the same time" {
		t.Errorf("message = %q", body["message"])
	}

	w = doRequest(router, http.MethodPost, "/v1/accounts", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty body: status = %d, want 400", w.Code)
	}
}
