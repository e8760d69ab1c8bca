package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mcnielat/bankapp/internal/cqrs"
	"github.com/mcnielat/bankapp/internal/middleware"
	"github.com/mcnielat/bankapp/internal/models"
)

// Ledger defines the transaction operations used by TransactionHandler.
type Ledger interface {
	InquireBalance(ctx context.Context, q cqrs.BalanceInquiryQuery) (*models.AccountSummary, error)
	WithdrawMoney(ctx context.Context, cmd cqrs.WithdrawCommand) (*models.AccountSummary, error)
	DepositMoney(ctx context.Context, cmd cqrs.DepositCommand) (*models.AccountSummary, error)
	TransferMoney(ctx context.Context, cmd cqrs.TransferCommand) (*models.AccountSummary, error)
}

type TransactionHandler struct {
	ledger Ledger
}

func NewTransactionHandler(ledger Ledger) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

type WithdrawRequest struct {
	AccountID int64           `json:"accountId" validate:"required,gt=0"`
	Pin       string          `json:"pin"`
	Password  string          `json:"password"`
	Amount    decimal.Decimal `json:"amount"`
}

type DepositRequest struct {
	AccountID int64           `json:"accountId" validate:"required,gt=0"`
	UserName  string          `json:"userName"`
	Amount    decimal.Decimal `json:"amount"`
}

type TransferRequest struct {
	SourceAccountID      int64           `json:"sourceAccountId" validate:"required,gt=0"`
	DestinationAccountID int64           `json:"destinationAccountId" validate:"required,gt=0"`
	Pin                  string          `json:"pin"`
	Password             string          `json:"password"`
	Amount               decimal.Decimal `json:"amount"`
}

func (h *TransactionHandler) BalanceInquiry(c *gin.Context) {
	accountID, err := strconv.ParseInt(c.Param("accountId"), 10, 64)
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid account ID")
		return
	}

	summary, err := h.ledger.InquireBalance(c.Request.Context(), cqrs.BalanceInquiryQuery{
		AccountID: accountID,
		Pin:       c.Query("pin"),
		Password:  c.Query("password"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *TransactionHandler) Withdraw(c *gin.Context) {
	var req WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	summary, err := h.ledger.WithdrawMoney(c.Request.Context(), cqrs.WithdrawCommand{
		AccountID: req.AccountID,
		Pin:       req.Pin,
		Password:  req.Password,
		Amount:    req.Amount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *TransactionHandler) Deposit(c *gin.Context) {
	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	summary, err := h.ledger.DepositMoney(c.Request.Context(), cqrs.DepositCommand{
		AccountID: req.AccountID,
		UserName:  req.UserName,
		Amount:    req.Amount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *TransactionHandler) Transfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	summary, err := h.ledger.TransferMoney(c.Request.Context(), cqrs.TransferCommand{
		SourceAccountID:      req.SourceAccountID,
		DestinationAccountID: req.DestinationAccountID,
		Pin:                  req.Pin,
		Password:             req.Password,
		Amount:               req.Amount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
