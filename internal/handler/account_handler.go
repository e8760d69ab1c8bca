package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mcnielat/bankapp/internal/cqrs"
	"github.com/mcnielat/bankapp/internal/middleware"
	"github.com/mcnielat/bankapp/internal/models"
)

// Registrar defines the onboarding operation used by AccountHandler.
type Registrar interface {
	Register(ctx context.Context, cmd cqrs.RegisterAccountCommand) (*models.Account, error)
}

type AccountHandler struct {
	registrar Registrar
}

func NewAccountHandler(registrar Registrar) *AccountHandler {
	return &AccountHandler{registrar: registrar}
}

type RegisterAccountRequest struct {
	UserName string          `json:"userName" validate:"required"`
	Pin      string          `json:"pin"`
	Password string          `json:"password"`
	Balance  decimal.Decimal `json:"balance"`
}

func (h *AccountHandler) RegisterAccount(c *gin.Context) {
	var req RegisterAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	account, err := h.registrar.Register(c.Request.Context(), cqrs.RegisterAccountCommand{
		UserName: req.UserName,
		Pin:      req.Pin,
		Password: req.Password,
		Balance:  req.Balance,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}
