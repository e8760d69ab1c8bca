package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcnielat/bankapp/internal/apperr"
	"github.com/mcnielat/bankapp/internal/middleware"
)

// respondError maps the core error taxonomy onto transport status codes.
// The response body carries the error message only; wrapped causes stay in
// the server log.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindAuthentication:
		status = http.StatusUnauthorized
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindInsufficientFunds:
		status = http.StatusUnprocessableEntity
	default:
		log.Printf("Internal error: %v", err)
	}
	middleware.RespondWithError(c, status, apperr.MessageOf(err))
}
