package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"payment-config-service/internal/middleware"
	"payment-config-service/internal/models"
	"payment-config-service/internal/repository"
	"payment-config-service/internal/services"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// pageParams reads page/limit from the query string, clamping nonsense to
// sane defaults.
func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if err != nil || page < 1 {
		page = defaultPage
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// idParam reads the numeric path id; a 0 return means the request was
// already answered with a 400.
func idParam(c *gin.Context) uint {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "id must be a positive integer")
		return 0
	}
	return uint(id)
}

func forceParam(c *gin.Context) bool {
	force, _ := strconv.ParseBool(c.DefaultQuery("force", "false"))
	return force
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Success:   false,
		Error:     models.Error{Code: code, Message: message},
		RequestID: c.GetString(middleware.RequestIDKey),
	})
}

func respondBindError(c *gin.Context, err error) {
	respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
}

// respondServiceError maps the service/repository sentinels onto HTTP
// statuses. Anything unrecognized is a 500 with a generic body; the real
// error goes to the log, not the client.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalid):
		respondError(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED", err.Error())
	case isNotFound(err):
		respondError(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case isConflict(err):
		respondError(c, http.StatusConflict, "CONFLICT", err.Error())
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
	}
}

func isNotFound(err error) bool {
	for _, sentinel := range []error{
		repository.ErrNotFound,
		repository.ErrMerchantNotFound,
		repository.ErrPspNotFound,
		repository.ErrPspPaymentMethodNotFound,
		repository.ErrPaymentMethodNotFound,
		repository.ErrProductNotFound,
		repository.ErrBankNotFound,
		repository.ErrPaymentNetworkNotFound,
		repository.ErrUserNotFound,
		repository.ErrInvoiceTypeNotFound,
		repository.ErrMessageTypeNotFound,
		repository.ErrTermsNotFound,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func isConflict(err error) bool {
	for _, sentinel := range []error{
		repository.ErrDuplicate,
		repository.ErrDuplicateReferral,
		repository.ErrDuplicateCode,
		repository.ErrDuplicateConfiguration,
		repository.ErrDuplicateMethodCode,
		repository.ErrDuplicateSwiftCode,
		repository.ErrDuplicateNetworkName,
		repository.ErrDuplicateEmail,
		repository.ErrDuplicateVersion,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
