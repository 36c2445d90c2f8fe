package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"payment-config-service/internal/models"
	"payment-config-service/internal/services"
)

// PaymentMethodHandler exposes payment method CRUD over HTTP
type PaymentMethodHandler struct {
	service services.PaymentMethodService
}

// NewPaymentMethodHandler creates a new payment method handler
func NewPaymentMethodHandler(service services.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{service: service}
}

// ListPaymentMethods returns a paginated payment method listing
// @Summary List payment methods
// @Tags payment-methods
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param description query string false "Filter by description substring"
// @Param code query string false "Filter by exact code"
// @Param is_one_time_payment query bool false "Filter by one-time flag"
// @Success 200 {object} models.PaymentMethodListResponse
// @Router /api/v1/payment-methods [get]
func (h *PaymentMethodHandler) ListPaymentMethods(c *gin.Context) {
	var filters models.PaymentMethodFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		respondBindError(c, err)
		return
	}

	page, limit := pageParams(c)
	methods, pagination, err := h.service.ListPaymentMethods(&filters, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaymentMethodListResponse{
		Success:    true,
		Data:       methods,
		Pagination: pagination,
	})
}

// GetPaymentMethod returns one payment method
// @Summary Get payment method
// @Tags payment-methods
// @Produce json
// @Param id path int true "Payment method ID"
// @Success 200 {object} models.PaymentMethodResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/payment-methods/{id} [get]
func (h *PaymentMethodHandler) GetPaymentMethod(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	method, err := h.service.GetPaymentMethod(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaymentMethodResponse{Success: true, Data: method})
}

// CreatePaymentMethod creates a payment method; the code is derived from
// the description when not supplied
// @Summary Create payment method
// @Tags payment-methods
// @Accept json
// @Produce json
// @Param body body models.CreatePaymentMethodRequest true "Payment method payload"
// @Success 201 {object} models.PaymentMethodResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/payment-methods [post]
func (h *PaymentMethodHandler) CreatePaymentMethod(c *gin.Context) {
	var req models.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	method, err := h.service.CreatePaymentMethod(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.PaymentMethodResponse{Success: true, Data: method})
}

// UpdatePaymentMethod updates a payment method
// @Summary Update payment method
// @Tags payment-methods
// @Accept json
// @Produce json
// @Param id path int true "Payment method ID"
// @Param body body models.UpdatePaymentMethodRequest true "Fields to update"
// @Success 200 {object} models.PaymentMethodResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/payment-methods/{id} [put]
func (h *PaymentMethodHandler) UpdatePaymentMethod(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	var req models.UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	method, err := h.service.UpdatePaymentMethod(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaymentMethodResponse{Success: true, Data: method})
}

// DeletePaymentMethod soft-deletes a payment method
// @Summary Delete payment method
// @Tags payment-methods
// @Produce json
// @Param id path int true "Payment method ID"
// @Param force query bool false "Permanently delete"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/payment-methods/{id} [delete]
func (h *PaymentMethodHandler) DeletePaymentMethod(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	if err := h.service.DeletePaymentMethod(c.Request.Context(), id, forceParam(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: "payment method deleted"})
}

// RestorePaymentMethod restores a soft-deleted payment method
// @Summary Restore payment method
// @Tags payment-methods
// @Produce json
// @Param id path int true "Payment method ID"
// @Success 200 {object} models.PaymentMethodResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/payment-methods/{id}/restore [post]
func (h *PaymentMethodHandler) RestorePaymentMethod(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	method, err := h.service.RestorePaymentMethod(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaymentMethodResponse{Success: true, Data: method})
}
