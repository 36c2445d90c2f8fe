package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"payment-config-service/internal/middleware"
	"payment-config-service/internal/models"
	"payment-config-service/internal/services"
)

// PspPaymentMethodHandler exposes PSP payment method configurations
type PspPaymentMethodHandler struct {
	service services.PspPaymentMethodService
}

// NewPspPaymentMethodHandler creates a new configuration handler
func NewPspPaymentMethodHandler(service services.PspPaymentMethodService) *PspPaymentMethodHandler {
	return &PspPaymentMethodHandler{service: service}
}

// ListConfigurations returns a paginated configuration listing
// @Summary List PSP payment method configurations
// @Tags psp-payment-methods
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param psp_id query int false "Filter by PSP"
// @Param payment_method_id query int false "Filter by payment method"
// @Param merchant_id query int false "Filter by merchant"
// @Param invoice_type_id query int false "Filter by invoice type"
// @Success 200 {object} models.PspPaymentMethodListResponse
// @Router /api/v1/psp-payment-methods [get]
func (h *PspPaymentMethodHandler) ListConfigurations(c *gin.Context) {
	var filters models.PspPaymentMethodFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		respondBindError(c, err)
		return
	}

	page, limit := pageParams(c)
	configs, pagination, err := h.service.ListConfigurations(&filters, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PspPaymentMethodListResponse{
		Success:    true,
		Data:       configs,
		Pagination: pagination,
	})
}

// GetConfiguration returns one configuration with resolved relations
// @Summary Get configuration
// @Tags psp-payment-methods
// @Produce json
// @Param id path int true "Configuration ID"
// @Success 200 {object} models.PspPaymentMethodResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/psp-payment-methods/{id} [get]
func (h *PspPaymentMethodHandler) GetConfiguration(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	config, err := h.service.GetConfiguration(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PspPaymentMethodResponse{Success: true, Data: config})
}

// CreateConfigurations accepts a flat config or a batch; a batch is
// all-or-nothing
// @Summary Create configurations
// @Tags psp-payment-methods
// @Accept json
// @Produce json
// @Param body body models.CreatePspPaymentMethodRequest true "Flat or batch payload"
// @Success 201 {object} models.PspPaymentMethodBatchResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /api/v1/psp-payment-methods [post]
func (h *PspPaymentMethodHandler) CreateConfigurations(c *gin.Context) {
	var req models.CreatePspPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	views, err := h.service.CreateConfigurations(c.Request.Context(), middleware.ActorFrom(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.PspPaymentMethodBatchResponse{Success: true, Data: views})
}

// UpdateConfiguration updates one configuration
// @Summary Update configuration
// @Tags psp-payment-methods
// @Accept json
// @Produce json
// @Param id path int true "Configuration ID"
// @Param body body models.UpdatePspPaymentMethodRequest true "Fields to update"
// @Success 200 {object} models.PspPaymentMethodResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/psp-payment-methods/{id} [put]
func (h *PspPaymentMethodHandler) UpdateConfiguration(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	var req models.UpdatePspPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	config, err := h.service.UpdateConfiguration(c.Request.Context(), middleware.ActorFrom(c), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PspPaymentMethodResponse{Success: true, Data: config})
}

// DeleteConfiguration soft-deletes a configuration
// @Summary Delete configuration
// @Tags psp-payment-methods
// @Produce json
// @Param id path int true "Configuration ID"
// @Param force query bool false "Permanently delete"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/psp-payment-methods/{id} [delete]
func (h *PspPaymentMethodHandler) DeleteConfiguration(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	if err := h.service.DeleteConfiguration(c.Request.Context(), id, forceParam(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: "configuration deleted"})
}

// RestoreConfiguration restores a soft-deleted configuration
// @Summary Restore configuration
// @Tags psp-payment-methods
// @Produce json
// @Param id path int true "Configuration ID"
// @Success 200 {object} models.PspPaymentMethodResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/psp-payment-methods/{id}/restore [post]
func (h *PspPaymentMethodHandler) RestoreConfiguration(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	config, err := h.service.RestoreConfiguration(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PspPaymentMethodResponse{Success: true, Data: config})
}
