package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"payment-config-service/internal/models"
	"payment-config-service/internal/services"
)

// BankHandler exposes bank and payment network CRUD over HTTP
type BankHandler struct {
	banks    services.BankService
	networks services.PaymentNetworkService
}

// NewBankHandler creates a new bank handler
func NewBankHandler(banks services.BankService, networks services.PaymentNetworkService) *BankHandler {
	return &BankHandler{banks: banks, networks: networks}
}

// ListBanks returns a paginated bank listing
// @Summary List banks
// @Tags banks
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param name query string false "Match either localized name"
// @Param swift_code query string false "Filter by SWIFT code"
// @Param country_code query string false "Filter by country"
// @Param is_active query bool false "Filter by active flag"
// @Success 200 {object} models.BankListResponse
// @Router /api/v1/banks [get]
func (h *BankHandler) ListBanks(c *gin.Context) {
	var filters models.BankFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		respondBindError(c, err)
		return
	}

	page, limit := pageParams(c)
	banks, pagination, err := h.banks.ListBanks(&filters, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BankListResponse{Success: true, Data: banks, Pagination: pagination})
}

// GetBank returns one bank
// @Summary Get bank
// @Tags banks
// @Produce json
// @Param id path int true "Bank ID"
// @Success 200 {object} models.BankResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/banks/{id} [get]
func (h *BankHandler) GetBank(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	bank, err := h.banks.GetBank(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BankResponse{Success: true, Data: bank})
}

// CreateBank creates a bank
// @Summary Create bank
// @Tags banks
// @Accept json
// @Produce json
// @Param body body models.CreateBankRequest true "Bank payload"
// @Success 201 {object} models.BankResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/banks [post]
func (h *BankHandler) CreateBank(c *gin.Context) {
	var req models.CreateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	bank, err := h.banks.CreateBank(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.BankResponse{Success: true, Data: bank})
}

// UpdateBank updates a bank
// @Summary Update bank
// @Tags banks
// @Accept json
// @Produce json
// @Param id path int true "Bank ID"
// @Param body body models.UpdateBankRequest true "Fields to update"
// @Success 200 {object} models.BankResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/banks/{id} [put]
func (h *BankHandler) UpdateBank(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	var req models.UpdateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	bank, err := h.banks.UpdateBank(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BankResponse{Success: true, Data: bank})
}

// DeleteBank soft-deletes a bank
// @Summary Delete bank
// @Tags banks
// @Produce json
// @Param id path int true "Bank ID"
// @Param force query bool false "Permanently delete"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/banks/{id} [delete]
func (h *BankHandler) DeleteBank(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	if err := h.banks.DeleteBank(c.Request.Context(), id, forceParam(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: "bank deleted"})
}

// RestoreBank restores a soft-deleted bank
// @Summary Restore bank
// @Tags banks
// @Produce json
// @Param id path int true "Bank ID"
// @Success 200 {object} models.BankResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/banks/{id}/restore [post]
func (h *BankHandler) RestoreBank(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	bank, err := h.banks.RestoreBank(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BankResponse{Success: true, Data: bank})
}

// ListNetworks returns a paginated payment network listing
// @Summary List payment networks
// @Tags payment-networks
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param name query string false "Filter by name substring"
// @Param tag query string false "Filter by tag"
// @Param is_active query bool false "Filter by active flag"
// @Success 200 {object} models.PaymentNetworkListResponse
// @Router /api/v1/payment-networks [get]
func (h *BankHandler) ListNetworks(c *gin.Context) {
	var filters models.PaymentNetworkFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		respondBindError(c, err)
		return
	}

	page, limit := pageParams(c)
	networks, pagination, err := h.networks.ListNetworks(&filters, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaymentNetworkListResponse{Success: true, Data: networks, Pagination: pagination})
}

// GetNetwork returns one payment network
// @Summary Get payment network
// @Tags payment-networks
// @Produce json
// @Param id path int true "Network ID"
// @Success 200 {object} models.PaymentNetworkResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/payment-networks/{id} [get]
func (h *BankHandler) GetNetwork(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	network, err := h.networks.GetNetwork(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaymentNetworkResponse{Success: true, Data: network})
}

// CreateNetwork creates a payment network; tags are normalized from any
// accepted shape
// @Summary Create payment network
// @Tags payment-networks
// @Accept json
// @Produce json
// @Param body body models.CreatePaymentNetworkRequest true "Network payload"
// @Success 201 {object} models.PaymentNetworkResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/payment-networks [post]
func (h *BankHandler) CreateNetwork(c *gin.Context) {
	var req models.CreatePaymentNetworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	network, err := h.networks.CreateNetwork(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.PaymentNetworkResponse{Success: true, Data: network})
}

// UpdateNetwork updates a payment network
// @Summary Update payment network
// @Tags payment-networks
// @Accept json
// @Produce json
// @Param id path int true "Network ID"
// @Param body body models.UpdatePaymentNetworkRequest true "Fields to update"
// @Success 200 {object} models.PaymentNetworkResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/payment-networks/{id} [put]
func (h *BankHandler) UpdateNetwork(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	var req models.UpdatePaymentNetworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	network, err := h.networks.UpdateNetwork(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaymentNetworkResponse{Success: true, Data: network})
}

// DeleteNetwork soft-deletes a payment network
// @Summary Delete payment network
// @Tags payment-networks
// @Produce json
// @Param id path int true "Network ID"
// @Param force query bool false "Permanently delete"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/payment-networks/{id} [delete]
func (h *BankHandler) DeleteNetwork(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	if err := h.networks.DeleteNetwork(c.Request.Context(), id, forceParam(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: "payment network deleted"})
}

// RestoreNetwork restores a soft-deleted payment network
// @Summary Restore payment network
// @Tags payment-networks
// @Produce json
// @Param id path int true "Network ID"
// @Success 200 {object} models.PaymentNetworkResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/payment-networks/{id}/restore [post]
func (h *BankHandler) RestoreNetwork(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	network, err := h.networks.RestoreNetwork(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaymentNetworkResponse{Success: true, Data: network})
}
