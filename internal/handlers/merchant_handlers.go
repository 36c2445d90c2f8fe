package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"payment-config-service/internal/models"
	"payment-config-service/internal/services"
)

// MerchantHandler exposes merchant CRUD over HTTP
type MerchantHandler struct {
	service services.MerchantService
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(service services.MerchantService) *MerchantHandler {
	return &MerchantHandler{service: service}
}

// ListMerchants returns a paginated merchant listing
// @Summary List merchants
// @Tags merchants
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param name query string false "Match either localized name"
// @Param product_id query int false "Filter by product"
// @Param status_id query int false "Filter by status"
// @Param referral_id query string false "Filter by referral id"
// @Param is_live query bool false "Filter by live flag"
// @Success 200 {object} models.MerchantListResponse
// @Router /api/v1/merchants [get]
func (h *MerchantHandler) ListMerchants(c *gin.Context) {
	var filters models.MerchantFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		respondBindError(c, err)
		return
	}

	page, limit := pageParams(c)
	merchants, pagination, err := h.service.ListMerchants(&filters, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MerchantListResponse{
		Success:    true,
		Data:       merchants,
		Pagination: pagination,
	})
}

// GetMerchant returns one merchant with settings and invoice types
// @Summary Get merchant
// @Tags merchants
// @Produce json
// @Param id path int true "Merchant ID"
// @Success 200 {object} models.MerchantResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/merchants/{id} [get]
func (h *MerchantHandler) GetMerchant(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	merchant, err := h.service.GetMerchant(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MerchantResponse{Success: true, Data: merchant})
}

// CreateMerchant creates a merchant with its settings in one transaction
// @Summary Create merchant
// @Tags merchants
// @Accept json
// @Produce json
// @Param merchant body models.CreateMerchantRequest true "Merchant payload"
// @Success 201 {object} models.MerchantResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /api/v1/merchants [post]
func (h *MerchantHandler) CreateMerchant(c *gin.Context) {
	var req models.CreateMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	merchant, err := h.service.CreateMerchant(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.MerchantResponse{Success: true, Data: merchant})
}

// UpdateMerchant updates merchant fields and upserts settings
// @Summary Update merchant
// @Tags merchants
// @Accept json
// @Produce json
// @Param id path int true "Merchant ID"
// @Param merchant body models.UpdateMerchantRequest true "Fields to update"
// @Success 200 {object} models.MerchantResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/merchants/{id} [put]
func (h *MerchantHandler) UpdateMerchant(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	var req models.UpdateMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	merchant, err := h.service.UpdateMerchant(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MerchantResponse{Success: true, Data: merchant})
}

// DeleteMerchant soft-deletes a merchant (force=true removes permanently)
// @Summary Delete merchant
// @Tags merchants
// @Produce json
// @Param id path int true "Merchant ID"
// @Param force query bool false "Permanently delete"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/merchants/{id} [delete]
func (h *MerchantHandler) DeleteMerchant(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	if err := h.service.DeleteMerchant(c.Request.Context(), id, forceParam(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: "merchant deleted"})
}

// RestoreMerchant restores a soft-deleted merchant
// @Summary Restore merchant
// @Tags merchants
// @Produce json
// @Param id path int true "Merchant ID"
// @Success 200 {object} models.MerchantResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/merchants/{id}/restore [post]
func (h *MerchantHandler) RestoreMerchant(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	merchant, err := h.service.RestoreMerchant(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MerchantResponse{Success: true, Data: merchant})
}

// SyncInvoiceTypes replaces the merchant's invoice type links
// @Summary Sync merchant invoice types
// @Tags merchants
// @Accept json
// @Produce json
// @Param id path int true "Merchant ID"
// @Param body body models.SyncMerchantInvoicesRequest true "Invoice type ids to keep"
// @Success 200 {object} models.MerchantResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/merchants/{id}/invoice-types [put]
func (h *MerchantHandler) SyncInvoiceTypes(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	var req models.SyncMerchantInvoicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	merchant, err := h.service.SyncInvoiceTypes(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MerchantResponse{Success: true, Data: merchant})
}
