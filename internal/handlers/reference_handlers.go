package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"payment-config-service/internal/models"
	"payment-config-service/internal/services"
)

// ReferenceHandler exposes the editable reference tables: invoice types,
// message types and terms versions.
type ReferenceHandler struct {
	service services.ReferenceService
}

// NewReferenceHandler creates a new reference data handler
func NewReferenceHandler(service services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{service: service}
}

// ListInvoiceTypes returns a paginated invoice type listing
// @Summary List invoice types
// @Tags invoice-types
// @Produce json
// @Success 200 {object} models.InvoiceTypeListResponse
// @Router /api/v1/invoice-types [get]
func (h *ReferenceHandler) ListInvoiceTypes(c *gin.Context) {
	var filters models.ReferenceFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		respondBindError(c, err)
		return
	}

	page, limit := pageParams(c)
	types, pagination, err := h.service.ListInvoiceTypes(&filters, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.InvoiceTypeListResponse{Success: true, Data: types, Pagination: pagination})
}

// GetInvoiceType returns one invoice type
// @Summary Get invoice type
// @Tags invoice-types
// @Produce json
// @Param id path int true "Invoice type ID"
// @Success 200 {object} models.InvoiceTypeResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/invoice-types/{id} [get]
func (h *ReferenceHandler) GetInvoiceType(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	invoiceType, err := h.service.GetInvoiceType(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.InvoiceTypeResponse{Success: true, Data: invoiceType})
}

// CreateInvoiceType creates an invoice type
// @Summary Create invoice type
// @Tags invoice-types
// @Accept json
// @Produce json
// @Param body body models.CreateInvoiceTypeRequest true "Invoice type payload"
// @Success 201 {object} models.InvoiceTypeResponse
// @Router /api/v1/invoice-types [post]
func (h *ReferenceHandler) CreateInvoiceType(c *gin.Context) {
	var req models.CreateInvoiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	invoiceType, err := h.service.CreateInvoiceType(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.InvoiceTypeResponse{Success: true, Data: invoiceType})
}

// UpdateInvoiceType updates an invoice type
// @Summary Update invoice type
// @Tags invoice-types
// @Accept json
// @Produce json
// @Param id path int true "Invoice type ID"
// @Param body body models.UpdateInvoiceTypeRequest true "Fields to update"
// @Success 200 {object} models.InvoiceTypeResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/invoice-types/{id} [put]
func (h *ReferenceHandler) UpdateInvoiceType(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	var req models.UpdateInvoiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	invoiceType, err := h.service.UpdateInvoiceType(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.InvoiceTypeResponse{Success: true, Data: invoiceType})
}

// DeleteInvoiceType soft-deletes an invoice type
// @Summary Delete invoice type
// @Tags invoice-types
// @Produce json
// @Param id path int true "Invoice type ID"
// @Param force query bool false "Permanently delete"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/invoice-types/{id} [delete]
func (h *ReferenceHandler) DeleteInvoiceType(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	if err := h.service.DeleteInvoiceType(c.Request.Context(), id, forceParam(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: "invoice type deleted"})
}

// RestoreInvoiceType restores a soft-deleted invoice type
// @Summary Restore invoice type
// @Tags invoice-types
// @Produce json
// @Param id path int true "Invoice type ID"
// @Success 200 {object} models.InvoiceTypeResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/invoice-types/{id}/restore [post]
func (h *ReferenceHandler) RestoreInvoiceType(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	invoiceType, err := h.service.RestoreInvoiceType(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.InvoiceTypeResponse{Success: true, Data: invoiceType})
}

// ListMessageTypes returns a paginated message type listing
// @Summary List message types
// @Tags message-types
// @Produce json
// @Success 200 {object} models.MessageTypeListResponse
// @Router /api/v1/message-types [get]
func (h *ReferenceHandler) ListMessageTypes(c *gin.Context) {
	var filters models.ReferenceFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		respondBindError(c, err)
		return
	}

	page, limit := pageParams(c)
	types, pagination, err := h.service.ListMessageTypes(&filters, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageTypeListResponse{Success: true, Data: types, Pagination: pagination})
}

// GetMessageType returns one message type
// @Summary Get message type
// @Tags message-types
// @Produce json
// @Param id path int true "Message type ID"
// @Success 200 {object} models.MessageTypeResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/message-types/{id} [get]
func (h *ReferenceHandler) GetMessageType(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	messageType, err := h.service.GetMessageType(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageTypeResponse{Success: true, Data: messageType})
}

// CreateMessageType creates a message type
// @Summary Create message type
// @Tags message-types
// @Accept json
// @Produce json
// @Param body body models.CreateMessageTypeRequest true "Message type payload"
// @Success 201 {object} models.MessageTypeResponse
// @Router /api/v1/message-types [post]
func (h *ReferenceHandler) CreateMessageType(c *gin.Context) {
	var req models.CreateMessageTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	messageType, err := h.service.CreateMessageType(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.MessageTypeResponse{Success: true, Data: messageType})
}

// UpdateMessageType updates a message type
// @Summary Update message type
// @Tags message-types
// @Accept json
// @Produce json
// @Param id path int true "Message type ID"
// @Param body body models.UpdateMessageTypeRequest true "Fields to update"
// @Success 200 {object} models.MessageTypeResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/message-types/{id} [put]
func (h *ReferenceHandler) UpdateMessageType(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	var req models.UpdateMessageTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	messageType, err := h.service.UpdateMessageType(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageTypeResponse{Success: true, Data: messageType})
}

// DeleteMessageType soft-deletes a message type
// @Summary Delete message type
// @Tags message-types
// @Produce json
// @Param id path int true "Message type ID"
// @Param force query bool false "Permanently delete"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/message-types/{id} [delete]
func (h *ReferenceHandler) DeleteMessageType(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	if err := h.service.DeleteMessageType(c.Request.Context(), id, forceParam(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: "message type deleted"})
}

// RestoreMessageType restores a soft-deleted message type
// @Summary Restore message type
// @Tags message-types
// @Produce json
// @Param id path int true "Message type ID"
// @Success 200 {object} models.MessageTypeResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/message-types/{id}/restore [post]
func (h *ReferenceHandler) RestoreMessageType(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	messageType, err := h.service.RestoreMessageType(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageTypeResponse{Success: true, Data: messageType})
}

// ListTerms returns a paginated terms listing
// @Summary List terms versions
// @Tags terms
// @Produce json
// @Success 200 {object} models.TermsListResponse
// @Router /api/v1/terms [get]
func (h *ReferenceHandler) ListTerms(c *gin.Context) {
	var filters models.ReferenceFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		respondBindError(c, err)
		return
	}

	page, limit := pageParams(c)
	terms, pagination, err := h.service.ListTerms(&filters, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TermsListResponse{Success: true, Data: terms, Pagination: pagination})
}

// GetLatestTerms returns the newest active terms version
// @Summary Get latest terms
// @Tags terms
// @Produce json
// @Success 200 {object} models.TermsResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/terms/latest [get]
func (h *ReferenceHandler) GetLatestTerms(c *gin.Context) {
	terms, err := h.service.GetLatestTerms()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TermsResponse{Success: true, Data: terms})
}

// GetTerms returns one terms version
// @Summary Get terms version
// @Tags terms
// @Produce json
// @Param id path int true "Terms ID"
// @Success 200 {object} models.TermsResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/terms/{id} [get]
func (h *ReferenceHandler) GetTerms(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	terms, err := h.service.GetTerms(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TermsResponse{Success: true, Data: terms})
}

// CreateTerms creates a terms version; versions are unique
// @Summary Create terms version
// @Tags terms
// @Accept json
// @Produce json
// @Param body body models.CreateTermsRequest true "Terms payload"
// @Success 201 {object} models.TermsResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/terms [post]
func (h *ReferenceHandler) CreateTerms(c *gin.Context) {
	var req models.CreateTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	terms, err := h.service.CreateTerms(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.TermsResponse{Success: true, Data: terms})
}

// UpdateTerms updates a terms version; the version string is immutable
// @Summary Update terms version
// @Tags terms
// @Accept json
// @Produce json
// @Param id path int true "Terms ID"
// @Param body body models.UpdateTermsRequest true "Fields to update"
// @Success 200 {object} models.TermsResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/terms/{id} [put]
func (h *ReferenceHandler) UpdateTerms(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	var req models.UpdateTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	terms, err := h.service.UpdateTerms(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TermsResponse{Success: true, Data: terms})
}

// DeleteTerms soft-deletes a terms version
// @Summary Delete terms version
// @Tags terms
// @Produce json
// @Param id path int true "Terms ID"
// @Param force query bool false "Permanently delete"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/terms/{id} [delete]
func (h *ReferenceHandler) DeleteTerms(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	if err := h.service.DeleteTerms(c.Request.Context(), id, forceParam(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: "terms version deleted"})
}

// RestoreTerms restores a soft-deleted terms version
// @Summary Restore terms version
// @Tags terms
// @Produce json
// @Param id path int true "Terms ID"
// @Success 200 {object} models.TermsResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/terms/{id}/restore [post]
func (h *ReferenceHandler) RestoreTerms(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	terms, err := h.service.RestoreTerms(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TermsResponse{Success: true, Data: terms})
}
