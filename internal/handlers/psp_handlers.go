package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"payment-config-service/internal/models"
	"payment-config-service/internal/services"
)

// PspHandler exposes PSP CRUD over HTTP
type PspHandler struct {
	service services.PspService
}

// NewPspHandler creates a new PSP handler
func NewPspHandler(service services.PspService) *PspHandler {
	return &PspHandler{service: service}
}

// ListPsps returns a paginated PSP listing with the current index version
// @Summary List PSPs
// @Tags psps
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param name query string false "Filter by name substring"
// @Param code query string false "Filter by exact code"
// @Param status_id query int false "Filter by status"
// @Param country_code query string false "Filter by country"
// @Success 200 {object} models.PspListResponse
// @Router /api/v1/psps [get]
func (h *PspHandler) ListPsps(c *gin.Context) {
	var filters models.PspFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		respondBindError(c, err)
		return
	}

	page, limit := pageParams(c)
	psps, pagination, version, err := h.service.ListPsps(c.Request.Context(), &filters, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PspListResponse{
		Success:      true,
		Data:         psps,
		Pagination:   pagination,
		IndexVersion: version,
	})
}

// GetPsp returns one PSP including its stored credentials
// @Summary Get PSP
// @Tags psps
// @Produce json
// @Param id path int true "PSP ID"
// @Success 200 {object} models.PspResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/psps/{id} [get]
func (h *PspHandler) GetPsp(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	psp, err := h.service.GetPsp(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PspResponse{Success: true, Data: psp})
}

// CreatePsp creates a PSP; the code is derived from the name
// @Summary Create PSP
// @Tags psps
// @Accept json
// @Produce json
// @Param psp body models.CreatePspRequest true "PSP payload"
// @Success 201 {object} models.PspResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/psps [post]
func (h *PspHandler) CreatePsp(c *gin.Context) {
	var req models.CreatePspRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	psp, err := h.service.CreatePsp(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.PspResponse{Success: true, Data: psp})
}

// UpdatePsp updates a PSP; omitting the password keeps the stored one
// @Summary Update PSP
// @Tags psps
// @Accept json
// @Produce json
// @Param id path int true "PSP ID"
// @Param psp body models.UpdatePspRequest true "Fields to update"
// @Success 200 {object} models.PspResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/psps/{id} [put]
func (h *PspHandler) UpdatePsp(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	var req models.UpdatePspRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	psp, err := h.service.UpdatePsp(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PspResponse{Success: true, Data: psp})
}

// DeletePsp soft-deletes a PSP (force=true removes permanently)
// @Summary Delete PSP
// @Tags psps
// @Produce json
// @Param id path int true "PSP ID"
// @Param force query bool false "Permanently delete"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/psps/{id} [delete]
func (h *PspHandler) DeletePsp(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	if err := h.service.DeletePsp(c.Request.Context(), id, forceParam(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: "psp deleted"})
}

// RestorePsp restores a soft-deleted PSP
// @Summary Restore PSP
// @Tags psps
// @Produce json
// @Param id path int true "PSP ID"
// @Success 200 {object} models.PspResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/psps/{id}/restore [post]
func (h *PspHandler) RestorePsp(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	psp, err := h.service.RestorePsp(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PspResponse{Success: true, Data: psp})
}
