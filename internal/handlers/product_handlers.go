package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"payment-config-service/internal/models"
	"payment-config-service/internal/services"
)

// ProductHandler exposes product CRUD over HTTP
type ProductHandler struct {
	service services.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(service services.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// ListProducts returns a paginated product listing with the index version
// @Summary List products
// @Tags products
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param name query string false "Match either localized name"
// @Param is_signed query bool false "Filter by signing flag"
// @Success 200 {object} models.ProductListResponse
// @Router /api/v1/products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var filters models.ProductFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		respondBindError(c, err)
		return
	}

	page, limit := pageParams(c)
	products, pagination, version, err := h.service.ListProducts(c.Request.Context(), &filters, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ProductListResponse{
		Success:      true,
		Data:         products,
		Pagination:   pagination,
		IndexVersion: version,
	})
}

// GetProduct returns one product
// @Summary Get product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ProductResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	product, err := h.service.GetProduct(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ProductResponse{Success: true, Data: product})
}

// CreateProduct creates a product; a missing invoice URL falls back to
// the platform default
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param body body models.CreateProductRequest true "Product payload"
// @Success 201 {object} models.ProductResponse
// @Router /api/v1/products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.ProductResponse{Success: true, Data: product})
}

// UpdateProduct updates a product
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param body body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.ProductResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.service.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ProductResponse{Success: true, Data: product})
}

// DeleteProduct soft-deletes a product
// @Summary Delete product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Param force query bool false "Permanently delete"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), id, forceParam(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: "product deleted"})
}

// RestoreProduct restores a soft-deleted product
// @Summary Restore product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ProductResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/products/{id}/restore [post]
func (h *ProductHandler) RestoreProduct(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	product, err := h.service.RestoreProduct(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ProductResponse{Success: true, Data: product})
}
