package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"payment-config-service/internal/models"
	"payment-config-service/internal/services"
)

// LookupHandler serves the cached reference lists and dropdown
// projections used by admin panel forms.
type LookupHandler struct {
	service services.LookupService
}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler(service services.LookupService) *LookupHandler {
	return &LookupHandler{service: service}
}

// ListCountries returns the active country list
// @Summary List countries
// @Tags lookups
// @Produce json
// @Success 200 {object} models.CountryListResponse
// @Router /api/v1/lookups/countries [get]
func (h *LookupHandler) ListCountries(c *gin.Context) {
	countries, err := h.service.Countries(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CountryListResponse{Success: true, Data: countries})
}

// ListCurrencies returns the active currency list
// @Summary List currencies
// @Tags lookups
// @Produce json
// @Success 200 {object} models.CurrencyListResponse
// @Router /api/v1/lookups/currencies [get]
func (h *LookupHandler) ListCurrencies(c *gin.Context) {
	currencies, err := h.service.Currencies(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CurrencyListResponse{Success: true, Data: currencies})
}

// ListLanguages returns the active language list
// @Summary List languages
// @Tags lookups
// @Produce json
// @Success 200 {object} models.LanguageListResponse
// @Router /api/v1/lookups/languages [get]
func (h *LookupHandler) ListLanguages(c *gin.Context) {
	languages, err := h.service.Languages(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.LanguageListResponse{Success: true, Data: languages})
}

// MerchantStatusDropdown returns merchant status options
// @Summary Merchant status dropdown
// @Tags lookups
// @Produce json
// @Success 200 {object} models.DropdownResponse
// @Router /api/v1/lookups/merchant-statuses [get]
func (h *LookupHandler) MerchantStatusDropdown(c *gin.Context) {
	h.dropdown(c, h.service.MerchantStatusDropdown)
}

// PspStatusDropdown returns PSP status options
// @Summary PSP status dropdown
// @Tags lookups
// @Produce json
// @Success 200 {object} models.DropdownResponse
// @Router /api/v1/lookups/psp-statuses [get]
func (h *LookupHandler) PspStatusDropdown(c *gin.Context) {
	h.dropdown(c, h.service.PspStatusDropdown)
}

// UserStatusDropdown returns user status options
// @Summary User status dropdown
// @Tags lookups
// @Produce json
// @Success 200 {object} models.DropdownResponse
// @Router /api/v1/lookups/user-statuses [get]
func (h *LookupHandler) UserStatusDropdown(c *gin.Context) {
	h.dropdown(c, h.service.UserStatusDropdown)
}

// BankDropdown returns active bank options keyed by SWIFT code
// @Summary Bank dropdown
// @Tags lookups
// @Produce json
// @Success 200 {object} models.DropdownResponse
// @Router /api/v1/lookups/banks [get]
func (h *LookupHandler) BankDropdown(c *gin.Context) {
	h.dropdown(c, h.service.BankDropdown)
}

// InvoiceTypeDropdown returns active invoice type options
// @Summary Invoice type dropdown
// @Tags lookups
// @Produce json
// @Success 200 {object} models.DropdownResponse
// @Router /api/v1/lookups/invoice-types [get]
func (h *LookupHandler) InvoiceTypeDropdown(c *gin.Context) {
	h.dropdown(c, h.service.InvoiceTypeDropdown)
}

// PaymentMethodDropdown returns payment method options keyed by code
// @Summary Payment method dropdown
// @Tags lookups
// @Produce json
// @Success 200 {object} models.DropdownResponse
// @Router /api/v1/lookups/payment-methods [get]
func (h *LookupHandler) PaymentMethodDropdown(c *gin.Context) {
	h.dropdown(c, h.service.PaymentMethodDropdown)
}

// ProductDropdown returns product options
// @Summary Product dropdown
// @Tags lookups
// @Produce json
// @Success 200 {object} models.DropdownResponse
// @Router /api/v1/lookups/products [get]
func (h *LookupHandler) ProductDropdown(c *gin.Context) {
	h.dropdown(c, h.service.ProductDropdown)
}

// ClearCache invalidates every cached lookup at once
// @Summary Clear lookup cache
// @Tags lookups
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Router /api/v1/lookups/clear-cache [post]
func (h *LookupHandler) ClearCache(c *gin.Context) {
	if err := h.service.ClearCache(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: "lookup cache cleared"})
}

func (h *LookupHandler) dropdown(c *gin.Context, load func(ctx context.Context) ([]models.DropdownOption, error)) {
	options, err := load(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DropdownResponse{Success: true, Data: options})
}
