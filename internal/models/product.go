package models

import (
	"time"

	"gorm.io/gorm"

	"payment-config-service/internal/encryption"
)

// DefaultProductAPIURL is assigned to products created without an invoice
// API URL. Kept in one place so the admin UI and the service agree.
const DefaultProductAPIURL = "https://api.payments.internal/v1/invoices"

// Product groups merchants under one integration: signing keys, callback
// endpoints and invoice API URL.
type Product struct {
	ID          uint                       `json:"id" gorm:"primaryKey"`
	NameEn      string                     `json:"nameEn" gorm:"not null;index"`
	NameAr      string                     `json:"nameAr" gorm:"index"`
	IsSigned    bool                       `json:"isSigned" gorm:"default:false"`
	CallbackURL *string                    `json:"callbackUrl,omitempty"`
	WebhookURL  *string                    `json:"webhookUrl,omitempty"`
	InvoiceURL  string                     `json:"invoiceUrl" gorm:"not null"`
	HMACKey     encryption.EncryptedString `json:"hmacKey,omitempty" gorm:"column:hmac_key"`
	TokenKey    encryption.EncryptedString `json:"tokenKey,omitempty"`
	SecretKey   encryption.EncryptedString `json:"secretKey,omitempty"`
	CreatedAt   time.Time                  `json:"createdAt"`
	UpdatedAt   time.Time                  `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt             `json:"deletedAt,omitempty" gorm:"index"`

	Merchants []Merchant `json:"merchants,omitempty" gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string {
	return "products"
}

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	NameEn      string  `json:"nameEn" binding:"required,max=190"`
	NameAr      string  `json:"nameAr" binding:"max=190"`
	IsSigned    bool    `json:"isSigned"`
	CallbackURL *string `json:"callbackUrl,omitempty" binding:"omitempty,url"`
	WebhookURL  *string `json:"webhookUrl,omitempty" binding:"omitempty,url"`
	InvoiceURL  *string `json:"invoiceUrl,omitempty" binding:"omitempty,url"`
	HMACKey     string  `json:"hmacKey"`
	TokenKey    string  `json:"tokenKey"`
	SecretKey   string  `json:"secretKey"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	NameEn      *string `json:"nameEn,omitempty" binding:"omitempty,max=190"`
	NameAr      *string `json:"nameAr,omitempty" binding:"omitempty,max=190"`
	IsSigned    *bool   `json:"isSigned,omitempty"`
	CallbackURL *string `json:"callbackUrl,omitempty" binding:"omitempty,url"`
	WebhookURL  *string `json:"webhookUrl,omitempty" binding:"omitempty,url"`
	InvoiceURL  *string `json:"invoiceUrl,omitempty" binding:"omitempty,url"`
	HMACKey     *string `json:"hmacKey,omitempty"`
	TokenKey    *string `json:"tokenKey,omitempty"`
	SecretKey   *string `json:"secretKey,omitempty"`
}

// ProductFilters represents filters for product listings
type ProductFilters struct {
	Name     string `form:"name"`
	IsSigned *bool  `form:"is_signed"`
}

// ProductResponse represents a single product response
type ProductResponse struct {
	Success bool     `json:"success"`
	Data    *Product `json:"data"`
}

// ProductListResponse represents a list of products response
type ProductListResponse struct {
	Success      bool            `json:"success"`
	Data         []Product       `json:"data"`
	Pagination   *PaginationInfo `json:"pagination"`
	IndexVersion int64           `json:"indexVersion"`
}
