package models

import (
	"time"

	"gorm.io/gorm"
)

// Country is externally sourced reference data, extended only with query
// scopes and the TTL cache. List/show only; no admin CRUD.
type Country struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	NameEn    string    `json:"nameEn" gorm:"not null;index"`
	NameAr    string    `json:"nameAr" gorm:"index"`
	ISO2      string    `json:"iso2" gorm:"size:2;not null;uniqueIndex"`
	ISO3      string    `json:"iso3" gorm:"size:3;not null;uniqueIndex"`
	PhoneCode string    `json:"phoneCode"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Country) TableName() string {
	return "countries"
}

// Currency reference row.
type Currency struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	NameEn    string    `json:"nameEn" gorm:"not null;index"`
	NameAr    string    `json:"nameAr" gorm:"index"`
	Code      string    `json:"code" gorm:"size:3;not null;uniqueIndex"`
	Symbol    string    `json:"symbol"`
	Precision int       `json:"precision" gorm:"default:2"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Currency) TableName() string {
	return "currencies"
}

// Language reference row.
type Language struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;index"`
	Code      string    `json:"code" gorm:"size:5;not null;uniqueIndex"`
	IsRTL     bool      `json:"isRtl" gorm:"default:false"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Language) TableName() string {
	return "languages"
}

// InvoiceType categorizes invoices a merchant can issue.
type InvoiceType struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	NameEn    string         `json:"nameEn" gorm:"not null;index"`
	NameAr    string         `json:"nameAr" gorm:"index"`
	IsActive  bool           `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

func (InvoiceType) TableName() string {
	return "invoice_types"
}

// MessageType is a notification template category with a direction.
type MessageType struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	NameEn    string           `json:"nameEn" gorm:"not null;index"`
	NameAr    string           `json:"nameAr" gorm:"index"`
	Direction MessageDirection `json:"directionId" gorm:"not null;default:1"`
	IsActive  bool             `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
	DeletedAt gorm.DeletedAt   `json:"deletedAt,omitempty" gorm:"index"`
}

func (MessageType) TableName() string {
	return "message_types"
}

// TermsAndCondition is a versioned legal document; Version is unique.
type TermsAndCondition struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Version   string         `json:"version" gorm:"not null;uniqueIndex"`
	TitleEn   string         `json:"titleEn" gorm:"not null"`
	TitleAr   string         `json:"titleAr"`
	ContentEn string         `json:"contentEn" gorm:"type:text"`
	ContentAr string         `json:"contentAr" gorm:"type:text"`
	IsActive  bool           `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

func (TermsAndCondition) TableName() string {
	return "terms_and_conditions"
}

// MerchantStatus reference row.
type MerchantStatus struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	NameEn    string    `json:"nameEn" gorm:"not null"`
	NameAr    string    `json:"nameAr"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (MerchantStatus) TableName() string {
	return "merchant_statuses"
}

// PspStatus reference row.
type PspStatus struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	NameEn    string    `json:"nameEn" gorm:"not null"`
	NameAr    string    `json:"nameAr"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (PspStatus) TableName() string {
	return "psp_statuses"
}

// UserStatus reference row.
type UserStatus struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	NameEn    string    `json:"nameEn" gorm:"not null"`
	NameAr    string    `json:"nameAr"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (UserStatus) TableName() string {
	return "user_statuses"
}

// CreateInvoiceTypeRequest represents a request to create an invoice type
type CreateInvoiceTypeRequest struct {
	NameEn   string `json:"nameEn" binding:"required,max=190"`
	NameAr   string `json:"nameAr" binding:"max=190"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// UpdateInvoiceTypeRequest represents a request to update an invoice type
type UpdateInvoiceTypeRequest struct {
	NameEn   *string `json:"nameEn,omitempty" binding:"omitempty,max=190"`
	NameAr   *string `json:"nameAr,omitempty" binding:"omitempty,max=190"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// CreateMessageTypeRequest represents a request to create a message type
type CreateMessageTypeRequest struct {
	NameEn    string           `json:"nameEn" binding:"required,max=190"`
	NameAr    string           `json:"nameAr" binding:"max=190"`
	Direction MessageDirection `json:"directionId" binding:"required"`
	IsActive  *bool            `json:"isActive,omitempty"`
}

// UpdateMessageTypeRequest represents a request to update a message type
type UpdateMessageTypeRequest struct {
	NameEn    *string           `json:"nameEn,omitempty" binding:"omitempty,max=190"`
	NameAr    *string           `json:"nameAr,omitempty" binding:"omitempty,max=190"`
	Direction *MessageDirection `json:"directionId,omitempty"`
	IsActive  *bool             `json:"isActive,omitempty"`
}

// CreateTermsRequest represents a request to create a terms version
type CreateTermsRequest struct {
	Version   string `json:"version" binding:"required,max=32"`
	TitleEn   string `json:"titleEn" binding:"required,max=190"`
	TitleAr   string `json:"titleAr" binding:"max=190"`
	ContentEn string `json:"contentEn" binding:"required"`
	ContentAr string `json:"contentAr"`
	IsActive  *bool  `json:"isActive,omitempty"`
}

// UpdateTermsRequest represents a request to update a terms version
type UpdateTermsRequest struct {
	TitleEn   *string `json:"titleEn,omitempty" binding:"omitempty,max=190"`
	TitleAr   *string `json:"titleAr,omitempty" binding:"omitempty,max=190"`
	ContentEn *string `json:"contentEn,omitempty"`
	ContentAr *string `json:"contentAr,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// ReferenceFilters is the shared filter set for simple reference entities.
type ReferenceFilters struct {
	Name     string `form:"name"`
	IsActive *bool  `form:"is_active"`
}

// InvoiceTypeResponse represents a single invoice type response
type InvoiceTypeResponse struct {
	Success bool         `json:"success"`
	Data    *InvoiceType `json:"data"`
}

// InvoiceTypeListResponse represents a list of invoice types response
type InvoiceTypeListResponse struct {
	Success    bool            `json:"success"`
	Data       []InvoiceType   `json:"data"`
	Pagination *PaginationInfo `json:"pagination"`
}

// MessageTypeResponse represents a single message type response
type MessageTypeResponse struct {
	Success bool         `json:"success"`
	Data    *MessageType `json:"data"`
}

// MessageTypeListResponse represents a list of message types response
type MessageTypeListResponse struct {
	Success    bool            `json:"success"`
	Data       []MessageType   `json:"data"`
	Pagination *PaginationInfo `json:"pagination"`
}

// TermsResponse represents a single terms version response
type TermsResponse struct {
	Success bool               `json:"success"`
	Data    *TermsAndCondition `json:"data"`
}

// TermsListResponse represents a list of terms versions response
type TermsListResponse struct {
	Success    bool                `json:"success"`
	Data       []TermsAndCondition `json:"data"`
	Pagination *PaginationInfo     `json:"pagination"`
}

// CountryListResponse represents the cached country list response
type CountryListResponse struct {
	Success bool      `json:"success"`
	Data    []Country `json:"data"`
}

// CurrencyListResponse represents the cached currency list response
type CurrencyListResponse struct {
	Success bool       `json:"success"`
	Data    []Currency `json:"data"`
}

// LanguageListResponse represents the cached language list response
type LanguageListResponse struct {
	Success bool       `json:"success"`
	Data    []Language `json:"data"`
}
