package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Bank is a reference entity used by merchant settings and PSP banking
// details. SwiftCode is globally unique.
type Bank struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	NameEn      string         `json:"nameEn" gorm:"not null;index"`
	NameAr      string         `json:"nameAr" gorm:"index"`
	SwiftCode   string         `json:"swiftCode" gorm:"not null;uniqueIndex"`
	CountryCode *string        `json:"countryCode,omitempty" gorm:"size:2"`
	LogoPath    *string        `json:"logoPath,omitempty"`
	IsActive    bool           `json:"isActive" gorm:"default:true"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

func (Bank) TableName() string {
	return "banks"
}

// PaymentNetwork is a card/wallet network (Visa, Mada, ...). Tags arrive
// from clients in several shapes and are normalized to a clean array.
type PaymentNetwork struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null;uniqueIndex"`
	Tags      pq.StringArray `json:"tags" gorm:"type:text[]"`
	IsActive  bool           `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

func (PaymentNetwork) TableName() string {
	return "payment_networks"
}

// CreateBankRequest represents a request to create a bank
type CreateBankRequest struct {
	NameEn      string      `json:"nameEn" binding:"required,max=190"`
	NameAr      string      `json:"nameAr" binding:"max=190"`
	SwiftCode   string      `json:"swiftCode" binding:"required,min=8,max=11"`
	CountryCode *string     `json:"countryCode,omitempty" binding:"omitempty,len=2"`
	Logo        *FileUpload `json:"logo,omitempty"`
	IsActive    *bool       `json:"isActive,omitempty"`
}

// UpdateBankRequest represents a request to update a bank
type UpdateBankRequest struct {
	NameEn      *string     `json:"nameEn,omitempty" binding:"omitempty,max=190"`
	NameAr      *string     `json:"nameAr,omitempty" binding:"omitempty,max=190"`
	SwiftCode   *string     `json:"swiftCode,omitempty" binding:"omitempty,min=8,max=11"`
	CountryCode *string     `json:"countryCode,omitempty" binding:"omitempty,len=2"`
	Logo        *FileUpload `json:"logo,omitempty"`
	IsActive    *bool       `json:"isActive,omitempty"`
}

// BankFilters represents filters for bank listings
type BankFilters struct {
	Name        string `form:"name"`
	SwiftCode   string `form:"swift_code"`
	CountryCode string `form:"country_code"`
	IsActive    *bool  `form:"is_active"`
}

// CreatePaymentNetworkRequest represents a request to create a network.
// Tags accepts an array, a JSON-encoded string, or a single scalar.
type CreatePaymentNetworkRequest struct {
	Name     string      `json:"name" binding:"required,max=190"`
	Tags     interface{} `json:"tags,omitempty"`
	IsActive *bool       `json:"isActive,omitempty"`
}

// UpdatePaymentNetworkRequest represents a request to update a network
type UpdatePaymentNetworkRequest struct {
	Name     *string     `json:"name,omitempty" binding:"omitempty,max=190"`
	Tags     interface{} `json:"tags,omitempty"`
	IsActive *bool       `json:"isActive,omitempty"`
}

// PaymentNetworkFilters represents filters for network listings
type PaymentNetworkFilters struct {
	Name     string `form:"name"`
	Tag      string `form:"tag"`
	IsActive *bool  `form:"is_active"`
}

// BankResponse represents a single bank response
type BankResponse struct {
	Success bool  `json:"success"`
	Data    *Bank `json:"data"`
}

// BankListResponse represents a list of banks response
type BankListResponse struct {
	Success    bool            `json:"success"`
	Data       []Bank          `json:"data"`
	Pagination *PaginationInfo `json:"pagination"`
}

// PaymentNetworkResponse represents a single network response
type PaymentNetworkResponse struct {
	Success bool            `json:"success"`
	Data    *PaymentNetwork `json:"data"`
}

// PaymentNetworkListResponse represents a list of networks response
type PaymentNetworkListResponse struct {
	Success    bool             `json:"success"`
	Data       []PaymentNetwork `json:"data"`
	Pagination *PaginationInfo  `json:"pagination"`
}
