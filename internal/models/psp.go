package models

import (
	"time"

	"gorm.io/gorm"
)

// Psp is a payment service provider. Code is derived from Name by the
// service (lowercased, spaces stripped) and is never client supplied.
//
// Password is stored and returned as plain text. That round-trip is part of
// the existing integration contract; do not hash it here without migrating
// the consumers first.
type Psp struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"not null;index"`
	Code          string         `json:"code" gorm:"not null;uniqueIndex"`
	CountryCode   *string        `json:"countryCode,omitempty" gorm:"size:2"`
	CurrencyCode  *string        `json:"currencyCode,omitempty" gorm:"size:3"`
	StatusID      uint           `json:"statusId" gorm:"not null;index"`
	ContactName   *string        `json:"contactName,omitempty"`
	ContactEmail  *string        `json:"contactEmail,omitempty"`
	ContactPhone  *string        `json:"contactPhone,omitempty"`
	BankName      *string        `json:"bankName,omitempty"`
	IBAN          *string        `json:"iban,omitempty"`
	AccountNumber *string        `json:"accountNumber,omitempty"`
	Password      *string        `json:"password,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	Status         *PspStatus         `json:"status,omitempty" gorm:"foreignKey:StatusID"`
	PaymentMethods []PspPaymentMethod `json:"paymentMethods,omitempty" gorm:"foreignKey:PspID"`
}

func (Psp) TableName() string {
	return "psps"
}

// CreatePspRequest represents a request to create a new PSP. Any submitted
// code is ignored; the service derives it from the name.
type CreatePspRequest struct {
	Name          string  `json:"name" binding:"required,max=190"`
	CountryCode   *string `json:"countryCode,omitempty" binding:"omitempty,len=2"`
	CurrencyCode  *string `json:"currencyCode,omitempty" binding:"omitempty,len=3"`
	StatusID      uint    `json:"statusId" binding:"required"`
	ContactName   *string `json:"contactName,omitempty" binding:"omitempty,max=190"`
	ContactEmail  *string `json:"contactEmail,omitempty" binding:"omitempty,email"`
	ContactPhone  *string `json:"contactPhone,omitempty" binding:"omitempty,max=32"`
	BankName      *string `json:"bankName,omitempty" binding:"omitempty,max=190"`
	IBAN          *string `json:"iban,omitempty" binding:"omitempty,max=34"`
	AccountNumber *string `json:"accountNumber,omitempty" binding:"omitempty,max=34"`
	Password      *string `json:"password,omitempty"`
}

// UpdatePspRequest represents a request to update a PSP. A nil password
// leaves the stored password untouched.
type UpdatePspRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,max=190"`
	CountryCode   *string `json:"countryCode,omitempty" binding:"omitempty,len=2"`
	CurrencyCode  *string `json:"currencyCode,omitempty" binding:"omitempty,len=3"`
	StatusID      *uint   `json:"statusId,omitempty"`
	ContactName   *string `json:"contactName,omitempty" binding:"omitempty,max=190"`
	ContactEmail  *string `json:"contactEmail,omitempty" binding:"omitempty,email"`
	ContactPhone  *string `json:"contactPhone,omitempty" binding:"omitempty,max=32"`
	BankName      *string `json:"bankName,omitempty" binding:"omitempty,max=190"`
	IBAN          *string `json:"iban,omitempty" binding:"omitempty,max=34"`
	AccountNumber *string `json:"accountNumber,omitempty" binding:"omitempty,max=34"`
	Password      *string `json:"password,omitempty"`
}

// PspFilters represents filters for PSP listings
type PspFilters struct {
	Name        string `form:"name"`
	Code        string `form:"code"`
	StatusID    string `form:"status_id"`
	CountryCode string `form:"country_code"`
}

// PspView is the client-facing PSP shape. Password is included on detail
// reads only, never in listings.
type PspView struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	CountryCode   *string   `json:"countryCode,omitempty"`
	CurrencyCode  *string   `json:"currencyCode,omitempty"`
	Status        *LabelRef `json:"status,omitempty"`
	ContactName   *string   `json:"contactName,omitempty"`
	ContactEmail  *string   `json:"contactEmail,omitempty"`
	ContactPhone  *string   `json:"contactPhone,omitempty"`
	BankName      *string   `json:"bankName,omitempty"`
	IBAN          *string   `json:"iban,omitempty"`
	AccountNumber *string   `json:"accountNumber,omitempty"`
	Password      *string   `json:"password,omitempty"`
	CreatedAt     string    `json:"createdAt"`
	UpdatedAt     string    `json:"updatedAt"`
}

// PspResponse represents a single PSP response
type PspResponse struct {
	Success bool     `json:"success"`
	Data    *PspView `json:"data"`
}

// PspListResponse represents a list of PSPs response
type PspListResponse struct {
	Success      bool            `json:"success"`
	Data         []PspView       `json:"data"`
	Pagination   *PaginationInfo `json:"pagination"`
	IndexVersion int64           `json:"indexVersion"`
}
