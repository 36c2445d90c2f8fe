package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Merchant is a business configured to accept payments through the
// platform. ReferralID is unique within a product, enforced by a composite
// unique index so concurrent creates are serialized by the database.
type Merchant struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	NameEn         string         `json:"nameEn" gorm:"not null;index"`
	NameAr         string         `json:"nameAr" gorm:"index"`
	ProductID      uint           `json:"productId" gorm:"not null;uniqueIndex:idx_product_referral,priority:1"`
	ReferralID     string         `json:"referralId" gorm:"not null;uniqueIndex:idx_product_referral,priority:2"`
	ParentID       *uint          `json:"parentId,omitempty" gorm:"index"`
	StatusID       uint           `json:"statusId" gorm:"not null;index"`
	LogoPath       *string        `json:"logoPath,omitempty"`
	AttachmentPath *string        `json:"attachmentPath,omitempty"`
	IsLive         bool           `json:"isLive" gorm:"default:false"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	Product  *Product          `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Status   *MerchantStatus   `json:"status,omitempty" gorm:"foreignKey:StatusID"`
	Parent   *Merchant         `json:"parent,omitempty" gorm:"foreignKey:ParentID"`
	Setting  *MerchantSetting  `json:"setting,omitempty" gorm:"foreignKey:MerchantID"`
	Invoices []MerchantInvoice `json:"invoices,omitempty" gorm:"foreignKey:MerchantID"`
}

func (Merchant) TableName() string {
	return "merchants"
}

// MerchantSetting is the 1:1 child of a merchant. MerchantID carries a
// unique index so a second settings row for the same merchant can never be
// inserted; the service upserts instead.
type MerchantSetting struct {
	ID                  uint           `json:"id" gorm:"primaryKey"`
	MerchantID          uint           `json:"merchantId" gorm:"not null;uniqueIndex"`
	PayoutModel         PayoutModel    `json:"payoutModel" gorm:"not null;default:1"`
	BankID              *uint          `json:"bankId,omitempty"`
	IBAN                *string        `json:"iban,omitempty"`
	AccountNumber       *string        `json:"accountNumber,omitempty"`
	OrderType           OrderType      `json:"orderType" gorm:"not null;default:1"`
	HasCustomURLs       bool           `json:"hasCustomUrls" gorm:"default:false"`
	URLsSettings        datatypes.JSON `json:"urlsSettings,omitempty"`
	IsEnableSMS         bool           `json:"isEnableSmsNotification" gorm:"column:is_enable_sms_notification;default:false"`
	IsEnableEmail       bool           `json:"isEnableEmailNotification" gorm:"column:is_enable_email_notification;default:false"`
	MonthlySMSLimit     int            `json:"monthlySms" gorm:"column:monthly_sms;default:0"`
	DailySMSLimit       int            `json:"dailySms" gorm:"column:daily_sms;default:0"`
	MonthlySMSConsumed  int            `json:"monthlySmsConsumed" gorm:"default:0"`
	DailySMSConsumed    int            `json:"dailySmsConsumed" gorm:"default:0"`
	CountryCode         *string        `json:"countryCode,omitempty" gorm:"size:2"`
	CurrencyCode        *string        `json:"currencyCode,omitempty" gorm:"size:3"`
	TermsAndConditionID *uint          `json:"termsAndConditionId,omitempty"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`

	Bank *Bank `json:"bank,omitempty" gorm:"foreignKey:BankID"`
}

func (MerchantSetting) TableName() string {
	return "merchant_settings"
}

// MerchantInvoice links a merchant to an invoice type. The pair is unique;
// rows are soft-deletable like the parent.
type MerchantInvoice struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	MerchantID    uint           `json:"merchantId" gorm:"not null;uniqueIndex:idx_merchant_invoice_type,priority:1"`
	InvoiceTypeID uint           `json:"invoiceTypeId" gorm:"not null;uniqueIndex:idx_merchant_invoice_type,priority:2"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	InvoiceType *InvoiceType `json:"invoiceType,omitempty" gorm:"foreignKey:InvoiceTypeID"`
}

func (MerchantInvoice) TableName() string {
	return "merchant_invoices"
}

// MerchantSettingPayload is the settings sub-object accepted on merchant
// create/update.
type MerchantSettingPayload struct {
	PayoutModel         PayoutModel    `json:"payoutModel" binding:"required"`
	BankID              *uint          `json:"bankId,omitempty"`
	IBAN                *string        `json:"iban,omitempty" binding:"omitempty,max=34"`
	AccountNumber       *string        `json:"accountNumber,omitempty" binding:"omitempty,max=34"`
	OrderType           OrderType      `json:"orderType" binding:"required"`
	HasCustomURLs       bool           `json:"hasCustomUrls"`
	URLsSettings        datatypes.JSON `json:"urlsSettings,omitempty"`
	IsEnableSMS         bool           `json:"isEnableSmsNotification"`
	IsEnableEmail       bool           `json:"isEnableEmailNotification"`
	MonthlySMSLimit     int            `json:"monthlySms" binding:"omitempty,min=0"`
	DailySMSLimit       int            `json:"dailySms" binding:"omitempty,min=0"`
	MonthlySMSConsumed  int            `json:"monthlySmsConsumed" binding:"omitempty,min=0"`
	DailySMSConsumed    int            `json:"dailySmsConsumed" binding:"omitempty,min=0"`
	CountryCode         *string        `json:"countryCode,omitempty" binding:"omitempty,len=2"`
	CurrencyCode        *string        `json:"currencyCode,omitempty" binding:"omitempty,len=3"`
	TermsAndConditionID *uint          `json:"termsAndConditionId,omitempty"`
}

// CreateMerchantRequest represents a request to create a new merchant
type CreateMerchantRequest struct {
	NameEn         string                  `json:"nameEn" binding:"required,max=190"`
	NameAr         string                  `json:"nameAr" binding:"max=190"`
	ProductID      uint                    `json:"productId" binding:"required"`
	ReferralID     string                  `json:"referralId" binding:"required,max=64"`
	ParentID       *uint                   `json:"parentId,omitempty"`
	StatusID       uint                    `json:"statusId" binding:"required"`
	IsLive         bool                    `json:"isLive"`
	Logo           *FileUpload             `json:"logo,omitempty"`
	Attachment     *FileUpload             `json:"attachment,omitempty"`
	Setting        *MerchantSettingPayload `json:"setting" binding:"required"`
	InvoiceTypeIDs []uint                  `json:"invoiceTypeIds,omitempty"`
}

// UpdateMerchantRequest represents a request to update a merchant
type UpdateMerchantRequest struct {
	NameEn         *string                 `json:"nameEn,omitempty" binding:"omitempty,max=190"`
	NameAr         *string                 `json:"nameAr,omitempty" binding:"omitempty,max=190"`
	ReferralID     *string                 `json:"referralId,omitempty" binding:"omitempty,max=64"`
	ParentID       *uint                   `json:"parentId,omitempty"`
	StatusID       *uint                   `json:"statusId,omitempty"`
	IsLive         *bool                   `json:"isLive,omitempty"`
	Logo           *FileUpload             `json:"logo,omitempty"`
	Attachment     *FileUpload             `json:"attachment,omitempty"`
	Setting        *MerchantSettingPayload `json:"setting,omitempty"`
	InvoiceTypeIDs []uint                  `json:"invoiceTypeIds,omitempty"`
}

// FileUpload is an inline base64 file payload for logo/attachment fields.
type FileUpload struct {
	FileName string `json:"fileName" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// MerchantFilters represents filters for merchant listings
type MerchantFilters struct {
	Name       string `form:"name"`
	ProductID  string `form:"product_id"`
	StatusID   string `form:"status_id"`
	ReferralID string `form:"referral_id"`
	IsLive     *bool  `form:"is_live"`
}

// MerchantSettingView is the resolved settings projection.
type MerchantSettingView struct {
	ID                  uint           `json:"id"`
	PayoutModel         LabelRef       `json:"payoutModel"`
	OrderType           LabelRef       `json:"orderType"`
	Bank                *LabelRef      `json:"bank,omitempty"`
	IBAN                *string        `json:"iban,omitempty"`
	AccountNumber       *string        `json:"accountNumber,omitempty"`
	HasCustomURLs       bool           `json:"hasCustomUrls"`
	URLsSettings        datatypes.JSON `json:"urlsSettings,omitempty"`
	IsEnableSMS         bool           `json:"isEnableSmsNotification"`
	IsEnableEmail       bool           `json:"isEnableEmailNotification"`
	MonthlySMSLimit     int            `json:"monthlySms"`
	DailySMSLimit       int            `json:"dailySms"`
	MonthlySMSConsumed  int            `json:"monthlySmsConsumed"`
	DailySMSConsumed    int            `json:"dailySmsConsumed"`
	CountryCode         *string        `json:"countryCode,omitempty"`
	CurrencyCode        *string        `json:"currencyCode,omitempty"`
	TermsAndConditionID *uint          `json:"termsAndConditionId,omitempty"`
}

// MerchantView is the client-facing merchant shape: foreign keys resolved
// to labels, enums resolved to strings, timestamps in the fixed format.
// Nested objects are nil when the relation was not fetched.
type MerchantView struct {
	ID             uint                 `json:"id"`
	NameEn         string               `json:"nameEn"`
	NameAr         string               `json:"nameAr"`
	ReferralID     string               `json:"referralId"`
	IsLive         bool                 `json:"isLive"`
	LogoPath       *string              `json:"logoPath,omitempty"`
	AttachmentPath *string              `json:"attachmentPath,omitempty"`
	Product        *LabelRef            `json:"product,omitempty"`
	Status         *LabelRef            `json:"status,omitempty"`
	Parent         *LabelRef            `json:"parent,omitempty"`
	Setting        *MerchantSettingView `json:"setting,omitempty"`
	InvoiceTypes   []LabelRef           `json:"invoiceTypes,omitempty"`
	CreatedAt      string               `json:"createdAt"`
	UpdatedAt      string               `json:"updatedAt"`
}

// MerchantResponse represents a single merchant response
type MerchantResponse struct {
	Success bool          `json:"success"`
	Data    *MerchantView `json:"data"`
}

// MerchantListResponse represents a list of merchants response
type MerchantListResponse struct {
	Success    bool            `json:"success"`
	Data       []MerchantView  `json:"data"`
	Pagination *PaginationInfo `json:"pagination"`
}

// SyncMerchantInvoicesRequest replaces a merchant's invoice-type links:
// listed types are upserted, everything else for the merchant is removed.
type SyncMerchantInvoicesRequest struct {
	InvoiceTypeIDs []uint `json:"invoiceTypeIds" binding:"required,min=1"`
}
