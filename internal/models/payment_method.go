package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentMethod is a way of paying (card, wallet, transfer...). Code is
// derived from Description when not supplied.
type PaymentMethod struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	Description      string         `json:"description" gorm:"not null"`
	Code             string         `json:"code" gorm:"not null;uniqueIndex"`
	LogoPath         *string        `json:"logoPath,omitempty"`
	IsOneTimePayment bool           `json:"isOneTimePayment" gorm:"default:false"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

func (PaymentMethod) TableName() string {
	return "payment_methods"
}

// PspPaymentMethod configures one payment method under a PSP, optionally
// scoped to a merchant and invoice type. The four-column combination is
// unique.
type PspPaymentMethod struct {
	ID                uint              `json:"id" gorm:"primaryKey"`
	PspID             uint              `json:"pspId" gorm:"not null;uniqueIndex:idx_psp_pm_scope,priority:1"`
	PaymentMethodID   uint              `json:"paymentMethodId" gorm:"not null;uniqueIndex:idx_psp_pm_scope,priority:2"`
	MerchantID        *uint             `json:"merchantId,omitempty" gorm:"uniqueIndex:idx_psp_pm_scope,priority:3"`
	InvoiceTypeID     *uint             `json:"invoiceTypeId,omitempty" gorm:"uniqueIndex:idx_psp_pm_scope,priority:4"`
	RefundOption      RefundOption      `json:"refundOptionId" gorm:"not null;default:1"`
	PayoutModel       PayoutModel       `json:"payoutModelId" gorm:"not null;default:1"`
	SubscriptionModel SubscriptionModel `json:"subscriptionModelId" gorm:"not null;default:1"`
	FeesType          FeesType          `json:"feesTypeId" gorm:"not null;default:1"`
	SupportsRefund    bool              `json:"supportsRefund" gorm:"default:false"`
	SupportsPartial   bool              `json:"supportsPartial" gorm:"default:false"`
	SupportsRecurring bool              `json:"supportsRecurring" gorm:"default:false"`
	FeeFixed          float64           `json:"feeFixed" gorm:"default:0"`
	FeePercent        float64           `json:"feePercent" gorm:"default:0"`
	MinAmount         float64           `json:"minAmount" gorm:"default:0"`
	MaxAmount         float64           `json:"maxAmount" gorm:"default:0"`
	Config            datatypes.JSON    `json:"config,omitempty"`
	TestConfig        datatypes.JSON    `json:"testConfig,omitempty"`
	CreatedBy         *string           `json:"createdBy,omitempty"`
	UpdatedBy         *string           `json:"updatedBy,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
	DeletedAt         gorm.DeletedAt    `json:"deletedAt,omitempty" gorm:"index"`

	Psp           *Psp           `json:"psp,omitempty" gorm:"foreignKey:PspID"`
	PaymentMethod *PaymentMethod `json:"paymentMethod,omitempty" gorm:"foreignKey:PaymentMethodID"`
	Merchant      *Merchant      `json:"merchant,omitempty" gorm:"foreignKey:MerchantID"`
	InvoiceType   *InvoiceType   `json:"invoiceType,omitempty" gorm:"foreignKey:InvoiceTypeID"`
}

func (PspPaymentMethod) TableName() string {
	return "psp_payment_methods"
}

// CreatePaymentMethodRequest represents a request to create a payment method
type CreatePaymentMethodRequest struct {
	Description      string      `json:"description" binding:"required,max=190"`
	Code             *string     `json:"code,omitempty" binding:"omitempty,max=64"`
	Logo             *FileUpload `json:"logo,omitempty"`
	IsOneTimePayment bool        `json:"isOneTimePayment"`
}

// UpdatePaymentMethodRequest represents a request to update a payment method
type UpdatePaymentMethodRequest struct {
	Description      *string     `json:"description,omitempty" binding:"omitempty,max=190"`
	Code             *string     `json:"code,omitempty" binding:"omitempty,max=64"`
	Logo             *FileUpload `json:"logo,omitempty"`
	IsOneTimePayment *bool       `json:"isOneTimePayment,omitempty"`
}

// PaymentMethodFilters represents filters for payment method listings
type PaymentMethodFilters struct {
	Description      string `form:"description"`
	Code             string `form:"code"`
	IsOneTimePayment *bool  `form:"is_one_time_payment"`
}

// PaymentMethodConfig is one config bundle inside a batch request.
// Optional foreign keys arrive from the admin UI as strings so that the
// ""/"null" sentinels can be told apart from real ids.
type PaymentMethodConfig struct {
	PaymentMethodID   uint              `json:"paymentMethodId" binding:"required"`
	MerchantID        FlexibleID        `json:"merchantId,omitempty"`
	InvoiceTypeID     FlexibleID        `json:"invoiceTypeId,omitempty"`
	RefundOption      RefundOption      `json:"refundOptionId" binding:"required"`
	PayoutModel       PayoutModel       `json:"payoutModelId" binding:"required"`
	SubscriptionModel SubscriptionModel `json:"subscriptionModelId" binding:"required"`
	FeesType          FeesType          `json:"feesTypeId" binding:"required"`
	SupportsRefund    bool              `json:"supportsRefund"`
	SupportsPartial   bool              `json:"supportsPartial"`
	SupportsRecurring bool              `json:"supportsRecurring"`
	FeeFixed          float64           `json:"feeFixed" binding:"omitempty,min=0"`
	FeePercent        float64           `json:"feePercent" binding:"omitempty,min=0,max=100"`
	MinAmount         float64           `json:"minAmount" binding:"omitempty,min=0"`
	MaxAmount         float64           `json:"maxAmount" binding:"omitempty,min=0"`
	Config            datatypes.JSON    `json:"config,omitempty"`
	TestConfig        datatypes.JSON    `json:"testConfig,omitempty"`
}

// CreatePspPaymentMethodRequest accepts either a single flat config for one
// payment method or a batch of config bundles in PaymentMethodsConfig. When
// the batch is present and non-empty the flat fields are ignored entirely.
type CreatePspPaymentMethodRequest struct {
	PspID uint `json:"pspId" binding:"required"`

	// Flat shape. Required only when PaymentMethodsConfig is absent;
	// the service validates that, not the binding layer.
	PaymentMethodID   *uint             `json:"paymentMethodId,omitempty"`
	MerchantID        FlexibleID        `json:"merchantId,omitempty"`
	InvoiceTypeID     FlexibleID        `json:"invoiceTypeId,omitempty"`
	RefundOption      RefundOption      `json:"refundOptionId,omitempty"`
	PayoutModel       PayoutModel       `json:"payoutModelId,omitempty"`
	SubscriptionModel SubscriptionModel `json:"subscriptionModelId,omitempty"`
	FeesType          FeesType          `json:"feesTypeId,omitempty"`
	SupportsRefund    bool              `json:"supportsRefund"`
	SupportsPartial   bool              `json:"supportsPartial"`
	SupportsRecurring bool              `json:"supportsRecurring"`
	FeeFixed          float64           `json:"feeFixed"`
	FeePercent        float64           `json:"feePercent"`
	MinAmount         float64           `json:"minAmount"`
	MaxAmount         float64           `json:"maxAmount"`
	Config            datatypes.JSON    `json:"config,omitempty"`
	TestConfig        datatypes.JSON    `json:"testConfig,omitempty"`

	// Batch shape.
	PaymentMethodsConfig []PaymentMethodConfig `json:"payment_methods_config,omitempty"`
}

// UpdatePspPaymentMethodRequest represents a request to update one PSP
// payment method configuration.
type UpdatePspPaymentMethodRequest struct {
	RefundOption      *RefundOption      `json:"refundOptionId,omitempty"`
	PayoutModel       *PayoutModel       `json:"payoutModelId,omitempty"`
	SubscriptionModel *SubscriptionModel `json:"subscriptionModelId,omitempty"`
	FeesType          *FeesType          `json:"feesTypeId,omitempty"`
	SupportsRefund    *bool              `json:"supportsRefund,omitempty"`
	SupportsPartial   *bool              `json:"supportsPartial,omitempty"`
	SupportsRecurring *bool              `json:"supportsRecurring,omitempty"`
	FeeFixed          *float64           `json:"feeFixed,omitempty" binding:"omitempty,min=0"`
	FeePercent        *float64           `json:"feePercent,omitempty" binding:"omitempty,min=0,max=100"`
	MinAmount         *float64           `json:"minAmount,omitempty" binding:"omitempty,min=0"`
	MaxAmount         *float64           `json:"maxAmount,omitempty" binding:"omitempty,min=0"`
	Config            datatypes.JSON     `json:"config,omitempty"`
	TestConfig        datatypes.JSON     `json:"testConfig,omitempty"`
}

// PspPaymentMethodFilters represents filters for configuration listings
type PspPaymentMethodFilters struct {
	PspID           string `form:"psp_id"`
	PaymentMethodID string `form:"payment_method_id"`
	MerchantID      string `form:"merchant_id"`
	InvoiceTypeID   string `form:"invoice_type_id"`
}

// PspPaymentMethodView resolves the configuration's enums and relations.
type PspPaymentMethodView struct {
	ID                uint           `json:"id"`
	Psp               *LabelRef      `json:"psp,omitempty"`
	PaymentMethod     *LabelRef      `json:"paymentMethod,omitempty"`
	Merchant          *LabelRef      `json:"merchant,omitempty"`
	InvoiceType       *LabelRef      `json:"invoiceType,omitempty"`
	RefundOption      LabelRef       `json:"refundOption"`
	PayoutModel       LabelRef       `json:"payoutModel"`
	SubscriptionModel LabelRef       `json:"subscriptionModel"`
	FeesType          LabelRef       `json:"feesType"`
	SupportsRefund    bool           `json:"supportsRefund"`
	SupportsPartial   bool           `json:"supportsPartial"`
	SupportsRecurring bool           `json:"supportsRecurring"`
	FeeFixed          float64        `json:"feeFixed"`
	FeePercent        float64        `json:"feePercent"`
	MinAmount         float64        `json:"minAmount"`
	MaxAmount         float64        `json:"maxAmount"`
	Config            datatypes.JSON `json:"config,omitempty"`
	TestConfig        datatypes.JSON `json:"testConfig,omitempty"`
	CreatedBy         *string        `json:"createdBy,omitempty"`
	UpdatedBy         *string        `json:"updatedBy,omitempty"`
	CreatedAt         string         `json:"createdAt"`
	UpdatedAt         string         `json:"updatedAt"`
}

// PaymentMethodResponse represents a single payment method response
type PaymentMethodResponse struct {
	Success bool           `json:"success"`
	Data    *PaymentMethod `json:"data"`
}

// PaymentMethodListResponse represents a list of payment methods response
type PaymentMethodListResponse struct {
	Success    bool            `json:"success"`
	Data       []PaymentMethod `json:"data"`
	Pagination *PaginationInfo `json:"pagination"`
}

// PspPaymentMethodResponse represents a single configuration response
type PspPaymentMethodResponse struct {
	Success bool                  `json:"success"`
	Data    *PspPaymentMethodView `json:"data"`
}

// PspPaymentMethodBatchResponse is returned for batch creates.
type PspPaymentMethodBatchResponse struct {
	Success bool                   `json:"success"`
	Data    []PspPaymentMethodView `json:"data"`
}

// PspPaymentMethodListResponse represents a list of configurations response
type PspPaymentMethodListResponse struct {
	Success    bool                   `json:"success"`
	Data       []PspPaymentMethodView `json:"data"`
	Pagination *PaginationInfo        `json:"pagination"`
}
