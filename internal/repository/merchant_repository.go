package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"payment-config-service/internal/models"
)

var (
	ErrMerchantNotFound  = errors.New("merchant not found")
	ErrDuplicateReferral = errors.New("referral id already used for this product")
)

type MerchantRepository interface {
	List(filters *models.MerchantFilters, page, limit int) ([]models.Merchant, *models.PaginationInfo, error)
	GetByID(id uint) (*models.Merchant, error)
	GetByReferral(productID uint, referralID string) (*models.Merchant, error)
	CreateWithSetting(merchant *models.Merchant, setting *models.MerchantSetting, invoiceTypeIDs []uint) error
	UpdateWithSetting(id uint, attrs map[string]interface{}, setting *models.MerchantSetting, invoiceTypeIDs []uint) (*models.Merchant, error)
	Delete(id uint, force bool) error
	Restore(id uint) (*models.Merchant, error)
}

type merchantRepository struct {
	*CRUD[models.Merchant]
}

func NewMerchantRepository(db *gorm.DB) MerchantRepository {
	return &merchantRepository{CRUD: NewCRUD[models.Merchant](db)}
}

func (r *merchantRepository) List(filters *models.MerchantFilters, page, limit int) ([]models.Merchant, *models.PaginationInfo, error) {
	scopes := []Scope{
		Preload("Product"),
		Preload("Status"),
		Preload("Setting"),
	}
	if filters != nil {
		scopes = append(scopes,
			FilterName("name_en", "name_ar", filters.Name),
			FilterNumericEq("product_id", filters.ProductID),
			FilterNumericEq("status_id", filters.StatusID),
			FilterEq("referral_id", filters.ReferralID),
			FilterBool("is_live", filters.IsLive),
		)
	}

	merchants, total, err := r.Paginate(page, limit, scopes...)
	if err != nil {
		return nil, nil, err
	}
	return merchants, paginationFor(page, limit, total), nil
}

func (r *merchantRepository) GetByID(id uint) (*models.Merchant, error) {
	var merchant models.Merchant
	err := r.DB().
		Preload("Product").
		Preload("Status").
		Preload("Parent").
		Preload("Setting").
		Preload("Setting.Bank").
		Preload("Invoices").
		Preload("Invoices.InvoiceType").
		First(&merchant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, err
	}
	return &merchant, nil
}

func (r *merchantRepository) GetByReferral(productID uint, referralID string) (*models.Merchant, error) {
	var merchant models.Merchant
	err := r.DB().
		Where("product_id = ? AND referral_id = ?", productID, referralID).
		First(&merchant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, err
	}
	return &merchant, nil
}

// CreateWithSetting inserts the merchant, its settings row and its invoice
// type links in one transaction. Any failure rolls everything back.
func (r *merchantRepository) CreateWithSetting(merchant *models.Merchant, setting *models.MerchantSetting, invoiceTypeIDs []uint) error {
	err := r.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(merchant).Error; err != nil {
			return err
		}

		setting.MerchantID = merchant.ID
		if err := tx.Create(setting).Error; err != nil {
			return err
		}

		return syncInvoiceLinks(tx, merchant.ID, invoiceTypeIDs, false)
	})
	if err != nil {
		return translate(err)
	}
	return nil
}

// UpdateWithSetting updates the merchant row and upserts its settings in
// one transaction. A nil setting leaves the existing settings untouched;
// nil invoiceTypeIDs leaves the links untouched.
func (r *merchantRepository) UpdateWithSetting(id uint, attrs map[string]interface{}, setting *models.MerchantSetting, invoiceTypeIDs []uint) (*models.Merchant, error) {
	err := r.DB().Transaction(func(tx *gorm.DB) error {
		var merchant models.Merchant
		if err := tx.First(&merchant, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMerchantNotFound
			}
			return err
		}

		if len(attrs) > 0 {
			if err := tx.Model(&merchant).Updates(attrs).Error; err != nil {
				return err
			}
		}

		if setting != nil {
			setting.MerchantID = id
			var existing models.MerchantSetting
			err := tx.Where("merchant_id = ?", id).First(&existing).Error
			switch {
			case err == nil:
				setting.ID = existing.ID
				setting.CreatedAt = existing.CreatedAt
				if err := tx.Save(setting).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(setting).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}

		if invoiceTypeIDs != nil {
			return syncInvoiceLinks(tx, id, invoiceTypeIDs, true)
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return r.GetByID(id)
}

func (r *merchantRepository) Delete(id uint, force bool) error {
	if err := r.CRUD.Delete(id, force); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrMerchantNotFound
		}
		return err
	}
	return nil
}

func (r *merchantRepository) Restore(id uint) (*models.Merchant, error) {
	merchant, err := r.CRUD.Restore(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, err
	}
	return merchant, nil
}

// syncInvoiceLinks upserts the listed invoice type links for a merchant.
// When prune is true, links for types outside the list are removed.
func syncInvoiceLinks(tx *gorm.DB, merchantID uint, invoiceTypeIDs []uint, prune bool) error {
	for _, typeID := range invoiceTypeIDs {
		var link models.MerchantInvoice
		err := tx.Unscoped().
			Where("merchant_id = ? AND invoice_type_id = ?", merchantID, typeID).
			First(&link).Error
		switch {
		case err == nil:
			if link.DeletedAt.Valid {
				if err := tx.Unscoped().
					Model(&link).
					Update("deleted_at", nil).Error; err != nil {
					return err
				}
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			link = models.MerchantInvoice{MerchantID: merchantID, InvoiceTypeID: typeID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		default:
			return err
		}
	}

	if prune && len(invoiceTypeIDs) > 0 {
		if err := tx.Where("merchant_id = ? AND invoice_type_id NOT IN ?", merchantID, invoiceTypeIDs).
			Delete(&models.MerchantInvoice{}).Error; err != nil {
			return err
		}
	}
	return nil
}

// ErrMissingMerchantScope guards bulk deletes against running unscoped.
var ErrMissingMerchantScope = fmt.Errorf("merchant scope is required for bulk invoice operations")

type MerchantInvoiceRepository interface {
	ListByMerchant(merchantID uint) ([]models.MerchantInvoice, error)
	BulkUpsert(merchantID uint, invoiceTypeIDs []uint) error
	DeleteExcept(merchantID uint, keepInvoiceTypeIDs []uint) (int64, error)
}

type merchantInvoiceRepository struct {
	*CRUD[models.MerchantInvoice]
}

func NewMerchantInvoiceRepository(db *gorm.DB) MerchantInvoiceRepository {
	return &merchantInvoiceRepository{CRUD: NewCRUD[models.MerchantInvoice](db)}
}

func (r *merchantInvoiceRepository) ListByMerchant(merchantID uint) ([]models.MerchantInvoice, error) {
	var links []models.MerchantInvoice
	err := r.DB().
		Where("merchant_id = ?", merchantID).
		Preload("InvoiceType").
		Order("invoice_type_id ASC").
		Find(&links).Error
	return links, err
}

// BulkUpsert links the listed invoice types to the merchant, restoring
// soft-deleted rows instead of violating the composite unique index.
func (r *merchantInvoiceRepository) BulkUpsert(merchantID uint, invoiceTypeIDs []uint) error {
	if merchantID == 0 {
		return ErrMissingMerchantScope
	}
	return r.DB().Transaction(func(tx *gorm.DB) error {
		return syncInvoiceLinks(tx, merchantID, invoiceTypeIDs, false)
	})
}

// DeleteExcept removes the merchant's links whose invoice type is NOT in
// the keep list. An empty merchant scope deletes nothing.
func (r *merchantInvoiceRepository) DeleteExcept(merchantID uint, keepInvoiceTypeIDs []uint) (int64, error) {
	if merchantID == 0 {
		return 0, ErrMissingMerchantScope
	}

	query := r.DB().Where("merchant_id = ?", merchantID)
	if len(keepInvoiceTypeIDs) > 0 {
		query = query.Where("invoice_type_id NOT IN ?", keepInvoiceTypeIDs)
	}

	result := query.Delete(&models.MerchantInvoice{})
	return result.RowsAffected, result.Error
}
