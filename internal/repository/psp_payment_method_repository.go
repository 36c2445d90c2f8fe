package repository

import (
	"errors"

	"gorm.io/gorm"

	"payment-config-service/internal/models"
)

var (
	ErrPspPaymentMethodNotFound = errors.New("psp payment method configuration not found")
	ErrDuplicateConfiguration   = errors.New("configuration already exists for this psp/method/merchant/invoice-type combination")
)

type PspPaymentMethodRepository interface {
	List(filters *models.PspPaymentMethodFilters, page, limit int) ([]models.PspPaymentMethod, *models.PaginationInfo, error)
	GetByID(id uint) (*models.PspPaymentMethod, error)
	Create(config *models.PspPaymentMethod) error
	CreateBatch(configs []*models.PspPaymentMethod) error
	Update(id uint, attrs map[string]interface{}) (*models.PspPaymentMethod, error)
	Delete(id uint, force bool) error
	Restore(id uint) (*models.PspPaymentMethod, error)
}

type pspPaymentMethodRepository struct {
	*CRUD[models.PspPaymentMethod]
}

func NewPspPaymentMethodRepository(db *gorm.DB) PspPaymentMethodRepository {
	return &pspPaymentMethodRepository{CRUD: NewCRUD[models.PspPaymentMethod](db)}
}

func (r *pspPaymentMethodRepository) List(filters *models.PspPaymentMethodFilters, page, limit int) ([]models.PspPaymentMethod, *models.PaginationInfo, error) {
	scopes := []Scope{
		Preload("Psp"),
		Preload("PaymentMethod"),
		Preload("Merchant"),
		Preload("InvoiceType"),
	}
	if filters != nil {
		scopes = append(scopes,
			FilterNumericEq("psp_id", filters.PspID),
			FilterNumericEq("payment_method_id", filters.PaymentMethodID),
			FilterNumericEq("merchant_id", filters.MerchantID),
			FilterNumericEq("invoice_type_id", filters.InvoiceTypeID),
		)
	}

	configs, total, err := r.Paginate(page, limit, scopes...)
	if err != nil {
		return nil, nil, err
	}
	return configs, paginationFor(page, limit, total), nil
}

func (r *pspPaymentMethodRepository) GetByID(id uint) (*models.PspPaymentMethod, error) {
	var config models.PspPaymentMethod
	err := r.DB().
		Preload("Psp").
		Preload("PaymentMethod").
		Preload("Merchant").
		Preload("InvoiceType").
		First(&config, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPspPaymentMethodNotFound
		}
		return nil, err
	}
	return &config, nil
}

func (r *pspPaymentMethodRepository) Create(config *models.PspPaymentMethod) error {
	if err := r.CRUD.Create(config); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return ErrDuplicateConfiguration
		}
		return err
	}
	return nil
}

// CreateBatch inserts every configuration in one transaction; one bad
// bundle rolls back the whole batch.
func (r *pspPaymentMethodRepository) CreateBatch(configs []*models.PspPaymentMethod) error {
	err := r.DB().Transaction(func(tx *gorm.DB) error {
		for _, config := range configs {
			if err := tx.Create(config).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(translate(err), ErrDuplicate) {
			return ErrDuplicateConfiguration
		}
		return err
	}
	return nil
}

func (r *pspPaymentMethodRepository) Update(id uint, attrs map[string]interface{}) (*models.PspPaymentMethod, error) {
	config, err := r.CRUD.Update(id, attrs)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, ErrPspPaymentMethodNotFound
		case errors.Is(err, ErrDuplicate):
			return nil, ErrDuplicateConfiguration
		}
		return nil, err
	}
	return r.GetByID(config.ID)
}

func (r *pspPaymentMethodRepository) Delete(id uint, force bool) error {
	if err := r.CRUD.Delete(id, force); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrPspPaymentMethodNotFound
		}
		return err
	}
	return nil
}

func (r *pspPaymentMethodRepository) Restore(id uint) (*models.PspPaymentMethod, error) {
	config, err := r.CRUD.Restore(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrPspPaymentMethodNotFound
		}
		return nil, err
	}
	return config, nil
}
