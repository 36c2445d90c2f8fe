package repository

import (
	"errors"

	"gorm.io/gorm"

	"payment-config-service/internal/models"
)

var (
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrDuplicateMethodCode   = errors.New("payment method code already exists")
)

type PaymentMethodRepository interface {
	List(filters *models.PaymentMethodFilters, page, limit int) ([]models.PaymentMethod, *models.PaginationInfo, error)
	All() ([]models.PaymentMethod, error)
	GetByID(id uint) (*models.PaymentMethod, error)
	GetByCode(code string) (*models.PaymentMethod, error)
	Create(method *models.PaymentMethod) error
	Update(id uint, attrs map[string]interface{}) (*models.PaymentMethod, error)
	Delete(id uint, force bool) error
	Restore(id uint) (*models.PaymentMethod, error)
}

type paymentMethodRepository struct {
	*CRUD[models.PaymentMethod]
}

func NewPaymentMethodRepository(db *gorm.DB) PaymentMethodRepository {
	return &paymentMethodRepository{CRUD: NewCRUD[models.PaymentMethod](db)}
}

func (r *paymentMethodRepository) List(filters *models.PaymentMethodFilters, page, limit int) ([]models.PaymentMethod, *models.PaginationInfo, error) {
	var scopes []Scope
	if filters != nil {
		scopes = append(scopes,
			FilterLike("description", filters.Description),
			FilterEq("code", filters.Code),
			FilterBool("is_one_time_payment", filters.IsOneTimePayment),
		)
	}

	methods, total, err := r.Paginate(page, limit, scopes...)
	if err != nil {
		return nil, nil, err
	}
	return methods, paginationFor(page, limit, total), nil
}

func (r *paymentMethodRepository) All() ([]models.PaymentMethod, error) {
	return r.CRUD.All()
}

func (r *paymentMethodRepository) GetByID(id uint) (*models.PaymentMethod, error) {
	method, err := r.FindByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrPaymentMethodNotFound
		}
		return nil, err
	}
	return method, nil
}

func (r *paymentMethodRepository) GetByCode(code string) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	err := r.DB().Where("code = ?", code).First(&method).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentMethodNotFound
		}
		return nil, err
	}
	return &method, nil
}

func (r *paymentMethodRepository) Create(method *models.PaymentMethod) error {
	if err := r.CRUD.Create(method); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return ErrDuplicateMethodCode
		}
		return err
	}
	return nil
}

func (r *paymentMethodRepository) Update(id uint, attrs map[string]interface{}) (*models.PaymentMethod, error) {
	method, err := r.CRUD.Update(id, attrs)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, ErrPaymentMethodNotFound
		case errors.Is(err, ErrDuplicate):
			return nil, ErrDuplicateMethodCode
		}
		return nil, err
	}
	return method, nil
}

func (r *paymentMethodRepository) Delete(id uint, force bool) error {
	if err := r.CRUD.Delete(id, force); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrPaymentMethodNotFound
		}
		return err
	}
	return nil
}

func (r *paymentMethodRepository) Restore(id uint) (*models.PaymentMethod, error) {
	method, err := r.CRUD.Restore(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrPaymentMethodNotFound
		}
		return nil, err
	}
	return method, nil
}
