package repository

import (
	"errors"

	"gorm.io/gorm"

	"payment-config-service/internal/models"
)

var (
	ErrBankNotFound       = errors.New("bank not found")
	ErrDuplicateSwiftCode = errors.New("swift code already exists")

	ErrPaymentNetworkNotFound = errors.New("payment network not found")
	ErrDuplicateNetworkName   = errors.New("payment network name already exists")
)

type BankRepository interface {
	List(filters *models.BankFilters, page, limit int) ([]models.Bank, *models.PaginationInfo, error)
	All() ([]models.Bank, error)
	GetByID(id uint) (*models.Bank, error)
	Create(bank *models.Bank) error
	Update(id uint, attrs map[string]interface{}) (*models.Bank, error)
	Delete(id uint, force bool) error
	Restore(id uint) (*models.Bank, error)
}

type bankRepository struct {
	*CRUD[models.Bank]
}

func NewBankRepository(db *gorm.DB) BankRepository {
	return &bankRepository{CRUD: NewCRUD[models.Bank](db)}
}

func (r *bankRepository) List(filters *models.BankFilters, page, limit int) ([]models.Bank, *models.PaginationInfo, error) {
	var scopes []Scope
	if filters != nil {
		scopes = append(scopes,
			FilterName("name_en", "name_ar", filters.Name),
			FilterEq("swift_code", filters.SwiftCode),
			FilterEq("country_code", filters.CountryCode),
			FilterBool("is_active", filters.IsActive),
		)
	}

	banks, total, err := r.Paginate(page, limit, scopes...)
	if err != nil {
		return nil, nil, err
	}
	return banks, paginationFor(page, limit, total), nil
}

func (r *bankRepository) All() ([]models.Bank, error) {
	return r.CRUD.All(FilterActive())
}

func (r *bankRepository) GetByID(id uint) (*models.Bank, error) {
	bank, err := r.FindByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrBankNotFound
		}
		return nil, err
	}
	return bank, nil
}

func (r *bankRepository) Create(bank *models.Bank) error {
	if err := r.CRUD.Create(bank); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return ErrDuplicateSwiftCode
		}
		return err
	}
	return nil
}

func (r *bankRepository) Update(id uint, attrs map[string]interface{}) (*models.Bank, error) {
	bank, err := r.CRUD.Update(id, attrs)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, ErrBankNotFound
		case errors.Is(err, ErrDuplicate):
			return nil, ErrDuplicateSwiftCode
		}
		return nil, err
	}
	return bank, nil
}

func (r *bankRepository) Delete(id uint, force bool) error {
	if err := r.CRUD.Delete(id, force); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrBankNotFound
		}
		return err
	}
	return nil
}

func (r *bankRepository) Restore(id uint) (*models.Bank, error) {
	bank, err := r.CRUD.Restore(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrBankNotFound
		}
		return nil, err
	}
	return bank, nil
}

type PaymentNetworkRepository interface {
	List(filters *models.PaymentNetworkFilters, page, limit int) ([]models.PaymentNetwork, *models.PaginationInfo, error)
	All() ([]models.PaymentNetwork, error)
	GetByID(id uint) (*models.PaymentNetwork, error)
	Create(network *models.PaymentNetwork) error
	Update(id uint, attrs map[string]interface{}) (*models.PaymentNetwork, error)
	Delete(id uint, force bool) error
	Restore(id uint) (*models.PaymentNetwork, error)
}

type paymentNetworkRepository struct {
	*CRUD[models.PaymentNetwork]
}

func NewPaymentNetworkRepository(db *gorm.DB) PaymentNetworkRepository {
	return &paymentNetworkRepository{CRUD: NewCRUD[models.PaymentNetwork](db)}
}

func (r *paymentNetworkRepository) List(filters *models.PaymentNetworkFilters, page, limit int) ([]models.PaymentNetwork, *models.PaginationInfo, error) {
	var scopes []Scope
	if filters != nil {
		scopes = append(scopes,
			FilterLike("name", filters.Name),
			FilterBool("is_active", filters.IsActive),
		)
		// Tag lookup goes against the text[] column; done here rather
		// than in filters.go because it is postgres-specific.
		if tag := filters.Tag; tag != "" {
			scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
				return db.Where("? = ANY(tags)", tag)
			})
		}
	}

	networks, total, err := r.Paginate(page, limit, scopes...)
	if err != nil {
		return nil, nil, err
	}
	return networks, paginationFor(page, limit, total), nil
}

func (r *paymentNetworkRepository) All() ([]models.PaymentNetwork, error) {
	return r.CRUD.All(FilterActive())
}

func (r *paymentNetworkRepository) GetByID(id uint) (*models.PaymentNetwork, error) {
	network, err := r.FindByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrPaymentNetworkNotFound
		}
		return nil, err
	}
	return network, nil
}

func (r *paymentNetworkRepository) Create(network *models.PaymentNetwork) error {
	if err := r.CRUD.Create(network); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return ErrDuplicateNetworkName
		}
		return err
	}
	return nil
}

func (r *paymentNetworkRepository) Update(id uint, attrs map[string]interface{}) (*models.PaymentNetwork, error) {
	network, err := r.CRUD.Update(id, attrs)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, ErrPaymentNetworkNotFound
		case errors.Is(err, ErrDuplicate):
			return nil, ErrDuplicateNetworkName
		}
		return nil, err
	}
	return network, nil
}

func (r *paymentNetworkRepository) Delete(id uint, force bool) error {
	if err := r.CRUD.Delete(id, force); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrPaymentNetworkNotFound
		}
		return err
	}
	return nil
}

func (r *paymentNetworkRepository) Restore(id uint) (*models.PaymentNetwork, error) {
	network, err := r.CRUD.Restore(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrPaymentNetworkNotFound
		}
		return nil, err
	}
	return network, nil
}
