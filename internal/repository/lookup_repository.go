package repository

import (
	"errors"

	"gorm.io/gorm"

	"payment-config-service/internal/models"
)

var (
	ErrInvoiceTypeNotFound = errors.New("invoice type not found")
	ErrMessageTypeNotFound = errors.New("message type not found")
	ErrTermsNotFound       = errors.New("terms and conditions version not found")
	ErrDuplicateVersion    = errors.New("terms and conditions version already exists")
)

// LookupRepository serves the read-only reference tables that back
// dropdowns. Rows come from seed data and migrations, never from API
// writes, so it only reads.
type LookupRepository interface {
	Countries() ([]models.Country, error)
	Currencies() ([]models.Currency, error)
	Languages() ([]models.Language, error)
	MerchantStatuses() ([]models.MerchantStatus, error)
	PspStatuses() ([]models.PspStatus, error)
	UserStatuses() ([]models.UserStatus, error)
}

type lookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) LookupRepository {
	return &lookupRepository{db: db}
}

func allActive[T any](db *gorm.DB) ([]T, error) {
	var rows []T
	err := db.Where("is_active = ?", true).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *lookupRepository) Countries() ([]models.Country, error) {
	return allActive[models.Country](r.db)
}

func (r *lookupRepository) Currencies() ([]models.Currency, error) {
	return allActive[models.Currency](r.db)
}

func (r *lookupRepository) Languages() ([]models.Language, error) {
	return allActive[models.Language](r.db)
}

func (r *lookupRepository) MerchantStatuses() ([]models.MerchantStatus, error) {
	return allActive[models.MerchantStatus](r.db)
}

func (r *lookupRepository) PspStatuses() ([]models.PspStatus, error) {
	return allActive[models.PspStatus](r.db)
}

func (r *lookupRepository) UserStatuses() ([]models.UserStatus, error) {
	return allActive[models.UserStatus](r.db)
}

// InvoiceTypeRepository manages the editable invoice type reference table.
type InvoiceTypeRepository interface {
	List(filters *models.ReferenceFilters, page, limit int) ([]models.InvoiceType, *models.PaginationInfo, error)
	All() ([]models.InvoiceType, error)
	GetByID(id uint) (*models.InvoiceType, error)
	Create(invoiceType *models.InvoiceType) error
	Update(id uint, attrs map[string]interface{}) (*models.InvoiceType, error)
	Delete(id uint, force bool) error
	Restore(id uint) (*models.InvoiceType, error)
}

type invoiceTypeRepository struct {
	*CRUD[models.InvoiceType]
}

func NewInvoiceTypeRepository(db *gorm.DB) InvoiceTypeRepository {
	return &invoiceTypeRepository{CRUD: NewCRUD[models.InvoiceType](db)}
}

func (r *invoiceTypeRepository) List(filters *models.ReferenceFilters, page, limit int) ([]models.InvoiceType, *models.PaginationInfo, error) {
	types, total, err := r.Paginate(page, limit, referenceScopes(filters)...)
	if err != nil {
		return nil, nil, err
	}
	return types, paginationFor(page, limit, total), nil
}

func (r *invoiceTypeRepository) All() ([]models.InvoiceType, error) {
	return r.CRUD.All(FilterActive())
}

func (r *invoiceTypeRepository) GetByID(id uint) (*models.InvoiceType, error) {
	invoiceType, err := r.FindByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvoiceTypeNotFound
		}
		return nil, err
	}
	return invoiceType, nil
}

func (r *invoiceTypeRepository) Update(id uint, attrs map[string]interface{}) (*models.InvoiceType, error) {
	invoiceType, err := r.CRUD.Update(id, attrs)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvoiceTypeNotFound
		}
		return nil, err
	}
	return invoiceType, nil
}

func (r *invoiceTypeRepository) Delete(id uint, force bool) error {
	if err := r.CRUD.Delete(id, force); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrInvoiceTypeNotFound
		}
		return err
	}
	return nil
}

func (r *invoiceTypeRepository) Restore(id uint) (*models.InvoiceType, error) {
	invoiceType, err := r.CRUD.Restore(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvoiceTypeNotFound
		}
		return nil, err
	}
	return invoiceType, nil
}

// MessageTypeRepository manages notification message type templates.
type MessageTypeRepository interface {
	List(filters *models.ReferenceFilters, page, limit int) ([]models.MessageType, *models.PaginationInfo, error)
	All() ([]models.MessageType, error)
	GetByID(id uint) (*models.MessageType, error)
	Create(messageType *models.MessageType) error
	Update(id uint, attrs map[string]interface{}) (*models.MessageType, error)
	Delete(id uint, force bool) error
	Restore(id uint) (*models.MessageType, error)
}

type messageTypeRepository struct {
	*CRUD[models.MessageType]
}

func NewMessageTypeRepository(db *gorm.DB) MessageTypeRepository {
	return &messageTypeRepository{CRUD: NewCRUD[models.MessageType](db)}
}

func (r *messageTypeRepository) List(filters *models.ReferenceFilters, page, limit int) ([]models.MessageType, *models.PaginationInfo, error) {
	types, total, err := r.Paginate(page, limit, referenceScopes(filters)...)
	if err != nil {
		return nil, nil, err
	}
	return types, paginationFor(page, limit, total), nil
}

func (r *messageTypeRepository) All() ([]models.MessageType, error) {
	return r.CRUD.All(FilterActive())
}

func (r *messageTypeRepository) GetByID(id uint) (*models.MessageType, error) {
	messageType, err := r.FindByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrMessageTypeNotFound
		}
		return nil, err
	}
	return messageType, nil
}

func (r *messageTypeRepository) Update(id uint, attrs map[string]interface{}) (*models.MessageType, error) {
	messageType, err := r.CRUD.Update(id, attrs)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrMessageTypeNotFound
		}
		return nil, err
	}
	return messageType, nil
}

func (r *messageTypeRepository) Delete(id uint, force bool) error {
	if err := r.CRUD.Delete(id, force); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrMessageTypeNotFound
		}
		return err
	}
	return nil
}

func (r *messageTypeRepository) Restore(id uint) (*models.MessageType, error) {
	messageType, err := r.CRUD.Restore(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrMessageTypeNotFound
		}
		return nil, err
	}
	return messageType, nil
}

// TermsRepository manages versioned terms and conditions documents.
type TermsRepository interface {
	List(filters *models.ReferenceFilters, page, limit int) ([]models.TermsAndCondition, *models.PaginationInfo, error)
	GetByID(id uint) (*models.TermsAndCondition, error)
	GetLatestActive() (*models.TermsAndCondition, error)
	Create(terms *models.TermsAndCondition) error
	Update(id uint, attrs map[string]interface{}) (*models.TermsAndCondition, error)
	Delete(id uint, force bool) error
	Restore(id uint) (*models.TermsAndCondition, error)
}

type termsRepository struct {
	*CRUD[models.TermsAndCondition]
}

func NewTermsRepository(db *gorm.DB) TermsRepository {
	return &termsRepository{CRUD: NewCRUD[models.TermsAndCondition](db)}
}

func (r *termsRepository) List(filters *models.ReferenceFilters, page, limit int) ([]models.TermsAndCondition, *models.PaginationInfo, error) {
	var scopes []Scope
	if filters != nil {
		scopes = append(scopes,
			FilterName("title_en", "title_ar", filters.Name),
			FilterBool("is_active", filters.IsActive),
		)
	}

	terms, total, err := r.Paginate(page, limit, scopes...)
	if err != nil {
		return nil, nil, err
	}
	return terms, paginationFor(page, limit, total), nil
}

func (r *termsRepository) GetByID(id uint) (*models.TermsAndCondition, error) {
	terms, err := r.FindByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTermsNotFound
		}
		return nil, err
	}
	return terms, nil
}

func (r *termsRepository) GetLatestActive() (*models.TermsAndCondition, error) {
	var terms models.TermsAndCondition
	err := r.DB().Where("is_active = ?", true).Order("id DESC").First(&terms).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTermsNotFound
		}
		return nil, err
	}
	return &terms, nil
}

func (r *termsRepository) Create(terms *models.TermsAndCondition) error {
	if err := r.CRUD.Create(terms); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return ErrDuplicateVersion
		}
		return err
	}
	return nil
}

func (r *termsRepository) Update(id uint, attrs map[string]interface{}) (*models.TermsAndCondition, error) {
	terms, err := r.CRUD.Update(id, attrs)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, ErrTermsNotFound
		case errors.Is(err, ErrDuplicate):
			return nil, ErrDuplicateVersion
		}
		return nil, err
	}
	return terms, nil
}

func (r *termsRepository) Delete(id uint, force bool) error {
	if err := r.CRUD.Delete(id, force); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrTermsNotFound
		}
		return err
	}
	return nil
}

func (r *termsRepository) Restore(id uint) (*models.TermsAndCondition, error) {
	terms, err := r.CRUD.Restore(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTermsNotFound
		}
		return nil, err
	}
	return terms, nil
}

func referenceScopes(filters *models.ReferenceFilters) []Scope {
	if filters == nil {
		return nil
	}
	return []Scope{
		FilterName("name_en", "name_ar", filters.Name),
		FilterBool("is_active", filters.IsActive),
	}
}
