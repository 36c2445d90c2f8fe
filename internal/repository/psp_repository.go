package repository

import (
	"errors"

	"gorm.io/gorm"

	"payment-config-service/internal/models"
)

var (
	ErrPspNotFound   = errors.New("psp not found")
	ErrDuplicateCode = errors.New("psp code already exists")
)

type PspRepository interface {
	List(filters *models.PspFilters, page, limit int) ([]models.Psp, *models.PaginationInfo, error)
	GetByID(id uint) (*models.Psp, error)
	GetByCode(code string) (*models.Psp, error)
	Create(psp *models.Psp) error
	Update(id uint, attrs map[string]interface{}) (*models.Psp, error)
	Delete(id uint, force bool) error
	Restore(id uint) (*models.Psp, error)
}

type pspRepository struct {
	*CRUD[models.Psp]
}

func NewPspRepository(db *gorm.DB) PspRepository {
	return &pspRepository{CRUD: NewCRUD[models.Psp](db)}
}

func (r *pspRepository) List(filters *models.PspFilters, page, limit int) ([]models.Psp, *models.PaginationInfo, error) {
	scopes := []Scope{Preload("Status")}
	if filters != nil {
		scopes = append(scopes,
			FilterLike("name", filters.Name),
			FilterEq("code", filters.Code),
			FilterNumericEq("status_id", filters.StatusID),
			FilterEq("country_code", filters.CountryCode),
		)
	}

	psps, total, err := r.Paginate(page, limit, scopes...)
	if err != nil {
		return nil, nil, err
	}
	return psps, paginationFor(page, limit, total), nil
}

func (r *pspRepository) GetByID(id uint) (*models.Psp, error) {
	var psp models.Psp
	err := r.DB().Preload("Status").First(&psp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPspNotFound
		}
		return nil, err
	}
	return &psp, nil
}

func (r *pspRepository) GetByCode(code string) (*models.Psp, error) {
	var psp models.Psp
	err := r.DB().Where("code = ?", code).First(&psp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPspNotFound
		}
		return nil, err
	}
	return &psp, nil
}

func (r *pspRepository) Create(psp *models.Psp) error {
	if err := r.CRUD.Create(psp); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return ErrDuplicateCode
		}
		return err
	}
	return nil
}

func (r *pspRepository) Update(id uint, attrs map[string]interface{}) (*models.Psp, error) {
	psp, err := r.CRUD.Update(id, attrs)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, ErrPspNotFound
		case errors.Is(err, ErrDuplicate):
			return nil, ErrDuplicateCode
		}
		return nil, err
	}
	return psp, nil
}

func (r *pspRepository) Delete(id uint, force bool) error {
	if err := r.CRUD.Delete(id, force); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrPspNotFound
		}
		return err
	}
	return nil
}

func (r *pspRepository) Restore(id uint) (*models.Psp, error) {
	psp, err := r.CRUD.Restore(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrPspNotFound
		}
		return nil, err
	}
	return psp, nil
}
