package repository

import (
	"errors"

	"gorm.io/gorm"

	"payment-config-service/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	List(filters *models.ProductFilters, page, limit int) ([]models.Product, *models.PaginationInfo, error)
	All() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(id uint, attrs map[string]interface{}) (*models.Product, error)
	Delete(id uint, force bool) error
	Restore(id uint) (*models.Product, error)
}

type productRepository struct {
	*CRUD[models.Product]
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{CRUD: NewCRUD[models.Product](db)}
}

func (r *productRepository) List(filters *models.ProductFilters, page, limit int) ([]models.Product, *models.PaginationInfo, error) {
	var scopes []Scope
	if filters != nil {
		scopes = append(scopes,
			FilterName("name_en", "name_ar", filters.Name),
			FilterBool("is_signed", filters.IsSigned),
		)
	}

	products, total, err := r.Paginate(page, limit, scopes...)
	if err != nil {
		return nil, nil, err
	}
	return products, paginationFor(page, limit, total), nil
}

func (r *productRepository) All() ([]models.Product, error) {
	return r.CRUD.All()
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	product, err := r.FindByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (r *productRepository) Update(id uint, attrs map[string]interface{}) (*models.Product, error) {
	product, err := r.CRUD.Update(id, attrs)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (r *productRepository) Delete(id uint, force bool) error {
	if err := r.CRUD.Delete(id, force); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}

func (r *productRepository) Restore(id uint) (*models.Product, error) {
	product, err := r.CRUD.Restore(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}
