package services

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"payment-config-service/internal/cache"
	"payment-config-service/internal/models"
	"payment-config-service/internal/repository"
)

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

var _ repository.ProductRepository = (*MockProductRepository)(nil)

func (m *MockProductRepository) List(filters *models.ProductFilters, page, limit int) ([]models.Product, *models.PaginationInfo, error) {
	args := m.Called(filters, page, limit)
	return args.Get(0).([]models.Product), args.Get(1).(*models.PaginationInfo), args.Error(2)
}

func (m *MockProductRepository) All() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	if args.Error(0) == nil {
		product.ID = 1
	}
	return args.Error(0)
}

func (m *MockProductRepository) Update(id uint, attrs map[string]interface{}) (*models.Product, error) {
	args := m.Called(id, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(id uint, force bool) error {
	args := m.Called(id, force)
	return args.Error(0)
}

func (m *MockProductRepository) Restore(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func productServiceFixture() (*MockProductRepository, *cache.LookupCache, ProductService) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	repo := new(MockProductRepository)
	lookupCache := newServiceCache()
	return repo, lookupCache, NewProductService(repo, lookupCache, nil, logger)
}

func TestCreateProductDefaultsInvoiceURL(t *testing.T) {
	repo, _, service := productServiceFixture()

	repo.On("Create", mock.MatchedBy(func(product *models.Product) bool {
		return product.InvoiceURL == models.DefaultProductAPIURL
	})).Return(nil)

	_, err := service.CreateProduct(context.Background(), &models.CreateProductRequest{NameEn: "Gateway"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateProductInvalidatesDropdownAndBumpsVersion(t *testing.T) {
	repo, lookupCache, service := productServiceFixture()
	ctx := context.Background()

	loads := 0
	loader := func() ([]string, error) {
		loads++
		return []string{"Gateway"}, nil
	}

	_, err := cache.Remember(lookupCache, ctx, "dropdown:products", loader)
	require.NoError(t, err)
	require.Equal(t, 1, loads)
	before := lookupCache.IndexVersion(ctx, "product")

	repo.On("Create", mock.Anything).Return(nil)
	_, err = service.CreateProduct(ctx, &models.CreateProductRequest{NameEn: "Gateway"})
	require.NoError(t, err)

	_, err = cache.Remember(lookupCache, ctx, "dropdown:products", loader)
	require.NoError(t, err)
	assert.Equal(t, 2, loads, "a write must force the dropdown to reload")
	assert.Greater(t, lookupCache.IndexVersion(ctx, "product"), before)
}

func TestUpdateProductInvalidatesDropdown(t *testing.T) {
	repo, lookupCache, service := productServiceFixture()
	ctx := context.Background()

	loads := 0
	loader := func() ([]string, error) {
		loads++
		return nil, nil
	}

	_, err := cache.Remember(lookupCache, ctx, "dropdown:products", loader)
	require.NoError(t, err)

	stored := &models.Product{ID: 1, NameEn: "Renamed"}
	repo.On("Update", uint(1), mock.Anything).Return(stored, nil)

	name := "Renamed"
	_, err = service.UpdateProduct(ctx, 1, &models.UpdateProductRequest{NameEn: &name})
	require.NoError(t, err)

	_, err = cache.Remember(lookupCache, ctx, "dropdown:products", loader)
	require.NoError(t, err)
	assert.Equal(t, 2, loads)
}
