package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"payment-config-service/internal/models"
	"payment-config-service/internal/repository"
)

// MockPspPaymentMethodRepository is a mock implementation of
// PspPaymentMethodRepository
type MockPspPaymentMethodRepository struct {
	mock.Mock
}

var _ repository.PspPaymentMethodRepository = (*MockPspPaymentMethodRepository)(nil)

func (m *MockPspPaymentMethodRepository) List(filters *models.PspPaymentMethodFilters, page, limit int) ([]models.PspPaymentMethod, *models.PaginationInfo, error) {
	args := m.Called(filters, page, limit)
	return args.Get(0).([]models.PspPaymentMethod), args.Get(1).(*models.PaginationInfo), args.Error(2)
}

func (m *MockPspPaymentMethodRepository) GetByID(id uint) (*models.PspPaymentMethod, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PspPaymentMethod), args.Error(1)
}

func (m *MockPspPaymentMethodRepository) Create(config *models.PspPaymentMethod) error {
	args := m.Called(config)
	return args.Error(0)
}

func (m *MockPspPaymentMethodRepository) CreateBatch(configs []*models.PspPaymentMethod) error {
	args := m.Called(configs)
	if args.Error(0) == nil {
		for i, config := range configs {
			config.ID = uint(i + 1)
		}
	}
	return args.Error(0)
}

func (m *MockPspPaymentMethodRepository) Update(id uint, attrs map[string]interface{}) (*models.PspPaymentMethod, error) {
	args := m.Called(id, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PspPaymentMethod), args.Error(1)
}

func (m *MockPspPaymentMethodRepository) Delete(id uint, force bool) error {
	args := m.Called(id, force)
	return args.Error(0)
}

func (m *MockPspPaymentMethodRepository) Restore(id uint) (*models.PspPaymentMethod, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PspPaymentMethod), args.Error(1)
}

// MockPaymentMethodRepository is a mock implementation of
// PaymentMethodRepository
type MockPaymentMethodRepository struct {
	mock.Mock
}

var _ repository.PaymentMethodRepository = (*MockPaymentMethodRepository)(nil)

func (m *MockPaymentMethodRepository) List(filters *models.PaymentMethodFilters, page, limit int) ([]models.PaymentMethod, *models.PaginationInfo, error) {
	args := m.Called(filters, page, limit)
	return args.Get(0).([]models.PaymentMethod), args.Get(1).(*models.PaginationInfo), args.Error(2)
}

func (m *MockPaymentMethodRepository) All() ([]models.PaymentMethod, error) {
	args := m.Called()
	return args.Get(0).([]models.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) GetByID(id uint) (*models.PaymentMethod, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) GetByCode(code string) (*models.PaymentMethod, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) Create(method *models.PaymentMethod) error {
	args := m.Called(method)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) Update(id uint, attrs map[string]interface{}) (*models.PaymentMethod, error) {
	args := m.Called(id, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) Delete(id uint, force bool) error {
	args := m.Called(id, force)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) Restore(id uint) (*models.PaymentMethod, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentMethod), args.Error(1)
}

func validBundle(methodID uint) models.PaymentMethodConfig {
	return models.PaymentMethodConfig{
		PaymentMethodID:   methodID,
		RefundOption:      models.RefundOptionOneTime,
		PayoutModel:       models.PayoutModelDaily,
		SubscriptionModel: models.SubscriptionModelNone,
		FeesType:          models.FeesTypeFixed,
	}
}

func configServiceFixture() (*MockPspPaymentMethodRepository, *MockPspRepository, *MockPaymentMethodRepository, PspPaymentMethodService) {
	repo := new(MockPspPaymentMethodRepository)
	psps := new(MockPspRepository)
	methods := new(MockPaymentMethodRepository)
	service := NewPspPaymentMethodService(repo, psps, methods, nil)
	return repo, psps, methods, service
}

func storedConfig(id uint) *models.PspPaymentMethod {
	return &models.PspPaymentMethod{
		ID:                id,
		PspID:             1,
		PaymentMethodID:   id,
		RefundOption:      models.RefundOptionOneTime,
		PayoutModel:       models.PayoutModelDaily,
		SubscriptionModel: models.SubscriptionModelNone,
		FeesType:          models.FeesTypeFixed,
	}
}

func TestCreateConfigurationsBatchShape(t *testing.T) {
	repo, psps, methods, service := configServiceFixture()

	psps.On("GetByID", uint(1)).Return(&models.Psp{ID: 1, Name: "Checkout", Code: "checkout"}, nil)
	methods.On("GetByID", uint(1)).Return(&models.PaymentMethod{ID: 1, Description: "Cards", Code: "cards"}, nil)
	methods.On("GetByID", uint(2)).Return(&models.PaymentMethod{ID: 2, Description: "Wallet", Code: "wallet"}, nil)
	repo.On("CreateBatch", mock.MatchedBy(func(configs []*models.PspPaymentMethod) bool {
		return len(configs) == 2
	})).Return(nil)
	repo.On("GetByID", uint(1)).Return(storedConfig(1), nil)
	repo.On("GetByID", uint(2)).Return(storedConfig(2), nil)

	views, err := service.CreateConfigurations(context.Background(), "admin@example.com", &models.CreatePspPaymentMethodRequest{
		PspID: 1,
		PaymentMethodsConfig: []models.PaymentMethodConfig{
			validBundle(1),
			validBundle(2),
		},
	})
	require.NoError(t, err)
	assert.Len(t, views, 2)
	repo.AssertExpectations(t)
}

func TestCreateConfigurationsFlatShape(t *testing.T) {
	repo, psps, methods, service := configServiceFixture()

	psps.On("GetByID", uint(1)).Return(&models.Psp{ID: 1, Name: "Checkout", Code: "checkout"}, nil)
	methods.On("GetByID", uint(1)).Return(&models.PaymentMethod{ID: 1, Description: "Cards", Code: "cards"}, nil)
	repo.On("CreateBatch", mock.MatchedBy(func(configs []*models.PspPaymentMethod) bool {
		return len(configs) == 1 && configs[0].PaymentMethodID == 1
	})).Return(nil)
	repo.On("GetByID", uint(1)).Return(storedConfig(1), nil)

	methodID := uint(1)
	views, err := service.CreateConfigurations(context.Background(), "admin@example.com", &models.CreatePspPaymentMethodRequest{
		PspID:             1,
		PaymentMethodID:   &methodID,
		RefundOption:      models.RefundOptionOneTime,
		PayoutModel:       models.PayoutModelDaily,
		SubscriptionModel: models.SubscriptionModelNone,
		FeesType:          models.FeesTypeFixed,
	})
	require.NoError(t, err)
	assert.Len(t, views, 1)
}

func TestCreateConfigurationsBatchWinsOverFlat(t *testing.T) {
	repo, psps, methods, service := configServiceFixture()

	psps.On("GetByID", uint(1)).Return(&models.Psp{ID: 1, Name: "Checkout", Code: "checkout"}, nil)
	methods.On("GetByID", uint(2)).Return(&models.PaymentMethod{ID: 2, Description: "Wallet", Code: "wallet"}, nil)
	repo.On("CreateBatch", mock.MatchedBy(func(configs []*models.PspPaymentMethod) bool {
		// The flat method id 1 must be ignored in favor of the batch
		return len(configs) == 1 && configs[0].PaymentMethodID == 2
	})).Return(nil)
	repo.On("GetByID", uint(1)).Return(storedConfig(1), nil)

	flatID := uint(1)
	_, err := service.CreateConfigurations(context.Background(), "", &models.CreatePspPaymentMethodRequest{
		PspID:                1,
		PaymentMethodID:      &flatID,
		PaymentMethodsConfig: []models.PaymentMethodConfig{validBundle(2)},
	})
	require.NoError(t, err)
	methods.AssertNotCalled(t, "GetByID", uint(1))
}

func TestCreateConfigurationsRequiresAShape(t *testing.T) {
	_, psps, _, service := configServiceFixture()

	psps.On("GetByID", uint(1)).Return(&models.Psp{ID: 1, Name: "Checkout", Code: "checkout"}, nil)

	_, err := service.CreateConfigurations(context.Background(), "", &models.CreatePspPaymentMethodRequest{PspID: 1})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCreateConfigurationsUnknownPsp(t *testing.T) {
	_, psps, _, service := configServiceFixture()

	psps.On("GetByID", uint(9)).Return(nil, repository.ErrPspNotFound)

	_, err := service.CreateConfigurations(context.Background(), "", &models.CreatePspPaymentMethodRequest{
		PspID:                9,
		PaymentMethodsConfig: []models.PaymentMethodConfig{validBundle(1)},
	})
	assert.ErrorIs(t, err, repository.ErrPspNotFound)
}

func TestCreateConfigurationsValidatesEnums(t *testing.T) {
	_, psps, methods, service := configServiceFixture()

	psps.On("GetByID", uint(1)).Return(&models.Psp{ID: 1, Name: "Checkout", Code: "checkout"}, nil)
	methods.On("GetByID", uint(1)).Return(&models.PaymentMethod{ID: 1, Description: "Cards", Code: "cards"}, nil)

	bundle := validBundle(1)
	bundle.RefundOption = 99
	_, err := service.CreateConfigurations(context.Background(), "", &models.CreatePspPaymentMethodRequest{
		PspID:                1,
		PaymentMethodsConfig: []models.PaymentMethodConfig{bundle},
	})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCreateConfigurationsValidatesAmountRange(t *testing.T) {
	_, psps, methods, service := configServiceFixture()

	psps.On("GetByID", uint(1)).Return(&models.Psp{ID: 1, Name: "Checkout", Code: "checkout"}, nil)
	methods.On("GetByID", uint(1)).Return(&models.PaymentMethod{ID: 1, Description: "Cards", Code: "cards"}, nil)

	bundle := validBundle(1)
	bundle.MinAmount = 100
	bundle.MaxAmount = 10
	_, err := service.CreateConfigurations(context.Background(), "", &models.CreatePspPaymentMethodRequest{
		PspID:                1,
		PaymentMethodsConfig: []models.PaymentMethodConfig{bundle},
	})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCreateConfigurationsRecordsActor(t *testing.T) {
	repo, psps, methods, service := configServiceFixture()

	psps.On("GetByID", uint(1)).Return(&models.Psp{ID: 1, Name: "Checkout", Code: "checkout"}, nil)
	methods.On("GetByID", uint(1)).Return(&models.PaymentMethod{ID: 1, Description: "Cards", Code: "cards"}, nil)
	repo.On("CreateBatch", mock.MatchedBy(func(configs []*models.PspPaymentMethod) bool {
		return configs[0].CreatedBy != nil && *configs[0].CreatedBy == "admin@example.com"
	})).Return(nil)
	repo.On("GetByID", uint(1)).Return(storedConfig(1), nil)

	_, err := service.CreateConfigurations(context.Background(), "admin@example.com", &models.CreatePspPaymentMethodRequest{
		PspID:                1,
		PaymentMethodsConfig: []models.PaymentMethodConfig{validBundle(1)},
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateConfigurationRecordsActor(t *testing.T) {
	repo, _, _, service := configServiceFixture()

	repo.On("Update", uint(1), mock.MatchedBy(func(attrs map[string]interface{}) bool {
		return attrs["updated_by"] == "admin@example.com"
	})).Return(storedConfig(1), nil)

	_, err := service.UpdateConfiguration(context.Background(), "admin@example.com", 1, &models.UpdatePspPaymentMethodRequest{})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateConfigurationValidatesEnum(t *testing.T) {
	repo, _, _, service := configServiceFixture()

	bad := models.RefundOption(99)
	_, err := service.UpdateConfiguration(context.Background(), "", 1, &models.UpdatePspPaymentMethodRequest{RefundOption: &bad})
	assert.ErrorIs(t, err, ErrInvalid)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
