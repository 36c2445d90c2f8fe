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

// MockPspRepository is a mock implementation of PspRepository
type MockPspRepository struct {
	mock.Mock
}

var _ repository.PspRepository = (*MockPspRepository)(nil)

func (m *MockPspRepository) List(filters *models.PspFilters, page, limit int) ([]models.Psp, *models.PaginationInfo, error) {
	args := m.Called(filters, page, limit)
	return args.Get(0).([]models.Psp), args.Get(1).(*models.PaginationInfo), args.Error(2)
}

func (m *MockPspRepository) GetByID(id uint) (*models.Psp, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Psp), args.Error(1)
}

func (m *MockPspRepository) GetByCode(code string) (*models.Psp, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Psp), args.Error(1)
}

func (m *MockPspRepository) Create(psp *models.Psp) error {
	args := m.Called(psp)
	if args.Error(0) == nil {
		psp.ID = 1
	}
	return args.Error(0)
}

func (m *MockPspRepository) Update(id uint, attrs map[string]interface{}) (*models.Psp, error) {
	args := m.Called(id, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Psp), args.Error(1)
}

func (m *MockPspRepository) Delete(id uint, force bool) error {
	args := m.Called(id, force)
	return args.Error(0)
}

func (m *MockPspRepository) Restore(id uint) (*models.Psp, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Psp), args.Error(1)
}

func newServiceCache() *cache.LookupCache {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return cache.NewLookupCache(cache.NewMemoryStore(), logger)
}

func TestPspCode(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Checkout", "checkout"},
		{"Apple Pay", "applepay"},
		{"  STC  Pay  ", "stcpay"},
		{"PayTabs", "paytabs"},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, PspCode(tc.name), "name %q", tc.name)
	}
}

func TestCreatePspDerivesCode(t *testing.T) {
	repo := new(MockPspRepository)
	service := NewPspService(repo, newServiceCache(), nil)

	repo.On("Create", mock.MatchedBy(func(psp *models.Psp) bool {
		return psp.Code == "applepay" && psp.Name == "Apple Pay"
	})).Return(nil)
	repo.On("GetByID", uint(1)).Return(&models.Psp{ID: 1, Name: "Apple Pay", Code: "applepay", StatusID: 1}, nil)

	view, err := service.CreatePsp(context.Background(), &models.CreatePspRequest{
		Name:     "  Apple Pay ",
		StatusID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "applepay", view.Code)
	repo.AssertExpectations(t)
}

func TestCreatePspRejectsBlankName(t *testing.T) {
	repo := new(MockPspRepository)
	service := NewPspService(repo, newServiceCache(), nil)

	_, err := service.CreatePsp(context.Background(), &models.CreatePspRequest{Name: "   ", StatusID: 1})
	assert.ErrorIs(t, err, ErrInvalid)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUpdatePspNilPasswordKeepsStored(t *testing.T) {
	repo := new(MockPspRepository)
	service := NewPspService(repo, newServiceCache(), nil)

	stored := &models.Psp{ID: 1, Name: "Checkout", Code: "checkout", StatusID: 1}
	repo.On("Update", uint(1), mock.MatchedBy(func(attrs map[string]interface{}) bool {
		_, hasPassword := attrs["password"]
		return !hasPassword
	})).Return(stored, nil)
	repo.On("GetByID", uint(1)).Return(stored, nil)

	name := "Checkout Ltd"
	_, err := service.UpdatePsp(context.Background(), 1, &models.UpdatePspRequest{Name: &name})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdatePspEmptyPasswordClearsIt(t *testing.T) {
	repo := new(MockPspRepository)
	service := NewPspService(repo, newServiceCache(), nil)

	stored := &models.Psp{ID: 1, Name: "Checkout", Code: "checkout", StatusID: 1}
	repo.On("Update", uint(1), mock.MatchedBy(func(attrs map[string]interface{}) bool {
		password, ok := attrs["password"]
		return ok && password == ""
	})).Return(stored, nil)
	repo.On("GetByID", uint(1)).Return(stored, nil)

	empty := ""
	_, err := service.UpdatePsp(context.Background(), 1, &models.UpdatePspRequest{Password: &empty})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdatePspNeverTouchesCode(t *testing.T) {
	repo := new(MockPspRepository)
	service := NewPspService(repo, newServiceCache(), nil)

	stored := &models.Psp{ID: 1, Name: "New Name", Code: "checkout", StatusID: 1}
	repo.On("Update", uint(1), mock.MatchedBy(func(attrs map[string]interface{}) bool {
		_, hasCode := attrs["code"]
		return !hasCode
	})).Return(stored, nil)
	repo.On("GetByID", uint(1)).Return(stored, nil)

	name := "New Name"
	view, err := service.UpdatePsp(context.Background(), 1, &models.UpdatePspRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "checkout", view.Code)
	repo.AssertExpectations(t)
}

func TestListPspsExcludesPasswords(t *testing.T) {
	repo := new(MockPspRepository)
	service := NewPspService(repo, newServiceCache(), nil)

	secret := "hunter2"
	repo.On("List", (*models.PspFilters)(nil), 1, 20).Return(
		[]models.Psp{{ID: 1, Name: "Checkout", Code: "checkout", StatusID: 1, Password: &secret}},
		models.NewPaginationInfo(1, 20, 1),
		nil,
	)

	views, _, version, err := service.ListPsps(context.Background(), nil, 1, 20)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Nil(t, views[0].Password)
	assert.Equal(t, int64(1), version)
}

func TestGetPspIncludesPassword(t *testing.T) {
	repo := new(MockPspRepository)
	service := NewPspService(repo, newServiceCache(), nil)

	secret := "hunter2"
	repo.On("GetByID", uint(1)).Return(&models.Psp{ID: 1, Name: "Checkout", Code: "checkout", StatusID: 1, Password: &secret}, nil)

	view, err := service.GetPsp(1)
	require.NoError(t, err)
	require.NotNil(t, view.Password)
	assert.Equal(t, "hunter2", *view.Password)
}
