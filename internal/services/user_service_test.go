package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"payment-config-service/internal/models"
	"payment-config-service/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) List(filters *models.UserFilters, page, limit int) ([]models.User, *models.PaginationInfo, error) {
	args := m.Called(filters, page, limit)
	return args.Get(0).([]models.User), args.Get(1).(*models.PaginationInfo), args.Error(2)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) Update(id uint, attrs map[string]interface{}) (*models.User, error) {
	args := m.Called(id, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(id uint, force bool) error {
	args := m.Called(id, force)
	return args.Error(0)
}

func (m *MockUserRepository) Restore(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestCreateUserHashesPasswordAndNormalizesEmail(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo, nil)

	repo.On("Create", mock.MatchedBy(func(user *models.User) bool {
		if user.Email != "admin@example.com" || user.Password == "s3cret-pass" {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret-pass")) == nil
	})).Return(nil)
	repo.On("GetByID", uint(1)).Return(&models.User{ID: 1, Name: "Admin", Email: "admin@example.com", StatusID: 1}, nil)

	_, err := service.CreateUser(context.Background(), &models.CreateUserRequest{
		Name:     "Admin",
		Email:    "  Admin@Example.COM ",
		Password: "s3cret-pass",
		StatusID: 1,
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateUserEmailChangeClearsVerification(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo, nil)

	stored := &models.User{ID: 1, Name: "Admin", Email: "new@example.com", StatusID: 1}
	repo.On("Update", uint(1), mock.MatchedBy(func(attrs map[string]interface{}) bool {
		verifiedAt, present := attrs["email_verified_at"]
		return present && verifiedAt == nil && attrs["email"] == "new@example.com"
	})).Return(stored, nil)
	repo.On("GetByID", uint(1)).Return(stored, nil)

	email := "New@Example.com"
	_, err := service.UpdateUser(context.Background(), 1, &models.UpdateUserRequest{Email: &email})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateUserWithoutEmailKeepsVerification(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo, nil)

	stored := &models.User{ID: 1, Name: "Renamed", Email: "admin@example.com", StatusID: 1}
	repo.On("Update", uint(1), mock.MatchedBy(func(attrs map[string]interface{}) bool {
		_, present := attrs["email_verified_at"]
		return !present
	})).Return(stored, nil)
	repo.On("GetByID", uint(1)).Return(stored, nil)

	name := "Renamed"
	_, err := service.UpdateUser(context.Background(), 1, &models.UpdateUserRequest{Name: &name})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestVerifyCredentials(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo, nil)

	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.On("GetByEmail", "admin@example.com").Return(&models.User{ID: 1, Email: "admin@example.com", Password: string(hashed)}, nil)

	user, err := service.VerifyCredentials(" Admin@Example.com ", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
}

func TestVerifyCredentialsHidesWhichCheckFailed(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo, nil)

	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.On("GetByEmail", "admin@example.com").Return(&models.User{ID: 1, Email: "admin@example.com", Password: string(hashed)}, nil)
	repo.On("GetByEmail", "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, badPassword := service.VerifyCredentials("admin@example.com", "wrong")
	_, unknownEmail := service.VerifyCredentials("ghost@example.com", "s3cret-pass")

	assert.ErrorIs(t, badPassword, repository.ErrUserNotFound)
	assert.ErrorIs(t, unknownEmail, repository.ErrUserNotFound)
	assert.Equal(t, badPassword, unknownEmail)
}
