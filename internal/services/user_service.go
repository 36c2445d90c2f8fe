package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"payment-config-service/internal/events"
	"payment-config-service/internal/models"
	"payment-config-service/internal/repository"
)

// UserService handles business logic for admin panel accounts
type UserService interface {
	ListUsers(filters *models.UserFilters, page, limit int) ([]models.UserView, *models.PaginationInfo, error)
	GetUser(id uint) (*models.UserView, error)
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.UserView, error)
	UpdateUser(ctx context.Context, id uint, req *models.UpdateUserRequest) (*models.UserView, error)
	DeleteUser(ctx context.Context, id uint, force bool) error
	RestoreUser(ctx context.Context, id uint) (*models.UserView, error)
	VerifyCredentials(email, password string) (*models.User, error)
}

type userService struct {
	repo      repository.UserRepository
	publisher *events.Publisher
}

// NewUserService creates a new user service instance
func NewUserService(repo repository.UserRepository, publisher *events.Publisher) UserService {
	return &userService{repo: repo, publisher: publisher}
}

func (s *userService) ListUsers(filters *models.UserFilters, page, limit int) ([]models.UserView, *models.PaginationInfo, error) {
	users, pagination, err := s.repo.List(filters, page, limit)
	if err != nil {
		return nil, nil, err
	}

	views := make([]models.UserView, 0, len(users))
	for i := range users {
		views = append(views, *userView(&users[i]))
	}
	return views, pagination, nil
}

func (s *userService) GetUser(id uint) (*models.UserView, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return userView(user), nil
}

func (s *userService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.UserView, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashed),
		StatusID: req.StatusID,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, "user", "created", user.ID, nil)
	return s.GetUser(user.ID)
}

func (s *userService) UpdateUser(ctx context.Context, id uint, req *models.UpdateUserRequest) (*models.UserView, error) {
	attrs := map[string]interface{}{}
	if req.Name != nil {
		attrs["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		attrs["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
		// Changing the address invalidates the previous verification.
		attrs["email_verified_at"] = nil
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		attrs["password"] = string(hashed)
	}
	if req.StatusID != nil {
		attrs["status_id"] = *req.StatusID
	}

	if _, err := s.repo.Update(id, attrs); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, "user", "updated", id, nil)
	return s.GetUser(id)
}

func (s *userService) DeleteUser(ctx context.Context, id uint, force bool) error {
	if err := s.repo.Delete(id, force); err != nil {
		return err
	}
	s.publisher.Publish(ctx, "user", "deleted", id, nil)
	return nil
}

func (s *userService) RestoreUser(ctx context.Context, id uint) (*models.UserView, error) {
	user, err := s.repo.Restore(id)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(ctx, "user", "restored", id, nil)
	return userView(user), nil
}

// VerifyCredentials checks an email/password pair. Lookup failures and
// hash mismatches both come back as ErrUserNotFound so callers cannot
// probe which addresses exist.
func (s *userService) VerifyCredentials(email, password string) (*models.User, error) {
	user, err := s.repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, repository.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}
