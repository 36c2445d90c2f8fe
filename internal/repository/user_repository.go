package repository

import (
	"errors"

	"gorm.io/gorm"

	"payment-config-service/internal/models"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type UserRepository interface {
	List(filters *models.UserFilters, page, limit int) ([]models.User, *models.PaginationInfo, error)
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(id uint, attrs map[string]interface{}) (*models.User, error)
	Delete(id uint, force bool) error
	Restore(id uint) (*models.User, error)
}

type userRepository struct {
	*CRUD[models.User]
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{CRUD: NewCRUD[models.User](db)}
}

func (r *userRepository) List(filters *models.UserFilters, page, limit int) ([]models.User, *models.PaginationInfo, error) {
	scopes := []Scope{Preload("Status")}
	if filters != nil {
		scopes = append(scopes,
			FilterLike("name", filters.Name),
			FilterLike("email", filters.Email),
			FilterNumericEq("status_id", filters.StatusID),
		)
	}

	users, total, err := r.Paginate(page, limit, scopes...)
	if err != nil {
		return nil, nil, err
	}
	return users, paginationFor(page, limit, total), nil
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.DB().Preload("Status").First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.DB().Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(user *models.User) error {
	if err := r.CRUD.Create(user); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *userRepository) Update(id uint, attrs map[string]interface{}) (*models.User, error) {
	user, err := r.CRUD.Update(id, attrs)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, ErrDuplicate):
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Delete(id uint, force bool) error {
	if err := r.CRUD.Delete(id, force); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (r *userRepository) Restore(id uint) (*models.User, error) {
	user, err := r.CRUD.Restore(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
