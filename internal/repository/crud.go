package repository

import (
	"errors"

	"gorm.io/gorm"

	"payment-config-service/internal/models"
)

// ErrNotFound is returned when an operation targets a row that does not
// exist (or, for Restore, is not soft-deleted). Entity repositories wrap it
// with their own sentinel.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a unique constraint rejects a write that
// slipped past request validation (the concurrent-create race).
var ErrDuplicate = errors.New("duplicate record")

// Scope is a query predicate applied to a listing. Filter helpers in
// filters.go produce them; empty filter values produce no-op scopes.
type Scope func(*gorm.DB) *gorm.DB

// CRUD is the generic persistence base shared by every entity repository.
// It covers the flat operations; entity repositories add finders, preloads
// and multi-row operations on top.
type CRUD[T any] struct {
	db *gorm.DB
}

func NewCRUD[T any](db *gorm.DB) *CRUD[T] {
	return &CRUD[T]{db: db}
}

// DB exposes the handle for entity-specific queries and transactions.
func (r *CRUD[T]) DB() *gorm.DB {
	return r.db
}

// WithTx returns a copy of the base bound to a transaction handle.
func (r *CRUD[T]) WithTx(tx *gorm.DB) *CRUD[T] {
	return &CRUD[T]{db: tx}
}

// Paginate lists rows matching the scopes, AND-combined, newest first.
func (r *CRUD[T]) Paginate(page, limit int, scopes ...Scope) ([]T, int64, error) {
	var entities []T
	var total int64

	query := r.db.Model(new(T))
	for _, scope := range scopes {
		query = scope(query)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&entities).Error
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

// FindByID retrieves a single row, excluding soft-deleted ones.
func (r *CRUD[T]) FindByID(id uint) (*T, error) {
	var entity T
	err := r.db.First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// Create inserts a row. Unique violations surface as ErrDuplicate.
func (r *CRUD[T]) Create(entity *T) error {
	if err := r.db.Create(entity).Error; err != nil {
		return translate(err)
	}
	return nil
}

// Update applies a column map to the row with the given id and returns the
// fresh row. Missing rows fail with ErrNotFound before anything is written.
func (r *CRUD[T]) Update(id uint, attrs map[string]interface{}) (*T, error) {
	entity, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	if len(attrs) > 0 {
		if err := r.db.Model(entity).Updates(attrs).Error; err != nil {
			return nil, translate(err)
		}
	}

	return r.FindByID(id)
}

// Delete soft-deletes by default; force removes the row permanently.
func (r *CRUD[T]) Delete(id uint, force bool) error {
	query := r.db
	if force {
		query = query.Unscoped()
	}

	result := query.Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Restore clears the deleted mark. Fails with ErrNotFound unless a
// soft-deleted row matches the id.
func (r *CRUD[T]) Restore(id uint) (*T, error) {
	result := r.db.Unscoped().
		Model(new(T)).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return r.FindByID(id)
}

// FindTrashed retrieves a row whether or not it is soft-deleted.
func (r *CRUD[T]) FindTrashed(id uint) (*T, error) {
	var entity T
	err := r.db.Unscoped().First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// All lists every non-deleted row, id ascending. Used by the lookup cache.
func (r *CRUD[T]) All(scopes ...Scope) ([]T, error) {
	var entities []T
	query := r.db
	for _, scope := range scopes {
		query = scope(query)
	}
	if err := query.Order("id ASC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func paginationFor(page, limit int, total int64) *models.PaginationInfo {
	return models.NewPaginationInfo(page, limit, total)
}
