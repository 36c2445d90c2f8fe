package services

import (
	"context"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"

	"payment-config-service/internal/cache"
	"payment-config-service/internal/events"
	"payment-config-service/internal/models"
	"payment-config-service/internal/repository"
	"payment-config-service/internal/storage"
)

const paymentMethodLogoDir = "payment-methods/logos"

// PaymentMethodService handles business logic for payment methods
type PaymentMethodService interface {
	ListPaymentMethods(filters *models.PaymentMethodFilters, page, limit int) ([]models.PaymentMethod, *models.PaginationInfo, error)
	GetPaymentMethod(id uint) (*models.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, req *models.CreatePaymentMethodRequest) (*models.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, id uint, req *models.UpdatePaymentMethodRequest) (*models.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, id uint, force bool) error
	RestorePaymentMethod(ctx context.Context, id uint) (*models.PaymentMethod, error)
}

type paymentMethodService struct {
	repo      repository.PaymentMethodRepository
	files     *storage.FileStore
	cache     *cache.LookupCache
	publisher *events.Publisher
	logger    *logrus.Logger
}

// NewPaymentMethodService creates a new payment method service instance
func NewPaymentMethodService(
	repo repository.PaymentMethodRepository,
	files *storage.FileStore,
	lookupCache *cache.LookupCache,
	publisher *events.Publisher,
	logger *logrus.Logger,
) PaymentMethodService {
	return &paymentMethodService{repo: repo, files: files, cache: lookupCache, publisher: publisher, logger: logger}
}

// MethodCode derives a payment method code: everything that is not a
// letter or digit is dropped, then the result is lowercased. "Apple-Pay"
// and "Apple Pay" both become "applepay".
func MethodCode(source string) string {
	var b strings.Builder
	for _, r := range source {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func (s *paymentMethodService) ListPaymentMethods(filters *models.PaymentMethodFilters, page, limit int) ([]models.PaymentMethod, *models.PaginationInfo, error) {
	return s.repo.List(filters, page, limit)
}

func (s *paymentMethodService) GetPaymentMethod(id uint) (*models.PaymentMethod, error) {
	return s.repo.GetByID(id)
}

func (s *paymentMethodService) CreatePaymentMethod(ctx context.Context, req *models.CreatePaymentMethodRequest) (*models.PaymentMethod, error) {
	source := req.Description
	if req.Code != nil && strings.TrimSpace(*req.Code) != "" {
		source = *req.Code
	}
	code := MethodCode(source)
	if code == "" {
		return nil, invalidf("code cannot be derived from %q", source)
	}

	method := &models.PaymentMethod{
		Description:      strings.TrimSpace(req.Description),
		Code:             code,
		IsOneTimePayment: req.IsOneTimePayment,
	}

	var stored string
	if req.Logo != nil {
		path, err := s.files.Store(req.Logo, paymentMethodLogoDir)
		if err != nil {
			return nil, invalidf("logo: %v", err)
		}
		method.LogoPath = &path
		stored = path
	}

	if err := s.repo.Create(method); err != nil {
		s.removeFile(stored)
		return nil, err
	}

	s.invalidateDropdowns(ctx)
	s.publisher.Publish(ctx, "payment_method", "created", method.ID, nil)
	return method, nil
}

func (s *paymentMethodService) UpdatePaymentMethod(ctx context.Context, id uint, req *models.UpdatePaymentMethodRequest) (*models.PaymentMethod, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	attrs := map[string]interface{}{}
	if req.Description != nil {
		attrs["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Code != nil {
		code := MethodCode(*req.Code)
		if code == "" {
			return nil, invalidf("code cannot be derived from %q", *req.Code)
		}
		attrs["code"] = code
	}
	if req.IsOneTimePayment != nil {
		attrs["is_one_time_payment"] = *req.IsOneTimePayment
	}

	var stored, obsolete string
	if req.Logo != nil {
		path, err := s.files.Store(req.Logo, paymentMethodLogoDir)
		if err != nil {
			return nil, invalidf("logo: %v", err)
		}
		attrs["logo_path"] = path
		stored = path
		if existing.LogoPath != nil {
			obsolete = *existing.LogoPath
		}
	}

	method, err := s.repo.Update(id, attrs)
	if err != nil {
		s.removeFile(stored)
		return nil, err
	}

	s.removeFile(obsolete)
	s.invalidateDropdowns(ctx)
	s.publisher.Publish(ctx, "payment_method", "updated", id, nil)
	return method, nil
}

func (s *paymentMethodService) DeletePaymentMethod(ctx context.Context, id uint, force bool) error {
	if err := s.repo.Delete(id, force); err != nil {
		return err
	}
	s.invalidateDropdowns(ctx)
	s.publisher.Publish(ctx, "payment_method", "deleted", id, nil)
	return nil
}

func (s *paymentMethodService) RestorePaymentMethod(ctx context.Context, id uint) (*models.PaymentMethod, error) {
	method, err := s.repo.Restore(id)
	if err != nil {
		return nil, err
	}
	s.invalidateDropdowns(ctx)
	s.publisher.Publish(ctx, "payment_method", "restored", id, nil)
	return method, nil
}

// Payment methods feed the configuration dropdowns, so every write
// invalidates the cached lookup lists.
func (s *paymentMethodService) invalidateDropdowns(ctx context.Context) {
	if err := s.cache.ClearCache(ctx); err != nil {
		s.logger.WithError(err).Warn("failed to clear lookup cache")
	}
}

func (s *paymentMethodService) removeFile(path string) {
	if path == "" {
		return
	}
	if err := s.files.Delete(path); err != nil {
		s.logger.WithError(err).WithField("path", path).Warn("failed to remove stored file")
	}
}
