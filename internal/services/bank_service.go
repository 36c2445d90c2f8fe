package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"payment-config-service/internal/cache"
	"payment-config-service/internal/events"
	"payment-config-service/internal/models"
	"payment-config-service/internal/repository"
	"payment-config-service/internal/storage"
)

const bankLogoDir = "banks/logos"

// BankService handles business logic for banks
type BankService interface {
	ListBanks(filters *models.BankFilters, page, limit int) ([]models.Bank, *models.PaginationInfo, error)
	GetBank(id uint) (*models.Bank, error)
	CreateBank(ctx context.Context, req *models.CreateBankRequest) (*models.Bank, error)
	UpdateBank(ctx context.Context, id uint, req *models.UpdateBankRequest) (*models.Bank, error)
	DeleteBank(ctx context.Context, id uint, force bool) error
	RestoreBank(ctx context.Context, id uint) (*models.Bank, error)
}

type bankService struct {
	repo      repository.BankRepository
	files     *storage.FileStore
	cache     *cache.LookupCache
	publisher *events.Publisher
	logger    *logrus.Logger
}

// NewBankService creates a new bank service instance
func NewBankService(
	repo repository.BankRepository,
	files *storage.FileStore,
	lookupCache *cache.LookupCache,
	publisher *events.Publisher,
	logger *logrus.Logger,
) BankService {
	return &bankService{repo: repo, files: files, cache: lookupCache, publisher: publisher, logger: logger}
}

func (s *bankService) ListBanks(filters *models.BankFilters, page, limit int) ([]models.Bank, *models.PaginationInfo, error) {
	return s.repo.List(filters, page, limit)
}

func (s *bankService) GetBank(id uint) (*models.Bank, error) {
	return s.repo.GetByID(id)
}

func (s *bankService) CreateBank(ctx context.Context, req *models.CreateBankRequest) (*models.Bank, error) {
	bank := &models.Bank{
		NameEn:      req.NameEn,
		NameAr:      req.NameAr,
		SwiftCode:   strings.ToUpper(strings.TrimSpace(req.SwiftCode)),
		CountryCode: req.CountryCode,
		IsActive:    true,
	}
	if req.IsActive != nil {
		bank.IsActive = *req.IsActive
	}

	var stored string
	if req.Logo != nil {
		path, err := s.files.Store(req.Logo, bankLogoDir)
		if err != nil {
			return nil, invalidf("logo: %v", err)
		}
		bank.LogoPath = &path
		stored = path
	}

	if err := s.repo.Create(bank); err != nil {
		s.removeFile(stored)
		return nil, err
	}

	s.invalidateDropdowns(ctx)
	s.publisher.Publish(ctx, "bank", "created", bank.ID, nil)
	return bank, nil
}

func (s *bankService) UpdateBank(ctx context.Context, id uint, req *models.UpdateBankRequest) (*models.Bank, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	attrs := map[string]interface{}{}
	if req.NameEn != nil {
		attrs["name_en"] = *req.NameEn
	}
	if req.NameAr != nil {
		attrs["name_ar"] = *req.NameAr
	}
	if req.SwiftCode != nil {
		attrs["swift_code"] = strings.ToUpper(strings.TrimSpace(*req.SwiftCode))
	}
	if req.CountryCode != nil {
		attrs["country_code"] = *req.CountryCode
	}
	if req.IsActive != nil {
		attrs["is_active"] = *req.IsActive
	}

	var stored, obsolete string
	if req.Logo != nil {
		path, err := s.files.Store(req.Logo, bankLogoDir)
		if err != nil {
			return nil, invalidf("logo: %v", err)
		}
		attrs["logo_path"] = path
		stored = path
		if existing.LogoPath != nil {
			obsolete = *existing.LogoPath
		}
	}

	bank, err := s.repo.Update(id, attrs)
	if err != nil {
		s.removeFile(stored)
		return nil, err
	}

	s.removeFile(obsolete)
	s.invalidateDropdowns(ctx)
	s.publisher.Publish(ctx, "bank", "updated", id, nil)
	return bank, nil
}

func (s *bankService) DeleteBank(ctx context.Context, id uint, force bool) error {
	if err := s.repo.Delete(id, force); err != nil {
		return err
	}
	s.invalidateDropdowns(ctx)
	s.publisher.Publish(ctx, "bank", "deleted", id, nil)
	return nil
}

func (s *bankService) RestoreBank(ctx context.Context, id uint) (*models.Bank, error) {
	bank, err := s.repo.Restore(id)
	if err != nil {
		return nil, err
	}
	s.invalidateDropdowns(ctx)
	s.publisher.Publish(ctx, "bank", "restored", id, nil)
	return bank, nil
}

// Banks feed the settings dropdowns, so every write invalidates the
// cached lookup lists.
func (s *bankService) invalidateDropdowns(ctx context.Context) {
	if err := s.cache.ClearCache(ctx); err != nil {
		s.logger.WithError(err).Warn("failed to clear lookup cache")
	}
}

func (s *bankService) removeFile(path string) {
	if path == "" {
		return
	}
	if err := s.files.Delete(path); err != nil {
		s.logger.WithError(err).WithField("path", path).Warn("failed to remove stored file")
	}
}
