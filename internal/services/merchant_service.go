package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"payment-config-service/internal/events"
	"payment-config-service/internal/models"
	"payment-config-service/internal/repository"
	"payment-config-service/internal/storage"
)

const (
	merchantLogoDir       = "merchants/logos"
	merchantAttachmentDir = "merchants/attachments"
)

// MerchantService handles business logic for merchant management
type MerchantService interface {
	ListMerchants(filters *models.MerchantFilters, page, limit int) ([]models.MerchantView, *models.PaginationInfo, error)
	GetMerchant(id uint) (*models.MerchantView, error)
	CreateMerchant(ctx context.Context, req *models.CreateMerchantRequest) (*models.MerchantView, error)
	UpdateMerchant(ctx context.Context, id uint, req *models.UpdateMerchantRequest) (*models.MerchantView, error)
	DeleteMerchant(ctx context.Context, id uint, force bool) error
	RestoreMerchant(ctx context.Context, id uint) (*models.MerchantView, error)
	SyncInvoiceTypes(ctx context.Context, id uint, req *models.SyncMerchantInvoicesRequest) (*models.MerchantView, error)
}

type merchantService struct {
	repo      repository.MerchantRepository
	invoices  repository.MerchantInvoiceRepository
	files     *storage.FileStore
	publisher *events.Publisher
	logger    *logrus.Logger
}

// NewMerchantService creates a new merchant service instance
func NewMerchantService(
	repo repository.MerchantRepository,
	invoices repository.MerchantInvoiceRepository,
	files *storage.FileStore,
	publisher *events.Publisher,
	logger *logrus.Logger,
) MerchantService {
	return &merchantService{
		repo:      repo,
		invoices:  invoices,
		files:     files,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *merchantService) ListMerchants(filters *models.MerchantFilters, page, limit int) ([]models.MerchantView, *models.PaginationInfo, error) {
	merchants, pagination, err := s.repo.List(filters, page, limit)
	if err != nil {
		return nil, nil, err
	}

	views := make([]models.MerchantView, 0, len(merchants))
	for i := range merchants {
		views = append(views, *merchantView(&merchants[i]))
	}
	return views, pagination, nil
}

func (s *merchantService) GetMerchant(id uint) (*models.MerchantView, error) {
	merchant, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return merchantView(merchant), nil
}

func (s *merchantService) CreateMerchant(ctx context.Context, req *models.CreateMerchantRequest) (*models.MerchantView, error) {
	if err := validateSettingPayload(req.Setting); err != nil {
		return nil, err
	}

	merchant := &models.Merchant{
		NameEn:     req.NameEn,
		NameAr:     req.NameAr,
		ProductID:  req.ProductID,
		ReferralID: req.ReferralID,
		ParentID:   req.ParentID,
		StatusID:   req.StatusID,
		IsLive:     req.IsLive,
	}

	// Files are stored before the database commit so the row never points
	// at a path that does not exist. A failed commit may leave an orphan
	// file; that is the accepted trade-off.
	var stored []string
	if req.Logo != nil {
		path, err := s.files.Store(req.Logo, merchantLogoDir)
		if err != nil {
			return nil, invalidf("logo: %v", err)
		}
		merchant.LogoPath = &path
		stored = append(stored, path)
	}
	if req.Attachment != nil {
		path, err := s.files.Store(req.Attachment, merchantAttachmentDir)
		if err != nil {
			s.discard(stored)
			return nil, invalidf("attachment: %v", err)
		}
		merchant.AttachmentPath = &path
		stored = append(stored, path)
	}

	setting := settingFromPayload(req.Setting)

	if err := s.repo.CreateWithSetting(merchant, setting, req.InvoiceTypeIDs); err != nil {
		s.discard(stored)
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, repository.ErrDuplicateReferral
		}
		return nil, err
	}

	s.publisher.Publish(ctx, "merchant", "created", merchant.ID, nil)

	return s.GetMerchant(merchant.ID)
}

func (s *merchantService) UpdateMerchant(ctx context.Context, id uint, req *models.UpdateMerchantRequest) (*models.MerchantView, error) {
	if req.Setting != nil {
		if err := validateSettingPayload(req.Setting); err != nil {
			return nil, err
		}
	}

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
	if req.ReferralID != nil {
		attrs["referral_id"] = *req.ReferralID
	}
	if req.ParentID != nil {
		attrs["parent_id"] = *req.ParentID
	}
	if req.StatusID != nil {
		attrs["status_id"] = *req.StatusID
	}
	if req.IsLive != nil {
		attrs["is_live"] = *req.IsLive
	}

	// Replacement order: store new, commit, then delete old. A crash
	// between the last two steps orphans a file instead of breaking the
	// record.
	var stored, obsolete []string
	if req.Logo != nil {
		path, err := s.files.Store(req.Logo, merchantLogoDir)
		if err != nil {
			return nil, invalidf("logo: %v", err)
		}
		attrs["logo_path"] = path
		stored = append(stored, path)
		if existing.LogoPath != nil {
			obsolete = append(obsolete, *existing.LogoPath)
		}
	}
	if req.Attachment != nil {
		path, err := s.files.Store(req.Attachment, merchantAttachmentDir)
		if err != nil {
			s.discard(stored)
			return nil, invalidf("attachment: %v", err)
		}
		attrs["attachment_path"] = path
		stored = append(stored, path)
		if existing.AttachmentPath != nil {
			obsolete = append(obsolete, *existing.AttachmentPath)
		}
	}

	var setting *models.MerchantSetting
	if req.Setting != nil {
		setting = settingFromPayload(req.Setting)
	}

	merchant, err := s.repo.UpdateWithSetting(id, attrs, setting, req.InvoiceTypeIDs)
	if err != nil {
		s.discard(stored)
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, repository.ErrDuplicateReferral
		}
		return nil, err
	}

	s.discard(obsolete)
	s.publisher.Publish(ctx, "merchant", "updated", id, nil)

	return merchantView(merchant), nil
}

func (s *merchantService) DeleteMerchant(ctx context.Context, id uint, force bool) error {
	if err := s.repo.Delete(id, force); err != nil {
		return err
	}
	s.publisher.Publish(ctx, "merchant", "deleted", id, nil)
	return nil
}

func (s *merchantService) RestoreMerchant(ctx context.Context, id uint) (*models.MerchantView, error) {
	merchant, err := s.repo.Restore(id)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(ctx, "merchant", "restored", id, nil)
	return merchantView(merchant), nil
}

// SyncInvoiceTypes replaces the merchant's invoice type links with the
// requested set.
func (s *merchantService) SyncInvoiceTypes(ctx context.Context, id uint, req *models.SyncMerchantInvoicesRequest) (*models.MerchantView, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, err
	}

	if err := s.invoices.BulkUpsert(id, req.InvoiceTypeIDs); err != nil {
		return nil, err
	}
	if _, err := s.invoices.DeleteExcept(id, req.InvoiceTypeIDs); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, "merchant", "updated", id, nil)
	return s.GetMerchant(id)
}

func (s *merchantService) discard(paths []string) {
	for _, path := range paths {
		if err := s.files.Delete(path); err != nil {
			s.logger.WithError(err).WithField("path", path).Warn("failed to remove stored file")
		}
	}
}

// settingFromPayload maps the request sub-object to the settings row,
// applying the normalization rules: custom URLs off clears the URL set,
// SMS notifications off zeroes every SMS counter.
func settingFromPayload(p *models.MerchantSettingPayload) *models.MerchantSetting {
	setting := &models.MerchantSetting{
		PayoutModel:         p.PayoutModel,
		BankID:              p.BankID,
		IBAN:                p.IBAN,
		AccountNumber:       p.AccountNumber,
		OrderType:           p.OrderType,
		HasCustomURLs:       p.HasCustomURLs,
		URLsSettings:        p.URLsSettings,
		IsEnableSMS:         p.IsEnableSMS,
		IsEnableEmail:       p.IsEnableEmail,
		MonthlySMSLimit:     p.MonthlySMSLimit,
		DailySMSLimit:       p.DailySMSLimit,
		MonthlySMSConsumed:  p.MonthlySMSConsumed,
		DailySMSConsumed:    p.DailySMSConsumed,
		CountryCode:         p.CountryCode,
		CurrencyCode:        p.CurrencyCode,
		TermsAndConditionID: p.TermsAndConditionID,
	}

	if !setting.HasCustomURLs {
		setting.URLsSettings = nil
	}
	if !setting.IsEnableSMS {
		setting.MonthlySMSLimit = 0
		setting.DailySMSLimit = 0
		setting.MonthlySMSConsumed = 0
		setting.DailySMSConsumed = 0
	}

	return setting
}

func validateSettingPayload(p *models.MerchantSettingPayload) error {
	if p == nil {
		return invalidf("setting is required")
	}
	if !p.PayoutModel.Valid() {
		return invalidf("unknown payout model %d", p.PayoutModel)
	}
	if !p.OrderType.Valid() {
		return invalidf("unknown order type %d", p.OrderType)
	}
	return nil
}
