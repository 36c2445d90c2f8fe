package services

import (
	"context"
	"strings"

	"payment-config-service/internal/cache"
	"payment-config-service/internal/events"
	"payment-config-service/internal/models"
	"payment-config-service/internal/repository"
)

// PspService handles business logic for payment service providers
type PspService interface {
	ListPsps(ctx context.Context, filters *models.PspFilters, page, limit int) ([]models.PspView, *models.PaginationInfo, int64, error)
	GetPsp(id uint) (*models.PspView, error)
	CreatePsp(ctx context.Context, req *models.CreatePspRequest) (*models.PspView, error)
	UpdatePsp(ctx context.Context, id uint, req *models.UpdatePspRequest) (*models.PspView, error)
	DeletePsp(ctx context.Context, id uint, force bool) error
	RestorePsp(ctx context.Context, id uint) (*models.PspView, error)
}

type pspService struct {
	repo      repository.PspRepository
	cache     *cache.LookupCache
	publisher *events.Publisher
}

// NewPspService creates a new PSP service instance
func NewPspService(repo repository.PspRepository, lookupCache *cache.LookupCache, publisher *events.Publisher) PspService {
	return &pspService{repo: repo, cache: lookupCache, publisher: publisher}
}

// PspCode derives the unique code from a display name: lowercased with
// spaces stripped. Clients never supply codes.
func PspCode(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
}

func (s *pspService) ListPsps(ctx context.Context, filters *models.PspFilters, page, limit int) ([]models.PspView, *models.PaginationInfo, int64, error) {
	psps, pagination, err := s.repo.List(filters, page, limit)
	if err != nil {
		return nil, nil, 0, err
	}

	views := make([]models.PspView, 0, len(psps))
	for i := range psps {
		views = append(views, *pspView(&psps[i], false))
	}
	return views, pagination, s.cache.IndexVersion(ctx, "psp"), nil
}

func (s *pspService) GetPsp(id uint) (*models.PspView, error) {
	psp, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return pspView(psp, true), nil
}

func (s *pspService) CreatePsp(ctx context.Context, req *models.CreatePspRequest) (*models.PspView, error) {
	code := PspCode(req.Name)
	if code == "" {
		return nil, invalidf("name must contain at least one non-space character")
	}

	psp := &models.Psp{
		Name:          strings.TrimSpace(req.Name),
		Code:          code,
		CountryCode:   req.CountryCode,
		CurrencyCode:  req.CurrencyCode,
		StatusID:      req.StatusID,
		ContactName:   req.ContactName,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
		BankName:      req.BankName,
		IBAN:          req.IBAN,
		AccountNumber: req.AccountNumber,
		Password:      req.Password,
	}

	if err := s.repo.Create(psp); err != nil {
		return nil, err
	}

	s.cache.BumpIndexVersion(ctx, "psp")
	s.publisher.Publish(ctx, "psp", "created", psp.ID, nil)

	return s.GetPsp(psp.ID)
}

func (s *pspService) UpdatePsp(ctx context.Context, id uint, req *models.UpdatePspRequest) (*models.PspView, error) {
	attrs := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, invalidf("name must not be blank")
		}
		// The code stays as derived at creation; integrations key on it.
		attrs["name"] = name
	}
	if req.CountryCode != nil {
		attrs["country_code"] = *req.CountryCode
	}
	if req.CurrencyCode != nil {
		attrs["currency_code"] = *req.CurrencyCode
	}
	if req.StatusID != nil {
		attrs["status_id"] = *req.StatusID
	}
	if req.ContactName != nil {
		attrs["contact_name"] = *req.ContactName
	}
	if req.ContactEmail != nil {
		attrs["contact_email"] = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		attrs["contact_phone"] = *req.ContactPhone
	}
	if req.BankName != nil {
		attrs["bank_name"] = *req.BankName
	}
	if req.IBAN != nil {
		attrs["iban"] = *req.IBAN
	}
	if req.AccountNumber != nil {
		attrs["account_number"] = *req.AccountNumber
	}
	// A nil password means "keep the stored one"; an empty string clears it.
	if req.Password != nil {
		attrs["password"] = *req.Password
	}

	if _, err := s.repo.Update(id, attrs); err != nil {
		return nil, err
	}

	s.cache.BumpIndexVersion(ctx, "psp")
	s.publisher.Publish(ctx, "psp", "updated", id, nil)

	return s.GetPsp(id)
}

func (s *pspService) DeletePsp(ctx context.Context, id uint, force bool) error {
	if err := s.repo.Delete(id, force); err != nil {
		return err
	}
	s.cache.BumpIndexVersion(ctx, "psp")
	s.publisher.Publish(ctx, "psp", "deleted", id, nil)
	return nil
}

func (s *pspService) RestorePsp(ctx context.Context, id uint) (*models.PspView, error) {
	psp, err := s.repo.Restore(id)
	if err != nil {
		return nil, err
	}
	s.cache.BumpIndexVersion(ctx, "psp")
	s.publisher.Publish(ctx, "psp", "restored", id, nil)
	return pspView(psp, true), nil
}
