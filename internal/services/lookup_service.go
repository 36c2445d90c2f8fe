package services

import (
	"context"

	"payment-config-service/internal/cache"
	"payment-config-service/internal/models"
	"payment-config-service/internal/repository"
)

// LookupService serves the cached reference lists and dropdown
// projections. Reads go through the versioned lookup cache; ClearCache
// invalidates everything at once.
type LookupService interface {
	Countries(ctx context.Context) ([]models.Country, error)
	Currencies(ctx context.Context) ([]models.Currency, error)
	Languages(ctx context.Context) ([]models.Language, error)

	MerchantStatusDropdown(ctx context.Context) ([]models.DropdownOption, error)
	PspStatusDropdown(ctx context.Context) ([]models.DropdownOption, error)
	UserStatusDropdown(ctx context.Context) ([]models.DropdownOption, error)
	BankDropdown(ctx context.Context) ([]models.DropdownOption, error)
	InvoiceTypeDropdown(ctx context.Context) ([]models.DropdownOption, error)
	PaymentMethodDropdown(ctx context.Context) ([]models.DropdownOption, error)
	ProductDropdown(ctx context.Context) ([]models.DropdownOption, error)

	ClearCache(ctx context.Context) error
}

type lookupService struct {
	lookups  repository.LookupRepository
	banks    repository.BankRepository
	invoices repository.InvoiceTypeRepository
	methods  repository.PaymentMethodRepository
	products repository.ProductRepository
	cache    *cache.LookupCache
}

// NewLookupService creates a new lookup service instance
func NewLookupService(
	lookups repository.LookupRepository,
	banks repository.BankRepository,
	invoices repository.InvoiceTypeRepository,
	methods repository.PaymentMethodRepository,
	products repository.ProductRepository,
	lookupCache *cache.LookupCache,
) LookupService {
	return &lookupService{
		lookups:  lookups,
		banks:    banks,
		invoices: invoices,
		methods:  methods,
		products: products,
		cache:    lookupCache,
	}
}

func (s *lookupService) Countries(ctx context.Context) ([]models.Country, error) {
	return cache.Remember(s.cache, ctx, "countries", s.lookups.Countries)
}

func (s *lookupService) Currencies(ctx context.Context) ([]models.Currency, error) {
	return cache.Remember(s.cache, ctx, "currencies", s.lookups.Currencies)
}

func (s *lookupService) Languages(ctx context.Context) ([]models.Language, error) {
	return cache.Remember(s.cache, ctx, "languages", s.lookups.Languages)
}

func (s *lookupService) MerchantStatusDropdown(ctx context.Context) ([]models.DropdownOption, error) {
	return cache.Remember(s.cache, ctx, "dropdown:merchant-statuses", func() ([]models.DropdownOption, error) {
		statuses, err := s.lookups.MerchantStatuses()
		if err != nil {
			return nil, err
		}
		options := make([]models.DropdownOption, 0, len(statuses))
		for _, status := range statuses {
			options = append(options, models.DropdownOption{ID: status.ID, Label: status.NameEn})
		}
		return options, nil
	})
}

func (s *lookupService) PspStatusDropdown(ctx context.Context) ([]models.DropdownOption, error) {
	return cache.Remember(s.cache, ctx, "dropdown:psp-statuses", func() ([]models.DropdownOption, error) {
		statuses, err := s.lookups.PspStatuses()
		if err != nil {
			return nil, err
		}
		options := make([]models.DropdownOption, 0, len(statuses))
		for _, status := range statuses {
			options = append(options, models.DropdownOption{ID: status.ID, Label: status.NameEn})
		}
		return options, nil
	})
}

func (s *lookupService) UserStatusDropdown(ctx context.Context) ([]models.DropdownOption, error) {
	return cache.Remember(s.cache, ctx, "dropdown:user-statuses", func() ([]models.DropdownOption, error) {
		statuses, err := s.lookups.UserStatuses()
		if err != nil {
			return nil, err
		}
		options := make([]models.DropdownOption, 0, len(statuses))
		for _, status := range statuses {
			options = append(options, models.DropdownOption{ID: status.ID, Label: status.NameEn})
		}
		return options, nil
	})
}

func (s *lookupService) BankDropdown(ctx context.Context) ([]models.DropdownOption, error) {
	return cache.Remember(s.cache, ctx, "dropdown:banks", func() ([]models.DropdownOption, error) {
		banks, err := s.banks.All()
		if err != nil {
			return nil, err
		}
		options := make([]models.DropdownOption, 0, len(banks))
		for _, bank := range banks {
			options = append(options, models.DropdownOption{ID: bank.ID, Code: bank.SwiftCode, Label: bank.NameEn})
		}
		return options, nil
	})
}

func (s *lookupService) InvoiceTypeDropdown(ctx context.Context) ([]models.DropdownOption, error) {
	return cache.Remember(s.cache, ctx, "dropdown:invoice-types", func() ([]models.DropdownOption, error) {
		types, err := s.invoices.All()
		if err != nil {
			return nil, err
		}
		options := make([]models.DropdownOption, 0, len(types))
		for _, invoiceType := range types {
			options = append(options, models.DropdownOption{ID: invoiceType.ID, Label: invoiceType.NameEn})
		}
		return options, nil
	})
}

func (s *lookupService) PaymentMethodDropdown(ctx context.Context) ([]models.DropdownOption, error) {
	return cache.Remember(s.cache, ctx, "dropdown:payment-methods", func() ([]models.DropdownOption, error) {
		methods, err := s.methods.All()
		if err != nil {
			return nil, err
		}
		options := make([]models.DropdownOption, 0, len(methods))
		for _, method := range methods {
			options = append(options, models.DropdownOption{ID: method.ID, Code: method.Code, Label: method.Description})
		}
		return options, nil
	})
}

func (s *lookupService) ProductDropdown(ctx context.Context) ([]models.DropdownOption, error) {
	return cache.Remember(s.cache, ctx, "dropdown:products", func() ([]models.DropdownOption, error) {
		products, err := s.products.All()
		if err != nil {
			return nil, err
		}
		options := make([]models.DropdownOption, 0, len(products))
		for _, product := range products {
			options = append(options, models.DropdownOption{ID: product.ID, Label: product.NameEn})
		}
		return options, nil
	})
}

func (s *lookupService) ClearCache(ctx context.Context) error {
	return s.cache.ClearCache(ctx)
}
