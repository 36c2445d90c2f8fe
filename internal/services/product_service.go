package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"payment-config-service/internal/cache"
	"payment-config-service/internal/encryption"
	"payment-config-service/internal/events"
	"payment-config-service/internal/models"
	"payment-config-service/internal/repository"
)

// ProductService handles business logic for products
type ProductService interface {
	ListProducts(ctx context.Context, filters *models.ProductFilters, page, limit int) ([]models.Product, *models.PaginationInfo, int64, error)
	GetProduct(id uint) (*models.Product, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uint, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint, force bool) error
	RestoreProduct(ctx context.Context, id uint) (*models.Product, error)
}

type productService struct {
	repo      repository.ProductRepository
	cache     *cache.LookupCache
	publisher *events.Publisher
	logger    *logrus.Logger
}

// NewProductService creates a new product service instance
func NewProductService(repo repository.ProductRepository, lookupCache *cache.LookupCache, publisher *events.Publisher, logger *logrus.Logger) ProductService {
	return &productService{repo: repo, cache: lookupCache, publisher: publisher, logger: logger}
}

func (s *productService) ListProducts(ctx context.Context, filters *models.ProductFilters, page, limit int) ([]models.Product, *models.PaginationInfo, int64, error) {
	products, pagination, err := s.repo.List(filters, page, limit)
	if err != nil {
		return nil, nil, 0, err
	}
	return products, pagination, s.cache.IndexVersion(ctx, "product"), nil
}

func (s *productService) GetProduct(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	invoiceURL := models.DefaultProductAPIURL
	if req.InvoiceURL != nil && strings.TrimSpace(*req.InvoiceURL) != "" {
		invoiceURL = *req.InvoiceURL
	}

	product := &models.Product{
		NameEn:      req.NameEn,
		NameAr:      req.NameAr,
		IsSigned:    req.IsSigned,
		CallbackURL: req.CallbackURL,
		WebhookURL:  req.WebhookURL,
		InvoiceURL:  invoiceURL,
		HMACKey:     encryption.EncryptedString(req.HMACKey),
		TokenKey:    encryption.EncryptedString(req.TokenKey),
		SecretKey:   encryption.EncryptedString(req.SecretKey),
	}

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.publisher.Publish(ctx, "product", "created", product.ID, nil)
	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uint, req *models.UpdateProductRequest) (*models.Product, error) {
	attrs := map[string]interface{}{}
	if req.NameEn != nil {
		attrs["name_en"] = *req.NameEn
	}
	if req.NameAr != nil {
		attrs["name_ar"] = *req.NameAr
	}
	if req.IsSigned != nil {
		attrs["is_signed"] = *req.IsSigned
	}
	if req.CallbackURL != nil {
		attrs["callback_url"] = *req.CallbackURL
	}
	if req.WebhookURL != nil {
		attrs["webhook_url"] = *req.WebhookURL
	}
	if req.InvoiceURL != nil {
		invoiceURL := strings.TrimSpace(*req.InvoiceURL)
		if invoiceURL == "" {
			invoiceURL = models.DefaultProductAPIURL
		}
		attrs["invoice_url"] = invoiceURL
	}
	// Key updates pass through the encrypted column type so the at-rest
	// representation stays uniform.
	if req.HMACKey != nil {
		attrs["hmac_key"] = encryption.EncryptedString(*req.HMACKey)
	}
	if req.TokenKey != nil {
		attrs["token_key"] = encryption.EncryptedString(*req.TokenKey)
	}
	if req.SecretKey != nil {
		attrs["secret_key"] = encryption.EncryptedString(*req.SecretKey)
	}

	product, err := s.repo.Update(id, attrs)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.publisher.Publish(ctx, "product", "updated", id, nil)
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uint, force bool) error {
	if err := s.repo.Delete(id, force); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.publisher.Publish(ctx, "product", "deleted", id, nil)
	return nil
}

func (s *productService) RestoreProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.repo.Restore(id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.publisher.Publish(ctx, "product", "restored", id, nil)
	return product, nil
}

// Products feed the product dropdown, so every write both advances the
// listing version and invalidates the cached lookup lists.
func (s *productService) invalidate(ctx context.Context) {
	s.cache.BumpIndexVersion(ctx, "product")
	if err := s.cache.ClearCache(ctx); err != nil {
		s.logger.WithError(err).Warn("failed to clear lookup cache")
	}
}
