package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"payment-config-service/internal/cache"
	"payment-config-service/internal/events"
	"payment-config-service/internal/models"
	"payment-config-service/internal/repository"
)

// ReferenceService manages the editable reference tables: invoice types,
// message types and terms versions. Every write clears the lookup cache
// because all three feed cached dropdowns.
type ReferenceService interface {
	ListInvoiceTypes(filters *models.ReferenceFilters, page, limit int) ([]models.InvoiceType, *models.PaginationInfo, error)
	GetInvoiceType(id uint) (*models.InvoiceType, error)
	CreateInvoiceType(ctx context.Context, req *models.CreateInvoiceTypeRequest) (*models.InvoiceType, error)
	UpdateInvoiceType(ctx context.Context, id uint, req *models.UpdateInvoiceTypeRequest) (*models.InvoiceType, error)
	DeleteInvoiceType(ctx context.Context, id uint, force bool) error
	RestoreInvoiceType(ctx context.Context, id uint) (*models.InvoiceType, error)

	ListMessageTypes(filters *models.ReferenceFilters, page, limit int) ([]models.MessageType, *models.PaginationInfo, error)
	GetMessageType(id uint) (*models.MessageType, error)
	CreateMessageType(ctx context.Context, req *models.CreateMessageTypeRequest) (*models.MessageType, error)
	UpdateMessageType(ctx context.Context, id uint, req *models.UpdateMessageTypeRequest) (*models.MessageType, error)
	DeleteMessageType(ctx context.Context, id uint, force bool) error
	RestoreMessageType(ctx context.Context, id uint) (*models.MessageType, error)

	ListTerms(filters *models.ReferenceFilters, page, limit int) ([]models.TermsAndCondition, *models.PaginationInfo, error)
	GetTerms(id uint) (*models.TermsAndCondition, error)
	GetLatestTerms() (*models.TermsAndCondition, error)
	CreateTerms(ctx context.Context, req *models.CreateTermsRequest) (*models.TermsAndCondition, error)
	UpdateTerms(ctx context.Context, id uint, req *models.UpdateTermsRequest) (*models.TermsAndCondition, error)
	DeleteTerms(ctx context.Context, id uint, force bool) error
	RestoreTerms(ctx context.Context, id uint) (*models.TermsAndCondition, error)
}

type referenceService struct {
	invoiceTypes repository.InvoiceTypeRepository
	messageTypes repository.MessageTypeRepository
	terms        repository.TermsRepository
	cache        *cache.LookupCache
	publisher    *events.Publisher
	logger       *logrus.Logger
}

// NewReferenceService creates a new reference data service instance
func NewReferenceService(
	invoiceTypes repository.InvoiceTypeRepository,
	messageTypes repository.MessageTypeRepository,
	terms repository.TermsRepository,
	lookupCache *cache.LookupCache,
	publisher *events.Publisher,
	logger *logrus.Logger,
) ReferenceService {
	return &referenceService{
		invoiceTypes: invoiceTypes,
		messageTypes: messageTypes,
		terms:        terms,
		cache:        lookupCache,
		publisher:    publisher,
		logger:       logger,
	}
}

func (s *referenceService) invalidate(ctx context.Context) {
	if err := s.cache.ClearCache(ctx); err != nil {
		s.logger.WithError(err).Warn("failed to clear lookup cache")
	}
}

func (s *referenceService) ListInvoiceTypes(filters *models.ReferenceFilters, page, limit int) ([]models.InvoiceType, *models.PaginationInfo, error) {
	return s.invoiceTypes.List(filters, page, limit)
}

func (s *referenceService) GetInvoiceType(id uint) (*models.InvoiceType, error) {
	return s.invoiceTypes.GetByID(id)
}

func (s *referenceService) CreateInvoiceType(ctx context.Context, req *models.CreateInvoiceTypeRequest) (*models.InvoiceType, error) {
	invoiceType := &models.InvoiceType{
		NameEn:   req.NameEn,
		NameAr:   req.NameAr,
		IsActive: true,
	}
	if req.IsActive != nil {
		invoiceType.IsActive = *req.IsActive
	}

	if err := s.invoiceTypes.Create(invoiceType); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.publisher.Publish(ctx, "invoice_type", "created", invoiceType.ID, nil)
	return invoiceType, nil
}

func (s *referenceService) UpdateInvoiceType(ctx context.Context, id uint, req *models.UpdateInvoiceTypeRequest) (*models.InvoiceType, error) {
	attrs := map[string]interface{}{}
	if req.NameEn != nil {
		attrs["name_en"] = *req.NameEn
	}
	if req.NameAr != nil {
		attrs["name_ar"] = *req.NameAr
	}
	if req.IsActive != nil {
		attrs["is_active"] = *req.IsActive
	}

	invoiceType, err := s.invoiceTypes.Update(id, attrs)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.publisher.Publish(ctx, "invoice_type", "updated", id, nil)
	return invoiceType, nil
}

func (s *referenceService) DeleteInvoiceType(ctx context.Context, id uint, force bool) error {
	if err := s.invoiceTypes.Delete(id, force); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.publisher.Publish(ctx, "invoice_type", "deleted", id, nil)
	return nil
}

func (s *referenceService) RestoreInvoiceType(ctx context.Context, id uint) (*models.InvoiceType, error) {
	invoiceType, err := s.invoiceTypes.Restore(id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.publisher.Publish(ctx, "invoice_type", "restored", id, nil)
	return invoiceType, nil
}

func (s *referenceService) ListMessageTypes(filters *models.ReferenceFilters, page, limit int) ([]models.MessageType, *models.PaginationInfo, error) {
	return s.messageTypes.List(filters, page, limit)
}

func (s *referenceService) GetMessageType(id uint) (*models.MessageType, error) {
	return s.messageTypes.GetByID(id)
}

func (s *referenceService) CreateMessageType(ctx context.Context, req *models.CreateMessageTypeRequest) (*models.MessageType, error) {
	if !req.Direction.Valid() {
		return nil, invalidf("unknown message direction %d", req.Direction)
	}

	messageType := &models.MessageType{
		NameEn:    req.NameEn,
		NameAr:    req.NameAr,
		Direction: req.Direction,
		IsActive:  true,
	}
	if req.IsActive != nil {
		messageType.IsActive = *req.IsActive
	}

	if err := s.messageTypes.Create(messageType); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.publisher.Publish(ctx, "message_type", "created", messageType.ID, nil)
	return messageType, nil
}

func (s *referenceService) UpdateMessageType(ctx context.Context, id uint, req *models.UpdateMessageTypeRequest) (*models.MessageType, error) {
	attrs := map[string]interface{}{}
	if req.NameEn != nil {
		attrs["name_en"] = *req.NameEn
	}
	if req.NameAr != nil {
		attrs["name_ar"] = *req.NameAr
	}
	if req.Direction != nil {
		if !req.Direction.Valid() {
			return nil, invalidf("unknown message direction %d", *req.Direction)
		}
		attrs["direction"] = *req.Direction
	}
	if req.IsActive != nil {
		attrs["is_active"] = *req.IsActive
	}

	messageType, err := s.messageTypes.Update(id, attrs)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.publisher.Publish(ctx, "message_type", "updated", id, nil)
	return messageType, nil
}

func (s *referenceService) DeleteMessageType(ctx context.Context, id uint, force bool) error {
	if err := s.messageTypes.Delete(id, force); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.publisher.Publish(ctx, "message_type", "deleted", id, nil)
	return nil
}

func (s *referenceService) RestoreMessageType(ctx context.Context, id uint) (*models.MessageType, error) {
	messageType, err := s.messageTypes.Restore(id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.publisher.Publish(ctx, "message_type", "restored", id, nil)
	return messageType, nil
}

func (s *referenceService) ListTerms(filters *models.ReferenceFilters, page, limit int) ([]models.TermsAndCondition, *models.PaginationInfo, error) {
	return s.terms.List(filters, page, limit)
}

func (s *referenceService) GetTerms(id uint) (*models.TermsAndCondition, error) {
	return s.terms.GetByID(id)
}

func (s *referenceService) GetLatestTerms() (*models.TermsAndCondition, error) {
	return s.terms.GetLatestActive()
}

func (s *referenceService) CreateTerms(ctx context.Context, req *models.CreateTermsRequest) (*models.TermsAndCondition, error) {
	terms := &models.TermsAndCondition{
		Version:   req.Version,
		TitleEn:   req.TitleEn,
		TitleAr:   req.TitleAr,
		ContentEn: req.ContentEn,
		ContentAr: req.ContentAr,
		IsActive:  true,
	}
	if req.IsActive != nil {
		terms.IsActive = *req.IsActive
	}

	if err := s.terms.Create(terms); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.publisher.Publish(ctx, "terms", "created", terms.ID, nil)
	return terms, nil
}

func (s *referenceService) UpdateTerms(ctx context.Context, id uint, req *models.UpdateTermsRequest) (*models.TermsAndCondition, error) {
	attrs := map[string]interface{}{}
	if req.TitleEn != nil {
		attrs["title_en"] = *req.TitleEn
	}
	if req.TitleAr != nil {
		attrs["title_ar"] = *req.TitleAr
	}
	if req.ContentEn != nil {
		attrs["content_en"] = *req.ContentEn
	}
	if req.ContentAr != nil {
		attrs["content_ar"] = *req.ContentAr
	}
	if req.IsActive != nil {
		attrs["is_active"] = *req.IsActive
	}

	terms, err := s.terms.Update(id, attrs)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.publisher.Publish(ctx, "terms", "updated", id, nil)
	return terms, nil
}

func (s *referenceService) DeleteTerms(ctx context.Context, id uint, force bool) error {
	if err := s.terms.Delete(id, force); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.publisher.Publish(ctx, "terms", "deleted", id, nil)
	return nil
}

func (s *referenceService) RestoreTerms(ctx context.Context, id uint) (*models.TermsAndCondition, error) {
	terms, err := s.terms.Restore(id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.publisher.Publish(ctx, "terms", "restored", id, nil)
	return terms, nil
}
