package services

import (
	"context"

	"payment-config-service/internal/events"
	"payment-config-service/internal/models"
	"payment-config-service/internal/repository"
)

// PspPaymentMethodService handles business logic for PSP payment method
// configurations, including the batch create shape used by the admin UI.
type PspPaymentMethodService interface {
	ListConfigurations(filters *models.PspPaymentMethodFilters, page, limit int) ([]models.PspPaymentMethodView, *models.PaginationInfo, error)
	GetConfiguration(id uint) (*models.PspPaymentMethodView, error)
	CreateConfigurations(ctx context.Context, actor string, req *models.CreatePspPaymentMethodRequest) ([]models.PspPaymentMethodView, error)
	UpdateConfiguration(ctx context.Context, actor string, id uint, req *models.UpdatePspPaymentMethodRequest) (*models.PspPaymentMethodView, error)
	DeleteConfiguration(ctx context.Context, id uint, force bool) error
	RestoreConfiguration(ctx context.Context, id uint) (*models.PspPaymentMethodView, error)
}

type pspPaymentMethodService struct {
	repo      repository.PspPaymentMethodRepository
	psps      repository.PspRepository
	methods   repository.PaymentMethodRepository
	publisher *events.Publisher
}

// NewPspPaymentMethodService creates a new configuration service instance
func NewPspPaymentMethodService(
	repo repository.PspPaymentMethodRepository,
	psps repository.PspRepository,
	methods repository.PaymentMethodRepository,
	publisher *events.Publisher,
) PspPaymentMethodService {
	return &pspPaymentMethodService{repo: repo, psps: psps, methods: methods, publisher: publisher}
}

func (s *pspPaymentMethodService) ListConfigurations(filters *models.PspPaymentMethodFilters, page, limit int) ([]models.PspPaymentMethodView, *models.PaginationInfo, error) {
	configs, pagination, err := s.repo.List(filters, page, limit)
	if err != nil {
		return nil, nil, err
	}

	views := make([]models.PspPaymentMethodView, 0, len(configs))
	for i := range configs {
		views = append(views, *pspPaymentMethodView(&configs[i]))
	}
	return views, pagination, nil
}

func (s *pspPaymentMethodService) GetConfiguration(id uint) (*models.PspPaymentMethodView, error) {
	config, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return pspPaymentMethodView(config), nil
}

// CreateConfigurations accepts both request shapes. When the batch list is
// present and non-empty, the flat fields are ignored; otherwise the flat
// fields must form one complete configuration.
func (s *pspPaymentMethodService) CreateConfigurations(ctx context.Context, actor string, req *models.CreatePspPaymentMethodRequest) ([]models.PspPaymentMethodView, error) {
	if _, err := s.psps.GetByID(req.PspID); err != nil {
		return nil, err
	}

	var bundles []models.PaymentMethodConfig
	if len(req.PaymentMethodsConfig) > 0 {
		bundles = req.PaymentMethodsConfig
	} else {
		if req.PaymentMethodID == nil {
			return nil, invalidf("either paymentMethodId or payment_methods_config is required")
		}
		bundles = []models.PaymentMethodConfig{{
			PaymentMethodID:   *req.PaymentMethodID,
			MerchantID:        req.MerchantID,
			InvoiceTypeID:     req.InvoiceTypeID,
			RefundOption:      req.RefundOption,
			PayoutModel:       req.PayoutModel,
			SubscriptionModel: req.SubscriptionModel,
			FeesType:          req.FeesType,
			SupportsRefund:    req.SupportsRefund,
			SupportsPartial:   req.SupportsPartial,
			SupportsRecurring: req.SupportsRecurring,
			FeeFixed:          req.FeeFixed,
			FeePercent:        req.FeePercent,
			MinAmount:         req.MinAmount,
			MaxAmount:         req.MaxAmount,
			Config:            req.Config,
			TestConfig:        req.TestConfig,
		}}
	}

	configs := make([]*models.PspPaymentMethod, 0, len(bundles))
	for i := range bundles {
		config, err := s.configFromBundle(req.PspID, actor, &bundles[i])
		if err != nil {
			return nil, err
		}
		configs = append(configs, config)
	}

	if err := s.repo.CreateBatch(configs); err != nil {
		return nil, err
	}

	views := make([]models.PspPaymentMethodView, 0, len(configs))
	for _, config := range configs {
		full, err := s.repo.GetByID(config.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, *pspPaymentMethodView(full))
		s.publisher.Publish(ctx, "psp_payment_method", "created", config.ID, nil)
	}
	return views, nil
}

func (s *pspPaymentMethodService) configFromBundle(pspID uint, actor string, b *models.PaymentMethodConfig) (*models.PspPaymentMethod, error) {
	if _, err := s.methods.GetByID(b.PaymentMethodID); err != nil {
		return nil, err
	}
	if !b.RefundOption.Valid() {
		return nil, invalidf("unknown refund option %d", b.RefundOption)
	}
	if !b.PayoutModel.Valid() {
		return nil, invalidf("unknown payout model %d", b.PayoutModel)
	}
	if !b.SubscriptionModel.Valid() {
		return nil, invalidf("unknown subscription model %d", b.SubscriptionModel)
	}
	if !b.FeesType.Valid() {
		return nil, invalidf("unknown fees type %d", b.FeesType)
	}
	if b.MaxAmount > 0 && b.MinAmount > b.MaxAmount {
		return nil, invalidf("minAmount %v exceeds maxAmount %v", b.MinAmount, b.MaxAmount)
	}

	config := &models.PspPaymentMethod{
		PspID:             pspID,
		PaymentMethodID:   b.PaymentMethodID,
		MerchantID:        b.MerchantID.ID,
		InvoiceTypeID:     b.InvoiceTypeID.ID,
		RefundOption:      b.RefundOption,
		PayoutModel:       b.PayoutModel,
		SubscriptionModel: b.SubscriptionModel,
		FeesType:          b.FeesType,
		SupportsRefund:    b.SupportsRefund,
		SupportsPartial:   b.SupportsPartial,
		SupportsRecurring: b.SupportsRecurring,
		FeeFixed:          b.FeeFixed,
		FeePercent:        b.FeePercent,
		MinAmount:         b.MinAmount,
		MaxAmount:         b.MaxAmount,
		Config:            b.Config,
		TestConfig:        b.TestConfig,
	}
	if actor != "" {
		config.CreatedBy = &actor
	}
	return config, nil
}

func (s *pspPaymentMethodService) UpdateConfiguration(ctx context.Context, actor string, id uint, req *models.UpdatePspPaymentMethodRequest) (*models.PspPaymentMethodView, error) {
	attrs := map[string]interface{}{}

	if req.RefundOption != nil {
		if !req.RefundOption.Valid() {
			return nil, invalidf("unknown refund option %d", *req.RefundOption)
		}
		attrs["refund_option"] = *req.RefundOption
	}
	if req.PayoutModel != nil {
		if !req.PayoutModel.Valid() {
			return nil, invalidf("unknown payout model %d", *req.PayoutModel)
		}
		attrs["payout_model"] = *req.PayoutModel
	}
	if req.SubscriptionModel != nil {
		if !req.SubscriptionModel.Valid() {
			return nil, invalidf("unknown subscription model %d", *req.SubscriptionModel)
		}
		attrs["subscription_model"] = *req.SubscriptionModel
	}
	if req.FeesType != nil {
		if !req.FeesType.Valid() {
			return nil, invalidf("unknown fees type %d", *req.FeesType)
		}
		attrs["fees_type"] = *req.FeesType
	}
	if req.SupportsRefund != nil {
		attrs["supports_refund"] = *req.SupportsRefund
	}
	if req.SupportsPartial != nil {
		attrs["supports_partial"] = *req.SupportsPartial
	}
	if req.SupportsRecurring != nil {
		attrs["supports_recurring"] = *req.SupportsRecurring
	}
	if req.FeeFixed != nil {
		attrs["fee_fixed"] = *req.FeeFixed
	}
	if req.FeePercent != nil {
		attrs["fee_percent"] = *req.FeePercent
	}
	if req.MinAmount != nil {
		attrs["min_amount"] = *req.MinAmount
	}
	if req.MaxAmount != nil {
		attrs["max_amount"] = *req.MaxAmount
	}
	if req.Config != nil {
		attrs["config"] = req.Config
	}
	if req.TestConfig != nil {
		attrs["test_config"] = req.TestConfig
	}
	if actor != "" {
		attrs["updated_by"] = actor
	}

	config, err := s.repo.Update(id, attrs)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, "psp_payment_method", "updated", id, nil)
	return pspPaymentMethodView(config), nil
}

func (s *pspPaymentMethodService) DeleteConfiguration(ctx context.Context, id uint, force bool) error {
	if err := s.repo.Delete(id, force); err != nil {
		return err
	}
	s.publisher.Publish(ctx, "psp_payment_method", "deleted", id, nil)
	return nil
}

func (s *pspPaymentMethodService) RestoreConfiguration(ctx context.Context, id uint) (*models.PspPaymentMethodView, error) {
	_, err := s.repo.Restore(id)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(ctx, "psp_payment_method", "restored", id, nil)
	return s.GetConfiguration(id)
}
