package services

import (
	"payment-config-service/internal/models"
)

// View assembly lives here so every service renders relations the same
// way: resolved labels for fetched relations, nil for relations that were
// not preloaded, and the fixed timestamp layout throughout.

func enumRef(id int, label string) models.LabelRef {
	return models.LabelRef{ID: uint(id), Label: label}
}

func merchantView(m *models.Merchant) *models.MerchantView {
	if m == nil {
		return nil
	}

	view := &models.MerchantView{
		ID:             m.ID,
		NameEn:         m.NameEn,
		NameAr:         m.NameAr,
		ReferralID:     m.ReferralID,
		IsLive:         m.IsLive,
		LogoPath:       m.LogoPath,
		AttachmentPath: m.AttachmentPath,
		CreatedAt:      models.FormatTime(m.CreatedAt),
		UpdatedAt:      models.FormatTime(m.UpdatedAt),
	}

	if m.Product != nil {
		view.Product = &models.LabelRef{ID: m.Product.ID, Label: m.Product.NameEn}
	}
	if m.Status != nil {
		view.Status = &models.LabelRef{ID: m.Status.ID, Label: m.Status.NameEn}
	}
	if m.Parent != nil {
		view.Parent = &models.LabelRef{ID: m.Parent.ID, Label: m.Parent.NameEn}
	}
	if m.Setting != nil {
		view.Setting = merchantSettingView(m.Setting)
	}
	for _, link := range m.Invoices {
		if link.InvoiceType != nil {
			view.InvoiceTypes = append(view.InvoiceTypes, models.LabelRef{
				ID:    link.InvoiceType.ID,
				Label: link.InvoiceType.NameEn,
			})
		}
	}

	return view
}

func merchantSettingView(s *models.MerchantSetting) *models.MerchantSettingView {
	view := &models.MerchantSettingView{
		ID:                  s.ID,
		PayoutModel:         enumRef(int(s.PayoutModel), s.PayoutModel.Label()),
		OrderType:           enumRef(int(s.OrderType), s.OrderType.Label()),
		IBAN:                s.IBAN,
		AccountNumber:       s.AccountNumber,
		HasCustomURLs:       s.HasCustomURLs,
		URLsSettings:        s.URLsSettings,
		IsEnableSMS:         s.IsEnableSMS,
		IsEnableEmail:       s.IsEnableEmail,
		MonthlySMSLimit:     s.MonthlySMSLimit,
		DailySMSLimit:       s.DailySMSLimit,
		MonthlySMSConsumed:  s.MonthlySMSConsumed,
		DailySMSConsumed:    s.DailySMSConsumed,
		CountryCode:         s.CountryCode,
		CurrencyCode:        s.CurrencyCode,
		TermsAndConditionID: s.TermsAndConditionID,
	}
	if s.Bank != nil {
		view.Bank = &models.LabelRef{ID: s.Bank.ID, Label: s.Bank.NameEn}
	}
	return view
}

func pspView(p *models.Psp, includePassword bool) *models.PspView {
	if p == nil {
		return nil
	}

	view := &models.PspView{
		ID:            p.ID,
		Name:          p.Name,
		Code:          p.Code,
		CountryCode:   p.CountryCode,
		CurrencyCode:  p.CurrencyCode,
		ContactName:   p.ContactName,
		ContactEmail:  p.ContactEmail,
		ContactPhone:  p.ContactPhone,
		BankName:      p.BankName,
		IBAN:          p.IBAN,
		AccountNumber: p.AccountNumber,
		CreatedAt:     models.FormatTime(p.CreatedAt),
		UpdatedAt:     models.FormatTime(p.UpdatedAt),
	}
	if p.Status != nil {
		view.Status = &models.LabelRef{ID: p.Status.ID, Label: p.Status.NameEn}
	}
	if includePassword {
		view.Password = p.Password
	}
	return view
}

func pspPaymentMethodView(c *models.PspPaymentMethod) *models.PspPaymentMethodView {
	if c == nil {
		return nil
	}

	view := &models.PspPaymentMethodView{
		ID:                c.ID,
		RefundOption:      enumRef(int(c.RefundOption), c.RefundOption.Label()),
		PayoutModel:       enumRef(int(c.PayoutModel), c.PayoutModel.Label()),
		SubscriptionModel: enumRef(int(c.SubscriptionModel), c.SubscriptionModel.Label()),
		FeesType:          enumRef(int(c.FeesType), c.FeesType.Label()),
		SupportsRefund:    c.SupportsRefund,
		SupportsPartial:   c.SupportsPartial,
		SupportsRecurring: c.SupportsRecurring,
		FeeFixed:          c.FeeFixed,
		FeePercent:        c.FeePercent,
		MinAmount:         c.MinAmount,
		MaxAmount:         c.MaxAmount,
		Config:            c.Config,
		TestConfig:        c.TestConfig,
		CreatedBy:         c.CreatedBy,
		UpdatedBy:         c.UpdatedBy,
		CreatedAt:         models.FormatTime(c.CreatedAt),
		UpdatedAt:         models.FormatTime(c.UpdatedAt),
	}
	if c.Psp != nil {
		view.Psp = &models.LabelRef{ID: c.Psp.ID, Label: c.Psp.Name}
	}
	if c.PaymentMethod != nil {
		view.PaymentMethod = &models.LabelRef{ID: c.PaymentMethod.ID, Label: c.PaymentMethod.Description}
	}
	if c.Merchant != nil {
		view.Merchant = &models.LabelRef{ID: c.Merchant.ID, Label: c.Merchant.NameEn}
	}
	if c.InvoiceType != nil {
		view.InvoiceType = &models.LabelRef{ID: c.InvoiceType.ID, Label: c.InvoiceType.NameEn}
	}
	return view
}

func userView(u *models.User) *models.UserView {
	if u == nil {
		return nil
	}

	view := &models.UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Verified:  u.EmailVerifiedAt != nil,
		CreatedAt: models.FormatTime(u.CreatedAt),
		UpdatedAt: models.FormatTime(u.UpdatedAt),
	}
	if u.Status != nil {
		view.Status = &models.LabelRef{ID: u.Status.ID, Label: u.Status.NameEn}
	}
	return view
}
