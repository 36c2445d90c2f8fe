package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"payment-config-service/internal/models"
)

func TestSettingNormalizationClearsURLsWhenCustomURLsOff(t *testing.T) {
	payload := &models.MerchantSettingPayload{
		PayoutModel:   models.PayoutModelDaily,
		OrderType:     models.OrderTypeOneTime,
		HasCustomURLs: false,
		URLsSettings:  datatypes.JSON(`{"success":"https://example.com/ok"}`),
	}

	setting := settingFromPayload(payload)
	assert.Nil(t, setting.URLsSettings)
}

func TestSettingNormalizationKeepsURLsWhenCustomURLsOn(t *testing.T) {
	urls := datatypes.JSON(`{"success":"https://example.com/ok"}`)
	payload := &models.MerchantSettingPayload{
		PayoutModel:   models.PayoutModelDaily,
		OrderType:     models.OrderTypeOneTime,
		HasCustomURLs: true,
		URLsSettings:  urls,
	}

	setting := settingFromPayload(payload)
	assert.Equal(t, urls, setting.URLsSettings)
}

func TestSettingNormalizationZeroesSMSCountersWhenDisabled(t *testing.T) {
	payload := &models.MerchantSettingPayload{
		PayoutModel:        models.PayoutModelDaily,
		OrderType:          models.OrderTypeOneTime,
		IsEnableSMS:        false,
		MonthlySMSLimit:    500,
		DailySMSLimit:      50,
		MonthlySMSConsumed: 120,
		DailySMSConsumed:   7,
	}

	setting := settingFromPayload(payload)
	assert.Zero(t, setting.MonthlySMSLimit)
	assert.Zero(t, setting.DailySMSLimit)
	assert.Zero(t, setting.MonthlySMSConsumed)
	assert.Zero(t, setting.DailySMSConsumed)
}

func TestSettingNormalizationKeepsSMSCountersWhenEnabled(t *testing.T) {
	payload := &models.MerchantSettingPayload{
		PayoutModel:     models.PayoutModelDaily,
		OrderType:       models.OrderTypeOneTime,
		IsEnableSMS:     true,
		MonthlySMSLimit: 500,
		DailySMSLimit:   50,
	}

	setting := settingFromPayload(payload)
	assert.Equal(t, 500, setting.MonthlySMSLimit)
	assert.Equal(t, 50, setting.DailySMSLimit)
}

func TestValidateSettingPayload(t *testing.T) {
	assert.ErrorIs(t, validateSettingPayload(nil), ErrInvalid)

	assert.ErrorIs(t, validateSettingPayload(&models.MerchantSettingPayload{
		PayoutModel: 99,
		OrderType:   models.OrderTypeOneTime,
	}), ErrInvalid)

	assert.ErrorIs(t, validateSettingPayload(&models.MerchantSettingPayload{
		PayoutModel: models.PayoutModelDaily,
		OrderType:   99,
	}), ErrInvalid)

	assert.NoError(t, validateSettingPayload(&models.MerchantSettingPayload{
		PayoutModel: models.PayoutModelDaily,
		OrderType:   models.OrderTypeOneTime,
	}))
}
