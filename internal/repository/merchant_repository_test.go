package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"payment-config-service/internal/models"
)

func seedMerchantFixtures(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&models.MerchantStatus{NameEn: "Active", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Product{NameEn: "Gateway"}).Error)
	require.NoError(t, db.Create(&models.InvoiceType{NameEn: "One Time", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.InvoiceType{NameEn: "Recurring", IsActive: true}).Error)
}

func newMerchant(referral string) *models.Merchant {
	return &models.Merchant{
		NameEn:     "Acme Stores",
		ProductID:  1,
		ReferralID: referral,
		StatusID:   1,
	}
}

func newSetting() *models.MerchantSetting {
	return &models.MerchantSetting{
		PayoutModel: models.PayoutModelDaily,
		OrderType:   models.OrderTypeOneTime,
	}
}

func TestMerchantCreateWithSetting(t *testing.T) {
	db := openTestDB(t)
	seedMerchantFixtures(t, db)
	repo := NewMerchantRepository(db)

	merchant := newMerchant("ref-100")
	require.NoError(t, repo.CreateWithSetting(merchant, newSetting(), []uint{1, 2}))

	got, err := repo.GetByID(merchant.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Setting)
	assert.Equal(t, merchant.ID, got.Setting.MerchantID)
	assert.Len(t, got.Invoices, 2)
}

func TestMerchantCreateRollsBackOnSettingFailure(t *testing.T) {
	db := openTestDB(t)
	seedMerchantFixtures(t, db)
	repo := NewMerchantRepository(db)

	// A settings row pinned to the merchant id the next insert will get;
	// its unique index rejects the transactional create
	require.NoError(t, db.Create(&models.MerchantSetting{
		MerchantID:  1,
		PayoutModel: models.PayoutModelDaily,
		OrderType:   models.OrderTypeOneTime,
	}).Error)

	err := repo.CreateWithSetting(newMerchant("ref-101"), newSetting(), nil)
	assert.ErrorIs(t, err, ErrDuplicate)

	// The merchant insert must have rolled back with it
	var count int64
	require.NoError(t, db.Model(&models.Merchant{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMerchantDuplicateReferralWithinProduct(t *testing.T) {
	db := openTestDB(t)
	seedMerchantFixtures(t, db)
	repo := NewMerchantRepository(db)

	require.NoError(t, repo.CreateWithSetting(newMerchant("ref-102"), newSetting(), nil))

	err := repo.CreateWithSetting(newMerchant("ref-102"), newSetting(), nil)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMerchantGetByReferral(t *testing.T) {
	db := openTestDB(t)
	seedMerchantFixtures(t, db)
	repo := NewMerchantRepository(db)

	merchant := newMerchant("ref-103")
	require.NoError(t, repo.CreateWithSetting(merchant, newSetting(), nil))

	got, err := repo.GetByReferral(1, "ref-103")
	require.NoError(t, err)
	assert.Equal(t, merchant.ID, got.ID)

	_, err = repo.GetByReferral(1, "no-such-ref")
	assert.ErrorIs(t, err, ErrMerchantNotFound)
}

func TestMerchantUpdateWithSettingUpserts(t *testing.T) {
	db := openTestDB(t)
	seedMerchantFixtures(t, db)
	repo := NewMerchantRepository(db)

	merchant := newMerchant("ref-104")
	require.NoError(t, repo.CreateWithSetting(merchant, newSetting(), nil))

	replacement := newSetting()
	replacement.PayoutModel = models.PayoutModelWeekly
	updated, err := repo.UpdateWithSetting(merchant.ID, map[string]interface{}{"name_en": "Acme Global"}, replacement, nil)
	require.NoError(t, err)
	assert.Equal(t, "Acme Global", updated.NameEn)
	require.NotNil(t, updated.Setting)
	assert.Equal(t, models.PayoutModelWeekly, updated.Setting.PayoutModel)

	// Still exactly one settings row
	var count int64
	require.NoError(t, db.Model(&models.MerchantSetting{}).Where("merchant_id = ?", merchant.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMerchantUpdateMissing(t *testing.T) {
	db := openTestDB(t)
	seedMerchantFixtures(t, db)
	repo := NewMerchantRepository(db)

	_, err := repo.UpdateWithSetting(9999, map[string]interface{}{"name_en": "ghost"}, nil, nil)
	assert.ErrorIs(t, err, ErrMerchantNotFound)
}

func TestMerchantSyncInvoiceLinksRestoresSoftDeleted(t *testing.T) {
	db := openTestDB(t)
	seedMerchantFixtures(t, db)
	repo := NewMerchantRepository(db)
	invoices := NewMerchantInvoiceRepository(db)

	merchant := newMerchant("ref-105")
	require.NoError(t, repo.CreateWithSetting(merchant, newSetting(), []uint{1, 2}))

	// Drop the Recurring link, then re-sync it back in
	_, err := invoices.DeleteExcept(merchant.ID, []uint{1})
	require.NoError(t, err)

	links, err := invoices.ListByMerchant(merchant.ID)
	require.NoError(t, err)
	require.Len(t, links, 1)

	require.NoError(t, invoices.BulkUpsert(merchant.ID, []uint{1, 2}))

	links, err = invoices.ListByMerchant(merchant.ID)
	require.NoError(t, err)
	assert.Len(t, links, 2)
}

func TestMerchantInvoiceBulkOpsRequireScope(t *testing.T) {
	db := openTestDB(t)
	invoices := NewMerchantInvoiceRepository(db)

	assert.ErrorIs(t, invoices.BulkUpsert(0, []uint{1}), ErrMissingMerchantScope)
	_, err := invoices.DeleteExcept(0, nil)
	assert.ErrorIs(t, err, ErrMissingMerchantScope)
}

func TestMerchantListFilters(t *testing.T) {
	db := openTestDB(t)
	seedMerchantFixtures(t, db)
	repo := NewMerchantRepository(db)

	first := newMerchant("ref-106")
	require.NoError(t, repo.CreateWithSetting(first, newSetting(), nil))

	second := newMerchant("ref-107")
	second.NameEn = "Globex Trading"
	second.IsLive = true
	require.NoError(t, repo.CreateWithSetting(second, newSetting(), nil))

	live := true
	merchants, pagination, err := repo.List(&models.MerchantFilters{IsLive: &live}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pagination.Total)
	require.Len(t, merchants, 1)
	assert.Equal(t, "Globex Trading", merchants[0].NameEn)

	merchants, _, err = repo.List(&models.MerchantFilters{Name: "acme"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, merchants, 1)
	assert.Equal(t, first.ID, merchants[0].ID)
}

func TestMerchantDeleteAndRestore(t *testing.T) {
	db := openTestDB(t)
	seedMerchantFixtures(t, db)
	repo := NewMerchantRepository(db)

	merchant := newMerchant("ref-108")
	require.NoError(t, repo.CreateWithSetting(merchant, newSetting(), nil))

	require.NoError(t, repo.Delete(merchant.ID, false))
	_, err := repo.GetByID(merchant.ID)
	assert.ErrorIs(t, err, ErrMerchantNotFound)

	restored, err := repo.Restore(merchant.ID)
	require.NoError(t, err)
	assert.Equal(t, merchant.ID, restored.ID)

	assert.ErrorIs(t, repo.Delete(9999, false), ErrMerchantNotFound)
}
