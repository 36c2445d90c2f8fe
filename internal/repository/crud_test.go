package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"payment-config-service/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// One connection keeps the in-memory database alive across queries
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.MerchantStatus{},
		&models.PspStatus{},
		&models.UserStatus{},
		&models.InvoiceType{},
		&models.MessageType{},
		&models.TermsAndCondition{},
		&models.Bank{},
		&models.Product{},
		&models.Merchant{},
		&models.MerchantSetting{},
		&models.MerchantInvoice{},
		&models.Psp{},
		&models.PaymentMethod{},
		&models.PspPaymentMethod{},
		&models.User{},
	))
	return db
}

func seedPsp(t *testing.T, db *gorm.DB, name, code string) *models.Psp {
	t.Helper()
	psp := &models.Psp{Name: name, Code: code, StatusID: 1}
	require.NoError(t, db.Create(psp).Error)
	return psp
}

func TestCRUDCreateAndFind(t *testing.T) {
	db := openTestDB(t)
	crud := NewCRUD[models.Psp](db)

	psp := &models.Psp{Name: "Checkout", Code: "checkout", StatusID: 1}
	require.NoError(t, crud.Create(psp))
	assert.NotZero(t, psp.ID)

	found, err := crud.FindByID(psp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Checkout", found.Name)

	_, err = crud.FindByID(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCRUDCreateDuplicateCode(t *testing.T) {
	db := openTestDB(t)
	crud := NewCRUD[models.Psp](db)

	require.NoError(t, crud.Create(&models.Psp{Name: "Checkout", Code: "checkout", StatusID: 1}))
	err := crud.Create(&models.Psp{Name: "Checkout Two", Code: "checkout", StatusID: 1})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCRUDUpdate(t *testing.T) {
	db := openTestDB(t)
	crud := NewCRUD[models.Psp](db)
	psp := seedPsp(t, db, "Checkout", "checkout")

	updated, err := crud.Update(psp.ID, map[string]interface{}{"name": "Checkout Ltd"})
	require.NoError(t, err)
	assert.Equal(t, "Checkout Ltd", updated.Name)
	assert.Equal(t, "checkout", updated.Code)

	_, err = crud.Update(9999, map[string]interface{}{"name": "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCRUDUpdateEmptyAttrsIsNoop(t *testing.T) {
	db := openTestDB(t)
	crud := NewCRUD[models.Psp](db)
	psp := seedPsp(t, db, "Checkout", "checkout")

	updated, err := crud.Update(psp.ID, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "Checkout", updated.Name)
}

func TestCRUDSoftDeleteAndRestore(t *testing.T) {
	db := openTestDB(t)
	crud := NewCRUD[models.Psp](db)
	psp := seedPsp(t, db, "Checkout", "checkout")

	require.NoError(t, crud.Delete(psp.ID, false))

	_, err := crud.FindByID(psp.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The row still exists under the soft-delete mark
	trashed, err := crud.FindTrashed(psp.ID)
	require.NoError(t, err)
	assert.True(t, trashed.DeletedAt.Valid)

	restored, err := crud.Restore(psp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Checkout", restored.Name)

	// Restoring a live row is an error
	_, err = crud.Restore(psp.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCRUDForceDelete(t *testing.T) {
	db := openTestDB(t)
	crud := NewCRUD[models.Psp](db)
	psp := seedPsp(t, db, "Checkout", "checkout")

	require.NoError(t, crud.Delete(psp.ID, true))

	_, err := crud.FindTrashed(psp.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCRUDDeleteMissing(t *testing.T) {
	db := openTestDB(t)
	crud := NewCRUD[models.Psp](db)

	assert.ErrorIs(t, crud.Delete(9999, false), ErrNotFound)
}

func TestCRUDPaginate(t *testing.T) {
	db := openTestDB(t)
	crud := NewCRUD[models.Psp](db)

	seedPsp(t, db, "Alpha Pay", "alphapay")
	seedPsp(t, db, "Beta Pay", "betapay")
	seedPsp(t, db, "Gamma Pay", "gammapay")

	rows, total, err := crud.Paginate(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, rows, 2)
	// Newest first
	assert.Equal(t, "Gamma Pay", rows[0].Name)

	rows, total, err = crud.Paginate(2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alpha Pay", rows[0].Name)
}

func TestCRUDPaginateWithScopes(t *testing.T) {
	db := openTestDB(t)
	crud := NewCRUD[models.Psp](db)

	seedPsp(t, db, "Alpha Pay", "alphapay")
	seedPsp(t, db, "Beta Pay", "betapay")

	rows, total, err := crud.Paginate(1, 10, FilterLike("name", "alpha"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alpha Pay", rows[0].Name)

	// Blank filter values are no-ops
	rows, total, err = crud.Paginate(1, 10, FilterLike("name", ""), FilterEq("code", ""))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, rows, 2)
}

func TestCRUDPaginateExcludesSoftDeleted(t *testing.T) {
	db := openTestDB(t)
	crud := NewCRUD[models.Psp](db)

	keep := seedPsp(t, db, "Alpha Pay", "alphapay")
	gone := seedPsp(t, db, "Beta Pay", "betapay")
	require.NoError(t, crud.Delete(gone.ID, false))

	rows, total, err := crud.Paginate(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, keep.ID, rows[0].ID)
}

func TestCRUDAll(t *testing.T) {
	db := openTestDB(t)
	crud := NewCRUD[models.Psp](db)

	seedPsp(t, db, "Beta Pay", "betapay")
	seedPsp(t, db, "Alpha Pay", "alphapay")

	rows, err := crud.All()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// id ascending, insertion order
	assert.Equal(t, "Beta Pay", rows[0].Name)
}
