package services

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"payment-config-service/internal/cache"
	"payment-config-service/internal/models"
	"payment-config-service/internal/storage"
)

func paymentMethodServiceFixture(t *testing.T) (*MockPaymentMethodRepository, *cache.LookupCache, PaymentMethodService) {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	repo := new(MockPaymentMethodRepository)
	files := storage.NewFileStore(t.TempDir(), logger)
	lookupCache := newServiceCache()
	return repo, lookupCache, NewPaymentMethodService(repo, files, lookupCache, nil, logger)
}

func TestMethodCode(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"Apple Pay", "applepay"},
		{"Apple-Pay", "applepay"},
		{"  MADA  ", "mada"},
		{"Visa/Mastercard", "visamastercard"},
		{"3DS v2", "3dsv2"},
		{"---", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MethodCode(tc.source), "source %q", tc.source)
	}
}

func TestCreatePaymentMethodDerivesCodeFromDescription(t *testing.T) {
	repo, _, service := paymentMethodServiceFixture(t)

	repo.On("Create", mock.MatchedBy(func(method *models.PaymentMethod) bool {
		return method.Code == "applepay" && method.Description == "Apple Pay"
	})).Return(nil)

	_, err := service.CreatePaymentMethod(context.Background(), &models.CreatePaymentMethodRequest{
		Description: " Apple Pay ",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreatePaymentMethodPrefersExplicitCode(t *testing.T) {
	repo, _, service := paymentMethodServiceFixture(t)

	repo.On("Create", mock.MatchedBy(func(method *models.PaymentMethod) bool {
		return method.Code == "stcpay"
	})).Return(nil)

	code := "STC-Pay"
	_, err := service.CreatePaymentMethod(context.Background(), &models.CreatePaymentMethodRequest{
		Description: "STC Pay Wallet",
		Code:        &code,
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreatePaymentMethodRejectsUnderivableCode(t *testing.T) {
	repo, _, service := paymentMethodServiceFixture(t)

	_, err := service.CreatePaymentMethod(context.Background(), &models.CreatePaymentMethodRequest{
		Description: "---",
	})
	assert.ErrorIs(t, err, ErrInvalid)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreatePaymentMethodStoresLogo(t *testing.T) {
	repo, _, service := paymentMethodServiceFixture(t)

	repo.On("Create", mock.MatchedBy(func(method *models.PaymentMethod) bool {
		return method.LogoPath != nil && *method.LogoPath != ""
	})).Return(nil)

	_, err := service.CreatePaymentMethod(context.Background(), &models.CreatePaymentMethodRequest{
		Description: "Apple Pay",
		Logo: &models.FileUpload{
			FileName: "logo.png",
			Content:  base64.StdEncoding.EncodeToString([]byte("png-bytes")),
		},
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreatePaymentMethodInvalidatesDropdowns(t *testing.T) {
	repo, lookupCache, service := paymentMethodServiceFixture(t)
	ctx := context.Background()

	loads := 0
	loader := func() ([]string, error) {
		loads++
		return []string{"applepay"}, nil
	}

	_, err := cache.Remember(lookupCache, ctx, "dropdown:payment-methods", loader)
	require.NoError(t, err)
	require.Equal(t, 1, loads)

	repo.On("Create", mock.Anything).Return(nil)
	_, err = service.CreatePaymentMethod(ctx, &models.CreatePaymentMethodRequest{Description: "Mada"})
	require.NoError(t, err)

	_, err = cache.Remember(lookupCache, ctx, "dropdown:payment-methods", loader)
	require.NoError(t, err)
	assert.Equal(t, 2, loads, "a write must force the dropdown to reload")
}

func TestDeletePaymentMethodInvalidatesDropdowns(t *testing.T) {
	repo, lookupCache, service := paymentMethodServiceFixture(t)
	ctx := context.Background()

	loads := 0
	loader := func() ([]string, error) {
		loads++
		return nil, nil
	}

	_, err := cache.Remember(lookupCache, ctx, "dropdown:payment-methods", loader)
	require.NoError(t, err)

	repo.On("Delete", uint(3), false).Return(nil)
	require.NoError(t, service.DeletePaymentMethod(ctx, 3, false))

	_, err = cache.Remember(lookupCache, ctx, "dropdown:payment-methods", loader)
	require.NoError(t, err)
	assert.Equal(t, 2, loads)
}

func TestUpdatePaymentMethodReDerivesCode(t *testing.T) {
	repo, _, service := paymentMethodServiceFixture(t)

	stored := &models.PaymentMethod{ID: 1, Description: "Apple Pay", Code: "applepay"}
	repo.On("GetByID", uint(1)).Return(stored, nil)
	repo.On("Update", uint(1), mock.MatchedBy(func(attrs map[string]interface{}) bool {
		return attrs["code"] == "madapay"
	})).Return(stored, nil)

	code := "Mada Pay"
	_, err := service.UpdatePaymentMethod(context.Background(), 1, &models.UpdatePaymentMethodRequest{Code: &code})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
