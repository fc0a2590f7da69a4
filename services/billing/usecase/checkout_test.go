package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/lapakin/lapakin/internal/pkg/models"
	"github.com/lapakin/lapakin/services/billing/mocks"
)

func TestCreateCheckout_NewSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBillingRepo(ctrl)
	mockGW := mocks.NewMockBillingGW(ctrl)
	uc := NewBillingUC(testConfig(), mockRepo, mockGW)

	req := &models.CheckoutRequest{
		OrderID:     "order-77",
		OrgID:       "org-123",
		Amount:      250000,
		Description: "Batik shirt, size L",
	}
	session := &models.CheckoutSession{
		SessionID: "cs_1",
		URL:       "https://checkout.example.com/c/cs_1",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	mockRepo.EXPECT().GetCachedCheckoutSession(gomock.Any(), "order-77").Return(nil, nil)
	mockGW.EXPECT().CreateCheckoutSession(gomock.Any(), req).Return(session, nil)
	mockRepo.EXPECT().CacheCheckoutSession(gomock.Any(), "order-77", session).Return(nil)

	got, err := uc.CreateCheckout(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestCreateCheckout_ReusesOpenSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBillingRepo(ctrl)
	mockGW := mocks.NewMockBillingGW(ctrl)
	uc := NewBillingUC(testConfig(), mockRepo, mockGW)

	cached := &models.CheckoutSession{
		SessionID: "cs_1",
		URL:       "https://checkout.example.com/c/cs_1",
		ExpiresAt: time.Now().Add(12 * time.Hour),
	}

	mockRepo.EXPECT().GetCachedCheckoutSession(gomock.Any(), "order-77").Return(cached, nil)

	// no provider call: the open session is returned as is
	got, err := uc.CreateCheckout(context.Background(), &models.CheckoutRequest{
		OrderID: "order-77",
		OrgID:   "org-123",
		Amount:  250000,
	})

	assert.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestCreateCheckout_CacheLookupFailureStillCreates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBillingRepo(ctrl)
	mockGW := mocks.NewMockBillingGW(ctrl)
	uc := NewBillingUC(testConfig(), mockRepo, mockGW)

	req := &models.CheckoutRequest{OrderID: "order-78", OrgID: "org-123", Amount: 99000}
	session := &models.CheckoutSession{SessionID: "cs_2", URL: "https://checkout.example.com/c/cs_2"}

	mockRepo.EXPECT().GetCachedCheckoutSession(gomock.Any(), "order-78").Return(nil, errors.New("redis down"))
	mockGW.EXPECT().CreateCheckoutSession(gomock.Any(), req).Return(session, nil)
	mockRepo.EXPECT().CacheCheckoutSession(gomock.Any(), "order-78", session).Return(errors.New("redis down"))

	got, err := uc.CreateCheckout(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "cs_2", got.SessionID)
}

func TestCreateCheckout_GatewayError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBillingRepo(ctrl)
	mockGW := mocks.NewMockBillingGW(ctrl)
	uc := NewBillingUC(testConfig(), mockRepo, mockGW)

	req := &models.CheckoutRequest{OrderID: "order-79", OrgID: "org-123", Amount: 50000}

	mockRepo.EXPECT().GetCachedCheckoutSession(gomock.Any(), "order-79").Return(nil, nil)
	mockGW.EXPECT().CreateCheckoutSession(gomock.Any(), req).Return(nil, errors.New("provider unavailable"))

	got, err := uc.CreateCheckout(context.Background(), req)

	assert.Nil(t, got)
	assert.Error(t, err)
}
