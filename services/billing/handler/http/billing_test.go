package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/models"
	"github.com/lapakin/lapakin/services/billing"
	"github.com/lapakin/lapakin/services/billing/mocks"
)

func TestMain(m *testing.M) {
	logger.SetGlobalLogger(&logger.ZapLogger{Logger: zap.NewNop()})
	m.Run()
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	request := httptest.NewRequest(method, target, &buf)
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return request
}

func TestNewBillingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBillingUC(ctrl)
	handler := NewBillingHandler(mockUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockUC, handler.billingUC)
}

func TestBillingHandler_CreateSubscription_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBillingUC(ctrl)
	handler := NewBillingHandler(mockUC)

	req := &models.SubscriptionRequest{OrgID: "org-123", Plan: "growth"}
	mockUC.EXPECT().CreateSubscription(gomock.Any(), req).
		Return(&models.SubscriptionResult{
			SubscriptionID: "sub_1",
			OrgID:          "org-123",
			Plan:           "growth",
			Status:         models.SubscriptionStatusIncomplete,
			ClientSecret:   "pi_secret",
		}, nil)

	e := echo.New()
	recorder := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/internal/billing/subscriptions", req), recorder)

	err := handler.CreateSubscription(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "sub_1")
	assert.Contains(t, recorder.Body.String(), "pi_secret")
}

func TestBillingHandler_CreateSubscription_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBillingUC(ctrl)
	handler := NewBillingHandler(mockUC)

	e := echo.New()
	recorder := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/internal/billing/subscriptions", &models.SubscriptionRequest{OrgID: "org-123"}), recorder)

	err := handler.CreateSubscription(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestBillingHandler_CreateSubscription_UnknownPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBillingUC(ctrl)
	handler := NewBillingHandler(mockUC)

	mockUC.EXPECT().CreateSubscription(gomock.Any(), gomock.Any()).
		Return(nil, billing.ErrUnknownPlan)

	e := echo.New()
	recorder := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/internal/billing/subscriptions", &models.SubscriptionRequest{OrgID: "org-123", Plan: "platinum"}), recorder)

	err := handler.CreateSubscription(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestBillingHandler_CreateSubscription_OrgNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBillingUC(ctrl)
	handler := NewBillingHandler(mockUC)

	mockUC.EXPECT().CreateSubscription(gomock.Any(), gomock.Any()).
		Return(nil, billing.ErrOrganizationNotFound)

	e := echo.New()
	recorder := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/internal/billing/subscriptions", &models.SubscriptionRequest{OrgID: "org-404", Plan: "growth"}), recorder)

	err := handler.CreateSubscription(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestBillingHandler_ChangePlan_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBillingUC(ctrl)
	handler := NewBillingHandler(mockUC)

	req := &models.PlanChangeRequest{Plan: "scale"}
	mockUC.EXPECT().ChangePlan(gomock.Any(), "org-123", req).
		Return(&models.SubscriptionResult{
			SubscriptionID: "sub_1",
			OrgID:          "org-123",
			Plan:           "scale",
			Status:         models.SubscriptionStatusActive,
		}, nil)

	e := echo.New()
	recorder := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, "/", req), recorder)
	c.SetParamNames("orgID")
	c.SetParamValues("org-123")

	err := handler.ChangePlan(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Plan updated successfully")
}

func TestBillingHandler_ChangePlan_PortalFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBillingUC(ctrl)
	handler := NewBillingHandler(mockUC)

	mockUC.EXPECT().ChangePlan(gomock.Any(), "org-123", gomock.Any()).
		Return(&models.SubscriptionResult{
			OrgID:     "org-123",
			Plan:      "scale",
			PortalURL: "https://billing.example.com/p/abc",
		}, nil)

	e := echo.New()
	recorder := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, "/", &models.PlanChangeRequest{Plan: "scale"}), recorder)
	c.SetParamNames("orgID")
	c.SetParamValues("org-123")

	err := handler.ChangePlan(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "billing portal")
	assert.Contains(t, recorder.Body.String(), "https://billing.example.com/p/abc")
}

func TestBillingHandler_ChangePlan_NoSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBillingUC(ctrl)
	handler := NewBillingHandler(mockUC)

	mockUC.EXPECT().ChangePlan(gomock.Any(), "org-123", gomock.Any()).
		Return(nil, billing.ErrNoSubscription)

	e := echo.New()
	recorder := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, "/", &models.PlanChangeRequest{Plan: "scale"}), recorder)
	c.SetParamNames("orgID")
	c.SetParamValues("org-123")

	err := handler.ChangePlan(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestBillingHandler_CancelSubscription_Immediate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBillingUC(ctrl)
	handler := NewBillingHandler(mockUC)

	mockUC.EXPECT().CancelSubscription(gomock.Any(), "org-123", true).
		Return(&models.SubscriptionResult{
			SubscriptionID: "sub_1",
			OrgID:          "org-123",
			Status:         models.SubscriptionStatusCanceled,
		}, nil)

	e := echo.New()
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodDelete, "/?immediate=true", nil)
	c := e.NewContext(request, recorder)
	c.SetParamNames("orgID")
	c.SetParamValues("org-123")

	err := handler.CancelSubscription(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestBillingHandler_CreateCheckout_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBillingUC(ctrl)
	handler := NewBillingHandler(mockUC)

	req := &models.CheckoutRequest{OrderID: "order-77", OrgID: "org-123", Amount: 250000}
	mockUC.EXPECT().CreateCheckout(gomock.Any(), req).
		Return(&models.CheckoutSession{SessionID: "cs_1", URL: "https://checkout.example.com/c/cs_1"}, nil)

	e := echo.New()
	recorder := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/internal/billing/checkout", req), recorder)

	err := handler.CreateCheckout(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "cs_1")
}

func TestBillingHandler_CreateCheckout_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBillingUC(ctrl)
	handler := NewBillingHandler(mockUC)

	e := echo.New()
	recorder := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/internal/billing/checkout", &models.CheckoutRequest{
		OrderID: "order-77",
		OrgID:   "org-123",
		Amount:  0,
	}), recorder)

	err := handler.CreateCheckout(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestBillingHandler_CreateCheckout_InvalidBuyerEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBillingUC(ctrl)
	handler := NewBillingHandler(mockUC)

	e := echo.New()
	recorder := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/internal/billing/checkout", &models.CheckoutRequest{
		OrderID:    "order-77",
		OrgID:      "org-123",
		Amount:     250000,
		BuyerEmail: "not-an-address",
	}), recorder)

	err := handler.CreateCheckout(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Buyer email")
}

func TestBillingHandler_CreateBillingPortal_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBillingUC(ctrl)
	handler := NewBillingHandler(mockUC)

	req := &models.PortalRequest{OrgID: "org-123"}
	mockUC.EXPECT().CreateBillingPortal(gomock.Any(), req).
		Return(&models.PortalSession{URL: "https://billing.example.com/p/xyz"}, nil)

	e := echo.New()
	recorder := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/internal/billing/portal", req), recorder)

	err := handler.CreateBillingPortal(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "https://billing.example.com/p/xyz")
}

func TestBillingHandler_CreateConnectedAccount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBillingUC(ctrl)
	handler := NewBillingHandler(mockUC)

	mockUC.EXPECT().CreateConnectedAccount(gomock.Any(), "org-123").
		Return(&models.ConnectedAccount{
			OrgID:         "org-123",
			AccountID:     "acct_1",
			Status:        models.AccountStatusPending,
			OnboardingURL: "https://connect.example.com/setup/acct_1",
		}, nil)

	e := echo.New()
	recorder := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/", nil), recorder)
	c.SetParamNames("orgID")
	c.SetParamValues("org-123")

	err := handler.CreateConnectedAccount(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "acct_1")
}

func TestBillingHandler_CreateOnboardingLink_NoAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBillingUC(ctrl)
	handler := NewBillingHandler(mockUC)

	mockUC.EXPECT().CreateOnboardingLink(gomock.Any(), "org-123").
		Return(nil, billing.ErrNoConnectedAccount)

	e := echo.New()
	recorder := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/", nil), recorder)
	c.SetParamNames("orgID")
	c.SetParamValues("org-123")

	err := handler.CreateOnboardingLink(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestBillingHandler_CreatePayout_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBillingUC(ctrl)
	handler := NewBillingHandler(mockUC)

	req := &models.PayoutRequest{OrgID: "org-123", Amount: 1000000}
	mockUC.EXPECT().CreatePayout(gomock.Any(), req).
		Return(&models.Payout{
			OrgID:       "org-123",
			GrossAmount: 1000000,
			FeeAmount:   50000,
			NetAmount:   950000,
			Status:      models.PayoutStatusSettled,
			TransferID:  "tr_1",
		}, nil)

	e := echo.New()
	recorder := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/internal/billing/payouts", req), recorder)

	err := handler.CreatePayout(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "tr_1")
}

func TestBillingHandler_CreatePayout_PayoutsDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBillingUC(ctrl)
	handler := NewBillingHandler(mockUC)

	mockUC.EXPECT().CreatePayout(gomock.Any(), gomock.Any()).
		Return(nil, billing.ErrPayoutsDisabled)

	e := echo.New()
	recorder := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/internal/billing/payouts", &models.PayoutRequest{
		OrgID:  "org-123",
		Amount: 1000000,
	}), recorder)

	err := handler.CreatePayout(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestBillingHandler_ListPayouts_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBillingUC(ctrl)
	handler := NewBillingHandler(mockUC)

	mockUC.EXPECT().ListPayouts(gomock.Any(), "org-123").
		Return([]models.Payout{
			{OrgID: "org-123", GrossAmount: 1000000, Status: models.PayoutStatusSettled},
		}, nil)

	e := echo.New()
	recorder := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), recorder)
	c.SetParamNames("orgID")
	c.SetParamValues("org-123")

	err := handler.ListPayouts(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestBillingHandler_ListPayouts_InternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBillingUC(ctrl)
	handler := NewBillingHandler(mockUC)

	mockUC.EXPECT().ListPayouts(gomock.Any(), "org-123").
		Return(nil, errors.New("db unavailable"))

	e := echo.New()
	recorder := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), recorder)
	c.SetParamNames("orgID")
	c.SetParamValues("org-123")

	err := handler.ListPayouts(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
