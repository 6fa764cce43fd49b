package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jayem09/coduxa-sub002/internal/pkg/logger"
	"github.com/Jayem09/coduxa-sub002/internal/pkg/models"
	"github.com/Jayem09/coduxa-sub002/services/credits"
	"github.com/Jayem09/coduxa-sub002/services/credits/mocks"
)

func newTestHandler(t *testing.T, uc credits.CreditsUC) *CreditsHandler {
	t.Helper()

	appLogger, err := logger.NewAppLogger(models.LoggerConfig{Level: "panic"})
	require.NoError(t, err)

	return NewCreditsHandler(uc, &models.Config{}, appLogger)
}

func TestGetPackages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCreditsUC(ctrl)
	h := newTestHandler(t, mockUC)

	mockUC.EXPECT().GetPackages().Return(map[string]models.CreditPackage{
		"popular": {Credits: 40, Amount: 240000, Title: "Popular Pack"},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/packages", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.GetPackages(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response models.PackagesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, 40, response.Packages["popular"].Credits)
	assert.Equal(t, "Popular Pack", response.Packages["popular"].Title)
}

func TestGetBalance_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCreditsUC(ctrl)
	h := newTestHandler(t, mockUC)

	mockUC.EXPECT().GetBalance(gomock.Any(), "u1").Return(70, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/credits/:userId")
	c.SetParamNames("userId")
	c.SetParamValues("u1")

	err := h.GetBalance(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response models.BalanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, 70, response.Credits)
}

func TestGetBalance_NewUserHasZeroCredits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCreditsUC(ctrl)
	h := newTestHandler(t, mockUC)

	mockUC.EXPECT().GetBalance(gomock.Any(), "unknown-user").Return(0, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/credits/:userId")
	c.SetParamNames("userId")
	c.SetParamValues("unknown-user")

	err := h.GetBalance(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response models.BalanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, 0, response.Credits)
}

func TestGetBalance_UpstreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCreditsUC(ctrl)
	h := newTestHandler(t, mockUC)

	mockUC.EXPECT().GetBalance(gomock.Any(), "u1").Return(0, errors.New("connection refused"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/credits/:userId")
	c.SetParamNames("userId")
	c.SetParamValues("u1")

	err := h.GetBalance(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCreateInvoice_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCreditsUC(ctrl)
	h := newTestHandler(t, mockUC)

	mockUC.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.InvoiceRequest) (*models.InvoiceResponse, error) {
			assert.Equal(t, "u1", req.UserID)
			assert.Equal(t, int64(240000), req.Amount)
			assert.Equal(t, 40, req.Credits)
			assert.Equal(t, "Popular Pack", req.PackTitle)

			return &models.InvoiceResponse{
				Success:    true,
				InvoiceURL: "https://checkout.xendit.co/web/inv-123",
				InvoiceID:  "inv-123",
				ExternalID: "topup-u1-1700000000000",
				Amount:     req.Amount,
				Credits:    req.Credits,
				Package:    req.PackTitle,
			}, nil
		})

	requestBody := `{"userId":"u1","amount":240000,"credits":40,"packTitle":"Popular Pack"}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/create-invoice", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateInvoice(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response models.InvoiceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "inv-123", response.InvoiceID)
	assert.Equal(t, "topup-u1-1700000000000", response.ExternalID)
}

func TestCreateInvoice_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCreditsUC(ctrl)
	h := newTestHandler(t, mockUC)

	mockUC.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: userId is required", credits.ErrInvalidRequest))

	requestBody := `{"amount":240000,"credits":40,"packTitle":"Popular Pack"}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/create-invoice", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateInvoice(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateInvoice_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCreditsUC(ctrl)
	h := newTestHandler(t, mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/create-invoice", strings.NewReader(`{invalid_json}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateInvoice(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateInvoice_GatewayError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCreditsUC(ctrl)
	h := newTestHandler(t, mockUC)

	mockUC.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("payment gateway returned status 503"))

	requestBody := `{"userId":"u1","amount":240000,"credits":40,"packTitle":"Popular Pack"}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/create-invoice", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateInvoice(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleWebhook_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCreditsUC(ctrl)
	h := newTestHandler(t, mockUC)

	mockUC.EXPECT().ProcessWebhook(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, invoice *models.XenditInvoice) error {
			assert.Equal(t, "inv-123", invoice.ID)
			assert.Equal(t, "PAID", invoice.Status)
			return nil
		})

	requestBody := `{"id":"inv-123","external_id":"topup-u1-1700000000000","status":"PAID","amount":240000}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.HandleWebhook(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandleWebhook_SemanticError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCreditsUC(ctrl)
	h := newTestHandler(t, mockUC)

	mockUC.EXPECT().ProcessWebhook(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: cannot resolve user from webhook payload", credits.ErrInvalidRequest))

	requestBody := `{"id":"inv-123","external_id":"garbage","status":"PAID","amount":300}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.HandleWebhook(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleWebhook_UpstreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCreditsUC(ctrl)
	h := newTestHandler(t, mockUC)

	mockUC.EXPECT().ProcessWebhook(gomock.Any(), gomock.Any()).
		Return(errors.New("failed to credit user u1: connection refused"))

	requestBody := `{"id":"inv-123","external_id":"topup-u1-1700000000000","status":"PAID","amount":240000}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.HandleWebhook(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetHistory_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCreditsUC(ctrl)
	h := newTestHandler(t, mockUC)

	mockUC.EXPECT().GetHistory(gomock.Any(), "u1", 5).Return([]models.ActivityLogEntry{
		{ID: "a1", Type: models.ActivityCreditPurchase, UserID: "u1", Amount: 240000},
	}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?limit=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/credits/:userId/history")
	c.SetParamNames("userId")
	c.SetParamValues("u1")

	err := h.GetHistory(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
}
