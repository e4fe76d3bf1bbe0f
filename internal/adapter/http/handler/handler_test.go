package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vnpay-connector/config"
	"vnpay-connector/internal/adapter/http/dto"
	"vnpay-connector/internal/core/domain"
	"vnpay-connector/internal/core/ports/mocks"
	"vnpay-connector/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type handlerTestDeps struct {
	h           *VNPayHandler
	urlBuilder  *mocks.MockPaymentURLBuilder
	verifier    *mocks.MockResponseVerifier
	ipnSvc      *mocks.MockIPNService
	merchantAPI *mocks.MockMerchantAPI
	idempCache  *mocks.MockIdempotencyCache
	ctrl        *gomock.Controller
}

func setupHandler(t *testing.T) *handlerTestDeps {
	ctrl := gomock.NewController(t)
	d := &handlerTestDeps{
		urlBuilder:  mocks.NewMockPaymentURLBuilder(ctrl),
		verifier:    mocks.NewMockResponseVerifier(ctrl),
		ipnSvc:      mocks.NewMockIPNService(ctrl),
		merchantAPI: mocks.NewMockMerchantAPI(ctrl),
		idempCache:  mocks.NewMockIdempotencyCache(ctrl),
		ctrl:        ctrl,
	}
	cfg := config.VNPayConfig{TmnCode: "TESTCODE", Currency: "VND", Timezone: "UTC"}
	d.h = NewVNPayHandler(d.urlBuilder, d.verifier, d.ipnSvc, d.merchantAPI, d.idempCache, cfg, zerolog.Nop())
	d.h.now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }
	return d
}

func jsonContext(t *testing.T, method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["error_code"].(string)
	return code
}

// --- CreatePayment ---

func TestCreatePayment_Success(t *testing.T) {
	d := setupHandler(t)
	defer d.ctrl.Finish()

	d.urlBuilder.EXPECT().BuildPaymentURL(domain.PaymentRequest{
		OrderID:          "ORD001",
		Amount:           150000,
		OrderDescription: "Thanh toan don hang",
		IPAddress:        "203.0.113.7",
		BankCode:         "NCB",
		Locale:           "vn",
	}).Return("https://sandbox.vnpayment.vn/paymentv2/vpcpay.html?vnp_TxnRef=ORD001", nil)

	c, w := jsonContext(t, http.MethodPost, "/api/vnpay/create_payment", dto.CreatePaymentRequest{
		OrderID:          "ORD001",
		Amount:           150000,
		OrderDescription: " Thanh toan don hang ",
		BankCode:         "NCB",
		Locale:           "vn",
	})
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	d.h.CreatePayment(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "ORD001", data["order_id"])
	assert.Contains(t, data["payment_url"], "vnp_TxnRef=ORD001")
}

func TestCreatePayment_DefaultsOrderIDAndDescription(t *testing.T) {
	d := setupHandler(t)
	defer d.ctrl.Finish()

	d.urlBuilder.EXPECT().BuildPaymentURL(gomock.Any()).DoAndReturn(func(req domain.PaymentRequest) (string, error) {
		assert.Equal(t, "ORD20240101120000", req.OrderID)
		assert.Equal(t, "Thanh toan don hang ORD20240101120000", req.OrderDescription)
		return "https://pay.example/?x=1", nil
	})

	c, w := jsonContext(t, http.MethodPost, "/", map[string]interface{}{"amount": 10000})
	d.h.CreatePayment(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreatePayment_ValidationError(t *testing.T) {
	d := setupHandler(t)
	defer d.ctrl.Finish()

	for _, body := range []interface{}{
		map[string]interface{}{},
		map[string]interface{}{"amount": 0},
		map[string]interface{}{"amount": -100},
		map[string]interface{}{"amount": 1000, "orderId": "bad id"},
	} {
		c, w := jsonContext(t, http.MethodPost, "/", body)
		d.h.CreatePayment(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperror.CodeValidation, decodeError(t, w))
	}
}

func TestCreatePayment_ConfigurationError(t *testing.T) {
	d := setupHandler(t)
	defer d.ctrl.Finish()

	d.urlBuilder.EXPECT().BuildPaymentURL(gomock.Any()).Return("", apperror.ErrConfiguration("vnpay.hash_secret"))

	c, w := jsonContext(t, http.MethodPost, "/", map[string]interface{}{"amount": 10000})
	d.h.CreatePayment(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apperror.CodeConfiguration, decodeError(t, w))
}

// --- Return ---

func returnContext(query string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/vnpay_return?"+query, nil)
	return c, w
}

func TestReturn_Success(t *testing.T) {
	d := setupHandler(t)
	defer d.ctrl.Finish()

	d.verifier.EXPECT().VerifyResponse(map[string]string{
		"vnp_TxnRef":        "ORD001",
		"vnp_Amount":        "15000000",
		"vnp_ResponseCode":  "00",
		"vnp_TransactionNo": "14226112",
		"vnp_Locale":        "en",
		"vnp_SecureHash":    "abc",
	}).Return(domain.VerificationResult{IsValid: true, Data: domain.ParameterSet{
		"vnp_TxnRef":        "ORD001",
		"vnp_Amount":        "15000000",
		"vnp_ResponseCode":  "00",
		"vnp_TransactionNo": "14226112",
		"vnp_Locale":        "en",
	}})

	c, w := returnContext("vnp_TxnRef=ORD001&vnp_Amount=15000000&vnp_ResponseCode=00&vnp_TransactionNo=14226112&vnp_Locale=en&vnp_SecureHash=abc")
	d.h.Return(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "success", data["status"])
	assert.Equal(t, "Giao dịch thành công", data["message"])
	assert.Equal(t, "ORD001", data["order_id"])
	assert.Equal(t, "14226112", data["transaction_no"])
	assert.Equal(t, "150000", data["amount"])
	assert.Equal(t, "150,000 VND", data["amount_display"])
	assert.Equal(t, true, data["valid"])
}

func TestReturn_UserCancelled(t *testing.T) {
	d := setupHandler(t)
	defer d.ctrl.Finish()

	d.verifier.EXPECT().VerifyResponse(gomock.Any()).Return(domain.VerificationResult{IsValid: true, Data: domain.ParameterSet{
		"vnp_TxnRef":       "ORD001",
		"vnp_ResponseCode": "24",
	}})

	c, w := returnContext("vnp_TxnRef=ORD001")
	d.h.Return(c)

	data := decodeData(t, w)
	assert.Equal(t, "error", data["status"])
	assert.Equal(t, "Khách hàng hủy giao dịch", data["message"])
	assert.Equal(t, "24", data["response_code"])
	assert.Equal(t, "", data["amount"])
}

func TestReturn_InvalidSignature(t *testing.T) {
	d := setupHandler(t)
	defer d.ctrl.Finish()

	d.verifier.EXPECT().VerifyResponse(gomock.Any()).Return(domain.VerificationResult{IsValid: false, Data: domain.ParameterSet{
		"vnp_TxnRef":       "ORD001",
		"vnp_ResponseCode": "00",
	}})

	c, w := returnContext("vnp_TxnRef=ORD001&vnp_ResponseCode=00")
	d.h.Return(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "error", data["status"])
	assert.Equal(t, "Invalid signature", data["message"])
	assert.Equal(t, false, data["valid"])
}

// --- IPN ---

func TestIPN_ReturnsBareAck(t *testing.T) {
	d := setupHandler(t)
	defer d.ctrl.Finish()

	d.ipnSvc.EXPECT().HandleIPN(gomock.Any(), map[string]string{"vnp_TxnRef": "ORD001", "vnp_SecureHash": "bad"}).
		Return(domain.IPNAck{RspCode: "97", Message: "Invalid signature"})

	c, w := returnContext("vnp_TxnRef=ORD001&vnp_SecureHash=bad")
	d.h.IPN(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"RspCode":"97","Message":"Invalid signature"}`, w.Body.String())
}

// --- Query ---

func TestQuery_Success(t *testing.T) {
	d := setupHandler(t)
	defer d.ctrl.Finish()

	d.merchantAPI.EXPECT().QueryTransaction(gomock.Any(), domain.QueryRequest{
		TxnRef:          "ORD001",
		TransactionDate: "20240101120000",
		IPAddress:       "192.0.2.1",
	}).Return(&domain.RemoteCallResult{Response: map[string]any{"vnp_ResponseCode": "00", "vnp_TransactionStatus": "00"}}, nil)

	c, w := jsonContext(t, http.MethodPost, "/api/vnpay/query", dto.QueryRequest{OrderID: "ORD001", TransactionDate: "20240101120000"})
	c.Request.RemoteAddr = "192.0.2.1:1234"
	d.h.Query(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "00", data["vnp_TransactionStatus"])
}

func TestQuery_GatewayError(t *testing.T) {
	d := setupHandler(t)
	defer d.ctrl.Finish()

	d.merchantAPI.EXPECT().QueryTransaction(gomock.Any(), gomock.Any()).
		Return(&domain.RemoteCallResult{Err: &domain.RemoteCallError{Message: "gateway rejected the request", StatusCode: 503, Body: "busy"}}, nil)

	c, w := jsonContext(t, http.MethodPost, "/", dto.QueryRequest{OrderID: "ORD001", TransactionDate: "20240101120000"})
	d.h.Query(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, apperror.CodeGatewayCall, decodeError(t, w))
	assert.Contains(t, w.Body.String(), "gateway status 503")
}

func TestQuery_ValidationError(t *testing.T) {
	d := setupHandler(t)
	defer d.ctrl.Finish()

	c, w := jsonContext(t, http.MethodPost, "/", map[string]string{"orderId": "ORD001", "transactionDate": "2024-01-01"})
	d.h.Query(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Refund ---

func validRefundBody() dto.RefundRequest {
	return dto.RefundRequest{OrderID: "ORD001", Amount: 150000, TransactionDate: "20240101120000", TransactionType: "03"}
}

func TestRefund_Success_NoIdempotencyKey(t *testing.T) {
	d := setupHandler(t)
	defer d.ctrl.Finish()

	d.merchantAPI.EXPECT().RefundTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.RefundRequest) (*domain.RemoteCallResult, error) {
			assert.Equal(t, domain.RefundTypePartial, req.TransactionType)
			assert.Equal(t, int64(150000), req.Amount)
			return &domain.RemoteCallResult{Response: map[string]any{"vnp_ResponseCode": "00"}}, nil
		})

	c, w := jsonContext(t, http.MethodPost, "/api/vnpay/refund", validRefundBody())
	d.h.Refund(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "00", decodeData(t, w)["vnp_ResponseCode"])
}

func TestRefund_InvalidTransactionType(t *testing.T) {
	d := setupHandler(t)
	defer d.ctrl.Finish()

	body := validRefundBody()
	body.TransactionType = "04"
	c, w := jsonContext(t, http.MethodPost, "/", body)
	d.h.Refund(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefund_StoresIdempotentResponse(t *testing.T) {
	d := setupHandler(t)
	defer d.ctrl.Finish()

	d.idempCache.EXPECT().Get(gomock.Any(), "refund:key-1").Return(nil, nil)
	d.merchantAPI.EXPECT().RefundTransaction(gomock.Any(), gomock.Any()).
		Return(&domain.RemoteCallResult{Response: map[string]any{"vnp_ResponseCode": "00"}}, nil)
	d.idempCache.EXPECT().Set(gomock.Any(), "refund:key-1", gomock.Any(), 24*time.Hour).DoAndReturn(
		func(_ context.Context, _ string, value []byte, _ time.Duration) error {
			var rec idempotencyRecord
			require.NoError(t, json.Unmarshal(value, &rec))
			assert.Equal(t, refundFingerprint(validRefundBody()), rec.Fingerprint)
			assert.Equal(t, "00", rec.Response["vnp_ResponseCode"])
			return nil
		})

	c, w := jsonContext(t, http.MethodPost, "/", validRefundBody())
	c.Request.Header.Set("Idempotency-Key", "key-1")
	d.h.Refund(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefund_ReplaysCachedResponse(t *testing.T) {
	d := setupHandler(t)
	defer d.ctrl.Finish()

	cached, err := json.Marshal(idempotencyRecord{
		Fingerprint: refundFingerprint(validRefundBody()),
		Response:    map[string]any{"vnp_ResponseCode": "00", "vnp_Message": "cached"},
	})
	require.NoError(t, err)
	d.idempCache.EXPECT().Get(gomock.Any(), "refund:key-2").Return(cached, nil)
	// No RefundTransaction expectation: the gateway must not be called.

	c, w := jsonContext(t, http.MethodPost, "/", validRefundBody())
	c.Request.Header.Set("Idempotency-Key", "key-2")
	d.h.Refund(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
	assert.Equal(t, "cached", decodeData(t, w)["vnp_Message"])
}

func TestRefund_IdempotencyConflict(t *testing.T) {
	d := setupHandler(t)
	defer d.ctrl.Finish()

	cached, err := json.Marshal(idempotencyRecord{Fingerprint: "other", Response: map[string]any{}})
	require.NoError(t, err)
	d.idempCache.EXPECT().Get(gomock.Any(), "refund:key-3").Return(cached, nil)

	c, w := jsonContext(t, http.MethodPost, "/", validRefundBody())
	c.Request.Header.Set("Idempotency-Key", "key-3")
	d.h.Refund(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, apperror.CodeIdempotency, decodeError(t, w))
}

func TestRefund_CacheFailureFallsThrough(t *testing.T) {
	d := setupHandler(t)
	defer d.ctrl.Finish()

	d.idempCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
	d.merchantAPI.EXPECT().RefundTransaction(gomock.Any(), gomock.Any()).
		Return(&domain.RemoteCallResult{Response: map[string]any{"vnp_ResponseCode": "00"}}, nil)
	d.idempCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	c, w := jsonContext(t, http.MethodPost, "/", validRefundBody())
	c.Request.Header.Set("Idempotency-Key", "key-4")
	d.h.Refund(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefund_GatewayErrorNotCached(t *testing.T) {
	d := setupHandler(t)
	defer d.ctrl.Finish()

	d.idempCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	d.merchantAPI.EXPECT().RefundTransaction(gomock.Any(), gomock.Any()).
		Return(&domain.RemoteCallResult{Err: &domain.RemoteCallError{Message: "context deadline exceeded"}}, nil)

	c, w := jsonContext(t, http.MethodPost, "/", validRefundBody())
	c.Request.Header.Set("Idempotency-Key", "key-5")
	d.h.Refund(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

// --- Health ---

func TestHealthCheck_Healthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checker := mocks.NewMockHealthChecker(ctrl)
	checker.EXPECT().Ping(gomock.Any()).Return(nil)
	checker.EXPECT().Name().Return("redis")

	cfg := config.VNPayConfig{TmnCode: "TESTCODE", ReturnURL: "http://localhost:5000/vnpay_return", IPNURL: "http://localhost:5000/vnpay_ipn"}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(cfg, checker)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "TESTCODE", resp.TmnCode)
	assert.Equal(t, "http://localhost:5000/vnpay_ipn", resp.IPNURL)
	assert.Equal(t, "healthy", resp.Dependencies["redis"].Status)
}

func TestHealthCheck_Degraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checker := mocks.NewMockHealthChecker(ctrl)
	checker.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	checker.EXPECT().Name().Return("redis")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(config.VNPayConfig{})(c)
	assert.Equal(t, http.StatusOK, w.Code, "no checkers means healthy")

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(config.VNPayConfig{}, checker)(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "connection refused", resp.Dependencies["redis"].Error)
}
