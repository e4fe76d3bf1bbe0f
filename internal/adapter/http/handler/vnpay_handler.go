package handler

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"vnpay-connector/config"
	"vnpay-connector/internal/adapter/http/dto"
	"vnpay-connector/internal/adapter/http/middleware"
	"vnpay-connector/internal/core/domain"
	"vnpay-connector/internal/core/ports"
	"vnpay-connector/pkg/apperror"
	"vnpay-connector/pkg/money"
	"vnpay-connector/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

const refundIdempotencyTTL = 24 * time.Hour

// VNPayHandler serves the payment, callback and merchant API routes.
type VNPayHandler struct {
	urlBuilder  ports.PaymentURLBuilder
	verifier    ports.ResponseVerifier
	ipnSvc      ports.IPNService
	merchantAPI ports.MerchantAPI
	idempCache  ports.IdempotencyCache // nil disables Idempotency-Key support
	cfg         config.VNPayConfig
	now         func() time.Time
	log         zerolog.Logger
}

// NewVNPayHandler creates a new VNPayHandler.
func NewVNPayHandler(
	urlBuilder ports.PaymentURLBuilder,
	verifier ports.ResponseVerifier,
	ipnSvc ports.IPNService,
	merchantAPI ports.MerchantAPI,
	idempCache ports.IdempotencyCache,
	cfg config.VNPayConfig,
	log zerolog.Logger,
) *VNPayHandler {
	return &VNPayHandler{
		urlBuilder:  urlBuilder,
		verifier:    verifier,
		ipnSvc:      ipnSvc,
		merchantAPI: merchantAPI,
		idempCache:  idempCache,
		cfg:         cfg,
		now:         time.Now,
		log:         log,
	}
}

// CreatePayment handles POST /api/vnpay/create_payment.
func (h *VNPayHandler) CreatePayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	orderID := req.OrderID
	if orderID == "" {
		orderID = "ORD" + h.now().In(h.cfg.Location()).Format(domain.DateLayout)
	}
	desc := req.OrderDescription
	if desc == "" {
		desc = "Thanh toan don hang " + orderID
	}
	c.Set(middleware.CtxAuditTxnRef, orderID)

	paymentURL, err := h.urlBuilder.BuildPaymentURL(domain.PaymentRequest{
		OrderID:          orderID,
		Amount:           req.Amount,
		OrderDescription: desc,
		IPAddress:        middleware.ClientIP(c),
		BankCode:         req.BankCode,
		Locale:           req.Locale,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.log.Info().Str("txn_ref", orderID).Int64("amount", req.Amount).Msg("payment url created")
	response.OK(c, dto.CreatePaymentResponse{PaymentURL: paymentURL, OrderID: orderID})
}

// Return handles GET /vnpay_return, the shopper's browser redirect.
func (h *VNPayHandler) Return(c *gin.Context) {
	result := h.verifier.VerifyResponse(queryParams(c))
	c.Set(middleware.CtxAuditTxnRef, result.Data[domain.FieldTxnRef])

	rc := result.ResponseCode()
	resp := dto.ReturnResponse{
		Status:        "error",
		OrderID:       result.Data[domain.FieldTxnRef],
		TransactionNo: result.Data[domain.FieldTransactionNo],
		ResponseCode:  rc,
		Valid:         result.IsValid,
	}

	switch {
	case !result.IsValid:
		resp.Message = "Invalid signature"
	case rc == domain.ResponseCodeSuccess:
		resp.Status = "success"
		resp.Message = domain.ResponseMessage(rc)
	default:
		resp.Message = domain.ResponseMessage(rc)
	}

	if amount, err := money.FromMinorUnits(result.Data[domain.FieldAmount]); err == nil {
		resp.Amount = amount.String()
		resp.AmountDisplay = money.Format(amount, h.currency(), displayLanguage(result.Data[domain.FieldLocale]))
	}

	response.OK(c, resp)
}

// IPN handles GET /vnpay_ipn. The gateway expects a bare {RspCode, Message}
// body with HTTP 200 for every outcome.
func (h *VNPayHandler) IPN(c *gin.Context) {
	params := queryParams(c)
	c.Set(middleware.CtxAuditTxnRef, params[domain.FieldTxnRef])

	ack := h.ipnSvc.HandleIPN(c.Request.Context(), params)
	c.JSON(http.StatusOK, ack)
}

// Query handles POST /api/vnpay/query.
func (h *VNPayHandler) Query(c *gin.Context) {
	var req dto.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)
	c.Set(middleware.CtxAuditTxnRef, req.OrderID)

	result, err := h.merchantAPI.QueryTransaction(c.Request.Context(), domain.QueryRequest{
		TxnRef:          req.OrderID,
		TransactionDate: req.TransactionDate,
		IPAddress:       middleware.ClientIP(c),
		OrderInfo:       req.OrderInfo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	if !result.OK() {
		response.Error(c, apperror.ErrGatewayCall(result.Err.Message, result.Err.StatusCode))
		return
	}

	response.OK(c, result.Response)
}

// idempotencyRecord is what the refund idempotency cache stores.
type idempotencyRecord struct {
	Fingerprint string         `json:"fingerprint"`
	Response    map[string]any `json:"response"`
}

// Refund handles POST /api/vnpay/refund. A repeated Idempotency-Key with the
// same body returns the first gateway response without calling the gateway.
func (h *VNPayHandler) Refund(c *gin.Context) {
	var req dto.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)
	c.Set(middleware.CtxAuditTxnRef, req.OrderID)

	idemKey := c.GetHeader(middleware.HeaderIdempotency)
	fingerprint := refundFingerprint(req)
	if h.idempCache != nil && idemKey != "" {
		if rec, ok := h.lookupRefund(c, idemKey); ok {
			if rec.Fingerprint != fingerprint {
				response.Error(c, apperror.ErrIdempotencyConflict())
				return
			}
			c.Header("Idempotent-Replayed", "true")
			response.OK(c, rec.Response)
			return
		}
	}

	result, err := h.merchantAPI.RefundTransaction(c.Request.Context(), domain.RefundRequest{
		TxnRef:          req.OrderID,
		Amount:          req.Amount,
		TransactionDate: req.TransactionDate,
		IPAddress:       middleware.ClientIP(c),
		TransactionType: domain.RefundType(req.TransactionType),
		OrderInfo:       req.OrderInfo,
		TransactionNo:   req.TransactionNo,
		CreatedBy:       req.CreatedBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	if !result.OK() {
		response.Error(c, apperror.ErrGatewayCall(result.Err.Message, result.Err.StatusCode))
		return
	}

	if h.idempCache != nil && idemKey != "" {
		h.storeRefund(c, idemKey, idempotencyRecord{Fingerprint: fingerprint, Response: result.Response})
	}

	response.OK(c, result.Response)
}

func (h *VNPayHandler) lookupRefund(c *gin.Context, key string) (idempotencyRecord, bool) {
	var rec idempotencyRecord
	cached, err := h.idempCache.Get(c.Request.Context(), refundCacheKey(key))
	if err != nil {
		h.log.Warn().Err(err).Msg("idempotency cache read failed, calling gateway")
		return rec, false
	}
	if cached == nil {
		return rec, false
	}
	if err := json.Unmarshal(cached, &rec); err != nil {
		h.log.Warn().Err(err).Msg("discarding unreadable idempotency record")
		return rec, false
	}
	return rec, true
}

func (h *VNPayHandler) storeRefund(c *gin.Context, key string, rec idempotencyRecord) {
	raw, err := json.Marshal(rec)
	if err != nil {
		h.log.Warn().Err(err).Msg("cannot encode idempotency record")
		return
	}
	if err := h.idempCache.Set(c.Request.Context(), refundCacheKey(key), raw, refundIdempotencyTTL); err != nil {
		h.log.Warn().Err(err).Msg("idempotency cache write failed")
	}
}

func (h *VNPayHandler) currency() string {
	if h.cfg.Currency == "" {
		return "VND"
	}
	return h.cfg.Currency
}

func refundCacheKey(key string) string {
	return "refund:" + key
}

// refundFingerprint hashes the bound request so a reused key with a
// different body can be told apart.
func refundFingerprint(req dto.RefundRequest) string {
	raw, _ := json.Marshal(req)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// queryParams flattens the query string, keeping the first value of each key.
func queryParams(c *gin.Context) map[string]string {
	values := c.Request.URL.Query()
	params := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params
}

func displayLanguage(locale string) language.Tag {
	if locale == "en" {
		return language.English
	}
	return language.Vietnamese
}
