package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"vnpay-connector/config"
	"vnpay-connector/internal/core/domain"
	"vnpay-connector/internal/core/ports"
	"vnpay-connector/pkg/apperror"
	"vnpay-connector/pkg/money"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultAPITimeout     = 30 * time.Second
	defaultQueryOrderInfo = "kiem tra gd"
	defaultRefundInfo     = "Hoan tien giao dich"
	defaultTransactionNo  = "0"
	defaultCreatedBy      = "merchant"
)

// MerchantAPIService implements ports.MerchantAPI against the gateway's
// merchant_webapi endpoint. Calls are made once; failures are not retried.
type MerchantAPIService struct {
	cfg    config.VNPayConfig
	sigSvc ports.SignatureService
	client *resty.Client
	now    func() time.Time
	newID  func() string
	log    zerolog.Logger
}

// NewMerchantAPIService creates a new MerchantAPIService.
// A nil client is replaced by one using cfg.Timeout.
func NewMerchantAPIService(cfg config.VNPayConfig, sigSvc ports.SignatureService, client *resty.Client, log zerolog.Logger) *MerchantAPIService {
	if client == nil {
		client = NewGatewayClient(cfg.Timeout)
	}
	return &MerchantAPIService{
		cfg:    cfg,
		sigSvc: sigSvc,
		client: client,
		now:    time.Now,
		newID:  newRequestID,
		log:    log,
	}
}

// NewGatewayClient returns a resty client with the given timeout and retries off.
func NewGatewayClient(timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = defaultAPITimeout
	}
	return resty.New().
		SetTimeout(timeout).
		SetRetryCount(0)
}

// WithClock replaces the time source used for vnp_CreateDate.
func (s *MerchantAPIService) WithClock(now func() time.Time) *MerchantAPIService {
	s.now = now
	return s
}

// QueryTransaction calls querydr for a previous payment.
func (s *MerchantAPIService) QueryTransaction(ctx context.Context, req domain.QueryRequest) (*domain.RemoteCallResult, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	if req.TxnRef == "" {
		return nil, apperror.ErrRequiredField("txn_ref")
	}
	if req.TransactionDate == "" {
		return nil, apperror.ErrRequiredField("transaction_date")
	}

	params := domain.ParameterSet{
		domain.FieldRequestID:       s.newID(),
		domain.FieldVersion:         orDefault(s.cfg.Version, defaultVersion),
		domain.FieldCommand:         domain.CommandQueryDR,
		domain.FieldTmnCode:         s.cfg.TmnCode,
		domain.FieldTxnRef:          req.TxnRef,
		domain.FieldTransactionDate: req.TransactionDate,
		domain.FieldCreateDate:      s.createDate(),
		domain.FieldIPAddr:          NormalizeIP(req.IPAddress),
		domain.FieldOrderInfo:       orDefault(req.OrderInfo, defaultQueryOrderInfo),
	}

	if err := s.sign(params, QueryHashFields); err != nil {
		return nil, err
	}
	return s.post(ctx, params), nil
}

// RefundTransaction requests a full or partial refund.
func (s *MerchantAPIService) RefundTransaction(ctx context.Context, req domain.RefundRequest) (*domain.RemoteCallResult, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	if req.TxnRef == "" {
		return nil, apperror.ErrRequiredField("txn_ref")
	}
	if req.Amount <= 0 {
		return nil, apperror.Validation("amount must be greater than 0")
	}
	if req.TransactionDate == "" {
		return nil, apperror.ErrRequiredField("transaction_date")
	}

	txnType := req.TransactionType
	if txnType == "" {
		txnType = domain.RefundTypeFull
	}

	params := domain.ParameterSet{
		domain.FieldRequestID:       s.newID(),
		domain.FieldVersion:         orDefault(s.cfg.Version, defaultVersion),
		domain.FieldCommand:         domain.CommandRefund,
		domain.FieldTmnCode:         s.cfg.TmnCode,
		domain.FieldTransactionType: string(txnType),
		domain.FieldTxnRef:          req.TxnRef,
		domain.FieldAmount:          money.ToMinorUnits(req.Amount),
		domain.FieldTransactionNo:   orDefault(req.TransactionNo, defaultTransactionNo),
		domain.FieldTransactionDate: req.TransactionDate,
		domain.FieldCreateBy:        orDefault(req.CreatedBy, defaultCreatedBy),
		domain.FieldCreateDate:      s.createDate(),
		domain.FieldIPAddr:          NormalizeIP(req.IPAddress),
		domain.FieldOrderInfo:       orDefault(req.OrderInfo, defaultRefundInfo),
	}

	if err := s.sign(params, RefundHashFields); err != nil {
		return nil, err
	}
	return s.post(ctx, params), nil
}

func (s *MerchantAPIService) createDate() string {
	return s.now().In(s.cfg.Location()).Format(domain.DateLayout)
}

// sign adds vnp_SecureHash computed over fields in order.
func (s *MerchantAPIService) sign(params domain.ParameterSet, fields []string) error {
	payload, err := SerializePositional(params, fields)
	if err != nil {
		return fmt.Errorf("build %s hash payload: %w", params[domain.FieldCommand], err)
	}
	params[domain.FieldSecureHash] = s.sigSvc.Sign(s.cfg.HashSecret, payload)
	return nil
}

func (s *MerchantAPIService) post(ctx context.Context, params domain.ParameterSet) *domain.RemoteCallResult {
	command := params[domain.FieldCommand]
	start := time.Now()

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string(params)).
		Post(s.cfg.APIURL)
	if err != nil {
		s.log.Error().Err(err).
			Str("command", command).
			Str("txn_ref", params[domain.FieldTxnRef]).
			Dur("latency", time.Since(start)).
			Msg("vnpay api call failed")
		return &domain.RemoteCallResult{Err: &domain.RemoteCallError{Message: err.Error()}}
	}

	s.log.Info().
		Str("command", command).
		Str("txn_ref", params[domain.FieldTxnRef]).
		Int("status", resp.StatusCode()).
		Dur("latency", time.Since(start)).
		Msg("vnpay api call")

	if !resp.IsSuccess() {
		return &domain.RemoteCallResult{Err: &domain.RemoteCallError{
			Message:    "gateway rejected the request",
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}}
	}

	var decoded map[string]any
	if err := json.Unmarshal(resp.Body(), &decoded); err != nil || decoded == nil {
		msg := "body is not a JSON object"
		if err != nil {
			msg = err.Error()
		}
		return &domain.RemoteCallResult{Err: &domain.RemoteCallError{
			Message:    "malformed gateway response: " + msg,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}}
	}
	return &domain.RemoteCallResult{Response: decoded}
}

func newRequestID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
