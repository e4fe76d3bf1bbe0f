package service

import (
	"fmt"
	"net"
	"time"

	"vnpay-connector/config"
	"vnpay-connector/internal/core/domain"
	"vnpay-connector/internal/core/ports"
	"vnpay-connector/pkg/money"

	"github.com/rs/zerolog"
)

const (
	defaultVersion  = "2.1.0"
	defaultCurrency = "VND"
	defaultIP       = "127.0.0.1"
)

// PaymentURLService implements ports.PaymentURLBuilder.
type PaymentURLService struct {
	cfg    config.VNPayConfig
	sigSvc ports.SignatureService
	now    func() time.Time
	log    zerolog.Logger
}

// NewPaymentURLService creates a new PaymentURLService.
func NewPaymentURLService(cfg config.VNPayConfig, sigSvc ports.SignatureService, log zerolog.Logger) *PaymentURLService {
	return &PaymentURLService{
		cfg:    cfg,
		sigSvc: sigSvc,
		now:    time.Now,
		log:    log,
	}
}

// WithClock replaces the time source used for vnp_CreateDate.
func (s *PaymentURLService) WithClock(now func() time.Time) *PaymentURLService {
	s.now = now
	return s
}

// BuildPaymentURL assembles and signs the redirect URL for a new payment.
func (s *PaymentURLService) BuildPaymentURL(req domain.PaymentRequest) (string, error) {
	if err := s.cfg.Validate(); err != nil {
		return "", err
	}

	created := s.now().In(s.cfg.Location())

	params := domain.ParameterSet{
		domain.FieldVersion:    orDefault(s.cfg.Version, defaultVersion),
		domain.FieldCommand:    domain.CommandPay,
		domain.FieldTmnCode:    s.cfg.TmnCode,
		domain.FieldAmount:     money.ToMinorUnits(req.Amount),
		domain.FieldCurrCode:   orDefault(s.cfg.Currency, defaultCurrency),
		domain.FieldTxnRef:     req.OrderID,
		domain.FieldOrderInfo:  req.OrderDescription,
		domain.FieldOrderType:  domain.OrderTypeOther,
		domain.FieldLocale:     ResolveLocale(req.Locale, orDefault(s.cfg.Locale, LocaleVietnamese)),
		domain.FieldReturnURL:  s.cfg.ReturnURL,
		domain.FieldIPAddr:     NormalizeIP(req.IPAddress),
		domain.FieldCreateDate: created.Format(domain.DateLayout),
	}
	params.SetIfNotEmpty(domain.FieldBankCode, req.BankCode)
	if s.cfg.ExpireAfter > 0 {
		params[domain.FieldExpireDate] = created.Add(s.cfg.ExpireAfter).Format(domain.DateLayout)
	}

	canonical := SerializeSorted(params)
	signature := s.sigSvc.Sign(s.cfg.HashSecret, canonical)

	s.log.Debug().
		Str("txn_ref", req.OrderID).
		Str("canonical", canonical).
		Msg("payment url signed")

	return fmt.Sprintf("%s?%s&%s=%s", s.cfg.PaymentURL, canonical, domain.FieldSecureHash, signature), nil
}

// NormalizeIP returns the address reported to the gateway as vnp_IpAddr.
// Empty input and IPv6 loopback become 127.0.0.1.
func NormalizeIP(ip string) string {
	if ip == "" {
		return defaultIP
	}
	if parsed := net.ParseIP(ip); parsed != nil && parsed.IsLoopback() && parsed.To4() == nil {
		return defaultIP
	}
	return ip
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
