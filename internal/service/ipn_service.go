package service

import (
	"context"
	"time"

	"vnpay-connector/internal/core/domain"
	"vnpay-connector/internal/core/ports"

	"github.com/rs/zerolog"
)

const defaultIPNReplayTTL = 24 * time.Hour

// IPNServiceImpl implements ports.IPNService.
type IPNServiceImpl struct {
	verifier ports.ResponseVerifier
	guard    ports.ReplayGuard // nil disables duplicate detection
	tmnCode  string
	ttl      time.Duration
	log      zerolog.Logger
}

// NewIPNService creates a new IPNServiceImpl.
func NewIPNService(verifier ports.ResponseVerifier, guard ports.ReplayGuard, tmnCode string, ttl time.Duration, log zerolog.Logger) *IPNServiceImpl {
	if ttl <= 0 {
		ttl = defaultIPNReplayTTL
	}
	return &IPNServiceImpl{
		verifier: verifier,
		guard:    guard,
		tmnCode:  tmnCode,
		ttl:      ttl,
		log:      log,
	}
}

// HandleIPN verifies the callback and decides the acknowledgement.
func (s *IPNServiceImpl) HandleIPN(ctx context.Context, params map[string]string) domain.IPNAck {
	result := s.verifier.VerifyResponse(params)
	if !result.IsValid {
		return domain.IPNAck{RspCode: domain.IPNCodeBadSignature, Message: "Invalid signature"}
	}

	txnRef := result.Data[domain.FieldTxnRef]
	if txnRef == "" {
		return domain.IPNAck{RspCode: domain.IPNCodeInvalidRequest, Message: "Invalid request"}
	}

	rc := result.ResponseCode()
	if rc != domain.ResponseCodeSuccess {
		if rc == "" {
			rc = domain.IPNCodeInvalidRequest
		}
		s.log.Info().Str("txn_ref", txnRef).Str("response_code", rc).Msg("ipn for unsuccessful payment")
		return domain.IPNAck{RspCode: rc, Message: "Order not completed"}
	}

	if s.guard != nil {
		key := txnRef + ":" + result.Data[domain.FieldTransactionNo]
		fresh, err := s.guard.CheckAndSet(ctx, s.tmnCode, key, s.ttl)
		if err != nil {
			s.log.Warn().Err(err).Str("txn_ref", txnRef).Msg("ipn replay guard unavailable, acknowledging")
		} else if !fresh {
			s.log.Info().Str("txn_ref", txnRef).Msg("duplicate ipn")
			return domain.IPNAck{RspCode: domain.IPNCodeAlreadyUpdated, Message: "Order Already Update"}
		}
	}

	s.log.Info().Str("txn_ref", txnRef).Msg("ipn confirmed")
	return domain.IPNAck{RspCode: domain.IPNCodeConfirmed, Message: "Confirm Success"}
}
