package service

import (
	"strings"

	"vnpay-connector/internal/core/domain"
	"vnpay-connector/internal/core/ports"
	"vnpay-connector/pkg/apperror"

	"github.com/rs/zerolog"
)

// ResponseVerifierService implements ports.ResponseVerifier for both the
// browser return and the IPN callback.
type ResponseVerifierService struct {
	hashSecret string
	sigSvc     ports.SignatureService
	log        zerolog.Logger
}

// NewResponseVerifierService creates a new ResponseVerifierService.
func NewResponseVerifierService(hashSecret string, sigSvc ports.SignatureService, log zerolog.Logger) *ResponseVerifierService {
	return &ResponseVerifierService{
		hashSecret: hashSecret,
		sigSvc:     sigSvc,
		log:        log,
	}
}

// VerifyResponse checks vnp_SecureHash over the remaining vnp_ fields.
// The input map is not modified. Data always carries every non-hash field.
// Without a configured hash secret nothing verifies.
func (s *ResponseVerifierService) VerifyResponse(params map[string]string) domain.VerificationResult {
	data := domain.ParameterSet(params).Clone()
	received := data[domain.FieldSecureHash]
	delete(data, domain.FieldSecureHash)
	delete(data, domain.FieldSecureHashType)

	if strings.TrimSpace(s.hashSecret) == "" {
		s.log.Error().
			Err(apperror.ErrConfiguration("vnpay.hash_secret")).
			Str("txn_ref", data[domain.FieldTxnRef]).
			Msg("rejecting callback, hash secret not configured")
		return domain.VerificationResult{IsValid: false, Data: data}
	}
	if received == "" {
		return domain.VerificationResult{IsValid: false, Data: data}
	}

	signed := make(domain.ParameterSet, len(data))
	for k, v := range data {
		if strings.HasPrefix(k, domain.FieldPrefix) {
			signed[k] = v
		}
	}

	valid := s.sigSvc.Verify(s.hashSecret, SerializeSorted(signed), received)
	if !valid {
		s.log.Warn().
			Str("txn_ref", data[domain.FieldTxnRef]).
			Msg("callback signature mismatch")
	}
	return domain.VerificationResult{IsValid: valid, Data: data}
}
