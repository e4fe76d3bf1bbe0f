package ports

import (
	"context"
	"time"

	"vnpay-connector/internal/core/domain"
)

// SignatureService computes and checks gateway HMAC-SHA512 signatures.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// PaymentURLBuilder builds signed redirect URLs for new payments.
type PaymentURLBuilder interface {
	BuildPaymentURL(req domain.PaymentRequest) (string, error)
}

// ResponseVerifier checks the signature of return and IPN callbacks.
type ResponseVerifier interface {
	VerifyResponse(params map[string]string) domain.VerificationResult
}

// MerchantAPI calls the gateway's querydr and refund endpoints.
// The returned error is set only for configuration and validation
// failures; network and gateway failures are reported in the result.
type MerchantAPI interface {
	QueryTransaction(ctx context.Context, req domain.QueryRequest) (*domain.RemoteCallResult, error)
	RefundTransaction(ctx context.Context, req domain.RefundRequest) (*domain.RemoteCallResult, error)
}

// IPNService turns an IPN callback into the acknowledgement sent back to the gateway.
type IPNService interface {
	HandleIPN(ctx context.Context, params map[string]string) domain.IPNAck
}

// TokenService issues and validates the bearer tokens that guard the merchant API routes.
type TokenService interface {
	Generate(client string, scopes []string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Client string
	Scopes []string
}

// HasScope reports whether the token grants scope.
func (c *TokenClaims) HasScope(scope string) bool {
	for _, s := range c.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}
