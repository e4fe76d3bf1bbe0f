package service

import (
	"bytes"
	"strings"
	"testing"

	"vnpay-connector/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVerifier() *ResponseVerifierService {
	return NewResponseVerifierService("TESTSECRET", NewHMACSignatureService(), zerolog.Nop())
}

// signedCallback returns callback params carrying a valid vnp_SecureHash.
func signedCallback(t *testing.T, fields map[string]string) map[string]string {
	t.Helper()
	signed := map[string]string{}
	for k, v := range fields {
		if strings.HasPrefix(k, domain.FieldPrefix) {
			signed[k] = v
		}
	}
	out := domain.ParameterSet(fields).Clone()
	out[domain.FieldSecureHash] = NewHMACSignatureService().Sign("TESTSECRET", SerializeSorted(signed))
	require.Len(t, out[domain.FieldSecureHash], 128)
	return out
}

func returnFields() map[string]string {
	return map[string]string{
		domain.FieldAmount:        "10000000",
		domain.FieldTxnRef:        "ORD001",
		domain.FieldResponseCode:  "00",
		domain.FieldTransactionNo: "14226112",
		domain.FieldTmnCode:       "TESTCODE",
		domain.FieldOrderInfo:     "Thanh toan don hang ORD001",
		"vnp_BankCode":            "NCB",
		"vnp_PayDate":             "20240101121530",
	}
}

func TestResponseVerifier_Valid(t *testing.T) {
	params := signedCallback(t, returnFields())
	params[domain.FieldSecureHashType] = "HmacSHA512"

	result := newTestVerifier().VerifyResponse(params)

	assert.True(t, result.IsValid)
	assert.Equal(t, "00", result.ResponseCode())
	assert.NotContains(t, result.Data, domain.FieldSecureHash)
	assert.NotContains(t, result.Data, domain.FieldSecureHashType)
	assert.Equal(t, "ORD001", result.Data[domain.FieldTxnRef])
}

func TestResponseVerifier_DoesNotMutateInput(t *testing.T) {
	params := signedCallback(t, returnFields())
	before := domain.ParameterSet(params).Clone()

	newTestVerifier().VerifyResponse(params)

	assert.Equal(t, map[string]string(before), params)
}

func TestResponseVerifier_UppercaseHashAccepted(t *testing.T) {
	params := signedCallback(t, returnFields())
	params[domain.FieldSecureHash] = strings.ToUpper(params[domain.FieldSecureHash])

	assert.True(t, newTestVerifier().VerifyResponse(params).IsValid)
}

func TestResponseVerifier_NonPrefixedFieldsIgnoredButKept(t *testing.T) {
	params := signedCallback(t, returnFields())
	params["utm_source"] = "newsletter"

	result := newTestVerifier().VerifyResponse(params)

	assert.True(t, result.IsValid)
	assert.Equal(t, "newsletter", result.Data["utm_source"])
}

func TestResponseVerifier_MissingHash(t *testing.T) {
	result := newTestVerifier().VerifyResponse(returnFields())

	assert.False(t, result.IsValid)
	assert.Equal(t, "ORD001", result.Data[domain.FieldTxnRef])
}

func TestResponseVerifier_EmptyHash(t *testing.T) {
	params := returnFields()
	params[domain.FieldSecureHash] = ""

	result := newTestVerifier().VerifyResponse(params)

	assert.False(t, result.IsValid)
	assert.NotContains(t, result.Data, domain.FieldSecureHash)
}

func TestResponseVerifier_TamperedField(t *testing.T) {
	params := signedCallback(t, returnFields())
	params[domain.FieldAmount] = "1"

	assert.False(t, newTestVerifier().VerifyResponse(params).IsValid)
}

func TestResponseVerifier_WrongSecret(t *testing.T) {
	params := signedCallback(t, returnFields())
	verifier := NewResponseVerifierService("OTHERSECRET", NewHMACSignatureService(), zerolog.Nop())

	assert.False(t, verifier.VerifyResponse(params).IsValid)
}

func TestResponseVerifier_NilParams(t *testing.T) {
	result := newTestVerifier().VerifyResponse(nil)

	assert.False(t, result.IsValid)
	assert.Empty(t, result.Data)
}

// forgedWithEmptyKey signs fields the way an attacker would if the merchant
// secret were blank.
func forgedWithEmptyKey(fields map[string]string) map[string]string {
	out := domain.ParameterSet(fields).Clone()
	out[domain.FieldSecureHash] = NewHMACSignatureService().Sign("", SerializeSorted(fields))
	return out
}

func TestResponseVerifier_EmptySecretRejectsEverything(t *testing.T) {
	var buf bytes.Buffer
	params := forgedWithEmptyKey(returnFields())

	for _, secret := range []string{"", "   "} {
		buf.Reset()
		verifier := NewResponseVerifierService(secret, NewHMACSignatureService(), zerolog.New(&buf))

		result := verifier.VerifyResponse(params)

		assert.False(t, result.IsValid)
		assert.Equal(t, "ORD001", result.Data[domain.FieldTxnRef])
		assert.NotContains(t, result.Data, domain.FieldSecureHash)
		assert.Contains(t, buf.String(), "hash secret not configured")
		assert.Contains(t, buf.String(), "CFG_001")
	}
}
