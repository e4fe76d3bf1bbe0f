package domain

import (
	"fmt"
	"strings"
)

// ParameterSet maps gateway field names (vnp_*) to their string values.
// Absent optional fields are left out rather than stored empty.
type ParameterSet map[string]string

// Clone returns an independent copy.
func (p ParameterSet) Clone() ParameterSet {
	out := make(ParameterSet, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// SetIfNotEmpty stores value under key only when value is non-blank.
func (p ParameterSet) SetIfNotEmpty(key, value string) {
	if strings.TrimSpace(value) != "" {
		p[key] = value
	}
}

// PaymentRequest carries the business inputs for a payment redirect URL.
// Amount is in major currency units (VND).
type PaymentRequest struct {
	OrderID          string
	Amount           int64
	OrderDescription string
	IPAddress        string
	BankCode         string // optional; empty lets the shopper pick on VNPAY
	Locale           string // optional; empty uses the configured default
}

// QueryRequest carries the inputs for a querydr call.
type QueryRequest struct {
	TxnRef          string
	TransactionDate string // yyyyMMddHHmmss of the original payment
	IPAddress       string
	OrderInfo       string
}

// RefundType is vnp_TransactionType for refunds.
type RefundType string

const (
	RefundTypeFull    RefundType = "02"
	RefundTypePartial RefundType = "03"
)

// Valid reports whether t is one of the two refund literals the gateway accepts.
func (t RefundType) Valid() bool {
	return t == RefundTypeFull || t == RefundTypePartial
}

// RefundRequest carries the inputs for a refund call. Amount is in major units.
type RefundRequest struct {
	TxnRef          string
	Amount          int64
	TransactionDate string
	IPAddress       string
	TransactionType RefundType
	OrderInfo       string
	TransactionNo   string
	CreatedBy       string
}

// VerificationResult is the outcome of checking a return or IPN callback.
// Data holds every received field except the hash fields.
type VerificationResult struct {
	IsValid bool
	Data    ParameterSet
}

// ResponseCode returns vnp_ResponseCode, or "" when absent.
func (r VerificationResult) ResponseCode() string {
	return r.Data[FieldResponseCode]
}

// RemoteCallError describes a failed merchant API call.
type RemoteCallError struct {
	Message    string `json:"error"`
	StatusCode int    `json:"status_code,omitempty"`
	Body       string `json:"body,omitempty"`
}

func (e *RemoteCallError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("vnpay api: %s (status %d)", e.Message, e.StatusCode)
	}
	return "vnpay api: " + e.Message
}

// RemoteCallResult holds either the decoded gateway response or the call error.
type RemoteCallResult struct {
	Response map[string]any
	Err      *RemoteCallError
}

// OK reports whether the call produced a decoded response.
func (r *RemoteCallResult) OK() bool {
	return r != nil && r.Err == nil
}

// IPNAck is the body VNPAY expects in reply to an IPN.
type IPNAck struct {
	RspCode string `json:"RspCode"`
	Message string `json:"Message"`
}
