package service

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"vnpay-connector/internal/core/domain"
)

// ErrMissingHashField is returned when a positional hash field has no value.
var ErrMissingHashField = errors.New("missing hash field")

// QueryHashFields is the field order of the querydr signature.
var QueryHashFields = []string{
	domain.FieldRequestID,
	domain.FieldVersion,
	domain.FieldCommand,
	domain.FieldTmnCode,
	domain.FieldTxnRef,
	domain.FieldTransactionDate,
	domain.FieldCreateDate,
	domain.FieldIPAddr,
	domain.FieldOrderInfo,
}

// RefundHashFields is the field order of the refund signature.
var RefundHashFields = []string{
	domain.FieldRequestID,
	domain.FieldVersion,
	domain.FieldCommand,
	domain.FieldTmnCode,
	domain.FieldTransactionType,
	domain.FieldTxnRef,
	domain.FieldAmount,
	domain.FieldTransactionNo,
	domain.FieldTransactionDate,
	domain.FieldCreateBy,
	domain.FieldCreateDate,
	domain.FieldIPAddr,
	domain.FieldOrderInfo,
}

// SerializeSorted renders params as key=value pairs sorted by key and joined
// with '&'. Values are form-encoded (space becomes '+'); keys are written as is.
// The same string is used as the URL query and as the signed payload.
func SerializeSorted(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params[k]))
	}
	return b.String()
}

// SerializePositional joins the raw values of fields, in order, with '|'.
// A field absent from params yields ErrMissingHashField; an empty value is kept.
func SerializePositional(params map[string]string, fields []string) (string, error) {
	values := make([]string, len(fields))
	for i, f := range fields {
		v, ok := params[f]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrMissingHashField, f)
		}
		values[i] = v
	}
	return strings.Join(values, "|"), nil
}
