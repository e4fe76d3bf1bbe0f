package middleware

import (
	"vnpay-connector/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Audit actions.
const (
	AuditActionCreatePayment = "CREATE_PAYMENT"
	AuditActionReturn        = "PAYMENT_RETURN"
	AuditActionIPN           = "PAYMENT_IPN"
	AuditActionQuery         = "QUERY_TRANSACTION"
	AuditActionRefund        = "REFUND"
)

// CtxAuditTxnRef is the gin context key handlers use to attach the order reference.
const CtxAuditTxnRef = "audit_txn_ref"

// AuditLog writes one audit record per handled gateway operation after the
// response is written. Unmapped routes and 5xx responses are skipped.
func AuditLog(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status >= 500 {
			return
		}

		action := mapRouteToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		log.Info().
			Str("audit_action", action).
			Str("request_id", response.RequestID(c)).
			Str("txn_ref", c.GetString(CtxAuditTxnRef)).
			Str("client_ip", ClientIP(c)).
			Str("api_client", c.GetString(CtxAPIClient)).
			Int("status", status).
			Msg("audit")
	}
}

func mapRouteToAction(route, method string) string {
	switch {
	case route == "/api/vnpay/create_payment" && method == "POST":
		return AuditActionCreatePayment
	case route == "/vnpay_return" && method == "GET":
		return AuditActionReturn
	case route == "/vnpay_ipn" && method == "GET":
		return AuditActionIPN
	case route == "/api/vnpay/query" && method == "POST":
		return AuditActionQuery
	case route == "/api/vnpay/refund" && method == "POST":
		return AuditActionRefund
	}
	return ""
}
