package dto

// CreatePaymentRequest is the request body for building a payment URL.
type CreatePaymentRequest struct {
	OrderID          string `json:"orderId" binding:"omitempty,max=100,safe_id"`
	Amount           int64  `json:"amount" binding:"required,gt=0"`
	OrderDescription string `json:"orderDescription" binding:"max=255"`
	BankCode         string `json:"bankCode" binding:"omitempty,max=20,safe_id"`
	Locale           string `json:"locale" binding:"omitempty,max=35"`
}

// CreatePaymentResponse is the response body carrying the redirect URL.
type CreatePaymentResponse struct {
	PaymentURL string `json:"payment_url"`
	OrderID    string `json:"order_id"`
}

// QueryRequest is the request body for a querydr call.
type QueryRequest struct {
	OrderID         string `json:"orderId" binding:"required,max=100,safe_id"`
	TransactionDate string `json:"transactionDate" binding:"required,vnp_date"`
	OrderInfo       string `json:"orderInfo" binding:"max=255"`
}

// RefundRequest is the request body for a refund call.
type RefundRequest struct {
	OrderID         string `json:"orderId" binding:"required,max=100,safe_id"`
	Amount          int64  `json:"amount" binding:"required,gt=0"`
	TransactionDate string `json:"transactionDate" binding:"required,vnp_date"`
	TransactionType string `json:"transactionType" binding:"omitempty,oneof=02 03"`
	TransactionNo   string `json:"transactionNo" binding:"omitempty,max=20,numeric"`
	OrderInfo       string `json:"orderInfo" binding:"max=255"`
	CreatedBy       string `json:"createdBy" binding:"omitempty,max=50,safe_id"`
}

// ReturnResponse summarises a browser return callback.
type ReturnResponse struct {
	Status        string `json:"status"` // success or error
	Message       string `json:"message"`
	OrderID       string `json:"order_id"`
	TransactionNo string `json:"transaction_no"`
	ResponseCode  string `json:"response_code"`
	Amount        string `json:"amount"`         // major units, e.g. "150000"
	AmountDisplay string `json:"amount_display"` // localized, e.g. "150.000 VND"
	Valid         bool   `json:"valid"`
}

// DependencyStatus is the health of one external dependency.
type DependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResponse is the body of the root and /health endpoints.
type HealthResponse struct {
	Status       string                      `json:"status"`
	ReturnURL    string                      `json:"return_url"`
	IPNURL       string                      `json:"ipn_url"`
	TmnCode      string                      `json:"tmn_code"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}
