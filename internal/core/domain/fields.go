package domain

// FieldPrefix marks the parameters that take part in callback signatures.
const FieldPrefix = "vnp_"

// Gateway field names.
const (
	FieldVersion         = "vnp_Version"
	FieldCommand         = "vnp_Command"
	FieldTmnCode         = "vnp_TmnCode"
	FieldAmount          = "vnp_Amount"
	FieldCurrCode        = "vnp_CurrCode"
	FieldTxnRef          = "vnp_TxnRef"
	FieldOrderInfo       = "vnp_OrderInfo"
	FieldOrderType       = "vnp_OrderType"
	FieldLocale          = "vnp_Locale"
	FieldReturnURL       = "vnp_ReturnUrl"
	FieldIPAddr          = "vnp_IpAddr"
	FieldCreateDate      = "vnp_CreateDate"
	FieldExpireDate      = "vnp_ExpireDate"
	FieldBankCode        = "vnp_BankCode"
	FieldSecureHash      = "vnp_SecureHash"
	FieldSecureHashType  = "vnp_SecureHashType"
	FieldResponseCode    = "vnp_ResponseCode"
	FieldTransactionNo   = "vnp_TransactionNo"
	FieldRequestID       = "vnp_RequestId"
	FieldTransactionDate = "vnp_TransactionDate"
	FieldTransactionType = "vnp_TransactionType"
	FieldCreateBy        = "vnp_CreateBy"
)

// Command values.
const (
	CommandPay     = "pay"
	CommandQueryDR = "querydr"
	CommandRefund  = "refund"
)

// OrderTypeOther is the generic vnp_OrderType.
const OrderTypeOther = "other"

// DateLayout is the gateway timestamp format (yyyyMMddHHmmss).
const DateLayout = "20060102150405"
