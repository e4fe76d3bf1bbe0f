package domain

// vnp_ResponseCode values reported on return/IPN callbacks.
const (
	ResponseCodeSuccess               = "00"
	ResponseCodeSuspicious            = "07"
	ResponseCodeNotRegistered         = "09"
	ResponseCodeAuthFailed            = "10"
	ResponseCodeExpired               = "11"
	ResponseCodeCardLocked            = "12"
	ResponseCodeIncorrectOTP          = "13"
	ResponseCodeUserCancelled         = "24"
	ResponseCodeInsufficientBalance   = "51"
	ResponseCodeLimitExceeded         = "65"
	ResponseCodeBankMaintenance       = "75"
	ResponseCodeTooManyPasswordErrors = "79"
	ResponseCodeUnknown               = "99"
)

var responseMessages = map[string]string{
	ResponseCodeSuccess:               "Giao dịch thành công",
	ResponseCodeSuspicious:            "Trừ tiền thành công, giao dịch bị nghi ngờ",
	ResponseCodeNotRegistered:         "Thẻ/Tài khoản chưa đăng ký InternetBanking",
	ResponseCodeAuthFailed:            "Xác thực thông tin thẻ/tài khoản không đúng quá 3 lần",
	ResponseCodeExpired:               "Đã hết hạn chờ thanh toán",
	ResponseCodeCardLocked:            "Thẻ/Tài khoản bị khóa",
	ResponseCodeIncorrectOTP:          "Nhập sai mật khẩu xác thực giao dịch (OTP)",
	ResponseCodeUserCancelled:         "Khách hàng hủy giao dịch",
	ResponseCodeInsufficientBalance:   "Tài khoản không đủ số dư",
	ResponseCodeLimitExceeded:         "Vượt quá hạn mức giao dịch trong ngày",
	ResponseCodeBankMaintenance:       "Ngân hàng thanh toán đang bảo trì",
	ResponseCodeTooManyPasswordErrors: "Nhập sai mật khẩu thanh toán quá số lần quy định",
	ResponseCodeUnknown:               "Lỗi không xác định",
}

// ResponseMessage returns the Vietnamese description of a vnp_ResponseCode.
func ResponseMessage(code string) string {
	if msg, ok := responseMessages[code]; ok {
		return msg
	}
	return responseMessages[ResponseCodeUnknown]
}

// IPN acknowledgement codes returned to the gateway.
const (
	IPNCodeConfirmed      = "00"
	IPNCodeAlreadyUpdated = "02"
	IPNCodeBadSignature   = "97"
	IPNCodeInvalidRequest = "99"
)
