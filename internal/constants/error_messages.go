package constants

const (
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

const (
	ErrMsgUnauthorized       = "Unauthorized"
	ErrMsgInvalidRequestBody = "request body must be a JSON object"
	ErrMsgInternalError      = "Internal server error"
)

var errorMessages = map[string]string{
	ErrCodeUnauthorized:       ErrMsgUnauthorized,
	ErrCodeInvalidRequestBody: ErrMsgInvalidRequestBody,
	ErrCodeInternalError:      ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeUnauthorized:
		return 401
	case ErrCodeInvalidRequestBody:
		return 400
	default:
		return 500
	}
}
