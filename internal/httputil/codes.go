package httputil

// Machine-readable error codes returned in ErrorResponse.Code.
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeUserAlreadyExists  = "USER_ALREADY_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeMissingAuth        = "MISSING_AUTH"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeTooManyRequests    = "TOO_MANY_REQUESTS"
	CodeDemoUserNotFound   = "DEMO_USER_NOT_FOUND"
	CodeNotReady           = "NOT_READY"
	CodeInternalError      = "INTERNAL_ERROR"
)
