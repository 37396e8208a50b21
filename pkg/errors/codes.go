package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_004"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_005"
	ErrCodeTimeout            ErrorCode = "COMMON_006"
	ErrCodeValidation         ErrorCode = "COMMON_007"
	ErrCodeSerialization      ErrorCode = "COMMON_008"
	ErrCodeCacheError         ErrorCode = "COMMON_009"
	ErrCodeExternalService    ErrorCode = "COMMON_010"
)

// Date Parsing Error Codes
const (
	ErrCodeDateEmpty         ErrorCode = "DATE_001"
	ErrCodeDateFormatInvalid ErrorCode = "DATE_002"
	ErrCodeDateYearRange     ErrorCode = "DATE_003"
)

// Time / Timezone Error Codes
const (
	ErrCodeTimeFormatInvalid ErrorCode = "TIME_001"
	ErrCodeTimezoneUnknown   ErrorCode = "TZ_001"
)

// Geocoding Error Codes
const (
	ErrCodeGeocodeFailed   ErrorCode = "GEO_001"
	ErrCodeGeocodeTimeout  ErrorCode = "GEO_002"
	ErrCodeGeocodeBadReply ErrorCode = "GEO_003"
)

// Date Verification Error Codes
const (
	ErrCodeVerifyRemoteFailed ErrorCode = "VRF_001"
	ErrCodeVerifyBadReply     ErrorCode = "VRF_002"
)

// Chart Computation Error Codes
const (
	ErrCodeChartComputeFailed ErrorCode = "AST_001"
)

// Aliases used across layers.
const (
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeRateLimit    = ErrCodeTooManyRequests
	CodeUnknown      = ErrorCode("UNKNOWN")
	CodeOK           = ErrorCode("OK")
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeExternalService:    http.StatusInternalServerError,

	ErrCodeDateEmpty:         http.StatusBadRequest,
	ErrCodeDateFormatInvalid: http.StatusBadRequest,
	ErrCodeDateYearRange:     http.StatusBadRequest,
	ErrCodeTimeFormatInvalid: http.StatusBadRequest,
	ErrCodeTimezoneUnknown:   http.StatusBadRequest,

	ErrCodeGeocodeFailed:   http.StatusInternalServerError,
	ErrCodeGeocodeTimeout:  http.StatusGatewayTimeout,
	ErrCodeGeocodeBadReply: http.StatusBadGateway,

	ErrCodeVerifyRemoteFailed: http.StatusInternalServerError,
	ErrCodeVerifyBadReply:     http.StatusBadGateway,

	ErrCodeChartComputeFailed: http.StatusInternalServerError,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeNotFound:           "resource not found",
	ErrCodeTooManyRequests:    "too many requests",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeCacheError:         "cache error",
	ErrCodeExternalService:    "external service error",

	ErrCodeDateEmpty:         "date string is empty",
	ErrCodeDateFormatInvalid: "invalid date format",
	ErrCodeDateYearRange:     "year outside accepted BE/CE ranges",
	ErrCodeTimeFormatInvalid: "invalid time format (expected HH:MM)",
	ErrCodeTimezoneUnknown:   "unknown timezone identifier",

	ErrCodeGeocodeFailed:   "reverse geocoding failed",
	ErrCodeGeocodeTimeout:  "reverse geocoding timed out",
	ErrCodeGeocodeBadReply: "reverse geocoder returned an unusable reply",

	ErrCodeVerifyRemoteFailed: "remote date verification failed",
	ErrCodeVerifyBadReply:     "date verifier returned an unusable reply",

	ErrCodeChartComputeFailed: "chart computation failed",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}

//Personal.AI order the ending
