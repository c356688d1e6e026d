package errors

import "net/http"

// ErrorCode identifies a failure category. Codes are stable strings so that
// API clients and log pipelines can match on them without parsing messages.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes shared by every module.
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeConflict           ErrorCode = "COMMON_004"
	ErrCodeValidation         ErrorCode = "COMMON_005"
	ErrCodeSerialization      ErrorCode = "COMMON_006"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_007"
	ErrCodeTimeout            ErrorCode = "COMMON_008"
)

// Planning module error codes.
const (
	ErrCodePlanIssueNotFound       ErrorCode = "PLAN_001"
	ErrCodePlanBatnaNotFound       ErrorCode = "PLAN_002"
	ErrCodePlanStakeholderNotFound ErrorCode = "PLAN_003"
	ErrCodePlanUnknownExample      ErrorCode = "PLAN_004"
)

// Snapshot storage error codes.
const (
	ErrCodeStorageUnavailable ErrorCode = "STO_001"
	ErrCodeStorageCorrupt     ErrorCode = "STO_002"
	ErrCodeStorageWriteFailed ErrorCode = "STO_003"
	ErrCodeStorageVersion     ErrorCode = "STO_004"
)

// Reporting error codes.
const (
	ErrCodeReportRenderFailed ErrorCode = "RPT_001"
)

// Export error codes.
const (
	ErrCodeExportFailed            ErrorCode = "EXP_001"
	ErrCodeExportFormatUnsupported ErrorCode = "EXP_002"
	ErrCodeExportArchiveFailed     ErrorCode = "EXP_003"
)

// Aliases used by factory helpers; keeps call sites short.
const (
	CodeOK           = ErrorCode("OK")
	CodeUnknown      = ErrorCode("UNKNOWN")
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeConflict     = ErrCodeConflict
)

// httpStatusByCode maps error codes to HTTP status codes for the interface
// layer. Codes not listed map to 500.
var httpStatusByCode = map[ErrorCode]int{
	ErrCodeBadRequest:              http.StatusBadRequest,
	ErrCodeValidation:              http.StatusBadRequest,
	ErrCodeNotFound:                http.StatusNotFound,
	ErrCodePlanIssueNotFound:       http.StatusNotFound,
	ErrCodePlanBatnaNotFound:       http.StatusNotFound,
	ErrCodePlanStakeholderNotFound: http.StatusNotFound,
	ErrCodePlanUnknownExample:      http.StatusBadRequest,
	ErrCodeExportFormatUnsupported: http.StatusBadRequest,
	ErrCodeConflict:                http.StatusConflict,
	ErrCodeTimeout:                 http.StatusGatewayTimeout,
	ErrCodeServiceUnavailable:      http.StatusServiceUnavailable,
}

// HTTPStatus returns the HTTP status code associated with c.
func (c ErrorCode) HTTPStatus() int {
	if s, ok := httpStatusByCode[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}
