package apperror

import "fmt"

// ErrorCode is a numeric code to classify API errors in a stable way
type ErrorCode int

// Reserved ranges:
//   0-999:     client/validation errors
//   1000-1999: internal errors
const (
	BadRequestBase    ErrorCode = 0
	InternalErrorBase ErrorCode = 1000
)

// Account client/validation errors start at *000
const (
	AccountInvalidRequestBody ErrorCode = BadRequestBase + iota // 0
	AccountValidationFailed                                     // 1
	AccountLoginFailed                                          // 2
)

// Internal errors start at 1000
const (
	Internal         ErrorCode = InternalErrorBase + iota // 1000
	InternalPanic                                         // 1001
	InternalDatabase                                      // 1002
)

func (c ErrorCode) String() string { return fmt.Sprintf("SG-%d", int(c)) }

type SuccessCode int

const (
	OK SuccessCode = 200
)
