package apperror

import (
	"status-generic/config"
	"status-generic/pkg/logger"
	"status-generic/pkg/status"

	"github.com/gofiber/fiber/v3"
)

// TrackingHeader carries the request id set by the middleware.
const TrackingHeader = "X-Request-ID"

// FieldError is one status entry in an error response.
type FieldError struct {
	Header  string   `json:"header,omitempty"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// ErrorResponse is the standardized HTTP error payload
type ErrorResponse struct {
	Error      string       `json:"error"`
	ErrorCode  string       `json:"error_code"`
	Message    string       `json:"message,omitempty"`
	TrackingID string       `json:"tracking_id,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
}

type SuccessMessage struct {
	Code       SuccessCode `json:"code"`
	Message    string      `json:"message"`
	TrackingID string      `json:"tracking_id"`
	Data       any         `json:"data"`
}

// Entries converts the errors of st into response entries.
func Entries(st status.Status) []FieldError {
	entries := st.Errors()
	if len(entries) == 0 {
		return nil
	}

	out := make([]FieldError, len(entries))
	for i, e := range entries {
		out[i] = FieldError{
			Header:  e.Header(),
			Message: e.Message(),
			Fields:  e.FieldNames(),
		}
	}

	return out
}

// WriteError logs a structured warning and returns a standardized JSON error
func WriteError(module config.Module, c fiber.Ctx, httpStatus int, resp ErrorResponse) error {
	resp.TrackingID = c.Get(TrackingHeader)

	logger.WithFields(map[string]any{
		"module":        module,
		"status_code":   httpStatus,
		"error_code":    resp.ErrorCode,
		"error_message": resp.Error,
		"http_method":   c.Method(),
		"path":          c.Path(),
		"ip":            c.IP(),
		"tracking_id":   resp.TrackingID,
	}).Warnf("http error")

	return c.Status(httpStatus).JSON(resp)
}

func BadRequest(module config.Module, c fiber.Ctx, code ErrorCode, message string) error {
	return WriteError(module, c, fiber.StatusBadRequest, ErrorResponse{
		Error:     message,
		ErrorCode: code.String(),
	})
}

// InternalError hides err from the client; it is logged instead.
func InternalError(module config.Module, c fiber.Ctx, code ErrorCode, err error) error {
	logger.Error(err, "%v: internal error", module)

	return WriteError(module, c, fiber.StatusInternalServerError, ErrorResponse{
		Error:     "internal error",
		ErrorCode: code.String(),
	})
}

// Success writes a standardized JSON success response
func Success(module config.Module, c fiber.Ctx, response SuccessMessage) error {
	response.TrackingID = c.Get(TrackingHeader)
	return c.Status(fiber.StatusOK).JSON(response)
}

// WriteStatus answers with the success envelope (carrying data) when st is
// valid, and with a 400 listing every error otherwise.
func WriteStatus(module config.Module, c fiber.Ctx, st status.Status, code ErrorCode, data any) error {
	return WriteStatusCode(module, c, fiber.StatusBadRequest, st, code, data)
}

// WriteStatusCode is WriteStatus with a custom failure HTTP status.
func WriteStatusCode(module config.Module, c fiber.Ctx, httpStatus int, st status.Status, code ErrorCode, data any) error {
	if st.IsValid() {
		return Success(module, c, SuccessMessage{
			Code:    OK,
			Message: st.Message(),
			Data:    data,
		})
	}

	logger.Status(st, "%v: %s %s", module, c.Method(), c.Path())

	return WriteError(module, c, httpStatus, ErrorResponse{
		Error:     st.GetAllErrors(config.Cfg.Status.Separator),
		ErrorCode: code.String(),
		Message:   st.Message(),
		Errors:    Entries(st),
	})
}
