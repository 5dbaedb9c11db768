package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"status-generic/config"
	"status-generic/pkg/apperror"
	"status-generic/pkg/logger"
	"status-generic/pkg/status"
)

// Register installs the middleware every route shares. Order matters:
// the request id has to exist before a recovered panic is reported.
func Register(app *fiber.App) {
	app.Use(RequestID(), Recover())
}

// RequestID makes sure every request carries a tracking id, echoing it in
// the response.
func RequestID() fiber.Handler {
	return func(c fiber.Ctx) error {
		id := c.Get(apperror.TrackingHeader)
		if id == "" {
			id = uuid.NewString()
			c.Request().Header.Set(apperror.TrackingHeader, id)
		}
		c.Set(apperror.TrackingHeader, id)

		return c.Next()
	}
}

// Recover turns a panic into a failed status and answers 500.
func Recover() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			st := status.New(status.WithHeader(string(config.ModuleMiddleware)))
			st.AddErrorFrom(errors.Errorf("panic: %v", r), "An unexpected error occurred")
			logger.Status(st, "%v: panic recovered on %s %s", config.ModuleMiddleware, c.Method(), c.Path())

			err = apperror.WriteError(config.ModuleMiddleware, c, fiber.StatusInternalServerError, apperror.ErrorResponse{
				Error:     "internal error",
				ErrorCode: apperror.InternalPanic.String(),
				Message:   st.Message(),
				Errors:    apperror.Entries(st),
			})
		}()

		return c.Next()
	}
}
