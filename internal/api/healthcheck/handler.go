package healthcheck

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/pkg/errors"

	"status-generic/config"
	"status-generic/internal/database"
	"status-generic/pkg/apperror"
	"status-generic/pkg/status"
)

const pingTimeout = 2 * time.Second

func ApiHealthCheck(c fiber.Ctx) error {
	return c.SendString("ok")
}

// DatabaseHealthCheck pings the database. A database switched off in config
// is reported as healthy with a message saying so.
func DatabaseHealthCheck(c fiber.Ctx) error {
	st := status.New(status.WithHeader(string(config.ModuleDatabase)))

	ctx, cancel := context.WithTimeout(c.Context(), pingTimeout)
	defer cancel()

	err := database.Ping(ctx)
	switch {
	case errors.Is(err, database.ErrDisabled):
		st.SetMessage("database disabled")
	case err != nil:
		st.AddErrorFrom(err, "database unreachable")
	default:
		st.SetMessage("ok")
	}

	return apperror.WriteStatusCode(config.ModuleHealth, c, fiber.StatusServiceUnavailable, st, apperror.InternalDatabase, nil)
}
