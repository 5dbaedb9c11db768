package account

import (
	"github.com/gofiber/fiber/v3"
)

// RegisterRoutes registers account routes on the provided router.
func RegisterRoutes(r fiber.Router, h *Handler) {
	grp := r.Group("/account")

	grp.Post("/register", h.Register)
	grp.Post("/login", h.Login)
	grp.Post("/password/check", h.CheckPassword)
}
