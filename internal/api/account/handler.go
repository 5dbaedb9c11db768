package account

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"status-generic/config"
	"status-generic/internal/account"
	"status-generic/pkg/apperror"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type passwordRequest struct {
	Password string `json:"password"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
	return &Handler{svc: svc}
}

func toResponse(u *account.User) any {
	if u == nil {
		return nil
	}
	return userResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

func (h *Handler) Register(c fiber.Ctx) error {
	var req credentials
	if err := c.Bind().JSON(&req); err != nil {
		return apperror.BadRequest(config.ModuleAccount, c, apperror.AccountInvalidRequestBody, "invalid request body")
	}

	st, err := h.svc.Register(c.Context(), req.Email, req.Password)
	if err != nil {
		return apperror.InternalError(config.ModuleAccount, c, apperror.InternalDatabase, err)
	}

	return apperror.WriteStatus(config.ModuleAccount, c, st, apperror.AccountValidationFailed, toResponse(st.Result()))
}

func (h *Handler) Login(c fiber.Ctx) error {
	var req credentials
	if err := c.Bind().JSON(&req); err != nil {
		return apperror.BadRequest(config.ModuleAccount, c, apperror.AccountInvalidRequestBody, "invalid request body")
	}

	st, err := h.svc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return apperror.InternalError(config.ModuleAccount, c, apperror.InternalDatabase, err)
	}

	return apperror.WriteStatusCode(config.ModuleAccount, c, fiber.StatusUnauthorized, st, apperror.AccountLoginFailed, toResponse(st.Result()))
}

func (h *Handler) CheckPassword(c fiber.Ctx) error {
	var req passwordRequest
	if err := c.Bind().JSON(&req); err != nil {
		return apperror.BadRequest(config.ModuleAccount, c, apperror.AccountInvalidRequestBody, "invalid request body")
	}

	st := account.CheckPassword(req.Password).SetMessage("Password accepted")

	return apperror.WriteStatus(config.ModuleAccount, c, st, apperror.AccountValidationFailed, nil)
}
