package account

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"status-generic/internal/account"
)

func newApp() *fiber.App {
	return newAppWith(account.NewMemoryStore())
}

func newAppWith(store account.Store) *fiber.App {
	app := fiber.New()
	svc := account.NewService(store, account.WithHashCost(bcrypt.MinCost))
	RegisterRoutes(app, NewHandler(svc))
	return app
}

type unreachableStore struct{}

func (unreachableStore) FindByEmail(context.Context, string) (*account.User, error) {
	return nil, errors.New("dial tcp 127.0.0.1:3306: connection refused")
}

func (unreachableStore) Create(context.Context, *account.User) error {
	return errors.New("dial tcp 127.0.0.1:3306: connection refused")
}

func post(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return resp.StatusCode, out
}

func TestRegisterThenLogin(t *testing.T) {
	app := newApp()

	code, body := post(t, app, "/account/register", `{"email":"me@gmail.com","password":"Ab1aaaaaaaaa"}`)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "Account created", body["message"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "me@gmail.com", data["email"])
	assert.NotContains(t, data, "password_hash")

	code, body = post(t, app, "/account/login", `{"email":"me@gmail.com","password":"Ab1aaaaaaaaa"}`)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "Logged in", body["message"])
}

func TestLogin_Unknown(t *testing.T) {
	code, body := post(t, newApp(), "/account/login", `{"email":"me@gmail.com","password":"Ab1aaaaaaaaa"}`)

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "SG-2", body["error_code"])
	assert.Equal(t, "Unknown email or password", body["error"])
}

func TestRegister_ValidationErrors(t *testing.T) {
	code, body := post(t, newApp(), "/account/register", `{"email":"","password":""}`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "SG-1", body["error_code"])
	assert.Equal(t, "Failed with 5 errors", body["message"])

	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 5)
	assert.Equal(t, map[string]any{
		"message": "The email must not be empty",
		"fields":  []any{"email"},
	}, errs[0])
}

func TestRegister_BadBody(t *testing.T) {
	code, body := post(t, newApp(), "/account/register", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "SG-0", body["error_code"])
}

func TestCheckPassword(t *testing.T) {
	app := newApp()

	code, body := post(t, app, "/account/password/check", `{"password":"Ab1aaaaaaaaa"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Password accepted", body["message"])

	code, body = post(t, app, "/account/password/check", `{"password":"aaaaaaaaaa1"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Failed with 1 error", body["message"])
}

func TestStoreOutage_AnswersInternalError(t *testing.T) {
	app := newAppWith(unreachableStore{})

	for _, path := range []string{"/account/register", "/account/login"} {
		t.Run(path, func(t *testing.T) {
			code, body := post(t, app, path, `{"email":"me@gmail.com","password":"Ab1aaaaaaaaa"}`)

			assert.Equal(t, http.StatusInternalServerError, code)
			assert.Equal(t, "SG-1002", body["error_code"])
			assert.Equal(t, "internal error", body["error"])
			assert.NotContains(t, body, "errors")
		})
	}
}

func TestStoreOutage_InputErrorsStillReported(t *testing.T) {
	code, body := post(t, newAppWith(unreachableStore{}), "/account/register", `{"email":"","password":"Ab1aaaaaaaaa"}`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "SG-1", body["error_code"])
}
