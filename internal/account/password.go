package account

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"status-generic/pkg/status"
	"status-generic/pkg/status/validate"
)

const MinPasswordLength = 10

type passwordRule struct {
	ok      func(string) bool
	message string
}

var passwordRules = []passwordRule{
	{
		ok:      func(s string) bool { return utf8.RuneCountInString(s) >= MinPasswordLength },
		message: fmt.Sprintf("A password must be at least %d characters long", MinPasswordLength),
	},
	{
		ok:      func(s string) bool { return strings.ContainsFunc(s, unicode.IsUpper) },
		message: "A password must contain an upper case character",
	},
	{
		ok:      func(s string) bool { return strings.ContainsFunc(s, unicode.IsLower) },
		message: "A password must contain a lower case character",
	},
	{
		ok:      func(s string) bool { return strings.ContainsFunc(s, unicode.IsDigit) },
		message: "A password must contain a digit",
	},
}

// CheckPassword reports every password rule the candidate breaks.
func CheckPassword(password string) *status.Handler[status.Unit] {
	st := status.New()
	for _, rule := range passwordRules {
		if !rule.ok(password) {
			st.AddError(rule.message, "password")
		}
	}

	return st
}

// CheckEmail reports an empty or malformed email.
func CheckEmail(email string) *status.Handler[status.Unit] {
	st := status.New()
	if email == "" {
		return st.AddError("The email must not be empty", "email")
	}

	if err := validate.Var(st, "email", email, "email"); err != nil {
		return st.AddErrorFrom(err, "Could not validate the email", "email")
	}

	return st
}
