// Package validate feeds go-playground/validator failures into a status.
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"status-generic/pkg/status"
)

// Collector receives validation results. *status.Handler satisfies it.
type Collector interface {
	AddValidationResults(results ...status.ValidationResult)
}

var std = New()

// New returns a validator that reports fields by their json (or koanf) name.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(tagName)

	return v
}

func tagName(f reflect.StructField) string {
	for _, key := range []string{"json", "koanf"} {
		name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return ""
}

// Struct validates v and adds one result per failed rule to c. Errors that
// are not validation failures (e.g. v is not a struct) are returned.
func Struct(c Collector, v any) error {
	return collect(c, std.Struct(v), "")
}

// Var validates a single value against tag, reporting failures under field.
func Var(c Collector, field string, value any, tag string) error {
	return collect(c, std.Var(value, tag), field)
}

func collect(c Collector, err error, field string) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "validate")
	}

	c.AddValidationResults(results(verrs, field)...)

	return nil
}

// Results converts validator.ValidationErrors into validation results. Any
// other error yields nil.
func Results(err error) []status.ValidationResult {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	return results(verrs, "")
}

func results(verrs validator.ValidationErrors, field string) []status.ValidationResult {
	out := make([]status.ValidationResult, 0, len(verrs))
	for _, fe := range verrs {
		name := field
		if name == "" {
			name = memberName(fe)
		}
		out = append(out, status.NewValidationResult(Message(fe, name), name))
	}

	return out
}

// memberName drops the root struct from the namespace: "Config.server.port"
// becomes "server.port".
func memberName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	if ns != "" {
		return ns
	}

	return fe.Field()
}

// Message renders an English message for a failed rule.
func Message(fe validator.FieldError, name string) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", name)
	case "email":
		return fmt.Sprintf("The %s field is not a valid e-mail address.", name)
	case "min", "max", "len":
		return lengthMessage(fe, name)
	case "oneof":
		return fmt.Sprintf("The %s field must be one of [%s].", name, fe.Param())
	case "gt", "gte", "lt", "lte":
		return fmt.Sprintf("The %s field must be %s %s.", name, comparisons[fe.Tag()], fe.Param())
	default:
		return fmt.Sprintf("The %s field failed the '%s' validation.", name, fe.Tag())
	}
}

var comparisons = map[string]string{
	"gt":  "greater than",
	"gte": "at least",
	"lt":  "less than",
	"lte": "at most",
}

func lengthMessage(fe validator.FieldError, name string) string {
	bound := map[string]string{"min": "at least", "max": "at most", "len": "exactly"}[fe.Tag()]

	switch fe.Kind() {
	case reflect.String:
		return fmt.Sprintf("The %s field must be %s %s characters long.", name, bound, fe.Param())
	case reflect.Slice, reflect.Map, reflect.Array:
		return fmt.Sprintf("The %s field must contain %s %s items.", name, bound, fe.Param())
	default:
		return fmt.Sprintf("The %s field must be %s %s.", name, bound, fe.Param())
	}
}
