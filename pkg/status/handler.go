package status

import (
	"fmt"
	"strings"
)

// Status is the read side of an accumulated status.
type Status interface {
	// Errors returns the recorded errors in insertion order.
	Errors() []Entry
	// IsValid reports whether no errors were recorded.
	IsValid() bool
	// HasErrors is the negation of IsValid.
	HasErrors() bool
	// Message is the success message while valid, "Failed with N error(s)" otherwise.
	Message() string
	// GetAllErrors renders every error joined by the separator (a line break
	// by default), or NoErrors when there are none.
	GetAllErrors(separator ...string) string
}

// Typed is a Status that also carries a result.
type Typed[T any] interface {
	Status
	// Result returns the value set with SetResult, or the zero T when the
	// status has errors.
	Result() T
}

// Unit is the result type of a status that returns nothing but itself.
type Unit struct{}

// Handler accumulates errors for one logical operation. Mutating methods
// return the receiver so a function can end with `return st.AddError(...)`.
// Read accessors treat a nil *Handler as an empty, valid status; mutating
// methods need a non-nil receiver.
type Handler[T any] struct {
	header         string
	errors         []Entry
	successMessage string
	debugData      string
	result         T
}

var (
	_ Status        = (*Handler[Unit])(nil)
	_ Typed[string] = (*Handler[string])(nil)
)

// New creates a status without a result.
func New(opts ...Option) *Handler[Unit] {
	return NewTyped[Unit](opts...)
}

// NewTyped creates a status carrying a result of type T.
func NewTyped[T any](opts ...Option) *Handler[T] {
	s := newSettings(opts)

	return &Handler[T]{
		header:         s.header,
		successMessage: s.message,
	}
}

// Header is prefixed to errors added to this status and to the errors of
// statuses combined into it.
func (h *Handler[T]) Header() string {
	if h == nil {
		return ""
	}
	return h.header
}

func (h *Handler[T]) SetHeader(header string) *Handler[T] {
	h.header = header
	return h
}

func (h *Handler[T]) Errors() []Entry {
	if h == nil || len(h.errors) == 0 {
		return nil
	}

	out := make([]Entry, len(h.errors))
	copy(out, h.errors)

	return out
}

func (h *Handler[T]) IsValid() bool   { return h == nil || len(h.errors) == 0 }
func (h *Handler[T]) HasErrors() bool { return !h.IsValid() }

func (h *Handler[T]) Message() string {
	if h == nil {
		return DefaultSuccessMessage
	}
	if h.IsValid() {
		return h.successMessage
	}

	n := len(h.errors)
	if n == 1 {
		return "Failed with 1 error"
	}

	return fmt.Sprintf("Failed with %d errors", n)
}

// SetMessage replaces the success message. It has no visible effect while
// the status has errors.
func (h *Handler[T]) SetMessage(message string) *Handler[T] {
	h.successMessage = message
	return h
}

// DebugData is free text owned by the caller, separate from the debug data
// of individual errors.
func (h *Handler[T]) DebugData() string {
	if h == nil {
		return ""
	}
	return h.debugData
}

func (h *Handler[T]) SetDebugData(data string) *Handler[T] {
	h.debugData = data
	return h
}

// CaptureDebugData replaces the status debug data with the capture of err.
// A nil err leaves the debug data untouched.
func (h *Handler[T]) CaptureDebugData(err error) *Handler[T] {
	if err == nil {
		return h
	}
	h.debugData = Capture(FromError(err)).String()
	return h
}

// AddError records one error under the status header. It panics with
// ErrInvalidArgument when message is empty.
func (h *Handler[T]) AddError(message string, fieldNames ...string) *Handler[T] {
	h.append(message, fieldNames)
	return h
}

// AddErrorFrom records one error like AddError and captures err as its debug
// data.
func (h *Handler[T]) AddErrorFrom(err error, message string, fieldNames ...string) *Handler[T] {
	e := h.append(message, fieldNames)
	if ex := FromError(err); ex != nil {
		e.attachDebugInfo(ex)
	}

	return h
}

func (h *Handler[T]) append(message string, fieldNames []string) *Entry {
	h.AddValidationResult(NewValidationResult(message, fieldNames...))

	return &h.errors[len(h.errors)-1]
}

// AddValidationResult records result under the status header.
func (h *Handler[T]) AddValidationResult(result ValidationResult) {
	h.errors = append(h.errors, Reprefix(h.header, NewEntry("", result)))
}

// AddValidationResults records every result, in order, under the status header.
func (h *Handler[T]) AddValidationResults(results ...ValidationResult) {
	for _, r := range results {
		h.AddValidationResult(r)
	}
}

// Combine copies the errors of other into h, prefixing their headers with
// h's header. When h is still valid afterwards and other carries a custom
// success message, that message becomes h's message.
//
// Combining a status into itself is unsupported.
func (h *Handler[T]) Combine(other Status) *Handler[T] {
	if other == nil {
		return h
	}

	if !other.IsValid() {
		for _, e := range other.Errors() {
			h.errors = append(h.errors, Reprefix(h.header, e))
		}
	}

	if h.IsValid() && other.Message() != DefaultSuccessMessage {
		h.successMessage = other.Message()
	}

	return h
}

func (h *Handler[T]) GetAllErrors(separator ...string) string {
	if h.IsValid() {
		return NoErrors
	}

	sep := "\n"
	if len(separator) > 0 {
		sep = separator[0]
	}

	parts := make([]string, len(h.errors))
	for i, e := range h.errors {
		parts[i] = e.String()
	}

	return strings.Join(parts, sep)
}

// SetResult stores the value returned by Result while the status is valid.
func (h *Handler[T]) SetResult(result T) *Handler[T] {
	h.result = result
	return h
}

func (h *Handler[T]) Result() T {
	if h == nil || h.HasErrors() {
		var zero T
		return zero
	}

	return h.result
}

// Err returns nil for a valid status and a *Failure otherwise.
func (h *Handler[T]) Err() error {
	if h.IsValid() {
		return nil
	}

	return &Failure{status: h}
}
