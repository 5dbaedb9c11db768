package status

import (
	"fmt"

	"github.com/pkg/errors"
)

// HeaderSeparator joins nested headers, e.g. "Update>Author".
const HeaderSeparator = ">"

// ErrInvalidArgument is the panic value (wrapped) raised on caller misuse,
// such as adding an error without a message.
var ErrInvalidArgument = errors.New("invalid argument")

// Entry is one reported problem.
type Entry struct {
	header     string
	message    string
	fieldNames []string
	debug      *DebugInfo
}

// compile-time guarantee that Entry can travel as an error
var _ error = Entry{}

// NewEntry builds an entry from a validation result. It panics with
// ErrInvalidArgument if result is nil or carries an empty message.
func NewEntry(header string, result ValidationResult) Entry {
	if result == nil {
		panic(fmt.Errorf("%w: validation result must not be nil", ErrInvalidArgument))
	}

	message := result.ErrorMessage()
	if message == "" {
		panic(fmt.Errorf("%w: error message must not be empty", ErrInvalidArgument))
	}

	return Entry{
		header:     header,
		message:    message,
		fieldNames: cloneStrings(result.MemberNames()),
	}
}

// Reprefix returns a copy of existing whose header is prefixed with prefix.
// An empty prefix keeps the existing header, an empty existing header becomes
// prefix, otherwise the two are joined with HeaderSeparator.
func Reprefix(prefix string, existing Entry) Entry {
	switch {
	case prefix == "":
	case existing.header == "":
		existing.header = prefix
	default:
		existing.header = prefix + HeaderSeparator + existing.header
	}

	return existing
}

func (e Entry) Header() string  { return e.header }
func (e Entry) Message() string { return e.message }

// FieldNames returns a copy of the fields this entry applies to.
func (e Entry) FieldNames() []string { return cloneStrings(e.fieldNames) }

// Debug returns the captured debug information, if any.
func (e Entry) Debug() (DebugInfo, bool) {
	if e.debug == nil {
		return DebugInfo{}, false
	}

	return *e.debug, true
}

// DebugData returns the rendered debug information, or "" when none was captured.
func (e Entry) DebugData() string {
	if e.debug == nil {
		return ""
	}

	return e.debug.String()
}

func (e *Entry) attachDebugInfo(ex Exception) {
	info := Capture(ex)
	e.debug = &info
}

// String renders "header: message", or just the message without a header.
func (e Entry) String() string {
	if e.header == "" {
		return e.message
	}

	return e.header + ": " + e.message
}

func (e Entry) Error() string { return e.String() }
