package status

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// KeyValue is one diagnostic pair carried by an Exception.
type KeyValue struct {
	Key   string
	Value any
}

// Exception is a failure that can be captured as debug information.
type Exception interface {
	Message() string
	Trace() string
	Data() []KeyValue
}

// DebugInfo is the structured capture of an Exception.
type DebugInfo struct {
	Message string
	Trace   string
	Data    []KeyValue
}

// Capture copies the message, trace and data of ex.
func Capture(ex Exception) DebugInfo {
	if ex == nil {
		return DebugInfo{}
	}

	info := DebugInfo{
		Message: ex.Message(),
		Trace:   ex.Trace(),
	}
	if data := ex.Data(); len(data) > 0 {
		info.Data = make([]KeyValue, len(data))
		copy(info.Data, data)
	}

	return info
}

// String renders the message, a "StackTrace:" line followed by the trace, and
// one "Data: key\tvalue" line per pair, joined by line breaks.
func (d DebugInfo) String() string {
	lines := make([]string, 0, len(d.Data)+2)
	lines = append(lines, d.Message, "StackTrace:"+d.Trace)
	for _, kv := range d.Data {
		lines = append(lines, fmt.Sprintf("Data: %s\t%v", kv.Key, kv.Value))
	}

	return strings.Join(lines, "\n")
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

type dataCarrier interface {
	Data() []KeyValue
}

// FromError adapts err to an Exception. The trace is the innermost
// github.com/pkg/errors stack trace on the chain; data is collected from every
// error on the chain exposing Data() []KeyValue, innermost first.
// FromError(nil) returns nil.
func FromError(err error) Exception {
	if err == nil {
		return nil
	}
	if ex, ok := err.(Exception); ok {
		return ex
	}

	return errorException{err: err}
}

type errorException struct {
	err error
}

func (e errorException) Message() string { return e.err.Error() }

func (e errorException) Trace() string {
	var st errors.StackTrace
	for cur := e.err; cur != nil; cur = errors.Unwrap(cur) {
		if t, ok := cur.(stackTracer); ok {
			st = t.StackTrace()
		}
	}

	frames := make([]string, 0, len(st))
	for _, f := range st {
		frames = append(frames, fmt.Sprintf("%n (%s:%d)", f, f, f))
	}

	return strings.Join(frames, "\n")
}

func (e errorException) Data() []KeyValue {
	var levels [][]KeyValue
	for cur := e.err; cur != nil; cur = errors.Unwrap(cur) {
		if c, ok := cur.(dataCarrier); ok {
			levels = append(levels, c.Data())
		}
	}

	var out []KeyValue
	for i := len(levels) - 1; i >= 0; i-- {
		out = append(out, levels[i]...)
	}

	return out
}

// WithData attaches key/value pairs to err for later capture. A trailing key
// without a value is recorded with a nil value. WithData(nil, ...) returns nil.
func WithData(err error, kv ...any) error {
	if err == nil {
		return nil
	}

	data := make([]KeyValue, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		pair := KeyValue{Key: fmt.Sprint(kv[i])}
		if i+1 < len(kv) {
			pair.Value = kv[i+1]
		}
		data = append(data, pair)
	}

	return &dataError{cause: err, data: data}
}

type dataError struct {
	cause error
	data  []KeyValue
}

func (e *dataError) Error() string    { return e.cause.Error() }
func (e *dataError) Unwrap() error    { return e.cause }
func (e *dataError) Data() []KeyValue { return e.data }
