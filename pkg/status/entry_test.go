package status_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"status-generic/pkg/status"
)

func TestReprefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prefix   string
		existing string
		want     string
	}{
		{name: "both empty", prefix: "", existing: "", want: ""},
		{name: "empty prefix keeps header", prefix: "", existing: "Inner", want: "Inner"},
		{name: "empty header takes prefix", prefix: "Outer", existing: "", want: "Outer"},
		{name: "both set are joined", prefix: "Outer", existing: "Inner", want: "Outer>Inner"},
		{name: "nested headers", prefix: "A", existing: "B>C", want: "A>B>C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := status.NewEntry(tt.existing, status.NewValidationResult("boom", "Field"))
			got := status.Reprefix(tt.prefix, e)

			assert.Equal(t, tt.want, got.Header())
			assert.Equal(t, "boom", got.Message())
			assert.Equal(t, []string{"Field"}, got.FieldNames())
			assert.Equal(t, tt.existing, e.Header(), "original entry must not change")
		})
	}
}

func TestReprefix_KeepsDebugData(t *testing.T) {
	t.Parallel()

	st := status.New().AddErrorFrom(errors.New("cause"), "failed")
	got := status.Reprefix("Outer", st.Errors()[0])

	info, ok := got.Debug()
	require.True(t, ok)
	assert.Equal(t, "cause", info.Message)
	assert.Equal(t, st.Errors()[0].DebugData(), got.DebugData())
}

func TestEntry_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "MyClass: x", status.NewEntry("MyClass", status.NewValidationResult("x")).String())
	assert.Equal(t, "x", status.NewEntry("", status.NewValidationResult("x")).String())
	assert.Equal(t, "x", status.NewEntry("", status.NewValidationResult("x")).Error())
}

func TestNewEntry_RejectsMissingMessage(t *testing.T) {
	t.Parallel()

	assertInvalidArgument(t, func() { status.NewEntry("h", status.NewValidationResult("")) })
	assertInvalidArgument(t, func() { status.NewEntry("h", nil) })
}

func TestEntry_FieldNamesAreCopied(t *testing.T) {
	t.Parallel()

	names := []string{"a", "b"}
	e := status.NewEntry("", status.NewValidationResult("x", names...))
	names[0] = "changed"

	got := e.FieldNames()
	assert.Equal(t, []string{"a", "b"}, got)

	got[1] = "changed"
	assert.Equal(t, []string{"a", "b"}, e.FieldNames())
}

func TestEntry_NoDebugData(t *testing.T) {
	t.Parallel()

	e := status.NewEntry("", status.NewValidationResult("x"))
	_, ok := e.Debug()
	assert.False(t, ok)
	assert.Empty(t, e.DebugData())
}

func assertInvalidArgument(t *testing.T, fn func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error, got %T", r)
		assert.ErrorIs(t, err, status.ErrInvalidArgument)
	}()

	fn()
}
