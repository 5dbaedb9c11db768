package status

// Failure is the error form of an invalid status.
type Failure struct {
	status Status
}

// Status returns the status this failure was built from.
func (f *Failure) Status() Status { return f.status }

func (f *Failure) Error() string {
	return f.status.Message() + ": " + f.status.GetAllErrors("; ")
}

// Unwrap exposes every entry so errors.As can reach a specific Entry.
func (f *Failure) Unwrap() []error {
	entries := f.status.Errors()
	out := make([]error, len(entries))
	for i, e := range entries {
		out[i] = e
	}

	return out
}
