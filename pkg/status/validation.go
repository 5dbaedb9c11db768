package status

// ValidationResult is a single validation failure produced outside this
// package. Only the message and the member names are read.
type ValidationResult interface {
	ErrorMessage() string
	MemberNames() []string
}

type validationResult struct {
	message string
	members []string
}

func (r validationResult) ErrorMessage() string  { return r.message }
func (r validationResult) MemberNames() []string { return r.members }

// NewValidationResult builds a ValidationResult from a message and the names
// of the fields it applies to.
func NewValidationResult(message string, memberNames ...string) ValidationResult {
	return validationResult{message: message, members: cloneStrings(memberNames)}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}

	out := make([]string, len(in))
	copy(out, in)

	return out
}
