package status

// DefaultSuccessMessage is the message of a valid status nobody customized.
const DefaultSuccessMessage = "Success"

// NoErrors is returned by GetAllErrors when there is nothing to report.
const NoErrors = "No errors"

// Option configures a Handler during New / NewTyped.
type Option func(*settings)

type settings struct {
	header  string
	message string
}

// WithHeader sets the header applied to errors added to the new status.
func WithHeader(header string) Option { return func(s *settings) { s.header = header } }

// WithMessage sets the initial success message.
func WithMessage(message string) Option { return func(s *settings) { s.message = message } }

func newSettings(opts []Option) settings {
	s := settings{message: DefaultSuccessMessage}
	for _, o := range opts {
		o(&s)
	}

	return s
}
