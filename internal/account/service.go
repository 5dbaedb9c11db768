package account

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"status-generic/pkg/status"
)

// Service registers and authenticates users, reporting every problem
// through a status instead of an error.
type Service struct {
	store Store
	cost  int
}

type Option func(*Service)

// WithHashCost sets the bcrypt cost used for new passwords.
func WithHashCost(cost int) Option { return func(s *Service) { s.cost = cost } }

func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store, cost: bcrypt.DefaultCost}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Register creates an account. Problems with the input come back as status
// errors; a failing store or hasher is returned as the error instead.
func (s *Service) Register(ctx context.Context, email, password string) (*status.Handler[*User], error) {
	st := status.NewTyped[*User]()

	st.Combine(CheckEmail(email)).Combine(CheckPassword(password))
	if st.HasErrors() {
		return st, nil
	}

	_, err := s.store.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return st.AddError("An account with this email already exists", "email"), nil
	case !errors.Is(err, ErrNotFound):
		return st, errors.Wrap(err, "check email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return st, errors.Wrap(err, "hash password")
	}

	u := &User{Email: email, PasswordHash: string(hash)}
	if err := s.store.Create(ctx, u); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return st.AddError("An account with this email already exists", "email"), nil
		}
		return st, errors.Wrap(err, "create account")
	}

	return st.SetResult(u).SetMessage("Account created"), nil
}

// Login checks the credentials. As with Register, the error is only set
// when the store fails.
func (s *Service) Login(ctx context.Context, email, password string) (*status.Handler[*User], error) {
	st := status.NewTyped[*User]()

	if email == "" {
		return st.AddError("The email must not be empty", "email"), nil
	}

	if st.Combine(CheckPassword(password)).HasErrors() {
		return st, nil
	}

	u, err := s.store.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return st.AddError("Unknown email or password"), nil
	}
	if err != nil {
		return st, errors.Wrap(err, "look up account")
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return st.AddError("Unknown email or password"), nil
	}

	return st.SetResult(u).SetMessage("Logged in"), nil
}
