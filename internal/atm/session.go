package atm

import (
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"teller/internal/bank"
)

var (
	// ErrInvalidCredentials is returned for both an unknown account number
	// and a wrong PIN, so a caller cannot probe which account numbers exist.
	ErrInvalidCredentials = errors.New("invalid account number or PIN")

	ErrNotLoggedIn = errors.New("not logged in")
)

// Session is one front-end's view of the bank. It tracks the authenticated
// user and account and delegates every operation to the service contract; it
// holds no business logic of its own.
type Session struct {
	svc     bank.Service
	logger  *slog.Logger
	user    *bank.User
	account *bank.Account
}

func NewSession(svc bank.Service, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Session{svc: svc, logger: logger}
}

// Login authenticates against the stored PIN for the account's holder.
// Any failure leaves the session logged out.
func (s *Session) Login(number, pin string) error {
	user, ok := s.svc.UserByAccount(number)
	if !ok || !user.Authenticate(pin) {
		s.logger.Warn("login failed", "account", number)
		return ErrInvalidCredentials
	}

	account, ok := s.svc.Account(number)
	if !ok {
		return ErrInvalidCredentials
	}

	s.user = user
	s.account = account
	s.logger.Info("login", "account", number, "user", user.Name())
	return nil
}

func (s *Session) Logout() {
	if s.user != nil {
		s.logger.Info("logout", "account", s.account.Number())
	}

	s.user = nil
	s.account = nil
}

func (s *Session) LoggedIn() bool {
	return s.user != nil
}

// UserName returns the authenticated user's name, or "" when logged out.
func (s *Session) UserName() string {
	if s.user == nil {
		return ""
	}
	return s.user.Name()
}

// AccountNumber returns the authenticated account number, or "" when
// logged out.
func (s *Session) AccountNumber() string {
	if s.account == nil {
		return ""
	}
	return s.account.Number()
}

func (s *Session) Deposit(amount decimal.Decimal) error {
	if !s.LoggedIn() {
		return ErrNotLoggedIn
	}
	return s.svc.Deposit(s.account.Number(), amount)
}

func (s *Session) Withdraw(amount decimal.Decimal) error {
	if !s.LoggedIn() {
		return ErrNotLoggedIn
	}
	return s.svc.Withdraw(s.account.Number(), amount)
}

func (s *Session) Balance() (decimal.Decimal, error) {
	if !s.LoggedIn() {
		return decimal.Zero, ErrNotLoggedIn
	}
	return s.svc.Balance(s.account.Number())
}

func (s *Session) History() ([]bank.Transaction, error) {
	if !s.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	return s.svc.Transactions(s.account.Number())
}
