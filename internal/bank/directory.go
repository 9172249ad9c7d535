package bank

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"
)

// Directory is the in-memory bank backend. It owns every registered Account
// and maps account numbers to both the account and its holder. The maps are
// populated during a single-threaded setup phase and are read-only at steady
// state; concurrent mutation safety lives entirely in Account.
type Directory struct {
	logger   *slog.Logger
	accounts map[string]*Account
	users    map[string]*User
}

var _ Service = (*Directory)(nil)

// NewDirectory creates an empty directory. A nil logger disables logging.
func NewDirectory(logger *slog.Logger) *Directory {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Directory{
		logger:   logger,
		accounts: make(map[string]*Account),
		users:    make(map[string]*User),
	}
}

// RegisterUser indexes every account the user holds under its account
// number. Setup-time only: it is not safe to call concurrently with
// steady-state operations. Registration is all-or-nothing; a duplicate
// account number rejects the whole user.
func (d *Directory) RegisterUser(u *User) error {
	accounts := u.Accounts()

	for _, acc := range accounts {
		if _, exists := d.accounts[acc.Number()]; exists {
			return fmt.Errorf("register %s: %w: %s", u.Name(), ErrDuplicateAccount, acc.Number())
		}
	}

	for _, acc := range accounts {
		d.accounts[acc.Number()] = acc
		d.users[acc.Number()] = u
		d.logger.Info("account registered", "account", acc.Number(), "holder", u.Name())
	}

	return nil
}

func (d *Directory) Deposit(number string, amount decimal.Decimal) error {
	acc, ok := d.Account(number)
	if !ok {
		d.logger.Warn("deposit on unknown account", "account", number)
		return ErrAccountNotFound
	}

	if err := acc.Deposit(amount); err != nil {
		return err
	}

	d.logger.Info("deposit", "account", number, "amount", amount)
	return nil
}

func (d *Directory) Withdraw(number string, amount decimal.Decimal) error {
	acc, ok := d.Account(number)
	if !ok {
		d.logger.Warn("withdraw on unknown account", "account", number)
		return ErrAccountNotFound
	}

	if err := acc.Withdraw(amount); err != nil {
		d.logger.Warn("withdraw rejected", "account", number, "amount", amount, "reason", err)
		return err
	}

	d.logger.Info("withdraw", "account", number, "amount", amount)
	return nil
}

func (d *Directory) Balance(number string) (decimal.Decimal, error) {
	acc, ok := d.Account(number)
	if !ok {
		return decimal.Zero, ErrAccountNotFound
	}

	return acc.Balance(), nil
}

func (d *Directory) Transactions(number string) ([]Transaction, error) {
	acc, ok := d.Account(number)
	if !ok {
		return nil, ErrAccountNotFound
	}

	return acc.History(), nil
}

func (d *Directory) UserByAccount(number string) (*User, bool) {
	u, ok := d.users[number]
	return u, ok
}

func (d *Directory) Account(number string) (*Account, bool) {
	acc, ok := d.accounts[number]
	return acc, ok
}

// Numbers returns every registered account number in sorted order.
func (d *Directory) Numbers() []string {
	numbers := make([]string, 0, len(d.accounts))
	for number := range d.accounts {
		numbers = append(numbers, number)
	}

	sort.Strings(numbers)
	return numbers
}
