package bank

import "github.com/shopspring/decimal"

// Service is the contract a front-end depends on. Every operation is keyed
// by account number; implementations resolve the number to the owning
// account and forward the operation. Unknown numbers surface as
// ErrAccountNotFound (or a false second return on the lookup methods), never
// as a panic or a sentinel value.
type Service interface {
	Deposit(number string, amount decimal.Decimal) error
	Withdraw(number string, amount decimal.Decimal) error
	Balance(number string) (decimal.Decimal, error)
	Transactions(number string) ([]Transaction, error)
	UserByAccount(number string) (*User, bool)
	Account(number string) (*Account, bool)
}
