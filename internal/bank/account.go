package bank

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Account owns a balance and the transaction log that produced it. Every
// public operation holds the per-account mutex for its full duration, so all
// operations on a single account are linearizable. The lock is never held
// across I/O.
type Account struct {
	number string

	mu      sync.Mutex
	balance decimal.Decimal
	history []Transaction
}

// NewAccount creates an account with an opening balance. The opening balance
// is not recorded as a transaction.
func NewAccount(number string, openingBalance decimal.Decimal) *Account {
	return &Account{
		number:  number,
		balance: openingBalance,
	}
}

func (a *Account) Number() string {
	return a.number
}

// Deposit credits amount to the balance and appends a Deposit record.
// Non-positive amounts are rejected.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance = a.balance.Add(amount)
	a.history = append(a.history, newTransaction(KindDeposit, amount))
	return nil
}

// Withdraw debits amount from the balance and appends a Withdraw record.
// A withdrawal exceeding the balance is rejected atomically: the balance is
// unchanged and nothing is logged.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}

	a.balance = a.balance.Sub(amount)
	a.history = append(a.history, newTransaction(KindWithdraw, amount))
	return nil
}

// Balance returns the current balance, reflecting every operation that
// completed before the call.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.balance
}

// History returns a snapshot copy of the transaction log in append order.
func (a *Account) History() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]Transaction, len(a.history))
	copy(out, a.history)
	return out
}
