package bank

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind classifies a transaction record.
type Kind string

const (
	KindDeposit  Kind = "Deposit"
	KindWithdraw Kind = "Withdraw"
)

// Transaction is an immutable record of one completed operation on an
// account. Records are appended to the account history in operation order
// and never mutated or deleted afterwards.
type Transaction struct {
	ID        uuid.UUID
	Kind      Kind
	Amount    decimal.Decimal
	Timestamp time.Time
}

func newTransaction(kind Kind, amount decimal.Decimal) Transaction {
	return Transaction{
		ID:        uuid.New(),
		Kind:      kind,
		Amount:    amount,
		Timestamp: time.Now(),
	}
}
