package atm

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teller/internal/bank"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()

	dir := bank.NewDirectory(nil)

	alice := bank.NewUser("Alice", "1234")
	alice.AddAccount(bank.NewAccount("ACC1001", decimal.NewFromInt(1000)))
	require.NoError(t, dir.RegisterUser(alice))

	return NewSession(dir, nil)
}

func TestSessionLoginSuccess(t *testing.T) {
	session := newTestSession(t)

	require.NoError(t, session.Login("ACC1001", "1234"))

	assert.True(t, session.LoggedIn())
	assert.Equal(t, "Alice", session.UserName())
	assert.Equal(t, "ACC1001", session.AccountNumber())
}

func TestSessionLoginFailureIsGeneric(t *testing.T) {
	session := newTestSession(t)

	wrongPIN := session.Login("ACC1001", "wrong")
	unknownAccount := session.Login("ACC9999", "anything")

	// Wrong PIN and unknown account are indistinguishable, so the error
	// cannot be used to enumerate account numbers.
	assert.ErrorIs(t, wrongPIN, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownAccount, ErrInvalidCredentials)
	assert.Equal(t, wrongPIN.Error(), unknownAccount.Error())

	assert.False(t, session.LoggedIn())
}

func TestSessionOperationsRequireLogin(t *testing.T) {
	session := newTestSession(t)

	assert.ErrorIs(t, session.Deposit(decimal.NewFromInt(10)), ErrNotLoggedIn)
	assert.ErrorIs(t, session.Withdraw(decimal.NewFromInt(10)), ErrNotLoggedIn)

	_, err := session.Balance()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = session.History()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestSessionEndToEnd(t *testing.T) {
	session := newTestSession(t)
	require.NoError(t, session.Login("ACC1001", "1234"))

	require.NoError(t, session.Deposit(decimal.NewFromInt(500)))

	balance, err := session.Balance()
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(1500)))

	err = session.Withdraw(decimal.NewFromInt(2000))
	assert.ErrorIs(t, err, bank.ErrInsufficientFunds)

	balance, err = session.Balance()
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(1500)))

	require.NoError(t, session.Withdraw(decimal.NewFromInt(1500)))

	balance, err = session.Balance()
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	history, err := session.History()
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, bank.KindDeposit, history[0].Kind)
	assert.Equal(t, bank.KindWithdraw, history[1].Kind)
}

func TestSessionLogout(t *testing.T) {
	session := newTestSession(t)
	require.NoError(t, session.Login("ACC1001", "1234"))

	session.Logout()

	assert.False(t, session.LoggedIn())
	assert.Empty(t, session.UserName())
	assert.Empty(t, session.AccountNumber())
	assert.ErrorIs(t, session.Deposit(decimal.NewFromInt(1)), ErrNotLoggedIn)
}

func TestSessionRelogin(t *testing.T) {
	session := newTestSession(t)

	require.NoError(t, session.Login("ACC1001", "1234"))
	session.Logout()
	require.NoError(t, session.Login("ACC1001", "1234"))

	assert.True(t, session.LoggedIn())
}
