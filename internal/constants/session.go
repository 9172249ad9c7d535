package constants

const (
	MaxPINAttempts      = 3
	MinPINLen           = 4
	MaxPINLen           = 6
	MaxAccountNumberLen = 20
	MaxAmountUnits      = 1_000_000_000
)

// Menu choices offered while logged in.
const (
	MenuBalance  = "Check Balance"
	MenuDeposit  = "Deposit"
	MenuWithdraw = "Withdraw"
	MenuHistory  = "Show Transactions"
	MenuLogout   = "Logout"
)

// MenuChoices returns the menu entries in display order.
func MenuChoices() []string {
	return []string{MenuBalance, MenuDeposit, MenuWithdraw, MenuHistory, MenuLogout}
}

const TimestampFormat = "2006-01-02 15:04:05"
