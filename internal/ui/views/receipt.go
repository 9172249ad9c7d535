package views

import (
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"teller/internal/bank"
	"teller/internal/money"
	"teller/internal/ui"
)

// RenderBalance prints the current balance of an account.
func RenderBalance(number string, balance decimal.Decimal, currency string) {
	pterm.Info.Printf("Balance for %s: %s\n", number, money.Format(balance, currency))
}

// RenderReceipt prints the outcome of a completed deposit or withdrawal
// together with the resulting balance.
func RenderReceipt(kind bank.Kind, amount, newBalance decimal.Decimal, currency string) {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Operation"), string(kind)},
		{pterm.Blue("Amount"), money.Format(amount, currency)},
		{pterm.Blue("Balance"), money.Format(newBalance, currency)},
	}

	pterm.DefaultTable.WithData(tableData).Render()

	switch kind {
	case bank.KindDeposit:
		pterm.Success.Println("Deposit successful!")
	case bank.KindWithdraw:
		pterm.Success.Println("Withdrawal successful!")
	}
}
