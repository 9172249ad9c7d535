package views

import (
	"github.com/pterm/pterm"

	"teller/internal/bank"
	"teller/internal/constants"
	"teller/internal/money"
)

type HistoryView struct {
	Currency string
}

func NewHistoryView(currency string) *HistoryView {
	return &HistoryView{Currency: currency}
}

// Render prints the transaction log for one account, newest last. A positive
// limit keeps only the most recent entries.
func (v *HistoryView) Render(number string, txs []bank.Transaction, limit int) error {
	if len(txs) == 0 {
		pterm.Warning.Println("No transactions yet")
		return nil
	}

	if limit > 0 && len(txs) > limit {
		txs = txs[len(txs)-limit:]
	}

	pterm.DefaultSection.Printf("Transaction history for account %s", number)

	tableData := pterm.TableData{
		{"Time", "Type", "Amount"},
	}

	for _, tx := range txs {
		amount := money.Format(tx.Amount, v.Currency)

		var coloredKind, coloredAmount string
		switch tx.Kind {
		case bank.KindDeposit:
			coloredKind = pterm.Green(string(tx.Kind))
			coloredAmount = pterm.Green(amount)
		case bank.KindWithdraw:
			coloredKind = pterm.Red(string(tx.Kind))
			coloredAmount = pterm.Red(amount)
		default:
			coloredKind = string(tx.Kind)
			coloredAmount = amount
		}

		tableData = append(tableData, []string{
			tx.Timestamp.Format(constants.TimestampFormat),
			coloredKind,
			coloredAmount,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d transactions\n", len(txs))
	return nil
}
