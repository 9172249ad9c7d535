package views

import (
	"fmt"

	"github.com/pterm/pterm"
)

// AccountRow is one line of the registered-accounts listing.
type AccountRow struct {
	Number       string
	Holder       string
	Balance      string
	Transactions int
}

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(rows []AccountRow) error {
	if len(rows) == 0 {
		pterm.Warning.Println("No accounts registered")
		return nil
	}

	pterm.DefaultSection.Printf("Registered Accounts")

	tableData := pterm.TableData{
		{"Number", "Holder", "Balance", "Transactions"},
	}

	for _, row := range rows {
		tableData = append(tableData, []string{
			pterm.Cyan(row.Number),
			row.Holder,
			pterm.Green(row.Balance),
			fmt.Sprintf("%d", row.Transactions),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(rows))
	return nil
}
