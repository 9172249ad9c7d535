package cmd

import (
	"github.com/spf13/cobra"

	"teller/internal/money"
	"teller/internal/ui/views"
)

func NewAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List every registered account",
		Long: `Bank-side listing of the whole directory with holders and balances.
An inspection surface for demos and fixtures, not part of the ATM flow.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows []views.AccountRow

			for _, number := range application.Bank.Numbers() {
				acc, ok := application.Bank.Account(number)
				if !ok {
					continue
				}

				holder := ""
				if user, ok := application.Bank.UserByAccount(number); ok {
					holder = user.Name()
				}

				rows = append(rows, views.AccountRow{
					Number:       number,
					Holder:       holder,
					Balance:      money.Format(acc.Balance(), cfg.Defaults.Currency),
					Transactions: len(acc.History()),
				})
			}

			return views.NewAccountListView().Render(rows)
		},
	}
}
