package cmd

import (
	"github.com/spf13/cobra"

	"teller/internal/bank"
	"teller/internal/money"
	"teller/internal/ui/views"
)

func NewDepositCmd() *cobra.Command {
	flags := &authFlags{}
	var amountStr string

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit an amount into an account",
		Long:  `Example: teller deposit -a ACC1001 -p 1234 --amount 150.50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := money.Parse(amountStr)
			if err != nil {
				return err
			}

			session, err := loginSession(flags)
			if err != nil {
				return err
			}
			defer session.Logout()

			if err := session.Deposit(amount); err != nil {
				return err
			}

			balance, err := session.Balance()
			if err != nil {
				return err
			}

			views.RenderReceipt(bank.KindDeposit, amount, balance, cfg.Defaults.Currency)
			return nil
		},
	}

	addAuthFlags(cmd, flags)
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount to deposit")
	cmd.MarkFlagRequired("amount")

	return cmd
}
