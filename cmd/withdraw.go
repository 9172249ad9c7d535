package cmd

import (
	"github.com/spf13/cobra"

	"teller/internal/bank"
	"teller/internal/money"
	"teller/internal/ui/views"
)

func NewWithdrawCmd() *cobra.Command {
	flags := &authFlags{}
	var amountStr string

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw an amount from an account",
		Long:  `Example: teller withdraw -a ACC1001 -p 1234 --amount 200`,
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

			if err := session.Withdraw(amount); err != nil {
				return err
			}

			balance, err := session.Balance()
			if err != nil {
				return err
			}

			views.RenderReceipt(bank.KindWithdraw, amount, balance, cfg.Defaults.Currency)
			return nil
		},
	}

	addAuthFlags(cmd, flags)
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount to withdraw")
	cmd.MarkFlagRequired("amount")

	return cmd
}
