package cmd

import (
	"github.com/spf13/cobra"

	"teller/internal/ui/views"
)

func NewBalanceCmd() *cobra.Command {
	flags := &authFlags{}

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the balance of an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := loginSession(flags)
			if err != nil {
				return err
			}
			defer session.Logout()

			balance, err := session.Balance()
			if err != nil {
				return err
			}

			views.RenderBalance(session.AccountNumber(), balance, cfg.Defaults.Currency)
			return nil
		},
	}

	addAuthFlags(cmd, flags)

	return cmd
}
