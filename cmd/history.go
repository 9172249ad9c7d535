package cmd

import (
	"github.com/spf13/cobra"

	"teller/internal/ui/views"
)

func NewHistoryCmd() *cobra.Command {
	flags := &authFlags{}
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the transaction history of an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := loginSession(flags)
			if err != nil {
				return err
			}
			defer session.Logout()

			txs, err := session.History()
			if err != nil {
				return err
			}

			view := views.NewHistoryView(cfg.Defaults.Currency)
			return view.Render(session.AccountNumber(), txs, limit)
		},
	}

	addAuthFlags(cmd, flags)
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "show only the most recent N transactions")

	return cmd
}
