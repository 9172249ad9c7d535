package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"teller/internal/atm"
)

// authFlags are shared by the one-shot operation commands. Each command
// authenticates a fresh session, performs its operation and exits, so the
// service contract can be exercised without the interactive menu.
type authFlags struct {
	Account string
	PIN     string
}

func addAuthFlags(cmd *cobra.Command, flags *authFlags) {
	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "account number")
	cmd.Flags().StringVarP(&flags.PIN, "pin", "p", "", "account PIN")
	cmd.MarkFlagRequired("account")
	cmd.MarkFlagRequired("pin")
}

func loginSession(flags *authFlags) (*atm.Session, error) {
	session := atm.NewSession(application.Bank, application.Logger)

	number := strings.ToUpper(strings.TrimSpace(flags.Account))
	if err := session.Login(number, flags.PIN); err != nil {
		return nil, err
	}

	return session, nil
}
