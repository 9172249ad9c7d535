/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"teller/internal/atm"
	"teller/internal/bank"
	"teller/internal/constants"
	"teller/internal/errhandler"
	"teller/internal/money"
	"teller/internal/ui"
	"teller/internal/ui/prompts"
	"teller/internal/ui/views"
)

func NewSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Start an interactive ATM session",
		Long: `Prompts for an account number and PIN, then offers the ATM menu:
check balance, deposit, withdraw, show transactions, logout.`,
		RunE: runSession,
	}
}

func runSession(cmd *cobra.Command, args []string) error {
	session := atm.NewSession(application.Bank, application.Logger)
	currency := cfg.Defaults.Currency

	ui.PrintL1Title("Teller ATM")

	if err := loginLoop(session); err != nil {
		if errhandler.IsInterrupt(err) {
			pterm.Warning.Println("Session cancelled")
			return nil
		}
		return err
	}

	return menuLoop(session, currency)
}

func loginLoop(session *atm.Session) error {
	for attempt := 1; attempt <= constants.MaxPINAttempts; attempt++ {
		number, err := prompts.PromptAccountNumber()
		if err != nil {
			return err
		}

		pin, err := prompts.PromptPIN()
		if err != nil {
			return err
		}

		// One message for unknown account and wrong PIN; the session does
		// not reveal which account numbers exist.
		if err := session.Login(number, pin); err != nil {
			pterm.Error.Println("Invalid account number or PIN.")
			continue
		}

		pterm.Success.Printf("Welcome, %s!\n", session.UserName())
		return nil
	}

	return fmt.Errorf("too many failed login attempts")
}

func menuLoop(session *atm.Session, currency string) error {
	for session.LoggedIn() {
		choice, err := prompts.PromptMenu()
		if err != nil {
			if errhandler.IsInterrupt(err) {
				pterm.Warning.Println("Session cancelled")
				return nil
			}
			return err
		}

		if err := runChoice(session, choice, currency); err != nil {
			if errhandler.IsInterrupt(err) {
				pterm.Warning.Println("Operation cancelled")
				continue
			}
			return err
		}
	}

	return nil
}

// runChoice executes one menu selection. Business failures (insufficient
// funds, invalid amounts) are reported and control returns to the menu; only
// unexpected errors propagate.
func runChoice(session *atm.Session, choice, currency string) error {
	switch choice {
	case constants.MenuBalance:
		balance, err := session.Balance()
		if err != nil {
			return err
		}
		views.RenderBalance(session.AccountNumber(), balance, currency)

	case constants.MenuDeposit:
		amount, err := promptAmount("Amount to deposit:")
		if err != nil {
			return err
		}

		if err := session.Deposit(amount); err != nil {
			pterm.Error.Println(capitalize(err.Error()))
			return nil
		}

		renderReceipt(session, bank.KindDeposit, amount, currency)

	case constants.MenuWithdraw:
		amount, err := promptAmount("Amount to withdraw:")
		if err != nil {
			return err
		}

		message := fmt.Sprintf("Withdraw %s from %s?", money.Format(amount, currency), session.AccountNumber())
		confirm, err := prompts.PromptConfirm(message, true)
		if err != nil {
			return err
		}
		if !confirm {
			pterm.Info.Println("Withdrawal cancelled")
			return nil
		}

		if err := session.Withdraw(amount); err != nil {
			pterm.Error.Println(capitalize(err.Error()))
			return nil
		}

		renderReceipt(session, bank.KindWithdraw, amount, currency)

	case constants.MenuHistory:
		txs, err := session.History()
		if err != nil {
			return err
		}
		return views.NewHistoryView(currency).Render(session.AccountNumber(), txs, 0)

	case constants.MenuLogout:
		session.Logout()
		pterm.Success.Println("Logged out successfully.")
	}

	return nil
}

func promptAmount(message string) (decimal.Decimal, error) {
	input, err := prompts.PromptSessionAmount(message)
	if err != nil {
		return decimal.Zero, err
	}

	return money.Parse(input)
}

func renderReceipt(session *atm.Session, kind bank.Kind, amount decimal.Decimal, currency string) {
	balance, err := session.Balance()
	if err != nil {
		pterm.Error.Println(capitalize(err.Error()))
		return
	}

	views.RenderReceipt(kind, amount, balance, currency)
}
