package prompts

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"teller/internal/constants"
	"teller/internal/ui"
	"teller/internal/validation"
)

// PromptAccountNumber asks for the account number to authenticate against.
// The input is normalized to uppercase.
func PromptAccountNumber() (string, error) {
	var number string

	prompt := &survey.Input{Message: "Account number:"}

	err := survey.AskOne(prompt, &number,
		ui.IconOption(),
		survey.WithValidator(validation.ValidateAccountNumber),
	)
	if err != nil {
		return "", err
	}

	return strings.ToUpper(strings.TrimSpace(number)), nil
}

// PromptPIN asks for the PIN with masked input.
func PromptPIN() (string, error) {
	var pin string

	prompt := &survey.Password{Message: "PIN:"}

	err := survey.AskOne(prompt, &pin,
		ui.IconOption(),
		survey.WithValidator(validation.ValidatePIN),
	)

	return pin, err
}

// PromptMenu shows the logged-in menu and returns the chosen entry.
func PromptMenu() (string, error) {
	return PromptSelect("What would you like to do?", constants.MenuChoices(), constants.MenuBalance)
}

// PromptSessionAmount asks for a deposit or withdrawal amount as text;
// callers parse it with money.Parse.
func PromptSessionAmount(message string) (string, error) {
	return PromptAmount(
		message,
		"Up to two decimal places, e.g. 150.50",
		validation.StringValidator(validation.ValidateAmount),
	)
}
