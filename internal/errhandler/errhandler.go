package errhandler

import (
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
)

// IsInterrupt reports whether err is a prompt cancellation (Ctrl-C / Esc)
// from either prompt library, as opposed to a real failure.
func IsInterrupt(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted) {
		return true
	}

	return strings.Contains(err.Error(), "interrupt")
}
