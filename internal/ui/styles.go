package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

// PrintL1Title prints a full-width banner title, used once at the top of an
// interactive session.
func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	style.Println(fmt.Sprintf(" %s   ", text))
}

func Separator() {
	pterm.Println()
}
