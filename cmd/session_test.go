package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"teller/internal/atm"
	"teller/internal/bank"
)

func TestRenderReceiptReportsBalanceError(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var buf bytes.Buffer
	pterm.SetDefaultOutput(&buf)
	defer pterm.SetDefaultOutput(os.Stdout)

	// pterm.Error captures its Writer at package init, so SetDefaultOutput
	// alone does not redirect it.
	origErrorWriter := pterm.Error.Writer
	pterm.Error.Writer = &buf
	defer func() { pterm.Error.Writer = origErrorWriter }()

	// A logged-out session makes Balance fail; the receipt must report the
	// failure instead of silently printing nothing.
	session := atm.NewSession(bank.NewDirectory(nil), nil)

	renderReceipt(session, bank.KindDeposit, decimal.NewFromInt(10), "USD")

	assert.Contains(t, buf.String(), "Not logged in")
}
