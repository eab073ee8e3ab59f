package console

import (
	"strings"

	"github.com/sheikh-saqib/branch-ledger/internal/xerrors"
)

type Command string

const (
	CmdDeposit          Command = "d"
	CmdWithdraw         Command = "s"
	CmdStatement        Command = "e"
	CmdRegisterCustomer Command = "c"
	CmdOpenAccount      Command = "cc"
	CmdQuit             Command = "q"
)

const menu = `
[d] Deposit
[s] Withdraw
[e] Statement
[c] Register customer
[cc] Open account
[q] Quit

=> `

// ParseCommand maps a menu selection to a Command. Selections are matched
// exactly after trimming surrounding whitespace.
func ParseCommand(input string) (Command, error) {
	switch c := Command(strings.TrimSpace(input)); c {
	case CmdDeposit, CmdWithdraw, CmdStatement, CmdRegisterCustomer, CmdOpenAccount, CmdQuit:
		return c, nil
	}
	return "", xerrors.ErrInvalidMenuSelection
}
