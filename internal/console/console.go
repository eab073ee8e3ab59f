// Package console is the teller's interactive menu. It reads one selection
// at a time, runs it against the ledger and always returns to the menu.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sheikh-saqib/branch-ledger/internal/ledger"
	"github.com/sheikh-saqib/branch-ledger/internal/models"
	"github.com/sheikh-saqib/branch-ledger/internal/xerrors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	promptTaxID        = "Enter the customer's tax ID: "
	statementHeader    = "\n================ STATEMENT ================"
	statementFooter    = "==========================================="
	msgAccountNotFound = "Account not found!"
)

// errEndOfInput ends the loop when stdin closes, exactly like "q".
var errEndOfInput = errors.New("end of input")

type Console struct {
	ledger *ledger.Ledger
	in     *bufio.Reader
	out    io.Writer
	logger *zap.Logger
}

func New(l *ledger.Ledger, in io.Reader, out io.Writer, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		ledger: l,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// Run loops until the teller quits or input ends. Command failures are
// printed and never stop the loop; only a read error is returned.
func (c *Console) Run(ctx context.Context) error {
	for {
		line, err := c.prompt(menu)
		if err != nil {
			return c.finish(err)
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			c.report(err)
			continue
		}
		if cmd == CmdQuit {
			return nil
		}

		if err := c.dispatch(ctx, cmd); err != nil {
			var rerr readError
			if errors.Is(err, errEndOfInput) || errors.As(err, &rerr) {
				return c.finish(err)
			}
			c.report(err)
		}
	}
}

func (c *Console) dispatch(ctx context.Context, cmd Command) error {
	switch cmd {
	case CmdDeposit:
		return c.deposit(ctx)
	case CmdWithdraw:
		return c.withdraw(ctx)
	case CmdStatement:
		return c.statement(ctx)
	case CmdRegisterCustomer:
		return c.registerCustomer(ctx)
	case CmdOpenAccount:
		return c.openAccount(ctx)
	}
	return xerrors.ErrInvalidMenuSelection
}

func (c *Console) deposit(ctx context.Context) error {
	customerID, err := c.accountOwner(ctx)
	if err != nil {
		return err
	}
	amount, err := c.amount("Enter the deposit amount: ")
	if err != nil {
		return err
	}
	if _, err := c.ledger.Deposit(ctx, customerID, amount); err != nil {
		return err
	}
	c.println("Deposit completed successfully!")
	return nil
}

func (c *Console) withdraw(ctx context.Context) error {
	customerID, err := c.accountOwner(ctx)
	if err != nil {
		return err
	}
	amount, err := c.amount("Enter the withdrawal amount: ")
	if err != nil {
		return err
	}
	if _, err := c.ledger.Withdraw(ctx, customerID, amount); err != nil {
		return err
	}
	c.println("Withdrawal completed successfully!")
	return nil
}

func (c *Console) statement(ctx context.Context) error {
	customerID, err := c.prompt(promptTaxID)
	if err != nil {
		return err
	}
	_, text, err := c.ledger.Statement(ctx, strings.TrimSpace(customerID))
	if err != nil {
		return err
	}
	c.println(statementHeader)
	c.println(text)
	c.println(statementFooter)
	return nil
}

func (c *Console) registerCustomer(ctx context.Context) error {
	id, err := c.prompt("Enter the tax ID (numbers only): ")
	if err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if c.ledger.CustomerExists(ctx, id) {
		return xerrors.ErrDuplicateCustomer
	}

	customer := models.Customer{ID: id}
	fields := []struct {
		label string
		dst   *string
	}{
		{"Enter the full name: ", &customer.Name},
		{"Enter the birth date (dd/mm/yyyy): ", &customer.BirthDate},
		{"Enter the street: ", &customer.Address.Street},
		{"Enter the number: ", &customer.Address.Number},
		{"Enter the neighborhood: ", &customer.Address.Neighborhood},
		{"Enter the city: ", &customer.Address.City},
		{"Enter the state code: ", &customer.Address.State},
	}
	for _, f := range fields {
		v, err := c.prompt(f.label)
		if err != nil {
			return err
		}
		*f.dst = strings.TrimSpace(v)
	}

	if _, err := c.ledger.RegisterCustomer(ctx, customer); err != nil {
		return err
	}
	c.println("Customer registered successfully!")
	return nil
}

func (c *Console) openAccount(ctx context.Context) error {
	customerID, err := c.prompt(promptTaxID)
	if err != nil {
		return err
	}
	account, err := c.ledger.OpenAccount(ctx, strings.TrimSpace(customerID))
	if err != nil {
		return err
	}
	c.println(fmt.Sprintf("Account created successfully! Branch %s, account %d.", account.Branch, account.Number))
	return nil
}

// accountOwner asks for the tax ID and confirms an account exists before
// any amount is requested.
func (c *Console) accountOwner(ctx context.Context) (string, error) {
	customerID, err := c.prompt(promptTaxID)
	if err != nil {
		return "", err
	}
	customerID = strings.TrimSpace(customerID)
	if _, err := c.ledger.FindAccount(ctx, customerID); err != nil {
		return "", err
	}
	return customerID, nil
}

func (c *Console) amount(label string) (decimal.Decimal, error) {
	text, err := c.prompt(label)
	if err != nil {
		return decimal.Zero, err
	}
	return ledger.ParseAmount(text)
}

// readError marks failures of the input stream itself, as opposed to
// failures of the command being run.
type readError struct{ err error }

func (e readError) Error() string { return "read input: " + e.err.Error() }
func (e readError) Unwrap() error { return e.err }

// prompt reads one whole line, however long. A final line without a
// newline is still returned; errEndOfInput follows on the next read.
func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		if line == "" {
			return "", errEndOfInput
		}
	default:
		return "", readError{err}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) finish(err error) error {
	if errors.Is(err, errEndOfInput) {
		c.println("")
		return nil
	}
	return err
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

// report prints the one-line message for a failed command.
func (c *Console) report(err error) {
	c.println(message(err))
	if !errors.Is(err, xerrors.ErrInvalidMenuSelection) {
		c.logger.Debug("command failed", zap.Error(err))
	}
}

func message(err error) string {
	switch {
	case errors.Is(err, xerrors.ErrAccountNotFound):
		return msgAccountNotFound
	case errors.Is(err, xerrors.ErrCustomerNotFound):
		return "Customer not found!"
	case errors.Is(err, xerrors.ErrDuplicateCustomer):
		return "A customer with this tax ID is already registered!"
	case errors.Is(err, xerrors.ErrInvalidMenuSelection):
		return "Invalid operation, please select the desired operation again."
	case errors.Is(err, xerrors.ErrInsufficientBalance):
		return "Operation failed! You do not have enough balance."
	case errors.Is(err, xerrors.ErrExceedsWithdrawalLimit):
		return "Operation failed! The withdrawal amount exceeds the limit."
	case errors.Is(err, xerrors.ErrWithdrawalCountExceeded):
		return "Operation failed! Maximum number of withdrawals exceeded."
	case errors.Is(err, xerrors.ErrInvalidAmountFormat):
		return "Operation failed! The amount provided is not a number."
	case errors.Is(err, xerrors.ErrInvalidAmount):
		return "Operation failed! The amount provided is invalid."
	default:
		return "Operation failed! " + err.Error()
	}
}
