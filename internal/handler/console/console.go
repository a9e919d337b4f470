package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"xyzbank/internal/app/bank"
	"xyzbank/internal/domain"
)

const menu = `
=== Banking System - User Menu ===
1. Register Client
2. Open Bank Account
3. Deposit
4. Withdraw
5. Check Balance
6. Exit

=== Banking System ===
7. Show All Clients and Accounts
`

// Console is the interactive driver. It prompts, parses input, renders
// operation failures and loops until the exit command or EOF. All business
// rules stay behind the service.
type Console struct {
	service bank.BankService
	in      *bufio.Scanner
	out     io.Writer
	logger  *zap.Logger
}

func NewConsole(s bank.BankService, in io.Reader, out io.Writer, l *zap.Logger) *Console {
	return &Console{
		service: s,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  l,
	}
}

// Run executes the menu loop until the user exits, input ends or ctx is
// canceled between commands.
func (c *Console) Run(ctx context.Context) error {
	c.logger.Info("Console session started")
	defer c.logger.Info("Console session ended")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(c.out, menu)
		choice, ok := c.prompt("\n Choose an option: ")
		if !ok {
			return nil
		}

		if done := c.dispatch(ctx, strings.TrimSpace(choice)); done {
			return nil
		}
	}
}

// dispatch runs one menu command and reports whether the loop should end.
func (c *Console) dispatch(ctx context.Context, choice string) bool {
	var err error
	switch choice {
	case "1":
		err = c.registerClient(ctx)
	case "2":
		err = c.openAccount(ctx)
	case "3":
		err = c.deposit(ctx)
	case "4":
		err = c.withdraw(ctx)
	case "5":
		err = c.checkBalance(ctx)
	case "6":
		fmt.Fprintln(c.out, "Exiting system. Goodbye!")
		return true
	case "7":
		c.showAllClientsAndAccounts(ctx)
	default:
		fmt.Fprintln(c.out, "Invalid option. Please try again.")
	}
	if err != nil {
		if err == io.EOF {
			return true
		}
		fmt.Fprintf(c.out, "Error: %v\n", err)
	}
	return false
}

func (c *Console) registerClient(ctx context.Context) error {
	firstName, ok := c.prompt("Enter First Name: ")
	if !ok {
		return io.EOF
	}
	lastName, ok := c.prompt("Enter Last Name: ")
	if !ok {
		return io.EOF
	}
	nationalID, ok := c.prompt("Enter National ID: ")
	if !ok {
		return io.EOF
	}
	email, ok := c.prompt("Enter Email: ")
	if !ok {
		return io.EOF
	}

	if err := c.service.RegisterClient(ctx, firstName, lastName, nationalID, email); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Client registered successfully!")
	return nil
}

func (c *Console) openAccount(ctx context.Context) error {
	nationalID, ok := c.prompt("Enter National ID: ")
	if !ok {
		return io.EOF
	}
	kindLabel, ok := c.prompt("Enter Account Type (SAVINGS/CHECKING): ")
	if !ok {
		return io.EOF
	}

	kind, err := domain.ParseAccountKind(strings.ToUpper(strings.TrimSpace(kindLabel)))
	if err != nil {
		return err
	}

	account, err := c.service.OpenAccount(ctx, nationalID, kind)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Bank account opened successfully! Account Number: %s\n", account.ID)
	return nil
}

func (c *Console) deposit(ctx context.Context) error {
	accountID, amount, err := c.promptAccountAndAmount("Enter Deposit Amount: ")
	if err != nil {
		return err
	}
	if err := c.service.Deposit(ctx, accountID, amount); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Deposit successful!")
	return nil
}

func (c *Console) withdraw(ctx context.Context) error {
	accountID, amount, err := c.promptAccountAndAmount("Enter Withdrawal Amount: ")
	if err != nil {
		return err
	}
	if err := c.service.Withdraw(ctx, accountID, amount); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Withdrawal successful!")
	return nil
}

func (c *Console) checkBalance(ctx context.Context) error {
	accountID, ok := c.prompt("Enter Account Number: ")
	if !ok {
		return io.EOF
	}
	balance, err := c.service.CheckBalance(ctx, accountID)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Account Balance: %s\n", balance.StringFixed(2))
	return nil
}

func (c *Console) showAllClientsAndAccounts(ctx context.Context) {
	fmt.Fprintln(c.out, "\n--- Clients and Accounts ---")
	for _, client := range c.service.ListClients(ctx) {
		fmt.Fprintf(c.out, "Client: %s %s (National ID: %s, Email: %s)\n",
			client.FirstName, client.LastName, client.NationalID, client.Email)
		for _, account := range client.Accounts {
			fmt.Fprintf(c.out, "  Account: %s, Type: %s, Balance: %s\n",
				account.AccountID, account.Kind, account.Balance.StringFixed(2))
		}
	}
}

func (c *Console) promptAccountAndAmount(amountLabel string) (string, decimal.Decimal, error) {
	accountID, ok := c.prompt("Enter Account Number: ")
	if !ok {
		return "", decimal.Decimal{}, io.EOF
	}
	raw, ok := c.prompt(amountLabel)
	if !ok {
		return "", decimal.Decimal{}, io.EOF
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return "", decimal.Decimal{}, fmt.Errorf("%w: invalid amount %q", domain.ErrInvalidArgument, raw)
	}
	return accountID, amount, nil
}

// prompt prints a label and reads one line. ok is false on end of input.
func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}
