package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type AccountKind string

const (
	KindSavings  AccountKind = "SAVINGS"
	KindChecking AccountKind = "CHECKING"
)

// checkingFloor is the overdraft allowance for checking accounts.
var checkingFloor = decimal.NewFromInt(-500)

// ParseAccountKind maps a user-facing label onto an AccountKind.
func ParseAccountKind(s string) (AccountKind, error) {
	switch AccountKind(s) {
	case KindSavings:
		return KindSavings, nil
	case KindChecking:
		return KindChecking, nil
	}
	return "", fmt.Errorf("%w: unknown account kind %q", ErrInvalidArgument, s)
}

// Floor is the minimum balance the kind permits. Adding a new account kind
// means adding one case here; the withdrawal rule itself is shared.
func (k AccountKind) Floor() decimal.Decimal {
	switch k {
	case KindChecking:
		return checkingFloor
	default:
		return decimal.Zero
	}
}

func (k AccountKind) valid() bool {
	return k == KindSavings || k == KindChecking
}

// Account is a single bank account. The balance is reachable only through
// Deposit, Withdraw and Balance, so the kind floor cannot be bypassed.
type Account struct {
	ID      string
	Kind    AccountKind
	balance decimal.Decimal
}

// NewAccount creates an account with a zero balance.
func NewAccount(id string, kind AccountKind) (*Account, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: account number is mandatory", ErrInvalidArgument)
	}
	if !kind.valid() {
		return nil, fmt.Errorf("%w: unknown account kind %q", ErrInvalidArgument, kind)
	}
	return &Account{ID: id, Kind: kind, balance: decimal.Zero}, nil
}

// Deposit adds amount to the balance. The amount must be positive; there is
// no upper bound.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("%w: deposit amount must be positive", ErrInvalidArgument)
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw subtracts amount from the balance. The withdrawal is rejected
// whole if the resulting balance would cross the kind floor; a failed call
// leaves the balance untouched.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("%w: withdrawal amount must be positive", ErrInvalidArgument)
	}
	next := a.balance.Sub(amount)
	if next.LessThan(a.Kind.Floor()) {
		if a.Kind == KindChecking {
			return fmt.Errorf("%w: checking accounts cannot exceed the overdraft limit of %s", ErrRuleViolation, checkingFloor.StringFixed(2))
		}
		return fmt.Errorf("%w: savings accounts cannot have a negative balance", ErrRuleViolation)
	}
	a.balance = next
	return nil
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}
