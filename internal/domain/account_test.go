package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func mustAccount(t *testing.T, kind AccountKind) *Account {
	t.Helper()
	a, err := NewAccount("acc-1", kind)
	if err != nil {
		t.Fatalf("NewAccount(%s) err=%v", kind, err)
	}
	return a
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func TestNewAccountValidation(t *testing.T) {
	if _, err := NewAccount("", KindSavings); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("empty id: want ErrInvalidArgument, got %v", err)
	}
	if _, err := NewAccount("acc-1", AccountKind("PREMIUM")); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("unknown kind: want ErrInvalidArgument, got %v", err)
	}

	a := mustAccount(t, KindChecking)
	if !a.Balance().IsZero() {
		t.Fatalf("new account balance=%s want=0", a.Balance())
	}
}

func TestParseAccountKind(t *testing.T) {
	for _, label := range []string{"SAVINGS", "CHECKING"} {
		kind, err := ParseAccountKind(label)
		if err != nil {
			t.Fatalf("ParseAccountKind(%s) err=%v", label, err)
		}
		if string(kind) != label {
			t.Fatalf("ParseAccountKind(%s)=%s", label, kind)
		}
	}
	if _, err := ParseAccountKind("checking accounts"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
}

func TestDepositWithdrawAmountValidation(t *testing.T) {
	a := mustAccount(t, KindSavings)
	if err := a.Deposit(dec(t, "100")); err != nil {
		t.Fatal(err)
	}

	for _, amt := range []string{"0", "-1", "-0.01"} {
		if err := a.Deposit(dec(t, amt)); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("Deposit(%s): want ErrInvalidArgument, got %v", amt, err)
		}
		if err := a.Withdraw(dec(t, amt)); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("Withdraw(%s): want ErrInvalidArgument, got %v", amt, err)
		}
		// a failed call leaves the balance unchanged
		if !a.Balance().Equal(dec(t, "100")) {
			t.Fatalf("balance=%s want=100", a.Balance())
		}
	}
}

func TestSavingsFloor(t *testing.T) {
	a := mustAccount(t, KindSavings)
	if err := a.Deposit(dec(t, "100.00")); err != nil {
		t.Fatal(err)
	}

	if err := a.Withdraw(dec(t, "150.00")); !errors.Is(err, ErrRuleViolation) {
		t.Fatalf("want ErrRuleViolation, got %v", err)
	}
	if !a.Balance().Equal(dec(t, "100.00")) {
		t.Fatalf("rejected withdrawal mutated balance: %s", a.Balance())
	}

	// draining to exactly zero is allowed
	if err := a.Withdraw(dec(t, "100.00")); err != nil {
		t.Fatal(err)
	}
	if !a.Balance().IsZero() {
		t.Fatalf("balance=%s want=0", a.Balance())
	}
}

func TestCheckingOverdraftFloor(t *testing.T) {
	a := mustAccount(t, KindChecking)

	// a fresh checking account may be drawn down to exactly -500.00
	if err := a.Withdraw(dec(t, "500.00")); err != nil {
		t.Fatal(err)
	}
	if !a.Balance().Equal(dec(t, "-500.00")) {
		t.Fatalf("balance=%s want=-500.00", a.Balance())
	}

	if err := a.Withdraw(dec(t, "0.01")); !errors.Is(err, ErrRuleViolation) {
		t.Fatalf("want ErrRuleViolation, got %v", err)
	}
	if !a.Balance().Equal(dec(t, "-500.00")) {
		t.Fatalf("rejected withdrawal mutated balance: %s", a.Balance())
	}
}

func TestExactDecimalArithmetic(t *testing.T) {
	a := mustAccount(t, KindSavings)
	if err := a.Deposit(dec(t, "50")); err != nil {
		t.Fatal(err)
	}
	if err := a.Withdraw(dec(t, "20")); err != nil {
		t.Fatal(err)
	}
	// many small cents must sum without drift
	for i := 0; i < 10; i++ {
		if err := a.Deposit(dec(t, "0.10")); err != nil {
			t.Fatal(err)
		}
	}
	if got := a.Balance().StringFixed(2); got != "31.00" {
		t.Fatalf("balance=%s want=31.00", got)
	}
}
