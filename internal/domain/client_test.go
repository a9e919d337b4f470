package domain

import (
	"errors"
	"testing"
)

func TestNewClientValidation(t *testing.T) {
	tests := []struct {
		name   string
		first  string
		last   string
		id     string
		email  string
		wantOK bool
	}{
		{"valid", "Ana", "Diaz", "123", "ana@test.com", true},
		{"valid subdomain", "Ana", "Diaz", "123", "ana.diaz@mail.test.org", true},
		{"blank first name", "  ", "Diaz", "123", "ana@test.com", false},
		{"empty last name", "Ana", "", "123", "ana@test.com", false},
		{"blank national id", "Ana", "Diaz", " ", "ana@test.com", false},
		{"empty email", "Ana", "Diaz", "123", "", false},
		{"email without at", "Ana", "Diaz", "123", "ana.test.com", false},
		{"email without domain label", "Ana", "Diaz", "123", "ana@com", false},
		{"email tld too short", "Ana", "Diaz", "123", "ana@test.c", false},
		{"email tld too long", "Ana", "Diaz", "123", "ana@test.museum", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.first, tt.last, tt.id, tt.email)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("NewClient err=%v", err)
				}
				if c.NationalID != tt.id || c.Email != tt.email {
					t.Fatalf("got=%+v", c)
				}
				return
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("want ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestAddAccountDuplicateNumber(t *testing.T) {
	c, err := NewClient("Ana", "Diaz", "123", "ana@test.com")
	if err != nil {
		t.Fatal(err)
	}

	a1, _ := NewAccount("acc-1", KindSavings)
	if err := c.AddAccount(a1); err != nil {
		t.Fatal(err)
	}

	dup, _ := NewAccount("acc-1", KindChecking)
	if err := c.AddAccount(dup); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("want ErrDuplicateKey, got %v", err)
	}
	if len(c.Accounts()) != 1 {
		t.Fatalf("accounts=%d want=1", len(c.Accounts()))
	}
}

func TestAccountsOrderAndRepeatability(t *testing.T) {
	c, err := NewClient("Ana", "Diaz", "123", "ana@test.com")
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"a", "b", "c"} {
		a, _ := NewAccount(id, KindSavings)
		if err := c.AddAccount(a); err != nil {
			t.Fatal(err)
		}
	}

	// iteration is repeatable and keeps insertion order
	for i := 0; i < 2; i++ {
		got := c.Accounts()
		if len(got) != 3 || got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
			t.Fatalf("pass %d: unexpected accounts %v", i, got)
		}
	}

	if _, ok := c.Account("b"); !ok {
		t.Fatal("Account(b) not found")
	}
	if _, ok := c.Account("missing"); ok {
		t.Fatal("Account(missing) unexpectedly found")
	}
}
