package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// emailPattern requires a local part, at least one domain label and a 2-4
// character top-level segment.
var emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)

// Client is an account holder. It owns its accounts; account numbers are
// unique within a client and insertion order is kept for reporting.
type Client struct {
	FirstName  string
	LastName   string
	NationalID string
	Email      string

	accounts []*Account
}

// NewClient validates the four mandatory fields and returns a client with
// no accounts. There is no partial-client state.
func NewClient(firstName, lastName, nationalID, email string) (*Client, error) {
	if isBlank(firstName) || isBlank(lastName) || isBlank(nationalID) || isBlank(email) {
		return nil, fmt.Errorf("%w: all client fields are mandatory and cannot be blank", ErrInvalidArgument)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format %q", ErrInvalidArgument, email)
	}
	return &Client{
		FirstName:  firstName,
		LastName:   lastName,
		NationalID: nationalID,
		Email:      email,
	}, nil
}

// AddAccount attaches an account to the client, rejecting duplicate
// account numbers.
func (c *Client) AddAccount(account *Account) error {
	if _, ok := c.Account(account.ID); ok {
		return fmt.Errorf("%w: an account with number %s already exists", ErrDuplicateKey, account.ID)
	}
	c.accounts = append(c.accounts, account)
	return nil
}

// Account looks up an owned account by number.
func (c *Client) Account(id string) (*Account, bool) {
	for _, a := range c.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}

// Accounts returns the client's accounts in insertion order. The slice is a
// copy, safe to iterate repeatedly and to hold across further additions.
func (c *Client) Accounts() []*Account {
	out := make([]*Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
