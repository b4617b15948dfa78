// Package accounts holds the fixed set of operator accounts, one per language,
// loaded once at startup.
package accounts

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/bcrypt"
)

type Result int

const (
	Success Result = iota
	UnknownAccount
	WrongSecret
)

func (r Result) String() string {
	switch r {
	case Success:
		return "Login successful"
	case UnknownAccount:
		return "Username not found"
	case WrongSecret:
		return "Incorrect password"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

var ErrNoAccounts = errors.New("no accounts defined")

// Table maps account names to secrets. A secret is either compared verbatim
// or, when it looks like a bcrypt hash, checked with bcrypt.
// The zero value has no accounts. A Table is never modified after creation.
type Table struct {
	secrets map[string]string
}

func NewTable(secrets map[string]string) Table {
	t := Table{secrets: make(map[string]string, len(secrets))}
	for name, secret := range secrets {
		t.secrets[name] = secret
	}
	return t
}

// Load reads a JSON object of {"account": "secret"} pairs.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read accounts: %w", err)
	}

	var secrets map[string]string
	err = json.Unmarshal(data, &secrets)
	if err != nil {
		return Table{}, fmt.Errorf("parse accounts %s: %w", path, err)
	}
	if len(secrets) == 0 {
		return Table{}, fmt.Errorf("%s: %w", path, ErrNoAccounts)
	}
	return NewTable(secrets), nil
}

func (t Table) Len() int {
	return len(t.secrets)
}

// Authenticate checks the account name before the secret, so an unknown
// account is reported as such whatever secret is given.
func (t Table) Authenticate(name, secret string) Result {
	stored, ok := t.secrets[name]
	if !ok {
		return UnknownAccount
	}
	if !matches(stored, secret) {
		return WrongSecret
	}
	return Success
}

func matches(stored, given string) bool {
	if isBcrypt(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

func isBcrypt(s string) bool {
	return len(s) == 60 &&
		(strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$"))
}
