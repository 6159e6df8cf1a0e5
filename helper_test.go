package pocketbook

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jmorel/pocketbook/date"
	"github.com/shopspring/decimal"
)

// newTestStore returns a store persisted in a temp directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "pocketbook.json"))
}

// newTestLedger returns a ledger over a fresh store.
func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	return NewLedger(newTestStore(t))
}

// amt is a helper for tests to create decimal amounts from const.
func amt(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// tx is a helper for tests to create a transaction from const.
func tx(title, amount string, typ Type, day string) Transaction {
	return NewTransaction(title, amt(amount), typ, date.MustParse(day))
}

// at stamps a transaction with an explicit timestamp.
func at(t Transaction, stamp string) Transaction {
	ts, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		panic(err.Error())
	}
	t.Timestamp = ts
	return t
}
