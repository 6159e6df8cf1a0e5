package pocketbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmorel/pocketbook/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrInvalidInput reports a transaction or credential field that failed
// validation. The attempted action is blocked without mutating stored state.
var ErrInvalidInput = errors.New("invalid input")

// Type is a typed string distinguishing incomes from expenses.
type Type string

const (
	Income  Type = "income"
	Expense Type = "expense"
)

// ParseType parses a string into a transaction Type.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("%w: unknown transaction type %q (want income or expense)", ErrInvalidInput, s)
	}
}

// Transaction is one income or expense event.
type Transaction struct {
	ID        string          // unique within the collection, minted by the ledger when empty
	Title     string          // display label
	Amount    decimal.Decimal // strictly positive, in the home currency
	Type      Type            // income or expense
	Date      date.Date       // the user-chosen logical date
	Timestamp time.Time       // creation/update instant, sort key only
}

// NewTransaction builds a transaction for the given logical date. The ledger
// mints the id and timestamp when the transaction is added.
func NewTransaction(title string, amount decimal.Decimal, typ Type, day date.Date) Transaction {
	return Transaction{Title: title, Amount: amount, Type: typ, Date: day}
}

// Validate checks the transaction fields against the collection invariants.
func (t Transaction) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than 0, got %s", ErrInvalidInput, t.Amount)
	}
	if t.Type != Income && t.Type != Expense {
		return fmt.Errorf("%w: transaction type is required (income or expense)", ErrInvalidInput)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// Equal reports whether two transactions carry the same data.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Title == o.Title &&
		t.Amount.Equal(o.Amount) &&
		t.Type == o.Type &&
		t.Date == o.Date &&
		t.Timestamp.Equal(o.Timestamp)
}

// sortKey returns the instant used to order transactions for display,
// falling back to the logical date when the timestamp is absent.
func (t Transaction) sortKey() time.Time {
	if !t.Timestamp.IsZero() {
		return t.Timestamp
	}
	return time.Date(t.Date.Year(), t.Date.Month(), t.Date.Day(), 0, 0, 0, 0, time.UTC)
}

// jtransaction is the wire shape of a transaction in the store.
type jtransaction struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	Date      date.Date       `json:"date"`
	Timestamp string          `json:"timestamp,omitempty"`
}

// MarshalJSON keeps a stable field order in the stored blob.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("title", t.Title)
	w.Append("amount", t.Amount)
	w.Append("type", t.Type)
	w.Append("date", t.Date)
	if !t.Timestamp.IsZero() {
		w.Append("timestamp", t.Timestamp.UTC().Format(time.RFC3339))
	}
	return w.MarshalJSON()
}

// UnmarshalJSON parses the stored shape back, tolerating a missing timestamp.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var j jtransaction
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	var ts time.Time
	if j.Timestamp != "" {
		var err error
		ts, err = time.Parse(time.RFC3339, j.Timestamp)
		if err != nil {
			return fmt.Errorf("invalid transaction timestamp %q: %w", j.Timestamp, err)
		}
	}
	*t = Transaction{
		ID:        j.ID,
		Title:     j.Title,
		Amount:    j.Amount,
		Type:      Type(j.Type),
		Date:      j.Date,
		Timestamp: ts,
	}
	return nil
}
