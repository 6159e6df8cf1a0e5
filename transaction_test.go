package pocketbook

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jmorel/pocketbook/date"
)

func TestTransaction_Validate(t *testing.T) {
	testCases := []struct {
		name  string
		tx    Transaction
		valid bool
	}{
		{name: "valid income", tx: tx("Salary", "2500", Income, "2025-08-01"), valid: true},
		{name: "valid expense", tx: tx("Rent", "800", Expense, "2025-08-01"), valid: true},
		{name: "fractional amount", tx: tx("Coffee", "3.50", Expense, "2025-08-01"), valid: true},
		{name: "empty title", tx: tx("", "10", Income, "2025-08-01")},
		{name: "zero amount", tx: tx("x", "0", Income, "2025-08-01")},
		{name: "negative amount", tx: tx("x", "-10", Income, "2025-08-01")},
		{name: "bad type", tx: tx("x", "10", "transfer", "2025-08-01")},
		{name: "zero date", tx: NewTransaction("x", amt("10"), Income, date.Date{})},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.tx.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate = %v, want nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Validate = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestParseType(t *testing.T) {
	if typ, err := ParseType("income"); err != nil || typ != Income {
		t.Errorf("ParseType(income) = %v, %v", typ, err)
	}
	if typ, err := ParseType("expense"); err != nil || typ != Expense {
		t.Errorf("ParseType(expense) = %v, %v", typ, err)
	}
	if _, err := ParseType("Income"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ParseType(Income) = %v, want ErrInvalidInput", err)
	}
}

func TestTransaction_JSON(t *testing.T) {
	x := at(tx("Salary", "2500.50", Income, "2025-08-01"), "2025-08-01T09:00:00Z")
	x.ID = "a1"

	data, err := json.Marshal(x)
	if err != nil {
		t.Fatal(err)
	}
	// The stored shape has a stable field order and an unquoted amount.
	want := `{"id":"a1","title":"Salary","amount":2500.5,"type":"income","date":"2025-08-01","timestamp":"2025-08-01T09:00:00Z"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var back Transaction
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(x) {
		t.Errorf("round trip = %+v, want %+v", back, x)
	}
}

func TestTransaction_JSONOmitsZeroTimestamp(t *testing.T) {
	x := tx("Old rent", "800", Expense, "2024-12-01")
	x.ID = "b2"
	data, err := json.Marshal(x)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":"b2","title":"Old rent","amount":800,"type":"expense","date":"2024-12-01"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}
