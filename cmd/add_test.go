package cmd

import (
	"errors"
	"testing"

	"github.com/jmorel/pocketbook"
	"github.com/jmorel/pocketbook/date"
)

func TestParseTransaction(t *testing.T) {
	tx, err := parseTransaction("Salary", "2500", "income", "2025-08-01")
	if err != nil {
		t.Fatal(err)
	}
	if tx.Title != "Salary" || tx.Type != pocketbook.Income || tx.Date != date.New(2025, 8, 1) {
		t.Errorf("parseTransaction = %+v", tx)
	}
	if tx.Amount.String() != "2500" {
		t.Errorf("amount = %s, want 2500", tx.Amount)
	}

	// The date defaults to today.
	tx, err = parseTransaction("Coffee", "3.50", "expense", "")
	if err != nil {
		t.Fatal(err)
	}
	if tx.Date != date.Today() {
		t.Errorf("default date = %s, want today", tx.Date)
	}

	testCases := []struct {
		name                    string
		title, amount, typ, day string
	}{
		{name: "bad amount", title: "x", amount: "ten", typ: "income"},
		{name: "bad type", title: "x", amount: "10", typ: "transfer"},
		{name: "bad date", title: "x", amount: "10", typ: "income", day: "someday"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseTransaction(tc.title, tc.amount, tc.typ, tc.day); !errors.Is(err, pocketbook.ErrInvalidInput) {
				t.Errorf("parseTransaction = %v, want ErrInvalidInput", err)
			}
		})
	}
}
