package renderer

import (
	"strings"
	"testing"

	"github.com/jmorel/pocketbook"
	"github.com/jmorel/pocketbook/date"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestTransactions(t *testing.T) {
	txs := []pocketbook.Transaction{
		{ID: "a1", Title: "Salary", Amount: dec("2500"), Type: pocketbook.Income, Date: date.New(2025, 8, 1)},
		{ID: "b2", Title: "Rent", Amount: dec("800"), Type: pocketbook.Expense, Date: date.New(2025, 8, 2)},
	}
	got := Transactions(txs, "USD")

	for _, want := range []string{
		"| Date | Title | Type | Amount | ID |",
		"| 2025-08-01 | Salary | income | +$2,500.00 | a1 |",
		"| 2025-08-02 | Rent | expense | -$800.00 | b2 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Transactions output is missing %q:\n%s", want, got)
		}
	}
}

func TestTransactions_Empty(t *testing.T) {
	if got := Transactions(nil, "USD"); got != "No transactions yet. Add one!\n" {
		t.Errorf("Transactions(nil) = %q", got)
	}
}

func TestSummary(t *testing.T) {
	agg := pocketbook.Aggregate{
		TotalIncome:  dec("2650.50"),
		TotalExpense: dec("854.30"),
		NetBalance:   dec("1796.20"),
	}
	got := Summary("alice", agg, "USD")

	for _, want := range []string{
		"Hello 👋, alice!",
		"Total Balance: $1,796.20",
		"$2,650.50",
		"$854.30",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary output is missing %q:\n%s", want, got)
		}
	}

	// Without a username the greeting is neutral.
	if got := Summary("", agg, "USD"); !strings.Contains(got, "Your balance") {
		t.Errorf("anonymous Summary is missing the neutral greeting:\n%s", got)
	}
}

func TestConversion(t *testing.T) {
	got := Conversion(100, "USD", 73, "GBP", "0.7300")
	for _, want := range []string{
		"100.00 USD = **73.00 GBP**",
		"🇺🇸 1 USD = 0.7300 GBP 🇬🇧",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Conversion output is missing %q:\n%s", want, got)
		}
	}
}

func TestRates(t *testing.T) {
	got := Rates(pocketbook.NewConverter(), "USD")
	for _, want := range []string{
		"| Currency | 1 USD buys |",
		"| 🇬🇧 GBP | 0.7300 |",
		"| 🇯🇵 JPY | 110.2500 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Rates output is missing %q:\n%s", want, got)
		}
	}
}

func TestCalendar(t *testing.T) {
	// 2025-08-13 is a Wednesday; its week is Aug 11 to Aug 17.
	got := Calendar(date.New(2025, 8, 13))
	for _, want := range []string{
		"August, 2025",
		"| Mon | Tue | Wed | Thu | Fri | Sat | Sun |",
		"| 11 | 12 | **13** | 14 | 15 | 16 | 17 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Calendar output is missing %q:\n%s", want, got)
		}
	}
}

func TestCalendar_SpansTwoMonths(t *testing.T) {
	// The week of 2025-07-31 (a Thursday) runs from Jul 28 to Aug 3.
	got := Calendar(date.New(2025, 7, 31))
	if !strings.Contains(got, "July 28 - August 3, 2025") {
		t.Errorf("Calendar header = %s", got)
	}
}

func TestStatus(t *testing.T) {
	if got := Status(false, false, ""); !strings.Contains(got, "No user registered") {
		t.Errorf("Status unregistered = %q", got)
	}
	if got := Status(true, false, "alice"); !strings.Contains(got, "not logged in") {
		t.Errorf("Status logged out = %q", got)
	}
	if got := Status(true, true, "alice"); !strings.Contains(got, "Logged in as **alice**") {
		t.Errorf("Status logged in = %q", got)
	}
}
