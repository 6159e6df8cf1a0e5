package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jmorel/pocketbook"
	"github.com/jmorel/pocketbook/date"
	"github.com/jmorel/pocketbook/renderer"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	title  string
	amount string
	typ    string
	day    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new income or expense transaction" }
func (*addCmd) Usage() string {
	return `pkb add -t <title> -a <amount> -type <income|expense> [-d <date>]

  Appends a transaction to the ledger. The amount must be greater than 0.
  The date defaults to today.

Usage Examples:
$ pkb add -t "Salary" -a 2500 -type income
$ pkb add -t "Groceries" -a 54.30 -type expense -d 2025-08-12
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "t", "", "Transaction title.")
	f.StringVar(&c.amount, "a", "", "Transaction amount, greater than 0.")
	f.StringVar(&c.typ, "type", "", "Transaction type: income or expense.")
	f.StringVar(&c.day, "d", "", "Transaction date (defaults to today).")
}

// parseTransaction builds a transaction from the command flags.
func parseTransaction(title, amount, typ, day string) (pocketbook.Transaction, error) {
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return pocketbook.Transaction{}, fmt.Errorf("%w: invalid amount %q", pocketbook.ErrInvalidInput, amount)
	}
	t, err := pocketbook.ParseType(typ)
	if err != nil {
		return pocketbook.Transaction{}, err
	}
	on := date.Today()
	if day != "" {
		on, err = date.Parse(day)
		if err != nil {
			return pocketbook.Transaction{}, fmt.Errorf("%w: %v", pocketbook.ErrInvalidInput, err)
		}
	}
	return pocketbook.NewTransaction(title, amt, t, on), nil
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := requireAuth(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	tx, err := parseTransaction(c.title, c.amount, c.typ, c.day)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	stored, err := Ledger().Add(tx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Transaction added successfully: %s\n", renderer.Transaction(stored, *homeCurrency))
	return subcommands.ExitSuccess
}
