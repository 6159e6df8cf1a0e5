package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/jmorel/pocketbook"
	"github.com/jmorel/pocketbook/date"
	"github.com/jmorel/pocketbook/renderer"
	"github.com/shopspring/decimal"
)

type editCmd struct {
	title  string
	amount string
	typ    string
	day    string
	cancel bool
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing transaction" }
func (*editCmd) Usage() string {
	return `pkb edit <id> [-t <title>] [-a <amount>] [-type <income|expense>] [-d <date>]

  Edits the transaction matching <id>. Without field flags the transaction
  is staged for editing and shown, so a following edit invocation can apply
  changes without repeating the id. With field flags the record is replaced
  wholesale and the stage is cleared.

Usage Examples:
$ pkb edit 5f0c… -a 60.00
$ pkb edit 5f0c…          # stage and show
$ pkb edit -t "Rent June" # apply to the staged transaction
$ pkb edit -cancel        # abort a staged edit
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "t", "", "New transaction title.")
	f.StringVar(&c.amount, "a", "", "New transaction amount.")
	f.StringVar(&c.typ, "type", "", "New transaction type: income or expense.")
	f.StringVar(&c.day, "d", "", "New transaction date.")
	f.BoolVar(&c.cancel, "cancel", false, "Abort the staged edit.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := requireAuth(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ledger := Ledger()

	if c.cancel {
		if err := ledger.ClearStagedEdit(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Edit cancelled.\n")
		return subcommands.ExitSuccess
	}

	// The base record is either the one named on the command line or the
	// previously staged one.
	var base pocketbook.Transaction
	switch {
	case f.NArg() == 1:
		var err error
		base, err = ledger.StageEdit(f.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	case f.NArg() == 0:
		var ok bool
		var err error
		base, ok, err = ledger.StagedEdit()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: no transaction id given and none staged for editing.")
			return subcommands.ExitUsageError
		}
	default:
		fmt.Fprintln(os.Stderr, "Error: at most one transaction id expected.")
		return subcommands.ExitUsageError
	}

	changed, err := c.apply(base, f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if changed.Equal(base) {
		// Nothing to apply: leave the record staged and show it.
		fmt.Printf("Editing %s\n", renderer.Transaction(base, *homeCurrency))
		return subcommands.ExitSuccess
	}

	updated, err := ledger.Update(base.ID, changed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.ClearStagedEdit(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Transaction updated successfully: %s\n", renderer.Transaction(updated, *homeCurrency))
	return subcommands.ExitSuccess
}

// apply overlays the provided field flags onto the base record.
func (c *editCmd) apply(base pocketbook.Transaction, f *flag.FlagSet) (pocketbook.Transaction, error) {
	set := map[string]bool{}
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	if len(set) == 0 {
		return base, nil
	}

	tx := base
	tx.Timestamp = time.Time{} // the update gets a fresh timestamp
	if set["t"] {
		tx.Title = c.title
	}
	if set["a"] {
		amt, err := decimal.NewFromString(c.amount)
		if err != nil {
			return base, fmt.Errorf("%w: invalid amount %q", pocketbook.ErrInvalidInput, c.amount)
		}
		tx.Amount = amt
	}
	if set["type"] {
		t, err := pocketbook.ParseType(c.typ)
		if err != nil {
			return base, err
		}
		tx.Type = t
	}
	if set["d"] {
		on, err := date.Parse(c.day)
		if err != nil {
			return base, fmt.Errorf("%w: %v", pocketbook.ErrInvalidInput, err)
		}
		tx.Date = on
	}
	return tx, nil
}
