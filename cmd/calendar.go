package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jmorel/pocketbook/date"
	"github.com/jmorel/pocketbook/renderer"
)

type calendarCmd struct {
	day  string
	next int
	prev int
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "show the week calendar around a date" }
func (*calendarCmd) Usage() string {
	return `pkb calendar [-d <date>] [-next <n>] [-prev <n>]

  Shows the week containing the date (today by default), useful for picking
  a transaction date. -next and -prev move by whole weeks.
`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", "", "Selected date (defaults to today).")
	f.IntVar(&c.next, "next", 0, "Move N weeks forward.")
	f.IntVar(&c.prev, "prev", 0, "Move N weeks back.")
}

func (c *calendarCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	selected := date.Today()
	if c.day != "" {
		var err error
		selected, err = date.Parse(c.day)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}
	if c.next > 0 || c.prev > 0 {
		// Moving weeks selects the Monday of the target week.
		selected = date.StartOfWeek(selected).Add(7 * (c.next - c.prev))
	}
	printMarkdown(renderer.Calendar(selected))
	return subcommands.ExitSuccess
}
