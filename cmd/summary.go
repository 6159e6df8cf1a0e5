package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jmorel/pocketbook/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the balance card: net balance, income and expense totals" }
func (*summaryCmd) Usage() string {
	return `pkb summary

  Shows the running balance derived from the whole transaction collection.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := requireAuth(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	agg, err := Ledger().Aggregate()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	name, _ := Session().Username()
	printMarkdown(renderer.Summary(name, agg, *homeCurrency))
	return subcommands.ExitSuccess
}
