package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"
	"github.com/jmorel/pocketbook"
)

type importCmd struct {
	format string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a file" }
func (*importCmd) Usage() string {
	return `pkb import [-format <json|csv|yaml>] <file>

  Reads transactions from a file and adds them to the ledger. Records
  without an id get a fresh one; invalid records are reported and skipped.
  The format is guessed from the file extension unless -format is given.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "", "Import format: json (JSONL), csv or yaml.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := requireAuth(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one input file expected.")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	format := c.format
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
		if format == "jsonl" {
			format = "json"
		}
		if format == "yml" {
			format = "yaml"
		}
	}

	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	var txs []pocketbook.Transaction
	switch format {
	case "json":
		txs, err = pocketbook.ImportJSON(file)
	case "csv":
		txs, err = pocketbook.ImportCSV(file)
	case "yaml":
		txs, err = pocketbook.ImportYAML(file)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q.\n", format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ledger := Ledger()
	added := 0
	for _, tx := range txs {
		if _, err := ledger.Add(tx); err != nil {
			fmt.Fprintf(os.Stderr, "Skipping transaction %q: %v\n", tx.Title, err)
			continue
		}
		added++
	}
	fmt.Printf("Imported %d of %d transactions from %s\n", added, len(txs), path)
	return subcommands.ExitSuccess
}
