package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type registerCmd struct {
	username string
	passcode string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "register a username and numeric passcode" }
func (*registerCmd) Usage() string {
	return `pkb register -u <username> -p <passcode>

  Stores the username and passcode in the local store. The passcode must be
  numeric, at least 4 digits. Registration happens once; run login afterwards.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username to register.")
	f.StringVar(&c.passcode, "p", "", "Numeric passcode (min 4 digits).")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := Session().Register(c.username, c.passcode); err != nil {
		fmt.Fprintf(os.Stderr, "Please enter a name and a numeric passcode (min 4 digits): %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Registration successful! Run `pkb login` to get started.\n")
	return subcommands.ExitSuccess
}
