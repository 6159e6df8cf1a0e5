package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type loginCmd struct {
	passcode string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in with the registered passcode" }
func (*loginCmd) Usage() string {
	return `pkb login -p <passcode>

  Compares the submitted passcode with the stored one and marks the session
  as logged in on success.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.passcode, "p", "", "The registered passcode.")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := Session()
	if err := session.Login(c.passcode); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid passcode. Please try again: %v\n", err)
		return subcommands.ExitFailure
	}
	if name, ok := session.Username(); ok {
		fmt.Printf("Login successful! Hello 👋, %s!\n", name)
	} else {
		fmt.Printf("Login successful!\n")
	}
	return subcommands.ExitSuccess
}
