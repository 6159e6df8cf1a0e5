package renderer

import (
	"fmt"
	"strings"
)

// Status renders the session state for the status command.
func Status(registered, authenticated bool, username string) string {
	var b strings.Builder
	switch {
	case !registered:
		fmt.Fprintf(&b, "No user registered. Run `pkb register` to get started.\n")
	case authenticated:
		fmt.Fprintf(&b, "Logged in as **%s**.\n", username)
	default:
		fmt.Fprintf(&b, "Registered as **%s**, not logged in. Run `pkb login`.\n", username)
	}
	return b.String()
}
