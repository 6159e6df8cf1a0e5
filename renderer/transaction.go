package renderer

import (
	"fmt"
	"strings"

	"github.com/jmorel/pocketbook"
)

// Transaction renders a single transaction to a one-line string.
func Transaction(tx pocketbook.Transaction, currency string) string {
	return fmt.Sprintf("%s %s %q on %s", signedAmount(tx, currency), tx.Type, tx.Title, tx.Date)
}

// Transactions renders the transaction list as a markdown table, most
// recent first (the order the ledger returns).
func Transactions(txs []pocketbook.Transaction, currency string) string {
	if len(txs) == 0 {
		return "No transactions yet. Add one!\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "| Date | Title | Type | Amount | ID |\n")
	fmt.Fprintf(&b, "|:---|:---|:---|---:|:---|\n")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			tx.Date, tx.Title, tx.Type, signedAmount(tx, currency), tx.ID)
	}
	return b.String()
}
