package renderer

import (
	"bytes"
	"fmt"

	"github.com/jmorel/pocketbook"
	md "github.com/nao1215/markdown"
)

// Summary renders the balance card: greeting, net balance, and the
// income/expense totals.
func Summary(username string, agg pocketbook.Aggregate, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if username != "" {
		doc.H1(fmt.Sprintf("Hello 👋, %s!", username))
	} else {
		doc.H1("Your balance")
	}
	doc.PlainText(fmt.Sprintf("Total Balance: %s",
		pocketbook.FormatMoney(agg.NetBalance.InexactFloat64(), currency)))

	table := md.TableSet{
		Header: []string{"Income", "Expenses"},
		Rows: [][]string{{
			pocketbook.FormatMoney(agg.TotalIncome.InexactFloat64(), currency),
			pocketbook.FormatMoney(agg.TotalExpense.InexactFloat64(), currency),
		}},
	}
	doc.Table(table)

	return doc.String()
}
