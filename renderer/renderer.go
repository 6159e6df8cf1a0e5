// Package renderer turns pocketbook domain values into markdown reports.
package renderer

import (
	"github.com/jmorel/pocketbook"
)

// signedAmount renders a transaction amount with the sign convention of the
// home screen: incomes are prefixed with "+", expenses with "-".
func signedAmount(tx pocketbook.Transaction, currency string) string {
	sign := "+"
	if tx.Type == pocketbook.Expense {
		sign = "-"
	}
	return sign + pocketbook.FormatMoney(tx.Amount.InexactFloat64(), currency)
}
