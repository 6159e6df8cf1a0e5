package renderer

import (
	"fmt"
	"strings"

	"github.com/jmorel/pocketbook/date"
)

// Calendar renders the week containing 'selected' as a one-row strip, the
// selected day emphasized. The header names the month, or the month span
// when the week straddles two months.
func Calendar(selected date.Date) string {
	week := date.Week(selected)
	first, last := week[0], week[6]

	var b strings.Builder
	if date.SameMonth(first, last) {
		fmt.Fprintf(&b, "%s, %d\n\n", first.Month(), first.Year())
	} else {
		fmt.Fprintf(&b, "%s %d - %s %d, %d\n\n",
			first.Month(), first.Day(), last.Month(), last.Day(), first.Year())
	}

	fmt.Fprintf(&b, "| Mon | Tue | Wed | Thu | Fri | Sat | Sun |\n")
	fmt.Fprintf(&b, "|:---:|:---:|:---:|:---:|:---:|:---:|:---:|\n")
	cells := make([]string, 0, 7)
	for _, day := range week {
		if day == selected {
			cells = append(cells, fmt.Sprintf("**%d**", day.Day()))
		} else {
			cells = append(cells, fmt.Sprintf("%d", day.Day()))
		}
	}
	fmt.Fprintf(&b, "| %s |\n", strings.Join(cells, " | "))
	return b.String()
}
