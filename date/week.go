package date

// StartOfWeek returns the Monday of the week containing d.
func StartOfWeek(d Date) Date {
	// time.Weekday counts Sunday as 0, the week view starts on Monday.
	offset := (int(d.Weekday()) + 6) % 7
	return d.Add(-offset)
}

// Week returns the seven days of the week containing d, starting on Monday.
func Week(d Date) [7]Date {
	var week [7]Date
	monday := StartOfWeek(d)
	for i := range week {
		week[i] = monday.Add(i)
	}
	return week
}

// SameMonth reports whether both dates fall in the same month of the same year.
func SameMonth(a, b Date) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
