package model

import "strings"

// MonthTag reporting period tag, one folder per tag under the data root
type MonthTag string

const (
	MonthNov MonthTag = "NOV"
	MonthDec MonthTag = "DEC"
	MonthJan MonthTag = "JAN"
)

// Months returns all reporting periods in calendar order.
// The order is positional (NOV before DEC before JAN), never alphabetic.
func Months() []MonthTag {
	return []MonthTag{MonthNov, MonthDec, MonthJan}
}

// ParseMonth resolves a month tag case-insensitively.
func ParseMonth(s string) (MonthTag, bool) {
	tag := MonthTag(strings.ToUpper(strings.TrimSpace(s)))
	for _, m := range Months() {
		if m == tag {
			return m, true
		}
	}
	return "", false
}
