package entity

import "time"

// Frequency is how often a bill recurs.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
	FrequencyOnce      Frequency = "once"
)

// Frequencies lists every valid frequency.
var Frequencies = []Frequency{
	FrequencyWeekly,
	FrequencyBiweekly,
	FrequencyMonthly,
	FrequencyQuarterly,
	FrequencyYearly,
	FrequencyOnce,
}

// IsValid reports whether f is one of the known frequencies.
func (f Frequency) IsValid() bool {
	_, ok := recurrenceRules[f]
	return ok || f == FrequencyOnce
}

// recurrenceRule advances a date by one interval.
type recurrenceRule func(from time.Time) time.Time

// Calendar arithmetic goes through time.AddDate, which normalises overflow:
// Jan 31 + 1 month is Mar 3 (Mar 2 in leap years), never clamped to Feb 28/29.
var recurrenceRules = map[Frequency]recurrenceRule{
	FrequencyWeekly:    func(t time.Time) time.Time { return t.AddDate(0, 0, 7) },
	FrequencyBiweekly:  func(t time.Time) time.Time { return t.AddDate(0, 0, 14) },
	FrequencyMonthly:   func(t time.Time) time.Time { return t.AddDate(0, 1, 0) },
	FrequencyQuarterly: func(t time.Time) time.Time { return t.AddDate(0, 3, 0) },
	FrequencyYearly:    func(t time.Time) time.Time { return t.AddDate(1, 0, 0) },
}

// NextDueDate returns the due date one interval after from. The boolean is
// false for one-time bills, which have no next occurrence.
func NextDueDate(frequency Frequency, from time.Time) (time.Time, bool) {
	rule, ok := recurrenceRules[frequency]
	if !ok {
		return time.Time{}, false
	}
	return rule(from), true
}
